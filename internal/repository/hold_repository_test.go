package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatRepo_AcquireHold(t *testing.T) {
	until := testNow.Add(10 * time.Minute)

	testCases := []struct {
		name     string
		affected int64
		execErr  error
		want     bool
		wantErr  bool
	}{
		{name: "success: row qualified", affected: 1, want: true},
		{name: "success: row did not qualify", affected: 0, want: false},
		{name: "error: driver failure", execErr: errors.New("connection reset"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			exp := mock.ExpectExec(q("WHERE id = ? AND is_active = 1 AND is_vacant = 1 AND (is_held = 0 OR held_by = ? OR held_until < ?)")).
				WithArgs("user1", until, "user1", testNow, 9, "user1", testNow)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tc.affected))
			}

			ok, err := repo.AcquireHold(context.Background(), 9, "user1", until, testNow)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestSeatRepo_ReleaseHold(t *testing.T) {
	t.Run("success: any holder", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(q("WHERE id = ? AND is_held = 1")).
			WithArgs("admin", testNow, 9).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.ReleaseHold(context.Background(), 9, "", "admin", testNow)
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("success: restricted to holder", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectExec(q("WHERE id = ? AND is_held = 1 AND (held_by = ? OR held_until < ?)")).
			WithArgs("user1", testNow, 9, "user1", testNow).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := repo.ReleaseHold(context.Background(), 9, "user1", "user1", testNow)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestSeatRepo_ReleaseByActor(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(q("WHERE venue_id = ? AND is_active = 1 AND is_held = 1 AND held_by = ?")).
		WithArgs("user1", testNow, 7, "user1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ReleaseByActor(context.Background(), 7, "user1", testNow)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestSeatRepo_ReclaimExpired(t *testing.T) {
	t.Run("success: candidates cleared", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT COUNT(*) FROM seats WHERE is_held = 1 AND held_until < ? FOR UPDATE")).
			WithArgs(testNow).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectExec(q("WHERE is_held = 1 AND held_until < ?")).
			WithArgs("sweeper", testNow, testNow).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		n, err := repo.ReclaimExpired(context.Background(), "sweeper", testNow)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})

	t.Run("success: nothing to reclaim issues no update", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT COUNT(*)")).WithArgs(testNow).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectCommit()

		n, err := repo.ReclaimExpired(context.Background(), "sweeper", testNow)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("error: update fails and rolls back", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT COUNT(*)")).WithArgs(testNow).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectExec(q("UPDATE seats")).WillReturnError(errors.New("lock wait timeout"))
		mock.ExpectRollback()

		_, err := repo.ReclaimExpired(context.Background(), "sweeper", testNow)
		require.Error(t, err)
	})
}

func TestSeatRepo_Stats(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT COUNT(*)")).WithArgs(testNow, testNow, 7).
		WillReturnRows(sqlmock.NewRows([]string{"total", "available", "held"}).AddRow(10, 7, 2))
	mock.ExpectQuery(q("GROUP BY seat_type")).WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"seat_type", "n"}).AddRow("Regular", 8).AddRow("VIP", 2))
	mock.ExpectQuery(q("GROUP BY price")).WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"price", "n"}).AddRow("12.50", 8).AddRow("30.00", 2))
	mock.ExpectCommit()

	st, err := repo.Stats(context.Background(), 7, testNow)
	require.NoError(t, err)
	assert.Equal(t, 10, st.Total)
	assert.Equal(t, 7, st.Available)
	assert.Equal(t, 2, st.Held)
	assert.Equal(t, map[string]int{"Regular": 8, "VIP": 2}, st.ByType)
	assert.Equal(t, map[string]int{"12.50": 8, "30.00": 2}, st.ByPrice)
}
