package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/seat-inventory/internal/model"
)

// Stats aggregates the active seats of a venue.  The three queries run in
// one read-only transaction so the totals and the breakdowns describe the
// same snapshot.  A hold counts as held only while held_until >= now.
func (r *SeatRepo) Stats(ctx context.Context, venueID uint64, now time.Time) (*model.VenueStats, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	st := model.NewVenueStats(venueID)

	const qTotals = `SELECT COUNT(*),
	                   COALESCE(SUM(is_vacant = 1 AND NOT (is_held = 1 AND held_until >= ?)), 0),
	                   COALESCE(SUM(is_held = 1 AND held_until >= ?), 0)
	                 FROM seats
	                 WHERE venue_id = ? AND is_active = 1`
	if err := tx.QueryRowContext(ctx, qTotals, now, now, venueID).Scan(&st.Total, &st.Available, &st.Held); err != nil {
		return nil, err
	}

	const qByType = `SELECT seat_type, COUNT(*) FROM seats
	                 WHERE venue_id = ? AND is_active = 1
	                 GROUP BY seat_type`
	rows, err := tx.QueryContext(ctx, qByType, venueID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			t string
			n int
		)
		if err := rows.Scan(&t, &n); err != nil {
			rows.Close()
			return nil, err
		}
		st.ByType[t] = n
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}

	const qByPrice = `SELECT price, COUNT(*) FROM seats
	                  WHERE venue_id = ? AND is_active = 1
	                  GROUP BY price`
	rows, err = tx.QueryContext(ctx, qByPrice, venueID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			p decimal.Decimal
			n int
		)
		if err := rows.Scan(&p, &n); err != nil {
			rows.Close()
			return nil, err
		}
		st.ByPrice[p.StringFixed(2)] += n
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return st, nil
}
