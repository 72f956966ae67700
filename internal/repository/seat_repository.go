package repository // repository defines data access for seats

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/seat-inventory/internal/model"
)

// batchSize bounds the number of rows per multi-row INSERT and the number of
// ids per IN list.
const batchSize = 500

const seatColumns = `id, venue_id, seat_row, seat_column, location, seat_type, price,
	is_vacant, is_held, held_by, held_until, is_active,
	created_by, created_at, updated_by, updated_at`

// SeatPatch lists the fields a bulk update may overwrite.  Nil fields are
// left untouched.
type SeatPatch struct {
	Type     *string
	Price    *decimal.Decimal
	IsVacant *bool
}

// Empty reports whether the patch changes nothing.
func (p SeatPatch) Empty() bool {
	return p.Type == nil && p.Price == nil && p.IsVacant == nil
}

// BulkInsertResult reports how many seats a bulk insert created and which
// locations were skipped because an active seat already occupied them.
type BulkInsertResult struct {
	Inserted int
	Skipped  []string
}

// SeatRepo provides methods to work with seats in the database.  Every
// method is atomic on its own; multi-statement operations run inside a
// transaction owned by the method.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeat(sc rowScanner) (model.Seat, error) {
	var (
		s         model.Seat
		heldBy    sql.NullString
		heldUntil sql.NullTime
	)
	err := sc.Scan(
		&s.ID, &s.VenueID, &s.Row, &s.Column, &s.Location, &s.Type, &s.Price,
		&s.IsVacant, &s.IsHeld, &heldBy, &heldUntil, &s.IsActive,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedBy, &s.UpdatedAt,
	)
	if err != nil {
		return s, err
	}
	if heldBy.Valid {
		s.HeldBy = &heldBy.String
	}
	if heldUntil.Valid {
		t := heldUntil.Time.UTC()
		s.HeldUntil = &t
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

// Create inserts a single seat after verifying that the venue exists and no
// active seat occupies the location.  On success the seat's ID is populated.
func (r *SeatRepo) Create(ctx context.Context, s *model.Seat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := lockVenueTx(ctx, tx, s.VenueID); err != nil {
		return err
	}

	const qExists = `SELECT id FROM seats WHERE venue_id = ? AND location = ? AND is_active = 1 LIMIT 1`
	var existing uint64
	switch err := tx.QueryRowContext(ctx, qExists, s.VenueID, s.Location).Scan(&existing); {
	case err == nil:
		return ErrDuplicateLocation
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	const qInsert = `INSERT INTO seats (venue_id, seat_row, seat_column, location, seat_type, price,
	                 is_vacant, is_active, created_by, created_at, updated_by, updated_at)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, qInsert,
		s.VenueID, s.Row, s.Column, s.Location, s.Type, s.Price,
		s.IsVacant, s.IsActive, s.CreatedBy, s.CreatedAt, s.UpdatedBy, s.UpdatedAt)
	if err != nil {
		if isDuplicateEntry(err) {
			return ErrDuplicateLocation
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	s.ID = uint64(id)
	return nil
}

// CreateBulk inserts the given seats of one venue, skipping any whose
// location is already taken by an active seat (or repeated earlier in the
// batch).  The whole batch is one transaction: either every non-colliding
// seat is inserted or none is.
func (r *SeatRepo) CreateBulk(ctx context.Context, venueID uint64, seats []model.Seat) (BulkInsertResult, error) {
	var out BulkInsertResult

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return out, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := lockVenueTx(ctx, tx, venueID); err != nil {
		return out, err
	}

	locations := make([]string, 0, len(seats))
	for _, s := range seats {
		locations = append(locations, s.Location)
	}
	taken, err := activeLocationsTx(ctx, tx, venueID, locations)
	if err != nil {
		return out, err
	}

	fresh := make([]model.Seat, 0, len(seats))
	for _, s := range seats {
		if _, dup := taken[s.Location]; dup {
			out.Skipped = append(out.Skipped, s.Location)
			continue
		}
		taken[s.Location] = struct{}{}
		fresh = append(fresh, s)
	}

	for _, part := range chunk(fresh, batchSize) {
		query := `INSERT INTO seats (venue_id, seat_row, seat_column, location, seat_type, price,
		          is_vacant, is_active, created_by, created_at, updated_by, updated_at) VALUES `
		args := make([]interface{}, 0, len(part)*12)
		for i, s := range part {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
			args = append(args, venueID, s.Row, s.Column, s.Location, s.Type, s.Price,
				s.IsVacant, s.IsActive, s.CreatedBy, s.CreatedAt, s.UpdatedBy, s.UpdatedAt)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if isDuplicateEntry(err) {
				return BulkInsertResult{}, ErrDuplicateLocation
			}
			return BulkInsertResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return BulkInsertResult{}, err
	}
	committed = true
	out.Inserted = len(fresh)
	return out, nil
}

// activeLocationsTx returns the subset of locations already used by active
// seats of the venue.
func activeLocationsTx(ctx context.Context, tx *sql.Tx, venueID uint64, locations []string) (map[string]struct{}, error) {
	taken := make(map[string]struct{})
	for _, part := range chunk(locations, batchSize) {
		q := `SELECT location FROM seats WHERE venue_id = ? AND is_active = 1 AND location IN (` + placeholders(len(part)) + `)`
		args := make([]interface{}, 0, len(part)+1)
		args = append(args, venueID)
		for _, l := range part {
			args = append(args, l)
		}
		rows, err := tx.QueryContext(ctx, q, args...)
		if err != nil {
			return nil, err
		}
		for rows.Next() {
			var l string
			if err := rows.Scan(&l); err != nil {
				rows.Close()
				return nil, err
			}
			taken[l] = struct{}{}
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, err
		}
	}
	return taken, nil
}

// FindActiveByLocation returns the active seat occupying location in the
// venue, or ErrSeatNotFound.
func (r *SeatRepo) FindActiveByLocation(ctx context.Context, venueID uint64, location string) (*model.Seat, error) {
	q := `SELECT ` + seatColumns + ` FROM seats WHERE venue_id = ? AND location = ? AND is_active = 1 LIMIT 1`
	s, err := scanSeat(r.db.QueryRowContext(ctx, q, venueID, location))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetByID retrieves a seat by its id, active or not.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	q := `SELECT ` + seatColumns + ` FROM seats WHERE id = ?`
	s, err := scanSeat(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListActiveByVenue returns the active seats of a venue ordered by row index
// (shorter labels first, so Z precedes AA) and then column.
func (r *SeatRepo) ListActiveByVenue(ctx context.Context, venueID uint64) ([]model.Seat, error) {
	q := `SELECT ` + seatColumns + `
	      FROM seats
	      WHERE venue_id = ? AND is_active = 1
	      ORDER BY CHAR_LENGTH(seat_row), seat_row, seat_column`
	rows, err := r.db.QueryContext(ctx, q, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Seat{}
	for rows.Next() {
		s, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateFields applies patch to the active seats of the venue listed in ids.
// Rows already in the requested state are excluded by the WHERE clause, so
// the returned count is the number of seats that actually changed.  Marking
// seats not vacant also clears their holds.
func (r *SeatRepo) UpdateFields(ctx context.Context, venueID uint64, ids []uint64, patch SeatPatch, actor string, now time.Time) (int64, error) {
	if len(ids) == 0 || patch.Empty() {
		return 0, nil
	}

	var (
		sets     []string
		setArgs  []interface{}
		diffs    []string
		diffArgs []interface{}
	)
	if patch.Type != nil {
		sets = append(sets, "seat_type = ?")
		setArgs = append(setArgs, *patch.Type)
		diffs = append(diffs, "seat_type <> ?")
		diffArgs = append(diffArgs, *patch.Type)
	}
	if patch.Price != nil {
		sets = append(sets, "price = CAST(? AS DECIMAL(12,2))")
		setArgs = append(setArgs, patch.Price.StringFixed(2))
		diffs = append(diffs, "price <> CAST(? AS DECIMAL(12,2))")
		diffArgs = append(diffArgs, patch.Price.StringFixed(2))
	}
	if patch.IsVacant != nil {
		sets = append(sets, "is_vacant = ?")
		setArgs = append(setArgs, *patch.IsVacant)
		diffs = append(diffs, "is_vacant <> ?")
		diffArgs = append(diffArgs, *patch.IsVacant)
		if !*patch.IsVacant {
			sets = append(sets, "is_held = 0, held_by = NULL, held_until = NULL")
		}
	}
	sets = append(sets, "updated_by = ?, updated_at = ?")
	setArgs = append(setArgs, actor, now)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var total int64
	for _, part := range chunk(ids, batchSize) {
		q := `UPDATE seats SET ` + strings.Join(sets, ", ") +
			` WHERE venue_id = ? AND is_active = 1 AND id IN (` + placeholders(len(part)) + `)` +
			` AND (` + strings.Join(diffs, " OR ") + `)`
		args := make([]interface{}, 0, len(setArgs)+len(part)+len(diffArgs)+1)
		args = append(args, setArgs...)
		args = append(args, venueID)
		for _, id := range part {
			args = append(args, id)
		}
		args = append(args, diffArgs...)

		res, err := tx.ExecContext(ctx, q, args...)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return total, nil
}

// SoftDelete marks the active seats of the venue listed in ids inactive and
// drops any hold they carry.  Rows are never removed.
func (r *SeatRepo) SoftDelete(ctx context.Context, venueID uint64, ids []uint64, actor string, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var total int64
	for _, part := range chunk(ids, batchSize) {
		q := `UPDATE seats
		      SET is_active = 0, is_held = 0, held_by = NULL, held_until = NULL, updated_by = ?, updated_at = ?
		      WHERE venue_id = ? AND is_active = 1 AND id IN (` + placeholders(len(part)) + `)`
		args := make([]interface{}, 0, len(part)+3)
		args = append(args, actor, now, venueID)
		for _, id := range part {
			args = append(args, id)
		}
		res, err := tx.ExecContext(ctx, q, args...)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return total, nil
}
