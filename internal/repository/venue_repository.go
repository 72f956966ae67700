package repository // repository holds data access logic for domain entities

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/seat-inventory/internal/model"
)

// VenueRepo resolves venues for the inventory engine.  Venue administration
// screens are outside this service; only lookups and a minimal create exist.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a venue and populates its ID.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, is_active) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.Name, v.IsActive)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// GetByID retrieves an active venue.  Inactive venues are reported as
// ErrVenueNotFound because no inventory operation may target them.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	const q = `SELECT id, name, is_active FROM venues WHERE id = ? AND is_active = 1`
	var v model.Venue
	err := r.db.QueryRowContext(ctx, q, id).Scan(&v.ID, &v.Name, &v.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

// lockVenueTx takes a row lock on the venue for the rest of tx.  Seat
// inserts for one venue are serialised through this lock, which is what
// keeps "check active location, then insert" race free.
func lockVenueTx(ctx context.Context, tx *sql.Tx, venueID uint64) error {
	const q = `SELECT id FROM venues WHERE id = ? AND is_active = 1 FOR UPDATE`
	var id uint64
	if err := tx.QueryRowContext(ctx, q, venueID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	}
	return nil
}
