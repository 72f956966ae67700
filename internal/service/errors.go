package service

import (
	"fmt"
	"time"

	"github.com/iliyamo/seat-inventory/internal/errs"
	"github.com/iliyamo/seat-inventory/internal/repository"
)

// Error taxonomy of the inventory engine.  Validation errors are wrapped
// with the violated precondition; storage errors are marked with
// ErrStorageFailure and keep the driver error as cause.
var (
	ErrInvalidIdentifier  = errs.New("invalid seat identifier")
	ErrCollision          = errs.New("an active seat already occupies this location")
	ErrInvalidRange       = errs.New("invalid seat range")
	ErrNoChangesSpecified = errs.New("no changes specified")
	ErrInvalidPrice       = errs.New("invalid price")
	ErrInvalidType        = errs.New("invalid seat type")
	ErrNoSeatsSpecified   = errs.New("no seats specified")
	ErrInvalidActor       = errs.New("invalid actor")
	ErrAlreadyHeld        = errs.New("seat is already held")
	ErrNotVacant          = errs.New("seat is not vacant")
	ErrNotFound           = errs.New("not found")
	ErrStorageFailure     = errs.New("storage failure")
)

// HoldConflictError reports a hold owned by another actor.  It matches
// ErrAlreadyHeld under errors.Is and tells the caller when the competing
// hold lapses.
type HoldConflictError struct {
	HeldUntil time.Time
}

func (e *HoldConflictError) Error() string {
	return fmt.Sprintf("seat is already held until %s", e.HeldUntil.UTC().Format(time.RFC3339))
}

func (e *HoldConflictError) Unwrap() error { return ErrAlreadyHeld }

func storageErr(err error, op string) error {
	return errs.Mark(errs.Wrap(err, op), ErrStorageFailure)
}

// mapRepoErr translates repository sentinels into the service taxonomy.
func mapRepoErr(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, repository.ErrSeatNotFound):
		return errs.Wrap(ErrNotFound, "seat")
	case errs.Is(err, repository.ErrVenueNotFound):
		return errs.Wrap(ErrNotFound, "venue")
	case errs.Is(err, repository.ErrDuplicateLocation):
		return ErrCollision
	default:
		return storageErr(err, op)
	}
}
