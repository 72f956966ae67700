package repository

import (
	"context"
	"time"
)

// AcquireHold places or refreshes a hold on a seat with one conditional
// write.  The row qualifies when it is active, vacant and either free, held
// by the same actor, or held under a hold that lapsed before now.  It reports
// false without error when the row did not qualify; the caller re-reads the
// seat to find out why.
func (r *SeatRepo) AcquireHold(ctx context.Context, seatID uint64, actorID string, until, now time.Time) (bool, error) {
	const q = `UPDATE seats
	           SET is_held = 1, held_by = ?, held_until = ?, updated_by = ?, updated_at = ?
	           WHERE id = ? AND is_active = 1 AND is_vacant = 1
	             AND (is_held = 0 OR held_by = ? OR held_until < ?)`
	res, err := r.db.ExecContext(ctx, q, actorID, until, actorID, now, seatID, actorID, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ReleaseHold clears the hold on a seat.  When holder is non-empty only a
// hold owned by holder, or one that already lapsed, is cleared.  It returns
// the number of rows changed; zero means there was nothing to release or the
// hold belongs to someone else.
func (r *SeatRepo) ReleaseHold(ctx context.Context, seatID uint64, holder, actor string, now time.Time) (int64, error) {
	q := `UPDATE seats
	      SET is_held = 0, held_by = NULL, held_until = NULL, updated_by = ?, updated_at = ?
	      WHERE id = ? AND is_held = 1`
	args := []interface{}{actor, now, seatID}
	if holder != "" {
		q += ` AND (held_by = ? OR held_until < ?)`
		args = append(args, holder, now)
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ReleaseByActor clears every hold actorID has on active seats of a venue.
func (r *SeatRepo) ReleaseByActor(ctx context.Context, venueID uint64, actorID string, now time.Time) (int64, error) {
	const q = `UPDATE seats
	           SET is_held = 0, held_by = NULL, held_until = NULL, updated_by = ?, updated_at = ?
	           WHERE venue_id = ? AND is_active = 1 AND is_held = 1 AND held_by = ?`
	res, err := r.db.ExecContext(ctx, q, actorID, now, venueID, actorID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ReclaimExpired clears every hold whose expiry is strictly before now.  The
// candidates are locked and counted first; the bulk update uses the same
// predicate inside the same transaction, so a concurrent acquire either
// commits before the lock (and is no longer a candidate) or waits for it.
func (r *SeatRepo) ReclaimExpired(ctx context.Context, actor string, now time.Time) (int64, error) {
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

	const qCount = `SELECT COUNT(*) FROM seats WHERE is_held = 1 AND held_until < ? FOR UPDATE`
	var candidates int64
	if err := tx.QueryRowContext(ctx, qCount, now).Scan(&candidates); err != nil {
		return 0, err
	}

	var reclaimed int64
	if candidates > 0 {
		const qClear = `UPDATE seats
		                SET is_held = 0, held_by = NULL, held_until = NULL, updated_by = ?, updated_at = ?
		                WHERE is_held = 1 AND held_until < ?`
		res, err := tx.ExecContext(ctx, qClear, actor, now, now)
		if err != nil {
			return 0, err
		}
		if reclaimed, err = res.RowsAffected(); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return reclaimed, nil
}
