package service

import (
	"context"
	"time"

	"github.com/iliyamo/seat-inventory/internal/metrics"
	"github.com/iliyamo/seat-inventory/internal/queue"
)

// ReclaimResult reports how many expired holds a sweep cleared.
type ReclaimResult struct {
	Reclaimed int64 `json:"reclaimed"`
}

// ReclaimExpiredHolds clears every hold whose expiry is before now in one
// transaction.  It is idempotent and safe to run alongside acquisitions
// because both gate on the same expiry predicate.
func (s *InventoryService) ReclaimExpiredHolds(ctx context.Context) (ReclaimResult, error) {
	start := time.Now()
	n, err := s.seats.ReclaimExpired(ctx, SweeperActor, s.now())
	if err != nil {
		s.logger.ErrorContext(ctx, "hold sweep failed", "error", err)
		return ReclaimResult{}, storageErr(err, "reclaim expired holds")
	}
	metrics.HoldsReclaimed(n, time.Since(start))

	if n > 0 {
		s.logger.InfoContext(ctx, "expired holds reclaimed", "reclaimed", n)
		s.publish(ctx, queue.InventoryEvent{Kind: queue.KindHoldsReclaimed, ActorID: SweeperActor, Count: n})
	}
	return ReclaimResult{Reclaimed: n}, nil
}

// RunSweeper calls ReclaimExpiredHolds every interval until ctx is done.  A
// failed sweep is logged and retried on the next tick.
func (s *InventoryService) RunSweeper(ctx context.Context, every time.Duration) error {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		if _, err := s.ReclaimExpiredHolds(ctx); err != nil && ctx.Err() == nil {
			s.logger.WarnContext(ctx, "sweep will be retried", "every", every)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}
