// Package sweeper runs the periodic maintenance passes: expiring stays,
// purging stale resolved complaints, and dropping orders left behind by
// checked-out guests. Each pass is idempotent, so overlapping with staff
// actions converges to the same final state.
package sweeper

import (
	"context"
	"log"
	"time"

	"guestdesk/internal/repository"
)

type Sweeper struct {
	guestRepo     repository.GuestRepository
	complaintRepo repository.ComplaintRepository
	orderRepo     repository.OrderRepository

	interval  time.Duration
	retention time.Duration
}

func New(guestRepo repository.GuestRepository, complaintRepo repository.ComplaintRepository, orderRepo repository.OrderRepository, interval time.Duration) *Sweeper {
	return &Sweeper{
		guestRepo:     guestRepo,
		complaintRepo: complaintRepo,
		orderRepo:     orderRepo,
		interval:      interval,
		retention:     24 * time.Hour,
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[Sweeper] stopping")
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce executes one full pass. A failed step is logged and the remaining
// steps still run; the next tick retries everything.
func (s *Sweeper) RunOnce(ctx context.Context) {
	now := time.Now()

	checkedOut, err := s.guestRepo.CheckOutExpired(ctx, s.guestRepo.GetDB(), now)
	if err != nil {
		log.Printf("[Sweeper] check out expired guests: %v", err)
	} else if checkedOut > 0 {
		log.Printf("[Sweeper] checked out %d expired guests", checkedOut)
	}

	purged, err := s.complaintRepo.DeleteStaleResolved(ctx, now.Add(-s.retention))
	if err != nil {
		log.Printf("[Sweeper] purge resolved complaints: %v", err)
	} else if purged > 0 {
		log.Printf("[Sweeper] purged %d resolved complaints", purged)
	}

	deleted, err := s.orderRepo.DeleteForCheckedOutGuests(ctx)
	if err != nil {
		log.Printf("[Sweeper] delete checked-out guest orders: %v", err)
	} else if deleted > 0 {
		log.Printf("[Sweeper] deleted %d orders of checked-out guests", deleted)
	}
}
