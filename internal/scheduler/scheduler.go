package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CheckoutSweeper finalizes bookings whose stay has ended.
type CheckoutSweeper interface {
	AutoCheckIn(ctx context.Context, now time.Time) (int, error)
}

// Scheduler runs the daily checkout sweep. Missed runs are not replayed;
// the sweep itself picks up everything due since the last run.
type Scheduler struct {
	cron    *cron.Cron
	sweeper CheckoutSweeper
	spec    string
}

// New wires the sweep at the given cron spec, e.g. "0 1 * * *" for 01:00.
func New(sweeper CheckoutSweeper, spec string) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		sweeper: sweeper,
		spec:    spec,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runSweep()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("Checkout sweep scheduled: %s", s.spec)
	return nil
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	processed, err := s.sweeper.AutoCheckIn(ctx, time.Now())
	if err != nil {
		log.Printf("Checkout sweep failed: %v", err)
		return
	}

	log.Printf("Checkout sweep finished: %d bookings finalized", processed)
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
