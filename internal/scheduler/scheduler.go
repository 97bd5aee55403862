// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a Scheduler with a daily price refresh job on the given
// cron spec (standard 5-field format).
func New(spec string, refresh func() error) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		log.Println("Starting scheduled price refresh")
		if err := refresh(); err != nil {
			log.Printf("Scheduled price refresh failed: %v", err)
			return
		}
		log.Println("Scheduled price refresh completed")
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

// Start launches the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the cron runner, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
