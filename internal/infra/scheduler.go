package infra

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one named unit of scheduled work. Spec is a six-field cron
// expression with a seconds column.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

// Scheduler runs the dashboard's background jobs on cron specs. Job
// errors are logged, never fatal; every job is written to be safely
// retried on its next firing.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// NewScheduler creates a new Scheduler
func NewScheduler(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds a job to the schedule. The scheduler must not have been
// started yet.
func (s *Scheduler) Register(job Job) error {
	_, err := s.cron.AddFunc(job.Spec, func() {
		if err := job.Run(context.Background()); err != nil {
			s.log.Error().Err(err).Str("job", job.Name).Msg("scheduled job failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name, err)
	}

	s.log.Info().Str("job", job.Name).Str("spec", job.Spec).Msg("job registered")
	return nil
}

// Start begins firing registered jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop halts the schedule and waits for running jobs to finish
func (s *Scheduler) Stop() {
	s.log.Info().Msg("stopping scheduler")
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler stopped")
}
