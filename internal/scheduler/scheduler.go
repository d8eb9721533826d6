package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"ptoshare-backend/internal/jobs"
	"ptoshare-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	// Nightly ledger consistency check
	if err := s.Register("ReconcileLedger", cfg.ReconcileLedger, s.jobs.ReconcileLedger); err != nil {
		logger.Error("Failed to register ReconcileLedger job", "error", err)
	}

	// Weekly digest of open requests
	if err := s.Register("SendRequestDigest", cfg.SendRequestDigest, s.jobs.SendRequestDigest); err != nil {
		logger.Error("Failed to register SendRequestDigest job", "error", err)
	}

	// Hourly reset token cleanup
	if err := s.Register("PurgePasswordResets", cfg.PurgePasswordResets, s.jobs.PurgePasswordResets); err != nil {
		logger.Error("Failed to register PurgePasswordResets job", "error", err)
	}

	logger.Info("All cron jobs registered successfully", "count", len(s.cron.Entries()))
}

// Register adds a named job on a six-field cron spec
func (s *Scheduler) Register(name, spec string, fn func()) error {
	id, err := s.cron.AddFunc(spec, fn)
	if err != nil {
		return err
	}
	logger.Debug("Registered cron job", "job", name, "spec", spec, "entryID", id)
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// JobCount returns the number of registered entries
func (s *Scheduler) JobCount() int {
	return len(s.cron.Entries())
}
