package jobs

import (
	"context"
	"time"

	"ptoshare-backend/internal/config"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
	"ptoshare-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	repos   *Repositories
	email   service.EmailService
	config  *config.Config
	timeout time.Duration
	now     func() time.Time
}

// Repositories holds the store dependencies needed by jobs
type Repositories struct {
	Users           repository.UserRepository
	SupportRequests repository.SupportRequestRepository
	Stats           repository.StatsRepository
	PasswordResets  repository.PasswordResetRepository
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(repos *Repositories, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		repos:   repos,
		email:   email,
		config:  cfg,
		timeout: 10 * time.Minute,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Config returns the configuration the runner was built with
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery and a deadline
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
	defer cancel()

	start := time.Now()
	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "duration", time.Since(start), "error", err)
		return
	}
	logger.Info("Job completed", "job", jobName, "duration", time.Since(start))
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.ReconcileLedger()
	jr.PurgePasswordResets()
	jr.SendRequestDigest()
}
