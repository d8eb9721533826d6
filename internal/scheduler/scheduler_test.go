package scheduler

import (
	"testing"

	"ptoshare-backend/internal/config"
	"ptoshare-backend/internal/jobs"

	"github.com/stretchr/testify/assert"
)

func TestNewScheduler_RegistersJobs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.ReconcileLedger = "0 15 1 * * *"
	cfg.Scheduler.SendRequestDigest = "0 0 14 * * MON"
	cfg.Scheduler.PurgePasswordResets = "0 0 * * * *"

	s := NewScheduler(jobs.NewJobRunner(&jobs.Repositories{}, nil, cfg))
	assert.Equal(t, 3, s.JobCount())

	assert.Error(t, s.Register("bad", "not a cron expression", func() {}))
	assert.NoError(t, s.Register("prune", "@every 10m", func() {}))
	assert.Equal(t, 4, s.JobCount())
}

func TestNewScheduler_SkipsInvalidSpecs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.ReconcileLedger = "every night"
	cfg.Scheduler.SendRequestDigest = "0 0 14 * * MON"
	cfg.Scheduler.PurgePasswordResets = "0 0 * * * *"

	s := NewScheduler(jobs.NewJobRunner(&jobs.Repositories{}, nil, cfg))
	assert.Equal(t, 2, s.JobCount())
}
