package jobs

import (
	"fmt"
	"log/slog"

	"comanda/internal/core/application/watch"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	feedResyncJob *FeedResyncJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(registry *watch.Registry, resyncSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		feedResyncJob: NewFeedResyncJob(registry, resyncSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.feedResyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start feed resync job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.feedResyncJob.Stop()
}
