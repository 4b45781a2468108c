package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"comanda/internal/core/application/watch"
)

// FeedResyncJob periodically refreshes every open order feed. Change
// notifications drive feeds in real time; this job is the anti-entropy
// backstop that catches anything the stream dropped.
type FeedResyncJob struct {
	registry *watch.Registry
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFeedResyncJob creates the resync job. The schedule uses the
// seconds-granularity cron format, e.g. "*/30 * * * * *".
func NewFeedResyncJob(registry *watch.Registry, schedule string, logger *slog.Logger) *FeedResyncJob {
	return &FeedResyncJob{
		registry: registry,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "feed_resync_job"),
	}
}

// Start begins the periodic resync.
func (j *FeedResyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.registry.RefreshAll()
		j.logger.Debug("feeds refreshed", "count", j.registry.Len())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Feed resync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the resync job.
func (j *FeedResyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Feed resync job stopped")
}
