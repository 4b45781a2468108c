// Package jobs provides scheduled background tasks for the order
// coordinator.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// A single job exists today: FeedResyncJob periodically forces every open
// order feed to re-read the store, bounding how long a missed change
// notification can keep a screen out of date.
package jobs
