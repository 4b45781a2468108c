package cmd

// Config carries all runtime settings, loaded from the environment by the
// entry point.
type Config struct {
	HTTPPort string

	// StoreBackend selects the order store implementation: "postgres" for
	// the shared database, "memory" for a process-local store.
	StoreBackend string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ResyncSchedule is the cron spec (seconds granularity) of the feed
	// resync job, e.g. "*/30 * * * * *".
	ResyncSchedule string
}
