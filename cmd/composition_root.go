package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	inhttp "comanda/internal/adapters/in/http"
	"comanda/internal/adapters/out/memstore"
	pgadapter "comanda/internal/adapters/out/postgres"
	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/application/watch"
	"comanda/internal/core/ports"
	"comanda/internal/jobs"
)

// CompositionRoot wires adapters, use cases and jobs according to the
// configuration. It is the only place that knows concrete types.
type CompositionRoot struct {
	store    ports.OrderStore
	identity ports.IdentityProvider
	catalog  ports.MenuCatalog
	registry *watch.Registry
	logger   *slog.Logger
}

// NewCompositionRoot builds the object graph for the configured backend.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		registry: watch.NewRegistry(),
		logger:   logger,
	}

	switch config.StoreBackend {
	case "postgres":
		dsn := postgresDSN(config)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err = pgadapter.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}

		root.store = pgadapter.NewGormOrderStore(db, dsn, logger)
		root.identity = pgadapter.NewGormRoleDirectory(db)
		root.catalog = pgadapter.NewGormMenuCatalog(db)

	case "memory":
		root.store = memstore.NewStore()
		root.identity = memstore.NewRoleDirectory()
		root.catalog = memstore.NewMenuCatalog(nil)

	default:
		return nil, fmt.Errorf("unknown store backend %q", config.StoreBackend)
	}

	return root, nil
}

// Registry returns the feed registry shared by the server and the resync
// job.
func (c *CompositionRoot) Registry() *watch.Registry {
	return c.registry
}

// CreateHTTPServer builds the fully wired HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(
		commands.NewSubmitOrderCommandHandler(c.store),
		commands.NewAdvanceOrderCommandHandler(c.store),
		queries.NewGetCustomerOrdersQueryHandler(c.store),
		queries.NewGetKitchenQueueQueryHandler(c.store),
		queries.NewGetCashierQueueQueryHandler(c.store),
		queries.NewGetMenuQueryHandler(c.catalog),
		c.store,
		c.registry,
		c.logger,
	)
}

// IdentityProvider returns the role resolver for the session middleware.
func (c *CompositionRoot) IdentityProvider() ports.IdentityProvider {
	return c.identity
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(c.registry, config.ResyncSchedule, c.logger)
}

func postgresDSN(config Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)
}
