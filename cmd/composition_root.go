package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	httpin "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/configfile"
	"printshop/internal/adapters/out/filestore"
	"printshop/internal/adapters/out/memory"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/adapters/out/postgres/catalogrepo"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"
	"printshop/internal/jobs"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	gormDB    *gorm.DB
	catalog   ports.Catalog
	store     *memory.OrderManager
	ids       *order.IDGenerator
	config    *settings.Store
	repo      *filestore.Store
	estimator services.PrintTimeEstimator
	pricer    services.PricingEngine

	// Shared so HTTP saves and autosaves are serialized.
	saveStateHandler *commands.SaveStateCommandHandler
}

func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	cfg = cfg.WithDefaults()

	systemConfig, err := loadSystemConfig(cfg.SystemConfigFile, logger)
	if err != nil {
		return nil, err
	}

	estimator := services.NewPrintTimeEstimator()
	codec, err := filestore.NewCodec(filestore.CurrentFormat, estimator)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:       cfg,
		logger:    logger,
		store:     memory.NewOrderManager(),
		ids:       order.NewIDGenerator(1),
		config:    settings.NewStore(systemConfig),
		repo:      filestore.NewStore(cfg.DataDir, codec, logger),
		estimator: estimator,
		pricer:    services.NewPricingEngine(),
	}
	c.saveStateHandler = commands.NewSaveStateCommandHandler(c.store, c.repo)

	if cfg.UsesDatabase() {
		if err = c.openDatabase(ctx); err != nil {
			return nil, err
		}
	} else {
		c.catalog = newMemoryCatalog()
		logger.InfoContext(ctx, "Using in-memory catalog")
	}

	return c, nil
}

func loadSystemConfig(path string, logger *slog.Logger) (settings.SystemConfig, error) {
	cfg, err := configfile.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("System config file not found, using defaults", "path", path)
		return settings.Default(), nil
	}
	if err != nil {
		return settings.SystemConfig{}, fmt.Errorf("load system config: %w", err)
	}
	return cfg, nil
}

func newMemoryCatalog() *memory.Catalog {
	catalog := memory.NewCatalog()
	for _, u := range seedUsers() {
		catalog.SeedUser(u)
	}
	for _, m := range seedMaterials() {
		catalog.SeedMaterial(m.Material, m.StockGrams)
	}
	return catalog
}

func (c *CompositionRoot) openDatabase(ctx context.Context) error {
	db, err := gorm.Open(gorm_postgres.Open(c.cfg.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = catalogrepo.Migrate(db); err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}

	seeded, err := postgres.SeedCatalog(ctx, postgres.NewGormUnitOfWorkFactory(db), seedUsers(), seedMaterials())
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	c.gormDB = db
	c.catalog = catalogrepo.NewGormCatalogRepository(db)
	c.logger.InfoContext(ctx, "Using PostgreSQL catalog", "host", c.cfg.DBHost, "seeded", seeded)
	return nil
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() *commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.catalog, c.store, c.ids, c.estimator, c.pricer, c.config)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.store)
}

func (c *CompositionRoot) CreateSetOrderPriorityCommandHandler() *commands.SetOrderPriorityCommandHandler {
	return commands.NewSetOrderPriorityCommandHandler(c.store)
}

func (c *CompositionRoot) CreateDequeueNextOrderCommandHandler() *commands.DequeueNextOrderCommandHandler {
	return commands.NewDequeueNextOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateSaveStateCommandHandler() *commands.SaveStateCommandHandler {
	return c.saveStateHandler
}

func (c *CompositionRoot) CreateLoadStateCommandHandler() *commands.LoadStateCommandHandler {
	return commands.NewLoadStateCommandHandler(c.store, c.repo, c.ids)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderPriceQueryHandler() queries.GetOrderPriceQueryHandler {
	return queries.NewGetOrderPriceQueryHandler(c.store, c.pricer, c.config)
}

func (c *CompositionRoot) CreateGetQueueQueryHandler() queries.GetQueueQueryHandler {
	return queries.NewGetQueueQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.saveStateHandler,
		c.cfg.SystemConfigFile,
		c.config,
		jobs.Schedules{
			Autosave:     c.cfg.AutosaveSchedule,
			ConfigReload: c.cfg.ConfigReloadSchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SubmitOrder:       c.CreateSubmitOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		SetOrderPriority:  c.CreateSetOrderPriorityCommandHandler(),
		DequeueNextOrder:  c.CreateDequeueNextOrderCommandHandler(),
		SaveState:         c.CreateSaveStateCommandHandler(),
		LoadState:         c.CreateLoadStateCommandHandler(),
		GetAllOrders:      c.CreateGetAllOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrderPrice:     c.CreateGetOrderPriceQueryHandler(),
		GetQueue:          c.CreateGetQueueQueryHandler(),
	}, c.logger)
}
