package di

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Madhavladani/adeptjs64/application/serviceimpl"
	"github.com/Madhavladani/adeptjs64/domain/ports"
	"github.com/Madhavladani/adeptjs64/domain/repositories"
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/infrastructure/imageprobe"
	"github.com/Madhavladani/adeptjs64/infrastructure/messaging"
	natspkg "github.com/Madhavladani/adeptjs64/infrastructure/nats"
	"github.com/Madhavladani/adeptjs64/infrastructure/postgres"
	redispkg "github.com/Madhavladani/adeptjs64/infrastructure/redis"
	"github.com/Madhavladani/adeptjs64/infrastructure/storage"
	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
	"github.com/Madhavladani/adeptjs64/pkg/config"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
	"github.com/Madhavladani/adeptjs64/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // cache (optional)
	NATSClient     *natspkg.Client  // catalog events (optional)
	Events         ports.CatalogEventPublisher
	Storage        ports.StoragePort // local หรือ s3
	ImageProber    ports.ImageProber
	EventScheduler scheduler.EventScheduler

	// Repositories
	CategoryRepository    repositories.CategoryRepository
	SubcategoryRepository repositories.SubcategoryRepository
	ComponentRepository   repositories.ComponentRepository
	MenuOrderRepository   repositories.MenuOrderRepository
	UserRepository        repositories.UserRepository

	// Services
	CategoryService    services.CategoryService
	SubcategoryService services.SubcategoryService
	ComponentService   services.ComponentService
	MenuService        services.MenuService
	ProfileService     services.ProfileService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
		Debug:    c.Config.IsDevelopment() && c.Config.Log.Level == "debug",
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	} else {
		logger.Info("Redis not configured (cache disabled)")
	}

	c.initEvents()

	if err := c.initStorage(); err != nil {
		return err
	}

	c.ImageProber = imageprobe.NewHTTPProber(c.Config.Catalog.ProbeTimeout)

	return nil
}

// initEvents ใช้ NATS ถ้าเชื่อมได้ ไม่งั้น fallback เป็น noop
func (c *Container) initEvents() {
	if c.Config.NATS.URL == "" {
		c.Events = messaging.NewNoopPublisher()
		logger.Info("NATS not configured (catalog events disabled)")
		return
	}

	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
		URL:           c.Config.NATS.URL,
		SubjectPrefix: c.Config.NATS.SubjectPrefix,
	})
	if err != nil {
		logger.Warn("NATS client initialization failed (catalog events disabled)", "error", err)
		c.Events = messaging.NewNoopPublisher()
		return
	}

	c.NATSClient = natsClient
	c.Events = natspkg.NewCatalogPublisher(natsClient)
	logger.Info("NATS client initialized", "url", c.Config.NATS.URL, "prefix", c.Config.NATS.SubjectPrefix)
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		// S3-Compatible Storage (MinIO / Cloudflare R2)
		s3Config := storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		}
		s3Storage, err := storage.NewS3Storage(s3Config)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.SubcategoryRepository = postgres.NewSubcategoryRepository(c.DB)
	c.ComponentRepository = postgres.NewComponentRepository(c.DB)
	c.MenuOrderRepository = postgres.NewMenuOrderRepository(c.DB)
	c.UserRepository = postgres.NewUserRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) catalogSupport() serviceimpl.CatalogSupport {
	support := serviceimpl.CatalogSupport{
		CacheTTL: c.Config.Catalog.CacheTTL,
		Events:   c.Events,
	}
	// กัน typed-nil ใน interface
	if c.RedisClient != nil {
		support.Cache = c.RedisClient
	}
	return support
}

func (c *Container) initServices() error {
	support := c.catalogSupport()
	logos := serviceimpl.NewLogoUploader(c.Storage, c.Config.Storage.MaxUploadSize)
	enricher := serviceimpl.NewDimensionEnricher(c.ImageProber, c.Config.Catalog.ProbeTimeout, c.Config.Catalog.ProbeConcurrency)

	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, logos, support)
	c.SubcategoryService = serviceimpl.NewSubcategoryService(c.SubcategoryRepository, c.CategoryRepository, logos, support)
	c.ComponentService = serviceimpl.NewComponentService(c.ComponentRepository, c.CategoryRepository, c.SubcategoryRepository, enricher, support)
	c.MenuService = serviceimpl.NewMenuService(c.MenuOrderRepository, c.CategoryRepository, c.SubcategoryRepository, support)
	c.ProfileService = serviceimpl.NewProfileService(c.UserRepository)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	cronExpr := c.Config.Catalog.ReconcileCron
	if cronExpr == "" {
		logger.Info("Scheduled menu reconcile disabled")
		return nil
	}

	if err := c.EventScheduler.AddJob(serviceimpl.MenuReconcileJobID, cronExpr, serviceimpl.NewMenuReconcileTask(c.MenuService)); err != nil {
		return fmt.Errorf("failed to schedule menu reconcile: %w", err)
	}

	c.EventScheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// LocalStorageBasePath path ที่ต้อง serve แบบ static, ว่างถ้าใช้ s3
func (c *Container) LocalStorageBasePath() string {
	if local, ok := c.Storage.(*storage.LocalStorage); ok {
		return local.BasePath()
	}
	return ""
}

func (c *Container) healthChecks() map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.RedisClient != nil {
		checks["redis"] = c.RedisClient.Ping
	}
	if c.NATSClient != nil {
		checks["nats"] = func(ctx context.Context) error {
			if !c.NATSClient.IsConnected() {
				return errors.New("disconnected")
			}
			return nil
		}
	}
	return checks
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		CategoryService:    c.CategoryService,
		SubcategoryService: c.SubcategoryService,
		ComponentService:   c.ComponentService,
		MenuService:        c.MenuService,
		ProfileService:     c.ProfileService,
		JWTSecret:          c.Config.JWT.Secret,
		HealthChecks:       c.healthChecks(),
		ScheduledJobs:      c.EventScheduler.ListJobs,
	}
}
