package di

import (
	"time"

	"github.com/sabrinafayremeyer/EventEase/internal/audit"
	"github.com/sabrinafayremeyer/EventEase/internal/handler"
	"github.com/sabrinafayremeyer/EventEase/internal/repository"
	"github.com/sabrinafayremeyer/EventEase/internal/service"
	"github.com/sabrinafayremeyer/EventEase/pkg/clock"
	"github.com/sabrinafayremeyer/EventEase/pkg/database"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/redis"
)

// Container holds all dependencies for the EventEase service
type Container struct {
	// Infrastructure
	DB      *database.PostgresDB
	Redis   *redis.Client
	Tx      *database.TxManager
	Stamper *audit.Stamper

	// Repositories
	VenueRepo    repository.VenueRepository
	EventRepo    repository.EventRepository
	CustomerRepo repository.CustomerRepository
	BookingRepo  repository.BookingRepository

	// Services
	VenueService    service.VenueService
	EventService    service.EventService
	CustomerService service.CustomerService
	BookingService  service.BookingService

	// Handlers
	HealthHandler   *handler.HealthHandler
	VenueHandler    *handler.VenueHandler
	EventHandler    *handler.EventHandler
	CustomerHandler *handler.CustomerHandler
	BookingHandler  *handler.BookingHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB    *database.PostgresDB
	Redis *redis.Client // nil disables the read cache
	// CacheTTL bounds how long cached venues and events live
	CacheTTL time.Duration
	Clock    clock.Clock
	Logger   *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	c := &Container{
		DB:      cfg.DB,
		Redis:   cfg.Redis,
		Tx:      database.NewTxManager(cfg.DB.Pool()),
		Stamper: audit.NewStamper(cfg.Clock),
	}

	// Initialize repositories
	pool := c.DB.Pool()
	pgVenueRepo := repository.NewPostgresVenueRepository(pool)
	pgEventRepo := repository.NewPostgresEventRepository(pool)

	// Wrap with cache if Redis is available
	if c.Redis != nil {
		c.VenueRepo = repository.NewCachedVenueRepository(pgVenueRepo, c.Redis, cfg.CacheTTL)
		c.EventRepo = repository.NewCachedEventRepository(pgEventRepo, c.Redis, cfg.CacheTTL)
	} else {
		c.VenueRepo = pgVenueRepo
		c.EventRepo = pgEventRepo
	}
	c.CustomerRepo = repository.NewPostgresCustomerRepository(pool)
	c.BookingRepo = repository.NewPostgresBookingRepository(pool)

	// Initialize services
	c.VenueService = service.NewVenueService(c.VenueRepo, c.Tx, c.Stamper, log)
	c.EventService = service.NewEventService(c.EventRepo, c.VenueRepo, c.Tx, c.Stamper, log)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo, c.Tx, c.Stamper, log)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.EventRepo, c.CustomerRepo, c.Tx, c.Stamper, log)

	// Initialize handlers
	var cacheCheck handler.HealthChecker
	if c.Redis != nil {
		cacheCheck = c.Redis
	}
	c.HealthHandler = handler.NewHealthHandler(c.DB, cacheCheck)
	c.VenueHandler = handler.NewVenueHandler(c.VenueService, log)
	c.EventHandler = handler.NewEventHandler(c.EventService, log)
	c.CustomerHandler = handler.NewCustomerHandler(c.CustomerService, log)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService, log)

	return c
}
