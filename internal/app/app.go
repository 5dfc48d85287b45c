package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/VenueBooker/internal/cache"
	"github.com/stpnv0/VenueBooker/internal/config"
	"github.com/stpnv0/VenueBooker/internal/events"
	"github.com/stpnv0/VenueBooker/internal/handler"
	"github.com/stpnv0/VenueBooker/internal/metrics"
	"github.com/stpnv0/VenueBooker/internal/middleware"
	"github.com/stpnv0/VenueBooker/internal/notification"
	"github.com/stpnv0/VenueBooker/internal/realtime"
	"github.com/stpnv0/VenueBooker/internal/repository"
	"github.com/stpnv0/VenueBooker/internal/router"
	"github.com/stpnv0/VenueBooker/internal/scheduler"
	"github.com/stpnv0/VenueBooker/internal/service"
	"github.com/stpnv0/VenueBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type eventPublisher interface {
	ports.EventPublisher
	Close() error
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *cache.Client
	publisher  eventPublisher
	metrics    *metrics.Metrics
	reconciler *realtime.Reconciler
	listener   *realtime.Listener
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"VenueBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	app.initPublisher()

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client, err := cache.New(context.Background(), cache.Options{
		Addr:      a.cfg.Redis.Addr,
		Password:  a.cfg.Redis.Password,
		DB:        a.cfg.Redis.DB,
		NoticeTTL: a.cfg.Redis.NoticeTTL,
	})
	if err != nil {
		return err
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
	return nil
}

func (a *App) initPublisher() {
	if !a.cfg.Kafka.Enabled() {
		a.log.Warn("kafka brokers are not configured, booking events are not published")
		a.publisher = events.Discard{}
		return
	}

	a.publisher = events.NewProducer(a.cfg.Kafka.Brokers, a.cfg.Kafka.Topic)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "booking events enabled",
		logger.Any("brokers", a.cfg.Kafka.Brokers),
		logger.String("topic", a.cfg.Kafka.Topic),
	)
}

func (a *App) initServices() error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}
	settings := service.BookingSettings{
		ApprovalSLA:            a.cfg.Booking.ApprovalSLA,
		Location:               loc,
		AvailabilityFailClosed: a.cfg.Booking.AvailabilityFailClosed,
	}

	a.metrics = metrics.New()

	venueRepo := repository.NewVenueRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	messageRepo := repository.NewMessageRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	hub := realtime.NewHub(32, a.metrics)
	a.reconciler = realtime.NewReconciler(
		bookingRepo,
		realtime.NewStore(),
		hub,
		a.metrics,
		realtime.Settings{
			Debounce:    a.cfg.Booking.RealtimeDebounce,
			ApprovalSLA: settings.ApprovalSLA,
			Location:    loc,
		},
		a.log,
	)
	a.listener = realtime.NewListener(a.cfg.Postgres.DSN(), a.reconciler, a.log)

	availabilityService := service.NewAvailabilityService(bookingRepo, venueRepo, a.metrics, settings, a.log)
	bookingService := service.NewBookingService(service.BookingDeps{
		Bookings:     bookingRepo,
		Venues:       venueRepo,
		Users:        userRepo,
		Availability: availabilityService,
		Notifier:     n,
		Publisher:    a.publisher,
		Ledger:       a.redis,
		Observer:     a.reconciler,
		Metrics:      a.metrics,
	}, settings, a.log)
	venueService := service.NewVenueService(venueRepo, bookingRepo, userRepo)
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(messageRepo, userRepo, a.redis, n, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Venues:       venueService,
		Bookings:     bookingService,
		Availability: availabilityService,
		Messages:     messageService,
		Users:        userService,
		BookingFeed:  hub,
		UnreadFeed:   a.redis,
		Checks: map[string]handler.HealthCheck{
			"postgres": a.db.Master.PingContext,
			"redis":    a.redis.Ping,
		},
	})

	var metricsHandler http.Handler
	if a.cfg.Metrics.Enabled {
		metricsHandler = a.metrics.Handler()
	}

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		metricsHandler,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log, a.metrics.PanicRecovered),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.scheduler.Start(ctx)
	}()
	go func() {
		defer wg.Done()
		if err := a.listener.Run(ctx); err != nil {
			a.log.Error("booking change feed failed", logger.String("error", err.Error()))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case runErr = <-errCh:
		stop()
	}

	wg.Wait()

	if err := a.shutdown(); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.reconciler.Close()

	if err := a.publisher.Close(); err != nil {
		errs = append(errs, err)
	}

	if err := a.redis.Close(); err != nil {
		errs = append(errs, err)
	}

	if err := a.db.Master.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
