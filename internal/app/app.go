package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/rs/cors"
	"github.com/stpnv0/EventHub/internal/auth"
	"github.com/stpnv0/EventHub/internal/broker"
	"github.com/stpnv0/EventHub/internal/cache"
	"github.com/stpnv0/EventHub/internal/config"
	"github.com/stpnv0/EventHub/internal/handler"
	"github.com/stpnv0/EventHub/internal/middleware"
	"github.com/stpnv0/EventHub/internal/repository"
	"github.com/stpnv0/EventHub/internal/router"
	"github.com/stpnv0/EventHub/internal/scheduler"
	"github.com/stpnv0/EventHub/internal/service"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
	"golang.org/x/sync/errgroup"
)

const (
	migrationsDir   = "migrations"
	rateLimitPrefix = "eventhub:ratelimit"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	rabbit     *rabbitmq.RabbitClient
	publisher  *broker.Publisher
	httpServer *http.Server
	reconciler *scheduler.Reconciler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventHub",
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
		app.closeResources()
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initRabbitMQ(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init rabbitmq: %w", err)
	}

	if err = app.initServices(); err != nil {
		app.closeResources()
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		_ = db.Master.Close()
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	if !a.cfg.Redis.Enabled {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis disabled, caching and rate limiting are off")
		return nil
	}

	client := redis.New(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Int("db", a.cfg.Redis.DB),
	)

	return nil
}

func (a *App) initRabbitMQ() error {
	if !a.cfg.RabbitMQ.Enabled {
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "rabbitmq disabled, domain events are dropped")
		return nil
	}

	client, err := rabbitmq.NewClient(rabbitmq.ClientConfig{
		URL:            a.cfg.RabbitMQ.URL,
		ConnectionName: "eventhub",
		ConnectTimeout: 5 * time.Second,
		Heartbeat:      10 * time.Second,
		ReconnectStrat: retry.Strategy{Attempts: 5, Delay: time.Second, Backoff: 2},
		ProducingStrat: retry.Strategy{Attempts: 3, Delay: 200 * time.Millisecond, Backoff: 2},
		ConsumingStrat: retry.Strategy{Attempts: 1},
	})
	if err != nil {
		return fmt.Errorf("connecting to rabbitmq: %w", err)
	}

	if err := client.DeclareExchange(a.cfg.RabbitMQ.Exchange, "topic", true, false, false, nil); err != nil {
		_ = client.Close()
		return fmt.Errorf("declare exchange %q: %w", a.cfg.RabbitMQ.Exchange, err)
	}

	a.rabbit = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "rabbitmq connected",
		logger.String("exchange", a.cfg.RabbitMQ.Exchange),
	)

	return nil
}

func (a *App) eventCache() ports.EventCache {
	if a.redis == nil {
		return cache.Noop{}
	}
	return cache.NewEventCache(a.redis, a.cfg.Redis.CacheTTL, a.log)
}

func (a *App) domainPublisher() ports.DomainPublisher {
	if a.rabbit == nil {
		return broker.Noop{}
	}
	pub := rabbitmq.NewPublisher(a.rabbit, a.cfg.RabbitMQ.Exchange, "application/json")
	a.publisher = broker.NewPublisher(pub, a.cfg.RabbitMQ.PublishTimeout, a.log)
	return a.publisher
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	reportRepo := repository.NewReportRepo(a.db)

	eventCache := a.eventCache()
	publisher := a.domainPublisher()

	hasher := auth.NewBcryptHasher(a.cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.cfg.Auth.Issuer)

	inventory := service.NewInventoryManager(eventRepo, reportRepo, a.log)
	bookingService := service.NewBookingService(inventory, bookingRepo, eventCache, publisher, a.log)
	approval := service.NewApprovalWorkflow(eventRepo, bookingRepo, eventCache, publisher, a.log)
	userService := service.NewUserService(userRepo, hasher, tokens, a.log)
	organizerService := service.NewOrganizerService(reportRepo, eventRepo)

	if err := a.bootstrapAdmin(userService); err != nil {
		return err
	}

	a.reconciler = scheduler.NewReconciler(inventory, a.cfg.Reconciler.Interval, a.log)

	h := handler.NewHandler(approval, bookingService, userService, organizerService, a.db.Master)
	r := router.InitRouter(a.cfg.Gin.Mode, h, a.middlewares(tokens)...)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   a.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: false,
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      corsHandler.Handler(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) middlewares(tokens middleware.TokenParser) []ginext.HandlerFunc {
	mw := []ginext.HandlerFunc{
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	}

	if a.cfg.RateLimit.Enabled {
		if a.redis == nil {
			a.log.LogAttrs(context.Background(), logger.WarnLevel, "rate limit enabled without redis, skipping")
		} else {
			counter := cache.NewWindowCounter(a.redis, rateLimitPrefix)
			mw = append(mw, middleware.RateLimit(counter, a.cfg.RateLimit.Requests, a.cfg.RateLimit.Window, a.log))
		}
	}

	return append(mw, middleware.Authenticate(tokens))
}

type adminBootstrapper interface {
	EnsureAdmin(ctx context.Context, name, email, password string) (bool, error)
}

func (a *App) bootstrapAdmin(users adminBootstrapper) error {
	if a.cfg.Admin.Email == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := users.EnsureAdmin(ctx, a.cfg.Admin.Name, a.cfg.Admin.Email, a.cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		a.log.LogAttrs(ctx, logger.InfoLevel, "admin account created",
			logger.String("email", a.cfg.Admin.Email),
		)
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.reconciler.Start(gctx)
	})

	g.Go(func() error {
		a.log.LogAttrs(gctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
		}
		return a.shutdown()
	})

	return g.Wait()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.closeResources(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) closeResources() error {
	var errs []error

	// In-flight domain events finish before the connection goes away.
	if a.publisher != nil {
		a.publisher.Wait()
	}

	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close rabbitmq: %w", err))
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

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

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "migrations applied",
		logger.String("dir", migrationsDir),
	)
	return nil
}
