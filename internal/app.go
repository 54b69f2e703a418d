package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listings-service/internal/adapters/admins"
	token_adapter "listings-service/internal/adapters/jwt"
	logger_adapter "listings-service/internal/adapters/logger"
	postgres_adapter "listings-service/internal/adapters/postgres"
	rabbitmq_adapter "listings-service/internal/adapters/rabbitmq"
	"listings-service/internal/adapters/rest"
	"listings-service/internal/adapters/storeclient"
	"listings-service/internal/configs"
	"listings-service/internal/constants"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"listings-service/internal/core/pricing"
	"listings-service/internal/core/usecase"
	fluentlogger "listings-service/pkg/fluent_logger"
	"listings-service/pkg/postgres"
	"listings-service/pkg/rabbitmq/rabbitmq_common"
	"listings-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App - основная структура приложения
type App struct {
	config *configs.Config
	logger port.LoggerPort

	apiServer    *rest.Server
	dbPool       *pgxpool.Pool
	connManager  *rabbitmq_common.ConnectionManager
	publisher    *rabbitmq_producer.Publisher
	fluentClient *fluent.Fluent
}

// NewApp создает и настраивает все компоненты приложения
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}
	ok := false
	// при ошибке инициализации освобождаем то, что уже успели открыть
	defer func() {
		if !ok {
			app.closeResources()
		}
	}()

	baseLogger, err := app.initLoggers()
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger = appLogger

	// Хранилище объявлений
	store, err := app.initStore(baseLogger)
	if err != nil {
		appLogger.Error("Failed to initialize property store", err, nil)
		return nil, err
	}

	// События (необязательно)
	var events port.PropertyEventsPort
	if appConfig.RabbitMQ.Enabled {
		events, err = app.initEvents(baseLogger)
		if err != nil {
			appLogger.Error("Failed to initialize RabbitMQ publisher", err, nil)
			return nil, err
		}
	} else {
		appLogger.Info("RabbitMQ is disabled, property events will not be published", nil)
	}

	prices, err := pricing.NewFormatter(appConfig.Pricing.Currency, appConfig.Pricing.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create price formatter: %w", err)
	}

	directory := admins.NewStaticDirectory(domain.AdminUser{
		Email:        appConfig.Auth.AdminEmail,
		FullName:     appConfig.Auth.AdminFullName,
		PasswordHash: appConfig.Auth.AdminPasswordHash,
	})
	if directory.Len() == 0 {
		appLogger.Warn("No admin account configured, admin login is disabled", nil)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSecret, appConfig.AppName)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// Use cases
	listUC := usecase.NewListPropertiesUseCase(store)
	featuredUC := usecase.NewListFeaturedPropertiesUseCase(listUC)
	searchUC := usecase.NewSearchPropertiesUseCase(store)
	getByIDUC := usecase.NewGetPropertyByIDUseCase(store)
	statsUC := usecase.NewGetPropertyStatsUseCase(store)
	dictionariesUC := usecase.NewGetDictionariesUseCase()
	checkStoreUC := usecase.NewCheckStoreUseCase(store)
	createUC := usecase.NewCreatePropertyUseCase(store, events)
	updateUC := usecase.NewUpdatePropertyUseCase(store, events)
	deleteUC := usecase.NewDeletePropertyUseCase(store, events)
	deleteManyUC := usecase.NewDeletePropertiesUseCase(store, events)
	loginUC := usecase.NewLoginAdminUseCase(directory, tokenService, appConfig.Auth.JWTTTL)

	// REST API
	serverCfg := rest.ServerConfig{Port: appConfig.Port, AllowedOrigins: appConfig.CORSAllowedOrigins}
	router := rest.NewRouter(serverCfg,
		rest.NewPropertyHandler(listUC, featuredUC, searchUC, getByIDUC, statsUC, dictionariesUC, checkStoreUC, prices),
		rest.NewAdminHandler(listUC, statsUC, createUC, updateUC, deleteUC, deleteManyUC, prices),
		rest.NewAuthHandler(loginUC),
		rest.NewAuthMiddleware(tokenService),
		baseLogger,
	)
	app.apiServer = rest.NewServer(serverCfg, router, baseLogger)

	appLogger.Info("Application initialized", port.Fields{
		"store_driver":     appConfig.Store.Driver,
		"rabbitmq_enabled": appConfig.RabbitMQ.Enabled,
		"currency":         prices.Currency(),
	})

	ok = true
	return app, nil
}

func (a *App) initLoggers() (port.LoggerPort, error) {
	cfg := a.config
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLevel(cfg.StdoutLogger.Level),
		IsJSON:   cfg.StdoutLogger.JSON,
		UseColor: cfg.StdoutLogger.Color,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if cfg.FluentBit.Enabled {
		fluentClient, err := fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
			Timeout:   3 * time.Second,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}
		a.fluentClient = fluentClient

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, logger_adapter.ParseLevel(cfg.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	baseLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers),
		"fluent_enabled": cfg.FluentBit.Enabled,
	})
	return baseLogger, nil
}

func (a *App) initStore(baseLogger port.LoggerPort) (port.PropertyStorePort, error) {
	cfg := a.config
	logger := baseLogger.WithFields(port.Fields{"component": "app", "store_driver": cfg.Store.Driver})

	switch cfg.Store.Driver {
	case configs.StoreDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		pool, err := postgres.NewClient(ctx, postgres.Config{
			DatabaseURL:    cfg.Postgres.URL,
			MaxConns:       int32(cfg.Postgres.MaxConns),
			ConnectTimeout: 5 * time.Second,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		a.dbPool = pool

		repo, err := postgres_adapter.NewPropertyRepository(pool, cfg.Store.Table)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres property repository: %w", err)
		}
		// Недоступная база не мешает старту: чтения уходят в демо-данные до ее восстановления.
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr := pool.Ping(pingCtx)
		pingCancel()
		if pingErr != nil {
			logger.Warn("PostgreSQL is unreachable, serving fallback data until it recovers", port.Fields{"error": pingErr.Error()})
			if cfg.Postgres.Migrate {
				logger.Warn("Properties table migration skipped", nil)
			}
		} else if cfg.Postgres.Migrate {
			if err := repo.Migrate(ctx); err != nil {
				return nil, fmt.Errorf("failed to migrate properties table: %w", err)
			}
			logger.Info("Properties table migrated", nil)
		}
		logger.Info("PostgreSQL property repository initialized", nil)
		return repo, nil

	default:
		var opts []storeclient.Option
		if cfg.Store.Timeout > 0 {
			opts = append(opts, storeclient.WithTimeout(cfg.Store.Timeout))
		}
		client, err := storeclient.New(cfg.Store.URL, cfg.Store.APIKey, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create store client: %w", err)
		}
		logger.Info("Remote store client initialized", port.Fields{"table": cfg.Store.Table})
		return storeclient.NewPropertyStore(client, cfg.Store.Table), nil
	}
}

func (a *App) initEvents(baseLogger port.LoggerPort) (port.PropertyEventsPort, error) {
	cfg := a.config
	pkgLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))
	commonCfg := rabbitmq_common.Config{URL: cfg.RabbitMQ.URL}

	connManager, err := rabbitmq_common.NewConnectionManager(commonCfg, pkgLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	a.connManager = connManager

	publisher, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   commonCfg,
		ExchangeName:             constants.ListingsExchange,
		ExchangeType:             constants.ListingsExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   pkgLogger,
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create listings publisher: %w", err)
	}
	a.publisher = publisher

	events, err := rabbitmq_adapter.NewPropertyEventsAdapter(publisher)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Run запускает HTTP-сервер и управляет жизненным циклом приложения
func (a *App) Run() error {
	defer a.closeResources()

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- a.apiServer.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals...", port.Fields{"port": a.config.Port})

	var runErr error
	select {
	case sig := <-quit:
		a.logger.Info("Received signal, shutting down...", port.Fields{"signal": sig.String()})
	case err := <-serverErrors:
		if err != nil {
			a.logger.Error("HTTP server failed", err, nil)
			runErr = err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("REST API server shutdown failed", err, nil)
		runErr = errors.Join(runErr, err)
	}

	a.logger.Info("Application shut down gracefully.", nil)
	return runErr
}

// closeResources закрывает издателя, соединение с брокером, пул и Fluent Bit именно в этом порядке.
func (a *App) closeResources() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			log.Printf("App: Error closing rabbitmq publisher: %v\n", err)
		}
		a.publisher = nil
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			log.Printf("App: Error closing rabbitmq connection: %v\n", err)
		}
		a.connManager = nil
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.dbPool = nil
	}
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
		a.fluentClient = nil
	}
}
