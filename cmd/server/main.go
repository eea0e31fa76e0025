package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/statetools/handler"
	"github.com/dmitrymomot/statetools/modules/tools"
	"github.com/dmitrymomot/statetools/pkg/calculator"
	"github.com/dmitrymomot/statetools/pkg/clientip"
	"github.com/dmitrymomot/statetools/pkg/config"
	"github.com/dmitrymomot/statetools/pkg/httpserver"
	"github.com/dmitrymomot/statetools/pkg/logger"
	"github.com/dmitrymomot/statetools/pkg/requestid"
	"github.com/dmitrymomot/statetools/pkg/session"
)

type appConfig struct {
	Env      string     `env:"APP_ENV" envDefault:"development"`
	Name     string     `env:"APP_NAME" envDefault:"statetools"`
	LogLevel slog.Level `env:"LOG_LEVEL"`

	Server  httpserver.Config
	Session session.Config
	Tools   tools.Config
}

func main() {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		logger.New().Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if _, set := os.LookupEnv("LOG_LEVEL"); set {
		logOpts = append(logOpts, logger.WithLevel(cfg.LogLevel))
	}
	log := logger.New(logOpts...)

	store := session.NewFromConfig(cfg.Session, session.WithLogger(log))
	calc := calculator.NewService(store, calculator.WithLogger(log))

	router := tools.Router(tools.RouterOptions{
		Config:       cfg.Tools,
		Store:        store,
		Calculator:   calc,
		Logger:       log,
		ErrorHandler: handler.NewErrorHandler(log),
	})

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(ctx context.Context) error {
			log.InfoContext(ctx, "session store ready",
				logger.Component("session_store"),
				slog.Int("capacity", cfg.Session.Capacity),
				slog.Duration("ttl", cfg.Session.TTL),
			)
			return nil
		}),
		httpserver.WithStopHook(func(context.Context) error {
			return store.Close()
		}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, router); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}
