package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mytheresa/go-feature-showcase/app"
	"github.com/mytheresa/go-feature-showcase/config"
	"github.com/mytheresa/go-feature-showcase/database"
	"github.com/mytheresa/go-feature-showcase/logging"
	"github.com/pkg/errors"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, conf.Logger)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, logger); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func run(ctx context.Context, conf *config.Config, logger *slog.Logger) error {
	db, err := database.Open(ctx, conf.Database, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	handler, err := app.NewHandler(app.Options{
		DB:             db,
		Logger:         logger,
		Development:    conf.IsDevelopment(),
		AllowedOrigins: conf.HTTP.AllowedOrigins,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    conf.HTTP.Address,
		Handler: handler,
	}

	shutdownError := make(chan error, 1)

	go func() {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
		defer cancel()

		shutdownError <- srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("environment", conf.Environment),
	)
	if conf.IsDevelopment() {
		logger.Info("api reference available", slog.String("document", app.DocumentPath), slog.String("reference", app.ReferencePath))
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return errors.WithStack(<-shutdownError)
}
