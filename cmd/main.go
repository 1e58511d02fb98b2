package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dropy/internal/adapter/http"
	"dropy/internal/adapter/memory"
	"dropy/internal/adapter/postgres"
	"dropy/internal/adapter/usecase"
	"dropy/internal/config"
	"dropy/internal/core/port"
	"dropy/internal/core/program"
	"dropy/internal/db"
)

// main is the entry point of the reward ledger. It loads configuration,
// selects the account store (optionally migrating and seeding PostgreSQL),
// wires the campaign program into the use case and starts the HTTP server.
// On receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.LedgerRepository
	if cfg.Ledger.Memory() {
		logger.Warn("using in-memory ledger, state is lost on exit")
		repo = memory.NewLedgerRepository()
	} else {
		if cfg.Psql.RunMigrations {
			version, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully", slog.Uint64("from_version", uint64(version)))
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewLedgerRepository(pool)
	}

	prog := program.New(cfg.Program.ID, program.WithLogger(logger))
	svc := usecase.NewCampaignUseCase(repo, prog, cfg.Program.RecordSpace, logger)

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, svc, logger); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("program_id", prog.ID().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		exitCode = 1
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
