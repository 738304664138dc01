package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/mkolosov/noteflow-srs/internal/config"
	"github.com/mkolosov/noteflow-srs/internal/service/review"
	"github.com/mkolosov/noteflow-srs/internal/transport/rest"
)

// Run is the application entry point. It loads configuration,
// initializes the logger, wires the review service and REST router,
// and serves until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	svc := review.NewService(cfg.SRS.EngineParams(), fuzzSource(cfg.SRS), logger)
	router := rest.NewRouter(svc, logger, BuildVersion(), cfg.CORS)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("version", BuildVersion()),
		slog.Int("srs_version", cfg.SRS.Version),
		slog.Float64("requested_retention", cfg.SRS.RequestedRetention),
		slog.Bool("fuzz", !cfg.SRS.DisableFuzz),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// fuzzSource builds the injectable random source for interval fuzz.
// Returns nil when fuzz is disabled in config. A zero seed means
// non-reproducible: seed from the wall clock.
func fuzzSource(cfg config.SRSConfig) *rand.Rand {
	if cfg.DisableFuzz {
		return nil
	}
	seed := cfg.FuzzSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // scheduling jitter, not cryptographic
}
