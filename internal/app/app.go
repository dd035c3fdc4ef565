package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/linguahub/srs-backend/internal/adapter/postgres"
	cardrepo "github.com/linguahub/srs-backend/internal/adapter/postgres/card"
	reviewrepo "github.com/linguahub/srs-backend/internal/adapter/postgres/review"
	sessionrepo "github.com/linguahub/srs-backend/internal/adapter/postgres/session"
	"github.com/linguahub/srs-backend/internal/auth"
	"github.com/linguahub/srs-backend/internal/config"
	"github.com/linguahub/srs-backend/internal/domain"
	"github.com/linguahub/srs-backend/internal/service/study"
	"github.com/linguahub/srs-backend/internal/transport/middleware"
	"github.com/linguahub/srs-backend/internal/transport/rest"
)

// requestsPerMinute is the per-IP rate limit for the whole API.
const requestsPerMinute = 240

// sweepTimeout bounds a single stale-session sweep.
const sweepTimeout = 30 * time.Second

// Run is the application entry point: configuration, logger, database pool,
// repositories, the study service, the stale-session sweeper, and the HTTP
// server with graceful shutdown. It blocks until ctx is cancelled or the
// server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	tz, err := time.LoadLocation(cfg.Stats.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	cards := cardrepo.New(pool)
	reviews := reviewrepo.New(pool)
	sessions := sessionrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	studySvc := study.NewService(logger, cards, reviews, sessions, txManager, srsConfig(cfg.SRS), tz)

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(cfg.Sessions.SweepInterval).Do(func() {
		sweepCtx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		n, err := studySvc.SweepStaleSessions(sweepCtx, cfg.Sessions.IdleWindow)
		if err != nil {
			logger.Error("sweep stale sessions", slog.Any("error", err))
			return
		}
		if n > 0 {
			logger.Info("abandoned stale sessions", slog.Int("count", n))
		}
	}); err != nil {
		return fmt.Errorf("schedule session sweeper: %w", err)
	}
	scheduler.StartAsync()
	defer scheduler.Stop()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	mux := rest.NewRouter(
		rest.NewStudyHandler(studySvc),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(requestsPerMinute),
		middleware.Auth(tokens),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

func srsConfig(cfg config.SRSConfig) domain.SRSConfig {
	return domain.SRSConfig{
		InitialEaseFactor:    cfg.InitialEaseFactor,
		MinEaseFactor:        cfg.MinEaseFactor,
		FirstInterval:        cfg.FirstInterval,
		SecondInterval:       cfg.SecondInterval,
		LapseInterval:        cfg.LapseInterval,
		MasteredIntervalDays: cfg.MasteredIntervalDays,
		MasteredRepetitions:  cfg.MasteredRepetitions,
		RetentionWindow:      cfg.RetentionWindow,
		MaxQueueSize:         cfg.MaxQueueSize,
		NewCardsPerSession:   cfg.NewCardsPerSession,
	}
}
