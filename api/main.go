package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/lims-tracker/internal/auth"
	"github.com/rogerio-castellano/lims-tracker/internal/client"
	"github.com/rogerio-castellano/lims-tracker/internal/config"
	"github.com/rogerio-castellano/lims-tracker/internal/dashboard"
	"github.com/rogerio-castellano/lims-tracker/internal/db"
	"github.com/rogerio-castellano/lims-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/lims-tracker/internal/http/middleware"
	rl "github.com/rogerio-castellano/lims-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/lims-tracker/internal/http/router"
	"github.com/rogerio-castellano/lims-tracker/internal/logger"
	"github.com/rogerio-castellano/lims-tracker/internal/redissvc"
	"github.com/rogerio-castellano/lims-tracker/internal/repo"
	"github.com/rs/zerolog"
)

const (
	visitorCleanupInterval = time.Minute
	visitorIdleTimeout     = 5 * time.Minute
)

// @title LIMS Tracker API
// @version 1.0
// @description REST API for laboratory samples, tests and results.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(os.Getenv("LIMS_CONFIG"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Could not load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ Invalid log configuration:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer closeStore()
	handlers.SetStore(store)

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		cache := redissvc.NewRedisService(rdb, cfg.Redis.TTL)
		if err := cache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, list cache disabled")
		} else {
			handlers.SetListCache(cache)
			log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("list cache enabled")
		}
	}

	var issuer *auth.TokenIssuer
	if cfg.Auth.Enabled {
		issuer = auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		handlers.SetOperator(issuer, cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash)
		if cfg.Auth.AdminPasswordHash == "" {
			log.Warn().Msg("auth enabled without auth.admin_password_hash, login will always fail")
		}
	}

	var limiter *rl.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.StartVisitorCleanupLoop(ctx, visitorCleanupInterval, visitorIdleTimeout)
	}

	// identifies the dashboard's own API calls so they skip the per-IP limiter
	internalKey := uuid.NewString()
	opts := router.Options{Logger: &log, Limiter: limiter, InternalKey: internalKey, Issuer: issuer}
	if cfg.Dashboard.Enabled {
		dash, err := newDashboard(cfg.Dashboard, issuer != nil, internalKey, log)
		if err != nil {
			return err
		}
		opts.Dashboard = dash.Routes()
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("storage", cfg.Storage.Driver).Msg("✅ Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg config.StorageConfig, log zerolog.Logger) (repo.Store, func(), error) {
	if cfg.Driver == "memory" {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return repo.NewInMemoryStore(), func() {}, nil
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return repo.Store{}, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	if cfg.Migrate {
		if err := db.Migrate(database, log); err != nil {
			database.Close()
			return repo.Store{}, nil, err
		}
	}
	return repo.NewPostgresStore(database), func() { database.Close() }, nil
}

// newDashboard builds the pages over a client of the API. With auth enabled
// operators sign in and their own token authorizes each submission.
func newDashboard(cfg config.DashboardConfig, requireLogin bool, internalKey string, log zerolog.Logger) (*dashboard.Dashboard, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("dashboard time zone: %w", err)
	}

	api := client.New(client.Options{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{mw.InternalKeyHeader: internalKey},
	})
	d, err := dashboard.New(api, log.With().Str("component", "dashboard").Logger(), loc)
	if err != nil {
		return nil, err
	}
	if requireLogin {
		d.RequireLogin(api, func(token string) dashboard.API { return api.WithToken(token) })
	}
	return d, nil
}
