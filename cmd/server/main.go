package main // Entry point package

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/iliyamo/club-stadium-api/internal/config"
	"github.com/iliyamo/club-stadium-api/internal/database"
	"github.com/iliyamo/club-stadium-api/internal/handler"
	"github.com/iliyamo/club-stadium-api/internal/logger"
	"github.com/iliyamo/club-stadium-api/internal/middleware"
	"github.com/iliyamo/club-stadium-api/internal/queue"
	"github.com/iliyamo/club-stadium-api/internal/repository"
	"github.com/iliyamo/club-stadium-api/internal/repository/memory"
	"github.com/iliyamo/club-stadium-api/internal/router"
	"github.com/iliyamo/club-stadium-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	var (
		clubs    service.ClubRepository
		stadiums service.StadiumRepository
		health   handler.Pinger
	)
	switch cfg.Storage {
	case config.StorageMemory:
		clubs, stadiums = memory.NewClubStore(), memory.NewStadiumStore()
		log.Warn().Msg("using in-memory storage; data is lost on restart")
	default:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		clubs, stadiums, health = repository.NewClubRepo(db), repository.NewStadiumRepo(db), db
	}

	var events handler.Notifier
	ecfg := config.LoadEventsConfig()
	if ecfg.Enabled {
		events = queue.NewPublisher(ecfg.URL, ecfg.Queue, log)
		log.Info().Str("queue", ecfg.Queue).Msg("change events enabled")
	}
	if ecfg.Consume {
		consumer := &queue.Consumer{URL: ecfg.URL, Queue: ecfg.Queue, Dir: ecfg.LogDir, Log: log}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("change consumer stopped")
			}
		}()
	}

	rdb := config.NewRedisClient(ctx, config.LoadRedisConfig())
	if rdb == nil {
		log.Warn().Msg("redis unavailable; cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	router.RegisterRoutes(e, health)
	router.RegisterClubs(e, handler.NewClubHandler(service.NewClubService(clubs), events), cache)
	router.RegisterStadiums(e, handler.NewStadiumHandler(service.NewStadiumService(stadiums), events), cache)

	addr := ":" + cfg.Port
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("storage", cfg.Storage).Msg("listening")
		errc <- e.Start(addr)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := database.Open(ctx, database.Options{
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		Name: cfg.DBName,
	})
	if err != nil {
		return nil, err
	}
	if cfg.DBAutoSchema {
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}
