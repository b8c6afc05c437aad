package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/socialwall/backend/internal/feed"
	"github.com/anonto42/socialwall/backend/internal/repositories"
	"github.com/anonto42/socialwall/backend/internal/router"
	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/anonto42/socialwall/backend/internal/session"
	"github.com/anonto42/socialwall/backend/internal/translation"
	"github.com/anonto42/socialwall/backend/internal/views"
	"github.com/anonto42/socialwall/backend/internal/web"
	"github.com/anonto42/socialwall/backend/pkg/config"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/anonto42/socialwall/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)

	seedSource, closeDB, err := loadSeedSource(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load seed")
	}
	defer closeDB()

	store, err := session.NewStore(cfg.SessionCapacity, pageFactory(cfg, seedSource))
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create session store")
	}
	defer store.Close()

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to parse templates")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = validators.NewValidator()

	// Setup global middleware
	config.SetupMiddleware(e, cfg)

	// Setup routes and dependencies
	router.SetupRoutes(e, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("Server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Graceful shutdown failed")
	}
	logger.Log.Info("Server stopped")
}

// loadSeedSource returns the function each new session takes its seed
// from. The in-memory seed is rebuilt per session so ages are relative to
// the session start; a database seed is read once.
func loadSeedSource(cfg *config.Config) (func() seed.Seed, func(), error) {
	switch cfg.SeedSource {
	case config.SeedSourceMemory:
		return func() seed.Seed { return seed.Default(time.Now()) }, func() {}, nil
	case config.SeedSourceDatabase:
		db, err := config.InitDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.Migrate(db.Postgres); err != nil {
			db.CloseDB()
			return nil, nil, errors.Wrap(err, "auto migrate")
		}
		repo := repositories.NewSeedRepository(
			repositories.NewPostgresUserRepository(db.Postgres),
			repositories.NewMongoPostRepository(db.Mongo.Database(cfg.MongoDatabase)),
			repositories.NewPostgresCommentRepository(db.Postgres),
		)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s, err := repo.LoadSeed(ctx)
		if err != nil {
			db.CloseDB()
			return nil, nil, err
		}
		return func() seed.Seed { return s }, db.CloseDB, nil
	default:
		return nil, nil, errors.Errorf("unknown SEED_SOURCE %q", cfg.SeedSource)
	}
}

func pageFactory(cfg *config.Config, seedSource func() seed.Seed) session.Factory {
	translator := translation.NewStub(cfg.TranslateDelay)
	return func() *views.Page {
		f := feed.New(seedSource(),
			feed.WithTranslator(translator),
			feed.WithLoadLatency(cfg.LoadDelay),
			feed.WithScrollThreshold(cfg.ScrollThreshold),
			feed.WithViewer(cfg.CurrentUserID),
		)
		return views.NewPage(f, cfg.MaxImageBytes)
	}
}
