// Command seeder writes the sample users and posts into PostgreSQL and
// MongoDB so the server can run with SEED_SOURCE=database.
package main

import (
	"context"
	"time"

	"github.com/anonto42/socialwall/backend/internal/repositories"
	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/anonto42/socialwall/backend/pkg/config"
	"github.com/anonto42/socialwall/backend/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Env, cfg.LogLevel)

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to initialize databases")
	}
	defer db.CloseDB()

	if err := repositories.Migrate(db.Postgres); err != nil {
		logger.Log.WithError(err).Fatal("Failed to auto migrate models")
	}

	repo := repositories.NewSeedRepository(
		repositories.NewPostgresUserRepository(db.Postgres),
		repositories.NewMongoPostRepository(db.Mongo.Database(cfg.MongoDatabase)),
		repositories.NewPostgresCommentRepository(db.Postgres),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := seed.Default(time.Now())
	if err := repo.StoreSeed(ctx, s); err != nil {
		logger.Log.WithError(err).Fatal("Failed to store seed")
	}
	if err := repo.VerifySeed(ctx, s); err != nil {
		logger.Log.WithError(err).Fatal("Stored seed does not read back")
	}
	logger.Log.WithField("users", len(s.Users)).WithField("posts", len(s.Posts)).Info("Seed stored")
}
