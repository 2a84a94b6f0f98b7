package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"tradex-backend/internal/app"
	"tradex-backend/internal/config"
	"tradex-backend/internal/sweeper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	fiberApp, db, rdb, err := app.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create failed")
	}

	// Database unreachable at startup is fatal; mid-request failures map to 500.
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("database handle failed")
		}
		if err := sqlDB.Ping(); err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		log.Info().Msg("database connected")
	}
	if rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, rate limiter degrades open")
		} else {
			log.Info().Msg("redis connected")
		}
	}

	if cfg.SweepEnabled && db != nil {
		sw := &sweeper.Sweeper{DB: db, Interval: cfg.SweepInterval}
		sw.Start(context.Background())
		defer sw.Stop()
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
	if err := fiberApp.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
