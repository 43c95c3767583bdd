package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rentguide/internal/config"
	"rentguide/internal/database"
	"rentguide/internal/guide"
	"rentguide/internal/server"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	describer := guide.NewDescriber(cfg.WikipediaAPIURL, cfg.WikiTimeout)
	r := server.New(db, describer, cfg.FrontendDist)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
