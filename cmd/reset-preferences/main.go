package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"go-wholesale-console/internal/repository"
	"go-wholesale-console/pkg/config"
	"go-wholesale-console/pkg/database"
	"go-wholesale-console/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "reset the stored language/theme of this email")
	all := flag.Bool("all", false, "reset the stored preferences of every user")
	flag.Parse()

	// 1. Load Env
	_ = godotenv.Load()

	cfg, err := config.Load()
	log := logger.New(logger.Config{Env: "development", Level: "info"})
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	if (*email == "") == !*all {
		log.Error().Msg("Pass exactly one of -email or -all")
		flag.Usage()
		os.Exit(2)
	}
	if cfg.DB.Store != config.StorePostgres {
		log.Fatal().Str("store", cfg.DB.Store).Msg("Preferences are not persisted; set PREFERENCES_STORE=postgres")
	}

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to preferences database")
	}
	repo := repository.NewPreferenceRepo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 3. Delete
	if *all {
		n, err := repo.DeleteAll(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to reset preferences")
		}
		log.Info().Int64("deleted", n).Msg("All preferences reset")
		return
	}

	if err := repo.DeleteByEmail(ctx, *email); err != nil {
		if errors.Is(err, repository.ErrPreferenceNotFound) {
			log.Warn().Str("email", *email).Msg("No stored preferences for this email")
			return
		}
		log.Fatal().Err(err).Msg("Failed to reset preferences")
	}
	log.Info().Str("email", *email).Msg("Preferences reset")
}
