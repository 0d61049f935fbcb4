package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/homehub/pkg/api"
	"github.com/urmzd/homehub/pkg/config"
	"github.com/urmzd/homehub/pkg/db"
	"github.com/urmzd/homehub/pkg/device/schema"
	"github.com/urmzd/homehub/pkg/hub"
	"github.com/urmzd/homehub/pkg/logging"

	_ "github.com/urmzd/homehub/docs"
)

// @title           Homehub API
// @version         1.0
// @description     REST API for controlling the home hub's television and light

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Path to YAML config file")
	dbPath := flag.String("db", "", "Path to database file, or :memory: (default: ~/.config/homehub/homehub.db)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config file")
	}
	logging.Setup(cfg.Log, os.Stderr)

	if *dbPath == "" {
		*dbPath = cfg.Database.Path
	}

	ctx := context.Background()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Bootstrap if needed (first run)
	needsBootstrap, err := database.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check bootstrap status")
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := database.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap database")
		}
		log.Info().Msg("Database bootstrapped successfully")
	}

	active, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	addr := active.APIAddress()
	if cfg.API.Address != "" {
		addr = cfg.API.Address
	}

	log.Info().
		Str("profile", active.Profile.Name).
		Str("timezone", active.Timezone()).
		Str("api_address", addr).
		Msg("Configuration loaded")

	tv, light, err := active.Members()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load hub devices")
	}

	controller, err := hub.NewController(tv, light)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create hub controller")
	}

	validator := schema.NewValidator()
	router := api.NewRouter(controller, controller, validator)

	// Handle shutdown gracefully
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		controller.Close()
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
		os.Exit(0)
	}()

	log.Info().Str("address", addr).Msg("Starting API server")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
