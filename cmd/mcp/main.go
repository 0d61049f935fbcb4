package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/homehub/pkg/config"
	"github.com/urmzd/homehub/pkg/db"
	"github.com/urmzd/homehub/pkg/device/schema"
	"github.com/urmzd/homehub/pkg/hub"
	"github.com/urmzd/homehub/pkg/logging"
	homehubmcp "github.com/urmzd/homehub/pkg/mcp"
)

// Set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	dbPath := flag.String("db", "", "Path to database file, or :memory: (default: ~/.config/homehub/homehub.db)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config file")
	}
	// Logging must go to stderr, stdout is the MCP transport
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

	// Bootstrap is a no-op once a profile exists
	if err := database.Bootstrap(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap database")
	}

	active, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	tv, light, err := active.Members()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load hub devices")
	}

	controller, err := hub.NewController(tv, light)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create hub controller")
	}
	defer controller.Close()

	validator := schema.NewValidator()
	mcpServer := homehubmcp.NewServer(controller, validator, version)

	log.Info().Str("profile", active.Profile.Name).Msg("Starting MCP server on stdio")

	if err := mcpServer.ServeStdio(); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}
