package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jonathan/resume-screener/internal/analyzer"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/taxonomy"
)

// buildConfig loads configuration, letting the --verbose flag override
// the file and environment settings.
func buildConfig() (config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, err
	}
	if verboseMode {
		cfg.Verbose = true
	}
	return cfg, nil
}

// buildEngine loads configuration and constructs the analysis engine
// shared by the subcommands.
func buildEngine() (config.Config, *analyzer.Engine, *slog.Logger, error) {
	cfg, err := buildConfig()
	if err != nil {
		return cfg, nil, nil, err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	tax := taxonomy.LoadOrDefault(cfg.TaxonomyPath, logger)

	profiles := roles.DefaultRegistry()
	if cfg.RoleProfilesPath != "" {
		loaded, err := roles.LoadProfiles(cfg.RoleProfilesPath)
		if err != nil {
			return cfg, nil, nil, fmt.Errorf("failed to load role profiles: %w", err)
		}
		logger.Debug("loaded role profiles", "path", cfg.RoleProfilesPath, "count", len(loaded))
		profiles = roles.NewRegistry(loaded)
	}

	engine := analyzer.NewEngine(tax, profiles, logger)
	return cfg, engine, logger, nil
}
