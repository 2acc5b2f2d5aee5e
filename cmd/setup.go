package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Setup writes the example config (unless one exists) and migrates the history database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	if err := shared.CreateConfigFile(r.configPath); err != nil {
		r.logger.Warn("keeping existing config", "path", r.configPath, "error", err)
	} else {
		r.logger.Info("config file created", "path", r.configPath)
		config, err := shared.LoadConfig(r.configPath)
		if err != nil {
			return err
		}
		r.config = config
	}

	r.logger.Info("initializing history database", "path", r.config.History.Path)
	db, err := shared.OpenHistory(r.config)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	return r.writePlainln("%s", ui.Success("setup complete: %s", r.config.History.Path))
}
