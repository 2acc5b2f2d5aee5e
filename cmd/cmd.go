// submodule cmd contains command definitions
package main

import (
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/urfave/cli/v3"
)

// rootCommand runs the lyrics display when no subcommand is given.
func rootCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "lyrx",
		Usage:   "Show lyrics for the track playing in your MPRIS player",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   shared.DefaultConfigPath,
			},
		},
		Before:   r.loadConfig,
		Action:   r.Display,
		Commands: r.register(),
	}
}

// fetchCommand prints lyrics for one track without opening the display
func fetchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch lyrics for a track and print or save them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "artist",
				Aliases:  []string{"a"},
				Usage:    "Track artist",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "title",
				Aliases:  []string{"t"},
				Usage:    "Track title",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (plain or markdown)",
				Value:   "plain",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to this file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "url",
				Usage: "Print the lyrics page URL and exit",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the lyrics page in a browser and exit",
			},
		},
		Action: r.Fetch,
	}
}

// historyCommand lists recorded plays
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recently played tracks",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of plays to show",
				Value:   20,
			},
			&cli.StringFlag{
				Name:  "artist",
				Usage: "Only show plays by this artist",
			},
			&cli.BoolFlag{
				Name:  "missing",
				Usage: "Only show plays without lyrics",
			},
		},
		Action: r.History,
	}
}

// setupCommand writes a config file and initializes the history database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create the config file and history database",
		Action: r.Setup,
	}
}
