package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/lyrx/internal/display"
	"github.com/desertthunder/lyrx/internal/player"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/desertthunder/lyrx/internal/tasks"
	"github.com/desertthunder/lyrx/internal/terminal"
	"github.com/urfave/cli/v3"
)

// Screen is the terminal the display draws on and reads input from.
type Screen interface {
	display.Surface
	tasks.EventSource
	Close()
}

// PlayerOpener resolves the player to follow. The returned func releases its connection.
type PlayerOpener func(ctx context.Context, name string) (player.Player, func() error, error)

// ScreenOpener takes over the terminal.
type ScreenOpener func() (Screen, error)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	openPlayer PlayerOpener
	openScreen ScreenOpener
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
	OpenPlayer PlayerOpener
	OpenScreen ScreenOpener
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = shared.DefaultConfigPath
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.OpenPlayer == nil {
		opts.OpenPlayer = openMPRIS
	}
	if opts.OpenScreen == nil {
		opts.OpenScreen = openTerminal
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		openPlayer: opts.OpenPlayer,
		openScreen: opts.OpenScreen,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		fetchCommand, historyCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig reads the file named by --config. A missing file means defaults,
// so `lyrx setup` can create it.
func (r *Runner) loadConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if path == "" {
		path = shared.DefaultConfigPath
	}

	expanded, err := shared.ExpandPath(path)
	if err != nil {
		return ctx, err
	}
	r.configPath = expanded

	if _, err := os.Stat(expanded); err != nil {
		r.logger.Debug("no config file, using defaults", "path", expanded)
		return ctx, nil
	}

	config, err := shared.LoadConfig(expanded)
	if err != nil {
		return ctx, err
	}
	r.config = config
	shared.SetLogLevel(r.logger, shared.ParseLogLevel(config.Log.Level))
	return ctx, nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	return r.writePlain(format+"\n", args...)
}

func openMPRIS(ctx context.Context, name string) (player.Player, func() error, error) {
	finder, err := player.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}

	p, err := finder.Find(ctx, name)
	if err != nil {
		finder.Close()
		return nil, nil, err
	}
	return p, finder.Close, nil
}

func openTerminal() (Screen, error) {
	s, err := terminal.New()
	if err != nil {
		return nil, err
	}
	return s, nil
}
