package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklist/internal/cli/styles"
	"github.com/thenoetrevino/tasklist/internal/config"
	"github.com/thenoetrevino/tasklist/internal/logging"
	"github.com/thenoetrevino/tasklist/internal/tui"
)

// shutdownTimeout bounds the final flush
const shutdownTimeout = 5 * time.Second

// RootOptions holds global flags and the state resolved from them
type RootOptions struct {
	ConfigPath string

	cfg       *config.Config
	logCloser io.Closer
}

// Config returns the configuration loaded for this invocation
func (o *RootOptions) Config() *config.Config {
	if o.cfg == nil {
		return config.Default()
	}
	return o.cfg
}

func (o *RootOptions) load() error {
	var (
		cfg *config.Config
		err error
	)
	if o.ConfigPath != "" {
		cfg, err = config.LoadFile(o.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	o.cfg = cfg

	styles.Init(cfg.ColorScheme)

	if cfg.Log.Path != "" {
		closer, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		o.logCloser = closer
	}
	return nil
}

func (o *RootOptions) release() {
	if o.logCloser != nil {
		_ = o.logCloser.Close()
		o.logCloser = nil
	}
}

// withCLI opens the store for one command, runs fn and flushes on the way out
func (o *RootOptions) withCLI(ctx context.Context, fn func(c *CLI) error) error {
	c, err := NewCLI(ctx, o.Config())
	if err != nil {
		return err
	}
	runErr := fn(c)
	if closeErr := closeCLI(ctx, c); closeErr != nil {
		slog.Error("error closing task store", "error", closeErr)
		if runErr == nil {
			runErr = fmt.Errorf("failed to save tasks: %w", closeErr)
		}
	}
	return runErr
}

// NewRootCommand creates the root command. Without a subcommand it starts the TUI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tasklist",
		Short: "A single list of tasks, in the terminal",
		Long: `tasklist keeps one ordered list of tasks in a local database.

Run without arguments to open the interactive list, or use the
subcommands to script it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.release()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(contextOf(cmd), opts.Config())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/tasklist/config.yaml)")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewRenameCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))

	return cmd
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	c, err := NewCLI(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCLI(ctx, c); err != nil {
			slog.Error("error closing task store", "error", err)
		}
	}()

	model := tui.New(ctx, c.List, c.App, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, saving tasks")
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// closeCLI flushes and closes with a context that survives cancellation of
// ctx, so a SIGTERM still gets its final flush.
func closeCLI(ctx context.Context, c *CLI) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return c.Close(ctx)
}

// usageArgs tags positional-argument errors with ExitUsage
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return withExitCode(ExitUsage, validate(cmd, args))
	}
}

// addOutputFlags registers the agent-friendly flags every subcommand carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
