package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/rescp17/tuievents/internal/config"
	"github.com/rescp17/tuievents/internal/demo"
	"github.com/rescp17/tuievents/pkg/ui"
)

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the tuievents command tree. The effective configuration is
// resolved before any command runs: file values, then explicitly set flags,
// then a single validation.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		cfg        *config.Config
	)
	flags := config.Default()

	cmd := &cobra.Command{
		Use:   "tuievents",
		Short: "A terminal demo of widget-scoped event handling",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, loaded, flags)
			if err := loaded.Validate(); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a YAML config file")
	pf.DurationVar(&flags.TickInterval, "tick", flags.TickInterval, "Interval between tick events")
	pf.StringVar(&flags.Theme, "theme", flags.Theme, fmt.Sprintf("Color theme %v", demo.ThemeNames()))
	pf.BoolVar(&flags.Mouse, "mouse", flags.Mouse, "Enable mouse clicks")
	pf.StringVar(&flags.LogFile, "log-file", flags.LogFile, "File that receives the logs")
	pf.BoolVar(&flags.Debug, "debug", flags.Debug, "Enable debug logging")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.AddCommand(configCmd)

	return cmd
}

// applyFlags copies the flags the user set explicitly over the loaded file values.
func applyFlags(cmd *cobra.Command, cfg, flags *config.Config) {
	pf := cmd.Flags()
	if pf.Changed("tick") {
		cfg.TickInterval = flags.TickInterval
	}
	if pf.Changed("theme") {
		cfg.Theme = flags.Theme
	}
	if pf.Changed("mouse") {
		cfg.Mouse = flags.Mouse
	}
	if pf.Changed("log-file") {
		cfg.LogFile = flags.LogFile
	}
	if pf.Changed("debug") {
		cfg.Debug = flags.Debug
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close log file", "error", err)
		}
	}()
	log.SetOutput(f)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	theme, err := demo.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	ctrlConfig := cfg.Controller()
	ctrlConfig.Logger = logger
	ctrl, err := demo.NewController(ctrlConfig)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	mounted, err := demo.Mount(ctrl, theme, demo.DefaultKeyMap())
	if err != nil {
		return err
	}
	defer func() {
		if err := mounted.Close(); err != nil {
			slog.Warn("failed to unmount widgets", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go demo.EmitTicks(ctx, ctrl, cfg.TickInterval)

	opts := ui.Options[demo.State, demo.Event]{
		Translate: demo.Translate,
		Quit:      func(s demo.State) bool { return s.ShouldQuit },
	}
	var programOpts []tea.ProgramOption
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts.Click = demo.TranslateClick
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	slog.Info("Starting", "theme", theme.Name, "tick", cfg.TickInterval, "buffer", cfg.EventBufferSize)
	model := ui.NewModel(ctrl, mounted, opts)
	if err := ui.Run(model, programOpts...); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	state := ctrl.State()
	slog.Info("Stopped", "uptime", time.Since(state.Started).Round(time.Second), "ticks", state.Ticks, "counter", state.Counter, "clicks", state.Clicks)
	return nil
}
