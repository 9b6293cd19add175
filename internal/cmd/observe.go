package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fiberscope/fiberscope/hook"
	"github.com/fiberscope/fiberscope/internal/config"
	"github.com/fiberscope/fiberscope/internal/demo"
	"github.com/fiberscope/fiberscope/internal/logging"
	"github.com/fiberscope/fiberscope/internal/tui"
)

var observeCmd = &cobra.Command{
	Use:   "observe",
	Short: "Watch hook activity in a live terminal view",
	Long: `Observe installs a hook on a demo host, drives it with scripted renderer
activity, and renders the hook's view of the world: attached renderers,
their build types, mounted root counts, and a scrolling event log.

Press q to quit.`,
	RunE: runObserve,
}

func init() {
	rootCmd.AddCommand(observeCmd)
}

func runObserve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Without a log directory the logger writes to stderr, which would tear
	// the alt-screen TUI apart; discard instead.
	logger := logging.NopLogger()
	if cfg.Logging.Dir != "" {
		logger, err = logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
	}
	defer logger.Close()

	host := &hook.Host{}
	h := hook.Install(host, hook.WithLogger(logger.WithComponent("hook").Slog()))

	events, teardown := tui.Bridge(h, cfg.Observe.MaxEventRows)
	defer teardown()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	driver := demo.New(h, cfg.Observe.Renderers, cfg.Observe.CommitInterval(), logger)
	go driver.Run(ctx)

	program := tea.NewProgram(
		tui.NewModel(h, events, cfg.Observe.MaxEventRows),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("observer failed: %w", err)
	}
	return nil
}
