// Package cli wires the vitals commands: the root command runs the
// dashboard, plus init and version.
package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vitals-sh/vitals/internal/config"
	"github.com/vitals-sh/vitals/internal/dashboard"
	"github.com/vitals-sh/vitals/internal/logger"
	"github.com/vitals-sh/vitals/internal/metrics"
	"github.com/vitals-sh/vitals/internal/tui"
)

var (
	configFlag   string
	intervalFlag time.Duration
	historyFlag  int
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Live terminal dashboard for host metrics",
	Long: `vitals shows a live dashboard of host metrics in your terminal:
CPU and memory history charts, disk capacity gauges, per-interface
network sparklines, and a ranked process table.

Keys: q quit, j/↓ and k/↑ move the process selection.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.Flags().DurationVar(&intervalFlag, "interval", 0, "frame tick period (overrides config)")
	rootCmd.Flags().IntVar(&historyFlag, "history", -1, "max samples per stream, 0 for unbounded (overrides config)")
}

// resolveConfig loads config and applies flag overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = intervalFlag
	}
	if cmd.Flags().Changed("history") {
		cfg.History = historyFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDashboard(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Honor NO_COLOR and friends before any styles render.
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// The engine logs at debug only; anything louder would fight the
	// alternate screen for the terminal.
	log := logger.NewEnvLogger("[vitals]")

	provider := metrics.NewSystemProvider(log)
	engine := dashboard.NewEngine(provider, log, dashboard.Options{
		HistoryLimit:         cfg.History,
		ProcessRefreshFrames: cfg.ProcessRefreshFrames,
		DiskRefreshFrames:    cfg.DiskRefreshFrames,
	})
	ctrl := dashboard.NewController(engine)

	model := tui.NewModel(ctrl, cfg.Interval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
