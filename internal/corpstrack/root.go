package corpstrack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flagConfigPath string

	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// SetVersionInfo sets build metadata from ldflags.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

var rootCmd = &cobra.Command{
	Use:   "corpstrack",
	Short: "Terminal companion for tracking your service year",
	Long: `corpstrack walks you through a short onboarding (stage, state and batch)
and then shows where you are in your service year.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "corpstrack %s\n  commit: %s\n  built:  %s\n", buildVersion, buildCommit, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file (default: ~/.corpstrack/config.yaml)")

	rootCmd.AddCommand(versionCmd)

	// Register headless subcommands.
	initSubcommands(rootCmd)
}

// Execute runs the root command. An interrupt cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves the --config flag and loads the config.
func loadConfig() (*Config, error) {
	cfgPath := flagConfigPath
	if cfgPath == "" {
		cfgPath = ConfigPath()
	}
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger opens the configured log file. An invalid level is logged and
// treated as info.
func newLogger(cfg *Config) *Logger {
	level, levelErr := ParseLevel(cfg.LogLevel)
	logger := NewLogger(cfg.LogPath, level)
	if levelErr != nil {
		logger.Warn("%v, using info", levelErr)
	}
	return logger
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Only one TUI instance at a time.
	if err := AcquirePIDLock(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return nil // Exit gracefully, not an error.
	}
	defer ReleasePIDLock()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer logger.Close()
	logger.Info("corpstrack %s started", buildVersion)

	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	model := NewModel(cfg, logger)
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("interrupted")
			return nil
		}
		logger.Error("TUI fatal: %v", err)
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
