package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskgrid/internal/logging"
	"github.com/sandeepkv93/taskgrid/internal/storage"
	"github.com/sandeepkv93/taskgrid/internal/store"
	"github.com/sandeepkv93/taskgrid/internal/update"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	store      string
	filter     string
	dateLayout string
	logFile    string
	logLevel   string
	desktop    bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &options{}
	defaults := update.DefaultRuntimeConfig()
	cmd := &cobra.Command{
		Use:           "taskgrid",
		Short:         "Edit a task list in the terminal",
		Long:          "taskgrid keeps a task list for the current session and edits it cell by cell.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML config file (or TASKGRID_CONFIG)")
	flags.StringVar(&opts.store, "store", defaults.Store, "task backend: memory or sqlite (in-memory database)")
	flags.StringVarP(&opts.filter, "filter", "f", defaults.DefaultFilter, "initial filter: all, active or completed")
	flags.StringVar(&opts.dateLayout, "date-layout", defaults.DateLayout, "Go time layout used to display deadlines")
	flags.StringVar(&opts.logFile, "log-file", defaults.LogFile, "write logs to this file (discarded when empty)")
	flags.StringVar(&opts.logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&opts.desktop, "desktop-notifications", defaults.DesktopNotifications, "mirror alerts to desktop notifications")
	return cmd
}

// loadConfig layers defaults, the config file, TASKGRID_* variables and
// explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command, opts *options) (update.RuntimeConfig, error) {
	cfg := update.DefaultRuntimeConfig()

	path := strings.TrimSpace(opts.configPath)
	if path == "" {
		path = strings.TrimSpace(os.Getenv("TASKGRID_CONFIG"))
	}
	if path != "" {
		loaded, err := update.LoadRuntimeConfigFile(cfg, path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = opts.store
	}
	if flags.Changed("filter") {
		cfg.DefaultFilter = opts.filter
	}
	if flags.Changed("date-layout") {
		cfg.DateLayout = opts.dateLayout
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("desktop-notifications") {
		cfg.DesktopNotifications = opts.desktop
	}
	return cfg, cfg.Validate()
}

func openRepository(backend string) (storage.Repository, error) {
	switch backend {
	case update.StoreSQLite:
		return storage.OpenMemorySQLite()
	case update.StoreMemory:
		return storage.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	repo, err := openRepository(cfg.Store)
	if err != nil {
		return err
	}
	defer repo.Close()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	logger.Info("starting", "store", cfg.Store, "filter", cfg.DefaultFilter)
	model := update.NewModelWithConfig(store.New(repo, store.WithLogger(logger)), notifier, cfg, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("stopped")
	return nil
}
