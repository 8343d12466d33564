package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/app"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/config"
	"github.com/abhisek/triage/internal/logging"
	"github.com/abhisek/triage/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Terminal mental health and symptom self-check",
	Long: `Triage is a terminal self-check tool: a sectional mental-health
questionnaire with crisis detection, and a body-system symptom checker that
scores likely conditions. Results are kept in a local history.

It does not diagnose. See a doctor about anything that worries you.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartHome)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/triage/config.yaml)")
	pf.String("db", "", "Path to SQLite history database (overrides TRIAGE_DB)")
	pf.String("lang", "", "Catalog language, e.g. english or hindi (overrides TRIAGE_LANG)")
	pf.String("catalog", "", "Load questions from a YAML or JSON catalog file (overrides TRIAGE_CATALOG)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides TRIAGE_LOG_LEVEL)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(symptomsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings: file, then TRIAGE_* env vars, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		cfg.Language = v
	}
	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.CatalogPath = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the logger for a command. While the TUI owns the
// terminal, logs go to the configured file or nowhere. The returned func
// closes the log file.
func newLogger(cfg *config.Config, tui bool) (*slog.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case tui:
		return logging.Discard(), closeFn, nil
	}

	return logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: out,
	}), closeFn, nil
}

// loadCatalog returns the configured catalog and checks that it has the
// configured language.
func loadCatalog(cfg *config.Config) (*catalog.Provider, error) {
	p := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	if !p.HasLanguage(catalog.Language(cfg.Language)) {
		return nil, fmt.Errorf("%w: %q (available: %v)", catalog.ErrUnknownLanguage, cfg.Language, p.Languages())
	}
	return p, nil
}

// resolveDBPath returns the configured database path, creating its parent
// directory, or the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database, or returns nil when history is
// disabled.
func openStore(cfg *config.Config) (*store.Store, error) {
	if !cfg.History {
		return nil, nil
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
