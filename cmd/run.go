package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/app"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/screen"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Start the mental health check",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartAssessment)
	},
}

var symptomsCmd = &cobra.Command{
	Use:   "symptoms",
	Short: "Open the symptom checker",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartSymptoms)
	},
}

// runApp loads configuration, opens the store and launches the TUI.
func runApp(cmd *cobra.Command, start app.Start) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	provider, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	env := &screen.Env{
		Catalog:       provider,
		Language:      catalog.Language(cfg.Language),
		DefaultAnswer: cfg.DefaultAnswer,
		Logger:        logger,
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
		env.Results = st.Results()
	}

	logger.Info("starting tui", "language", cfg.Language, "history", cfg.History, "catalog", provider.Version())
	if err := app.Run(app.Options{Env: env, Start: start, Welcome: cfg.Welcome}); err != nil {
		return err
	}

	if st != nil && cfg.KeepResults > 0 {
		if err := st.Results().Prune(context.Background(), cfg.KeepResults); err != nil {
			return fmt.Errorf("prune history: %w", err)
		}
	}
	return nil
}
