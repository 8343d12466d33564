package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/report"
	"github.com/abhisek/triage/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded assessments and symptom runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		entries, err := st.Results().History(cmd.Context(), limit)
		if err != nil {
			return err
		}

		meta := report.Meta{Language: catalog.Language(cfg.Language), Generated: time.Now()}
		switch format {
		case "text":
			printHistory(cmd.OutOrStdout(), entries)
			return nil
		case "md", "html":
			md := report.HistoryMarkdown(entries, meta)
			if output == "" {
				if format == "html" {
					if md, err = report.HTML(md, "Triage History"); err != nil {
						return err
					}
				}
				_, err := io.WriteString(cmd.OutOrStdout(), md)
				return err
			}
			return writeReport(output, "Triage History", md)
		default:
			return fmt.Errorf("invalid format %q, must be one of: text, md, html", format)
		}
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent results",
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Results().Prune(cmd.Context(), keep); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Kept the %d most recent results of each kind.\n", keep)
		return nil
	},
}

func printHistory(w io.Writer, entries []store.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No results recorded yet.")
		return
	}
	fmt.Fprintf(w, "%-17s  %-20s  %s\n", "When", "Kind", "Summary")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	for _, e := range entries {
		when := e.Timestamp.Local().Format("2006-01-02 15:04")
		switch {
		case e.Assessment != nil:
			summary := fmt.Sprintf("overall %d/10", e.Assessment.Results.Overall)
			if e.Assessment.CrisisDetected {
				summary += ", crisis flagged"
			}
			fmt.Fprintf(w, "%-17s  %-20s  %s\n", when, "assessment", summary)
		case e.Symptom != nil:
			fmt.Fprintf(w, "%-17s  %-20s  %s\n", when, "symptoms: "+e.Symptom.Category, report.SymptomSummary(e.Symptom.Results))
		}
	}
	fmt.Fprintf(w, "\n%d results\n", len(entries))
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of results (0 = all)")
	historyCmd.Flags().String("format", "text", "Output format: text, md or html")
	historyCmd.Flags().StringP("output", "o", "", "Write md/html output to this file")
	historyPruneCmd.Flags().Int("keep", 100, "Number of results of each kind to keep")

	historyCmd.AddCommand(historyPruneCmd)
}
