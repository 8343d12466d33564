package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/report"
	"github.com/abhisek/triage/internal/scoring"
	"github.com/abhisek/triage/internal/symptom"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a symptom category without the TUI",
	Long: `Score one symptom category from ten comma-separated answers in 1..10,
in question order. Use "triage catalog list" to see the questions.`,
	Example: `  triage score --category skin --answers 8,7,3,2,1,1,1,9,2,8
  triage score --category head --answers 5,5,5,5,5,5,5,5,5,5 --report head.html`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("category", "", "Category key (required)")
	scoreCmd.Flags().String("answers", "", "Ten comma-separated answers in 1..10 (required)")
	scoreCmd.Flags().String("report", "", "Write a report to this .md or .html file")
	scoreCmd.Flags().Bool("json", false, "Print results as JSON")
	scoreCmd.Flags().Bool("save", false, "Record the run in the history database")
	_ = scoreCmd.MarkFlagRequired("category")
	_ = scoreCmd.MarkFlagRequired("answers")
}

// parseAnswers reads exactly QuestionsPerCategory comma-separated integers.
// Range checks are left to the controller.
func parseAnswers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != catalog.QuestionsPerCategory {
		return nil, fmt.Errorf("want %d answers, got %d", catalog.QuestionsPerCategory, len(parts))
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func runScore(cmd *cobra.Command, args []string) error {
	categoryKey, _ := cmd.Flags().GetString("category")
	answersVal, _ := cmd.Flags().GetString("answers")
	reportPath, _ := cmd.Flags().GetString("report")
	asJSON, _ := cmd.Flags().GetBool("json")
	save, _ := cmd.Flags().GetBool("save")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	provider, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	lang := catalog.Language(cfg.Language)

	values, err := parseAnswers(answersVal)
	if err != nil {
		return err
	}

	opts := []symptom.Option{symptom.WithLogger(logger)}
	if save {
		cfg.History = true
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		opts = append(opts, symptom.WithSink(st.Results()))
	}

	ctrl, err := symptom.New(provider, lang, opts...)
	if err != nil {
		return err
	}
	if err := ctrl.SelectCategory(categoryKey); err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(provider.CategoryKeys(), ", "))
	}
	for i, v := range values {
		if err := ctrl.SetAnswer(i, v); err != nil {
			return err
		}
	}

	results, saveErr := printScore(cmd.Context(), ctrl, cmd.OutOrStdout(), asJSON)
	if saveErr != nil && !errors.Is(saveErr, errNotSaved) {
		return saveErr
	}

	if reportPath != "" {
		cat, _ := ctrl.Category()
		md := report.SymptomMarkdown(cat, ctrl.Answers(), results, report.Meta{
			Language:  lang,
			Generated: time.Now(),
		})
		if err := writeReport(reportPath, "Symptom Check: "+cat.Label, md); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", reportPath)
	}
	return saveErr
}

// errNotSaved marks a run that was scored and printed but not recorded.
var errNotSaved = errors.New("results could not be saved")

// printScore computes the selected category and prints the results. When
// only recording the run fails, the results are still printed and returned
// together with the error.
func printScore(ctx context.Context, ctrl *symptom.Controller, out io.Writer, asJSON bool) ([]scoring.ScoreResult, error) {
	results, err := ctrl.Compute(ctx)
	if errors.Is(err, symptom.ErrNoCategory) {
		return nil, err
	}
	var saveErr error
	if err != nil {
		saveErr = fmt.Errorf("%w: %w", errNotSaved, err)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return nil, err
		}
	} else {
		printResults(out, results)
	}
	return results, saveErr
}

func printResults(w io.Writer, results []scoring.ScoreResult) {
	fmt.Fprintf(w, "%-28s  %5s  %s\n", "Condition", "Score", "Severity")
	fmt.Fprintln(w, strings.Repeat("─", 48))
	for _, r := range results {
		name := r.Label
		if name == "" {
			name = r.Condition
		}
		fmt.Fprintf(w, "%-28s  %5d  %s\n", name, r.Score, r.Severity)
	}
	if scoring.AllUnlikely(results) {
		fmt.Fprintf(w, "\n%s\n", report.ConsultNotice)
	}
}

// writeReport writes markdown to path, converting it to HTML for .html
// and .htm paths.
func writeReport(path, title, markdown string) error {
	var data string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		data = markdown
	case ".html", ".htm":
		html, err := report.HTML(markdown, title)
		if err != nil {
			return err
		}
		data = html
	default:
		return fmt.Errorf("report %s: unsupported extension %q (use .md or .html)", path, filepath.Ext(path))
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
