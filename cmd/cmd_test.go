package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/scoring"
	"github.com/abhisek/triage/internal/store"
	"github.com/abhisek/triage/internal/symptom"
)

func TestParseAnswers(t *testing.T) {
	got, err := parseAnswers("1, 2,3,4,5,6,7,8,9,10")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, got)

	_, err = parseAnswers("1,2,3")
	assert.ErrorContains(t, err, "want 10 answers")

	_, err = parseAnswers("1,2,3,4,5,6,7,8,9,x")
	assert.ErrorContains(t, err, "answer 10")
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()

	md := filepath.Join(dir, "r.md")
	require.NoError(t, writeReport(md, "T", "# Hello\n"))
	data, err := os.ReadFile(md)
	require.NoError(t, err)
	assert.Equal(t, "# Hello\n", string(data))

	html := filepath.Join(dir, "r.html")
	require.NoError(t, writeReport(html, "T", "# Hello\n"))
	data, err = os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1")

	assert.ErrorContains(t, writeReport(filepath.Join(dir, "r.pdf"), "T", ""), "unsupported extension")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	assert.Contains(t, buf.String(), "No results recorded yet.")

	buf.Reset()
	printHistory(&buf, []store.HistoryEntry{{
		Timestamp: time.Now(),
		Symptom: &store.SymptomRecord{
			Category: "stomach",
			Results:  []scoring.ScoreResult{{Condition: "gerd", Label: "Acid Reflux (GERD)", Score: 30, Severity: scoring.Moderate}},
		},
	}})
	out := buf.String()
	assert.Contains(t, out, "symptoms: stomach")
	assert.Contains(t, out, "Acid Reflux (GERD) (Moderate)")
	assert.True(t, strings.HasSuffix(out, "1 results\n"))
}

func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	reportPath := filepath.Join(dir, "skin.md")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"score", "--category", "skin", "--answers", "9,9,1,1,1,1,1,9,1,9", "--report", reportPath})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Acne")
	assert.Contains(t, out.String(), "Report written to")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Symptom Check: Skin")
}

type failingSink struct{}

func (failingSink) RecordSymptomRun(context.Context, symptom.Run) error {
	return errors.New("disk full")
}

func TestPrintScore_SinkFailureStillPrints(t *testing.T) {
	ctrl, err := symptom.New(catalog.Default(), catalog.English, symptom.WithSink(failingSink{}))
	require.NoError(t, err)
	require.NoError(t, ctrl.SelectCategory("skin"))

	var out bytes.Buffer
	results, err := printScore(context.Background(), ctrl, &out, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, errNotSaved)
	assert.ErrorContains(t, err, "disk full")
	assert.Len(t, results, 4)
	assert.Contains(t, out.String(), "Acne")
}

func TestPrintScore_NoCategory(t *testing.T) {
	ctrl, err := symptom.New(catalog.Default(), catalog.English)
	require.NoError(t, err)

	var out bytes.Buffer
	_, err = printScore(context.Background(), ctrl, &out, true)
	assert.ErrorIs(t, err, symptom.ErrNoCategory)
	assert.NotErrorIs(t, err, errNotSaved)
	assert.Empty(t, out.String())
}

func TestCatalogValidate_WarnsOnZeroMild(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	def := catalog.SeedDefinition()
	def.Categories[0].Conditions[0].Thresholds.Mild = 0
	data, err := catalog.Marshal(def, "yaml")
	require.NoError(t, err)
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"catalog", "validate", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "warning: skin/acne cannot reach [Unlikely]")
}
