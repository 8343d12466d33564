package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/scoring"
	"github.com/abhisek/triage/internal/store"
)

func TestAssessmentMarkdown(t *testing.T) {
	res := scoring.AssessmentResults{Anxiety: 4, Depression: 2, Stress: 3, Sleep: 8, Social: 7, Overall: 8}
	md := AssessmentMarkdown(res, false, Meta{Generated: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)})

	assert.Contains(t, md, "# Mental Health Assessment")
	assert.Contains(t, md, "| Anxiety | 4/10 | `████░░░░░░` |")
	assert.Contains(t, md, "**Overall wellbeing:** 8/10")
	assert.Contains(t, md, "January 2, 2026")
	assert.NotContains(t, md, "> **")
}

func TestAssessmentMarkdown_Crisis(t *testing.T) {
	info, err := catalog.Default().Crisis(catalog.English)
	require.NoError(t, err)

	md := AssessmentMarkdown(scoring.AssessmentResults{}, true, Meta{Crisis: &info})
	assert.Contains(t, md, "> **Important Notice**")
	assert.Contains(t, md, "988 or 1-800-273-8255")
}

func TestSymptomMarkdown(t *testing.T) {
	cat, err := catalog.Default().Category(catalog.English, "skin")
	require.NoError(t, err)

	results := []scoring.ScoreResult{
		{Condition: "acne", Label: "Acne", Score: 30, Severity: scoring.Mild},
		{Condition: "eczema", Label: "Eczema", Score: 12, Severity: scoring.Unlikely},
	}
	md := SymptomMarkdown(cat, scoring.Fill(5), results, Meta{})

	assert.Contains(t, md, "# Symptom Check: Skin")
	assert.Contains(t, md, "| Acne | 30 | Mild |")
	assert.Contains(t, md, "| 10 | How many blackheads or whiteheads do you have? | 5 |")
	assert.NotContains(t, md, ConsultNotice)

	results[0].Severity = scoring.Unlikely
	assert.Contains(t, SymptomMarkdown(cat, scoring.Fill(1), results, Meta{}), ConsultNotice)
	assert.Contains(t, SymptomMarkdown(cat, scoring.Fill(1), nil, Meta{}), "No conditions are registered")
}

func TestHistoryMarkdown(t *testing.T) {
	at := time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	entries := []store.HistoryEntry{
		{Sequence: 2, Timestamp: at, Symptom: &store.SymptomRecord{Category: "head", Results: []scoring.ScoreResult{{Label: "Migraine", Severity: scoring.Moderate}}}},
		{Sequence: 1, Timestamp: at, Assessment: &store.AssessmentRecord{Results: scoring.AssessmentResults{Overall: 6}, CrisisDetected: true}},
	}
	md := HistoryMarkdown(entries, Meta{})

	assert.Contains(t, md, "| 2026-02-03 10:30 | symptoms: head | Migraine (Moderate) |")
	assert.Contains(t, md, "| 2026-02-03 10:30 | assessment | overall 6/10, crisis flagged |")
	assert.Contains(t, HistoryMarkdown(nil, Meta{}), "No results recorded yet.")
}

func TestHTML(t *testing.T) {
	md := AssessmentMarkdown(scoring.AssessmentResults{Anxiety: 1, Overall: 9}, false, Meta{})
	page, err := HTML(md, "Report <1>")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(page, "<!doctype html>"))
	assert.Contains(t, page, "<title>Report &lt;1&gt;</title>")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<h1>Mental Health Assessment</h1>")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "░░░░░░░░░░", Bar(0))
	assert.Equal(t, "██████████", Bar(10))
	assert.Equal(t, "██████████", Bar(14))
	assert.Equal(t, "░░░░░░░░░░", Bar(-3))
}
