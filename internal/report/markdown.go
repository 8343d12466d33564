// Package report renders assessment and symptom results as Markdown and,
// through goldmark, as a standalone HTML page.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/scoring"
	"github.com/abhisek/triage/internal/store"
)

// Meta describes the context a report was produced in.
type Meta struct {
	Title     string
	Language  catalog.Language
	Generated time.Time
	// Crisis, when set, is printed on assessments with positive crisis
	// answers.
	Crisis *catalog.CrisisInfo
}

// ConsultNotice is printed when every condition scored Unlikely.
const ConsultNotice = "None of the conditions scored above Unlikely. If your symptoms persist or worsen, please consult a doctor."

var domainTitles = map[string]string{
	scoring.DomainAnxiety:    "Anxiety",
	scoring.DomainDepression: "Depression",
	scoring.DomainStress:     "Stress",
	scoring.DomainSleep:      "Sleep",
	scoring.DomainSocial:     "Social",
}

// DomainTitle is the display name of a sectional domain.
func DomainTitle(domain string) string {
	if t, ok := domainTitles[domain]; ok {
		return t
	}
	return domain
}

func header(b *strings.Builder, fallback string, meta Meta) {
	title := meta.Title
	if title == "" {
		title = fallback
	}
	fmt.Fprintf(b, "# %s\n\n", title)
	if !meta.Generated.IsZero() {
		fmt.Fprintf(b, "- **Date:** %s\n", meta.Generated.Format("January 2, 2006 15:04 MST"))
	}
	if meta.Language != "" {
		fmt.Fprintf(b, "- **Language:** %s\n", meta.Language)
	}
	b.WriteString("\n")
}

// Bar draws a ten-cell meter for a 0..10 score.
func Bar(score int) string {
	score = min(max(score, 0), catalog.ScaleMax)
	return strings.Repeat("█", score) + strings.Repeat("░", catalog.ScaleMax-score)
}

// AssessmentMarkdown renders the domain and overall scores of a sectional
// assessment.
func AssessmentMarkdown(res scoring.AssessmentResults, crisis bool, meta Meta) string {
	var b strings.Builder
	header(&b, "Mental Health Assessment", meta)

	if crisis && meta.Crisis != nil {
		fmt.Fprintf(&b, "> **%s**\n>\n> %s\n>\n", meta.Crisis.Title, meta.Crisis.Message)
		for _, r := range meta.Crisis.Resources {
			fmt.Fprintf(&b, "> - %s: %s\n", r.Label, r.Contact)
		}
		b.WriteString("\n")
	}

	b.WriteString("| Domain | Score | |\n|---|---:|---|\n")
	for _, d := range scoring.Domains {
		s := res.Domain(d)
		fmt.Fprintf(&b, "| %s | %d/10 | `%s` |\n", DomainTitle(d), s, Bar(s))
	}
	fmt.Fprintf(&b, "\n**Overall wellbeing:** %d/10\n", res.Overall)
	b.WriteString("\nHigher anxiety, depression and stress scores mean more symptoms. Higher sleep, social and overall scores mean better wellbeing.\n")
	return b.String()
}

// SymptomMarkdown renders the answers and condition results of one symptom
// run against cat.
func SymptomMarkdown(cat catalog.Category, answers scoring.Vector, results []scoring.ScoreResult, meta Meta) string {
	var b strings.Builder
	header(&b, "Symptom Check: "+cat.Label, meta)

	b.WriteString("## Results\n\n")
	if len(results) == 0 {
		b.WriteString("No conditions are registered for this category.\n\n")
	} else {
		b.WriteString("| Condition | Score | Severity |\n|---|---:|---|\n")
		for _, r := range results {
			fmt.Fprintf(&b, "| %s | %d | %s |\n", escapeCell(conditionName(r)), r.Score, r.Severity)
		}
		b.WriteString("\n")
	}
	if scoring.AllUnlikely(results) {
		fmt.Fprintf(&b, "> %s\n\n", ConsultNotice)
	}

	b.WriteString("## Answers\n\n| # | Question | Answer |\n|---:|---|---:|\n")
	for i, q := range cat.Questions {
		fmt.Fprintf(&b, "| %d | %s | %d |\n", i+1, escapeCell(q.Text), answers[i])
	}
	return b.String()
}

// HistoryMarkdown renders a merged history list.
func HistoryMarkdown(entries []store.HistoryEntry, meta Meta) string {
	var b strings.Builder
	header(&b, "Triage History", meta)

	if len(entries) == 0 {
		b.WriteString("No results recorded yet.\n")
		return b.String()
	}

	b.WriteString("| When | Kind | Summary |\n|---|---|---|\n")
	for _, e := range entries {
		when := e.Timestamp.Format("2006-01-02 15:04")
		switch {
		case e.Assessment != nil:
			a := e.Assessment
			summary := fmt.Sprintf("overall %d/10", a.Results.Overall)
			if a.CrisisDetected {
				summary += ", crisis flagged"
			}
			fmt.Fprintf(&b, "| %s | assessment | %s |\n", when, summary)
		case e.Symptom != nil:
			fmt.Fprintf(&b, "| %s | symptoms: %s | %s |\n", when, escapeCell(e.Symptom.Category), escapeCell(SymptomSummary(e.Symptom.Results)))
		}
	}
	return b.String()
}

// SymptomSummary lists conditions above Unlikely, or says none are.
func SymptomSummary(results []scoring.ScoreResult) string {
	var parts []string
	for _, r := range results {
		if r.Severity != scoring.Unlikely {
			parts = append(parts, fmt.Sprintf("%s (%s)", conditionName(r), r.Severity))
		}
	}
	if len(parts) == 0 {
		return "all unlikely"
	}
	return strings.Join(parts, ", ")
}

func conditionName(r scoring.ScoreResult) string {
	if r.Label != "" {
		return r.Label
	}
	return r.Condition
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
