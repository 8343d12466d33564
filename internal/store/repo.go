package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/jmoiron/sqlx"

	"github.com/abhisek/triage/internal/flow"
	"github.com/abhisek/triage/internal/scoring"
	"github.com/abhisek/triage/internal/symptom"
)

// QueryOpts configures history queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
	Category string    // symptom runs only; "" = any
}

// AssessmentRecord is a stored sectional assessment.
type AssessmentRecord struct {
	ID             int64
	Sequence       int64
	SessionID      string
	Language       string
	Results        scoring.AssessmentResults
	Answers        map[string]int
	CrisisDetected bool
	StartedAt      time.Time
	CompletedAt    time.Time
}

// SymptomRecord is a stored symptom run.
type SymptomRecord struct {
	ID          int64
	Sequence    int64
	RunID       string
	Language    string
	Category    string
	Answers     scoring.Vector
	Results     []scoring.ScoreResult
	AllUnlikely bool
	ComputedAt  time.Time
}

// HistoryEntry is one row of the merged history, newest first. Exactly one
// of Assessment and Symptom is set.
type HistoryEntry struct {
	Sequence   int64
	Timestamp  time.Time
	Assessment *AssessmentRecord
	Symptom    *SymptomRecord
}

// ResultRepo persists finished assessments and symptom runs. It implements
// flow.Sink and symptom.Sink.
type ResultRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

var (
	_ flow.Sink    = (*ResultRepo)(nil)
	_ symptom.Sink = (*ResultRepo)(nil)
)

type assessmentRow struct {
	ID             int64  `db:"id"`
	Sequence       int64  `db:"sequence"`
	Timestamp      int64  `db:"timestamp"`
	SessionID      string `db:"session_id"`
	Language       string `db:"language"`
	Anxiety        int    `db:"anxiety"`
	Depression     int    `db:"depression"`
	Stress         int    `db:"stress"`
	Sleep          int    `db:"sleep"`
	Social         int    `db:"social"`
	Overall        int    `db:"overall"`
	CrisisDetected bool   `db:"crisis_detected"`
	Answers        string `db:"answers"`
	StartedAt      int64  `db:"started_at"`
}

type symptomRow struct {
	ID          int64  `db:"id"`
	Sequence    int64  `db:"sequence"`
	Timestamp   int64  `db:"timestamp"`
	RunID       string `db:"run_id"`
	Language    string `db:"language"`
	Category    string `db:"category"`
	Answers     string `db:"answers"`
	Results     string `db:"results"`
	AllUnlikely bool   `db:"all_unlikely"`
}

func columnNames(cols []*schema.Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// RecordAssessment stores a finished assessment handed over by the flow
// controller.
func (r *ResultRepo) RecordAssessment(ctx context.Context, rec flow.Record) error {
	_, err := r.SaveAssessment(ctx, AssessmentRecord{
		SessionID:      rec.SessionID,
		Language:       string(rec.Language),
		Results:        rec.Results,
		Answers:        rec.Answers,
		CrisisDetected: rec.CrisisDetected,
		StartedAt:      rec.StartedAt,
		CompletedAt:    rec.CompletedAt,
	})
	return err
}

// RecordSymptomRun stores a run handed over by the symptom controller.
func (r *ResultRepo) RecordSymptomRun(ctx context.Context, run symptom.Run) error {
	_, err := r.SaveSymptomRun(ctx, SymptomRecord{
		RunID:       run.ID,
		Language:    string(run.Language),
		Category:    run.Category,
		Answers:     run.Answers,
		Results:     run.Results,
		AllUnlikely: scoring.AllUnlikely(run.Results),
		ComputedAt:  run.ComputedAt,
	})
	return err
}

// SaveAssessment appends rec and returns its sequence number.
func (r *ResultRepo) SaveAssessment(ctx context.Context, rec AssessmentRecord) (int64, error) {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return 0, fmt.Errorf("marshal answers: %w", err)
	}
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return 0, err
	}

	res := rec.Results
	query, args := builder().
		Insert(assessmentTable).
		Columns("sequence", "timestamp", "session_id", "language",
			"anxiety", "depression", "stress", "sleep", "social", "overall",
			"crisis_detected", "answers", "started_at").
		Values(seq, rec.CompletedAt.UnixMilli(), rec.SessionID, rec.Language,
			res.Anxiety, res.Depression, res.Stress, res.Sleep, res.Social, res.Overall,
			rec.CrisisDetected, string(answers), rec.StartedAt.UnixMilli()).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("save assessment: %w", err)
	}
	return seq, nil
}

// ListAssessments returns stored assessments, newest first.
func (r *ResultRepo) ListAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentRecord, error) {
	sel := builder().
		Select(columnNames(AssessmentResultsColumns)...).
		From(entsql.Table(assessmentTable)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)

	query, args := sel.Query()
	var rows []assessmentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	out := make([]AssessmentRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// LatestAssessment returns the most recent assessment, or nil if none exist.
func (r *ResultRepo) LatestAssessment(ctx context.Context) (*AssessmentRecord, error) {
	recs, err := r.ListAssessments(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// SaveSymptomRun appends rec and returns its sequence number.
func (r *ResultRepo) SaveSymptomRun(ctx context.Context, rec SymptomRecord) (int64, error) {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return 0, fmt.Errorf("marshal answers: %w", err)
	}
	results, err := json.Marshal(rec.Results)
	if err != nil {
		return 0, fmt.Errorf("marshal results: %w", err)
	}
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return 0, err
	}

	query, args := builder().
		Insert(symptomTable).
		Columns("sequence", "timestamp", "run_id", "language", "category", "answers", "results", "all_unlikely").
		Values(seq, rec.ComputedAt.UnixMilli(), rec.RunID, rec.Language, rec.Category, string(answers), string(results), rec.AllUnlikely).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("save symptom run: %w", err)
	}
	return seq, nil
}

// ListSymptomRuns returns stored symptom runs, newest first.
func (r *ResultRepo) ListSymptomRuns(ctx context.Context, opts QueryOpts) ([]SymptomRecord, error) {
	sel := builder().
		Select(columnNames(SymptomRunsColumns)...).
		From(entsql.Table(symptomTable)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)
	if opts.Category != "" {
		sel.Where(entsql.EQ("category", opts.Category))
	}

	query, args := sel.Query()
	var rows []symptomRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query symptom runs: %w", err)
	}

	out := make([]SymptomRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// History merges assessments and symptom runs into one list ordered by
// sequence, newest first. A limit of 0 returns everything.
func (r *ResultRepo) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	assessments, err := r.ListAssessments(ctx, QueryOpts{Limit: limit})
	if err != nil {
		return nil, err
	}
	runs, err := r.ListSymptomRuns(ctx, QueryOpts{Limit: limit})
	if err != nil {
		return nil, err
	}

	out := make([]HistoryEntry, 0, len(assessments)+len(runs))
	i, j := 0, 0
	for i < len(assessments) || j < len(runs) {
		if limit > 0 && len(out) == limit {
			break
		}
		if j >= len(runs) || (i < len(assessments) && assessments[i].Sequence > runs[j].Sequence) {
			a := assessments[i]
			out = append(out, HistoryEntry{Sequence: a.Sequence, Timestamp: a.CompletedAt, Assessment: &a})
			i++
			continue
		}
		s := runs[j]
		out = append(out, HistoryEntry{Sequence: s.Sequence, Timestamp: s.ComputedAt, Symptom: &s})
		j++
	}
	return out, nil
}

// Prune deletes all but the keep most recent rows of each result table.
func (r *ResultRepo) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return errors.New("prune: keep must not be negative")
	}
	for _, table := range []string{assessmentTable, symptomTable} {
		// Find the sequence of the newest row that falls outside keep.
		query, args := builder().
			Select("sequence").
			From(entsql.Table(table)).
			OrderBy(entsql.Desc("sequence")).
			Offset(keep).
			Limit(1).
			Query()
		var threshold int64
		err := r.db.QueryRowxContext(ctx, query, args...).Scan(&threshold)
		if errors.Is(err, sql.ErrNoRows) {
			continue // fewer than keep rows exist
		}
		if err != nil {
			return fmt.Errorf("query %s for prune: %w", table, err)
		}

		query, args = builder().
			Delete(table).
			Where(entsql.LTE("sequence", threshold)).
			Query()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("prune %s: %w", table, err)
		}
	}
	return nil
}

func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UnixMilli()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}

func (row assessmentRow) record() (AssessmentRecord, error) {
	var answers map[string]int
	if err := json.Unmarshal([]byte(row.Answers), &answers); err != nil {
		return AssessmentRecord{}, fmt.Errorf("decode assessment %d answers: %w", row.ID, err)
	}
	return AssessmentRecord{
		ID:        row.ID,
		Sequence:  row.Sequence,
		SessionID: row.SessionID,
		Language:  row.Language,
		Results: scoring.AssessmentResults{
			Anxiety:    row.Anxiety,
			Depression: row.Depression,
			Stress:     row.Stress,
			Sleep:      row.Sleep,
			Social:     row.Social,
			Overall:    row.Overall,
		},
		Answers:        answers,
		CrisisDetected: row.CrisisDetected,
		StartedAt:      time.UnixMilli(row.StartedAt),
		CompletedAt:    time.UnixMilli(row.Timestamp),
	}, nil
}

func (row symptomRow) record() (SymptomRecord, error) {
	rec := SymptomRecord{
		ID:          row.ID,
		Sequence:    row.Sequence,
		RunID:       row.RunID,
		Language:    row.Language,
		Category:    row.Category,
		AllUnlikely: row.AllUnlikely,
		ComputedAt:  time.UnixMilli(row.Timestamp),
	}
	if err := json.Unmarshal([]byte(row.Answers), &rec.Answers); err != nil {
		return SymptomRecord{}, fmt.Errorf("decode symptom run %d answers: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.Results), &rec.Results); err != nil {
		return SymptomRecord{}, fmt.Errorf("decode symptom run %d results: %w", row.ID, err)
	}
	return rec, nil
}
