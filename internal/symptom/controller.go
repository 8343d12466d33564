// Package symptom drives the body-system symptom battery: pick a category,
// rate its questions, and score every registered condition.
package symptom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/triage/internal/answers"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/logging"
	"github.com/abhisek/triage/internal/scoring"
)

// DefaultAnswer is the value every position starts at after a category is
// selected. It is the scale minimum, so no condition shows baseline risk
// before the user rates anything.
const DefaultAnswer = catalog.ScaleMin

var (
	// ErrUnknownCategory is returned for a category key the catalog lacks.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrNoCategory is returned when an operation needs a selected category.
	ErrNoCategory = errors.New("no category selected")
)

// Run is emitted once per computed result set.
type Run struct {
	ID         string
	Language   catalog.Language
	Category   string
	Answers    scoring.Vector
	Results    []scoring.ScoreResult
	ComputedAt time.Time
}

// Sink receives computed runs.
type Sink interface {
	RecordSymptomRun(ctx context.Context, run Run) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaultAnswer sets the value positions reset to on category change.
// Values outside 1..10 are ignored.
func WithDefaultAnswer(v int) Option {
	return func(c *Controller) {
		if v >= catalog.ScaleMin && v <= catalog.ScaleMax {
			c.defaultAnswer = v
		}
	}
}

// WithSink sets where computed runs are sent.
func WithSink(s Sink) Option {
	return func(c *Controller) { c.sink = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller owns the answer vector and results of one symptom check. It
// is not safe for concurrent use.
type Controller struct {
	provider *catalog.Provider
	lang     catalog.Language

	category   *catalog.Category
	conditions []catalog.Condition
	vector     scoring.Vector
	results    []scoring.ScoreResult

	defaultAnswer int
	sink          Sink
	logger        *slog.Logger
	now           func() time.Time
}

// New returns a Controller with no category selected.
func New(p *catalog.Provider, lang catalog.Language, opts ...Option) (*Controller, error) {
	if !p.HasLanguage(lang) {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownLanguage, lang)
	}
	c := &Controller{
		provider:      p,
		lang:          lang,
		defaultAnswer: DefaultAnswer,
		logger:        logging.Discard(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.vector = scoring.Fill(c.defaultAnswer)
	return c, nil
}

// SelectCategory switches to key, resetting every answer to the default and
// discarding prior results. On error the previous selection is kept.
func (c *Controller) SelectCategory(key string) error {
	cat, err := c.provider.Category(c.lang, key)
	if errors.Is(err, catalog.ErrUnknownCategory) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	if err != nil {
		return err
	}
	conds, err := c.provider.Conditions(c.lang, key)
	if err != nil {
		return err
	}

	c.category = &cat
	c.conditions = conds
	c.vector = scoring.Fill(c.defaultAnswer)
	c.results = nil
	c.logger.Debug("category selected", "category", key, "conditions", len(conds))
	return nil
}

// SetAnswer sets the value at position index. Both index (0..9) and value
// (1..10) are range checked.
func (c *Controller) SetAnswer(index, value int) error {
	if c.category == nil {
		return ErrNoCategory
	}
	if index < 0 || index >= catalog.QuestionsPerCategory {
		return &answers.RangeError{QuestionID: fmt.Sprintf("%s[%d]", c.category.Key, index), Value: index, Min: 0, Max: catalog.QuestionsPerCategory - 1}
	}
	if value < catalog.ScaleMin || value > catalog.ScaleMax {
		return &answers.RangeError{QuestionID: c.category.Questions[index].ID, Value: value, Min: catalog.ScaleMin, Max: catalog.ScaleMax}
	}
	c.vector[index] = value
	return nil
}

// Compute scores every condition of the selected category in declaration
// order and forwards the run to the sink. A category without conditions
// yields an empty result set. The results are kept even when the sink fails.
func (c *Controller) Compute(ctx context.Context) ([]scoring.ScoreResult, error) {
	if c.category == nil {
		return nil, ErrNoCategory
	}
	c.results = scoring.ScoreConditions(c.conditions, c.vector)

	run := Run{
		ID:         uuid.New().String(),
		Language:   c.lang,
		Category:   c.category.Key,
		Answers:    c.vector,
		Results:    slices.Clone(c.results),
		ComputedAt: c.now(),
	}
	c.logger.Info("symptoms scored", "category", run.Category, "conditions", len(run.Results), "all_unlikely", scoring.AllUnlikely(run.Results))

	if c.sink != nil {
		if err := c.sink.RecordSymptomRun(ctx, run); err != nil {
			c.logger.Error("record symptom run", "run", run.ID, "error", err)
			return c.Results(), fmt.Errorf("record symptom run: %w", err)
		}
	}
	return c.Results(), nil
}

// Results returns the last computed results, or nil if none.
func (c *Controller) Results() []scoring.ScoreResult {
	return slices.Clone(c.results)
}

// AllUnlikely reports whether the last computation produced results and all
// of them are Unlikely.
func (c *Controller) AllUnlikely() bool {
	return scoring.AllUnlikely(c.results)
}

// Answers returns the current answer vector.
func (c *Controller) Answers() scoring.Vector {
	return c.vector
}

// Category returns the selected category and whether one is selected.
func (c *Controller) Category() (catalog.Category, bool) {
	if c.category == nil {
		return catalog.Category{}, false
	}
	return *c.category, true
}

// Language returns the language of the category texts.
func (c *Controller) Language() catalog.Language {
	return c.lang
}
