// Package flow sequences the sectional assessment: it gates advancement on
// completeness and branches to an emergency overlay on crisis answers.
package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/triage/internal/answers"
	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/logging"
	"github.com/abhisek/triage/internal/scoring"
)

var (
	// ErrNotAtCompletion is returned by Finish outside the completion section.
	ErrNotAtCompletion = errors.New("assessment is not at the completion section")

	// ErrUnknownQuestion is returned when an answer names a question that is
	// not part of the assessment.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrNoSections is returned by New for an empty section list.
	ErrNoSections = errors.New("no sections")
)

// Record is emitted once per finished assessment.
type Record struct {
	SessionID      string
	Language       catalog.Language
	Results        scoring.AssessmentResults
	Answers        map[string]int
	CrisisDetected bool
	StartedAt      time.Time
	CompletedAt    time.Time
}

// Sink receives finished assessments.
type Sink interface {
	RecordAssessment(ctx context.Context, rec Record) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithSink sets where finished assessments are sent.
func WithSink(s Sink) Option {
	return func(c *Controller) { c.sink = s }
}

// WithLogger sets the logger for transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithLanguage records the language the sections were localized in.
func WithLanguage(lang catalog.Language) Option {
	return func(c *Controller) { c.lang = lang }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller is the state machine of one assessment attempt. It is owned by
// a single caller and is not safe for concurrent use.
type Controller struct {
	sections  []catalog.Section
	questions map[string]catalog.Question
	lang      catalog.Language
	index     int
	overlay   bool
	answers   *answers.Store
	sessionID string
	startedAt time.Time

	sink   Sink
	logger *slog.Logger
	now    func() time.Time
}

// New returns a Controller positioned at the first section.
func New(sections []catalog.Section, opts ...Option) (*Controller, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	c := &Controller{
		sections:  sections,
		questions: make(map[string]catalog.Question),
		lang:      catalog.DefaultLanguage,
		logger:    logging.Discard(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, s := range sections {
		for _, q := range s.Questions {
			c.questions[q.ID] = q
		}
	}
	c.reset()
	return c, nil
}

func (c *Controller) reset() {
	c.index = 0
	c.overlay = false
	c.answers = answers.NewStore()
	c.sessionID = uuid.New().String()
	c.startedAt = c.now()
}

// Reset abandons the current attempt and starts a fresh one.
func (c *Controller) Reset() {
	c.logger.Debug("assessment reset", "session", c.sessionID, "index", c.index)
	c.reset()
}

// Answer stores raw for questionID, inverting inverted scale questions.
func (c *Controller) Answer(questionID string, raw int) error {
	q, ok := c.questions[questionID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	return c.answers.Set(q, raw)
}

// Next advances to the following section when the current one is complete.
func (c *Controller) Next() Step {
	if c.overlay {
		return StepEmergency
	}
	cur := c.Current()
	if cur.Kind == catalog.SectionCompletion || c.index == len(c.sections)-1 {
		return StepAtEnd
	}
	if !c.IsCurrentComplete() {
		return StepIncomplete
	}
	if cur.Kind == catalog.SectionEmergency && c.CrisisDetected() {
		c.overlay = true
		c.logger.Warn("crisis indicators answered positively", "session", c.sessionID, "section", cur.ID)
		return StepEmergency
	}
	c.advance()
	return StepAdvanced
}

func (c *Controller) advance() {
	if c.index < len(c.sections)-1 {
		c.index++
	}
	c.logger.Debug("section advanced", "session", c.sessionID, "section", c.sections[c.index].ID)
}

// Previous moves back one section without checking completeness. It reports
// whether the index changed.
func (c *Controller) Previous() bool {
	c.overlay = false
	if c.index == 0 {
		return false
	}
	c.index--
	c.logger.Debug("section back", "session", c.sessionID, "section", c.sections[c.index].ID)
	return true
}

// AcknowledgeEmergency leaves the overlay and advances past the emergency
// section without re-checking the crisis answers.
func (c *Controller) AcknowledgeEmergency() Step {
	if !c.overlay {
		return StepNoop
	}
	c.overlay = false
	c.logger.Info("emergency acknowledged", "session", c.sessionID)
	c.advance()
	return StepAdvanced
}

// ReturnToAssessment clears the overlay and stays on the current section.
func (c *Controller) ReturnToAssessment() {
	c.overlay = false
}

// CrisisDetected reports whether either crisis indicator was answered yes.
func (c *Controller) CrisisDetected() bool {
	return c.answers.Value(catalog.CrisisQuestion1) == 1 || c.answers.Value(catalog.CrisisQuestion2) == 1
}

// Finish scores the assessment, hands the record to the sink and starts a
// fresh attempt. The results are returned even when the sink fails.
func (c *Controller) Finish(ctx context.Context) (scoring.AssessmentResults, error) {
	if c.Current().Kind != catalog.SectionCompletion {
		return scoring.AssessmentResults{}, ErrNotAtCompletion
	}

	rec := Record{
		SessionID:      c.sessionID,
		Language:       c.lang,
		Results:        scoring.ComputeAssessmentResults(c.answers),
		Answers:        c.answers.Snapshot(),
		CrisisDetected: c.CrisisDetected(),
		StartedAt:      c.startedAt,
		CompletedAt:    c.now(),
	}
	c.logger.Info("assessment finished", "session", rec.SessionID, "overall", rec.Results.Overall)
	c.reset()

	if c.sink != nil {
		if err := c.sink.RecordAssessment(ctx, rec); err != nil {
			c.logger.Error("record assessment", "session", rec.SessionID, "error", err)
			return rec.Results, fmt.Errorf("record assessment: %w", err)
		}
	}
	return rec.Results, nil
}

// Current returns the section at the current index.
func (c *Controller) Current() catalog.Section {
	return c.sections[c.index]
}

// Index returns the current section index.
func (c *Controller) Index() int { return c.index }

// Len returns the number of sections.
func (c *Controller) Len() int { return len(c.sections) }

// InOverlay reports whether the emergency overlay is raised.
func (c *Controller) InOverlay() bool { return c.overlay }

// IsCurrentComplete reports whether every question of the current section
// is answered. Sections without questions are always complete.
func (c *Controller) IsCurrentComplete() bool {
	cur := c.Current()
	if !cur.Kind.HasQuestions() {
		return true
	}
	return c.answers.IsComplete(cur.Questions)
}

// Progress is the fraction of the flow behind the current section, from 0
// at the first section to 1 at the last.
func (c *Controller) Progress() float64 {
	if len(c.sections) < 2 {
		return 1
	}
	return float64(c.index) / float64(len(c.sections)-1)
}

// Answers returns the answers of the current attempt.
func (c *Controller) Answers() *answers.Store { return c.answers }

// SessionID identifies the current attempt.
func (c *Controller) SessionID() string { return c.sessionID }

// Language returns the language the sections were localized in.
func (c *Controller) Language() catalog.Language { return c.lang }
