// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

import (
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/danielhkuo/menu-survey/models"
)

// ErrInvalidAnswer is returned by Next when the current step's answer does
// not satisfy its validity predicate. The sequencer does not advance.
var ErrInvalidAnswer = errors.New("answer does not satisfy the current step")

// Recorder persists an answer. Failures are logged, never propagated: the
// interview advances on local state and durability is best-effort.
type Recorder interface {
	Record(questionID, value string) error
}

// RecorderFunc adapts a function to the Recorder interface.
type RecorderFunc func(questionID, value string) error

func (f RecorderFunc) Record(questionID, value string) error {
	return f(questionID, value)
}

// Lifecycle receives terminal-state notifications from the sequencer.
type Lifecycle interface {
	Complete() error
	ScreenOut() error
}

// LifecycleFuncs adapts a pair of functions to the Lifecycle interface.
// Either may be nil.
type LifecycleFuncs struct {
	OnComplete  func() error
	OnScreenOut func() error
}

func (l LifecycleFuncs) Complete() error {
	if l.OnComplete == nil {
		return nil
	}
	return l.OnComplete()
}

func (l LifecycleFuncs) ScreenOut() error {
	if l.OnScreenOut == nil {
		return nil
	}
	return l.OnScreenOut()
}

// Sequencer walks the survey's transition table: ordered blocks, each with
// an inner step sequence, with screening disqualification and conditionally
// absent steps declared on the table rather than coded per block.
type Sequencer struct {
	blocks      []BlockDef
	rec         Recorder
	lc          Lifecycle
	outer       int
	inner       int
	answers     map[string]string
	done        bool
	screenedOut bool
}

// New returns a sequencer over the default survey blocks, positioned at the
// first screening step. rec and lc may be nil.
func New(rec Recorder, lc Lifecycle) *Sequencer {
	return &Sequencer{
		blocks:  DefaultBlocks(),
		rec:     rec,
		lc:      lc,
		answers: map[string]string{},
	}
}

// Answer records a raw answer locally and persists it fire-and-forget.
func (s *Sequencer) Answer(questionID, value string) {
	s.answers[questionID] = value
	s.record(questionID, value)
}

// AnswerMulti flattens a multi-select answer to delimited text and records
// it like Answer.
func (s *Sequencer) AnswerMulti(questionID string, values []string) {
	s.Answer(questionID, strings.Join(values, ","))
}

func (s *Sequencer) record(questionID, value string) {
	if s.rec == nil {
		return
	}
	if err := s.rec.Record(questionID, value); err != nil {
		// Forward progress beats durability: log and continue.
		slog.Warn("failed to persist response", "question_id", questionID, "error", err)
	}
}

// Next advances to the following step. It refuses (ErrInvalidAnswer) when
// the current step's answer fails its validity predicate, short-circuits to
// end_screen when a screening answer is disqualifying, and skips
// conditionally absent steps. Exhausting the block list completes the
// session. At end_screen it is a no-op.
func (s *Sequencer) Next() error {
	if s.done {
		return nil
	}

	step := s.currentStep()
	for _, id := range step.Questions {
		q, ok := Lookup(id)
		if !ok || !q.Valid(s.answers[id]) {
			return ErrInvalidAnswer
		}
	}

	if step.ScreenOutOn != "" && s.answers[step.Questions[0]] == step.ScreenOutOn {
		s.screenOut()
		return nil
	}

	s.advance()
	return nil
}

// Skip records the skip sentinel for every question of the current step and
// advances without the validity gate. Skipping a gating question leaves its
// follow-up absent, exactly as answering it disqualifyingly would.
func (s *Sequencer) Skip() {
	if s.done {
		return
	}
	for _, id := range s.currentStep().Questions {
		s.Answer(id, models.SkippedValue)
	}
	s.advance()
}

// Back moves to the previous step, entering the previous block at its last
// step and jumping over conditionally absent steps. At the very first step,
// and at end_screen, it is a no-op.
func (s *Sequencer) Back() {
	if s.done {
		return
	}
	for {
		if s.inner > 0 {
			s.inner--
		} else if s.outer > 0 {
			s.outer--
			s.inner = len(s.blocks[s.outer].Steps) - 1
		} else {
			return
		}
		if s.inner < 0 {
			// Stepless block, keep walking.
			s.inner = 0
			continue
		}
		if s.present(s.currentStep()) {
			return
		}
		if s.outer == 0 && s.inner == 0 {
			return
		}
	}
}

func (s *Sequencer) advance() {
	s.inner++
	for {
		steps := s.blocks[s.outer].Steps
		if s.inner >= len(steps) {
			s.outer++
			s.inner = 0
			if s.outer >= len(s.blocks)-1 {
				s.outer = len(s.blocks) - 1
				s.finish()
				return
			}
			continue
		}
		if !s.present(steps[s.inner]) {
			s.inner++
			continue
		}
		return
	}
}

func (s *Sequencer) present(step Step) bool {
	if step.PresentIf == nil {
		return true
	}
	return s.answers[step.PresentIf.QuestionID] == step.PresentIf.Equals
}

func (s *Sequencer) finish() {
	s.done = true
	if s.lc == nil {
		return
	}
	if err := s.lc.Complete(); err != nil {
		slog.Warn("failed to mark session complete", "error", err)
	}
}

func (s *Sequencer) screenOut() {
	s.done = true
	s.screenedOut = true
	s.outer = len(s.blocks) - 1
	s.inner = 0
	if s.lc == nil {
		return
	}
	if err := s.lc.ScreenOut(); err != nil {
		slog.Warn("failed to mark session screened out", "error", err)
	}
}

func (s *Sequencer) currentStep() Step {
	return s.blocks[s.outer].Steps[s.inner]
}

// Block returns the current outer block.
func (s *Sequencer) Block() Block {
	return s.blocks[s.outer].Name
}

// StepIndex returns the inner step index within the current block.
func (s *Sequencer) StepIndex() int {
	return s.inner
}

// CurrentQuestions returns the catalog entries collected at the current
// step, or nil at end_screen.
func (s *Sequencer) CurrentQuestions() []Question {
	if s.done {
		return nil
	}
	step := s.currentStep()
	questions := make([]Question, 0, len(step.Questions))
	for _, id := range step.Questions {
		if q, ok := Lookup(id); ok {
			questions = append(questions, q)
		}
	}
	return questions
}

// Answers returns the locally recorded answers.
func (s *Sequencer) Answers() map[string]string {
	return s.answers
}

// Done reports whether the sequencer has reached end_screen.
func (s *Sequencer) Done() bool {
	return s.done
}

// ScreenedOut reports whether the participant was disqualified.
func (s *Sequencer) ScreenedOut() bool {
	return s.screenedOut
}

// Progress returns the completion percentage derived from the outer block
// index. It is exactly 100 only at end_screen and only ever decreases via
// Back.
func (s *Sequencer) Progress() int {
	return int(math.Round(float64(s.outer) / float64(len(s.blocks)-1) * 100))
}
