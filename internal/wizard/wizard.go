// Package wizard implements the multi-step tournament creation form.
//
// A Wizard walks a draft through five ordered steps. Moving forward runs the
// gate of the step being left; moving back is never checked. Fields may be
// edited at any step. Submit re-checks name and description on its own,
// however the earlier gates went.
package wizard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goserg/arcesports/internal/domain"
)

// Submitter receives a completed draft. It stands for the tournament
// creation service.
type Submitter interface {
	Submit(ctx context.Context, draft domain.TournamentDraft) (domain.Tournament, error)
}

type SubmitterFunc func(ctx context.Context, draft domain.TournamentDraft) (domain.Tournament, error)

func (f SubmitterFunc) Submit(ctx context.Context, draft domain.TournamentDraft) (domain.Tournament, error) {
	return f(ctx, draft)
}

type Option func(*Wizard)

// WithDraftRetention keeps step and draft when the dialog is closed and
// opened again. Without it reopening always starts over.
func WithDraftRetention() Option {
	return func(w *Wizard) {
		w.retain = true
	}
}

// Wizard is not safe for concurrent use.
type Wizard struct {
	submitter Submitter
	retain    bool

	open  bool
	step  Step
	draft domain.TournamentDraft
}

// New returns a closed wizard at the first step. submitter must not be nil.
func New(submitter Submitter, opts ...Option) *Wizard {
	w := &Wizard{submitter: submitter}
	for _, opt := range opts {
		opt(w)
	}
	w.reset()
	return w
}

func newDraft() domain.TournamentDraft {
	return domain.TournamentDraft{Roadmap: []domain.RoadmapStage{}}
}

func (w *Wizard) reset() {
	w.step = FirstStep
	w.draft = newDraft()
}

func (w *Wizard) Open() {
	if w.open {
		return
	}
	if !w.retain {
		w.reset()
	}
	w.open = true
}

func (w *Wizard) Close() {
	if !w.retain {
		w.reset()
	}
	w.open = false
}

func (w *Wizard) IsOpen() bool {
	return w.open
}

func (w *Wizard) Step() Step {
	return w.step
}

// Draft returns a copy of the draft.
func (w *Wizard) Draft() domain.TournamentDraft {
	return w.draft.Clone()
}

// RequiredFields lists the fields the current step needs before Next.
func (w *Wizard) RequiredFields() []Field {
	return RequiredFields(w.step, w.draft)
}

// Next advances one step if the current step's gate passes. On the last
// step it does nothing.
func (w *Wizard) Next() error {
	if w.step >= LastStep {
		return nil
	}
	if err := Validate(w.step, w.draft); err != nil {
		return err
	}
	w.step++
	return nil
}

// Previous goes back one step. On the first step it does nothing.
func (w *Wizard) Previous() {
	if w.step > FirstStep && w.step <= LastStep {
		w.step--
	}
}

// EditField sets a draft field from its text form. A refused value leaves
// the draft untouched. The banner and the roadmap are not text fields; use
// SetBanner and the roadmap methods for them.
func (w *Wizard) EditField(field Field, value string) error {
	d := &w.draft
	switch field {
	case FieldGame:
		if value != "" {
			if _, ok := domain.FindGame(value); !ok {
				return fieldError(FieldGame, ReasonUnknown)
			}
		}
		d.Game = value
		d.Format = ""
	case FieldFormat:
		if value != "" {
			game, ok := domain.FindGame(d.Game)
			if !ok || !game.HasFormat(value) {
				return fieldError(FieldFormat, ReasonNotOffered)
			}
		}
		d.Format = value
	case FieldHasPrizepool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fieldError(FieldHasPrizepool, ReasonInvalid)
		}
		d.HasPrizepool = v
	case FieldPrizepool:
		d.Prizepool = value
	case FieldName:
		d.Name = value
	case FieldDescription:
		d.Description = value
	case FieldMaxParticipants:
		if value != "" {
			if n, err := strconv.Atoi(value); err != nil || n < 0 {
				return fieldError(FieldMaxParticipants, ReasonInvalid)
			}
		}
		d.MaxParticipants = value
	case FieldLocation:
		d.Location = value
	case FieldRegistrationStart, FieldRegistrationEnd, FieldTournamentStart, FieldTournamentEnd:
		t, err := parseTime(value)
		if err != nil {
			return fieldError(field, ReasonInvalid)
		}
		*timeField(d, field) = t
	case FieldRules:
		d.Rules = value
	case FieldBanner, FieldRoadmap:
		return fmt.Errorf("%w: %s", ErrNotTextField, field)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// SetBanner attaches or, with nil, removes the banner reference.
func (w *Wizard) SetBanner(b *domain.Banner) {
	if b == nil {
		w.draft.Banner = nil
		return
	}
	v := *b
	w.draft.Banner = &v
}

// AddRoadmapStage appends an empty stage and returns its index.
func (w *Wizard) AddRoadmapStage() int {
	w.draft.Roadmap = append(w.draft.Roadmap, domain.RoadmapStage{})
	return len(w.draft.Roadmap) - 1
}

// UpdateRoadmapStage sets one field of the stage at index. An index out of
// range is ignored.
func (w *Wizard) UpdateRoadmapStage(index int, field RoadmapField, value string) error {
	if !validRoadmapField(field) {
		return fmt.Errorf("%w: roadmap %s", ErrUnknownField, field)
	}
	if index < 0 || index >= len(w.draft.Roadmap) {
		return nil
	}
	stage := &w.draft.Roadmap[index]
	switch field {
	case RoadmapFieldStage:
		stage.Stage = value
	case RoadmapFieldDescription:
		stage.Description = value
	case RoadmapFieldDate:
		stage.Date = value
	case RoadmapFieldTime:
		stage.Time = value
	}
	return nil
}

// RemoveRoadmapStage deletes the stage at index. An index out of range is
// ignored.
func (w *Wizard) RemoveRoadmapStage(index int) {
	if index < 0 || index >= len(w.draft.Roadmap) {
		return
	}
	w.draft.Roadmap = append(w.draft.Roadmap[:index], w.draft.Roadmap[index+1:]...)
}

// Submit hands the draft to the submitter. It is allowed from the last step
// only and requires name and description. On success the dialog closes and
// the wizard starts over; on failure it stays on the last step with the
// draft intact.
func (w *Wizard) Submit(ctx context.Context) (domain.Tournament, error) {
	if w.step != LastStep {
		return domain.Tournament{}, ErrNotFinalStep
	}
	if errs := checkNameDescription(w.draft); len(errs) > 0 {
		return domain.Tournament{}, &ValidationError{Step: LastStep, Fields: errs}
	}

	w.step = StepSubmitted
	t, err := w.submitter.Submit(ctx, w.draft.Clone())
	if err != nil {
		w.step = LastStep
		return domain.Tournament{}, fmt.Errorf("submit tournament: %w", err)
	}
	w.reset()
	w.open = false
	return t, nil
}

func fieldError(field Field, reason Reason) error {
	step, _ := StepOf(field)
	return &ValidationError{Step: step, Fields: []FieldError{{Field: field, Reason: reason}}}
}

func validRoadmapField(f RoadmapField) bool {
	switch f {
	case RoadmapFieldStage, RoadmapFieldDescription, RoadmapFieldDate, RoadmapFieldTime:
		return true
	}
	return false
}

func timeField(d *domain.TournamentDraft, f Field) **time.Time {
	switch f {
	case FieldRegistrationStart:
		return &d.RegistrationStart
	case FieldRegistrationEnd:
		return &d.RegistrationEnd
	case FieldTournamentStart:
		return &d.TournamentStart
	default:
		return &d.TournamentEnd
	}
}

// datetime-local inputs submit minutes without a zone.
const localLayout = "2006-01-02T15:04"

func parseTime(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		t, err = time.Parse(localLayout, v)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
