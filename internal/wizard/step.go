package wizard

import (
	"strconv"
	"strings"

	"github.com/goserg/arcesports/internal/domain"
)

type Step int

const (
	Step1 Step = iota + 1
	Step2
	Step3
	Step4
	Step5
	StepSubmitted
)

const (
	FirstStep = Step1
	LastStep  = Step5
)

func (s Step) String() string {
	if s == StepSubmitted {
		return "submitted"
	}
	return "step " + strconv.Itoa(int(s))
}

// Field names a draft field that EditField can set.
type Field string

const (
	FieldGame              Field = "game"
	FieldFormat            Field = "format"
	FieldHasPrizepool      Field = "hasPrizepool"
	FieldPrizepool         Field = "prizepool"
	FieldBanner            Field = "banner"
	FieldName              Field = "name"
	FieldDescription       Field = "description"
	FieldMaxParticipants   Field = "maxParticipants"
	FieldLocation          Field = "location"
	FieldRegistrationStart Field = "registrationStart"
	FieldRegistrationEnd   Field = "registrationEnd"
	FieldTournamentStart   Field = "tournamentStart"
	FieldTournamentEnd     Field = "tournamentEnd"
	FieldRules             Field = "rules"
	FieldRoadmap           Field = "roadmap"
)

// RoadmapField names a field of a roadmap stage.
type RoadmapField string

const (
	RoadmapFieldStage       RoadmapField = "stage"
	RoadmapFieldDescription RoadmapField = "description"
	RoadmapFieldDate        RoadmapField = "date"
	RoadmapFieldTime        RoadmapField = "time"
)

type stepDef struct {
	title  string
	fields []Field
	// check returns the field errors that block leaving the step forwards.
	check func(d domain.TournamentDraft) []FieldError
}

var steps = map[Step]stepDef{
	Step1: {
		title:  "Game & Format",
		fields: []Field{FieldGame, FieldFormat},
		check:  checkGameFormat,
	},
	Step2: {
		title:  "Prize Pool",
		fields: []Field{FieldHasPrizepool, FieldPrizepool},
		check: func(d domain.TournamentDraft) []FieldError {
			if d.HasPrizepool && blank(d.Prizepool) {
				return []FieldError{{Field: FieldPrizepool, Reason: ReasonRequired}}
			}
			return nil
		},
	},
	Step3: {
		title:  "Details",
		fields: []Field{FieldBanner, FieldName, FieldDescription, FieldMaxParticipants, FieldLocation},
		check:  checkNameDescription,
	},
	Step4: {
		title:  "Schedule & Rules",
		fields: []Field{FieldRegistrationStart, FieldRegistrationEnd, FieldTournamentStart, FieldTournamentEnd, FieldRules},
		check:  func(domain.TournamentDraft) []FieldError { return nil },
	},
	Step5: {
		title:  "Roadmap",
		fields: []Field{FieldRoadmap},
		check:  func(domain.TournamentDraft) []FieldError { return nil },
	},
}

// Title is the heading shown for the step.
func (s Step) Title() string {
	return steps[s].title
}

// StepOf returns the step a field is collected on.
func StepOf(f Field) (Step, bool) {
	for s := FirstStep; s <= LastStep; s++ {
		for _, field := range steps[s].fields {
			if field == f {
				return s, true
			}
		}
	}
	return 0, false
}

// Validate runs the forward gate of step against d.
func Validate(step Step, d domain.TournamentDraft) error {
	def, ok := steps[step]
	if !ok {
		return nil
	}
	if errs := def.check(d); len(errs) > 0 {
		return &ValidationError{Step: step, Fields: errs}
	}
	return nil
}

// RequiredFields lists the fields that must be filled before leaving step.
func RequiredFields(step Step, d domain.TournamentDraft) []Field {
	switch step {
	case Step1:
		return []Field{FieldGame, FieldFormat}
	case Step2:
		if d.HasPrizepool {
			return []Field{FieldPrizepool}
		}
	case Step3:
		return []Field{FieldName, FieldDescription}
	}
	return nil
}

func checkGameFormat(d domain.TournamentDraft) []FieldError {
	var errs []FieldError
	if blank(d.Game) {
		errs = append(errs, FieldError{Field: FieldGame, Reason: ReasonRequired})
	}
	if blank(d.Format) {
		return append(errs, FieldError{Field: FieldFormat, Reason: ReasonRequired})
	}
	game, ok := domain.FindGame(d.Game)
	if !ok || !game.HasFormat(d.Format) {
		errs = append(errs, FieldError{Field: FieldFormat, Reason: ReasonNotOffered})
	}
	return errs
}

func checkNameDescription(d domain.TournamentDraft) []FieldError {
	var errs []FieldError
	if blank(d.Name) {
		errs = append(errs, FieldError{Field: FieldName, Reason: ReasonRequired})
	}
	if blank(d.Description) {
		errs = append(errs, FieldError{Field: FieldDescription, Reason: ReasonRequired})
	}
	return errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
