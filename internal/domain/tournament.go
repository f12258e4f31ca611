package domain

import (
	"time"

	"github.com/google/uuid"
)

// Banner references an uploaded banner image. The bytes live elsewhere.
type Banner struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type RoadmapStage struct {
	Stage       string `json:"stage"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// TournamentDraft is the record the creation wizard accumulates.
type TournamentDraft struct {
	Game   string `json:"game"`
	Format string `json:"format"`

	HasPrizepool bool   `json:"hasPrizepool"`
	Prizepool    string `json:"prizepool"`

	Banner          *Banner `json:"banner,omitempty"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	MaxParticipants string  `json:"maxParticipants"`
	Location        string  `json:"location"`

	RegistrationStart *time.Time `json:"registrationStart,omitempty"`
	RegistrationEnd   *time.Time `json:"registrationEnd,omitempty"`
	TournamentStart   *time.Time `json:"tournamentStart,omitempty"`
	TournamentEnd     *time.Time `json:"tournamentEnd,omitempty"`
	Rules             string     `json:"rules"`

	Roadmap []RoadmapStage `json:"roadmap"`
}

// Clone returns a copy that shares no memory with d.
func (d TournamentDraft) Clone() TournamentDraft {
	c := d
	if d.Banner != nil {
		b := *d.Banner
		c.Banner = &b
	}
	c.RegistrationStart = cloneTime(d.RegistrationStart)
	c.RegistrationEnd = cloneTime(d.RegistrationEnd)
	c.TournamentStart = cloneTime(d.TournamentStart)
	c.TournamentEnd = cloneTime(d.TournamentEnd)
	c.Roadmap = make([]RoadmapStage, len(d.Roadmap))
	copy(c.Roadmap, d.Roadmap)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

type TournamentStatus string

const (
	StatusPending  TournamentStatus = "pending"
	StatusApproved TournamentStatus = "approved"
)

// Tournament is a submitted draft as held by the registry.
type Tournament struct {
	TournamentDraft

	ID        uuid.UUID        `json:"id"`
	Slug      string           `json:"slug"`
	Status    TournamentStatus `json:"status"`
	CreatedBy string           `json:"createdBy"`
	CreatorAs Kind             `json:"creatorKind"`
	CreatedAt time.Time        `json:"createdAt"`
}
