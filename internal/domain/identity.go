package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind is the role an identity acts under.
type Kind string

const (
	KindAnonymous Kind = "anonymous"
	KindPlayer    Kind = "player"
	KindTeam      Kind = "team"
	KindAdmin     Kind = "admin"
)

// Kinds lists every identity kind.
func Kinds() []Kind {
	return []Kind{KindAnonymous, KindPlayer, KindTeam, KindAdmin}
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindAnonymous, KindPlayer, KindTeam, KindAdmin:
		return k, nil
	}
	return "", fmt.Errorf("unknown identity kind %q", s)
}

// Identity is the authenticated role of a client session. The set of
// implementations is closed: Anonymous, Player, Team and Admin.
type Identity interface {
	Kind() Kind
	identity()
}

// Member is an identity that can be logged in.
type Member interface {
	Identity
	Profile() Profile
}

type Profile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type Anonymous struct{}

func (Anonymous) Kind() Kind { return KindAnonymous }
func (Anonymous) identity() {}

type Player struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (Player) Kind() Kind { return KindPlayer }
func (Player) identity() {}
func (p Player) Profile() Profile { return Profile{ID: p.ID, Name: p.Name, Email: p.Email} }

type Team struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (Team) Kind() Kind { return KindTeam }
func (Team) identity() {}
func (t Team) Profile() Profile { return Profile{ID: t.ID, Name: t.Name, Email: t.Email} }

type Admin struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func (Admin) Kind() Kind { return KindAdmin }
func (Admin) identity() {}
func (a Admin) Profile() Profile { return Profile{ID: a.ID, Name: a.Name, Email: a.Email} }

// KindOf returns the kind of id, treating nil as anonymous.
func KindOf(id Identity) Kind {
	if id == nil {
		return KindAnonymous
	}
	return id.Kind()
}

// DisplayName is the profile name of a member, empty for anonymous.
func DisplayName(id Identity) string {
	if m, ok := id.(Member); ok {
		return m.Profile().Name
	}
	return ""
}
