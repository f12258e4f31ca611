package session

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/goserg/arcesports/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is what the login forms submit. Contact is an email or phone
// number; Code is the one-time code, which is not checked.
type Credentials struct {
	Name    string
	Contact string
	Code    string
}

const (
	defaultPlayerName = "Pro Gamer"
	defaultTeamName   = "Team Phoenix"
	defaultAdminName  = "root"
)

// PlayerLogin turns a submitted player form into a player identity.
func PlayerLogin(c Credentials) domain.Player {
	return domain.Player{
		ID:    uuid.New(),
		Name:  orDefault(c.Name, defaultPlayerName),
		Email: strings.TrimSpace(c.Contact),
	}
}

// TeamLogin turns a submitted team form into a team identity.
func TeamLogin(c Credentials) domain.Team {
	return domain.Team{
		ID:    uuid.New(),
		Name:  orDefault(c.Name, defaultTeamName),
		Email: strings.TrimSpace(c.Contact),
	}
}

// AdminLogin checks Code against the configured admin password.
func AdminLogin(c Credentials, password string) (domain.Admin, error) {
	if password == "" || subtle.ConstantTimeCompare([]byte(c.Code), []byte(password)) != 1 {
		return domain.Admin{}, ErrInvalidCredentials
	}
	return domain.Admin{
		ID:    uuid.New(),
		Name:  orDefault(c.Name, defaultAdminName),
		Email: strings.TrimSpace(c.Contact),
	}, nil
}

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
