package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerLogin(t *testing.T) {
	p := PlayerLogin(Credentials{Name: "  Shadow ", Contact: "shadow@example.com", Code: "0000"})
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "Shadow", p.Name)
	assert.Equal(t, "shadow@example.com", p.Email)

	anon := PlayerLogin(Credentials{})
	assert.Equal(t, defaultPlayerName, anon.Name)
}

func TestTeamLogin(t *testing.T) {
	a := TeamLogin(Credentials{Contact: "team@example.com"})
	b := TeamLogin(Credentials{Contact: "team@example.com"})
	assert.Equal(t, defaultTeamName, a.Name)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAdminLogin(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		password string
		wantErr  bool
	}{
		{name: "match", code: "s3cret", password: "s3cret"},
		{name: "mismatch", code: "guess", password: "s3cret", wantErr: true},
		{name: "no password configured", code: "", password: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin, err := AdminLogin(Credentials{Code: tt.code}, tt.password)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCredentials)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, defaultAdminName, admin.Name)
		})
	}
}
