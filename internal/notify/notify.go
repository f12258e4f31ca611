// Package notify tells people about newly created tournaments.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goserg/arcesports/internal/domain"
	"github.com/sirupsen/logrus"
)

type Notifier interface {
	TournamentCreated(ctx context.Context, t domain.Tournament) error
}

// Log writes a confirmation line for every tournament.
type Log struct {
	log *logrus.Entry
}

func NewLog(l *logrus.Logger) *Log {
	return &Log{log: l.WithField("from", "notify")}
}

func (n *Log) TournamentCreated(_ context.Context, t domain.Tournament) error {
	n.log.WithFields(logrus.Fields{
		"id":     t.ID,
		"name":   t.Name,
		"game":   t.Game,
		"status": t.Status,
	}).Info("Tournament Created! Pending approval.")
	return nil
}

// Multi fans a notification out to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) TournamentCreated(ctx context.Context, t domain.Tournament) error {
	var err error
	for _, n := range m {
		err = errors.Join(err, n.TournamentCreated(ctx, t))
	}
	return err
}

// Message is the human readable announcement of t.
func Message(t domain.Tournament) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏆 New tournament: %s\n", t.Name)
	game, format := t.Game, t.Format
	if g, ok := domain.FindGame(t.Game); ok {
		game, format = g.Name, g.FormatName(t.Format)
	}
	fmt.Fprintf(&b, "Game: %s (%s)\n", game, format)
	if t.HasPrizepool && t.Prizepool != "" {
		fmt.Fprintf(&b, "Prize pool: %s\n", t.Prizepool)
	}
	if t.TournamentStart != nil {
		fmt.Fprintf(&b, "Starts: %s\n", t.TournamentStart.Format("02.01.2006 15:04"))
	}
	if t.CreatedBy != "" {
		fmt.Fprintf(&b, "Organiser: %s\n", t.CreatedBy)
	}
	b.WriteString("Status: " + string(t.Status))
	return b.String()
}
