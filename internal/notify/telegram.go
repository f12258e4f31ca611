package notify

import (
	"context"
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/arcesports/internal/domain"
	"github.com/sirupsen/logrus"
)

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Telegram announces tournaments to subscribed chats. Chats subscribe with
// /sub and leave with /unsub.
type Telegram struct {
	bot   botAPI
	chats mapset.Set[int64]
	log   *logrus.Entry
}

// DialTelegram connects to the bot API with token.
func DialTelegram(token string, debug bool, chats []int64, l *logrus.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	bot.Debug = debug
	return newTelegram(bot, chats, l), nil
}

func newTelegram(bot botAPI, chats []int64, l *logrus.Logger) *Telegram {
	return &Telegram{
		bot:   bot,
		chats: mapset.NewSet[int64](chats...),
		log:   l.WithField("name", "tg_bot"),
	}
}

// TournamentCreated sends the announcement to every subscribed chat. Failed
// chats do not stop the rest; their errors are joined.
func (t *Telegram) TournamentCreated(_ context.Context, tour domain.Tournament) error {
	text := Message(tour)
	var err error
	for _, chatID := range t.chats.ToSlice() {
		if _, sendErr := t.bot.Send(tgbotapi.NewMessage(chatID, text)); sendErr != nil {
			err = errors.Join(err, fmt.Errorf("send to chat %d: %w", chatID, sendErr))
		}
	}
	return err
}

// Run handles subscription commands until ctx is done.
func (t *Telegram) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

const helpText = "/sub - get new tournament announcements\n/unsub - stop announcements"

func (t *Telegram) handleUpdate(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	chatID := update.Message.Chat.ID
	log := t.log.WithFields(logrus.Fields{
		"chat_id": chatID,
		"text":    update.Message.Text,
	})

	var reply string
	switch update.Message.Command() {
	case "sub":
		t.chats.Add(chatID)
		reply = "Subscribed to new tournaments."
	case "unsub":
		t.chats.Remove(chatID)
		reply = "Unsubscribed."
	default:
		reply = helpText
	}
	if _, err := t.bot.Send(tgbotapi.NewMessage(chatID, reply)); err != nil {
		log.WithError(err).Error("send error")
	}
}

// subscribed reports whether chatID receives announcements.
func (t *Telegram) subscribed(chatID int64) bool {
	return t.chats.Contains(chatID)
}
