package notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Infra struct {
	bot    sender
	chatID int64
}

func NewTelegramInfra(token string, chatID int64) (*Infra, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &Infra{bot: bot, chatID: chatID}, nil
}

func (i *Infra) Send(ctx context.Context, text string) error {
	if _, err := i.bot.Send(tgbotapi.NewMessage(i.chatID, text)); err != nil {
		return fmt.Errorf("telegram send to %d: %w", i.chatID, err)
	}
	return nil
}

// Nop: когда TELEGRAM_BOT_TOKEN не задан
type Nop struct{}

func (Nop) Send(context.Context, string) error { return nil }
