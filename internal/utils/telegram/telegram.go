package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Лимит Telegram на длину текста сообщения
const maxMessageLength = 4096

var ErrEmptyToken = errors.New("TELEGRAM_BOT_TOKEN not configured")

// Sender отправляет сообщения через Bot API (sendMessage).
// Повторов нет: ошибка возвращается вызывающему как есть.
type Sender struct {
	bot *telego.Bot
}

func NewSender(token string, client *http.Client, opts ...telego.BotOption) (*Sender, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	if client != nil {
		opts = append([]telego.BotOption{telego.WithHTTPClient(client)}, opts...)
	}

	bot, err := telego.NewBot(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("telego.NewBot: %w", err)
	}

	return &Sender{bot: bot}, nil
}

// Отправка сообщения в чат, HTML разметка
func (s *Sender) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := s.bot.SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    tu.ID(chatID),
		Text:      truncateText(text, maxMessageLength),
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("sendMessage chat=%d: %w", chatID, err)
	}

	return nil
}

func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}

	return s
}
