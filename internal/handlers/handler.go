package handlers

import (
	"context"
	"strings"

	"github.com/StounhandJ/yt_download_bot/internal/gateway"
	easyjson "github.com/mailru/easyjson"
)

const (
	RouteTelegramBot     = "/telegram-bot"
	RouteYoutubeInfo     = "/youtube-info"
	RouteYoutubeDownload = "/youtube-download"
)

// MessageSender исходящая отправка сообщения в чат Telegram
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	bot      Bot
	info     Info
	download Download
}

// NewHandler все три обработчика на одних маршрутах (локальный сервер)
func NewHandler(bot Bot, info Info, download Download) handler {
	return handler{
		bot:      bot,
		info:     info,
		download: download,
	}
}

func (h handler) Routes() map[string]gateway.Handler {
	return map[string]gateway.Handler{
		RouteTelegramBot:     h.bot.Handle,
		RouteYoutubeInfo:     h.info.Handle,
		RouteYoutubeDownload: h.download.Handle,
	}
}

// decodeBody пустое тело считается пустым объектом
func decodeBody(body string, v easyjson.Unmarshaler) error {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	return easyjson.Unmarshal([]byte(body), v)
}
