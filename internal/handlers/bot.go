package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/StounhandJ/yt_download_bot/internal/gateway"
	"github.com/StounhandJ/yt_download_bot/internal/utils"
	telegramUtils "github.com/StounhandJ/yt_download_bot/internal/utils/telegram"
)

const (
	textWelcome    = "🚀 Привет! Отправь мне ссылку на YouTube видео, и я помогу скачать его.\n\nПоддерживаемые форматы:\n• MP4 (видео)\n• MP3 (аудио)"
	textProcessing = "⏳ Обрабатываю видео..."
	textFound      = "✅ Видео найдено!\n\n📹 Sample Video\n\n📥 Доступные форматы:\nMP4: 1080p, 720p, 480p\nMP3: 320kbps\n\nВыберите формат для скачивания:"
	textRejected   = "❌ Пожалуйста, отправьте корректную ссылку на YouTube видео."

	commandStart = "/start"

	errTokenNotConfigured = "TELEGRAM_BOT_TOKEN not configured"
	errInvalidJSON        = "Invalid JSON body"
)

// Домены, по которым текст считается ссылкой на YouTube
var youtubeMarkers = []string{"youtube.com", "youtu.be"}

type Bot struct {
	sender   MessageSender
	setupErr error
}

func NewBot(sender MessageSender) Bot {
	return Bot{sender: sender}
}

// NewBrokenBot бот, которого не удалось собрать (кривой токен, прокси).
// OPTIONS и GET работают, на POST возвращается setupErr, наружу уходит 500.
func NewBrokenBot(setupErr error) Bot {
	return Bot{setupErr: setupErr}
}

// Handle вебхук Telegram
func (b Bot) Handle(ctx context.Context, req gateway.Request) (gateway.Response, error) {
	switch req.MethodOr(http.MethodPost) {
	case http.MethodOptions:
		return gateway.Preflight(http.MethodPost, http.MethodOptions), nil
	case http.MethodGet:
		return gateway.JSON(http.StatusOK, StatusBody{
			Status: "Bot is running",
			Info:   "Send POST requests from Telegram",
		}), nil
	case http.MethodPost:
	default:
		return gateway.MethodNotAllowed(), nil
	}

	if b.setupErr != nil {
		return gateway.Response{}, b.setupErr
	}

	if b.sender == nil {
		return gateway.Error(http.StatusInternalServerError, errTokenNotConfigured), nil
	}

	update, err := telegramUtils.ParseUpdate(req.Body)
	if err != nil {
		return gateway.Error(http.StatusBadRequest, errInvalidJSON), nil
	}

	// Апдейты без сообщения (inline, callback и т.д.) просто подтверждаем
	if update.Message == nil {
		return gateway.JSON(http.StatusOK, OKBody{OK: true}), nil
	}

	chatID := telegramUtils.GetChatID(update)
	replies := Replies(telegramUtils.GetMessageText(update))

	utils.Log.WithField("request_id", req.RequestID).
		WithField("chat_id", chatID).
		Debugf("отправка %d сообщений", len(replies))

	for _, text := range replies {
		// Первая же ошибка прерывает обработку, повторов нет
		if err := b.sender.SendMessage(ctx, chatID, text); err != nil {
			return gateway.Response{}, err
		}
	}

	return gateway.JSON(http.StatusOK, OKBody{OK: true}), nil
}

// Replies тексты ответа на сообщение в порядке отправки.
// Сообщение "обрабатываю" косметическое: реальной обработки видео нет.
func Replies(text string) []string {
	switch {
	case text == commandStart:
		return []string{textWelcome}
	case isYoutubeText(text):
		return []string{textProcessing, textFound}
	default:
		return []string{textRejected}
	}
}

func isYoutubeText(text string) bool {
	for _, marker := range youtubeMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	return false
}
