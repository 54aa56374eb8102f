package telegram

import (
	"encoding/json"
	"strings"

	"github.com/mymmrac/telego"
)

// ParseUpdate разбирает тело вебхука. Пустое тело - пустой апдейт.
func ParseUpdate(body string) (telego.Update, error) {
	var update telego.Update
	if strings.TrimSpace(body) == "" {
		return update, nil
	}

	err := json.Unmarshal([]byte(body), &update)

	return update, err
}

// Получение ID чата
func GetChatID(update telego.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}

	return 0
}

// Получение текста сообщения
func GetMessageText(update telego.Update) string {
	if update.Message != nil {
		return update.Message.Text
	}

	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		if msg := update.CallbackQuery.Message.Message(); msg != nil {
			return msg.Text
		}
	}

	return ""
}
