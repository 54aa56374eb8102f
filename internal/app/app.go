// Package app собирает обработчики из конфига. Общий для локального сервера и Lambda.
// Каждый обработчик собирается отдельно: ошибка настройки одного не мешает остальным.
package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/StounhandJ/yt_download_bot/internal/config"
	"github.com/StounhandJ/yt_download_bot/internal/downloaders"
	"github.com/StounhandJ/yt_download_bot/internal/downloaders/placeholder"
	"github.com/StounhandJ/yt_download_bot/internal/downloaders/youtube"
	"github.com/StounhandJ/yt_download_bot/internal/gateway"
	"github.com/StounhandJ/yt_download_bot/internal/handlers"
	"github.com/StounhandJ/yt_download_bot/internal/utils"
	"github.com/StounhandJ/yt_download_bot/internal/utils/telegram"
	"github.com/mymmrac/telego"
)

// HTTPClient клиент для исходящих запросов: таймаут и прокси из конфига
func HTTPClient(cfg config.Application) (*http.Client, error) {
	client := &http.Client{
		Timeout: cfg.SendTimeout.Duration(),
	}

	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("proxy url: %w", err)
		}

		client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL), // прокси
		}
	}

	return client, nil
}

// Sender nil без токена: вебхук тогда отвечает 500, а не падает при старте
func Sender(cfg config.Application, client *http.Client) (handlers.MessageSender, error) {
	if cfg.TGBotToken == "" {
		utils.Log.Warn("TELEGRAM_BOT_TOKEN не задан")

		return nil, nil
	}

	sender, err := telegram.NewSender(
		cfg.TGBotToken,
		client,
		telego.WithDefaultLogger(cfg.LogLevel == "debug", true),
	)
	if err != nil {
		return nil, err
	}

	return sender, nil
}

// Bot вебхук. Кривой токен или прокси не роняют запуск: ошибка пишется в лог
// и возвращается на каждый POST, наружу уходит 500.
func Bot(cfg config.Application) handlers.Bot {
	client, err := HTTPClient(cfg)
	if err != nil {
		return brokenBot(err)
	}

	sender, err := Sender(cfg, client)
	if err != nil {
		return brokenBot(err)
	}

	return handlers.NewBot(sender)
}

func brokenBot(err error) handlers.Bot {
	utils.Log.Errorf("telegram-bot не настроен: %v", err)

	return handlers.NewBrokenBot(err)
}

// Info заглушка не ходит в сеть, поэтому прокси проверяется только для LiveMetadata
func Info(cfg config.Application) handlers.Info {
	return handlers.NewInfo(Source(cfg))
}

func Source(cfg config.Application) downloaders.ISource {
	if !cfg.LiveMetadata {
		return placeholder.New()
	}

	client, err := HTTPClient(cfg)
	if err != nil {
		utils.Log.Errorf("youtube-info не настроен: %v", err)

		return brokenSource{err: err}
	}

	return youtube.New(client)
}

func Download(cfg config.Application) handlers.Download {
	return handlers.NewDownload(cfg.DownloadBaseURL)
}

func Routes(cfg config.Application) map[string]gateway.Handler {
	return handlers.NewHandler(Bot(cfg), Info(cfg), Download(cfg)).Routes()
}

// brokenSource источник, который не удалось собрать
type brokenSource struct {
	err error
}

func (s brokenSource) Info(context.Context, string) (*downloaders.Video, error) {
	return nil, s.err
}
