package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/StounhandJ/yt_download_bot/internal/downloaders"
	"github.com/StounhandJ/yt_download_bot/internal/gateway"
	"github.com/stretchr/testify/require"
)

var corsMethods = map[string]string{
	RouteTelegramBot:     "POST, OPTIONS",
	RouteYoutubeInfo:     "GET, OPTIONS",
	RouteYoutubeDownload: "POST, OPTIONS",
}

type sent struct {
	chatID int64
	text   string
}

type fakeSender struct {
	sent   []sent
	failAt int // номер сообщения с ошибкой, с 1; 0 - без ошибок
}

func (f *fakeSender) SendMessage(_ context.Context, chatID int64, text string) error {
	f.sent = append(f.sent, sent{chatID: chatID, text: text})
	if f.failAt == len(f.sent) {
		return errors.New("telegram unavailable")
	}

	return nil
}

type failingSource struct{}

func (failingSource) Info(context.Context, string) (*downloaders.Video, error) {
	return nil, errors.New("youtube unavailable")
}

func call(t *testing.T, h gateway.Handler, req gateway.Request) gateway.Response {
	t.Helper()

	resp, err := h(context.Background(), req)
	require.NoError(t, err)

	return resp
}

func TestOptionsAlwaysPreflight(t *testing.T) {
	routes := NewHandler(NewBot(&fakeSender{}), NewInfo(nil), NewDownload("")).Routes()
	require.Len(t, routes, 3)

	for route, h := range routes {
		for _, body := range []string{"", "{not json", `{"video_id":"x"}`} {
			resp := call(t, h, gateway.Request{Method: http.MethodOptions, Body: body})

			require.Equal(t, http.StatusOK, resp.StatusCode, route)
			require.Empty(t, resp.Body, route)
			require.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"], route)
			require.Equal(t, corsMethods[route], resp.Headers["Access-Control-Allow-Methods"], route)
			require.Equal(t, "Content-Type", resp.Headers["Access-Control-Allow-Headers"], route)
			require.Equal(t, "86400", resp.Headers["Access-Control-Max-Age"], route)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	routes := NewHandler(NewBot(&fakeSender{}), NewInfo(nil), NewDownload("")).Routes()

	cases := map[string][]string{
		RouteTelegramBot:     {http.MethodPut, http.MethodDelete},
		RouteYoutubeInfo:     {http.MethodPost, http.MethodPut},
		RouteYoutubeDownload: {http.MethodGet, http.MethodDelete},
	}

	for route, methods := range cases {
		for _, method := range methods {
			resp := call(t, routes[route], gateway.Request{Method: method})

			require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, "%s %s", method, route)
			require.JSONEq(t, `{"error":"Method not allowed"}`, resp.Body)
		}
	}
}

func TestReplies(t *testing.T) {
	require.Equal(t, []string{textWelcome}, Replies("/start"))
	require.Equal(t, []string{textProcessing, textFound}, Replies("https://youtu.be/dQw4w9WgXcQ"))
	require.Equal(t, []string{textProcessing, textFound}, Replies("смотри youtube.com/watch?v=1"))
	require.Equal(t, []string{textRejected}, Replies("/start please"))
	require.Equal(t, []string{textRejected}, Replies("hello"))
	require.Equal(t, []string{textRejected}, Replies(""))
}

func TestBotStart(t *testing.T) {
	sender := &fakeSender{}

	resp := call(t, NewBot(sender).Handle, gateway.Request{
		Method: http.MethodPost,
		Body:   `{"update_id":1,"message":{"message_id":5,"chat":{"id":42,"type":"private"},"text":"/start"}}`,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"ok":true}`, resp.Body)
	require.Equal(t, []sent{{chatID: 42, text: textWelcome}}, sender.sent)
}

func TestBotYoutubeLink(t *testing.T) {
	sender := &fakeSender{}

	resp := call(t, NewBot(sender).Handle, gateway.Request{
		Method: http.MethodPost,
		Body:   `{"message":{"chat":{"id":-100},"text":"https://youtu.be/dQw4w9WgXcQ"}}`,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []sent{
		{chatID: -100, text: textProcessing},
		{chatID: -100, text: textFound},
	}, sender.sent)
}

func TestBotRejectsOtherText(t *testing.T) {
	sender := &fakeSender{}

	call(t, NewBot(sender).Handle, gateway.Request{
		Method: http.MethodPost,
		Body:   `{"message":{"chat":{"id":7},"text":"https://vimeo.com/1"}}`,
	})

	require.Equal(t, []sent{{chatID: 7, text: textRejected}}, sender.sent)
}

func TestBotWithoutMessage(t *testing.T) {
	for _, body := range []string{"", `{}`, `{"message":null}`, `{"update_id":3}`} {
		sender := &fakeSender{}

		resp := call(t, NewBot(sender).Handle, gateway.Request{Method: http.MethodPost, Body: body})

		require.Equal(t, http.StatusOK, resp.StatusCode, body)
		require.JSONEq(t, `{"ok":true}`, resp.Body, body)
		require.Empty(t, sender.sent, body)
	}
}

func TestBotDefaultMethodIsPost(t *testing.T) {
	sender := &fakeSender{}

	resp := call(t, NewBot(sender).Handle, gateway.Request{Body: `{"message":{"chat":{"id":1},"text":"/start"}}`})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, sender.sent, 1)
}

func TestBotTokenNotConfigured(t *testing.T) {
	resp := call(t, NewBot(nil).Handle, gateway.Request{
		Method: http.MethodPost,
		Body:   `{"message":{"chat":{"id":1},"text":"/start"}}`,
	})

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.JSONEq(t, `{"error":"TELEGRAM_BOT_TOKEN not configured"}`, resp.Body)
}

func TestBrokenBot(t *testing.T) {
	bot := NewBrokenBot(errors.New("telego: invalid token format"))

	_, err := bot.Handle(context.Background(), gateway.Request{
		Method: http.MethodPost,
		Body:   `{"message":{"chat":{"id":1},"text":"/start"}}`,
	})
	require.EqualError(t, err, "telego: invalid token format")

	resp := call(t, bot.Handle, gateway.Request{Method: http.MethodOptions})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, bot.Handle, gateway.Request{Method: http.MethodGet})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBotStatus(t *testing.T) {
	resp := call(t, NewBot(nil).Handle, gateway.Request{Method: http.MethodGet})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"status":"Bot is running","info":"Send POST requests from Telegram"}`, resp.Body)
}

func TestBotInvalidJSON(t *testing.T) {
	sender := &fakeSender{}

	resp := call(t, NewBot(sender).Handle, gateway.Request{Method: http.MethodPost, Body: `{"message":`})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"error":"Invalid JSON body"}`, resp.Body)
	require.Empty(t, sender.sent)
}

func TestBotSendFailure(t *testing.T) {
	sender := &fakeSender{failAt: 1}

	_, err := NewBot(sender).Handle(context.Background(), gateway.Request{
		Method: http.MethodPost,
		Body:   `{"message":{"chat":{"id":1},"text":"youtube.com/watch?v=1"}}`,
	})

	require.Error(t, err)
	// после первой ошибки второе сообщение не отправляется
	require.Len(t, sender.sent, 1)
}

func TestInfo(t *testing.T) {
	resp := call(t, NewInfo(nil).Handle, gateway.Request{
		Method: http.MethodGet,
		Query:  map[string]string{"url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=30"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Headers["Content-Type"])
	require.JSONEq(t, `{
		"video_id": "dQw4w9WgXcQ",
		"title": "Sample Video Title",
		"channel": "Sample Channel",
		"thumbnail": "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		"duration": "10:24",
		"views": "1.2M"
	}`, resp.Body)
}

func TestInfoValidation(t *testing.T) {
	info := NewInfo(nil)

	resp := call(t, info.Handle, gateway.Request{Method: http.MethodGet})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"error":"URL parameter is required"}`, resp.Body)

	resp = call(t, info.Handle, gateway.Request{
		Method: http.MethodGet,
		Query:  map[string]string{"url": "https://vimeo.com/1"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"error":"Invalid YouTube URL"}`, resp.Body)
}

func TestInfoSourceFailure(t *testing.T) {
	_, err := NewInfo(failingSource{}).Handle(context.Background(), gateway.Request{
		Method: http.MethodGet,
		Query:  map[string]string{"url": "https://youtu.be/dQw4w9WgXcQ"},
	})

	require.Error(t, err)
}

func TestDownload(t *testing.T) {
	resp := call(t, NewDownload("").Handle, gateway.Request{
		Method: http.MethodPost,
		Body:   `{"video_id":"dQw4w9WgXcQ"}`,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{
		"download_url": "https://example.com/download/dQw4w9WgXcQ?format=mp4&quality=720p",
		"video_id": "dQw4w9WgXcQ",
		"format": "mp4",
		"quality": "720p",
		"expires_in": 3600,
		"file_size": "25.4 MB"
	}`, resp.Body)
}

func TestDownloadCustomParams(t *testing.T) {
	download := NewDownload("https://dl.local")
	req := gateway.Request{
		Method: http.MethodPost,
		Body:   `{"video_id":"abc","format":"mp3","quality":"320kbps"}`,
	}

	first := call(t, download.Handle, req)
	second := call(t, download.Handle, req)

	require.Equal(t, first.Body, second.Body)
	require.JSONEq(t, `{
		"download_url": "https://dl.local/abc?format=mp3&quality=320kbps",
		"video_id": "abc",
		"format": "mp3",
		"quality": "320kbps",
		"expires_in": 3600,
		"file_size": "25.4 MB"
	}`, first.Body)
}

func TestDownloadVideoIDRequired(t *testing.T) {
	for _, body := range []string{"", `{}`, `{"format":"mp3","quality":"1080p"}`, `{"video_id":""}`, `{"video_id":null}`} {
		resp := call(t, NewDownload("").Handle, gateway.Request{Method: http.MethodPost, Body: body})

		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		require.JSONEq(t, `{"error":"video_id is required"}`, resp.Body, body)
	}
}

func TestDownloadInvalidJSON(t *testing.T) {
	bodies := []string{
		`[1,2`,
		`{"video_id":123}`,
		`{"video_id":"x","format":5}`,
		`{"video_id":"x","quality":true}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			resp := call(t, NewDownload("").Handle, gateway.Request{Method: http.MethodPost, Body: body})

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.JSONEq(t, `{"error":"Invalid JSON body"}`, resp.Body)
		})
	}
}
