package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/StounhandJ/yt_download_bot/internal/config"
	"github.com/StounhandJ/yt_download_bot/internal/gateway"
	"github.com/StounhandJ/yt_download_bot/internal/handlers"
	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"
)

const startUpdate = `{"message":{"chat":{"id":1},"text":"/start"}}`

func TestHTTPClientProxy(t *testing.T) {
	client, err := HTTPClient(config.Application{ProxyURL: "http://127.0.0.1:3128"})
	require.NoError(t, err)
	require.NotNil(t, client.Transport)

	_, err = HTTPClient(config.Application{ProxyURL: "://bad"})
	require.Error(t, err)
}

func TestSenderWithoutToken(t *testing.T) {
	sender, err := Sender(config.Application{}, http.DefaultClient)
	require.NoError(t, err)
	require.Nil(t, sender)
}

func TestSenderInvalidToken(t *testing.T) {
	_, err := Sender(config.Application{TGBotToken: "bad"}, http.DefaultClient)
	require.Error(t, err)
}

func TestRoutesWithoutToken(t *testing.T) {
	routes := Routes(config.Application{})

	resp, err := routes[handlers.RouteTelegramBot](context.Background(), gateway.Request{
		Method: http.MethodPost,
		Body:   startUpdate,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.JSONEq(t, `{"error":"TELEGRAM_BOT_TOKEN not configured"}`, resp.Body)

	resp, err = routes[handlers.RouteYoutubeDownload](context.Background(), gateway.Request{
		Method: http.MethodPost,
		Body:   `{"video_id":"x"}`,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Body, "https://example.com/download/x?format=mp4")
}

func TestMalformedTokenKeepsOtherRoutes(t *testing.T) {
	cfg := config.Application{TGBotToken: "typo-token"}
	routes := Routes(cfg)
	require.Len(t, routes, 3)

	resp, err := Info(cfg).Handle(context.Background(), gateway.Request{
		Method: http.MethodGet,
		Query:  map[string]string{"url": "https://youtu.be/dQw4w9WgXcQ"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = routes[handlers.RouteYoutubeDownload](context.Background(), gateway.Request{
		Method: http.MethodPost,
		Body:   `{"video_id":"x"}`,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// сам бот отвечает единым 500 через транспорт, а не падает при старте
	out, err := gateway.Lambda(routes[handlers.RouteTelegramBot])(context.Background(), apiGatewayPost(startUpdate))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, out.StatusCode)
	require.JSONEq(t, `{"error":"Internal server error"}`, out.Body)
}

func TestBadProxyOnlyAffectsOutboundHandlers(t *testing.T) {
	cfg := config.Application{ProxyURL: "://bad", TGBotToken: "123456:ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghi"}

	resp, err := Info(cfg).Handle(context.Background(), gateway.Request{
		Method: http.MethodGet,
		Query:  map[string]string{"url": "https://youtu.be/dQw4w9WgXcQ"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = Bot(cfg).Handle(context.Background(), gateway.Request{Method: http.MethodPost, Body: startUpdate})
	require.Error(t, err)

	cfg.LiveMetadata = true
	_, err = Info(cfg).Handle(context.Background(), gateway.Request{
		Method: http.MethodGet,
		Query:  map[string]string{"url": "https://youtu.be/dQw4w9WgXcQ"},
	})
	require.Error(t, err)
}

func apiGatewayPost(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{HTTPMethod: http.MethodPost, Body: body}
}
