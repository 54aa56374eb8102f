//go:generate easyjson gateway.go

// Package gateway общий конверт запроса и ответа для всех обработчиков:
// CORS, JSON тела ошибок и адаптеры под AWS Lambda и fasthttp.
package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/StounhandJ/yt_download_bot/internal/utils"
	easyjson "github.com/mailru/easyjson"
)

const (
	corsMaxAge       = "86400"
	corsAllowHeaders = "Content-Type"
)

// Request входящее событие, живет одну обработку
type Request struct {
	Method    string
	Body      string
	Query     map[string]string
	RequestID string
}

// MethodOr метод запроса или значение по умолчанию, если транспорт его не передал
func (r Request) MethodOr(def string) string {
	if r.Method == "" {
		return def
	}

	return strings.ToUpper(r.Method)
}

type Response struct {
	StatusCode      int
	Headers         map[string]string
	Body            string
	IsBase64Encoded bool
}

// Handler возвращает error только для сбоев, которые клиент исправить не может.
// Такие ошибки превращаются в единый ответ 500.
type Handler func(ctx context.Context, req Request) (Response, error)

// easyjson:json
type ErrorBody struct {
	Error string `json:"error"`
}

// Preflight ответ на OPTIONS, тело пустое
func Preflight(methods ...string) Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": strings.Join(methods, ", "),
			"Access-Control-Allow-Headers": corsAllowHeaders,
			"Access-Control-Max-Age":       corsMaxAge,
		},
	}
}

func JSON(status int, v easyjson.Marshaler) Response {
	body, err := easyjson.Marshal(v)
	if err != nil {
		utils.Log.Errorf("easyjson.Marshal: %v", err)

		return InternalError()
	}

	return Response{
		StatusCode: status,
		Headers:    jsonHeaders(),
		Body:       string(body),
	}
}

func Error(status int, message string) Response {
	return JSON(status, ErrorBody{Error: message})
}

func MethodNotAllowed() Response {
	return Error(http.StatusMethodNotAllowed, "Method not allowed")
}

// InternalError собран вручную: не должен зависеть от маршалинга
func InternalError() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    jsonHeaders(),
		Body:       `{"error":"Internal server error"}`,
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// serve единая точка вызова обработчика для всех транспортов
func serve(ctx context.Context, h Handler, req Request) Response {
	resp, err := h(ctx, req)
	if err != nil {
		utils.Log.WithField("request_id", req.RequestID).
			WithField("method", req.Method).
			Errorf("handler failed: %v", err)

		return InternalError()
	}

	utils.Log.WithField("request_id", req.RequestID).
		Debugf("%s -> %d", req.Method, resp.StatusCode)

	return resp
}
