package gateway

import (
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const requestIDHeader = "X-Request-Id"

func FromFastHTTP(ctx *fasthttp.RequestCtx) Request {
	query := make(map[string]string)
	ctx.QueryArgs().VisitAll(func(key, value []byte) {
		// как у API Gateway: при повторе ключа остается последнее значение
		query[string(key)] = string(value)
	})

	requestID := string(ctx.Request.Header.Peek(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	return Request{
		Method:    string(ctx.Method()),
		Body:      string(ctx.PostBody()),
		Query:     query,
		RequestID: requestID,
	}
}

func (r Response) WriteFastHTTP(ctx *fasthttp.RequestCtx) {
	for k, v := range r.Headers {
		ctx.Response.Header.Set(k, v)
	}

	ctx.SetStatusCode(r.StatusCode)
	ctx.SetBodyString(r.Body)
}

// FastHTTP обработчик для локального сервера
func FastHTTP(h Handler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		req := FromFastHTTP(ctx)
		ctx.Response.Header.Set(requestIDHeader, req.RequestID)

		serve(ctx, h, req).WriteFastHTTP(ctx)
	}
}
