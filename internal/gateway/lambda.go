package gateway

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

func FromAPIGateway(event events.APIGatewayProxyRequest) (Request, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return Request{}, err
		}

		body = string(decoded)
	}

	requestID := event.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}

	return Request{
		Method:    event.HTTPMethod,
		Body:      body,
		Query:     event.QueryStringParameters,
		RequestID: requestID,
	}, nil
}

func (r Response) APIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode:      r.StatusCode,
		Headers:         r.Headers,
		Body:            r.Body,
		IsBase64Encoded: r.IsBase64Encoded,
	}
}

// Lambda оборачивает обработчик для lambda.Start.
// Ошибка вызова Lambda не возвращается никогда, сбой отдается как 500.
func Lambda(h Handler) func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req, err := FromAPIGateway(event)
		if err != nil {
			return Error(http.StatusBadRequest, "Invalid request body encoding").APIGateway(), nil
		}

		return serve(ctx, h, req).APIGateway(), nil
	}
}
