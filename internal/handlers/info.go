package handlers

import (
	"context"
	"net/http"

	"github.com/StounhandJ/yt_download_bot/internal/downloaders"
	"github.com/StounhandJ/yt_download_bot/internal/downloaders/placeholder"
	"github.com/StounhandJ/yt_download_bot/internal/downloaders/youtube"
	"github.com/StounhandJ/yt_download_bot/internal/gateway"
)

const (
	errURLRequired = "URL parameter is required"
	errInvalidURL  = "Invalid YouTube URL"
)

type Info struct {
	source downloaders.ISource
}

// NewInfo без источника отдает заглушку
func NewInfo(source downloaders.ISource) Info {
	if source == nil {
		source = placeholder.New()
	}

	return Info{source: source}
}

// Handle информация о видео по ссылке из query параметра url
func (i Info) Handle(ctx context.Context, req gateway.Request) (gateway.Response, error) {
	switch req.MethodOr(http.MethodGet) {
	case http.MethodOptions:
		return gateway.Preflight(http.MethodGet, http.MethodOptions), nil
	case http.MethodGet:
	default:
		return gateway.MethodNotAllowed(), nil
	}

	url := req.Query["url"]
	if url == "" {
		return gateway.Error(http.StatusBadRequest, errURLRequired), nil
	}

	videoID := youtube.ExtractVideoID(url)
	if videoID == "" {
		return gateway.Error(http.StatusBadRequest, errInvalidURL), nil
	}

	video, err := i.source.Info(ctx, videoID)
	if err != nil {
		return gateway.Response{}, err
	}

	return gateway.JSON(http.StatusOK, VideoInfo{
		VideoID:   video.VideoID,
		Title:     video.Title,
		Channel:   video.Channel,
		Thumbnail: video.ThumbnailURL,
		Duration:  video.Duration,
		Views:     video.Views,
	}), nil
}
