package handlers

import (
	"context"
	"net/http"

	"github.com/StounhandJ/yt_download_bot/internal/downloaders"
	"github.com/StounhandJ/yt_download_bot/internal/gateway"
	"github.com/StounhandJ/yt_download_bot/internal/utils"
)

const errVideoIDRequired = "video_id is required"

type Download struct {
	baseURL string
}

func NewDownload(baseURL string) Download {
	return Download{
		baseURL: utils.StringNotEmptyCoalesce(baseURL, downloaders.DefaultDownloadBaseURL),
	}
}

// Handle ссылка на скачивание по video_id, format и quality
func (d Download) Handle(_ context.Context, req gateway.Request) (gateway.Response, error) {
	switch req.MethodOr(http.MethodGet) {
	case http.MethodOptions:
		return gateway.Preflight(http.MethodPost, http.MethodOptions), nil
	case http.MethodPost:
	default:
		return gateway.MethodNotAllowed(), nil
	}

	var body DownloadRequest
	if err := decodeBody(req.Body, &body); err != nil {
		return gateway.Error(http.StatusBadRequest, errInvalidJSON), nil
	}

	if body.VideoID == "" {
		return gateway.Error(http.StatusBadRequest, errVideoIDRequired), nil
	}

	link := downloaders.NewLink(
		d.baseURL,
		body.VideoID,
		utils.StringNotEmptyCoalesce(body.Format, downloaders.DefaultFormat),
		utils.StringNotEmptyCoalesce(body.Quality, downloaders.DefaultQuality),
	)

	return gateway.JSON(http.StatusOK, DownloadLink{
		DownloadURL: link.DownloadURL,
		VideoID:     link.VideoID,
		Format:      link.Format,
		Quality:     link.Quality,
		ExpiresIn:   link.ExpiresIn,
		FileSize:    link.FileSize,
	}), nil
}
