package placeholder

import (
	"context"

	"github.com/StounhandJ/yt_download_bot/internal/downloaders"
	"github.com/StounhandJ/yt_download_bot/internal/downloaders/youtube"
	"github.com/StounhandJ/yt_download_bot/internal/utils"
)

const (
	placeholderTitle    = "Sample Video Title"
	placeholderChannel  = "Sample Channel"
	placeholderDuration = 624 // 10:24
	placeholderViews    = 1_200_000
)

type source struct{}

// New источник-заглушка: реальных запросов к YouTube нет,
// от ссылки зависят только ID и превью.
func New() downloaders.ISource {
	return source{}
}

func (source) Info(_ context.Context, videoID string) (*downloaders.Video, error) {
	return &downloaders.Video{
		VideoID:      videoID,
		Title:        placeholderTitle,
		Channel:      placeholderChannel,
		ThumbnailURL: youtube.ThumbnailURL(videoID),
		Duration:     utils.FormatSecondsToMMSS(placeholderDuration),
		Views:        utils.FormatCount(placeholderViews),
	}, nil
}
