package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/StounhandJ/yt_download_bot/internal/downloaders"
	"github.com/StounhandJ/yt_download_bot/internal/utils"
	"github.com/kkdai/youtube/v2"
)

var ErrEmptyVideoID = errors.New("пустой ID видео")

type source struct {
	client *youtube.Client
}

// New источник с реальными данными из YouTube. Включается Application.LiveMetadata.
func New(client *http.Client) *source {
	return &source{
		client: &youtube.Client{
			HTTPClient: client,
		},
	}
}

func (s source) Info(ctx context.Context, videoID string) (*downloaders.Video, error) {
	if videoID == "" {
		return nil, ErrEmptyVideoID
	}

	youtubeVideo, err := s.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("GetVideoContext %s: %w", videoID, err)
	}

	return videoFromYoutube(videoID, youtubeVideo), nil
}

func videoFromYoutube(videoID string, youtubeVideo *youtube.Video) *downloaders.Video {
	return &downloaders.Video{
		VideoID:      videoID,
		Title:        youtubeVideo.Title,
		Channel:      youtubeVideo.Author,
		ThumbnailURL: ThumbnailURL(videoID),
		Duration:     utils.FormatSecondsToMMSS(int(youtubeVideo.Duration.Seconds())),
		Views:        utils.FormatCount(int64(youtubeVideo.Views)),
	}
}
