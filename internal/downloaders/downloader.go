package downloaders

import "context"

// ISource источник информации о видео по его ID
type ISource interface {
	Info(ctx context.Context, videoID string) (*Video, error)
}

type Video struct {
	VideoID      string
	Title        string
	Channel      string
	ThumbnailURL string
	Duration     string
	Views        string
}
