package downloaders

import "fmt"

const (
	DefaultDownloadBaseURL = "https://example.com/download"
	DefaultFormat          = "mp4"
	DefaultQuality         = "720p"

	// Ссылка условная, поэтому срок и размер постоянные
	LinkExpiresIn = 3600
	LinkFileSize  = "25.4 MB"
)

type Link struct {
	DownloadURL string
	VideoID     string
	Format      string
	Quality     string
	ExpiresIn   int
	FileSize    string
}

// NewLink подставляет параметры в шаблон ссылки. Ничего не скачивает и не проверяет.
func NewLink(baseURL, videoID, format, quality string) Link {
	return Link{
		DownloadURL: fmt.Sprintf("%s/%s?format=%s&quality=%s", baseURL, videoID, format, quality),
		VideoID:     videoID,
		Format:      format,
		Quality:     quality,
		ExpiresIn:   LinkExpiresIn,
		FileSize:    LinkFileSize,
	}
}
