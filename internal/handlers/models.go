//go:generate easyjson models.go
package handlers

// easyjson:json
type OKBody struct {
	OK bool `json:"ok"`
}

// easyjson:json
type StatusBody struct {
	Status string `json:"status"`
	Info   string `json:"info"`
}

// easyjson:json
type DownloadRequest struct {
	VideoID string `json:"video_id"`
	Format  string `json:"format"`
	Quality string `json:"quality"`
}

// easyjson:json
type DownloadLink struct {
	DownloadURL string `json:"download_url"`
	VideoID     string `json:"video_id"`
	Format      string `json:"format"`
	Quality     string `json:"quality"`
	ExpiresIn   int    `json:"expires_in"`
	FileSize    string `json:"file_size"`
}

// easyjson:json
type VideoInfo struct {
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration"`
	Views     string `json:"views"`
}
