package downloaders

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLink(t *testing.T) {
	link := NewLink(DefaultDownloadBaseURL, "dQw4w9WgXcQ", "mp3", "320kbps")

	require.Equal(t, "https://example.com/download/dQw4w9WgXcQ?format=mp3&quality=320kbps", link.DownloadURL)
	require.Equal(t, "dQw4w9WgXcQ", link.VideoID)
	require.Equal(t, "mp3", link.Format)
	require.Equal(t, "320kbps", link.Quality)
}

func TestNewLinkIsPure(t *testing.T) {
	a := NewLink(DefaultDownloadBaseURL, "id", DefaultFormat, DefaultQuality)
	b := NewLink(DefaultDownloadBaseURL, "id", DefaultFormat, DefaultQuality)
	require.Equal(t, a, b)

	other := NewLink(DefaultDownloadBaseURL, "other", "webm", "1080p")
	require.Equal(t, a.ExpiresIn, other.ExpiresIn)
	require.Equal(t, a.FileSize, other.FileSize)
	require.Equal(t, 3600, other.ExpiresIn)
	require.Equal(t, "25.4 MB", other.FileSize)
}
