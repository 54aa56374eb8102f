package youtube

import (
	"fmt"
	"regexp"
)

const thumbnailURL = "https://img.youtube.com/vi/%s/maxresdefault.jpg"

// matcher один распознаваемый вид ссылки, группа 1 - ID видео
type matcher struct {
	name    string
	pattern *regexp.Regexp
}

// Порядок важен: побеждает первый совпавший шаблон, а не самый точный
var matchers = []matcher{
	{name: "watch", pattern: regexp.MustCompile(`youtube\.com/watch\?v=([^&\n?]+)`)},
	{name: "short", pattern: regexp.MustCompile(`youtu\.be/([^&\n?]+)`)},
	{name: "embed", pattern: regexp.MustCompile(`youtube\.com/embed/([^&\n?]+)`)},
	{name: "legacy", pattern: regexp.MustCompile(`youtube\.com/v/([^&\n?]+)`)},
}

// ExtractVideoID возвращает ID видео из ссылки или пустую строку.
// Отсутствие совпадения не ошибка, решает вызывающий.
func ExtractVideoID(url string) string {
	id, _ := match(url)

	return id
}

func match(url string) (string, string) {
	for _, m := range matchers {
		if sub := m.pattern.FindStringSubmatch(url); sub != nil {
			return sub[1], m.name
		}
	}

	return "", ""
}

func Valid(url string) bool {
	return ExtractVideoID(url) != ""
}

func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(thumbnailURL, videoID)
}
