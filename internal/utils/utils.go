package utils

import (
	"fmt"
	"strconv"
)

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(elem) > 0 {
			return elem
		}
	}

	return ""
}

// FormatSecondsToMMSS 624 -> "10:24", больше часа -> "1:02:03"
func FormatSecondsToMMSS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	h, m, s := seconds/3600, seconds%3600/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatCount короткая запись счетчика просмотров: 950, 12.5K, 1.2M, 3B
func FormatCount(n int64) string {
	units := []struct {
		div    int64
		suffix string
	}{
		{1_000_000_000, "B"},
		{1_000_000, "M"},
		{1_000, "K"},
	}

	for _, u := range units {
		if n < u.div {
			continue
		}

		tenths := n * 10 / u.div
		if tenths%10 == 0 {
			return strconv.FormatInt(tenths/10, 10) + u.suffix
		}

		return fmt.Sprintf("%d.%d%s", tenths/10, tenths%10, u.suffix)
	}

	return strconv.FormatInt(n, 10)
}
