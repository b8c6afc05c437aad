package seed

import (
	"fmt"
	"time"
)

// FormatDate renders the age of t relative to now using the largest non-zero
// unit, in French ("1 heure", "30 secondes", "2 jours"). Future timestamps
// are clamped to zero.
func FormatDate(now, t time.Time) string {
	return formatAge(now.Sub(t))
}

func formatAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int64(d / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return plural(days, "jour", "jours")
	case hours > 0:
		return plural(hours, "heure", "heures")
	case minutes > 0:
		return plural(minutes, "minute", "minutes")
	default:
		return plural(seconds, "seconde", "secondes")
	}
}

func plural(n int64, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
