// Package util holds small formatting helpers shared by the delivery layer.
package util

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// FormatDuration formats a duration for humans, keeping the two most significant
// units (e.g. "45s", "5m10s", "1h30m", "3d4h").
func FormatDuration(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}
	duration = duration.Round(time.Second)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	case duration < day:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	default:
		return fmt.Sprintf("%dd%dh", int(duration/day), int(duration.Hours())%24)
	}
}
