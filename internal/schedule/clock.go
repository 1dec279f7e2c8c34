package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesOfDay parses a "HH:MM" wall-clock string into minutes since midnight.
// The itinerary is static configuration, so malformed values map to 0 rather
// than an error.
func MinutesOfDay(clock string) int {
	h, m, ok := splitClock(clock)
	if !ok {
		return 0
	}
	return h*60 + m
}

// FormatDuration renders the span between two "HH:MM" times. An end before the
// start is treated as crossing midnight. Output is "2h 28m", "1h" or "5 min".
func FormatDuration(start, end string) string {
	diff := MinutesOfDay(end) - MinutesOfDay(start)
	if diff < 0 {
		diff += 24 * 60
	}
	h := diff / 60
	m := diff % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%d min", m)
	}
}

// FormatGap renders the idle time between the end of one activity and the
// start of the next. Zero or negative gaps yield ok=false: back-to-back and
// overlapping activities report no gap at all. Gaps of an hour or more always
// carry the minute remainder, even when zero ("1h 0m"), unlike FormatDuration.
func FormatGap(endPrevious, startNext string) (string, bool) {
	diff := MinutesOfDay(startNext) - MinutesOfDay(endPrevious)
	if diff <= 0 {
		return "", false
	}
	if diff < 60 {
		return fmt.Sprintf("%d min", diff), true
	}
	return fmt.Sprintf("%dh %dm", diff/60, diff%60), true
}

func splitClock(clock string) (h, m int, ok bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}
