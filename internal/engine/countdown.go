package engine

import (
	"fmt"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/schedule"
)

const (
	labelUntilArrival = "Time until arrival"
	labelRemaining    = "Time remaining"
	terminalArriving  = "ARRIVING!"
	terminalAboard    = "ALL ABOARD!"
)

// EvaluateCountdown derives the header countdown from the wall clock and the
// two fixed daily targets. Before the arrival target the countdown races
// arrival; afterwards it races all-aboard. A passed target emits its fixed
// terminal string. The function holds no state between ticks; each call
// recomputes from scratch so the display can never drift.
func EvaluateCountdown(now time.Time, arrival, allAboard string) domain.Countdown {
	arrivalAt := targetOn(now, arrival)
	allAboardAt := targetOn(now, allAboard)

	target := domain.TargetAllAboard
	targetAt := allAboardAt
	label := labelRemaining
	terminal := terminalAboard

	if now.Before(arrivalAt) {
		target = domain.TargetArrival
		targetAt = arrivalAt
		label = labelUntilArrival
		terminal = terminalArriving
	}

	diff := targetAt.Sub(now)
	if diff <= 0 {
		return domain.Countdown{
			Target:    target,
			Label:     label,
			Remaining: terminal,
			Terminal:  true,
		}
	}

	return domain.Countdown{
		Target:    target,
		Label:     label,
		Remaining: formatRemaining(diff),
	}
}

// targetOn pins a "HH:MM" clock time onto now's calendar day
func targetOn(now time.Time, clock string) time.Time {
	minutes := schedule.MinutesOfDay(clock)
	return time.Date(now.Year(), now.Month(), now.Day(), minutes/60, minutes%60, 0, 0, now.Location())
}

// formatRemaining floors at each unit boundary; it never rounds up
func formatRemaining(d time.Duration) string {
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
