package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

const (
	testArrival   = "07:00"
	testAllAboard = "17:45"
)

func TestCountdownBeforeArrival(t *testing.T) {
	cd := EvaluateCountdown(at(6, 30), testArrival, testAllAboard)

	assert.Equal(t, domain.TargetArrival, cd.Target)
	assert.Equal(t, "Time until arrival", cd.Label)
	assert.Equal(t, "0h 30m 0s", cd.Remaining)
	assert.False(t, cd.Terminal)
}

func TestCountdownSwitchesTargetAtArrival(t *testing.T) {
	cd := EvaluateCountdown(at(7, 0), testArrival, testAllAboard)

	assert.Equal(t, domain.TargetAllAboard, cd.Target)
	assert.Equal(t, "Time remaining", cd.Label)
	assert.Equal(t, "10h 45m 0s", cd.Remaining)
	assert.False(t, cd.Terminal)
}

func TestCountdownMidday(t *testing.T) {
	now := time.Date(2026, time.May, 12, 12, 10, 30, 0, time.UTC)
	cd := EvaluateCountdown(now, testArrival, testAllAboard)

	assert.Equal(t, domain.TargetAllAboard, cd.Target)
	assert.Equal(t, "5h 34m 30s", cd.Remaining)
}

func TestCountdownFloorsSeconds(t *testing.T) {
	// 999 ms shy of a full second must not round up.
	now := time.Date(2026, time.May, 12, 17, 44, 58, 1_000_000, time.UTC)
	cd := EvaluateCountdown(now, testArrival, testAllAboard)

	assert.Equal(t, "0h 0m 1s", cd.Remaining)
}

func TestCountdownTerminalAtAllAboard(t *testing.T) {
	cd := EvaluateCountdown(at(17, 45), testArrival, testAllAboard)
	assert.True(t, cd.Terminal)
	assert.Equal(t, "ALL ABOARD!", cd.Remaining)

	cd = EvaluateCountdown(at(19, 0), testArrival, testAllAboard)
	assert.True(t, cd.Terminal)
	assert.Equal(t, "ALL ABOARD!", cd.Remaining)
	assert.Equal(t, domain.TargetAllAboard, cd.Target)
}
