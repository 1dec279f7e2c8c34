package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, MinutesOfDay("00:00"))
	assert.Equal(t, 7*60, MinutesOfDay("07:00"))
	assert.Equal(t, 17*60+45, MinutesOfDay("17:45"))
	assert.Equal(t, 0, MinutesOfDay("garbage"))
	assert.Equal(t, 0, MinutesOfDay(""))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0 min", FormatDuration("08:00", "08:00"))
	assert.Equal(t, "2h 8m", FormatDuration("08:20", "10:28"))
	assert.Equal(t, "2h 28m", FormatDuration("08:00", "10:28"))
	assert.Equal(t, "15 min", FormatDuration("17:30", "17:45"))
	assert.Equal(t, "2h", FormatDuration("08:00", "10:00"))
}

func TestFormatDurationMidnightRollover(t *testing.T) {
	assert.Equal(t, "1h", FormatDuration("23:30", "00:30"))
	assert.Equal(t, "2h 15m", FormatDuration("23:00", "01:15"))
}

func TestFormatGap(t *testing.T) {
	gap, ok := FormatGap("10:28", "10:40")
	assert.True(t, ok)
	assert.Equal(t, "12 min", gap)

	gap, ok = FormatGap("11:40", "12:00")
	assert.True(t, ok)
	assert.Equal(t, "20 min", gap)

	gap, ok = FormatGap("14:30", "16:00")
	assert.True(t, ok)
	assert.Equal(t, "1h 30m", gap)

	gap, ok = FormatGap("10:00", "11:00")
	assert.True(t, ok)
	assert.Equal(t, "1h 0m", gap)
}

func TestFormatGapAbsentForNonPositive(t *testing.T) {
	_, ok := FormatGap("10:28", "10:28")
	assert.False(t, ok)

	_, ok = FormatGap("08:00", "07:00")
	assert.False(t, ok)
}
