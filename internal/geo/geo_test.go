package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

var (
	flamDock    = domain.Coords{Lat: 60.863772, Lon: 7.119263}
	flamStation = domain.Coords{Lat: 60.863059, Lon: 7.114333}
	myrdal      = domain.Coords{Lat: 60.735147, Lon: 7.122816}
	gudvangen   = domain.Coords{Lat: 60.881375, Lon: 6.841402}
)

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]domain.Coords{
		{flamDock, myrdal},
		{flamStation, gudvangen},
		{flamDock, flamStation},
	}
	for _, p := range pairs {
		assert.InDelta(t, Distance(p[0], p[1]), Distance(p[1], p[0]), 1.0)
	}
}

func TestDistanceIdentity(t *testing.T) {
	assert.InDelta(t, 0, Distance(flamDock, flamDock), 0.001)
}

func TestDistanceKnownLeg(t *testing.T) {
	// Dock to train station is roughly 280 m across the harbor.
	d := Distance(flamDock, flamStation)
	assert.Greater(t, d, 200.0)
	assert.Less(t, d, 350.0)

	// Flam to Myrdal is about 14 km as the crow flies.
	d = Distance(flamStation, myrdal)
	assert.Greater(t, d, 13000.0)
	assert.Less(t, d, 15500.0)
}

func TestBearingRange(t *testing.T) {
	pairs := [][2]domain.Coords{
		{flamDock, myrdal},
		{myrdal, flamDock},
		{flamStation, gudvangen},
		{gudvangen, flamStation},
	}
	for _, p := range pairs {
		b := Bearing(p[0], p[1])
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 360.0)
	}
}

func TestBearingCardinal(t *testing.T) {
	origin := domain.Coords{Lat: 60.0, Lon: 7.0}
	north := domain.Coords{Lat: 61.0, Lon: 7.0}
	east := domain.Coords{Lat: 60.0, Lon: 8.0}

	assert.InDelta(t, 0, Bearing(origin, north), 0.1)
	assert.InDelta(t, 180, Bearing(north, origin), 0.1)
	// Due east along a parallel starts slightly north of 90 at this latitude,
	// but stays in the eastern quadrant.
	b := Bearing(origin, east)
	assert.Greater(t, b, 45.0)
	assert.Less(t, b, 135.0)
}

func TestRelativeDirection(t *testing.T) {
	assert.InDelta(t, 0, RelativeDirection(90, 90), 0.001)
	assert.InDelta(t, 270, RelativeDirection(0, 90), 0.001)
	assert.InDelta(t, 90, RelativeDirection(90, 0), 0.001)
	assert.InDelta(t, 350, RelativeDirection(10, 20), 0.001)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "999 m", FormatDistance(999))
	assert.Equal(t, "1.0 km", FormatDistance(1000))
	assert.Equal(t, "2.5 km", FormatDistance(2500))
	assert.Equal(t, "0 m", FormatDistance(0))
	assert.Equal(t, "481 m", FormatDistance(480.7))
}
