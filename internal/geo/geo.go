package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

// EarthRadiusMeters is the mean Earth radius used for all distance math
const EarthRadiusMeters = 6371000.0

// Distance returns the great-circle distance between two coordinates in meters
func Distance(a, b domain.Coords) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Bearing returns the initial bearing from a facing b in degrees [0, 360),
// where 0 is true north and values increase clockwise
func Bearing(a, b domain.Coords) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	lonDiff := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x)

	return math.Mod(bearing*180/math.Pi+360, 360)
}

// RelativeDirection rotates a bearing into the device frame so a direction
// indicator can point at the target. heading is degrees clockwise from true
// north; the result is normalized into [0, 360).
func RelativeDirection(bearing, heading float64) float64 {
	return math.Mod(math.Mod(bearing-heading, 360)+360, 360)
}

// FormatDistance renders meters as "481 m" below a kilometer and "2.5 km" above
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}
