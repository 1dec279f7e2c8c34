package itinerary

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

// Fixed daily targets for the Flåm call. All times are local port time.
const (
	ArrivalTime       = "07:00"
	AllAboardTime     = "17:45"
	ShipDepartureTime = "18:00"
)

// Named coordinates around the village
var (
	FlamDock      = domain.Coords{Lat: 60.863772, Lon: 7.119263}
	FlamDockFjord = domain.Coords{Lat: 60.862935, Lon: 7.116024}
	FlamStation   = domain.Coords{Lat: 60.863059, Lon: 7.114333}
	Myrdal        = domain.Coords{Lat: 60.735147, Lon: 7.122816}
	AegirPub      = domain.Coords{Lat: 60.863712, Lon: 7.117184}
	Gudvangen     = domain.Coords{Lat: 60.881375, Lon: 6.841402}
	Stegastein    = domain.Coords{Lat: 60.90862, Lon: 7.211877}
	VisitorCenter = domain.Coords{Lat: 60.863359, Lon: 7.114419}
)

// Default returns a fresh copy of the built-in one-day itinerary. Callers own
// the returned slice; the package keeps no shared mutable state.
func Default() []domain.Activity {
	out := make([]domain.Activity, len(defaultActivities))
	copy(out, defaultActivities)
	return out
}

// LoadFile reads an itinerary override from a JSON file. The sequence order in
// the file is the chronological order; time fields are not validated against
// it, matching the trust placed in the built-in configuration.
func LoadFile(path string) ([]domain.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading itinerary file: %w", err)
	}

	var activities []domain.Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("decoding itinerary file: %w", err)
	}
	if len(activities) == 0 {
		return nil, fmt.Errorf("itinerary file %s contains no activities", path)
	}
	return activities, nil
}

var defaultActivities = []domain.Activity{
	{
		ID: "1", Title: "Arrival at Flåm Harbor", StartTime: "07:00", EndTime: "07:00",
		LocationName: "Aurlandsfjord", Coords: FlamDock,
		Description:     "The ship docks at the Flåm cruise pier.",
		FullDescription: "Enjoy the approach through the fjord before docking. The ship begins its mooring maneuvers.",
		Tips:            "Go up on deck for the approach through the fjord. It is spectacular.",
		KeyDetails:      "Official arrival time.",
		Type:            domain.TypeLogistics,
	},
	{
		ID: "2", Title: "Marketplace Buffet Breakfast", StartTime: "07:15", EndTime: "07:45",
		LocationName: "On board", Coords: FlamDock,
		Description:     "Fuel up before going ashore.",
		FullDescription: "Full breakfast at the ship's buffet before the excursion starts.",
		Tips:            "Eat well; lunch at the pub is not until 10:40. Bring water.",
		KeyDetails:      "Buffet open.",
		Type:            domain.TypeFood,
	},
	{
		ID: "3", Title: "Disembark and Orientation", StartTime: "08:00", EndTime: "08:15",
		LocationName: "Cruise pier", Coords: FlamDock,
		Description:     "Off the ship and over to the railway station.",
		FullDescription: "Flåm will be chilly. Leave the ship and head straight for the train station, about 200 m away.",
		Tips:            "Best moment for photos of the ship and the fjord in morning light, before the crowds.",
		KeyDetails:      "Live webcam available.",
		Type:            domain.TypeLogistics,
		WebcamURL:       "https://www.norwaysbest.com/flam/webcam",
		InstagramURL:    "https://www.instagram.com/explore/tags/flam/",
	},
	{
		ID: "4", Title: "The Flåm Railway", StartTime: "08:20", EndTime: "10:28",
		LocationName: "Flåm station", EndLocationName: "Myrdal station",
		Coords: FlamStation, EndCoords: &Myrdal,
		Description:     "One of the most scenic train rides in the world.",
		FullDescription: "From sea level up to 867 m, past the Kjosfossen waterfall (photo stop) and deep valleys.",
		Tips:            "Going up, sit on the right side for the valley and the main waterfalls. Coming down, sit on the left.",
		KeyDetails:      "Round trip, about 2 hours.",
		PriceNOK:        810, PriceEUR: 70,
		Type:         domain.TypeTransport,
		TicketURL:    "https://www.norwaysbest.com/things-to-do/the-flam-railway",
		InstagramURL: "https://www.instagram.com/explore/tags/flamsbana/",
	},
	{
		ID: "5", Title: "Ægir BrewPub", StartTime: "10:40", EndTime: "11:40",
		LocationName: "Ægir BrewPub", Coords: AegirPub,
		Description:     "Viking-style hall with a nine-meter fireplace.",
		FullDescription: "A building inspired by Norse mythology: stave-church woodwork, dragon heads and a central stone fireplace.",
		Tips:            "Feast time. Enjoy the fireplace before heading back toward the pier.",
		KeyDetails:      "Drink at the pub, budget permitting.",
		PriceNOK:        80, PriceEUR: 8.5,
		Type:         domain.TypeFood,
		TicketURL:    "https://www.flamsbrygga.no/en/aegir-brewpub/",
		InstagramURL: "https://www.instagram.com/explore/tags/aegirbrewpub/",
	},
	{
		ID: "6", Title: "Fjord Cruise and Bus", StartTime: "12:00", EndTime: "14:30",
		LocationName: "Flåm harbor", EndLocationName: "Gudvangen",
		Coords: FlamDockFjord, EndCoords: &Gudvangen,
		Description:     "Sail the UNESCO-listed Nærøyfjord.",
		FullDescription: "The narrowest and most dramatic arm of the fjord, with waterfalls and isolated hillside farms.",
		Tips:            "Take the 12:00 electric boat Flåm to Gudvangen; the return shuttle bus is included in the ticket.",
		KeyDetails:      "2.5 hours total.",
		PriceNOK:        835, PriceEUR: 85,
		Type:         domain.TypeSightseeing,
		TicketURL:    "https://www.norwaysbest.com/things-to-do/fjord-cruise-naeroyfjord",
		InstagramURL: "https://www.instagram.com/explore/tags/naeroyfjord/",
	},
	{
		ID: "7", Title: "Stegastein Viewpoint", StartTime: "15:00", EndTime: "16:30",
		LocationName: "Flåm bus stop", EndLocationName: "Stegastein viewpoint",
		Coords: FlamStation, EndCoords: &Stegastein,
		Description:     "Platform 650 m above the fjord.",
		FullDescription: "A steel-and-wood platform jutting 30 m out of the mountainside, with a single glass panel at the end.",
		Tips:            "Catch the 15:00 bus. The ride back has the best late-afternoon light over the fjord.",
		KeyDetails:      "Round-trip bus tour.",
		PriceNOK:        440, PriceEUR: 40,
		Type:         domain.TypeSightseeing,
		TicketURL:    "https://www.norwaysbest.com/things-to-do/stegastein-viewpoint",
		InstagramURL: "https://www.instagram.com/explore/tags/stegastein/",
	},
	{
		ID: "8", Title: "Shopping and Downtime", StartTime: "16:30", EndTime: "17:30",
		LocationName: "Visitor center", Coords: VisitorCenter,
		Description:     "Souvenir shops and local crafts.",
		FullDescription: "Souvenir shops with genuine Norwegian wool sweaters and local handicrafts.",
		Tips:            "A full unhurried hour. Last coffee or souvenir of the day.",
		KeyDetails:      "Relaxed, no rush.",
		Type:            domain.TypeShopping,
	},
	{
		ID: "9", Title: "Final Walk to the Ship", StartTime: "17:30", EndTime: "17:45",
		LocationName: "Cruise pier", Coords: FlamDock,
		Description:     "Easy transfer back to the pier.",
		FullDescription: "Start moving calmly toward the pier for boarding.",
		Tips:            "Do not cut it close. This is the moment to head back.",
		KeyDetails:      "15 minute walk.",
		Type:            domain.TypeLogistics,
	},
	{
		ID: "10", Title: "All Aboard (Deadline)", StartTime: "17:45", EndTime: "17:45",
		LocationName: "Pier", Coords: FlamDock,
		Description:     "Gangway is withdrawn. Hard deadline.",
		FullDescription: "Mandatory return to the ship. The gangway is pulled at 17:45 with no tolerance.",
		Tips:            "WARNING: do not be late. Absolute boarding deadline is 17:45.",
		KeyDetails:      "CRITICAL: boarding deadline.",
		Type:            domain.TypeLogistics,
		Marker:          domain.MarkerCritical,
	},
	{
		ID: "11", Title: "Ship Departs", StartTime: "18:00", EndTime: "18:00",
		LocationName: "Aurlandsfjord", Coords: FlamDock,
		Description:     "The ship begins its outbound sailing.",
		FullDescription: "Farewell to Flåm. Watch the fjord in reverse as the ship pulls away.",
		Tips:            "Go up on deck for the departure maneuver and the evening light on the fjord.",
		KeyDetails:      "Goodbye Flåm.",
		Type:            domain.TypeLogistics,
		Marker:          domain.MarkerDeparture,
	},
}
