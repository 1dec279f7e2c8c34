package domain

// ActivityType categorizes itinerary entries
type ActivityType string

const (
	TypeLogistics   ActivityType = "logistics"
	TypeFood        ActivityType = "food"
	TypeTransport   ActivityType = "transport"
	TypeSightseeing ActivityType = "sightseeing"
	TypeShopping    ActivityType = "shopping"
)

// Marker flags an activity for special severity treatment
type Marker int

const (
	MarkerNone Marker = iota
	MarkerCritical
	MarkerDeparture
)

func (m Marker) String() string {
	switch m {
	case MarkerCritical:
		return "critical"
	case MarkerDeparture:
		return "departure"
	default:
		return "none"
	}
}

// Coords is a WGS84 latitude/longitude pair in degrees
type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Activity is a single scheduled itinerary entry. The static fields are fixed
// per trip; only Completed changes, and only through an explicit user toggle.
type Activity struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	StartTime       string       `json:"startTime"` // "HH:MM", local port time
	EndTime         string       `json:"endTime"`   // equal to StartTime for milestones
	LocationName    string       `json:"locationName"`
	EndLocationName string       `json:"endLocationName,omitempty"`
	Coords          Coords       `json:"coords"`
	EndCoords       *Coords      `json:"endCoords,omitempty"`
	Description     string       `json:"description"`
	FullDescription string       `json:"fullDescription"`
	Tips            string       `json:"tips"`
	KeyDetails      string       `json:"keyDetails"`
	PriceNOK        float64      `json:"priceNOK"`
	PriceEUR        float64      `json:"priceEUR"`
	Type            ActivityType `json:"type"`
	Marker          Marker       `json:"-"`
	Completed       bool         `json:"completed"`

	WebcamURL    string `json:"webcamUrl,omitempty"`
	TicketURL    string `json:"ticketUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
}

// IsMilestone reports whether the activity is an instant rather than a window
func (a *Activity) IsMilestone() bool {
	return a.StartTime == a.EndTime
}

// CustomExpense is a user-added budget entry outside the fixed itinerary costs
type CustomExpense struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	PriceNOK float64 `json:"priceNOK"`
	PriceEUR float64 `json:"priceEUR"`
}
