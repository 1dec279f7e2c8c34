package domain

import "time"

// Phase is the time-derived classification of an activity. It is independent
// of the user-toggled Completed flag; the two must never be conflated.
type Phase string

const (
	PhaseCompleted Phase = "completed"
	PhaseActive    Phase = "active"
	PhaseUpcoming  Phase = "upcoming"
)

// ActivityStatus is the per-activity derived state, recomputed on every tick
type ActivityStatus struct {
	ActivityID string `json:"activityId"`
	Phase      Phase  `json:"phase"`
	Critical   bool   `json:"critical"`
	Departure  bool   `json:"departure"`
	Milestone  bool   `json:"milestone"`
	Completed  bool   `json:"completed"` // user toggle, echoed for convenience
	Duration   string `json:"duration"`

	// Progress through an active window, 0-100. Zero for milestones.
	Progress float64 `json:"progress"`

	// Position-derived fields, present only when a live position is known.
	DistanceMeters float64 `json:"distanceMeters,omitempty"`
	Distance       string  `json:"distance,omitempty"`
	Bearing        float64 `json:"bearing,omitempty"`
	Direction      float64 `json:"direction,omitempty"` // bearing relative to device heading
	Nearby         bool    `json:"nearby"`
}

// Gap describes the idle interval between two adjacent activities. It exists
// only when the next activity starts strictly after the previous one ends.
type Gap struct {
	AfterActivityID  string `json:"afterActivityId"`
	BeforeActivityID string `json:"beforeActivityId"`
	Duration         string `json:"duration"`
	InTransit        bool   `json:"inTransit"` // "now" falls inside the gap
}

// CountdownTarget identifies which fixed daily time the countdown is racing
type CountdownTarget string

const (
	TargetArrival   CountdownTarget = "arrival"
	TargetAllAboard CountdownTarget = "all_aboard"
)

// Countdown is the header countdown state
type Countdown struct {
	Target    CountdownTarget `json:"target"`
	Label     string          `json:"label"`
	Remaining string          `json:"remaining"`
	Terminal  bool            `json:"terminal"` // target has passed, Remaining is a fixed string
}

// Snapshot is one full evaluation of the itinerary against the live inputs.
// It is immutable once built; every tick replaces it wholesale.
type Snapshot struct {
	EvaluatedAt time.Time        `json:"evaluatedAt"`
	Activities  []ActivityStatus `json:"activities"`
	Gaps        []Gap            `json:"gaps"`
	Countdown   Countdown        `json:"countdown"`
	HasPosition bool             `json:"hasPosition"`
	Heading     float64          `json:"heading"`
}

// Position is a live sensor fix
type Position struct {
	Coords     Coords    `json:"coords"`
	ReceivedAt time.Time `json:"receivedAt"`
}
