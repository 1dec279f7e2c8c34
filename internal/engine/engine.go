package engine

import (
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/geo"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/schedule"
)

const (
	// MilestoneActiveMinutes keeps a point-in-time activity visually active
	// for a short window after its instant. It implies no real-world duration.
	MilestoneActiveMinutes = 15

	// NearbyThresholdMeters flags an activity as reachable on foot
	NearbyThresholdMeters = 500
)

// Evaluate derives the full itinerary snapshot from the static activity list
// and the live inputs. It is pure: identical inputs produce identical output,
// and it is safe to call on every tick. A nil position and zero heading are
// valid steady states; position-derived fields are simply omitted.
func Evaluate(activities []domain.Activity, now time.Time, pos *domain.Coords, heading float64) domain.Snapshot {
	nowMinutes := now.Hour()*60 + now.Minute()

	snap := domain.Snapshot{
		EvaluatedAt: now,
		Activities:  make([]domain.ActivityStatus, 0, len(activities)),
		HasPosition: pos != nil,
		Heading:     heading,
	}

	for i := range activities {
		act := &activities[i]
		snap.Activities = append(snap.Activities, evaluateActivity(act, nowMinutes, pos, heading))

		if i+1 < len(activities) {
			if gap, ok := evaluateGap(act, &activities[i+1], nowMinutes); ok {
				snap.Gaps = append(snap.Gaps, gap)
			}
		}
	}

	return snap
}

func evaluateActivity(act *domain.Activity, nowMinutes int, pos *domain.Coords, heading float64) domain.ActivityStatus {
	start := schedule.MinutesOfDay(act.StartTime)
	end := schedule.MinutesOfDay(act.EndTime)
	milestone := start == end

	status := domain.ActivityStatus{
		ActivityID: act.ID,
		Phase:      classify(nowMinutes, start, end, milestone),
		Critical:   act.Marker == domain.MarkerCritical,
		Departure:  act.Marker == domain.MarkerDeparture,
		Milestone:  milestone,
		Completed:  act.Completed,
		Duration:   schedule.FormatDuration(act.StartTime, act.EndTime),
	}

	if status.Phase == domain.PhaseActive && !milestone {
		status.Progress = progress(nowMinutes, start, end)
	}

	if pos != nil {
		dist := geo.Distance(*pos, act.Coords)
		bearing := geo.Bearing(*pos, act.Coords)
		status.DistanceMeters = dist
		status.Distance = geo.FormatDistance(dist)
		status.Bearing = bearing
		status.Direction = geo.RelativeDirection(bearing, heading)
		status.Nearby = dist < NearbyThresholdMeters
	}

	return status
}

// classify compares the wall clock against the activity window. The result is
// purely time-derived; the user's Completed toggle is a separate signal that
// the presentation layer combines with this one.
func classify(nowMinutes, start, end int, milestone bool) domain.Phase {
	activeEnd := end
	if milestone {
		activeEnd = start + MilestoneActiveMinutes
	}

	switch {
	case nowMinutes < start:
		return domain.PhaseUpcoming
	case nowMinutes < activeEnd:
		return domain.PhaseActive
	default:
		return domain.PhaseCompleted
	}
}

func progress(nowMinutes, start, end int) float64 {
	total := end - start
	if total <= 0 {
		return 0
	}
	p := float64(nowMinutes-start) / float64(total) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func evaluateGap(prev, next *domain.Activity, nowMinutes int) (domain.Gap, bool) {
	dur, ok := schedule.FormatGap(prev.EndTime, next.StartTime)
	if !ok {
		return domain.Gap{}, false
	}

	prevEnd := schedule.MinutesOfDay(prev.EndTime)
	nextStart := schedule.MinutesOfDay(next.StartTime)

	return domain.Gap{
		AfterActivityID:  prev.ID,
		BeforeActivityID: next.ID,
		Duration:         dur,
		InTransit:        nowMinutes >= prevEnd && nowMinutes < nextStart,
	}, true
}
