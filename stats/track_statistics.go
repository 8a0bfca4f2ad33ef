package stats

import (
	"fmt"
	"math"
	"time"
)

// TrackStatistics aggregates distance, time, speed and altitude totals
// over one time span: either a single segment or a whole track. The
// two cases are the same type, combined via Merge.
type TrackStatistics struct {
	StartTime time.Time
	StopTime  time.Time

	TotalTime  time.Duration
	MovingTime time.Duration

	TotalDistance float64 // meters
	MaxSpeed      float64 // m/s

	TotalAltitudeGain float64 // meters
	TotalAltitudeLoss float64 // meters

	// Extremes of the smoothed altitude signal. +Inf/-Inf while no
	// altitude has been seen.
	MinAltitude float64
	MaxAltitude float64
}

func NewTrackStatistics() *TrackStatistics {
	return &TrackStatistics{
		MinAltitude: math.Inf(1),
		MaxAltitude: math.Inf(-1),
	}
}

// IsInitialized reports whether a start time has been set, which
// distinguishes an empty span from a zero-duration one.
func (ts *TrackStatistics) IsInitialized() bool {
	return !ts.StartTime.IsZero()
}

// Reset re-anchors the span at t and clears all totals.
func (ts *TrackStatistics) Reset(t time.Time) {
	*ts = *NewTrackStatistics()
	ts.StartTime = t
	ts.StopTime = t
}

func (ts *TrackStatistics) Copy() *TrackStatistics {
	dup := *ts
	return &dup
}

// Merge folds other into ts. The spans are assumed disjoint; summed
// fields add, extremes take min/max, the boundaries widen.
func (ts *TrackStatistics) Merge(other *TrackStatistics) {
	if !ts.IsInitialized() {
		ts.StartTime = other.StartTime
		ts.StopTime = other.StopTime
	} else if other.IsInitialized() {
		if other.StartTime.Before(ts.StartTime) {
			ts.StartTime = other.StartTime
		}
		if other.StopTime.After(ts.StopTime) {
			ts.StopTime = other.StopTime
		}
	}

	ts.TotalTime += other.TotalTime
	ts.MovingTime += other.MovingTime
	ts.TotalDistance += other.TotalDistance
	ts.TotalAltitudeGain += other.TotalAltitudeGain
	ts.TotalAltitudeLoss += other.TotalAltitudeLoss

	ts.MaxSpeed = math.Max(ts.MaxSpeed, other.MaxSpeed)
	ts.MinAltitude = math.Min(ts.MinAltitude, other.MinAltitude)
	ts.MaxAltitude = math.Max(ts.MaxAltitude, other.MaxAltitude)
}

// UpdateAltitudeExtremities widens min/max altitude with a smoothed
// reading.
func (ts *TrackStatistics) UpdateAltitudeExtremities(altitude float64) {
	ts.MinAltitude = math.Min(ts.MinAltitude, altitude)
	ts.MaxAltitude = math.Max(ts.MaxAltitude, altitude)
}

func (ts *TrackStatistics) HasAltitudeExtremities() bool {
	return !math.IsInf(ts.MinAltitude, 1) && !math.IsInf(ts.MaxAltitude, -1)
}

// AverageSpeed is total distance over total time, m/s.
func (ts *TrackStatistics) AverageSpeed() float64 {
	if ts.TotalTime <= 0 {
		return 0
	}
	return ts.TotalDistance / ts.TotalTime.Seconds()
}

// AverageMovingSpeed is total distance over moving time, m/s.
func (ts *TrackStatistics) AverageMovingSpeed() float64 {
	if ts.MovingTime <= 0 {
		return 0
	}
	return ts.TotalDistance / ts.MovingTime.Seconds()
}

func (ts TrackStatistics) String() string {
	return fmt.Sprintf("<TrackStatistics: time [%s, %s] distance %.1fm moving %s>",
		ts.StartTime, ts.StopTime, ts.TotalDistance, ts.MovingTime)
}
