package stats

import (
	"math"
)

// TrackStatisticsUpdater folds an ordered stream of TrackPoints into
// cumulative TrackStatistics. Points between two segment markers form
// a segment; a closed segment is merged into the track totals and a
// fresh one started.
//
// Not safe for concurrent mutation: one logical writer must own
// AddTrackPoint. TrackStatistics returns an isolated copy, so readers
// never see internal state.
type TrackStatisticsUpdater struct {
	config Config

	trackStatistics *TrackStatistics
	// The open segment's statistics.
	currentSegment *TrackStatistics
	// The open segment's last point, for delta computation.
	lastTrackPoint *TrackPoint

	altitudeBuffer *AltitudeBuffer
	lastValidSpeed *float64

	onSegmentClosed func(*TrackStatistics)
}

func NewTrackStatisticsUpdater() *TrackStatisticsUpdater {
	return NewTrackStatisticsUpdaterWithConfig(DefaultConfig())
}

func NewTrackStatisticsUpdaterWithConfig(config Config) *TrackStatisticsUpdater {
	return &TrackStatisticsUpdater{
		config:          config,
		trackStatistics: NewTrackStatistics(),
		currentSegment:  NewTrackStatistics(),
		altitudeBuffer:  NewAltitudeBuffer(config.AltitudeSmoothingFactor),
	}
}

// SetSegmentListener registers a callback invoked with a copy of each
// segment's statistics when it closes. Used to hand closed segments to
// a persistence collaborator.
func (updater *TrackStatisticsUpdater) SetSegmentListener(fn func(*TrackStatistics)) *TrackStatisticsUpdater {
	updater.onSegmentClosed = fn
	return updater
}

// Copy produces a fully independent duplicate. The segment listener is
// not carried over; a copy observing the same sink would double-report
// closed segments.
func (updater *TrackStatisticsUpdater) Copy() *TrackStatisticsUpdater {
	dup := &TrackStatisticsUpdater{
		config:          updater.config,
		trackStatistics: updater.trackStatistics.Copy(),
		currentSegment:  updater.currentSegment.Copy(),
		altitudeBuffer:  updater.altitudeBuffer.Copy(),
		lastTrackPoint:  updater.lastTrackPoint.Copy(),
		lastValidSpeed:  copyFloat(updater.lastValidSpeed),
	}
	return dup
}

// TrackStatistics returns a snapshot of the cumulative totals merged
// with the still-open segment.
func (updater *TrackStatisticsUpdater) TrackStatistics() *TrackStatistics {
	snapshot := updater.trackStatistics.Copy()
	snapshot.Merge(updater.currentSegment)
	return snapshot
}

// SegmentStatistics returns a snapshot of the still-open segment only.
func (updater *TrackStatisticsUpdater) SegmentStatistics() *TrackStatistics {
	return updater.currentSegment.Copy()
}

func (updater *TrackStatisticsUpdater) AddTrackPoints(trackPoints []*TrackPoint) {
	for _, tp := range trackPoints {
		updater.AddTrackPoint(tp)
	}
}

func (updater *TrackStatisticsUpdater) AddTrackPoint(tp *TrackPoint) {
	if tp.Time.IsZero() {
		panic("trackpoint has no timestamp")
	}

	if tp.IsSegmentStart() {
		updater.reset(tp)
	}

	if !updater.currentSegment.IsInitialized() {
		updater.currentSegment.StartTime = tp.Time
	}

	// Always advance time.
	updater.currentSegment.StopTime = tp.Time
	updater.currentSegment.TotalTime = tp.Time.Sub(updater.currentSegment.StartTime)

	// Barometer deltas need no smoothing.
	if tp.HasAltitudeGain() {
		updater.currentSegment.TotalAltitudeGain += *tp.AltitudeGain
	}
	if tp.HasAltitudeLoss() {
		updater.currentSegment.TotalAltitudeLoss += *tp.AltitudeLoss
	}

	// Absolute altitude is smoothed before extremity tracking to
	// suppress GPS/barometer jitter.
	if tp.HasAltitude() {
		updater.altitudeBuffer.SetNext(*tp.Altitude)
		if average, ok := updater.altitudeBuffer.Average(); ok {
			updater.currentSegment.UpdateAltitudeExtremities(average)
		}
	}

	if tp.HasSensorDistance() {
		// Trusted sensor measurement wins over position deltas.
		updater.currentSegment.TotalDistance += *tp.SensorDistance
	} else if updater.lastTrackPoint != nil &&
		updater.lastTrackPoint.HasLocation() &&
		tp.HasLocation() && tp.Moving {
		// Non-moving fixes are likely imprecise GPS measurements, not
		// real displacement.
		updater.currentSegment.TotalDistance += tp.DistanceToPrevious(updater.lastTrackPoint)
	}

	if tp.Moving && updater.lastTrackPoint != nil && updater.lastTrackPoint.Moving {
		updater.currentSegment.MovingTime += tp.Time.Sub(updater.lastTrackPoint.Time)
		updater.updateSpeed(tp, updater.lastTrackPoint)
	}

	if tp.IsSegmentEnd() {
		updater.reset(tp)
		return
	}

	updater.lastTrackPoint = tp
}

// reset folds the open segment into the track totals and starts a new
// segment anchored at tp's time.
func (updater *TrackStatisticsUpdater) reset(tp *TrackPoint) {
	if updater.currentSegment.IsInitialized() {
		updater.trackStatistics.Merge(updater.currentSegment)
		if updater.onSegmentClosed != nil {
			updater.onSegmentClosed(updater.currentSegment.Copy())
		}
	}
	updater.currentSegment.Reset(tp.Time)

	updater.lastTrackPoint = nil
	updater.altitudeBuffer.Reset()
	updater.lastValidSpeed = nil
}

// SmoothedAltitude is the moving average over the open segment's
// recent altitude readings; false if none have been seen.
func (updater *TrackStatisticsUpdater) SmoothedAltitude() (float64, bool) {
	return updater.altitudeBuffer.Average()
}

// SmoothedSpeed is the last speed reading that passed the plausibility
// check; false if none has been accepted in the open segment.
func (updater *TrackStatisticsUpdater) SmoothedSpeed() (float64, bool) {
	if updater.lastValidSpeed == nil {
		return 0, false
	}
	return *updater.lastValidSpeed, true
}

func (updater *TrackStatisticsUpdater) updateSpeed(tp, lastTrackPoint *TrackPoint) {
	if !tp.HasSpeed() || !lastTrackPoint.HasSpeed() {
		return
	}
	if !updater.isValidSpeed(tp, lastTrackPoint) {
		return
	}
	speed := *tp.Speed
	updater.lastValidSpeed = &speed
	if speed > updater.currentSegment.MaxSpeed {
		updater.currentSegment.MaxSpeed = speed
	}
}

// isValidSpeed rejects readings whose implied acceleration exceeds the
// configured per-second bound. Cheapest check first: speed readings of
// exactly zero are noise.
func (updater *TrackStatisticsUpdater) isValidSpeed(tp, lastTrackPoint *TrackPoint) bool {
	if *tp.Speed == 0 {
		return false
	}

	elapsed := tp.Time.Sub(lastTrackPoint.Time).Seconds()
	if elapsed <= 0 {
		return false
	}
	acceleration := math.Abs(*tp.Speed-*lastTrackPoint.Speed) / elapsed
	maxAcceleration := updater.config.MaxAcceleration * elapsed
	return acceleration <= maxAcceleration
}
