package stats

import (
	"fmt"
	"time"

	"trackstats/geo"
)

type SegmentMarker int

const (
	MarkerNone SegmentMarker = iota
	MarkerSegmentStart
	MarkerSegmentEnd
)

// TrackPoint is a single GPS/sensor observation. All sensor fields are
// optional; an absent field skips the dependent statistics update.
// Some points only carry a segment marker (pause/resume separator).
type TrackPoint struct {
	Time           time.Time
	Location       *geo.LatLng
	Altitude       *float64 // absolute, meters
	AltitudeGain   *float64 // barometric delta, meters
	AltitudeLoss   *float64 // barometric delta, meters
	SensorDistance *float64 // meters since the previous point
	Speed          *float64 // m/s
	Moving         bool
	Marker         SegmentMarker
}

func NewTrackPoint(t time.Time) *TrackPoint {
	if t.IsZero() {
		panic("trackpoint requires a timestamp")
	}
	return &TrackPoint{Time: t}
}

func (tp *TrackPoint) SetLocation(lat, lng float64) *TrackPoint {
	tp.Location = geo.NewLatLng(lat, lng)
	return tp
}

func (tp *TrackPoint) SetAltitude(v float64) *TrackPoint {
	tp.Altitude = &v
	return tp
}

func (tp *TrackPoint) SetAltitudeGain(v float64) *TrackPoint {
	tp.AltitudeGain = &v
	return tp
}

func (tp *TrackPoint) SetAltitudeLoss(v float64) *TrackPoint {
	tp.AltitudeLoss = &v
	return tp
}

func (tp *TrackPoint) SetSensorDistance(v float64) *TrackPoint {
	tp.SensorDistance = &v
	return tp
}

func (tp *TrackPoint) SetSpeed(v float64) *TrackPoint {
	tp.Speed = &v
	return tp
}

func (tp *TrackPoint) SetMoving(moving bool) *TrackPoint {
	tp.Moving = moving
	return tp
}

func (tp *TrackPoint) SetMarker(marker SegmentMarker) *TrackPoint {
	tp.Marker = marker
	return tp
}

func (tp *TrackPoint) HasLocation() bool       { return tp.Location != nil }
func (tp *TrackPoint) HasAltitude() bool       { return tp.Altitude != nil }
func (tp *TrackPoint) HasAltitudeGain() bool   { return tp.AltitudeGain != nil }
func (tp *TrackPoint) HasAltitudeLoss() bool   { return tp.AltitudeLoss != nil }
func (tp *TrackPoint) HasSensorDistance() bool { return tp.SensorDistance != nil }
func (tp *TrackPoint) HasSpeed() bool          { return tp.Speed != nil }

func (tp *TrackPoint) IsSegmentStart() bool { return tp.Marker == MarkerSegmentStart }
func (tp *TrackPoint) IsSegmentEnd() bool   { return tp.Marker == MarkerSegmentEnd }

// DistanceToPrevious is the great-circle distance to the previous
// point in meters. Both points must have a location.
func (tp *TrackPoint) DistanceToPrevious(previous *TrackPoint) float64 {
	return tp.Location.DistanceTo(previous.Location)
}

func (tp *TrackPoint) Copy() *TrackPoint {
	if tp == nil {
		return nil
	}
	dup := *tp
	dup.Location = tp.Location.Copy()
	dup.Altitude = copyFloat(tp.Altitude)
	dup.AltitudeGain = copyFloat(tp.AltitudeGain)
	dup.AltitudeLoss = copyFloat(tp.AltitudeLoss)
	dup.SensorDistance = copyFloat(tp.SensorDistance)
	dup.Speed = copyFloat(tp.Speed)
	return &dup
}

func (tp TrackPoint) String() string {
	return fmt.Sprintf("<TrackPoint: time %s marker %d moving %t>",
		tp.Time, tp.Marker, tp.Moving)
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	dup := *v
	return &dup
}
