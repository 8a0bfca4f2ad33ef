package core

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"trackstats/stats"
	"trackstats/utils"
)

func TestSegmentWindowSerialization(t *testing.T) {
	ts := stats.NewTrackStatistics()
	ts.StartTime = time.Unix(1000, 0)
	ts.StopTime = time.Unix(1060, 0)
	ts.TotalTime = 60 * time.Second
	ts.MovingTime = 45 * time.Second
	ts.TotalDistance = 523.25
	ts.MaxSpeed = 12.12
	ts.TotalAltitudeGain = 13.13
	ts.TotalAltitudeLoss = 14.14
	ts.MinAltitude = 100.5
	ts.MaxAltitude = 140.25

	window := NewSegmentWindow(ts)
	buf, err := SegmentWindowToBytes(window)
	utils.AssertEqual(t, err, nil)

	newWindow, err := BytesToSegmentWindow(buf)
	utils.AssertEqual(t, err, nil)
	utils.AssertTrue(t, cmp.Equal(window, newWindow))
}

func TestSegmentWindowSerializationEmptyStats(t *testing.T) {
	// Infinite altitude sentinels and zero times survive the codec.
	window := &SegmentWindow{TimeStart: 0, TimeEnd: 0, Stats: stats.NewTrackStatistics()}

	buf, err := SegmentWindowToBytes(window)
	utils.AssertEqual(t, err, nil)

	newWindow, err := BytesToSegmentWindow(buf)
	utils.AssertEqual(t, err, nil)
	utils.AssertTrue(t, !newWindow.Stats.IsInitialized())
	utils.AssertTrue(t, !newWindow.Stats.HasAltitudeExtremities())
	utils.AssertTrue(t, cmp.Equal(window, newWindow))
}

func TestBytesToSegmentWindowShortBuffer(t *testing.T) {
	_, err := BytesToSegmentWindow([]byte{1, 2, 3})
	utils.AssertTrue(t, err != nil)
}

func TestSegmentWindowOverlaps(t *testing.T) {
	window := &SegmentWindow{TimeStart: 100, TimeEnd: 200}
	utils.AssertTrue(t, window.Overlaps(150, 300))
	utils.AssertTrue(t, window.Overlaps(0, 100))
	utils.AssertTrue(t, window.Overlaps(200, 500))
	utils.AssertTrue(t, !window.Overlaps(0, 99))
	utils.AssertTrue(t, !window.Overlaps(201, 500))
}
