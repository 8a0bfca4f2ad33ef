package core

import (
	"fmt"
	"time"

	"trackstats/stats"
)

// SegmentWindow is one closed segment as persisted: its statistics
// plus millisecond time bounds used as storage keys. A recorded track
// is a list of contiguous SegmentWindows.
type SegmentWindow struct {
	TimeStart int64 // unix millis
	TimeEnd   int64 // unix millis
	Stats     *stats.TrackStatistics
}

func NewSegmentWindow(segment *stats.TrackStatistics) *SegmentWindow {
	return &SegmentWindow{
		TimeStart: TimeToMillis(segment.StartTime),
		TimeEnd:   TimeToMillis(segment.StopTime),
		Stats:     segment,
	}
}

func (window *SegmentWindow) Id() int64 {
	return window.TimeStart
}

func (window *SegmentWindow) Overlaps(t0, t1 int64) bool {
	return window.TimeEnd >= t0 && window.TimeStart <= t1
}

func (window SegmentWindow) String() string {
	return fmt.Sprintf("<SegmentWindow: Time [%d, %d]>",
		window.TimeStart, window.TimeEnd)
}

func TimeToMillis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}
