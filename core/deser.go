package core

import (
	"bytes"
	"encoding/binary"
	"time"

	"trackstats/stats"
)

// Fixed-width little-endian record for one SegmentWindow. Durations
// travel as nanoseconds, wall times as unix nanoseconds.
type segmentWindowRecord struct {
	TimeStart         int64
	TimeEnd           int64
	Initialized       bool
	StartTimeNs       int64
	StopTimeNs        int64
	TotalTimeNs       int64
	MovingTimeNs      int64
	TotalDistance     float64
	MaxSpeed          float64
	TotalAltitudeGain float64
	TotalAltitudeLoss float64
	MinAltitude       float64
	MaxAltitude       float64
}

func SegmentWindowToBytes(window *SegmentWindow) ([]byte, error) {
	ts := window.Stats
	record := segmentWindowRecord{
		TimeStart:         window.TimeStart,
		TimeEnd:           window.TimeEnd,
		Initialized:       ts.IsInitialized(),
		TotalTimeNs:       int64(ts.TotalTime),
		MovingTimeNs:      int64(ts.MovingTime),
		TotalDistance:     ts.TotalDistance,
		MaxSpeed:          ts.MaxSpeed,
		TotalAltitudeGain: ts.TotalAltitudeGain,
		TotalAltitudeLoss: ts.TotalAltitudeLoss,
		MinAltitude:       ts.MinAltitude,
		MaxAltitude:       ts.MaxAltitude,
	}
	if record.Initialized {
		record.StartTimeNs = ts.StartTime.UnixNano()
		record.StopTimeNs = ts.StopTime.UnixNano()
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &record); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func BytesToSegmentWindow(buf []byte) (*SegmentWindow, error) {
	var record segmentWindowRecord
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &record); err != nil {
		return nil, err
	}

	ts := stats.NewTrackStatistics()
	if record.Initialized {
		ts.StartTime = time.Unix(0, record.StartTimeNs)
		ts.StopTime = time.Unix(0, record.StopTimeNs)
	}
	ts.TotalTime = time.Duration(record.TotalTimeNs)
	ts.MovingTime = time.Duration(record.MovingTimeNs)
	ts.TotalDistance = record.TotalDistance
	ts.MaxSpeed = record.MaxSpeed
	ts.TotalAltitudeGain = record.TotalAltitudeGain
	ts.TotalAltitudeLoss = record.TotalAltitudeLoss
	ts.MinAltitude = record.MinAltitude
	ts.MaxAltitude = record.MaxAltitude

	return &SegmentWindow{
		TimeStart: record.TimeStart,
		TimeEnd:   record.TimeEnd,
		Stats:     ts,
	}, nil
}
