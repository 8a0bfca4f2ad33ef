package core

import (
	"time"

	"trackstats/stats"
	"trackstats/storage"
)

// Recorder is one live recording bound to storage. It feeds incoming
// track points to a TrackStatisticsUpdater and persists every closed
// segment as a SegmentWindow, indexed by start time for range queries.
//
// Append must be driven by a single writer; queries return isolated
// copies.
type Recorder struct {
	trackID int64
	updater *stats.TrackStatisticsUpdater
	store   *BackingStore
	index   *storage.QueryIndex

	// Persistence failure raised inside the segment-close hook,
	// surfaced by the Append that triggered the fold.
	appendErr error
}

func NewRecorder(trackID int64, config *StoreConfig) *Recorder {
	recorder := &Recorder{
		trackID: trackID,
		index:   storage.NewQueryIndex(),
	}
	recorder.updater = stats.NewTrackStatisticsUpdaterWithConfig(config.Engine).
		SetSegmentListener(recorder.persistSegment)
	return recorder
}

func (recorder *Recorder) SetBackingStore(store *BackingStore) *Recorder {
	recorder.store = store
	return recorder
}

func (recorder *Recorder) TrackID() int64 {
	return recorder.trackID
}

// PrimeUp rebuilds the in-memory window index from storage after a
// reopen.
func (recorder *Recorder) PrimeUp() error {
	if recorder.store == nil {
		panic("backing store not set")
	}
	index := storage.NewQueryIndex()
	err := recorder.store.IterateIndex(recorder.trackID, index.Add)
	if err != nil {
		return err
	}
	recorder.index = index
	return nil
}

func (recorder *Recorder) Append(tp *stats.TrackPoint) error {
	if recorder.store == nil {
		panic("backing store not set")
	}
	recorder.appendErr = nil
	recorder.updater.AddTrackPoint(tp)
	return recorder.appendErr
}

func (recorder *Recorder) AppendAll(trackPoints []*stats.TrackPoint) error {
	for _, tp := range trackPoints {
		if err := recorder.Append(tp); err != nil {
			return err
		}
	}
	return nil
}

func (recorder *Recorder) persistSegment(segment *stats.TrackStatistics) {
	window := NewSegmentWindow(segment)
	// A pause/resume marker pair folds a zero-duration segment in
	// between; it carries nothing worth persisting.
	if window.TimeStart == window.TimeEnd && segment.TotalDistance == 0 {
		return
	}
	if err := recorder.store.Put(recorder.trackID, window.Id(), window); err != nil {
		recorder.appendErr = err
		return
	}
	recorder.index.Add(window.Id())
}

// Statistics is the cumulative snapshot including the open segment.
func (recorder *Recorder) Statistics() *stats.TrackStatistics {
	return recorder.updater.TrackStatistics()
}

func (recorder *Recorder) SmoothedAltitude() (float64, bool) {
	return recorder.updater.SmoothedAltitude()
}

func (recorder *Recorder) SmoothedSpeed() (float64, bool) {
	return recorder.updater.SmoothedSpeed()
}

// Query merges the statistics of all segments overlapping [t0, t1],
// persisted windows and the open segment alike.
func (recorder *Recorder) Query(t0, t1 time.Time) (*stats.TrackStatistics, error) {
	if recorder.store == nil {
		panic("backing store not set")
	}
	t0Millis := TimeToMillis(t0)
	t1Millis := TimeToMillis(t1)

	result := stats.NewTrackStatistics()
	for _, windowID := range recorder.index.GetOverlappingWindowIDs(t0Millis, t1Millis) {
		window, err := recorder.store.Get(recorder.trackID, windowID)
		if err != nil {
			return nil, err
		}
		if window.Overlaps(t0Millis, t1Millis) {
			result.Merge(window.Stats)
		}
	}

	openSegment := recorder.updater.SegmentStatistics()
	if openSegment.IsInitialized() {
		open := NewSegmentWindow(openSegment)
		if open.Overlaps(t0Millis, t1Millis) {
			result.Merge(openSegment)
		}
	}
	return result, nil
}
