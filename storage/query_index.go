package storage

import "sort"

// QueryIndex is an in-memory index over segment-window start times.
// Windows per track number in the dozens, so a sorted slice beats a
// tree here.
type QueryIndex struct {
	tStarts []int64
}

func NewQueryIndex() *QueryIndex {
	return &QueryIndex{tStarts: make([]int64, 0)}
}

func (index *QueryIndex) Add(tStart int64) {
	i := sort.Search(len(index.tStarts), func(i int) bool {
		return index.tStarts[i] >= tStart
	})
	if i < len(index.tStarts) && index.tStarts[i] == tStart {
		return
	}
	index.tStarts = append(index.tStarts, 0)
	copy(index.tStarts[i+1:], index.tStarts[i:])
	index.tStarts[i] = tStart
}

func (index *QueryIndex) Remove(tStart int64) {
	i := sort.Search(len(index.tStarts), func(i int) bool {
		return index.tStarts[i] >= tStart
	})
	if i == len(index.tStarts) || index.tStarts[i] != tStart {
		return
	}
	index.tStarts = append(index.tStarts[:i], index.tStarts[i+1:]...)
}

func (index *QueryIndex) GetNumberWindows() int {
	return len(index.tStarts)
}

// GetOverlappingWindowIDs returns window IDs that might overlap
// [t0, t1]: every window starting inside the range, plus the one edge
// window starting before t0 whose end may still reach into it.
func (index *QueryIndex) GetOverlappingWindowIDs(t0, t1 int64) []int64 {
	if len(index.tStarts) == 0 {
		return make([]int64, 0)
	}

	l := sort.Search(len(index.tStarts), func(i int) bool {
		return index.tStarts[i] >= t0
	})
	// Include the edge window with tStart < t0.
	if l > 0 {
		l--
	}
	r := sort.Search(len(index.tStarts), func(i int) bool {
		return index.tStarts[i] > t1
	})

	windows := make([]int64, 0, r-l)
	windows = append(windows, index.tStarts[l:r]...)
	return windows
}
