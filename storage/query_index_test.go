package storage

import (
	"testing"
	"trackstats/utils"

	"github.com/google/go-cmp/cmp"
)

func TestQueryIndexEmpty(t *testing.T) {
	index := NewQueryIndex()
	utils.AssertEqual(t, index.GetNumberWindows(), 0)
	utils.AssertEqual(t, len(index.GetOverlappingWindowIDs(0, 100)), 0)
}

func TestQueryIndexAddRemove(t *testing.T) {
	index := NewQueryIndex()
	for _, tStart := range []int64{30, 10, 20, 10} {
		index.Add(tStart)
	}
	utils.AssertEqual(t, index.GetNumberWindows(), 3)

	index.Remove(20)
	index.Remove(99)
	utils.AssertEqual(t, index.GetNumberWindows(), 2)
	utils.AssertTrue(t, cmp.Equal(index.GetOverlappingWindowIDs(0, 100), []int64{10, 30}))
}

func TestQueryIndexOverlap(t *testing.T) {
	index := NewQueryIndex()
	for _, tStart := range []int64{0, 100, 200, 300} {
		index.Add(tStart)
	}

	// Windows starting inside the range plus the edge window before it.
	utils.AssertTrue(t, cmp.Equal(index.GetOverlappingWindowIDs(150, 250), []int64{100, 200}))

	// Range after every window start: only the edge window qualifies.
	utils.AssertTrue(t, cmp.Equal(index.GetOverlappingWindowIDs(400, 500), []int64{300}))

	// Range before every window start: nothing can overlap.
	index2 := NewQueryIndex()
	index2.Add(100)
	utils.AssertEqual(t, len(index2.GetOverlappingWindowIDs(0, 50)), 0)

	// Exact boundary matches are inclusive.
	utils.AssertTrue(t, cmp.Equal(index.GetOverlappingWindowIDs(100, 200), []int64{0, 100, 200}))
}
