package storage

import (
	"testing"
	"trackstats/utils"

	"github.com/google/go-cmp/cmp"
)

func runMetadataStoreTest(t *testing.T, mds MetadataStore) {
	trackIDs, err := mds.GetTrackIDs()
	utils.AssertEqual(t, err, nil)
	utils.AssertEqual(t, len(trackIDs), 0)

	want := []int64{0, 1, 5}
	utils.AssertEqual(t, mds.PutTrackIDs(want), nil)

	trackIDs, err = mds.GetTrackIDs()
	utils.AssertEqual(t, err, nil)
	utils.AssertTrue(t, cmp.Equal(trackIDs, want))
}

func TestBadgerMetadataStore(t *testing.T) {
	db := TestBadgerDB()
	defer db.Close()
	runMetadataStoreTest(t, NewBadgerMetadataStore(db))
}

func TestInMemoryMetadataStore(t *testing.T) {
	runMetadataStoreTest(t, NewInMemoryMetadataStore())
}

func TestMetadataKeyDoesNotLookLikeWindowKey(t *testing.T) {
	utils.AssertTrue(t, len(trackIDsKey) != 16)
}
