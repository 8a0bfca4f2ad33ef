package core

import (
	"github.com/dgraph-io/ristretto"

	"trackstats/storage"
)

// BackingStore fronts a storage.Backend with an optional in-process
// cache, so repeated range queries do not deserialize the same
// windows again.
type BackingStore struct {
	backend      storage.Backend
	cacheEnabled bool
	segmentCache *ristretto.Cache
}

func NewBackingStore(backend storage.Backend, cacheEnabled bool) *BackingStore {
	segmentCache, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})

	return &BackingStore{
		backend:      backend,
		cacheEnabled: cacheEnabled,
		segmentCache: segmentCache,
	}
}

func (store *BackingStore) Get(trackID, windowID int64) (*SegmentWindow, error) {
	if store.cacheEnabled {
		window, found := store.segmentCache.Get(storage.GetKey(trackID, windowID))
		if found {
			return window.(*SegmentWindow), nil
		}
	}
	buf, err := store.backend.Get(trackID, windowID)
	if err != nil {
		return nil, err
	}
	return BytesToSegmentWindow(buf)
}

func (store *BackingStore) Put(trackID, windowID int64, window *SegmentWindow) error {
	buf, err := SegmentWindowToBytes(window)
	if err != nil {
		return err
	}
	if err := store.backend.Put(trackID, windowID, buf); err != nil {
		return err
	}
	if store.cacheEnabled {
		store.segmentCache.Set(storage.GetKey(trackID, windowID), window, 1)
	}
	return nil
}

func (store *BackingStore) Delete(trackID, windowID int64) error {
	if store.cacheEnabled {
		store.segmentCache.Del(storage.GetKey(trackID, windowID))
	}
	return store.backend.Delete(trackID, windowID)
}

func (store *BackingStore) IterateIndex(trackID int64, lambda func(int64)) error {
	return store.backend.IterateIndex(trackID, lambda)
}
