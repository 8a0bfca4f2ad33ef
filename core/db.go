package core

import (
	"errors"
	"sync"

	"github.com/dgraph-io/badger/v2"

	"trackstats/storage"
)

// DB is a registry of Recorders over one storage instance, keyed by
// track ID. The known track IDs are persisted so Open can restore the
// recorders; an open segment is not persisted and does not survive a
// reopen.
type DB struct {
	backend   storage.Backend
	mds       storage.MetadataStore
	config    *StoreConfig
	recorders map[int64]*Recorder
	mu        sync.Mutex
}

func New(path string, config *StoreConfig) (*DB, error) {
	badgerOptions := badger.DefaultOptions(path).WithTruncate(true)
	badgerDb, err := badger.Open(badgerOptions)
	if err != nil {
		return nil, err
	}
	return NewWithBackend(
		storage.NewBadgerBackend(badgerDb),
		storage.NewBadgerMetadataStore(badgerDb),
		config), nil
}

func NewWithBackend(backend storage.Backend, mds storage.MetadataStore, config *StoreConfig) *DB {
	if config == nil {
		config = DefaultStoreConfig()
	}
	return &DB{
		backend:   backend,
		mds:       mds,
		config:    config,
		recorders: make(map[int64]*Recorder),
	}
}

func Open(path string, config *StoreConfig) (*DB, error) {
	db, err := New(path, config)
	if err != nil {
		return nil, err
	}
	if err := db.ReadDB(); err != nil {
		return nil, err
	}
	return db, nil
}

// NewRecorder starts a recorder for a fresh track ID.
func (db *DB) NewRecorder() (*Recorder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	trackID := int64(0)
	for id := range db.recorders {
		if id >= trackID {
			trackID = id + 1
		}
	}

	recorder := NewRecorder(trackID, db.config).
		SetBackingStore(NewBackingStore(db.backend, db.config.CacheEnabled))
	db.recorders[trackID] = recorder

	if err := db.writeMetadata(); err != nil {
		delete(db.recorders, trackID)
		return nil, err
	}
	return recorder, nil
}

func (db *DB) GetRecorder(trackID int64) (*Recorder, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	recorder, ok := db.recorders[trackID]
	if !ok {
		return nil, errors.New("track not found")
	}
	return recorder, nil
}

func (db *DB) TrackIDs() []int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	trackIDs := make([]int64, 0, len(db.recorders))
	for id := range db.recorders {
		trackIDs = append(trackIDs, id)
	}
	return trackIDs
}

func (db *DB) Close() error {
	return db.backend.Close()
}

// ReadDB restores a recorder per persisted track ID and primes its
// window index.
func (db *DB) ReadDB() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	trackIDs, err := db.mds.GetTrackIDs()
	if err != nil {
		return err
	}
	for _, trackID := range trackIDs {
		recorder := NewRecorder(trackID, db.config).
			SetBackingStore(NewBackingStore(db.backend, db.config.CacheEnabled))
		if err := recorder.PrimeUp(); err != nil {
			return err
		}
		db.recorders[trackID] = recorder
	}
	return nil
}

// Callers hold db.mu.
func (db *DB) writeMetadata() error {
	trackIDs := make([]int64, 0, len(db.recorders))
	for id := range db.recorders {
		trackIDs = append(trackIDs, id)
	}
	return db.mds.PutTrackIDs(trackIDs)
}
