package storage

import (
	"encoding/binary"
	"sync"

	"github.com/dgraph-io/badger/v2"
)

// MetadataStore persists the set of known track IDs so a database can
// be reopened.
type MetadataStore interface {
	PutTrackIDs(trackIDs []int64) error
	GetTrackIDs() ([]int64, error)
}

var trackIDsKey = []byte("trackstats.metadata.tracks")

func trackIDsToBytes(trackIDs []int64) []byte {
	buf := make([]byte, 8*len(trackIDs))
	for i, id := range trackIDs {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(id))
	}
	return buf
}

func bytesToTrackIDs(buf []byte) []int64 {
	trackIDs := make([]int64, 0, len(buf)/8)
	for i := 0; i+8 <= len(buf); i += 8 {
		trackIDs = append(trackIDs, int64(binary.LittleEndian.Uint64(buf[i:])))
	}
	return trackIDs
}

type BadgerMetadataStore struct {
	db *badger.DB
}

func NewBadgerMetadataStore(db *badger.DB) *BadgerMetadataStore {
	return &BadgerMetadataStore{db: db}
}

func (mds *BadgerMetadataStore) PutTrackIDs(trackIDs []int64) error {
	return mds.db.Update(func(txn *badger.Txn) error {
		return txn.Set(trackIDsKey, trackIDsToBytes(trackIDs))
	})
}

func (mds *BadgerMetadataStore) GetTrackIDs() ([]int64, error) {
	var trackIDs []int64
	err := mds.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(trackIDsKey)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		buf, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		trackIDs = bytesToTrackIDs(buf)
		return nil
	})
	return trackIDs, err
}

type InMemoryMetadataStore struct {
	trackIDs []int64
	mutex    sync.Mutex
}

func NewInMemoryMetadataStore() *InMemoryMetadataStore {
	return &InMemoryMetadataStore{}
}

func (mds *InMemoryMetadataStore) PutTrackIDs(trackIDs []int64) error {
	mds.mutex.Lock()
	defer mds.mutex.Unlock()
	mds.trackIDs = append([]int64(nil), trackIDs...)
	return nil
}

func (mds *InMemoryMetadataStore) GetTrackIDs() ([]int64, error) {
	mds.mutex.Lock()
	defer mds.mutex.Unlock()
	return append([]int64(nil), mds.trackIDs...), nil
}
