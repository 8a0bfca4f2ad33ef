package storage

import (
	"github.com/dgraph-io/badger/v2"
)

// TestBadgerDB opens a throwaway in-memory badger instance.
func TestBadgerDB() *badger.DB {
	option := badger.DefaultOptions("").WithInMemory(true)
	db, err := badger.Open(option)
	if err != nil {
		panic(err)
	}
	return db
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func (backend *BadgerBackend) txnGet(key []byte) ([]byte, error) {
	var windowBytes []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		windowBytes, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrWindowNotFound
	}
	return windowBytes, err
}

func (backend *BadgerBackend) txnPut(key, buf []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, buf)
	})
}

func (backend *BadgerBackend) txnDelete(key []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (backend *BadgerBackend) Get(trackID, windowID int64) ([]byte, error) {
	return backend.txnGet(GetKey(trackID, windowID))
}

func (backend *BadgerBackend) Put(trackID, windowID int64, buf []byte) error {
	return backend.txnPut(GetKey(trackID, windowID), buf)
}

func (backend *BadgerBackend) Delete(trackID, windowID int64) error {
	return backend.txnDelete(GetKey(trackID, windowID))
}

func (backend *BadgerBackend) IterateIndex(trackID int64, lambda func(int64)) error {
	prefix := GetKey(trackID, 0)[:8]
	return backend.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			if len(key) != 16 {
				// Metadata entries share the keyspace.
				continue
			}
			lambda(GetWindowIDFromKey(key))
		}
		return nil
	})
}
