package storage

import (
	"encoding/binary"
	"errors"
	"sync"
)

var ErrWindowNotFound = errors.New("segment window not found")

// GetKey builds the byte key for one persisted segment window:
// <8 bytes track ID> <8 bytes window ID>, little-endian.
func GetKey(trackID, windowID int64) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[:8], uint64(trackID))
	binary.LittleEndian.PutUint64(buf[8:], uint64(windowID))
	return buf
}

func GetTrackIDFromKey(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf[:8]))
}

func GetWindowIDFromKey(buf []byte) int64 {
	return int64(binary.LittleEndian.Uint64(buf[8:]))
}

// Backend stores serialized segment windows keyed by
// (track ID, window ID).
type Backend interface {
	Get(trackID, windowID int64) ([]byte, error)
	Put(trackID, windowID int64, buf []byte) error
	Delete(trackID, windowID int64) error

	// IterateIndex calls lambda with every window ID stored for the
	// track, in unspecified order.
	IterateIndex(trackID int64, lambda func(windowID int64)) error

	Close() error
}

type InMemoryBackend struct {
	windowMap      map[string][]byte
	windowMapMutex sync.Mutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		windowMap: make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) Get(trackID, windowID int64) ([]byte, error) {
	backend.windowMapMutex.Lock()
	defer backend.windowMapMutex.Unlock()
	buf, ok := backend.windowMap[string(GetKey(trackID, windowID))]
	if !ok {
		return nil, ErrWindowNotFound
	}
	return buf, nil
}

func (backend *InMemoryBackend) Put(trackID, windowID int64, buf []byte) error {
	backend.windowMapMutex.Lock()
	defer backend.windowMapMutex.Unlock()
	backend.windowMap[string(GetKey(trackID, windowID))] = buf
	return nil
}

func (backend *InMemoryBackend) Delete(trackID, windowID int64) error {
	backend.windowMapMutex.Lock()
	defer backend.windowMapMutex.Unlock()
	delete(backend.windowMap, string(GetKey(trackID, windowID)))
	return nil
}

func (backend *InMemoryBackend) IterateIndex(trackID int64, lambda func(int64)) error {
	backend.windowMapMutex.Lock()
	defer backend.windowMapMutex.Unlock()
	for k := range backend.windowMap {
		buf := []byte(k)
		if GetTrackIDFromKey(buf) != trackID {
			continue
		}
		lambda(GetWindowIDFromKey(buf))
	}
	return nil
}

func (backend *InMemoryBackend) Close() error {
	backend.windowMapMutex.Lock()
	defer backend.windowMapMutex.Unlock()
	backend.windowMap = nil
	return nil
}
