package store

import (
	"context"
	"errors"
	"sync"
)

// memBlobs is an in-memory Blobs implementation for tests.
type memBlobs struct {
	mu    sync.Mutex
	slots map[string][]byte
	saves int
	fail  bool
}

func newMemBlobs() *memBlobs {
	return &memBlobs{slots: map[string][]byte{}}
}

func (m *memBlobs) Load(_ context.Context, slot string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.slots[slot]
	return payload, ok, nil
}

func (m *memBlobs) Save(_ context.Context, slot string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("save failed")
	}
	m.slots[slot] = payload
	m.saves++
	return nil
}
