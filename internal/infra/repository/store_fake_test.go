//go:build unit

package repository_test

import (
	"context"
	"sync"

	"petportrait-checkout/internal/infra/store"
)

// fakeStore keeps the latest persisted snapshot per key and counts persists,
// standing in for the file/mirror-backed queue.
type fakeStore struct {
	mu       sync.Mutex
	snaps    map[string]store.Snapshot
	persists map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		snaps:    map[string]store.Snapshot{},
		persists: map[string]int{},
	}
}

func (s *fakeStore) Load(_ context.Context, key string) (store.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap, ok := s.snaps[key]; ok {
		return snap, nil
	}
	return store.NewSnapshot(), nil
}

func (s *fakeStore) Persist(key string, snap store.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[key] = snap
	s.persists[key]++
}

func (s *fakeStore) persistCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persists[key]
}
