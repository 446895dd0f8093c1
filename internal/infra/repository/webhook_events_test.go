//go:build unit

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"petportrait-checkout/internal/infra/repository"
	"petportrait-checkout/internal/infra/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventsRepo(t *testing.T, st store.Store) *repository.WebhookEventsRepository {
	t.Helper()
	repo, err := repository.NewWebhookEventsRepository(context.Background(), st)
	require.NoError(t, err)
	return repo
}

func TestWebhookEventsRepository(t *testing.T) {
	evt := repository.ProcessedEvent{
		EventID:    "evt-1",
		EventType:  "payment.updated",
		ReceivedAt: time.Now(),
		OrderID:    "ord-1",
		Status:     "COMPLETED",
	}

	t.Run("mark then has", func(t *testing.T) {
		repo := newEventsRepo(t, newFakeStore())
		assert.False(t, repo.HasProcessed("evt-1"))
		repo.MarkProcessed(evt)
		assert.True(t, repo.HasProcessed("evt-1"))
	})

	t.Run("duplicate mark is a no-op", func(t *testing.T) {
		st := newFakeStore()
		repo := newEventsRepo(t, st)
		repo.MarkProcessed(evt)
		repo.MarkProcessed(evt)
		assert.Equal(t, 1, st.persistCount(store.KeyWebhookEvents))
	})

	t.Run("processed events survive reload", func(t *testing.T) {
		st := newFakeStore()
		repo := newEventsRepo(t, st)
		repo.MarkProcessed(evt)

		reloaded := newEventsRepo(t, st)
		assert.True(t, reloaded.HasProcessed("evt-1"))
	})

	t.Run("concurrent deliveries of one event serialize to a single apply", func(t *testing.T) {
		repo := newEventsRepo(t, newFakeStore())

		applied := 0
		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := repo.LockEvent("evt-dup")
				defer unlock()
				if repo.HasProcessed("evt-dup") {
					return
				}
				applied++ // protected by the event lock
				repo.MarkProcessed(repository.ProcessedEvent{EventID: "evt-dup", ReceivedAt: time.Now()})
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, applied)
	})

	t.Run("locks for distinct events do not block each other", func(t *testing.T) {
		repo := newEventsRepo(t, newFakeStore())

		unlockA := repo.LockEvent("evt-a")
		done := make(chan struct{})
		go func() {
			unlockB := repo.LockEvent("evt-b")
			unlockB()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lock on evt-b blocked by evt-a")
		}
		unlockA()
	})
}
