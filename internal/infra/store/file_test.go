//go:build unit

package store_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"petportrait-checkout/internal/infra/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileBackend(t *testing.T) *store.FileBackend {
	t.Helper()
	b, err := store.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	return b
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("load of missing collection returns empty snapshot", func(t *testing.T) {
		b := newFileBackend(t)
		snap, err := b.Load(ctx, store.KeyOrders)
		require.NoError(t, err)
		assert.True(t, snap.Empty())
		assert.Equal(t, store.SnapshotVersion, snap.Version)
	})

	t.Run("write then load round-trips rows", func(t *testing.T) {
		b := newFileBackend(t)
		snap := store.NewSnapshot()
		snap.Rows["ord-1"] = json.RawMessage(`{"orderId":"ord-1","status":"PENDING"}`)

		require.NoError(t, b.Write(ctx, store.KeyOrders, snap))

		got, err := b.Load(ctx, store.KeyOrders)
		require.NoError(t, err)
		assert.JSONEq(t, `{"orderId":"ord-1","status":"PENDING"}`, string(got.Rows["ord-1"]))
	})

	t.Run("write replaces previous snapshot wholesale", func(t *testing.T) {
		b := newFileBackend(t)
		first := store.NewSnapshot()
		first.Rows["a"] = json.RawMessage(`1`)
		require.NoError(t, b.Write(ctx, store.KeyOrders, first))

		second := store.NewSnapshot()
		second.Rows["b"] = json.RawMessage(`2`)
		require.NoError(t, b.Write(ctx, store.KeyOrders, second))

		got, err := b.Load(ctx, store.KeyOrders)
		require.NoError(t, err)
		assert.NotContains(t, got.Rows, "a")
		assert.Contains(t, got.Rows, "b")
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		b, err := store.NewFileBackend(dir)
		require.NoError(t, err)

		snap := store.NewSnapshot()
		snap.Rows["a"] = json.RawMessage(`1`)
		require.NoError(t, b.Write(ctx, store.KeyOrders, snap))

		matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("corrupt snapshot surfaces a store error", func(t *testing.T) {
		dir := t.TempDir()
		b, err := store.NewFileBackend(dir)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, store.KeyOrders+".json"), []byte("{not json"), 0o644))

		_, err = b.Load(ctx, store.KeyOrders)
		assert.Error(t, err)
	})
}

func TestQueue(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("persists apply in issuance order", func(t *testing.T) {
		b := newFileBackend(t)
		q := store.NewQueue(b, logger)

		for i := range 20 {
			snap := store.NewSnapshot()
			doc, _ := json.Marshal(map[string]int{"seq": i})
			snap.Rows["row"] = doc
			q.Persist(store.KeyOrders, snap)
		}
		q.Close()

		got, err := b.Load(ctx, store.KeyOrders)
		require.NoError(t, err)
		assert.JSONEq(t, `{"seq":19}`, string(got.Rows["row"]))
	})

	t.Run("close drains pending writes", func(t *testing.T) {
		b := newFileBackend(t)
		q := store.NewQueue(b, logger)

		snap := store.NewSnapshot()
		snap.Rows["row"] = json.RawMessage(`{"done":true}`)
		q.Persist(store.KeyWebhookEvents, snap)
		q.Close()

		got, err := b.Load(ctx, store.KeyWebhookEvents)
		require.NoError(t, err)
		require.Contains(t, got.Rows, "row")
	})

	t.Run("persist after close is dropped, not panicking", func(t *testing.T) {
		b := newFileBackend(t)
		q := store.NewQueue(b, logger)
		q.Close()

		assert.NotPanics(t, func() {
			q.Persist(store.KeyOrders, store.NewSnapshot())
		})
		// give the dropped persist no chance to land
		time.Sleep(10 * time.Millisecond)
		got, err := b.Load(ctx, store.KeyOrders)
		require.NoError(t, err)
		assert.True(t, got.Empty())
	})
}
