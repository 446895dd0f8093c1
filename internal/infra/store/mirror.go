package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"petportrait-checkout/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const mirrorSchema = `
CREATE TABLE IF NOT EXISTS snapshot_rows (
	collection text NOT NULL,
	row_id     text NOT NULL,
	doc        jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, row_id)
)`

// MirrorBackend prefers a remote Postgres mirror over the local file backend.
// Load reads the mirror unless it is empty while the local snapshot is not
// (bootstrap after enabling the mirror). Write upserts every row and deletes
// orphans in one transaction; on any remote failure the write falls back to
// the local backend so it is never dropped.
type MirrorBackend struct {
	pool     *pgxpool.Pool
	fallback Backend
	logger   *slog.Logger
}

func NewMirrorBackend(ctx context.Context, pool *pgxpool.Pool, fallback Backend, logger *slog.Logger) (*MirrorBackend, error) {
	if _, err := pool.Exec(ctx, mirrorSchema); err != nil {
		return nil, infra.WrapRepoErr("failed to ensure mirror schema", err)
	}
	return &MirrorBackend{pool: pool, fallback: fallback, logger: logger}, nil
}

func (b *MirrorBackend) Load(ctx context.Context, key string) (Snapshot, error) {
	remote, err := b.loadRemote(ctx, key)
	if err != nil {
		b.logger.Warn("mirror load failed, using local snapshot", "key", key, "error", err)
		return b.fallback.Load(ctx, key)
	}

	if remote.Empty() {
		local, lerr := b.fallback.Load(ctx, key)
		if lerr == nil && !local.Empty() {
			return local, nil
		}
	}
	return remote, nil
}

func (b *MirrorBackend) loadRemote(ctx context.Context, key string) (Snapshot, error) {
	rows, err := b.pool.Query(ctx, `SELECT row_id, doc FROM snapshot_rows WHERE collection = $1`, key)
	if err != nil {
		return Snapshot{}, infra.WrapRepoErr("failed to query mirror rows", err)
	}
	defer rows.Close()

	snap := NewSnapshot()
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return Snapshot{}, infra.WrapRepoErr("failed to scan mirror row", err)
		}
		snap.Rows[id] = json.RawMessage(doc)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, infra.WrapRepoErr("failed to read mirror rows", err)
	}
	return snap, nil
}

func (b *MirrorBackend) Write(ctx context.Context, key string, snap Snapshot) error {
	if err := b.writeRemote(ctx, key, snap); err != nil {
		b.logger.Error("mirror write failed, falling back to local snapshot", "key", key, "error", err)
		return b.fallback.Write(ctx, key, snap)
	}
	return nil
}

func (b *MirrorBackend) writeRemote(ctx context.Context, key string, snap Snapshot) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin mirror tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	ids := make([]string, 0, len(snap.Rows))
	for id, doc := range snap.Rows {
		ids = append(ids, id)
		batch.Queue(
			`INSERT INTO snapshot_rows (collection, row_id, doc, updated_at)
			 VALUES ($1, $2, $3, now())
			 ON CONFLICT (collection, row_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
			key, id, []byte(doc),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return infra.WrapRepoErr("failed to upsert mirror rows", err)
	}

	// Reconciliation: rows absent from the latest snapshot are orphans.
	if _, err := tx.Exec(ctx,
		`DELETE FROM snapshot_rows WHERE collection = $1 AND NOT (row_id = ANY($2))`,
		key, ids,
	); err != nil {
		return infra.WrapRepoErr("failed to delete orphan mirror rows", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit mirror tx", err)
	}
	return nil
}
