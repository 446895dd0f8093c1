package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"petportrait-checkout/internal/infra"
	"petportrait-checkout/internal/pkg/errs"
)

// FileBackend stores one JSON snapshot file per collection under a data
// directory. Writes go to a temp file in the same directory followed by an
// atomic rename, so readers never see a torn snapshot.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr("failed to create data dir", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *FileBackend) Load(_ context.Context, key string) (Snapshot, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return NewSnapshot(), nil
		}
		return Snapshot{}, infra.WrapRepoErr("failed to read snapshot", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, infra.WrapRepoErr("failed to decode snapshot", err)
	}
	if snap.Rows == nil {
		snap.Rows = map[string]json.RawMessage{}
	}
	return snap, nil
}

func (b *FileBackend) Write(_ context.Context, key string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errs.Wrap(err, "failed to encode snapshot")
	}

	tmp, err := os.CreateTemp(b.dir, key+"-*.tmp")
	if err != nil {
		return infra.WrapRepoErr("failed to create temp snapshot", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to write temp snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to close temp snapshot", err)
	}

	if err := os.Rename(tmpName, b.path(key)); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to replace snapshot", err)
	}
	return nil
}
