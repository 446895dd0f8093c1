package bootstrap

import (
	"context"
	"log/slog"

	"petportrait-checkout/internal/infra/store"
	"petportrait-checkout/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStoreBackend,
		fx.Annotate(
			NewStoreQueue,
			fx.As(new(store.Store)),
		),
	),
)

// NewStoreBackend builds the local file backend and, when a mirror database
// URL is configured, layers the Postgres mirror on top of it.
func NewStoreBackend(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (store.Backend, error) {
	fileBackend, err := store.NewFileBackend(cfg.Store.DataDir)
	if err != nil {
		return nil, err
	}

	if !cfg.Mirror.Enabled() {
		return fileBackend, nil
	}

	pool, err := pgxpool.New(context.Background(), cfg.Mirror.DatabaseURL)
	if err != nil {
		return nil, err
	}
	mirror, err := store.NewMirrorBackend(context.Background(), pool, fileBackend, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			pool.Close()
			return nil
		},
	})

	return mirror, nil
}

func NewStoreQueue(lc fx.Lifecycle, backend store.Backend, logger *slog.Logger) *store.Queue {
	queue := store.NewQueue(backend, logger)

	// Close drains pending writes before the backend goes away.
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			queue.Close()
			return nil
		},
	})

	return queue
}
