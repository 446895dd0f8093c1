package components

import (
	"context"

	"petportrait-checkout/internal/infra/repository"
	"petportrait-checkout/internal/infra/store"
	"petportrait-checkout/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewOrdersRepository,
			fx.As(new(usecase.OrdersRepository)),
		),
		fx.Annotate(
			NewWebhookEventsRepository,
			fx.As(new(usecase.WebhookEventsRepository)),
		),
		fx.Annotate(
			repository.NewCouponClaims,
			fx.As(new(usecase.CouponClaims)),
		),
		fx.Annotate(
			NewCreditsRepository,
			fx.As(new(usecase.CreditsRepository)),
		),
	),
)

// Repositories hydrate their collections from the store at startup.

func NewOrdersRepository(st store.Store) (*repository.OrdersRepository, error) {
	return repository.NewOrdersRepository(context.Background(), st)
}

func NewWebhookEventsRepository(st store.Store) (*repository.WebhookEventsRepository, error) {
	return repository.NewWebhookEventsRepository(context.Background(), st)
}

func NewCreditsRepository(st store.Store) (*repository.CreditsRepository, error) {
	return repository.NewCreditsRepository(context.Background(), st)
}
