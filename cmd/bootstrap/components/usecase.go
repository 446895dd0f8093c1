package components

import (
	"context"
	"log/slog"

	"petportrait-checkout/internal/infra/couponapi"
	"petportrait-checkout/internal/infra/notify"
	"petportrait-checkout/internal/infra/outbox"
	"petportrait-checkout/internal/infra/paymentapi"
	"petportrait-checkout/internal/pkg/clock"
	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewCompletionEffects,
		usecase.NewCheckoutUseCase,
		usecase.NewWebhookUseCase,
		usecase.NewCreditsUseCase,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPaymentClient,
		fx.As(new(paymentapi.Client)),
	),
	fx.Annotate(
		NewCouponClient,
		fx.As(new(couponapi.Client)),
	),
	fx.Annotate(
		NewOutbox,
		fx.As(new(usecase.TaskQueue)),
	),
	fx.Annotate(
		notify.NewLogMailer,
		fx.As(new(usecase.Mailer)),
	),
	fx.Annotate(
		notify.NewLogAnalytics,
		fx.As(new(usecase.Analytics)),
	),
)

func NewPaymentClient(cfg config.Config) *paymentapi.HTTPClient {
	return paymentapi.NewHTTPClient(cfg.Payment)
}

func NewCouponClient(cfg config.Config) *couponapi.HTTPClient {
	return couponapi.NewHTTPClient(cfg.Coupon)
}

func NewOutbox(lc fx.Lifecycle, logger *slog.Logger) *outbox.Outbox {
	ob := outbox.New(logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			ob.Close()
			return nil
		},
	})

	return ob
}
