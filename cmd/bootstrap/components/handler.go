package components

import (
	"petportrait-checkout/internal/handler"
	"petportrait-checkout/internal/handler/api"
	"petportrait-checkout/internal/handler/middleware"
	"petportrait-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.WebhookConfig { return cfg.Webhook },
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewCreditsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
