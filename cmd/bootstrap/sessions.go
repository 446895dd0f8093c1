package bootstrap

import (
	"petportrait-checkout/internal/pkg/config"
	"petportrait-checkout/internal/pkg/sessions"

	"go.uber.org/fx"
)

var SessionsModule = fx.Module("sessions",
	fx.Provide(
		NewSessionService,
	),
)

func NewSessionService(cfg config.Config) *sessions.Service {
	return sessions.NewService(cfg.Session.Secret)
}
