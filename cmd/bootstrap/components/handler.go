package components

import (
	"runesse/internal/handler"
	"runesse/internal/handler/api"
	"runesse/internal/handler/middleware"
	"runesse/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
		api.NewAdminHandler,
		api.NewCardHandler,
		middleware.NewSessionMiddleware,
		middleware.NewAdminDeviceMiddleware,
		func(cfg config.Config) *middleware.RateLimiter { return middleware.NewRateLimiter(cfg.RateLimit) },
	),
	fx.Invoke(handler.NewRouter),
)
