package bootstrap

import (
	"fmt"
	"time"

	"runesse/internal/pkg/config"
	"runesse/internal/pkg/jwt"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionService,
	),
)

func NewSessionService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.Session.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_JWT_DURATION: %w", err)
	}
	return jwt.NewService(cfg.Session.Secret, duration), nil
}
