//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"runesse/internal/domain/user"
	"runesse/internal/pkg/config"
	"runesse/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type SessionHelper struct {
	cfg config.SessionConfig
}

func NewSessionHelper(cfg config.SessionConfig) *SessionHelper {
	return &SessionHelper{cfg: cfg}
}

func (h *SessionHelper) GenerateToken(t *testing.T, email string, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(email, string(role))
	require.NoError(t, err)
	return token
}

func (h *SessionHelper) CreateExpiredToken(t *testing.T, email string, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(email, string(role))
	require.NoError(t, err)
	return token
}
