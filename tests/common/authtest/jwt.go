//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"sneakdrop/internal/domain/user"
	"sneakdrop/internal/pkg/config"
	"sneakdrop/internal/pkg/jwt"
)

// JWTHelper mints tokens with the same config the app under test runs with.
type JWTHelper struct {
	svc *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err, "invalid JWT duration in test config")
	return &JWTHelper{svc: jwt.NewService(cfg.Secret, duration)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := h.svc.GenerateToken(userID, role)
	require.NoError(t, err, "failed to generate test token")
	return token
}

func (h *JWTHelper) GenerateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := h.svc.GenerateTokenAt(userID, role, time.Now().Add(-48*time.Hour))
	require.NoError(t, err, "failed to generate expired test token")
	return token
}
