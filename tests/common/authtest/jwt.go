//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"service-broker/internal/domain/user"
	"service-broker/internal/pkg/config"
	"service-broker/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	if access == 0 {
		d, err := time.ParseDuration(h.cfg.AccessTokenDuration)
		require.NoError(t, err)
		access = d
	}
	refresh, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refresh)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role, agencyID *uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateAccessToken(userID, role, agencyID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role, agencyID *uuid.UUID) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateRefreshToken(userID, role, agencyID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(userID, role, nil)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
