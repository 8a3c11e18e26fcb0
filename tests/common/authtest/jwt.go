//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/jwt"
	"travel-booking/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service does, signed with the app's secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateAndSignIn inserts the user and returns its id with a valid token.
func (h *JWTHelper) CreateAndSignIn(t *testing.T, db dbtest.DBLike, email string, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role.String())
	return id, h.GenerateToken(t, id, role)
}
