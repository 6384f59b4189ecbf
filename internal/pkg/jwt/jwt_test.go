//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"sneakdrop/internal/domain/user"
	"sneakdrop/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleMember)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, user.RoleMember.String(), claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	// Token issued two hours in the past is already past its expiry,
	// even though signature and embedded identity are valid.
	issuedAt := time.Now().Add(-2 * time.Hour)
	token, err := svc.GenerateTokenAt(uuid.New(), user.RoleMember, issuedAt)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	other := jwt.NewService("other-secret", time.Hour)

	token, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
