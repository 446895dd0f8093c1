//go:build unit

package sessions_test

import (
	"testing"
	"time"

	"petportrait-checkout/internal/pkg/sessions"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	svc := sessions.NewService("test-secret")
	userID := uuid.New()

	t.Run("round-trips the claims", func(t *testing.T) {
		token, err := svc.IssueToken(userID, "buyer@example.com", sessions.RoleCustomer, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "buyer@example.com", claims.Email)
		assert.Equal(t, string(sessions.RoleCustomer), claims.Role)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := svc.IssueToken(userID, "buyer@example.com", sessions.RoleCustomer, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, sessions.ErrExpiredToken)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := sessions.NewService("other-secret")
		token, err := other.IssueToken(userID, "buyer@example.com", sessions.RoleCustomer, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, sessions.ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, sessions.ErrInvalidToken)
	})
}

func TestRoleValid(t *testing.T) {
	assert.True(t, sessions.RoleCustomer.Valid())
	assert.True(t, sessions.RoleAdmin.Valid())
	assert.False(t, sessions.Role("root").Valid())
}
