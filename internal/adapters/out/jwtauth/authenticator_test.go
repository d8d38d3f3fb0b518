package jwtauth

import (
	"context"
	"testing"
	"time"

	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func issueToken(t *testing.T, authenticator *JWTAuthenticator, act actor.Actor, expiresAt time.Time) string {
	t.Helper()
	token, err := authenticator.IssueToken(act, *jwt.NewNumericDate(expiresAt))
	require.NoError(t, err)
	return token
}

func Test_JWTAuthenticator_Authenticate(t *testing.T) {
	authenticator, err := NewJWTAuthenticator(testSecret)
	require.NoError(t, err)

	t.Run("should resolve a valid admin token", func(t *testing.T) {
		// Arrange
		admin, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
		require.NoError(t, err)
		token := issueToken(t, authenticator, admin, time.Now().Add(time.Hour))

		// Act
		resolved, err := authenticator.Authenticate(context.Background(), token)

		// Assert
		require.NoError(t, err)
		assert.True(t, resolved.ID().IsEqual(admin.ID()))
		assert.True(t, resolved.IsAdmin())
	})

	t.Run("should resolve a valid customer token", func(t *testing.T) {
		// Arrange
		cust, err := actor.NewActor(kernel.NewUUID(), actor.RoleCustomer)
		require.NoError(t, err)
		token := issueToken(t, authenticator, cust, time.Now().Add(time.Hour))

		// Act
		resolved, err := authenticator.Authenticate(context.Background(), token)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, actor.RoleCustomer, resolved.Role())
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		// Arrange
		cust, err := actor.NewActor(kernel.NewUUID(), actor.RoleCustomer)
		require.NoError(t, err)
		token := issueToken(t, authenticator, cust, time.Now().Add(-time.Hour))

		// Act
		_, err = authenticator.Authenticate(context.Background(), token)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a token signed with a different secret", func(t *testing.T) {
		// Arrange
		other, err := NewJWTAuthenticator("a-different-secret")
		require.NoError(t, err)
		cust, err := actor.NewActor(kernel.NewUUID(), actor.RoleCustomer)
		require.NoError(t, err)
		token := issueToken(t, other, cust, time.Now().Add(time.Hour))

		// Act
		_, err = authenticator.Authenticate(context.Background(), token)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a token with an unknown role", func(t *testing.T) {
		// Arrange
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   kernel.NewUUID().String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role: "superuser",
		})
		token, err := raw.SignedString([]byte(testSecret))
		require.NoError(t, err)

		// Act
		_, err = authenticator.Authenticate(context.Background(), token)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a token without a subject", func(t *testing.T) {
		// Arrange
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role: "customer",
		})
		token, err := raw.SignedString([]byte(testSecret))
		require.NoError(t, err)

		// Act
		_, err = authenticator.Authenticate(context.Background(), token)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an empty token", func(t *testing.T) {
		_, err := authenticator.Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := authenticator.Authenticate(context.Background(), "not.a.jwt")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_NewJWTAuthenticator(t *testing.T) {
	t.Run("should return error when secret is empty", func(t *testing.T) {
		_, err := NewJWTAuthenticator("")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
