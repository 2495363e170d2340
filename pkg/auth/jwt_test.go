package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/mensageiro-api/internal/domain/user"
)

func testUser() *user.User {
	return &user.User{
		ID:       "8e0bfa9c-9f4f-44f4-9d2f-0f18a3e1a001",
		Name:     "Usuário Um",
		Username: "u1",
		Email:    "u1@example.com",
	}
}

func TestNewJWTService(t *testing.T) {
	t.Run("should fail without a configured secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "")

		_, err := NewJWTService()
		require.ErrorIs(t, err, ErrMissingJWTKey)
	})

	t.Run("should use the configured expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "1")

		svc, err := NewJWTService()
		require.NoError(t, err)
		require.Equal(t, 1*time.Hour, svc.expiration)
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	svc, err := NewJWTService()
	require.NoError(t, err)

	t.Run("should round trip the caller identity", func(t *testing.T) {
		req := require.New(t)

		token, err := svc.GenerateToken(testUser())
		req.NoError(err)
		req.NotEmpty(token)

		claims, err := svc.ValidateToken(token)
		req.NoError(err)
		req.Equal("8e0bfa9c-9f4f-44f4-9d2f-0f18a3e1a001", claims.UserID)
		req.Equal("u1@example.com", claims.Email)
		req.Equal("Usuário Um", claims.Name)
		req.Equal("u1", claims.Username)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		req := require.New(t)

		other := &JWTService{secretKey: []byte("other-secret"), expiration: time.Hour}
		token, err := other.GenerateToken(testUser())
		req.NoError(err)

		_, err = svc.ValidateToken(token)
		req.ErrorIs(err, ErrInvalidToken)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		req := require.New(t)

		expired := &JWTService{secretKey: []byte("test-secret"), expiration: -time.Hour}
		token, err := expired.GenerateToken(testUser())
		req.NoError(err)

		_, err = svc.ValidateToken(token)
		req.ErrorIs(err, ErrExpiredToken)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("should reject a token with an unexpected signing method", func(t *testing.T) {
		req := require.New(t)

		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u1"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		req.NoError(err)

		_, err = svc.ValidateToken(signed)
		req.ErrorIs(err, ErrInvalidToken)
	})
}
