package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	router := setupRouter(t)

	t.Run("should reject a request without Authorization header", func(t *testing.T) {
		req := require.New(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, r)

		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should reject a malformed Authorization header", func(t *testing.T) {
		req := require.New(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, r)

		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should reject an invalid token", func(t *testing.T) {
		req := require.New(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, r)

		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should attach the caller identity on a valid token", func(t *testing.T) {
		req := require.New(t)

		svc, err := NewJWTService()
		req.NoError(err)

		token, err := svc.GenerateToken(testUser())
		req.NoError(err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)
		req.Contains(w.Body.String(), "8e0bfa9c-9f4f-44f4-9d2f-0f18a3e1a001")
	})
}
