package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hugohenrick/mensageiro-api/internal/adapter/api/controller"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/api/dto"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/repository"
	"github.com/hugohenrick/mensageiro-api/internal/domain/user"
	"github.com/hugohenrick/mensageiro-api/mocks"
	"github.com/hugohenrick/mensageiro-api/pkg/logger"
)

func setupAuthRouter(t *testing.T, ctrl *gomock.Controller) (*gin.Engine, *mocks.MockUserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := mocks.NewMockUserRepository(ctrl)
	authController := controller.NewAuthController(userRepo, logger.NewLogger())
	userController := controller.NewUserController(userRepo, logger.NewLogger())

	router := gin.New()
	router.POST("/api/v1/users/login", authController.Login)
	router.POST("/api/v1/users/signup", userController.Signup)

	return router, userRepo
}

func storedUser(t *testing.T, password string) *user.User {
	t.Helper()

	u := &user.User{
		ID:       "8e0bfa9c-9f4f-44f4-9d2f-0f18a3e1a001",
		Name:     "Usuário Um",
		Username: "u1",
		Email:    "u1@example.com",
	}
	require.NoError(t, u.SetPassword(password))
	return u
}

func TestAuthController_Login(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, userRepo := setupAuthRouter(t, ctrl)

	t.Run("should return a token for valid credentials", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "u1@example.com").Return(storedUser(t, "senha-secreta"), nil)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"email": "u1@example.com", "password": "senha-secreta"}`)
		r := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", body)
		r.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, r)

		req.Equal(http.StatusOK, w.Code)

		var response dto.LoginResponse
		req.NoError(json.Unmarshal(w.Body.Bytes(), &response))
		req.NotEmpty(response.AccessToken)
		req.Equal("u1@example.com", response.User.Email)
	})

	t.Run("should return 401 for a wrong password", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "u1@example.com").Return(storedUser(t, "senha-secreta"), nil)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"email": "u1@example.com", "password": "senha-errada"}`)
		r := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", body)
		r.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, r)

		req.Equal(http.StatusUnauthorized, w.Code)
	})

	t.Run("should return the same 401 for an unknown email", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"email": "ghost@example.com", "password": "qualquer"}`)
		r := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", body)
		r.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, r)

		req.Equal(http.StatusUnauthorized, w.Code)
	})
}

func TestUserController_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, userRepo := setupAuthRouter(t, ctrl)

	t.Run("should create the account and never return the password", func(t *testing.T) {
		req := require.New(t)

		var created *user.User
		userRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				created = u
				return nil
			})

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"name": "Usuário Um", "username": "u1", "email": "u1@example.com", "password": "senha-secreta"}`)
		r := httptest.NewRequest(http.MethodPost, "/api/v1/users/signup", body)
		r.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, r)

		req.Equal(http.StatusCreated, w.Code)
		req.NotNil(created)
		req.NotEqual("senha-secreta", created.Password)
		req.True(created.CheckPassword("senha-secreta"))
		req.NotContains(w.Body.String(), created.Password)
	})

	t.Run("should return 409 for a duplicate account", func(t *testing.T) {
		req := require.New(t)

		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrUserDuplicate)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"name": "Usuário Um", "username": "u1", "email": "u1@example.com", "password": "senha-secreta"}`)
		r := httptest.NewRequest(http.MethodPost, "/api/v1/users/signup", body)
		r.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, r)

		req.Equal(http.StatusConflict, w.Code)
	})

	t.Run("should return 400 for an invalid payload", func(t *testing.T) {
		req := require.New(t)

		w := httptest.NewRecorder()
		body := strings.NewReader(`{"name": "Usuário Um"}`)
		r := httptest.NewRequest(http.MethodPost, "/api/v1/users/signup", body)
		r.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, r)

		req.Equal(http.StatusBadRequest, w.Code)
	})
}
