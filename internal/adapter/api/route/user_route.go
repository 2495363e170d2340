package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/api/controller"
	"github.com/hugohenrick/mensageiro-api/pkg/auth"
)

// SetupUserRoutes configura as rotas para usuários e autenticação
func SetupUserRoutes(router *gin.RouterGroup, userController *controller.UserController, authController *controller.AuthController) {
	userRouter := router.Group("/users")
	{
		// Rotas públicas: criação de conta e login
		userRouter.POST("/signup", userController.Signup)
		userRouter.POST("/login", authController.Login)

		// Rotas autenticadas
		userRouter.GET("", auth.JWTAuthMiddleware(), userController.List)
		userRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
