package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/api/controller"
	"github.com/hugohenrick/mensageiro-api/pkg/auth"
)

// SetupMessageRoutes configura as rotas para mensagens.
// Todas exigem autenticação; a identidade do chamador vem do middleware.
func SetupMessageRoutes(router *gin.RouterGroup, messageController *controller.MessageController) {
	messageRouter := router.Group("/messages")
	messageRouter.Use(auth.JWTAuthMiddleware())
	{
		messageRouter.GET("", messageController.Inbox)
		messageRouter.GET("/conversation/:id", messageController.Conversation)
		messageRouter.GET("/conversations", messageController.Conversations)
		messageRouter.POST("", messageController.Send)
		messageRouter.PUT("/:id", messageController.Update)
		messageRouter.DELETE("/:id", messageController.Delete)
	}
}
