package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/mensageiro-api/docs"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/api/controller"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/api/route"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/repository"
	"github.com/hugohenrick/mensageiro-api/internal/domain/message"
	"github.com/hugohenrick/mensageiro-api/internal/infrastructure/database"
	"github.com/hugohenrick/mensageiro-api/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router            *gin.Engine
	db                *pgxpool.Pool
	authController    *controller.AuthController
	userController    *controller.UserController
	messageController *controller.MessageController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	appLogger := logger.NewLogger()

	// Criar repositórios
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Criar o serviço de mensagens
	messageService := message.NewService(messageRepo, userRepo)

	// Criar controllers
	authController := controller.NewAuthController(userRepo, appLogger)
	userController := controller.NewUserController(userRepo, appLogger)
	messageController := controller.NewMessageController(messageService, appLogger)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	return &App{
		router:            router,
		db:                db,
		authController:    authController,
		userController:    userController,
		messageController: messageController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupUserRoutes(api, a.userController, a.authController)
	route.SetupMessageRoutes(api, a.messageController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Servidor iniciado na porta %s", port)
	if err := a.router.Run(":" + port); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
