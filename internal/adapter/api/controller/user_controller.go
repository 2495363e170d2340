package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/api/dto"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/repository"
	"github.com/hugohenrick/mensageiro-api/internal/domain/user"
	"github.com/hugohenrick/mensageiro-api/pkg/logger"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	userRepository user.Repository
	logger         logger.Logger
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userRepository user.Repository, logger logger.Logger) *UserController {
	return &UserController{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Signup cria uma nova conta de usuário
// @Summary Cria uma nova conta
// @Description Cria um novo usuário no sistema
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.SignupRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/signup [post]
func (c *UserController) Signup(ctx *gin.Context) {
	var request dto.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	// Criar o modelo de domínio a partir do DTO
	u := &user.User{
		ID:        uuid.New().String(),
		Name:      request.Name,
		Username:  request.Username,
		Email:     request.Email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Definir a senha com hash
	if err := u.SetPassword(request.Password); err != nil {
		c.logger.Error("falha ao gerar hash de senha", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao processar senha", ""))
		return
	}

	// Persistir o usuário
	if err := c.userRepository.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrUserDuplicate) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Usuário com mesmo email ou username já existe", ""))
			return
		}
		c.logger.Error("falha ao criar usuário", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar usuário", ""))
		return
	}

	// Retornar o usuário criado
	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// List lista os usuários cadastrados
// @Summary Lista os usuários
// @Description Lista os usuários do sistema para iniciar conversas
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userRepository.List(ctx, 100, 0)
	if err != nil {
		c.logger.Error("falha ao listar usuários", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar usuários", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}
