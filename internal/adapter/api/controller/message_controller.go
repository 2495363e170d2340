package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/mensageiro-api/internal/adapter/api/dto"
	"github.com/hugohenrick/mensageiro-api/internal/domain/message"
	"github.com/hugohenrick/mensageiro-api/pkg/auth"
	"github.com/hugohenrick/mensageiro-api/pkg/logger"
)

// MessageController gerencia as requisições relacionadas a mensagens
type MessageController struct {
	service *message.Service
	logger  logger.Logger
}

// NewMessageController cria uma nova instância de MessageController
func NewMessageController(service *message.Service, logger logger.Logger) *MessageController {
	return &MessageController{
		service: service,
		logger:  logger,
	}
}

// Inbox lista as mensagens recebidas pelo usuário autenticado
// @Summary Lista as mensagens recebidas
// @Description Lista as mensagens endereçadas ao usuário autenticado
// @Tags messages
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /messages [get]
func (c *MessageController) Inbox(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)

	messages, err := c.service.Inbox(ctx, userID)
	if err != nil {
		c.logger.Error("falha ao buscar mensagens recebidas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar mensagens", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageListResponse(messages))
}

// Conversation lista as mensagens de uma conversa em ordem de criação
// @Summary Lista as mensagens de uma conversa
// @Description Lista as mensagens de uma conversa em ordem crescente de criação
// @Tags messages
// @Produce json
// @Security Bearer
// @Param id path string true "ID da conversa"
// @Success 200 {array} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /messages/conversation/{id} [get]
func (c *MessageController) Conversation(ctx *gin.Context) {
	conversationID := ctx.Param("id")

	messages, err := c.service.Conversation(ctx, conversationID)
	if err != nil {
		c.logger.Error("falha ao buscar conversa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar conversa", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageListResponse(messages))
}

// Conversations resume as conversas do usuário autenticado
// @Summary Lista as conversas do usuário
// @Description Retorna um resumo por conversa: o outro participante e a última mensagem
// @Tags messages
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ConversationSummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /messages/conversations [get]
func (c *MessageController) Conversations(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)

	summaries, err := c.service.ListConversations(ctx, userID)
	if err != nil {
		c.logger.Error("falha ao listar conversas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar conversas", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToConversationSummaryListResponse(summaries))
}

// Send envia uma nova mensagem
// @Summary Envia uma mensagem
// @Description Envia uma mensagem do usuário autenticado para o destinatário
// @Tags messages
// @Accept json
// @Produce json
// @Security Bearer
// @Param message body dto.SendMessageRequest true "Dados da mensagem"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	var request dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	senderID := auth.CurrentUserID(ctx)

	m, err := c.service.Send(ctx, senderID, request.ReceiverID, request.Text)
	if err != nil {
		if errors.Is(err, message.ErrEmptyText) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "O texto da mensagem é obrigatório", ""))
			return
		}
		c.logger.Error("falha ao enviar mensagem", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao enviar mensagem", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMessageResponse(m))
}

// Update edita o texto de uma mensagem
// @Summary Edita uma mensagem
// @Description Substitui o texto de uma mensagem enviada pelo usuário autenticado
// @Tags messages
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da mensagem"
// @Param message body dto.UpdateMessageRequest true "Novo texto"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /messages/{id} [put]
func (c *MessageController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var request dto.UpdateMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	requesterID := auth.CurrentUserID(ctx)

	m, err := c.service.EditText(ctx, id, requesterID, request.Text)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrEmptyText):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "O texto da mensagem é obrigatório", ""))
		case errors.Is(err, message.ErrMessageNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Mensagem não encontrada", ""))
		case errors.Is(err, message.ErrNotSender):
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Você não tem permissão para editar esta mensagem", ""))
		default:
			c.logger.Error("falha ao editar mensagem", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao editar mensagem", ""))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMessageResponse(m))
}

// Delete exclui uma mensagem
// @Summary Exclui uma mensagem
// @Description Remove permanentemente uma mensagem da qual o usuário participa
// @Tags messages
// @Produce json
// @Security Bearer
// @Param id path string true "ID da mensagem"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /messages/{id} [delete]
func (c *MessageController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	requesterID := auth.CurrentUserID(ctx)

	err := c.service.Remove(ctx, id, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrMessageNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Mensagem não encontrada", ""))
		case errors.Is(err, message.ErrNotParticipant):
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Você não tem permissão para excluir esta mensagem", ""))
		default:
			c.logger.Error("falha ao excluir mensagem", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir mensagem", ""))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Mensagem excluída com sucesso", nil))
}
