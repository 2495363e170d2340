package dto

import (
	"time"

	"github.com/hugohenrick/mensageiro-api/internal/domain/message"
)

// SendMessageRequest representa os dados para envio de uma mensagem
type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Text       string `json:"text"`
}

// UpdateMessageRequest representa os dados para edição do texto de uma mensagem
type UpdateMessageRequest struct {
	Text string `json:"text"`
}

// MessageResponse representa a resposta com dados de uma mensagem
type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// OtherUserResponse representa o outro participante de uma conversa
type OtherUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ConversationSummaryResponse representa o resumo de uma conversa
type ConversationSummaryResponse struct {
	UserID         string            `json:"user_id"`
	ConversationID string            `json:"conversation_id"`
	OtherUser      OtherUserResponse `json:"other_user"`
	LatestMessage  string            `json:"latest_message"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ToMessageResponse converte uma mensagem do domínio para DTO de resposta
func ToMessageResponse(m *message.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		ReceiverID:     m.ReceiverID,
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}

// ToMessageListResponse converte uma lista de mensagens do domínio para DTO
func ToMessageListResponse(messages []*message.Message) []MessageResponse {
	data := make([]MessageResponse, len(messages))
	for i, m := range messages {
		data[i] = ToMessageResponse(m)
	}
	return data
}

// ToConversationSummaryResponse converte um resumo de conversa para DTO
func ToConversationSummaryResponse(s *message.ConversationSummary) ConversationSummaryResponse {
	return ConversationSummaryResponse{
		UserID:         s.UserID,
		ConversationID: s.ConversationID,
		OtherUser: OtherUserResponse{
			ID:   s.OtherUserID,
			Name: s.OtherUserName,
		},
		LatestMessage: s.LatestMessage,
		CreatedAt:     s.LatestCreatedAt,
	}
}

// ToConversationSummaryListResponse converte uma lista de resumos para DTO
func ToConversationSummaryListResponse(summaries []*message.ConversationSummary) []ConversationSummaryResponse {
	data := make([]ConversationSummaryResponse, len(summaries))
	for i, s := range summaries {
		data[i] = ToConversationSummaryResponse(s)
	}
	return data
}
