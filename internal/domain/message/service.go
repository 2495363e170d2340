package message

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/mensageiro-api/internal/domain/user"
)

// Service implementa as operações de mensagens sobre o repositório,
// aplicando a validação de texto e as regras de autorização.
type Service struct {
	messages Repository
	users    user.Repository
}

// NewService cria uma nova instância de Service
func NewService(messages Repository, users user.Repository) *Service {
	return &Service{
		messages: messages,
		users:    users,
	}
}

// Send cria uma nova mensagem do remetente para o destinatário.
// A chave da conversa é derivada do par de participantes; os campos de
// identidade ficam fixos na criação.
func (s *Service) Send(ctx context.Context, senderID, receiverID, text string) (*Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	m := &Message{
		ID:             uuid.New().String(),
		ConversationID: ConversationID(senderID, receiverID),
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Text:           text,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("falha ao salvar mensagem: %w", err)
	}

	return m, nil
}

// Inbox retorna as mensagens endereçadas ao usuário
func (s *Service) Inbox(ctx context.Context, userID string) ([]*Message, error) {
	return s.messages.FindByReceiver(ctx, userID)
}

// Conversation retorna as mensagens de uma conversa em ordem de criação
func (s *Service) Conversation(ctx context.Context, conversationID string) ([]*Message, error) {
	return s.messages.FindByConversation(ctx, conversationID)
}

// EditText substitui o texto de uma mensagem existente. Apenas o remetente
// pode editar; created_at não é alterado.
func (s *Service) EditText(ctx context.Context, id, requesterID, text string) (*Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	m, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanEdit(m, requesterID) {
		return nil, ErrNotSender
	}

	if err := s.messages.UpdateText(ctx, id, text); err != nil {
		return nil, err
	}

	m.Text = text
	return m, nil
}

// Remove exclui uma mensagem permanentemente. Remetente e destinatário
// podem excluir; não há tombstone.
func (s *Service) Remove(ctx context.Context, id, requesterID string) error {
	m, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanDelete(m, requesterID) {
		return ErrNotParticipant
	}

	return s.messages.Delete(ctx, id)
}

// ListConversations resume as conversas do usuário: uma entrada por chave
// de conversa distinta, com o outro participante e a última mensagem.
// A descoberta e a busca da última mensagem são consultas independentes,
// então a visão é de melhor esforço, não linearizável. A ordem das
// entradas segue a ordem de descoberta.
func (s *Service) ListConversations(ctx context.Context, userID string) ([]*ConversationSummary, error) {
	conversationIDs, err := s.messages.DistinctConversations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("falha ao descobrir conversas: %w", err)
	}

	summaries := make([]*ConversationSummary, 0, len(conversationIDs))
	for _, conversationID := range conversationIDs {
		latest, err := s.messages.FindLatestInConversation(ctx, conversationID)
		if err != nil {
			// Uma conversa descoberta sem mensagem viola a consistência do
			// armazenamento; é erro interno, nunca uma entrada omitida.
			if errors.Is(err, ErrMessageNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrConversationInconsistent, conversationID)
			}
			return nil, fmt.Errorf("falha ao buscar última mensagem da conversa %s: %w", conversationID, err)
		}

		otherUserID := latest.ReceiverID
		if latest.SenderID != userID {
			otherUserID = latest.SenderID
		}

		summary := &ConversationSummary{
			UserID:          userID,
			ConversationID:  conversationID,
			OtherUserID:     otherUserID,
			LatestMessage:   latest.Text,
			LatestCreatedAt: latest.CreatedAt,
		}

		if other, err := s.users.FindByID(ctx, otherUserID); err == nil {
			summary.OtherUserName = other.Name
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
