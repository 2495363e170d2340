//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../../../mocks/mock_message_repository.go -package=mocks -mock_names=Repository=MockMessageRepository

package message

import (
	"context"
)

// Repository define a interface para operações de repositório de mensagens
type Repository interface {
	// Create insere uma nova mensagem. Sempre cria um novo registro;
	// envios repetidos na mesma conversa apenas acrescentam ao histórico.
	Create(ctx context.Context, m *Message) error

	// FindByID busca uma mensagem pelo ID
	FindByID(ctx context.Context, id string) (*Message, error)

	// FindByConversation lista as mensagens de uma conversa em ordem
	// crescente de criação. Conversa inexistente retorna lista vazia.
	FindByConversation(ctx context.Context, conversationID string) ([]*Message, error)

	// FindByReceiver lista as mensagens endereçadas a um usuário
	FindByReceiver(ctx context.Context, receiverID string) ([]*Message, error)

	// DistinctConversations retorna as chaves de conversa distintas em que
	// o usuário aparece como remetente ou destinatário
	DistinctConversations(ctx context.Context, userID string) ([]string, error)

	// FindLatestInConversation busca a mensagem mais recente de uma conversa.
	// Empates de created_at são desfeitos pela ordem de inserção.
	FindLatestInConversation(ctx context.Context, conversationID string) (*Message, error)

	// UpdateText substitui o texto da mensagem, preservando created_at
	UpdateText(ctx context.Context, id, text string) error

	// Delete remove a mensagem permanentemente (sem tombstone)
	Delete(ctx context.Context, id string) error
}
