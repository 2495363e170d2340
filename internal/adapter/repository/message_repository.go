package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/mensageiro-api/internal/domain/message"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository implementa a interface message.Repository usando PostgreSQL.
// A coluna seq (BIGSERIAL) registra a ordem de inserção e desempata
// mensagens criadas com o mesmo created_at; ela nunca sai do banco.
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository cria uma nova instância de MessageRepository
func NewMessageRepository(db *pgxpool.Pool) message.Repository {
	return &MessageRepository{
		db: db,
	}
}

// Create implementa message.Repository.Create
func (r *MessageRepository) Create(ctx context.Context, m *message.Message) error {
	query := `
		INSERT INTO messages (
			id, conversation_id, sender_id, receiver_id, text, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`

	_, err := r.db.Exec(ctx, query,
		m.ID,
		m.ConversationID,
		m.SenderID,
		m.ReceiverID,
		m.Text,
		m.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("falha ao inserir mensagem: %w", err)
	}

	return nil
}

// FindByID implementa message.Repository.FindByID
func (r *MessageRepository) FindByID(ctx context.Context, id string) (*message.Message, error) {
	query := `
		SELECT
			id, conversation_id, sender_id, receiver_id, text, created_at
		FROM
			messages
		WHERE
			id = $1
	`

	m := &message.Message{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.ConversationID,
		&m.SenderID,
		&m.ReceiverID,
		&m.Text,
		&m.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, message.ErrMessageNotFound
		}
		return nil, fmt.Errorf("falha ao buscar mensagem: %w", err)
	}

	return m, nil
}

// FindByConversation implementa message.Repository.FindByConversation
func (r *MessageRepository) FindByConversation(ctx context.Context, conversationID string) ([]*message.Message, error) {
	query := `
		SELECT
			id, conversation_id, sender_id, receiver_id, text, created_at
		FROM
			messages
		WHERE
			conversation_id = $1
		ORDER BY
			created_at ASC, seq ASC
	`

	return r.queryMessages(ctx, query, conversationID)
}

// FindByReceiver implementa message.Repository.FindByReceiver
func (r *MessageRepository) FindByReceiver(ctx context.Context, receiverID string) ([]*message.Message, error) {
	query := `
		SELECT
			id, conversation_id, sender_id, receiver_id, text, created_at
		FROM
			messages
		WHERE
			receiver_id = $1
		ORDER BY
			seq ASC
	`

	return r.queryMessages(ctx, query, receiverID)
}

// DistinctConversations implementa message.Repository.DistinctConversations
func (r *MessageRepository) DistinctConversations(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT DISTINCT
			conversation_id
		FROM
			messages
		WHERE
			sender_id = $1 OR receiver_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar conversas: %w", err)
	}
	defer rows.Close()

	conversationIDs := make([]string, 0)
	for rows.Next() {
		var conversationID string
		if err := rows.Scan(&conversationID); err != nil {
			return nil, fmt.Errorf("falha ao ler conversa: %w", err)
		}
		conversationIDs = append(conversationIDs, conversationID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return conversationIDs, nil
}

// FindLatestInConversation implementa message.Repository.FindLatestInConversation
func (r *MessageRepository) FindLatestInConversation(ctx context.Context, conversationID string) (*message.Message, error) {
	query := `
		SELECT
			id, conversation_id, sender_id, receiver_id, text, created_at
		FROM
			messages
		WHERE
			conversation_id = $1
		ORDER BY
			created_at DESC, seq DESC
		LIMIT 1
	`

	m := &message.Message{}
	err := r.db.QueryRow(ctx, query, conversationID).Scan(
		&m.ID,
		&m.ConversationID,
		&m.SenderID,
		&m.ReceiverID,
		&m.Text,
		&m.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, message.ErrMessageNotFound
		}
		return nil, fmt.Errorf("falha ao buscar última mensagem: %w", err)
	}

	return m, nil
}

// UpdateText implementa message.Repository.UpdateText
func (r *MessageRepository) UpdateText(ctx context.Context, id, text string) error {
	query := `
		UPDATE messages
		SET text = $2
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, text)
	if err != nil {
		return fmt.Errorf("falha ao atualizar mensagem: %w", err)
	}

	if result.RowsAffected() == 0 {
		return message.ErrMessageNotFound
	}

	return nil
}

// Delete implementa message.Repository.Delete
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM messages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("falha ao excluir mensagem: %w", err)
	}

	if result.RowsAffected() == 0 {
		return message.ErrMessageNotFound
	}

	return nil
}

// queryMessages executa uma consulta que retorna uma lista de mensagens
func (r *MessageRepository) queryMessages(ctx context.Context, query string, args ...interface{}) ([]*message.Message, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar mensagens: %w", err)
	}
	defer rows.Close()

	messages := make([]*message.Message, 0)
	for rows.Next() {
		m := &message.Message{}
		err := rows.Scan(
			&m.ID,
			&m.ConversationID,
			&m.SenderID,
			&m.ReceiverID,
			&m.Text,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler mensagem: %w", err)
		}
		messages = append(messages, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao ler linhas: %w", err)
	}

	return messages, nil
}
