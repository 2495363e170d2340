package message

import (
	"time"
)

// Message representa uma mensagem trocada entre dois usuários.
// Os campos ConversationID, SenderID e ReceiverID são imutáveis após a
// criação; apenas o texto pode ser alterado, e somente pelo remetente.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	ReceiverID     string    `json:"receiver_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationSummary representa a visão derivada de uma conversa:
// a chave da conversa, o outro participante e a última mensagem.
// Não é persistida.
type ConversationSummary struct {
	UserID          string    `json:"user_id"`
	ConversationID  string    `json:"conversation_id"`
	OtherUserID     string    `json:"other_user_id"`
	OtherUserName   string    `json:"other_user_name"`
	LatestMessage   string    `json:"latest_message"`
	LatestCreatedAt time.Time `json:"latest_created_at"`
}
