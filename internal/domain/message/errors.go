package message

import "errors"

// Erros do domínio de mensagens
var (
	// ErrEmptyText indica texto vazio ou somente espaços no envio/edição
	ErrEmptyText = errors.New("o texto da mensagem é obrigatório")

	// ErrMessageNotFound indica que a mensagem não existe
	ErrMessageNotFound = errors.New("mensagem não encontrada")

	// ErrNotSender indica que o solicitante não é o remetente da mensagem
	ErrNotSender = errors.New("apenas o remetente pode editar a mensagem")

	// ErrNotParticipant indica que o solicitante não participa da mensagem
	ErrNotParticipant = errors.New("apenas o remetente ou o destinatário podem excluir a mensagem")

	// ErrConversationInconsistent indica uma conversa descoberta sem mensagem
	// mais recente, o que viola a consistência do armazenamento
	ErrConversationInconsistent = errors.New("conversa sem mensagem mais recente")
)
