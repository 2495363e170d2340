package message

// As funções abaixo são predicados puros sobre os campos imutáveis da
// mensagem e a identidade do solicitante. Não há estado: cada requisição
// avalia as regras do zero.

// CanEdit verifica se o solicitante pode editar a mensagem.
// Apenas o remetente pode alterar o texto.
func CanEdit(m *Message, requesterID string) bool {
	return m.SenderID == requesterID
}

// CanDelete verifica se o solicitante pode excluir a mensagem.
// Tanto o remetente quanto o destinatário podem excluir.
func CanDelete(m *Message, requesterID string) bool {
	return m.SenderID == requesterID || m.ReceiverID == requesterID
}

// IsParticipant verifica se o usuário participa da mensagem.
// A leitura não tem ACL própria; as consultas já são limitadas à caixa
// de entrada e às conversas do próprio usuário.
func IsParticipant(m *Message, userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
