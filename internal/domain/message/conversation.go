package message

import (
	"strings"
)

// conversationSeparator separa os dois IDs na chave da conversa.
// Os IDs de usuário são UUIDs, então ":" nunca aparece dentro de um ID,
// o que garante que pares distintos nunca produzam a mesma chave.
const conversationSeparator = ":"

// ConversationID deriva a chave canônica da conversa entre dois usuários.
// A função é pura e comutativa: ConversationID(a, b) == ConversationID(b, a),
// independente de quem envia primeiro. Uma conversa do usuário consigo mesmo
// (a == b) é permitida e resolve para uma chave degenerada estável.
func ConversationID(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + conversationSeparator + userB
}

// ConversationParticipants desfaz a chave da conversa nos dois IDs
// que a originaram, na ordem canônica.
func ConversationParticipants(conversationID string) (string, string) {
	parts := strings.SplitN(conversationID, conversationSeparator, 2)
	if len(parts) != 2 {
		return conversationID, ""
	}
	return parts[0], parts[1]
}
