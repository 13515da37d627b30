package messaging

import (
	"fmt"
	"log/slog"
)

// NatsNotifier delivers narrative text to individual character NATS
// subjects. Each connected session subscribes to its own character's
// subject, so delivery reaches whichever connection currently owns
// the character.
type NatsNotifier struct {
	server *NatsServer
}

// NewNatsNotifier wraps a NatsServer for per-character text delivery.
func NewNatsNotifier(server *NatsServer) *NatsNotifier {
	return &NatsNotifier{server: server}
}

// ToCharacter publishes text to a character's subject. A character
// with no live session simply has no subscriber; the message is
// dropped, which is the wanted behavior for narrative text.
func (p *NatsNotifier) ToCharacter(charID string, text string) {
	if err := p.server.Publish(CharacterSubject(charID), []byte(text)); err != nil {
		slog.Warn("publishing to character", "char", charID, "error", err)
	}
}

// CharacterSubject is the NATS subject carrying one character's
// narrative stream.
func CharacterSubject(charID string) string {
	return fmt.Sprintf("char-%s", charID)
}
