package game

// Notifier delivers rendered narrative text to a character's session.
// The messaging layer implements this over NATS subjects; tests use a
// recording fake.
type Notifier interface {
	ToCharacter(charID string, text string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(charID string, text string)

func (f NotifierFunc) ToCharacter(charID string, text string) { f(charID, text) }
