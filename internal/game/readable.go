package game

import "strings"

// Readable contributes read, optionally topic-indexed for a
// multi-entry reference object (the book of notes: "read recipe").
type Readable struct {
	OnRead Handler

	// Topics maps lowercased topic names to text. When set and the
	// player supplies an argument, the topic entry is shown;
	// OnReadTopic, if present, runs afterwards for scoring.
	Topics      map[string]string
	OnReadTopic func(a *Action, topic string)

	// NoSuchTopic is shown for an unknown topic. Defaults to a
	// generic miss.
	NoSuchTopic string
}

func (c *Readable) bind(*Object) map[string]Handler {
	return map[string]Handler{"read": c.read}
}

func (c *Readable) read(a *Action) {
	topic := strings.ToLower(strings.TrimSpace(a.Args))
	if topic != "" && c.Topics != nil {
		text, ok := c.Topics[topic]
		if !ok {
			if c.NoSuchTopic != "" {
				a.Char(c.NoSuchTopic)
			} else {
				a.Charf("You find nothing about '%s' in the %s.", topic, a.Obj.Key)
			}
			return
		}
		a.Char(text)
		if c.OnReadTopic != nil {
			c.OnReadTopic(a, topic)
		}
		return
	}
	if c.OnRead != nil {
		c.OnRead(a)
		return
	}
	a.Charf("There is nothing to read on the %s.", a.Obj.Key)
}
