package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		line string
		exp  Input
	}{
		"empty line": {
			line: "",
			exp:  Input{},
		},
		"bare verb": {
			line: "look",
			exp:  Input{Verb: "look"},
		},
		"verb and object": {
			line: "read letter",
			exp:  Input{Verb: "read", Target: "letter"},
		},
		"verb is case folded": {
			line: "OPEN Door",
			exp:  Input{Verb: "open", Target: "Door"},
		},
		"leading preposition belongs to the verb": {
			line: "look at door",
			exp:  Input{Verb: "look", Target: "door"},
		},
		"sit on chair": {
			line: "sit on chair",
			exp:  Input{Verb: "sit", Target: "chair"},
		},
		"climb onto the table": {
			line: "climb onto the table",
			exp:  Input{Verb: "climb", Target: "table"},
		},
		"two objects split on preposition": {
			line: "use socks on bowl",
			exp:  Input{Verb: "use", Target: "socks", Second: "bowl"},
		},
		"insert into": {
			line: "insert lever into chest",
			exp:  Input{Verb: "insert", Target: "lever", Second: "chest"},
		},
		"code before the lock": {
			line: "enter 4321 on padlock",
			exp:  Input{Verb: "enter", Target: "padlock", Args: "4321"},
		},
		"code without a lock": {
			line: "enter 4321",
			exp:  Input{Verb: "enter", Args: "4321"},
		},
		"speak a word to a listener": {
			line: "speak vale to monkey",
			exp:  Input{Verb: "speak", Target: "monkey", Args: "vale"},
		},
		"answer with no addressee": {
			line: "answer bloch",
			exp:  Input{Verb: "answer", Args: "bloch"},
		},
		"say keeps prepositions in the text": {
			line: "say meet me on the mat",
			exp:  Input{Verb: "say", Args: "meet me on the mat"},
		},
		"move names a destination": {
			line: "move chair to fireplace",
			exp:  Input{Verb: "move", Target: "chair", Args: "fireplace"},
		},
		"trailing free text on one object": {
			line: "push lever up",
			exp:  Input{Verb: "push", Target: "lever", Args: "up"},
		},
		"surrounding whitespace": {
			line: "   feel   rug  ",
			exp:  Input{Verb: "feel", Target: "rug"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Parse(tt.line)
			testutil.AssertEqual(t, "verb", got.Verb, tt.exp.Verb)
			testutil.AssertEqual(t, "target", got.Target, tt.exp.Target)
			testutil.AssertEqual(t, "second", got.Second, tt.exp.Second)
			testutil.AssertEqual(t, "args", got.Args, tt.exp.Args)
		})
	}
}
