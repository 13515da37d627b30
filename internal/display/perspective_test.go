package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestRender(t *testing.T) {
	tests := map[string]struct {
		text   string
		second bool
		exp    string
	}{
		"actor sees second person": {
			text:   "~You ~open the door.",
			second: true,
			exp:    "You open the door.",
		},
		"observer sees name and conjugation": {
			text:   "~You ~open the door.",
			second: false,
			exp:    "Dave opens the door.",
		},
		"sibilant verb": {
			text:   "~You ~push the lever.",
			second: false,
			exp:    "Dave pushes the lever.",
		},
		"o-ending verb": {
			text:   "~You ~go outside.",
			second: false,
			exp:    "Dave goes outside.",
		},
		"consonant y verb": {
			text:   "~You ~carry the chair.",
			second: false,
			exp:    "Dave carries the chair.",
		},
		"vowel y verb": {
			text:   "~You ~say: \"hello\"",
			second: false,
			exp:    "Dave says: \"hello\"",
		},
		"trailing punctuation survives": {
			text:   "~You ~sit down, slowly.",
			second: false,
			exp:    "Dave sits down, slowly.",
		},
		"plain text untouched": {
			text:   "The wind howls outside.",
			second: false,
			exp:    "The wind howls outside.",
		},
		"multiple lines": {
			text:   "~You ~kneel.\n~You ~listen.",
			second: false,
			exp:    "Dave kneels.\nDave listens.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Render(tt.text, "Dave", tt.second)
			testutil.AssertEqual(t, "rendered", got, tt.exp)
		})
	}
}

func TestExpandTemplate(t *testing.T) {
	out, err := ExpandTemplate("Welcome, {{.Name}}!", struct{ Name string }{"Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "expanded", out, "Welcome, Ada!")

	// Plain text skips the template engine entirely.
	out, err = ExpandTemplate("No placeholders here.", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "plain", out, "No placeholders here.")

	_, err = ExpandTemplate("{{.Broken", nil)
	if err == nil {
		t.Error("expected a parse error")
	}
}

func TestMustExpand_DegradesOnError(t *testing.T) {
	out := MustExpand("{{.Broken", nil)
	testutil.AssertEqual(t, "raw template", out, "{{.Broken")
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("word ", 40)

	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line longer than %d: %q", DefaultWidth, line)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"lowercase start": {"the door creaks", "The door creaks"},
		"already capital": {"The door creaks", "The door creaks"},
		"empty string":    {"", ""},
		"single rune":     {"a", "A"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "capitalized", Capitalize(tt.in), tt.exp)
		})
	}
}
