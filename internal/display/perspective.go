package display

import "strings"

// Perspective markup: words prefixed with '~' are rewritten per
// recipient. "~You ~open the door." renders as "You open the door."
// for the actor and "Dave opens the door." for everyone else. The
// first ~-word naming You becomes the actor's name in third person;
// every other ~-word is treated as a verb and conjugated.

// Render rewrites the ~-markup in text for one recipient. When
// second is true the recipient is the actor.
func Render(text, actorName string, second bool) string {
	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderLine(line, actorName, second))
	}
	return b.String()
}

func renderLine(line, actorName string, second bool) string {
	words := strings.Split(line, " ")
	for i, w := range words {
		if !strings.HasPrefix(w, "~") {
			continue
		}
		core, trailing := splitTrailing(strings.TrimPrefix(w, "~"))
		switch {
		case strings.EqualFold(core, "you"):
			if second {
				words[i] = core + trailing
			} else {
				words[i] = actorName + trailing
			}
		case second:
			words[i] = core + trailing
		default:
			words[i] = conjugate(core) + trailing
		}
	}
	return strings.Join(words, " ")
}

// splitTrailing separates trailing punctuation from a word.
func splitTrailing(w string) (core, trailing string) {
	end := len(w)
	for end > 0 && strings.ContainsRune(".,!?;:'\")", rune(w[end-1])) {
		end--
	}
	return w[:end], w[end:]
}

// conjugate turns a second-person English verb into third person
// singular.
func conjugate(verb string) string {
	if verb == "" {
		return verb
	}
	switch {
	case strings.HasSuffix(verb, "s"),
		strings.HasSuffix(verb, "sh"),
		strings.HasSuffix(verb, "ch"),
		strings.HasSuffix(verb, "x"),
		strings.HasSuffix(verb, "z"),
		strings.HasSuffix(verb, "o"):
		return verb + "es"
	case len(verb) > 1 && strings.HasSuffix(verb, "y") && !isVowel(verb[len(verb)-2]):
		return verb[:len(verb)-1] + "ies"
	default:
		return verb + "s"
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
