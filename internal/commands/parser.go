package commands

import "strings"

// Input is one parsed player line: a verb, the object it names, an
// optional second object after a preposition, and any trailing words.
type Input struct {
	Verb   string
	Target string
	Second string
	Args   string
}

// prepositions that split a two-object command ("use socks on bowl").
var prepositions = []string{" on ", " into ", " in ", " to ", " with ", " at "}

// argsFirst verbs put free text before the preposition and the object
// after it ("enter 4321 on padlock").
var argsFirst = map[string]bool{
	"enter":  true,
	"speak":  true,
	"answer": true,
}

// rawVerbs take the whole rest of the line as free text, prepositions
// included ("say meet me at the door").
var rawVerbs = map[string]bool{
	"say": true,
}

// destVerbs name a place after the preposition, not a second object
// ("move chair to fireplace"); the place travels as Args.
var destVerbs = map[string]bool{
	"move": true,
}

// Parse tokenizes a command line. It never fails: unrecognized shapes
// still come back as a best-effort Input for the dispatcher to reject
// with a narrative message.
func Parse(line string) Input {
	line = strings.TrimSpace(line)
	if line == "" {
		return Input{}
	}

	verb, rest, _ := strings.Cut(line, " ")
	in := Input{Verb: strings.ToLower(verb)}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return in
	}

	if rawVerbs[in.Verb] {
		in.Args = rest
		return in
	}

	// A leading preposition belongs to the verb phrase: "sit on
	// chair", "climb onto the table", "look at door".
	for _, lead := range []string{"on ", "onto ", "in ", "into ", "at ", "to ", "the "} {
		if strings.HasPrefix(rest, lead) {
			rest = strings.TrimSpace(strings.TrimPrefix(rest, lead))
		}
	}

	for _, prep := range prepositions {
		if left, right, found := cutFold(rest, prep); found {
			switch {
			case argsFirst[in.Verb]:
				in.Args = left
				in.Target = right
			case destVerbs[in.Verb]:
				in.Target = left
				in.Args = right
			default:
				in.Target = left
				in.Second = right
			}
			return in
		}
	}

	if argsFirst[in.Verb] {
		in.Args = rest
		return in
	}

	// Single-object form: first word names the object, the rest is
	// free text ("pull lever left").
	target, args, _ := strings.Cut(rest, " ")
	in.Target = target
	in.Args = strings.TrimSpace(args)
	return in
}

// cutFold is a case-insensitive strings.Cut on the first occurrence
// of sep.
func cutFold(s, sep string) (left, right string, found bool) {
	idx := strings.Index(strings.ToLower(s), sep)
	if idx < 0 {
		return s, "", false
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+len(sep):]), true
}
