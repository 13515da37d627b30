package game

import (
	"strings"

	"github.com/google/uuid"
)

// Object is one interactable entity in the room: a key plus aliases
// for name resolution, a description, a flag bag, and the verb table
// built from its attached capabilities. Objects are created by the
// active state's init hook and die with the state unless marked
// Persistent.
type Object struct {
	InstanceId string
	Key        string
	Aliases    []string
	Flags      Flags

	// Desc is shown on look. DescFunc, when set, wins; it lets a
	// description depend on who is looking and from where.
	Desc     string
	DescFunc func(a *Action) string

	// Persistent objects survive a state transition. This is the
	// deliberate exception, never the default.
	Persistent bool

	// SignatureHelp is appended to the description: which verbs make
	// sense to try on this object.
	SignatureHelp string

	handlers map[string]Handler
}

// NewObject creates an object with the given key and aliases and
// attaches the capabilities in order.
func NewObject(key string, aliases []string, caps ...Capability) *Object {
	o := &Object{
		InstanceId: uuid.NewString(),
		Key:        key,
		Aliases:    aliases,
		Flags:      Flags{},
		handlers:   map[string]Handler{},
	}
	o.Attach(caps...)
	return o
}

// Attach binds more capabilities onto the object. Later attachments
// override earlier bindings for the same verb, so the most specific
// behavior replaces the base one entirely.
func (o *Object) Attach(caps ...Capability) *Object {
	for _, c := range caps {
		for verb, h := range c.bind(o) {
			o.handlers[verb] = h
		}
	}
	return o
}

// Verb binds a single custom verb, e.g. a "think" or "outside" focus
// action specific to one puzzle object.
func (o *Object) Verb(verb string, h Handler) *Object {
	o.handlers[verb] = h
	return o
}

// Knows reports whether the object's capability set recognizes the
// verb at all.
func (o *Object) Knows(verb string) bool {
	_, ok := o.handlers[strings.ToLower(verb)]
	return ok
}

// Matches reports whether text names this object by key or alias.
// Matching is case-insensitive and accepts unambiguous prefixes of
// the key.
func (o *Object) Matches(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}
	if strings.ToLower(o.Key) == text {
		return true
	}
	for _, a := range o.Aliases {
		if strings.ToLower(a) == text {
			return true
		}
	}
	return strings.HasPrefix(strings.ToLower(o.Key), text)
}

// Describe returns the object's current description for the actor.
func (o *Object) Describe(a *Action) string {
	desc := o.Desc
	if o.DescFunc != nil {
		desc = o.DescFunc(a)
	}
	if o.SignatureHelp != "" {
		desc = desc + "\n\n" + o.SignatureHelp
	}
	return desc
}

// dispatch runs the bound handler for the action's verb. The caller
// (Room.Perform) has already checked Knows; an unbound verb here is
// still answered with a rejection rather than a crash.
func (o *Object) dispatch(a *Action) {
	h, ok := o.handlers[strings.ToLower(a.Verb)]
	if !ok {
		a.Charf("You can't %s %s.", a.Verb, o.Key)
		return
	}
	h(a)
}
