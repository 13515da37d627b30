package game

import (
	"fmt"
)

// Action carries everything a verb handler needs: who acted, on what,
// with which verb, and any trailing words. Target is set for
// two-object verbs ("use socks on bowl" dispatches to socks with the
// bowl as Target).
type Action struct {
	Room   *Room
	Actor  *Character
	Obj    *Object
	Target *Object
	Verb   string
	Args   string
}

// Char sends private, second-person text to the acting character.
func (a *Action) Char(text string) {
	a.Room.msgChar(a.Actor, text)
}

// Charf is Char with formatting.
func (a *Action) Charf(format string, args ...any) {
	a.Room.msgChar(a.Actor, fmt.Sprintf(format, args...))
}

// All sends perspective text to everyone present, including the
// actor. The text uses ~-markup ("~You ~open the door.") which is
// rendered in second person for the actor and third person for
// observers.
func (a *Action) All(text string) {
	a.Room.msgAll(a.Actor, text)
}

// Allf is All with formatting.
func (a *Action) Allf(format string, args ...any) {
	a.Room.msgAll(a.Actor, fmt.Sprintf(format, args...))
}

// Hint reveals the next hint-ladder rung on the actor's behalf, for
// in-fiction hint sources like the hintberry pie.
func (a *Action) Hint() string {
	return a.Room.useHint()
}

// Handler is a verb behavior hook.
type Handler func(*Action)

// A Capability is a composable behavior bundle an object can carry.
// Attaching a capability binds its verbs on the object; attaching a
// later capability that claims the same verb replaces the earlier
// binding entirely. This explicit composition replaces what the
// puzzle content would otherwise need deep inheritance for.
type Capability interface {
	// bind returns the verb table this capability contributes.
	// Handlers close over the capability value, so puzzle content
	// configures behavior through its exported hook fields.
	bind(obj *Object) map[string]Handler
}

// verbTable is the trivial capability: a bag of verb handlers. Used
// by the single-verb sensory capabilities and custom focus verbs.
type verbTable map[string]Handler

func (v verbTable) bind(*Object) map[string]Handler { return v }
