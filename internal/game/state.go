package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// State is one stage of the puzzle sequence. It is the sole owner of
// which objects exist while it is active: Init constructs the object
// set, Clean runs just before the transition away. Transition is
// one-shot and irreversible; a state index is never re-entered.
type State struct {
	Name string

	// Next is the default target of an advance. Content may jump
	// elsewhere with AdvanceTo for fast-path endings.
	Next string

	// Progress is the room progress percentage recorded when this
	// state is cleaned. Monotonic across the sequence.
	Progress int

	// Hints is the ordered ladder for this state, least to most
	// explicit.
	Hints []string

	// RoomDesc is the room-level description while this state is
	// active. Template data: {{.Name}} is not expanded here; it is
	// plain text.
	RoomDesc string

	// Greeting is the cinematic shown to a character entering during
	// this state. Template data: {{.Name}}.
	Greeting string

	// Chatter, when set, makes the room speak ambient lines on the
	// tick driver while this state is active.
	Chatter *Chatter

	Init  func(r *Room)
	Clean func(r *Room)
}

// Chatter is ambient, state-conditional narration (the automaton's
// idle talk). Lines are broadcast verbatim at roughly Every interval.
type Chatter struct {
	Every time.Duration
	Lines []string
}

// StateSet is the fixed ordered sequence of states for a room.
type StateSet struct {
	order  []string
	byName map[string]*State
}

// NewStateSet builds and validates the sequence: unique names, every
// Next pointer resolvable, terminal state last.
func NewStateSet(states ...*State) (*StateSet, error) {
	el := errors.NewErrorList()

	set := &StateSet{byName: map[string]*State{}}
	for _, s := range states {
		if s.Name == "" {
			el.Add(fmt.Errorf("state with empty name"))
			continue
		}
		if _, dup := set.byName[s.Name]; dup {
			el.Add(fmt.Errorf("duplicate state %q", s.Name))
			continue
		}
		set.byName[s.Name] = s
		set.order = append(set.order, s.Name)
	}

	for _, s := range set.byName {
		if s.Next == "" {
			continue
		}
		if _, ok := set.byName[s.Next]; !ok {
			el.Add(fmt.Errorf("state %q: next state %q does not exist", s.Name, s.Next))
		}
	}

	if len(set.order) == 0 {
		el.Add(fmt.Errorf("state set is empty"))
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// First returns the starting state.
func (s *StateSet) First() *State {
	return s.byName[s.order[0]]
}

// Get returns a state by name, or nil.
func (s *StateSet) Get(name string) *State {
	return s.byName[name]
}

// Names returns the sequence order.
func (s *StateSet) Names() []string {
	return append([]string(nil), s.order...)
}
