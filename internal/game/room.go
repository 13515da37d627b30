package game

import (
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/pixil98/go-escaperoom/internal/display"
)

// Room is one playgroup's live game instance: a single shared space
// sequenced through the state set. All command processing for a room
// is serialized behind its mutex; two characters acting in the same
// tick never interleave mid-mutation of flags, accumulators or the
// state machine.
type Room struct {
	ID string

	mu       sync.Mutex
	notifier Notifier
	states   *StateSet
	log      *slog.Logger

	state    *State
	advanced bool // one-shot guard for the current state's transition
	// epoch increments on every transition; deferred steps capture it
	// and become no-ops when it has moved on.
	epoch int

	objects   map[string]*Object
	chars     map[string]*Character
	positions map[string]Position

	score      map[string]int
	maxScore   int
	hintsUsed  int
	hintsShown map[string]int
	progress   int

	lastChatter time.Time
	rng         *rand.Rand
	closed      bool
}

// NewRoom creates a room instance and runs the first state's init.
func NewRoom(id string, states *StateSet, notifier Notifier, maxScore int, log *slog.Logger) *Room {
	r := &Room{
		ID:         id,
		notifier:   notifier,
		states:     states,
		log:        log,
		objects:    map[string]*Object{},
		chars:      map[string]*Character{},
		positions:  map[string]Position{},
		score:      map[string]int{},
		maxScore:   maxScore,
		hintsShown: map[string]int{},
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = states.First()
	r.enterState(r.state)
	return r
}

func (r *Room) logger() *slog.Logger {
	if r.log == nil {
		return slog.Default()
	}
	return r.log
}

// --- membership ---

// Join adds a character to the room and plays the current state's
// greeting to them. Joining under a name seen before resumes that
// character's flags and achievements.
func (r *Room) Join(name string) *Character {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := strings.ToLower(name)
	ch, ok := r.chars[id]
	if !ok {
		ch = NewCharacter(name)
		r.chars[id] = ch
	}

	if r.state.Greeting != "" {
		greeting := display.MustExpand(r.state.Greeting, struct{ Name string }{Name: ch.Name})
		r.msgChar(ch, greeting)
	}
	return ch
}

// Leave detaches a character's session. Flags and achievements stay:
// the character record survives for a reconnect.
func (r *Room) Leave(charID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ch, ok := r.chars[charID]; ok {
		if _, positioned := r.positions[charID]; positioned {
			r.setPosition(ch, nil, PosNone)
		}
	}
}

// Characters returns the current character list.
func (r *Room) Characters() []*Character {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Character, 0, len(r.chars))
	for _, c := range r.chars {
		out = append(out, c)
	}
	return out
}

// Character returns a character by id, or nil.
func (r *Room) Character(id string) *Character {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.chars[id]
}

// --- object set ---

// AddObject registers an object in the live set, replacing any
// previous object under the same key. States re-create an object
// under the same name with a different capability profile between
// chapters; callers must always re-resolve by name, never cache.
func (r *Room) AddObject(obj *Object) {
	r.objects[obj.Key] = obj
}

// RemoveObject deletes an object from the live set. Its object flags
// die with it; character flags are unaffected.
func (r *Room) RemoveObject(key string) {
	delete(r.objects, key)
}

// Object resolves the current live instance under a key, or nil. The
// nil case is a normal "doesn't exist yet" condition, state-dependent
// by design.
func (r *Room) Object(key string) *Object {
	return r.objects[key]
}

// find resolves player text against the live object set.
func (r *Room) find(text string) *Object {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	// Exact key/alias matches win over prefix matches.
	for _, o := range r.objects {
		if strings.EqualFold(o.Key, text) {
			return o
		}
	}
	for _, o := range r.objects {
		if o.Matches(text) {
			return o
		}
	}
	return nil
}

// findByVerb resolves a target-less command to the single live object
// recognizing the verb. Ambiguity resolves to nothing: common verbs
// like "open" still demand an explicit target.
func (r *Room) findByVerb(verb string) *Object {
	var found *Object
	for _, o := range r.objects {
		if o.Knows(verb) {
			if found != nil {
				return nil
			}
			found = o
		}
	}
	return found
}

// --- command execution ---

// Perform is the serialization boundary for player commands: resolve
// the target among the live objects, check the verb is recognized,
// and dispatch. Every failure path returns a UserError with narrative
// text.
func (r *Room) Perform(charID, verb, targetText, secondText, args string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	actor, ok := r.chars[charID]
	if !ok {
		return Rejectf("You are not in this room.")
	}

	verb = strings.ToLower(verb)
	obj := r.find(targetText)
	if obj == nil && strings.TrimSpace(targetText) == "" {
		// Bare verbs ("leave", "answer four") resolve to the one
		// object that understands them.
		obj = r.findByVerb(verb)
	}
	if obj == nil {
		if strings.TrimSpace(targetText) == "" {
			return Rejectf("What do you want to %s?", verb)
		}
		return Rejectf("You see no '%s' here.", strings.TrimSpace(targetText))
	}

	act := &Action{Room: r, Actor: actor, Obj: obj, Verb: verb, Args: args}

	if secondText != "" {
		target := r.find(secondText)
		if target == nil {
			return Rejectf("You see no '%s' here.", strings.TrimSpace(secondText))
		}
		act.Target = target
	}

	if !obj.Knows(act.Verb) {
		return Rejectf("You can't %s the %s.", act.Verb, obj.Key)
	}

	obj.dispatch(act)
	return nil
}

// LookAt returns the description of an object, or the room itself
// when text is empty. Looking at the room refreshes the character's
// footing: they return to no position.
func (r *Room) LookAt(charID, text string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	actor, ok := r.chars[charID]
	if !ok {
		return "", Rejectf("You are not in this room.")
	}

	if strings.TrimSpace(text) == "" {
		if _, positioned := r.positions[charID]; positioned {
			r.setPosition(actor, nil, PosNone)
		}
		return r.describeRoom(), nil
	}

	obj := r.find(text)
	if obj == nil {
		return "", Rejectf("You see no '%s' here.", strings.TrimSpace(text))
	}
	act := &Action{Room: r, Actor: actor, Obj: obj, Verb: "look"}
	// An object with its own look behavior (scored looks, vantage
	// point checks) speaks through room messaging instead.
	if obj.Knows("look") {
		obj.dispatch(act)
		return "", nil
	}
	return obj.Describe(act), nil
}

func (r *Room) describeRoom() string {
	desc := r.state.RoomDesc
	var present []string
	for id, c := range r.chars {
		if pos, ok := r.positions[id]; ok {
			present = append(present, c.Name+" ("+string(pos.Kind)+" "+pos.ObjKey+")")
		} else {
			present = append(present, c.Name)
		}
	}
	if len(present) > 0 {
		desc += "\n\nPresent: " + strings.Join(present, ", ") + "."
	}
	return desc
}

// Stand clears the character's position explicitly.
func (r *Room) Stand(charID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	actor, ok := r.chars[charID]
	if !ok {
		return Rejectf("You are not in this room.")
	}
	if _, positioned := r.positions[charID]; !positioned {
		return Rejectf("You are already standing on the floor.")
	}
	r.setPosition(actor, nil, PosNone)
	return nil
}

// Say relays free speech to the whole room.
func (r *Room) Say(charID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	actor, ok := r.chars[charID]
	if !ok {
		return Rejectf("You are not in this room.")
	}
	r.msgAll(actor, "~You ~say: \""+text+"\"")
	return nil
}

// --- state machine ---

// StateName returns the active state's name.
func (r *Room) StateName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.Name
}

// InState reports whether the named state is active. Callers are
// behavior hooks already holding the room lock via Perform; verbs on
// persistent objects outlive the state that bound them and must check
// before firing stage-specific effects.
func (r *Room) InState(name string) bool {
	return r.state.Name == name
}

// Advance moves to the active state's default next state. Callers are
// behavior hooks already holding the room lock via Perform.
func (r *Room) Advance() {
	if r.state.Next == "" {
		r.logger().Warn("advance from terminal state ignored", "room", r.ID, "state", r.state.Name)
		return
	}
	r.advanceTo(r.state.Next)
}

// AdvanceTo jumps to an explicitly named state, for non-linear
// fast-path endings.
func (r *Room) AdvanceTo(name string) {
	r.advanceTo(name)
}

func (r *Room) advanceTo(name string) {
	if r.advanced {
		// A second trigger for the same transition is a concurrency
		// artifact, not player error. Degrade to a no-op.
		r.logger().Warn("duplicate state advance ignored", "room", r.ID, "state", r.state.Name)
		return
	}
	next := r.states.Get(name)
	if next == nil {
		r.logger().Error("advance to unknown state", "room", r.ID, "target", name)
		return
	}
	r.advanced = true

	if r.state.Clean != nil {
		r.state.Clean(r)
	}
	r.setProgress(r.state.Progress)
	r.clearPositions()

	// Teardown: the object set belongs to the state. Persistent
	// objects are the deliberate exception.
	for key, obj := range r.objects {
		if !obj.Persistent {
			delete(r.objects, key)
		}
	}

	r.epoch++
	r.state = next
	r.advanced = false
	r.lastChatter = time.Time{}
	r.enterState(next)
}

func (r *Room) enterState(s *State) {
	r.logger().Info("entering state", "room", r.ID, "state", s.Name)
	if s.Init != nil {
		s.Init(r)
	}
}

// --- progress / score / hints ---

// Progress returns the room's progress percentage.
func (r *Room) Progress() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.progress
}

// setProgress is monotonic: progress never decreases.
func (r *Room) setProgress(p int) {
	if p > r.progress {
		r.progress = p
	}
}

// Score awards named points, at most once per name for the room's
// lifetime. Re-earning a name is a no-op.
func (r *Room) Score(points int, name string) {
	if _, done := r.score[name]; done {
		return
	}
	r.score[name] = points
}

// TotalScore sums the awarded rubric entries.
func (r *Room) TotalScore() int {
	total := 0
	for _, p := range r.score {
		total += p
	}
	return total
}

// MaxScore returns the room's score ceiling.
func (r *Room) MaxScore() int { return r.maxScore }

// HintsUsed returns the global hints counter.
func (r *Room) HintsUsed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hintsUsed
}

// Achievement records a named achievement on a character, once.
func (r *Room) Achievement(ch *Character, name, desc string) {
	if _, done := ch.Achievements[name]; done {
		return
	}
	ch.Achievements[name] = desc
	r.logger().Info("achievement", "room", r.ID, "char", ch.ID, "name", name)
}

// UseHint reveals the next rung of the active state's hint ladder and
// bumps the global counter. An exhausted ladder repeats its last rung
// without further cost.
func (r *Room) UseHint() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.useHint()
}

func (r *Room) useHint() string {
	hints := r.state.Hints
	if len(hints) == 0 {
		return "No help is forthcoming here. You are on your own."
	}
	shown := r.hintsShown[r.state.Name]
	if shown >= len(hints) {
		return hints[len(hints)-1]
	}
	r.hintsShown[r.state.Name] = shown + 1
	r.hintsUsed++
	return hints[shown]
}

// Scoreboard summarizes mid-game standing for the progress command.
func (r *Room) Scoreboard() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return display.MustExpand(
		"Progress: {{.Progress}}%  (hints used: {{.Hints}})",
		struct {
			Progress int
			Hints    int
		}{r.progress, r.hintsUsed})
}

// --- messaging ---

// msgChar sends second-person text to one character. Lock held.
func (r *Room) msgChar(ch *Character, text string) {
	if r.notifier == nil {
		return
	}
	r.notifier.ToCharacter(ch.ID, display.Wrap(display.Render(text, ch.Name, true)))
}

// msgAll sends perspective text to everyone: second person to the
// actor, third person to observers. Lock held.
func (r *Room) msgAll(actor *Character, text string) {
	if r.notifier == nil {
		return
	}
	for _, ch := range r.chars {
		r.notifier.ToCharacter(ch.ID, display.Wrap(display.Render(text, actor.Name, ch.ID == actor.ID)))
	}
}

// Broadcast sends plain (non-perspective) text to everyone present,
// used by cinematics and ambient chatter. Lock held by callers inside
// hooks; external callers go through BroadcastLocked.
func (r *Room) Broadcast(text string) {
	if r.notifier == nil {
		return
	}
	for _, ch := range r.chars {
		r.notifier.ToCharacter(ch.ID, display.Wrap(text))
	}
}

// --- ticking ---

// Tick runs ambient work: state-conditional chatter. Driven by the
// shared tick driver.
func (r *Room) Tick(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := r.state.Chatter
	if ch == nil || len(ch.Lines) == 0 || len(r.chars) == 0 {
		return
	}
	if r.lastChatter.IsZero() {
		r.lastChatter = now
		return
	}
	if now.Sub(r.lastChatter) < ch.Every {
		return
	}
	r.lastChatter = now
	r.Broadcast(ch.Lines[r.rng.Intn(len(ch.Lines))])
}

// Close marks the room dead; pending deferred steps become no-ops.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.epoch++
}
