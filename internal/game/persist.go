package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pixil98/go-errors"
)

// RoomRecord is the persisted ledger of one room: everything needed
// to resume after a restart. Object flags are restored onto whatever
// objects the recorded state's init builds; flags for objects that no
// longer exist are dropped, matching their room-scoped lifetime.
// Transient mechanism state (mix accumulators, pending lever moves)
// is deliberately not recorded; a restart resets an attempt in
// progress, never solved progress, because solutions land in flags.
type RoomRecord struct {
	State      string                      `json:"state"`
	Progress   int                         `json:"progress"`
	HintsUsed  int                         `json:"hints_used"`
	HintsShown map[string]int              `json:"hints_shown,omitempty"`
	Score      map[string]int              `json:"score,omitempty"`
	Objects    map[string]Flags            `json:"objects,omitempty"`
	Characters map[string]*CharacterRecord `json:"characters,omitempty"`
}

// CharacterRecord is one character's slice of the ledger.
type CharacterRecord struct {
	Name         string            `json:"name"`
	Flags        Flags             `json:"flags,omitempty"`
	Achievements map[string]string `json:"achievements,omitempty"`
	Position     *Position         `json:"position,omitempty"`
}

func (r *RoomRecord) Validate() error {
	el := errors.NewErrorList()

	if r.State == "" {
		el.Add(fmt.Errorf("state must be set"))
	}

	if r.Progress < 0 || r.Progress > 100 {
		el.Add(fmt.Errorf("progress must be within 0-100, got %d", r.Progress))
	}

	if r.HintsUsed < 0 {
		el.Add(fmt.Errorf("hints used must not be negative"))
	}

	for id, c := range r.Characters {
		if c == nil || c.Name == "" {
			el.Add(fmt.Errorf("character %q: name must be set", id))
		}
	}

	return el.Err()
}

// Snapshot captures the room ledger under the room lock.
func (r *Room) Snapshot() *RoomRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := &RoomRecord{
		State:      r.state.Name,
		Progress:   r.progress,
		HintsUsed:  r.hintsUsed,
		HintsShown: map[string]int{},
		Score:      map[string]int{},
		Objects:    map[string]Flags{},
		Characters: map[string]*CharacterRecord{},
	}
	for k, v := range r.hintsShown {
		rec.HintsShown[k] = v
	}
	for k, v := range r.score {
		rec.Score[k] = v
	}
	for key, obj := range r.objects {
		if len(obj.Flags) == 0 {
			continue
		}
		rec.Objects[key] = obj.Flags.clone()
	}
	for id, ch := range r.chars {
		cr := &CharacterRecord{
			Name:         ch.Name,
			Flags:        ch.Flags.clone(),
			Achievements: map[string]string{},
		}
		for k, v := range ch.Achievements {
			cr.Achievements[k] = v
		}
		if pos, ok := r.positions[id]; ok {
			p := pos
			cr.Position = &p
		}
		rec.Characters[id] = cr
	}
	return rec
}

// RestoreRoom rebuilds a room from its ledger: enter the recorded
// state (its init constructs the object set), then overlay the
// recorded flags, scores and positions.
func RestoreRoom(id string, states *StateSet, notifier Notifier, maxScore int, rec *RoomRecord, log *slog.Logger) (*Room, error) {
	state := states.Get(rec.State)
	if state == nil {
		return nil, fmt.Errorf("recorded state %q does not exist", rec.State)
	}

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

	r.state = state
	r.progress = rec.Progress
	r.hintsUsed = rec.HintsUsed
	for k, v := range rec.HintsShown {
		r.hintsShown[k] = v
	}
	for k, v := range rec.Score {
		r.score[k] = v
	}
	if state.Init != nil {
		state.Init(r)
	}

	for key, flags := range rec.Objects {
		obj := r.objects[key]
		if obj == nil {
			continue
		}
		for name, val := range flags {
			obj.Flags.SetValue(name, val)
		}
	}
	for id, cr := range rec.Characters {
		ch := NewCharacter(cr.Name)
		for name, val := range cr.Flags {
			ch.Flags.SetValue(name, val)
		}
		for k, v := range cr.Achievements {
			ch.Achievements[k] = v
		}
		r.chars[id] = ch
		if cr.Position != nil {
			if r.objects[cr.Position.ObjKey] != nil {
				r.positions[id] = *cr.Position
			}
		}
	}

	return r, nil
}
