package game

// PositionKind is a body position a character can take on an object.
type PositionKind string

const (
	PosNone  PositionKind = ""
	PosSit   PositionKind = "sit"
	PosLie   PositionKind = "lie"
	PosKneel PositionKind = "kneel"
	PosClimb PositionKind = "climb"
)

// participle returns the room-visible phrasing for holding a position.
func (k PositionKind) participle() string {
	switch k {
	case PosSit:
		return "sitting on"
	case PosLie:
		return "lying on"
	case PosKneel:
		return "kneeling by"
	case PosClimb:
		return "standing on"
	default:
		return ""
	}
}

// Position records where a character currently is: at most one
// (object, kind) pair per character.
type Position struct {
	ObjKey string
	Kind   PositionKind
}

// SetPosition moves a character to a new position, implicitly
// clearing any previous one first (with its stand-up message), or to
// no position at all when obj is nil. Callers hold the room lock.
func (r *Room) setPosition(actor *Character, obj *Object, kind PositionKind) {
	if old, ok := r.positions[actor.ID]; ok {
		delete(r.positions, actor.ID)
		if prev := r.objects[old.ObjKey]; prev != nil && (obj == nil || prev.Key != obj.Key || old.Kind != kind) {
			r.msgAll(actor, "~You ~get off the "+prev.Key+".")
		}
	}
	if obj == nil || kind == PosNone {
		return
	}
	r.positions[actor.ID] = Position{ObjKey: obj.Key, Kind: kind}
	r.msgAll(actor, "~You ~"+string(kind)+verbSuffix(kind)+" the "+obj.Key+".")
}

func verbSuffix(kind PositionKind) string {
	// "sit on", "lie on", "kneel by", "climb onto"
	switch kind {
	case PosKneel:
		return " by"
	case PosClimb:
		return " onto"
	default:
		return " on"
	}
}

// GetPosition returns the character's current position, or a zero
// Position when they hold none.
func (r *Room) GetPosition(actor *Character) Position {
	return r.positions[actor.ID]
}

// CanReach adjudicates a reach puzzle: the character must hold the
// given position kind AND the surface under them must currently carry
// the reach flag. Neither alone is sufficient.
func (r *Room) CanReach(actor *Character, kind PositionKind, reachFlag string) bool {
	pos, ok := r.positions[actor.ID]
	if !ok || pos.Kind != kind {
		return false
	}
	obj := r.objects[pos.ObjKey]
	return obj != nil && obj.Flags.Has(reachFlag)
}

// clearPositions stands everyone up, used on state teardown and room
// description refreshes so no stale position survives.
func (r *Room) clearPositions() {
	for id := range r.positions {
		delete(r.positions, id)
	}
}
