package game

// Positionable lets an actor take body positions on the object. Only
// the kinds listed are accepted; the rest get a rejection.
type Positionable struct {
	Kinds []PositionKind

	// OnPosition runs after the position is taken.
	OnPosition func(a *Action, kind PositionKind)
}

func (c *Positionable) bind(*Object) map[string]Handler {
	table := map[string]Handler{}
	for _, k := range []PositionKind{PosSit, PosLie, PosKneel, PosClimb} {
		kind := k
		if c.allows(kind) {
			table[string(kind)] = func(a *Action) { c.take(a, kind) }
		} else {
			table[string(kind)] = func(a *Action) {
				a.Charf("The %s is not suited for that.", a.Obj.Key)
			}
		}
	}
	return table
}

func (c *Positionable) allows(kind PositionKind) bool {
	for _, k := range c.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (c *Positionable) take(a *Action, kind PositionKind) {
	cur := a.Room.GetPosition(a.Actor)
	if cur.ObjKey == a.Obj.Key && cur.Kind == kind {
		a.Charf("You are already %s the %s.", kind.participle(), a.Obj.Key)
		return
	}
	a.Room.setPosition(a.Actor, a.Obj, kind)
	if c.OnPosition != nil {
		c.OnPosition(a, kind)
	}
}
