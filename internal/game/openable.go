package game

// Flag names the engine itself sets on objects.
const (
	FlagOpen     = "open"
	FlagUnlocked = "unlocked"
)

func init() {
	RegisterFlags(FlagOpen, FlagUnlocked)
}

// Openable contributes open/close. If UnlockFlag is set, opening is
// gated on the object carrying that flag; a gated attempt routes to
// OnLocked instead of failing silently.
type Openable struct {
	StartOpen bool

	// UnlockFlag, when non-empty, must be present on the object
	// before it will open. A permanently locked door simply never
	// gets its flag set.
	UnlockFlag string

	OnOpen          Handler // after the object opens
	OnLocked        Handler // open attempt while gated
	OnClose         Handler // after the object closes
	OnAlreadyOpen   Handler
	OnAlreadyClosed Handler
}

func (c *Openable) bind(obj *Object) map[string]Handler {
	if c.StartOpen {
		obj.Flags.Set(FlagOpen)
	}
	return map[string]Handler{
		"open":  c.open,
		"close": c.close,
	}
}

func (c *Openable) open(a *Action) {
	if a.Obj.Flags.Has(FlagOpen) {
		if c.OnAlreadyOpen != nil {
			c.OnAlreadyOpen(a)
			return
		}
		a.Charf("The %s is already open.", a.Obj.Key)
		return
	}
	if c.UnlockFlag != "" && !a.Obj.Flags.Has(c.UnlockFlag) {
		if c.OnLocked != nil {
			c.OnLocked(a)
			return
		}
		a.Charf("The %s won't budge.", a.Obj.Key)
		return
	}
	a.Obj.Flags.Set(FlagOpen)
	if c.OnOpen != nil {
		c.OnOpen(a)
		return
	}
	a.Allf("~You ~open the %s.", a.Obj.Key)
}

func (c *Openable) close(a *Action) {
	if !a.Obj.Flags.Has(FlagOpen) {
		if c.OnAlreadyClosed != nil {
			c.OnAlreadyClosed(a)
			return
		}
		a.Charf("The %s is already closed.", a.Obj.Key)
		return
	}
	a.Obj.Flags.Clear(FlagOpen)
	if c.OnClose != nil {
		c.OnClose(a)
		return
	}
	a.Allf("~You ~close the %s.", a.Obj.Key)
}
