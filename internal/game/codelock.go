package game

import "strings"

// CodeLock gates an object behind a free-text or numeric secret,
// submitted with "enter <code> into <object>". Three outcomes: empty
// input, correct, incorrect. A correct submission sets the unlocked
// (and open, if OpensOnUnlock) flag and fires OnCorrect exactly once;
// repeats are state no-ops that may replay flavor via OnReplay.
type CodeLock struct {
	Code     string
	FoldCase bool

	// Enterable false means the lock is staged before its solution
	// exists in the world: every submission fails regardless of the
	// secret.
	Enterable bool

	OpensOnUnlock bool

	OnCorrect   func(a *Action)
	OnReplay    func(a *Action)
	OnIncorrect func(a *Action, tried string)
	OnEmpty     func(a *Action)
}

func (c *CodeLock) bind(*Object) map[string]Handler {
	return map[string]Handler{"enter": c.submit}
}

func (c *CodeLock) submit(a *Action) {
	tried := strings.TrimSpace(a.Args)
	if tried == "" {
		if c.OnEmpty != nil {
			c.OnEmpty(a)
			return
		}
		a.Charf("You need to give a code to try on the %s.", a.Obj.Key)
		return
	}

	if c.Enterable && c.match(tried) {
		if a.Obj.Flags.Has(FlagUnlocked) {
			if c.OnReplay != nil {
				c.OnReplay(a)
				return
			}
			a.Charf("The %s is already unlocked.", a.Obj.Key)
			return
		}
		a.Obj.Flags.Set(FlagUnlocked)
		if c.OpensOnUnlock {
			a.Obj.Flags.Set(FlagOpen)
		}
		if c.OnCorrect != nil {
			c.OnCorrect(a)
			return
		}
		a.Allf("~You ~enter a code into the %s. It clicks open!", a.Obj.Key)
		return
	}

	a.Room.logger().Info("wrong code attempt",
		"room", a.Room.ID, "object", a.Obj.Key, "tried", tried)
	if c.OnIncorrect != nil {
		c.OnIncorrect(a, tried)
		return
	}
	a.Charf("The %s doesn't react. Wrong code?", a.Obj.Key)
}

func (c *CodeLock) match(tried string) bool {
	if c.FoldCase {
		return strings.EqualFold(tried, c.Code)
	}
	return tried == c.Code
}
