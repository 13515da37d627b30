package game

// Usable contributes "use <self> on <target>". The target is matched
// by flag, not identity: any object carrying TargetFlag qualifies.
// This is the pairing mechanism that lets one capability serve many
// puzzle combinations (and lets labels lie while flags tell the
// truth).
type Usable struct {
	TargetFlag string

	OnApply       func(a *Action) // target qualified; a.Target is set
	OnCannotApply func(a *Action) // wrong target, or none given
}

func (c *Usable) bind(*Object) map[string]Handler {
	h := map[string]Handler{"use": c.apply}
	return h
}

func (c *Usable) apply(a *Action) {
	if a.Target == nil || c.TargetFlag == "" || !a.Target.Flags.Has(c.TargetFlag) {
		if c.OnCannotApply != nil {
			c.OnCannotApply(a)
			return
		}
		if a.Target == nil {
			a.Charf("Use the %s on what?", a.Obj.Key)
		} else {
			a.Charf("The %s can't be used on the %s.", a.Obj.Key, a.Target.Key)
		}
		return
	}
	if c.OnApply != nil {
		c.OnApply(a)
		return
	}
	a.Charf("Nothing happens.")
}

// Insertable is Usable under the "insert ... into ..." verb; some
// puzzles care about the distinction in fiction (a lever is inserted,
// a sock is used).
type Insertable struct {
	TargetFlag string

	OnInsert       func(a *Action)
	OnCannotInsert func(a *Action)
}

func (c *Insertable) bind(*Object) map[string]Handler {
	return map[string]Handler{"insert": c.insert}
}

func (c *Insertable) insert(a *Action) {
	if a.Target == nil || c.TargetFlag == "" || !a.Target.Flags.Has(c.TargetFlag) {
		if c.OnCannotInsert != nil {
			c.OnCannotInsert(a)
			return
		}
		if a.Target == nil {
			a.Charf("Insert the %s into what?", a.Obj.Key)
		} else {
			a.Charf("The %s doesn't fit into the %s.", a.Obj.Key, a.Target.Key)
		}
		return
	}
	if c.OnInsert != nil {
		c.OnInsert(a)
		return
	}
	a.Charf("Nothing happens.")
}
