package game

// Single-verb sensory and interaction capabilities. Each contributes
// exactly one verb; a nil hook still yields a user-visible default
// rather than silence.

type Feelable struct{ OnFeel Handler }

func (c *Feelable) bind(*Object) map[string]Handler {
	return map[string]Handler{"feel": fallback(c.OnFeel, "It feels about like you'd expect.")}
}

type Smellable struct{ OnSmell Handler }

func (c *Smellable) bind(*Object) map[string]Handler {
	return map[string]Handler{"smell": fallback(c.OnSmell, "It doesn't smell like much.")}
}

type Listenable struct{ OnListen Handler }

func (c *Listenable) bind(*Object) map[string]Handler {
	return map[string]Handler{"listen": fallback(c.OnListen, "You hear nothing unusual.")}
}

type Rotatable struct{ OnRotate Handler }

func (c *Rotatable) bind(*Object) map[string]Handler {
	h := fallback(c.OnRotate, "You turn it around. Nothing new on the other side.")
	return map[string]Handler{"rotate": h, "turn": h}
}

// Edible contributes eat. With OneBite set, only the first bite runs
// the hook; later attempts get the consumed message.
type Edible struct {
	OneBite    bool
	OnEat      Handler
	ConsumedBy string // set after the one bite, for the rejection text
}

const flagConsumed = "consumed"

func init() { RegisterFlags(flagConsumed) }

func (c *Edible) bind(*Object) map[string]Handler {
	return map[string]Handler{"eat": c.eat}
}

func (c *Edible) eat(a *Action) {
	if c.OneBite && a.Obj.Flags.Has(flagConsumed) {
		a.Charf("There is nothing left of the %s.", a.Obj.Key)
		return
	}
	if c.OneBite {
		a.Obj.Flags.Set(flagConsumed)
	}
	if c.OnEat != nil {
		c.OnEat(a)
		return
	}
	a.Allf("~You ~nibble on the %s.", a.Obj.Key)
}

type Drinkable struct {
	OneSip  bool
	OnDrink Handler
}

func (c *Drinkable) bind(*Object) map[string]Handler {
	return map[string]Handler{"drink": c.drink}
}

func (c *Drinkable) drink(a *Action) {
	if c.OneSip && a.Obj.Flags.Has(flagConsumed) {
		a.Charf("The %s is empty.", a.Obj.Key)
		return
	}
	if c.OneSip {
		a.Obj.Flags.Set(flagConsumed)
	}
	if c.OnDrink != nil {
		c.OnDrink(a)
		return
	}
	a.Allf("~You ~take a sip from the %s.", a.Obj.Key)
}

func fallback(h Handler, text string) Handler {
	return func(a *Action) {
		if h != nil {
			h(a)
			return
		}
		a.Char(text)
	}
}
