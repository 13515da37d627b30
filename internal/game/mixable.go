package game

import "strings"

// MixText is the flavor an ingredient contributes when mixed in:
// what it is called, and the color/smell the mix takes on.
type MixText struct {
	Ingredient string
	Color      string
	Smell      string
	Extra      string
}

// Mixable turns an object into an ordered-ingredient mixer (the
// alchemic bowl, the fertilizer barrel). Ingredients are identified
// by a flag carrying IngredientPrefix, not by object identity, so any
// physical item wearing the right flag fills a recipe slot. Labels
// lie; flags tell the truth.
type Mixable struct {
	// MixerFlag marks this object as a valid target for Usable
	// ingredients.
	MixerFlag string

	// Recipe is the ordered list of required ingredient flags.
	Recipe []string

	// IngredientPrefix is the namespace ingredient flags share, e.g.
	// "childmaker_ingredient_".
	IngredientPrefix string

	OnMix     func(a *Action, txt MixText) // a correct step, not yet complete
	OnFailure func(a *Action)              // divergence; accumulator already zeroed
	OnSuccess func(a *Action)              // full match; fired exactly once

	acc  *Accumulator
	done bool
}

func (c *Mixable) bind(obj *Object) map[string]Handler {
	if c.MixerFlag != "" {
		obj.Flags.Set(c.MixerFlag)
	}
	c.acc = NewAccumulator(c.Recipe)
	// Mixable contributes no player verbs of its own: ingredients
	// reach it through their Usable/Insertable hooks calling Mix.
	return nil
}

// Mix applies one ingredient object to the mixer. Called by the
// ingredient's apply hook with the mixer as a.Obj swapped in.
func (c *Mixable) Mix(a *Action, ingredient *Object, txt MixText) {
	if c.done {
		a.Charf("The %s has already done its work.", a.Obj.Key)
		return
	}

	flag := c.ingredientFlag(ingredient)
	if flag == "" {
		a.Charf("The %s doesn't seem to belong in the %s.", ingredient.Key, a.Obj.Key)
		return
	}

	switch c.acc.Apply(flag) {
	case SequenceComplete:
		c.done = true
		if c.OnSuccess != nil {
			c.OnSuccess(a)
		}
	case SequenceReset:
		a.Room.logger().Info("mix failed",
			"room", a.Room.ID, "mixer", a.Obj.Key, "ingredient", flag)
		if c.OnFailure != nil {
			c.OnFailure(a)
		} else {
			a.Allf("The %s hisses and boils over. Time to start again.", a.Obj.Key)
		}
	default:
		if c.OnMix != nil {
			c.OnMix(a, txt)
		} else {
			a.Allf("~You ~mix %s into the %s.", txt.Ingredient, a.Obj.Key)
		}
	}
}

// ApplyIngredient is the ingredient-side entry point, for Usable
// hooks: a.Obj is the ingredient and a.Target the mixer.
func (c *Mixable) ApplyIngredient(a *Action, txt MixText) {
	ma := *a
	ma.Obj = a.Target
	c.Mix(&ma, a.Obj, txt)
}

// ResetMix wipes the working list, e.g. when the bowl is cleaned out
// deliberately.
func (c *Mixable) ResetMix() {
	if !c.done {
		c.acc.Reset()
	}
}

// Steps returns how many correct ingredients are currently applied.
func (c *Mixable) Steps() int { return c.acc.Len() }

// ingredientFlag finds the first flag on the ingredient within this
// mixer's namespace.
func (c *Mixable) ingredientFlag(ingredient *Object) string {
	for _, name := range ingredient.Flags.Names() {
		if strings.HasPrefix(name, c.IngredientPrefix) {
			return name
		}
	}
	return ""
}
