package game

import (
	"sort"
	"strings"
)

// MoveSpot is one named location a movable surface can stand at, and
// the reach flags that location enables. All reach flags across all
// spots are mutually exclusive: moving the surface clears every reach
// flag and sets exactly the ones valid for the new spot.
type MoveSpot struct {
	ReachFlags []string
	Text       string // room message, ~-markup
}

// Movable relocates an object among a fixed named-position set:
// "move chair to fireplace".
type Movable struct {
	Spots   map[string]MoveSpot
	Start   string
	current string

	// OnMove runs after the relocation and flag swap.
	OnMove func(a *Action, spot string)
}

const flagLocation = "location"

func init() { RegisterFlags(flagLocation) }

func (c *Movable) bind(obj *Object) map[string]Handler {
	if c.Start != "" {
		c.current = c.Start
		obj.Flags.SetValue(flagLocation, c.Start)
		if spot, ok := c.Spots[c.Start]; ok {
			for _, f := range spot.ReachFlags {
				obj.Flags.Set(f)
			}
		}
	}
	return map[string]Handler{"move": c.move}
}

// Current returns the spot the surface stands at.
func (c *Movable) Current() string { return c.current }

func (c *Movable) move(a *Action) {
	dest := a.Args
	spot, ok := c.Spots[dest]
	if !ok {
		a.Charf("You can't move the %s there. Try: %s.", a.Obj.Key, spotNames(c.Spots))
		return
	}
	if dest == c.current {
		a.Charf("The %s is already by the %s.", a.Obj.Key, dest)
		return
	}

	// Anyone standing on the surface gets off before it moves.
	for id, pos := range a.Room.positions {
		if pos.ObjKey == a.Obj.Key {
			if ch := a.Room.chars[id]; ch != nil {
				a.Room.setPosition(ch, nil, PosNone)
			}
		}
	}

	for _, s := range c.Spots {
		for _, f := range s.ReachFlags {
			a.Obj.Flags.Clear(f)
		}
	}
	for _, f := range spot.ReachFlags {
		a.Obj.Flags.Set(f)
	}
	c.current = dest
	a.Obj.Flags.SetValue(flagLocation, dest)

	if spot.Text != "" {
		a.All(spot.Text)
	} else {
		a.Allf("~You ~move the %s over to the %s.", a.Obj.Key, dest)
	}
	if c.OnMove != nil {
		c.OnMove(a, dest)
	}
}

func spotNames(spots map[string]MoveSpot) string {
	names := make([]string, 0, len(spots))
	for n := range spots {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
