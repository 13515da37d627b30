package states

import (
	"strconv"
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// Stage five: the potion is made, but the wind outside refuses to
// turn. Vale insists the wind spirit is shy and won't change course
// while anyone watches it through the glass.
func state005() *game.State {
	return &game.State{
		Name:     "wind_turns",
		Next:     "dark_room",
		Progress: 43,
		Greeting: greeting("When you get into the cabin, the childmaker potion " +
			"was just brewed. Outside, the wind is steady from the north, and " +
			"the *scarecrow in the field has its back turned..."),
		RoomDesc: cabinDesc + `

The childmaker *potion swirls in its flask. Outside the *windows the
wind blows steadily from the north. Vale keeps glancing at the glass
and muttering about shy spirits.`,
		Hints: []string{
			"Vale keeps muttering about the wind. *listen to vale.",
			"The wind spirit won't turn while it's being watched. Two windows, two watchers' views.",
			"There are curtain bars above each window. Something cloth-like would hang nicely from them.",
			"The *blanket and the *bathtowel. *use blanket on windows, then the towel.",
		},
		Chatter: valeChatter(),
		Init: func(r *game.Room) {
			door(r)
			chair(r)
			bed(r)
			fireplace(r)
			damper(r)
			pie(r)
			potionFlask(r)

			win := windows(r)
			win.Flags.Set(flagWindowCoverable)

			st := statue(r)
			st.Desc = "Vale paces between the windows, wringing its metal " +
				"hands and glancing outside."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("Vale leans close: \"The wind spirit is a shy one. It " +
					"will not turn while eyes are on it. Shutter the glass, " +
					"curtain the glass, and the wind will do as winds must.\"")
			}})

			scarecrow := game.NewObject("scarecrow", []string{})
			scarecrow.Verb("look", func(a *game.Action) {
				a.Char("Out in the field the scarecrow hangs on its pole, " +
					"back turned, coat snapping in the steady north wind.")
			})
			r.AddObject(scarecrow)

			blanket := game.NewObject("blanket", []string{"quilt", "patchwork blanket"},
				&game.Usable{TargetFlag: flagWindowCoverable, OnApply: coverWindow},
				&game.Feelable{OnFeel: func(a *game.Action) {
					a.Char("Soft, heavy wool. It would block out a lot of light.")
				}})
			blanket.Desc = "The patchwork blanket from the Jester's bed, big " +
				"enough to cover a window with room to spare."
			r.AddObject(blanket)

			towel := game.NewObject("bathtowel", []string{"towel", "bath towel"},
				&game.Usable{TargetFlag: flagWindowCoverable, OnApply: coverWindow},
				&game.Smellable{OnSmell: func(a *game.Action) {
					a.Char("Lavender soap, mostly.")
				}})
			towel.Desc = "A worn bathtowel hanging on a peg by the fireplace. " +
				"Thin, but wide."
			r.AddObject(towel)
		},
	}
}

// coverWindow hangs one cloth over one window; the second covering
// darkens the cabin and lets the wind turn.
func coverWindow(a *game.Action) {
	if a.Obj.Flags.Has(flagCovered) {
		a.Charf("The %s is already hanging over a window.", a.Obj.Key)
		return
	}
	a.Obj.Flags.Set(flagCovered)

	count, _ := strconv.Atoi(a.Target.Flags.Value(flagCovered))
	count++
	a.Target.Flags.SetValue(flagCovered, strconv.Itoa(count))

	if count < 2 {
		a.Allf("~You ~drape the %s over the curtain bar of the sun-side "+
			"window. The cabin dims by half. One window to go.", a.Obj.Key)
		return
	}

	a.Room.Score(2, "covered both windows")
	a.Allf("~You ~hang the %s over the last window. The cabin sinks into "+
		"a deep, dusty gloom.", a.Obj.Key)
	a.Room.Schedule(3*time.Second, func(r *game.Room) {
		r.Broadcast("Outside, the steady drone of the wind falters... " +
			"shifts... and picks up again from a new quarter. Through a gap " +
			"in the cloth you glimpse the scarecrow - it has turned to face " +
			"the cabin. Somewhere above, the chimney begins to moan.")
		r.Advance()
	})
}
