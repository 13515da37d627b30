package states

import (
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// chestBox is the iron-bound chest hiding under the bed. It persists
// from its discovery until the cabin is left behind.
func chestBox(r *game.Room) *game.Object {
	return ensure(r, "chest", func() *game.Object {
		o := game.NewObject("chest", []string{"iron chest", "small chest"},
			&game.Feelable{OnFeel: func(a *game.Action) {
				a.Char("Cold iron bands over dark wood. Heavier than it has " +
					"any right to be.")
			}})
		o.Flags.Set(flagLeverSlot)
		o.DescFunc = func(a *game.Action) string {
			bed := a.Room.Object("bed")
			if bed == nil || !bed.Flags.Has(flagChestOut) {
				return "If there is a chest in this cabin, you haven't laid " +
					"eyes on it yet. The shadows under the *bed look deep, though."
			}
			if a.Obj.Flags.Has(game.FlagOpen) {
				return "The bandit chest stands open, its lid thrown back."
			}
			return "A small, heavy chest of dark wood and iron bands, dragged " +
				"out from under the bed. It has no keyhole - only a square " +
				"socket in the front, about the size of a lever's shaft."
		}
		return o
	})
}

// Stage seven: the cubby behind the stone holds an iron lever, and the
// chest under the bed has a socket exactly its size.
func state007() *game.State {
	return &game.State{
		Name:     "chimney_cache",
		Next:     "bandits_chest",
		Progress: 59,
		Greeting: greeting("When you get into the cabin, a loose stone in the " +
			"chimney was just pushed aside, revealing a hidden *cubby..."),
		RoomDesc: cabinDesc + `

Behind the curtains' gloom, the chimney now gapes where the loose
stone swung aside: a hidden *cubby, and something angular glinting
inside it.`,
		Hints: []string{
			"Have a look in that *cubby behind the stone.",
			"An iron lever, but nothing here to pull. Unless something else in the cabin has a socket for it.",
			"Has anyone knelt down and checked under the *bed?",
			"Drag the chest out (kneel by the bed), *take lever, then *insert lever into chest.",
		},
		Chatter: valeChatter(),
		Init: func(r *game.Room) {
			door(r)
			chair(r)
			bed(r)
			windows(r)
			fireplace(r)
			damper(r)
			pie(r)
			potionFlask(r)
			chestBox(r)

			st := statue(r)
			st.Desc = "Vale cranes its neck at the open cubby, vibrating " +
				"with excitement."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("Vale whispers: \"The bandit king kept his chest close " +
					"while he slept. Wouldn't you?\"")
			}})

			cubby := game.NewObject("cubby", []string{"hidey-hole", "hole"})
			cubby.Verb("look", func(a *game.Action) {
				lever := a.Room.Object("lever")
				if lever != nil && lever.Flags.Has(flagTaken) {
					a.Char("The cubby is empty now, except for dust and a " +
						"faint smell of cold iron.")
					return
				}
				a.Char("A stone-lined cubby inside the chimney wall, dry as " +
					"bone. An iron *lever rests inside it, worked at one end " +
					"into a square shaft.")
			})
			r.AddObject(cubby)

			lever := game.NewObject("lever", []string{"iron lever"},
				&game.Insertable{
					TargetFlag: flagLeverSlot,
					OnInsert: func(a *game.Action) {
						if !a.Obj.Flags.Has(flagTaken) {
							a.Char("The lever is still up in the cubby.")
							return
						}
						bed := a.Room.Object("bed")
						if bed == nil || !bed.Flags.Has(flagChestOut) {
							a.Char("Insert it into what? You haven't found " +
								"anything with a socket that size.")
							return
						}
						a.Room.Score(2, "fitted the lever to the chest")
						a.All("~You ~slide the lever's square shaft into the " +
							"socket on the chest. It seats with a deep, " +
							"satisfied CLACK.")
						a.Room.Schedule(2*time.Second, func(r *game.Room) {
							r.Broadcast("Inside the chest, machinery wakes: a " +
								"slow ticking, like something counting. The " +
								"lever stands proud of the socket, waiting to " +
								"be worked.")
							r.Advance()
						})
					},
				},
				&game.Feelable{})
			lever.Desc = "An iron lever as long as your forearm, one end " +
				"worked into a square shaft. Bandit-king sized."
			lever.Verb("take", func(a *game.Action) {
				if a.Obj.Flags.Has(flagTaken) {
					a.Char("You already have the lever down from the cubby.")
					return
				}
				if !a.Room.CanReach(a.Actor, game.PosClimb, flagReachStone) {
					a.Char("The lever rests in the cubby, up inside the " +
						"chimney. You'd need to get up there again.")
					return
				}
				a.Obj.Flags.Set(flagTaken)
				a.Room.Score(2, "retrieved the lever")
				a.All("~You ~reach into the cubby and ~lift out a heavy iron " +
					"lever, cold as a winter well.")
			})
			r.AddObject(lever)
		},
	}
}
