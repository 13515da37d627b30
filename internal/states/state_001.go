package states

import (
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// Stage one: locked in. A coin glitters up in the rafters above the
// door, and the monkey statue's mouth has a coin-sized slot in it.
func state001() *game.State {
	return &game.State{
		Name:     "start",
		Next:     "automaton",
		Progress: 9,
		Greeting: greeting("You have just arrived. The cabin door clicked " +
			"shut behind you, and the Jester's laughter is fading away outside."),
		RoomDesc: cabinDesc + `

Up among the *rafters above the door, something small glitters.`,
		Hints: []string{
			"That glitter up in the rafters looks interesting. Too high to reach from the floor, though.",
			"The *chair can be moved around. Try *move chair to door.",
			"Climb the chair while it stands by the door, then *take coin.",
			"A coin fits in a slot. The monkey statue's mouth, perhaps? *insert coin into statue.",
		},
		Init: func(r *game.Room) {
			door(r)
			chair(r)
			bed(r)
			windows(r)
			fireplace(r)
			damper(r)
			pie(r)
			st := statue(r)
			st.Verb("listen", func(a *game.Action) {
				a.Char("The statue is silent. Something rattles faintly " +
					"inside it when you lean close, like a hungry stomach.")
			})

			rafters := game.NewObject("rafters", []string{"rafter", "beams"})
			rafters.Desc = "Rough-hewn beams holding up the roof. Above the " +
				"door, a small *coin rests in a gap between two of them."
			rafters.Verb("look", func(a *game.Action) {
				if a.Room.CanReach(a.Actor, game.PosClimb, flagReachCoin) {
					a.Room.Score(1, "looked at rafters from on high")
					a.Char("From up here you can see along the whole rafter " +
						"row. Dust, a bird's nest, and that coin, well within reach.")
					return
				}
				a.Char(a.Obj.Describe(a))
			})
			r.AddObject(rafters)

			coin := game.NewObject("coin", []string{"copper coin"},
				&game.Insertable{
					TargetFlag: flagStatueMouth,
					OnInsert: func(a *game.Action) {
						if !a.Obj.Flags.Has(flagTaken) {
							a.Char("You don't have the coin; it is still up " +
								"in the rafters.")
							return
						}
						a.Room.Score(2, "inserted coin in automaton")
						a.All("~You ~drop the coin into the monkey's mouth. " +
							"It rattles down into the thing's belly...")
						a.Room.Schedule(2*time.Second, func(r *game.Room) {
							r.Broadcast("Deep inside the statue something " +
								"whirs, clicks and catches. The monkey's glass " +
								"eyes light up!")
							r.Advance()
						})
					},
				},
				&game.Rotatable{OnRotate: func(a *game.Action) {
					a.Room.Score(1, "seeing the back of the coin")
					a.Char("The back of the coin shows a grinning jester's " +
						"head. Of course it does.")
				}})
			coin.Desc = "A worn copper coin. One side shows a pie, the other " +
				"you haven't looked at."
			coin.Verb("take", func(a *game.Action) {
				if a.Obj.Flags.Has(flagTaken) {
					a.Char("The coin is already retrieved; it lies ready on " +
						"the table.")
					return
				}
				if !a.Room.CanReach(a.Actor, game.PosClimb, flagReachCoin) {
					a.Char("The coin sits in the rafters above the door, far " +
						"out of reach. You'd need something to stand on, in " +
						"the right place.")
					return
				}
				a.Obj.Flags.Set(flagTaken)
				a.All("~You ~stretch out from the chair and ~pry the coin " +
					"loose from the rafters!")
			})
			r.AddObject(coin)

			scarecrow := game.NewObject("scarecrow", []string{})
			scarecrow.Verb("look", func(a *game.Action) {
				a.Room.Score(3, "saw the scarecrow's sign")
				a.Char("Out in the field stands a scarecrow in a ragged coat. " +
					"It holds a painted sign you can just make out: 'FEED THE " +
					"HUNGRY ONE'. Its back is turned against the wind.")
			})
			r.AddObject(scarecrow)
		},
	}
}
