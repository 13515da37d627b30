package states

import (
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// Stage six: curtained gloom. With the wind turned, the chimney has
// begun to moan, and somewhere up inside it a stone is rattling loose.
func state006() *game.State {
	return &game.State{
		Name:     "dark_room",
		Next:     "chimney_cache",
		Progress: 52,
		Greeting: greeting("When you get into the cabin, the windows were just " +
			"covered over and the wind turned. The chimney has started moaning, " +
			"and something up inside it rattles..."),
		RoomDesc: cabinDesc + `

Makeshift curtains cover both windows and the cabin lies in gloom.
The turned wind moans in the chimney, and with every gust something
rattles up there, like a loose tooth. The *fireplace is the loudest
thing in the room.`,
		Hints: []string{
			"Something is rattling up inside the chimney. You'd have to get up there to find it.",
			"The *chair by the fireplace would make a fine step. And the chimney only sings when it can breathe.",
			"Is the *damper open? The draft is what shakes the stone loose.",
			"Chair to the fireplace, *climb it, damper open, then *push stone.",
		},
		Chatter: &game.Chatter{
			Every: 3 * time.Minute,
			Lines: []string{
				"The wind moans down the chimney. Something up there answers with a rattle.",
				"Vale shivers theatrically in the gloom. \"Spooky,\" it says, approvingly.",
			},
		},
		Init: func(r *game.Room) {
			door(r)
			chair(r)
			bed(r)
			windows(r)
			fireplace(r)
			damper(r)
			pie(r)
			potionFlask(r)

			st := statue(r)
			st.Desc = "Vale's glass eyes glow faintly in the gloom, turned " +
				"up toward the chimney."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("Vale murmurs: \"The bandit king hid his takings high " +
					"and dry, they say. High... and dry.\"")
			}})

			scarecrow := game.NewObject("scarecrow", []string{})
			scarecrow.Verb("look", func(a *game.Action) {
				a.Char("Through the gap in the curtains: the scarecrow faces " +
					"the cabin now, coat pressed flat against its chest by " +
					"the turned wind. You decide not to look at it for long.")
			})
			r.AddObject(scarecrow)

			stone := game.NewObject("stone", []string{"loose stone", "chimney stone"},
				&game.Feelable{OnFeel: func(a *game.Action) {
					if !a.Room.CanReach(a.Actor, game.PosClimb, flagReachStone) {
						a.Char("The rattling stone is up inside the chimney, " +
							"well above your head.")
						return
					}
					a.Char("Reaching up into the flue, your fingers find the " +
						"stone. It shifts under them, loose in its mortar.")
				}})
			stone.Desc = "You can't see it, but you can hear it: a loose " +
				"stone somewhere up inside the chimney, rattling with every gust."
			stone.Verb("push", func(a *game.Action) {
				if !a.Room.CanReach(a.Actor, game.PosClimb, flagReachStone) {
					a.Char("You can't reach the stone from down here. " +
						"Something sturdy to stand on, by the fireplace, would help.")
					return
				}
				damper := a.Room.Object("damper")
				if damper == nil || !damper.Flags.Has(game.FlagOpen) {
					a.Char("You push, but with the flue shut the air holds " +
						"the stone pressed in its seat. It won't budge until " +
						"the chimney can breathe.")
					return
				}
				a.Room.Score(2, "pushed the loose stone")
				a.All("~You ~brace against the flue and ~push. With a grinding " +
					"of old mortar the stone swings inward!")
				a.Room.Schedule(2*time.Second, func(r *game.Room) {
					r.Broadcast("Behind the stone gapes a small hidden cubby, " +
						"breathing cold air and old dust into the room.")
					r.Advance()
				})
			})
			stone.Verb("pull", func(a *game.Action) {
				if !a.Room.CanReach(a.Actor, game.PosClimb, flagReachStone) {
					a.Char("You can't reach the stone from down here.")
					return
				}
				a.Room.Score(1, "pulled at the loose stone")
				a.Char("You get two fingers on the edge and pull. The stone " +
					"tips toward you a hair, then settles back. It was set to " +
					"swing the other way.")
			})
			r.AddObject(stone)
		},
	}
}
