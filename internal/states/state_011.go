package states

import (
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// Stage eleven: a blackened key lies in the fireplace ashes, and the
// front door has been waiting for it all day.
func state011() *game.State {
	return &game.State{
		Name:     "open_door",
		Next:     "questions",
		Progress: 100,
		Greeting: greeting("When you get into the cabin, the rosebush was just " +
			"burned in the fireplace. Something metallic lies in the fresh " +
			"*ashes..."),
		RoomDesc: cabinDesc + `

Sweet-smelling smoke still hangs by the rafters. In the fireplace, a
bed of fresh *ashes - and in the ashes, a blackened iron *key.`,
		Hints: []string{
			"There's a *key in those ashes. Careful, they may still be hot.",
			"One locked thing has been ignoring you all day: the front *door.",
			"*use key on door, *open door, and then... *leave.",
		},
		Chatter: &game.Chatter{
			Every: 3 * time.Minute,
			Lines: []string{
				"Vale stands at the door, hopping from foot to foot.",
				"Outside, faint and far, a crowd is gathering. The contest.",
			},
		},
		Init: func(r *game.Room) {
			d := door(r)
			chair(r)
			bed(r)
			windows(r)
			fireplace(r)
			damper(r)
			pie(r)
			chestBox(r)

			st := statue(r)
			st.Desc = "Vale waits by the door like a dog that has heard the " +
				"word 'walk'."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("Vale whispers: \"When you get out - WHEN - she will " +
					"have questions for you. She always does. Answer like " +
					"you were paying attention.\"")
			}})

			ashes := game.NewObject("ashes", []string{"ash", "ash bed"},
				&game.Feelable{OnFeel: func(a *game.Action) {
					a.Char("Still warm, feather-soft. The key's outline is " +
						"easy to find by touch.")
				}})
			ashes.Desc = "A bed of fine, still-warm ashes where the rosebush " +
				"burned. The blackened *key lies half sunk in them."
			r.AddObject(ashes)

			key := game.NewObject("key", []string{"iron key", "blackened key"},
				&game.Usable{
					TargetFlag: flagCabinDoor,
					OnApply: func(a *game.Action) {
						if !a.Obj.Flags.Has(flagTaken) {
							a.Char("The key is still lying in the ashes.")
							return
						}
						if a.Target.Flags.Has(game.FlagUnlocked) {
							a.Char("The door is already unlocked.")
							return
						}
						a.Room.Score(2, "unlocked the front door")
						a.Target.Flags.Set(game.FlagUnlocked)
						a.All("~You ~slide the blackened key into the front " +
							"door's lock and ~turn it. The bolt draws back " +
							"with the sweetest sound you've heard all day.")
					},
				},
				&game.Feelable{})
			key.Desc = "A heavy iron key, blackened by the fire, still " +
				"ticking faintly as it cools."
			key.Verb("take", func(a *game.Action) {
				if a.Obj.Flags.Has(flagTaken) {
					a.Char("You already fished the key out of the ashes.")
					return
				}
				a.Obj.Flags.Set(flagTaken)
				a.Room.Score(2, "fished the key from the ashes")
				a.All("~You ~snatch the key out of the warm ashes, juggling " +
					"it from hand to hand until it cools enough to hold.")
			})
			r.AddObject(key)

			d.Verb("leave", func(a *game.Action) {
				if !a.Obj.Flags.Has(game.FlagOpen) {
					a.Char("The door is still closed.")
					return
				}
				if a.Obj.Flags.Has(flagDeparted) {
					a.Char("You are already on your way out.")
					return
				}
				a.Obj.Flags.Set(flagDeparted)
				a.Room.Score(1, "left the cabin")
				a.All("~You ~step out through the front door, into sunlight " +
					"and wind!")
				a.Room.Cinematic(4*time.Second,
					"The rest of the cabin's prisoners crowd out after you. "+
						"Vale comes last, pulling the door shut behind it with "+
						"ceremony.",
					"Down the hill, the village green is packed: bunting, "+
						"trestle tables, and pies beyond counting. The contest "+
						"has not started. You made it.",
					"At the gate stands the Jester, bells and all, grinning "+
						"like sunrise. \"Took you long enough,\" she says. "+
						"\"Walk with me. I have questions for the worthy.\"")
				a.Room.Schedule(12*time.Second, func(r *game.Room) {
					r.Advance()
				})
			})
		},
		Clean: func(r *game.Room) {
			// The cabin stays behind; the epilogue plays outdoors.
			for _, k := range []string{
				"door", "chair", "bed", "windows", "fireplace", "damper",
				"pie", "statue", "closet", "chest", "potion",
			} {
				r.RemoveObject(k)
			}
		},
	}
}
