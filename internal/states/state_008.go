package states

import (
	"strings"
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// The bandit king's jig, as the chest's mechanism expects it. The
// machinery clicks along agreeably for ten moves and only passes
// judgement on the full dance.
var leverJig = []string{
	"right", "left", "up", "right", "left",
	"down", "down", "right", "up", "left",
}

var leverDirections = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
}

// Stage eight: the lever is seated and the chest ticks expectantly.
// The right dance of moves arms the mechanism; a turn of the lever
// springs the lid.
func state008() *game.State {
	return &game.State{
		Name:     "bandits_chest",
		Next:     "rosebush",
		Progress: 76,
		Greeting: greeting("When you get into the cabin, an iron lever was " +
			"just fitted into a strange *chest found under the bed. The chest " +
			"is ticking..."),
		RoomDesc: cabinDesc + `

The bandit *chest sits in the middle of the floor, the iron *lever
jutting from its socket. Inside it, machinery ticks patiently. A worn
brass *plate is riveted to the lid.`,
		Hints: []string{
			"That brass *plate on the lid has something engraved on it.",
			"The 'jig' is a sequence of lever moves. *push lever right, *push lever left, and so on.",
			"Ten moves, then the mechanism decides. A wrong dance just resets - listen for the clunk.",
			"Right, left, up, right, left, down, down, right, up, left. Then *turn lever.",
		},
		Chatter: &game.Chatter{
			Every: 3 * time.Minute,
			Lines: []string{
				"The chest ticks on, patient as a spider.",
				"Vale taps a foot in some remembered rhythm. Tick, tick, tick.",
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
			chest := chestBox(r)

			st := statue(r)
			st.Desc = "Vale sways gently in time with the chest's ticking, " +
				"as if it knows the tune."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("Vale hums a scrap of melody and murmurs: \"The bandit " +
					"king danced his jig before every job. For luck. And for " +
					"locks.\"")
			}})

			plate := game.NewObject("plate", []string{"brass plate", "engraving"},
				&game.Readable{OnRead: func(a *game.Action) {
					a.Room.Score(1, "read the brass plate")
					a.Char("Worn brass, the engraving half gone under years of " +
						"thumbs: 'THE BANDIT KING'S JIG - right to the ale, " +
						"left to the door, up on the table, right once more, " +
						"left to the lass, then down, down to the floor, " +
						"right to the window, up for the moon, and left... " +
						"to bed.'")
				}})
			plate.Desc = "A worn brass plate riveted to the chest's lid, " +
				"covered in tiny engraved script."
			r.AddObject(plate)

			steps := game.NewDeferredAccumulator(leverJig)
			moveLever := func(a *game.Action) {
				dir := strings.ToLower(strings.TrimSpace(a.Args))
				if !leverDirections[dir] {
					a.Char("The lever moves up, down, left or right. Try " +
						"*push lever <direction>.")
					return
				}
				switch steps.Apply(dir) {
				case game.SequenceComplete:
					a.Room.Score(2, "danced the bandit king's jig")
					chest.Flags.Set(flagPrimed)
					a.Allf("~You ~work the lever %s. From deep inside the "+
						"chest comes a new sound: a single, promising CLICK. "+
						"The ticking has stopped.", dir)
				case game.SequenceReset:
					a.Allf("~You ~work the lever %s. The mechanism answers "+
						"with a dull CLUNK and whirs back to its starting "+
						"position. Wrong dance.", dir)
				default:
					a.Allf("~You ~work the lever %s. Click. The machinery "+
						"ticks on.", dir)
				}
			}
			lever := game.NewObject("lever", []string{"iron lever"},
				&game.Rotatable{OnRotate: func(a *game.Action) {
					if !chest.Flags.Has(flagPrimed) {
						a.Char("You put your weight on the lever, but it " +
							"refuses to turn. The mechanism isn't satisfied yet.")
						return
					}
					a.Room.Score(3, "opened the bandit's chest")
					chest.Flags.Set(game.FlagUnlocked)
					chest.Flags.Set(game.FlagOpen)
					a.All("~You ~turn the lever. The chest's lid springs open " +
						"with a bang and a puff of old, spiced air!")
					a.Room.Schedule(2*time.Second, func(r *game.Room) {
						r.Broadcast("Inside the chest: an *urn of grey ashes, " +
							"a silver *locket, a folded *page - and, nested in " +
							"straw, a clay pot holding a withered *rosebush.")
						r.Advance()
					})
				}})
			lever.Desc = "The iron lever stands proud of the chest's socket. " +
				"It will push in any of the four directions, and it looks " +
				"like it could be turned, given a reason."
			lever.SignatureHelp = "*push lever <up, down, left, right>, or " +
				"*turn lever."
			lever.Verb("push", moveLever)
			lever.Verb("pull", moveLever)
			r.AddObject(lever)
		},
	}
}
