package states

import (
	"strconv"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// Vale's story, told one part per listen. Each part hides one digit
// of the padlock code, in order.
var valeStory = []string{
	"Vale clears its throat, a sound like a spoon in a coffee grinder: " +
		"\"Long ago, FOUR friends lived in this village: the Magus, the " +
		"Blacksmith, the Baker, and me. Listen on!\"",
	"Vale continues: \"THREE of them entered the great pie contest. The " +
		"fourth only baked. Listen on!\"",
	"Vale leans in: \"TWO of them loved the same maiden. It ended badly, " +
		"as such things do. Listen on!\"",
	"Vale whispers: \"In the end, only ONE remained in the village. She " +
		"wears the bells now. That's the whole story - and the whole " +
		"secret, if you were counting.\"",
}

// Stage three: the closet is padlocked; Vale's tale counts out the
// combination for anyone patient enough to listen.
func state003() *game.State {
	return &game.State{
		Name:     "locked_closet",
		Next:     "childmaker_potion",
		Progress: 25,
		Greeting: greeting("When you get into the cabin, the monkey statue " +
			"'Vale' has just come alive, hobbled over to the door, and begun " +
			"to tell a story..."),
		RoomDesc: cabinDesc + `

In the shadow-side corner stands a large antique *closet, its double
doors held shut by a heavy brass *padlock with four number wheels.
Vale stands by the door, clearly bursting to tell its story.`,
		Hints: []string{
			"Vale wants to tell you something. *listen to vale - more than once.",
			"The story counts things. Four friends, three contestants...",
			"Four digits, counting down. Try *enter 4321 on padlock.",
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

			st := statue(r)
			st.Desc = "Vale stands guard by the door, waving its long arms " +
				"theatrically whenever anyone looks its way."
			st.SignatureHelp = "*listen to vale to hear its story."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				idx, _ := strconv.Atoi(a.Obj.Flags.Value(flagStory))
				if idx >= len(valeStory) {
					idx = len(valeStory) - 1
				} else {
					a.Obj.Flags.SetValue(flagStory, strconv.Itoa(idx+1))
				}
				if idx == len(valeStory)-1 {
					a.Room.Score(1, "listened to Vale's story")
				}
				a.All("~You ~listen to Vale's story.")
				a.Char(valeStory[idx])
			}})

			closet := game.NewObject("closet", []string{"cupboard"},
				&game.Openable{
					UnlockFlag: game.FlagUnlocked,
					OnLocked: func(a *game.Action) {
						a.Char("The closet doors rattle but hold. The brass " +
							"padlock is doing its job.")
					},
				})
			closet.Persistent = true
			closet.Desc = "A large antique closet of lacquered hardwood. " +
				"Whatever the Jester keeps in there, the *padlock suggests " +
				"she cares about it."
			r.AddObject(closet)

			padlock := game.NewObject("padlock", []string{"lock", "brass padlock"},
				&game.CodeLock{
					Code:          "4321",
					Enterable:     true,
					OpensOnUnlock: true,
					OnCorrect: func(a *game.Action) {
						a.Room.Score(2, "unlocked the padlock")
						closet := a.Room.Object("closet")
						if closet != nil {
							closet.Flags.Set(game.FlagUnlocked)
							closet.Flags.Set(game.FlagOpen)
						}
						a.All("~You ~line up 4-3-2-1 on the padlock. It snaps " +
							"open, and the closet doors swing wide!")
						a.Room.Advance()
					},
					OnIncorrect: func(a *game.Action, tried string) {
						a.Charf("You set the wheels to %s. Nothing. The "+
							"padlock seems unimpressed.", tried)
					},
				})
			padlock.Desc = "A heavy brass padlock with four little number " +
				"wheels, currently showing 0-0-0-0."
			padlock.SignatureHelp = "*enter <code> on padlock to try a combination."
			r.AddObject(padlock)
		},
	}
}
