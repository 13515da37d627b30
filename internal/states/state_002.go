package states

import (
	"strings"
	"time"

	"github.com/pixil98/go-escaperoom/internal/display"
	"github.com/pixil98/go-escaperoom/internal/game"
)

// Stage two: the automaton has come alive, but it won't do anything
// until somebody calls it by its right name.
func state002() *game.State {
	return &game.State{
		Name:     "automaton",
		Next:     "locked_closet",
		Progress: 18,
		Greeting: greeting("When you get into the cabin, a coin was found up " +
			"in the rafters. It was inserted into the mouth of a strange " +
			"monkey *statue, which has just come alive..."),
		RoomDesc: cabinDesc + `

The monkey *statue sways back and forth on its pedestal, very much
awake, watching everyone with bright glass eyes.`,
		Hints: []string{
			"The monkey seems to be waiting for something. Maybe for being addressed properly?",
			"Names have power. Has anything in the room mentioned a name?",
			"Read the scribbles on the door. 'The Vale of them all...'",
			"Try *speak Vale to monkey.",
		},
		Chatter: &game.Chatter{
			Every: 3 * time.Minute,
			Lines: []string{
				"The monkey statue drums its fingers on its pedestal, expectantly.",
				"The monkey statue opens its mouth, says nothing, and closes it again.",
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

			st := statue(r)
			st.Desc = "The monkey automaton rocks eagerly in place, eyes " +
				"aglow. It seems to be waiting to be addressed."
			st.SignatureHelp = "You might try to *speak <name> to the monkey."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("The automaton leans close and whispers: \"They all " +
					"forget my name. It's written down somewhere, you know.\"")
			}})
			st.Verb("speak", func(a *game.Action) {
				name := strings.TrimSpace(a.Args)
				switch {
				case name == "":
					a.Char("Speak what to the monkey? Try *speak <name> to monkey.")
				case strings.EqualFold(name, "vale"):
					// The statue is persistent, so this verb survives the
					// transition. Once named, Vale just agrees.
					if !a.Room.InState("automaton") {
						a.Char("\"Vale! That's me!\" the automaton agrees, " +
							"and goes back to whatever it was doing.")
						return
					}
					a.Room.Score(2, "named Vale")
					a.All("~You ~speak the name 'Vale' to the monkey.")
					a.Room.Broadcast("The automaton freezes mid-sway. Then it " +
						"erupts in a clattering little dance! \"Vale! Vale! " +
						"That's me! Someone remembered!\"")
					a.Room.Schedule(3*time.Second, func(r *game.Room) {
						r.Broadcast("With a series of creaks, Vale hobbles " +
							"over to the door, turns around and waves its long " +
							"arms: \"Now listen up and let me tell you the " +
							"secret...!\"")
						r.Advance()
					})
				case strings.EqualFold(name, a.Actor.Name):
					a.Room.Achievement(a.Actor, "Messing with your head",
						"Trying to confuse Vale")
					a.Charf("The monkey tilts its head. \"No, no. That's YOUR "+
						"name, %s. Mine is nicer.\"", a.Actor.Name)
				default:
					a.All("~You ~suggest a name to the monkey.")
					a.Charf("The monkey shakes its head sadly. \"%s? No. "+
						"Guess again.\"", display.Capitalize(strings.ToLower(name)))
				}
			})
		},
	}
}
