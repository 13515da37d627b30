package states

import (
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// Stage ten: the reborn rosebush grips a piece of metal in its roots,
// and no amount of prying will loosen a grip that young and strong.
// Fire, on the other hand, loosens everything.
func state010() *game.State {
	return &game.State{
		Name:     "burn_the_roses",
		Next:     "open_door",
		Progress: 93,
		Greeting: greeting("When you get into the cabin, the rosebush from the " +
			"chest was just brought back to furious bloom. Its roots grip " +
			"something made of dark metal..."),
		RoomDesc: cabinDesc + `

The *rosebush stands in full, impossible bloom, roses the color of
embers. Deep in the pot its young roots clench a piece of dark metal
in an unbreakable fist. A box of *matches has appeared on the mantel,
which feels like a suggestion.`,
		Hints: []string{
			"The roots won't give up that metal while they live.",
			"Burning the bush where it stands would torch the cabin. There is one place in here built for fire.",
			"Remember the smoke has to go somewhere. Check the *damper.",
			"*move rosebush to fireplace, open the damper, then *burn rosebush.",
		},
		Chatter: &game.Chatter{
			Every: 3 * time.Minute,
			Lines: []string{
				"A petal drops from the rosebush. Another bud opens to replace it.",
				"Vale sniffs at a rose, sneezes a little puff of dust, and looks embarrassed.",
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
			chestBox(r)

			st := statue(r)
			st.Desc = "Vale watches the rosebush with open admiration. " +
				"\"She'd never have let it die for good,\" it murmurs."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("Vale says quietly: \"Roses were the maiden's favorite. " +
					"Two men knew that. Only one of them worked with fire.\"")
			}})

			mv := &game.Movable{
				Start: "floor",
				Spots: map[string]game.MoveSpot{
					"floor": {Text: "~You ~set the rosebush's pot back down " +
						"in the middle of the floor."},
					"fireplace": {Text: "~You ~heave the pot over and ~wrestle " +
						"it into the fireplace. The bush fills the hearth, " +
						"roses pressed against the sooty stone."},
				},
			}

			burn := func(a *game.Action) {
				bush := a.Room.Object("rosebush")
				if bush == nil {
					return
				}
				if mv.Current() != "fireplace" {
					a.Char("Not here. One spark in the middle of the floor " +
						"and the whole cabin goes up with you in it. The " +
						"fireplace exists for a reason.")
					return
				}
				damper := a.Room.Object("damper")
				if damper == nil || !damper.Flags.Has(game.FlagOpen) {
					a.Char("You strike a match, then stop. With the damper " +
						"shut, the smoke would have nowhere to go but your " +
						"lungs. Open the flue first.")
					return
				}
				a.Room.Score(2, "burned the rosebush")
				fp := a.Room.Object("fireplace")
				if fp != nil {
					fp.Flags.Set(flagBurning)
				}
				a.All("~You ~strike a match and ~touch it to the dry heart " +
					"of the bush. The roses catch all at once, a WHUMP of " +
					"sweet-smelling flame roaring up the open flue!")
				a.Room.Schedule(3*time.Second, func(r *game.Room) {
					r.Broadcast("The blaze burns hot, fast, and is gone. In " +
						"the settling ashes something small and metallic " +
						"slides free of the crumbled rootball and clinks " +
						"against the grate.")
					r.Advance()
				})
			}

			rosebush := game.NewObject("rosebush", []string{"rose bush", "roses", "bush", "pot"},
				mv,
				&game.Smellable{OnSmell: func(a *game.Action) {
					a.Char("The scent is dizzying. A whole June crammed into " +
						"one clay pot.")
				}},
				&game.Feelable{OnFeel: func(a *game.Action) {
					a.Char("You work a hand down to the rootball and pull at " +
						"the metal. The roots hold it like a miser's fist. " +
						"Nothing short of killing the plant will open them, " +
						"and it has already come back from dead once.")
				}})
			rosebush.Flags.Set(flagBurnable)
			rosebush.Desc = "The rosebush in riotous bloom, ember-red. The " +
				"metal glint sits locked in its young roots."
			rosebush.SignatureHelp = "It can be *moved, *felt, or - there " +
				"are *matches on the mantel - burned."
			rosebush.Verb("burn", burn)
			r.AddObject(rosebush)

			matches := game.NewObject("matches", []string{"match", "box of matches"},
				&game.Usable{TargetFlag: flagBurnable, OnApply: burn},
				&game.Smellable{OnSmell: func(a *game.Action) {
					a.Char("Sulphur and pine. Ready to go.")
				}})
			matches.Desc = "A box of matches, left on the mantel in a spot " +
				"too convenient to be accidental."
			r.AddObject(matches)
		},
	}
}
