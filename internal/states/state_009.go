package states

import (
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// Stage nine: the chest held a withered rosebush and the makings of a
// gruesome fertilizer. The childmaker makes things young again - but
// only if it is fed to the roots in exactly the right company.
func state009() *game.State {
	return &game.State{
		Name:     "rosebush",
		Next:     "burn_the_roses",
		Progress: 84,
		Greeting: greeting("When you get into the cabin, the bandit chest was " +
			"just opened. Inside was a withered *rosebush in a pot, along with " +
			"an *urn, a silver *locket and a folded *page..."),
		RoomDesc: cabinDesc + `

The opened *chest has given up its secrets: a clay pot with a
withered *rosebush, an *urn of grey ashes, a silver *locket, and a
folded *page in faded ink. Deep among the rosebush's dead canes,
something metallic glints.`,
		Hints: []string{
			"That *page from the chest looks like another of the Jester's recipes.",
			"The bone fertilizer wants the childmaker first, then ashes - three scoops of them.",
			"Hintberries next. A slice of a certain *pie ought to count. And the last ingredient is... personal.",
			"Potion, ashes, ashes, ashes, pie - then *feel rosebush and let the thorns take their due.",
		},
		Chatter: valeChatter(),
		Init: func(r *game.Room) {
			door(r)
			chair(r)
			bed(r)
			windows(r)
			fireplace(r)
			damper(r)
			chestBox(r)

			st := statue(r)
			st.Desc = "Vale keeps a respectful distance from the rosebush, " +
				"the way one does around sleeping things."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("Vale whispers: \"Everyone blamed Angus the smith for " +
					"the bandit raids. Big arms, you see. But I watched the " +
					"bandit king mount his horse once, and I heard bells.\"")
			}})

			mix := &game.Mixable{
				MixerFlag: flagFertilizerMixer,
				Recipe: []string{
					fertilizerIngredient + "childmaker",
					fertilizerIngredient + "ashes",
					fertilizerIngredient + "ashes",
					fertilizerIngredient + "ashes",
					fertilizerIngredient + "hintberries",
					fertilizerIngredient + "blood",
				},
				IngredientPrefix: fertilizerIngredient,
				OnMix: func(a *game.Action, txt game.MixText) {
					a.Allf("~You ~work %s into the rosebush's soil. %s",
						txt.Ingredient, txt.Extra)
				},
				OnFailure: func(a *game.Action) {
					a.All("The soil seizes into a grey, inert crust and " +
						"flakes away, shedding everything fed to it. The " +
						"recipe's order matters; it will have to start over.")
				},
				OnSuccess: func(a *game.Action) {
					a.Room.Score(2, "fed the rosebush")
					a.Room.RemoveObject("potion")
					a.All("The soil drinks, and the rosebush SURGES: canes " +
						"thicken and arch, leaves unfurl, and roses the color " +
						"of embers break open all over it. Years run backward " +
						"through the plant in the space of a breath.")
					a.Room.Schedule(3*time.Second, func(r *game.Room) {
						r.Broadcast("As the bloom settles, the glint among the " +
							"roots shows clearly now: the young roots have " +
							"clenched around a piece of dark metal, gripping " +
							"it like a fist.")
						r.Advance()
					})
				},
			}

			rosebush := game.NewObject("rosebush", []string{"rose bush", "roses", "bush", "pot"},
				mix,
				&game.Feelable{OnFeel: func(a *game.Action) {
					a.All("~You ~reach in among the dead canes. A thorn finds " +
						"skin, sharp and deliberate.")
					blood := game.NewObject("blood", nil)
					blood.Flags.Set(fertilizerIngredient + "blood")
					mix.Mix(a, blood, game.MixText{
						Ingredient: "a drop of fresh blood",
						Extra:      "The soil drinks it before it can bead.",
					})
				}},
				&game.Smellable{OnSmell: func(a *game.Action) {
					a.Char("Dry earth and old paper. Nothing lives in that pot. Yet.")
				}})
			rosebush.Desc = "A rosebush, long dead, in a clay pot from the " +
				"chest. Deep among the withered canes something metallic " +
				"glints, clenched in the rootball."
			rosebush.SignatureHelp = "The *page describes a fertilizer. " +
				"*use <ingredient> on rosebush, in order."
			r.AddObject(rosebush)

			urn := game.NewObject("urn", []string{"ashes", "urn of ashes"},
				&game.Usable{
					TargetFlag: flagFertilizerMixer,
					OnApply: func(a *game.Action) {
						mix.ApplyIngredient(a, game.MixText{
							Ingredient: "a scoop of grey ashes",
							Extra:      "The soil pales a shade.",
						})
					},
				},
				&game.Feelable{})
			urn.Flags.Set(fertilizerIngredient + "ashes")
			urn.Desc = "A plain clay urn, half full of fine grey ashes. " +
				"Whose, the urn doesn't say."
			r.AddObject(urn)

			locket := game.NewObject("locket", []string{"silver locket"},
				&game.Readable{OnRead: func(a *game.Action) {
					a.Room.Score(1, "read the locket inscription")
					a.Char("The locket opens to a tiny portrait of a young " +
						"woman with flour on her cheek. Engraved inside the " +
						"lid: 'For the fairest. Come away with me. - W.'")
				}},
				&game.Feelable{})
			locket.Desc = "A small silver locket on a broken chain, polished " +
				"by years of handling."
			r.AddObject(locket)

			page := game.NewObject("page", []string{"folded page", "recipe page"},
				&game.Readable{OnRead: func(a *game.Action) {
					a.Char("The Jester's looping hand again, titled BONE " +
						"FERTILIZER: 'First the childmaker, to teach the " +
						"roots their youth. Then ashes, thrice, to remind " +
						"them of the alternative. Then hintberries, for " +
						"wisdom. And last a drop of fresh blood, freely " +
						"given, for life. Order is everything. It always is.'")
				}})
			page.Desc = "A folded page of faded ink, creased soft with age."
			r.AddObject(page)

			pieObj := pie(r)
			pieObj.Attach(&game.Usable{
				TargetFlag: flagFertilizerMixer,
				OnApply: func(a *game.Action) {
					mix.ApplyIngredient(a, game.MixText{
						Ingredient: "a crumbled slice of hintberry pie",
						Extra:      "The soil gives off a faint, knowing smell.",
					})
				},
			})

			potion := potionFlask(r)
			potion.Attach(&game.Usable{
				TargetFlag: flagFertilizerMixer,
				OnApply: func(a *game.Action) {
					mix.ApplyIngredient(a, game.MixText{
						Ingredient: "a long pour of the childmaker potion",
						Extra:      "The soil darkens, rich and black as a spring field.",
					})
				},
			})
		},
	}
}
