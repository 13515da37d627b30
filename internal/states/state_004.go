package states

import (
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// Stage four: the closet stands open, full of the Jester's strange
// equipment. A handwritten book describes the 'childmaker' potion,
// and a copper cauldron waits for ingredients - in the right order.
func state004() *game.State {
	return &game.State{
		Name:     "childmaker_potion",
		Next:     "wind_turns",
		Progress: 34,
		Greeting: greeting("When you get into the cabin, the padlock on the " +
			"*closet was just unlocked and the closet doors swung open..."),
		RoomDesc: cabinDesc + `

The closet stands open. Inside: a copper *cauldron, a handwritten
*book, and a shelf of odd containers - a *bottle of something rancid,
a jar of dried rose *petals, an old *chamberpot, a framed *diploma and
a pair of lumpy knitted *socks.`,
		Hints: []string{
			"The *book in the closet describes a recipe. Read it carefully.",
			"The recipe's order matters exactly. Labels can lie, but the description of each ingredient doesn't.",
			"Rancid first. And note the recipe calls for it twice - the same bottle pours twice.",
			"The full order: bottle, petals, chamberpot, diploma, bottle again, socks - all *use <thing> on cauldron.",
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
			st.Desc = "Vale watches the open closet with what might be " +
				"nostalgia, if gears can feel that."
			st.Attach(&game.Listenable{OnListen: func(a *game.Action) {
				a.Char("Vale confides: \"I watched her brew that once. She " +
					"cried at the socks. Don't tell her I told you.\"")
			}})

			closet := ensure(r, "closet", func() *game.Object {
				o := game.NewObject("closet", []string{"cupboard"}, &game.Openable{StartOpen: true})
				return o
			})
			closet.Flags.Set(game.FlagUnlocked)
			closet.Flags.Set(game.FlagOpen)
			closet.Desc = "The antique closet stands open, its shelves " +
				"crowded with the makings of something unwise."

			mix := &game.Mixable{
				MixerFlag: flagChildmakerMixer,
				Recipe: []string{
					childmakerIngredient + "rancid",
					childmakerIngredient + "roses",
					childmakerIngredient + "urine",
					childmakerIngredient + "arrogance",
					childmakerIngredient + "rancid",
					childmakerIngredient + "childlike",
				},
				IngredientPrefix: childmakerIngredient,
				OnMix: func(a *game.Action, txt game.MixText) {
					a.Allf("~You ~add %s to the cauldron. %s", txt.Ingredient, txt.Extra)
				},
				OnFailure: func(a *game.Action) {
					a.All("The mixture curdles, turns grey and collapses into " +
						"inert sludge. That was the wrong ingredient - it will " +
						"all have to be scooped out and started over.")
				},
				OnSuccess: func(a *game.Action) {
					a.Room.Score(3, "made the childmaker potion")
					a.All("The mixture flashes a deep violet and settles into " +
						"a slow, self-stirring swirl. The childmaker potion, " +
						"exactly as the book describes it!")
					a.Room.RemoveObject("cauldron")
					potionFlask(a.Room)
					a.Room.Schedule(2*time.Second, func(r *game.Room) {
						r.Advance()
					})
				},
			}
			cauldron := game.NewObject("cauldron", []string{"copper cauldron", "pot"}, mix,
				&game.Feelable{OnFeel: func(a *game.Action) {
					a.Char("The copper is cold, but a faint vibration runs " +
						"through it, like a purr.")
				}})
			cauldron.Desc = "A copper cauldron, polished on the outside and " +
				"suspiciously stained on the inside."
			cauldron.SignatureHelp = "*use <ingredient> on cauldron, in the order " +
				"the book gives."
			cauldron.Verb("empty", func(a *game.Action) {
				mix.ResetMix()
				a.All("~You ~tip the cauldron and ~scrape the half-made " +
					"mixture out onto the ashes. Clean slate.")
			})
			r.AddObject(cauldron)

			book := game.NewObject("book", []string{"notes", "notebook"},
				&game.Readable{
					OnRead: func(a *game.Action) {
						a.Char("A thick notebook in the Jester's looping hand. " +
							"Chapters you can make out: *recipe, *hintberries, " +
							"*childmaker. Try read book <chapter>.")
					},
					Topics: map[string]string{
						"recipe": "\"The childmaker, in order, and the order is " +
							"everything: something RANCID. Petals of ROSES. Well-aged " +
							"URINE. A drop of pure ARROGANCE. RANCID again, for " +
							"balance. And last, something truly CHILDLIKE.\"",
						"hintberries": "\"Hintberries grow by the south road. They " +
							"sharpen the wits wonderfully, and pie is the best " +
							"vehicle. I bake them for guests who are... slower " +
							"than me. Which is everyone.\"",
						"childmaker": "\"The childmaker does not make children. It " +
							"makes things YOUNG. There is a difference, as the " +
							"scarecrow will tell you. Wind permitting.\"",
					},
					OnReadTopic: func(a *game.Action, topic string) {
						if topic == "recipe" {
							a.Room.Score(1, "read the recipe chapter")
						}
					},
				})
			book.Desc = "A handwritten book of notes and recipes."
			r.AddObject(book)

			addIngredient(r, mix, "bottle", []string{"rancid bottle", "butter"},
				childmakerIngredient+"rancid",
				"A stoppered bottle. The label says ELDERFLOWER CORDIAL but "+
					"the smell through the cork says butter gone profoundly wrong.",
				game.MixText{Ingredient: "a glug from the rancid bottle",
					Extra: "The mixture takes on a yellowish sheen."}, nil)

			addIngredient(r, mix, "petals", []string{"rose petals", "roses", "jar"},
				childmakerIngredient+"roses",
				"A jar of dried rose petals, faded to the color of old love letters.",
				game.MixText{Ingredient: "a handful of rose petals",
					Extra: "The surface blushes pink for a moment."}, nil)

			addIngredient(r, mix, "chamberpot", []string{"chamber pot", "pot of shame"},
				childmakerIngredient+"urine",
				"An old ceramic chamberpot. It has not been rinsed. On "+
					"purpose, you suspect.",
				game.MixText{Ingredient: "a pour from the chamberpot",
					Extra: "Everyone in the room takes one step back."}, nil)

			addIngredient(r, mix, "diploma", []string{"certificate", "award"},
				childmakerIngredient+"arrogance",
				"A framed diploma: 'GRAND CHAMPION OF PIES, awarded to ME, "+
					"obviously'. The frame is gilded. The gilding is painted on.",
				game.MixText{Ingredient: "the champion's diploma, glass and all",
					Extra: "The mixture audibly scoffs."}, nil)

			addIngredient(r, mix, "socks", []string{"sock", "knitted socks"},
				childmakerIngredient+"childlike",
				"A pair of tiny knitted socks, worn soft. Someone loved these, "+
					"a long time ago.",
				game.MixText{Ingredient: "the little socks",
					Extra: "The mixture goes very quiet, as if remembering."},
				func(a *game.Action) {
					a.Room.Achievement(a.Actor, "Payback", "Sacrificed the Jester's socks")
					a.Room.Score(2, "mixed in the childlike ingredient")
				})
		},
	}
}

// potionFlask is the decanted childmaker, carried along through every
// later stage until the rosebush finally drinks it.
func potionFlask(r *game.Room) *game.Object {
	return ensure(r, "potion", func() *game.Object {
		o := game.NewObject("potion", []string{"childmaker", "childmaker potion", "flask"},
			&game.Smellable{OnSmell: func(a *game.Action) {
				a.Char("Violets, rot, and birthday cake. You step back.")
			}})
		o.Flags.Set(fertilizerIngredient + "childmaker")
		o.Desc = "A flask of slowly swirling violet liquid, decanted from " +
			"the cauldron. The childmaker potion."
		return o
	})
}

// addIngredient creates one closet-shelf ingredient that can be used
// on the childmaker cauldron.
func addIngredient(r *game.Room, mix *game.Mixable, key string, aliases []string, flag, desc string, txt game.MixText, extra func(a *game.Action)) {
	o := game.NewObject(key, aliases,
		&game.Usable{
			TargetFlag: flagChildmakerMixer,
			OnApply: func(a *game.Action) {
				if extra != nil {
					extra(a)
				}
				mix.ApplyIngredient(a, txt)
			},
		},
		&game.Smellable{})
	o.Flags.Set(flag)
	o.Desc = desc
	r.AddObject(o)
}
