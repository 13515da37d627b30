package states

import (
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// The cabin's fixed furniture persists across stages; each stage's
// init ensures the pieces it needs exist and layers on whatever new
// behavior that stage brings. Restoring a saved room mid-game runs
// only the recorded stage's init, so every stage builds its full set.

func ensure(r *game.Room, key string, build func() *game.Object) *game.Object {
	if o := r.Object(key); o != nil {
		return o
	}
	o := build()
	o.Persistent = true
	r.AddObject(o)
	return o
}

const cabinDesc = `The Jester's cabin is actually just a small single room with a *door.
Ample light enters from two *windows on each side, and the underside
of the sloping roof is exposed, rafters and all. On the wall opposite
the door is a small stone *fireplace. A worn *chair stands about, a
*bed hugs the sun-side wall, and over by the shadow-side wall looms a
strange monkey *statue.`

// door is the way out. It stays shut until the very last stage.
func door(r *game.Room) *game.Object {
	return ensure(r, "door", func() *game.Object {
		o := game.NewObject("door", []string{"front door", "exit"},
			&game.Openable{
				UnlockFlag: game.FlagUnlocked,
				OnLocked: func(a *game.Action) {
					if !a.Actor.Flags.Has(flagTeased) {
						a.Actor.Flags.Set(flagTeased)
						a.Room.Score(1, "got teased by the jester")
						a.All("~You ~tug at the door handle. From somewhere outside, " +
							"the Jester's voice rings out in a sing-song: \"Finders " +
							"keepers, losers weepers! See you at the contest, slowpoke!\"")
						return
					}
					a.Char("The door is firmly locked. The Jester has made " +
						"sure you are not leaving that way. Yet.")
				},
				OnOpen: func(a *game.Action) {
					a.All("~You ~swing the front door open. Sunlight floods in!")
				},
			},
			&game.Readable{
				OnRead: func(a *game.Action) {
					a.Room.Score(1, "read door scribbles")
					a.Char("Scratched into the inside of the door, in a childish " +
						"hand: 'The Vale of them all, the Vale will tell. " +
						"Forget your name, remember mine.'")
				},
			})
		o.Flags.Set(flagCabinDoor)
		o.Desc = "A sturdy cabin door. It looks very much locked, and there " +
			"are faint scribbles scratched into the wood."
		o.SignatureHelp = "You can try to *open it or *read the scribbles."
		return o
	})
}

// chair is the relocatable surface every reach puzzle leans on.
func chair(r *game.Room) *game.Object {
	return ensure(r, "chair", func() *game.Object {
		o := game.NewObject("chair", []string{"wooden chair"},
			&game.Movable{
				Start: "kitchen",
				Spots: map[string]game.MoveSpot{
					"door": {
						ReachFlags: []string{flagReachCoin},
						Text: "~You ~drag the chair over to the door. From up " +
							"there the rafters above the door look almost within reach.",
					},
					"closet": {
						Text: "~You ~push the chair into the closet corner. " +
							"It doesn't seem to help with anything over here.",
					},
					"fireplace": {
						ReachFlags: []string{flagReachSaddle, flagReachStone},
						Text: "~You ~haul the chair over to the fireplace. " +
							"Standing on it, the upper chimney stones would be reachable.",
					},
					"kitchen": {
						Text: "~You ~put the chair back by the kitchen corner " +
							"where it started.",
					},
				},
				OnMove: func(a *game.Action, spot string) {
					switch spot {
					case "door":
						a.Room.Score(2, "move chair to door")
					case "closet":
						a.Room.Score(1, "move chair to closet")
					case "fireplace":
						a.Room.Score(2, "move chair to fireplace")
					case "kitchen":
						a.Room.Score(1, "move chair to kitchen")
					}
				},
			},
			&game.Positionable{
				Kinds: []game.PositionKind{game.PosSit, game.PosClimb},
			},
			&game.Feelable{})
		o.Desc = "A plain wooden chair, sturdier than it looks. It could be " +
			"moved around, sat on, or climbed."
		o.SignatureHelp = "Try *move chair to <door, closet, fireplace, kitchen>, " +
			"*sit on it or *climb onto it."
		return o
	})
}

// statue is Vale, the monkey automaton. Its behavior is layered on
// per stage; the base form just sits there unsettlingly.
func statue(r *game.Room) *game.Object {
	return ensure(r, "statue", func() *game.Object {
		o := game.NewObject("statue", []string{"monkey", "vale", "automaton"},
			&game.Feelable{OnFeel: func(a *game.Action) {
				a.Char("Cold metal under a thin coat of fur. Its glass eyes " +
					"seem to follow you.")
			}},
			&game.Listenable{})
		o.Flags.Set(flagStatueMouth)
		o.Desc = "A monkey statue of metal and fur, big as a child, with " +
			"long arms and an open mouth. A coin-sized slot glints inside it."
		return o
	})
}

func bed(r *game.Room) *game.Object {
	return ensure(r, "bed", func() *game.Object {
		o := game.NewObject("bed", []string{"jester's bed"},
			&game.Positionable{
				Kinds: []game.PositionKind{game.PosSit, game.PosLie, game.PosKneel},
				OnPosition: func(a *game.Action, kind game.PositionKind) {
					switch kind {
					case game.PosLie:
						a.Room.Score(2, "lay down on bed")
						a.Char("You stretch out on the Jester's bed. It smells " +
							"faintly of hay and old jokes.")
					case game.PosKneel:
						if !a.Obj.Flags.Has(flagChestOut) {
							a.Obj.Flags.Set(flagChestOut)
							a.Room.Score(2, "found chest under bed")
							a.All("~You ~kneel by the bed and ~peer underneath. " +
								"There is something down there - a small, heavy chest!")
							return
						}
						a.Char("The space under the bed is empty now except " +
							"for dust.")
					case game.PosSit:
						a.Room.Score(1, "sit down on bed")
					}
				},
			},
			&game.Feelable{})
		o.Desc = "A narrow bed with a patchwork quilt. The shadows under it " +
			"are deep enough to hide things in."
		o.SignatureHelp = "You could *sit or *lie on it, or *kneel to peer underneath."
		return o
	})
}

func windows(r *game.Room) *game.Object {
	return ensure(r, "windows", func() *game.Object {
		o := game.NewObject("windows", []string{"window"},
			&game.Feelable{OnFeel: func(a *game.Action) {
				a.Char("The glass is warm from the sun. The metalwork outside " +
					"it is quite immovable.")
			}})
		o.Desc = "Two windows face the sun- and shadow-side of the cabin. " +
			"Sturdy metalwork outside the glass rules out that way of leaving. " +
			"Above each window sits a bare wooden curtain bar."
		o.DescFunc = func(a *game.Action) string {
			base := o.Desc
			if a.Obj.Flags.Value(flagCovered) != "" {
				return base + "\n\nMakeshift curtains now hang over the glass."
			}
			return base + "\n\nThrough the sun-side window you can make out a " +
				"field, and in it a lone *scarecrow."
		}
		return o
	})
}

func fireplace(r *game.Room) *game.Object {
	return ensure(r, "fireplace", func() *game.Object {
		o := game.NewObject("fireplace", []string{"chimney", "hearth"},
			&game.Feelable{OnFeel: func(a *game.Action) {
				a.Char("The stones are cold. Nobody has made a fire here in a " +
					"long while.")
			}})
		o.Desc = "A small stone fireplace, cold and swept, its chimney " +
			"climbing into the dark. A *damper knob pokes out of the mantel."
		return o
	})
}

// damper controls the chimney draft. Whether it is open matters much
// later, up on the chimney.
func damper(r *game.Room) *game.Object {
	return ensure(r, "damper", func() *game.Object {
		o := game.NewObject("damper", []string{"damper knob", "knob"},
			&game.Openable{
				OnOpen: func(a *game.Action) {
					a.Room.Score(2, "opening damper first time")
					a.All("~You ~twist the damper knob. Somewhere inside the " +
						"chimney, air begins to move with a low sigh.")
				},
				OnClose: func(a *game.Action) {
					a.All("~You ~twist the damper knob shut. The chimney falls " +
						"silent.")
				},
			})
		o.Desc = "A soot-stained knob in the fireplace mantel, controlling " +
			"the chimney damper."
		return o
	})
}

// pie is the hintberry pie: eat it for an in-fiction hint at the cost
// the hint ladder charges anyway.
func pie(r *game.Room) *game.Object {
	return ensure(r, "pie", func() *game.Object {
		o := game.NewObject("pie", []string{"hintberry pie", "hintberry"},
			&game.Edible{
				OnEat: func(a *game.Action) {
					if !a.Actor.Flags.Has(flagAtePie) {
						a.Actor.Flags.Set(flagAtePie)
						a.Room.Achievement(a.Actor, "Glutton", "Ate a hintberry pie")
					}
					a.All("~You ~cut a slice of the hintberry pie and ~wolf it down.")
					a.Char("Sweet, with an aftertaste of... insight. " + a.Hint())
				},
			},
			&game.Smellable{OnSmell: func(a *game.Action) {
				a.Char("It smells wonderful. Hintberries are in season.")
			}})
		o.Flags.Set(fertilizerIngredient + "hintberries")
		o.Desc = "A golden-crusted hintberry pie on the table. The Jester " +
			"bakes them for those who need a nudge in the right direction."
		o.SignatureHelp = "You could *eat a slice, if you need the help."
		return o
	})
}

// vale chatter shared by the mid-game states.
func valeChatter() *game.Chatter {
	return &game.Chatter{
		Every: 4 * time.Minute,
		Lines: []string{
			"Over by the door, Vale idly claps its metal hands.",
			"Vale hums a little tune about pies.",
			"Vale's glass eyes track something on the ceiling. You look up. Nothing there.",
			"\"Tick tock,\" says Vale, to nobody in particular.",
		},
	}
}
