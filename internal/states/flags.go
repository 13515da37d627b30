package states

import "github.com/pixil98/go-escaperoom/internal/game"

// The full flag vocabulary the cabin content uses. Registering it up
// front means a typo in any state file panics at startup instead of
// leaving a puzzle that silently never triggers.
const (
	// reach flags, set on whatever surface currently enables the spot
	flagReachCoin   = "reach_coin"
	flagReachSaddle = "reach_saddle"
	flagReachStone  = "reach_stone"

	// character flags
	flagTeased    = "teased_by_jester"
	flagAtePie    = "eaten_pie"
	flagQuestion1 = "question1"
	flagQuestion2 = "question2"
	flagQuestion3 = "question3"

	// pairing flags
	flagStatueMouth     = "statue_mouth"
	flagCabinDoor       = "cabin_door"
	flagWindowCoverable = "window_coverable"
	flagLeverSlot       = "lever_slot"

	// mixers and their ingredient namespaces
	flagChildmakerMixer  = "childmaker_mixer"
	childmakerIngredient = "childmaker_ingredient_"
	flagFertilizerMixer  = "fertilizer_mixer"
	fertilizerIngredient = "fertilizer_ingredient_"

	// state-local signals
	flagCovered  = "covered"   // windows: how many are blocked
	flagPrimed   = "primed"    // chest: lever sequence accepted
	flagBurnable = "burnable"  // rosebush: valid target for the matches
	flagBurning  = "burning"   // fireplace: fire is lit
	flagChestOut = "chest_out" // chest dragged out from under the bed
	flagTaken    = "taken"     // small items: retrieved from wherever they hid
	flagStory    = "story"     // statue: which part of its tale comes next
	flagDeparted = "departed"  // door: the group has walked out
)

func init() {
	game.RegisterFlags(
		flagReachCoin, flagReachSaddle, flagReachStone,
		flagTeased, flagAtePie,
		flagQuestion1, flagQuestion2, flagQuestion3,
		flagStatueMouth, flagCabinDoor, flagWindowCoverable, flagLeverSlot,
		flagChildmakerMixer, flagFertilizerMixer,
		flagCovered, flagPrimed, flagBurnable, flagBurning,
		flagChestOut, flagTaken, flagStory, flagDeparted,

		childmakerIngredient+"rancid",
		childmakerIngredient+"roses",
		childmakerIngredient+"urine",
		childmakerIngredient+"arrogance",
		childmakerIngredient+"childlike",

		fertilizerIngredient+"childmaker",
		fertilizerIngredient+"ashes",
		fertilizerIngredient+"hintberries",
		fertilizerIngredient+"blood",
	)
}
