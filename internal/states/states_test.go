package states

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pixil98/go-escaperoom/internal/game"
	"github.com/pixil98/go-testutil"
)

// recorder collects everything the room says, for assertions. Text is
// matched with line wrapping folded away.
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recorder) ToCharacter(charID, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, charID+"|"+text)
}

func (n *recorder) heard(sub string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, m := range n.msgs {
		if strings.Contains(strings.ReplaceAll(m, "\n", " "), sub) {
			return true
		}
	}
	return false
}

// roomAt builds a room already sitting in the named stage, the way a
// restart would: the stage's init constructs the full object set.
func roomAt(t *testing.T, stateName string, rec *game.RoomRecord) (*game.Room, *recorder) {
	t.Helper()

	set, err := Set()
	if err != nil {
		t.Fatalf("building state set: %v", err)
	}
	n := &recorder{}

	if stateName == "start" {
		return game.NewRoom("test", set, n, MaxScore, nil), n
	}
	if rec == nil {
		rec = &game.RoomRecord{}
	}
	rec.State = stateName
	r, err := game.RestoreRoom("test", set, n, MaxScore, rec, nil)
	if err != nil {
		t.Fatalf("entering state %q: %v", stateName, err)
	}
	return r, n
}

func do(t *testing.T, r *game.Room, charID, verb, target, second, args string) {
	t.Helper()
	if err := r.Perform(charID, verb, target, second, args); err != nil {
		t.Fatalf("%s %s: unexpected rejection: %v", verb, target, err)
	}
}

func waitForState(t *testing.T, r *game.Room, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if r.StateName() == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("room never reached state %q, still in %q", want, r.StateName())
}

func TestStateSetIsComplete(t *testing.T) {
	set, err := Set()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := set.Names()
	testutil.AssertEqual(t, "stage count", len(names), 12)
	testutil.AssertEqual(t, "first stage", names[0], "start")
	testutil.AssertEqual(t, "last stage", names[len(names)-1], "questions")
}

func TestStage01_CoinAndStatue(t *testing.T) {
	r, n := roomAt(t, "start", nil)
	ch := r.Join("Ada")

	// The coin is out of reach from the floor.
	do(t, r, ch.ID, "take", "coin", "", "")
	if !n.heard("out of reach") {
		t.Error("expected the floor-level rejection")
	}

	// Inserting an unretrieved coin goes nowhere.
	do(t, r, ch.ID, "insert", "coin", "statue", "")
	if !n.heard("You don't have the coin") {
		t.Error("expected the not-carried rejection")
	}

	do(t, r, ch.ID, "move", "chair", "", "door")
	do(t, r, ch.ID, "climb", "chair", "", "")
	do(t, r, ch.ID, "take", "coin", "", "")
	if !n.heard("pry the coin loose") {
		t.Error("expected the coin to come loose from the chair")
	}

	do(t, r, ch.ID, "insert", "coin", "statue", "")
	waitForState(t, r, "automaton", 10*time.Second)
	if !n.heard("glass eyes light up") {
		t.Error("expected the wake-up broadcast")
	}
}

func TestStage01_DoorTeasesOnce(t *testing.T) {
	r, n := roomAt(t, "start", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "open", "door", "", "")
	if !n.heard("Finders keepers") {
		t.Error("expected the jester's taunt on the first try")
	}

	do(t, r, ch.ID, "open", "door", "", "")
	if !n.heard("firmly locked") {
		t.Error("expected the plain rejection on the second try")
	}
}

func TestStage01_PieGivesHints(t *testing.T) {
	r, n := roomAt(t, "start", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "eat", "pie", "", "")

	if !n.heard("aftertaste of... insight") {
		t.Error("expected the pie to serve a hint")
	}
	testutil.AssertEqual(t, "hint cost", r.HintsUsed(), 1)
	testutil.AssertEqual(t, "achievement", ch.Achievements["Glutton"], "Ate a hintberry pie")
}

func TestStage02_SpeakVale(t *testing.T) {
	r, n := roomAt(t, "automaton", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "speak", "monkey", "", "rumplestiltskin")
	if !n.heard("Guess again") {
		t.Error("expected a wrong-name rejection")
	}

	do(t, r, ch.ID, "speak", "monkey", "", "Vale")
	waitForState(t, r, "locked_closet", 10*time.Second)
	if !n.heard("Someone remembered") {
		t.Error("expected Vale's celebration")
	}
}

func TestStage03_NamingValeAgainChangesNothing(t *testing.T) {
	r, n := roomAt(t, "automaton", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "speak", "monkey", "", "Vale")
	waitForState(t, r, "locked_closet", 10*time.Second)

	// The statue is persistent, so the speak verb survives into later
	// stages. Repeating the name must not replay the celebration or
	// advance whatever stage is current.
	do(t, r, ch.ID, "speak", "monkey", "", "Vale")
	if !n.heard("goes back to whatever it was doing") {
		t.Error("expected the named automaton to shrug the repeat off")
	}

	time.Sleep(4 * time.Second)
	testutil.AssertEqual(t, "state", r.StateName(), "locked_closet")
}

func TestStage03_StoryAndPadlock(t *testing.T) {
	r, n := roomAt(t, "locked_closet", nil)
	ch := r.Join("Ada")

	// The story plays out one part per listen, then repeats its end.
	for i := 0; i < 5; i++ {
		do(t, r, ch.ID, "listen", "vale", "", "")
	}
	if !n.heard("coffee grinder") {
		t.Error("expected the story's first part")
	}
	if !n.heard("if you were counting") {
		t.Error("expected the story's last part")
	}

	do(t, r, ch.ID, "enter", "padlock", "", "1234")
	if !n.heard("unimpressed") {
		t.Error("expected the wrong-code flavor")
	}

	do(t, r, ch.ID, "enter", "padlock", "", "4321")
	waitForState(t, r, "childmaker_potion", 5*time.Second)
	if !r.Object("closet").Flags.Has(game.FlagOpen) {
		t.Error("expected the closet to stand open")
	}
}

func TestStage04_ChildmakerPotion(t *testing.T) {
	r, n := roomAt(t, "childmaker_potion", nil)
	ch := r.Join("Ada")

	// A wrong opener ruins the batch.
	do(t, r, ch.ID, "use", "socks", "cauldron", "")
	if !n.heard("curdles") {
		t.Error("expected the failed-mix narration")
	}

	// The book's order, bottle poured twice.
	for _, ing := range []string{"bottle", "petals", "chamberpot", "diploma", "bottle", "socks"} {
		do(t, r, ch.ID, "use", ing, "cauldron", "")
	}
	if !n.heard("deep violet") {
		t.Error("expected the potion to finish")
	}

	waitForState(t, r, "wind_turns", 10*time.Second)
	if r.Object("cauldron") != nil {
		t.Error("the cauldron should be gone after decanting")
	}
	if r.Object("potion") == nil {
		t.Error("the potion flask should carry forward")
	}
	testutil.AssertEqual(t, "payback", ch.Achievements["Payback"], "Sacrificed the Jester's socks")
}

func TestStage04_ValeWhispersAboutTheBrew(t *testing.T) {
	r, n := roomAt(t, "childmaker_potion", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "listen", "statue", "", "")
	if !n.heard("cried at the socks") {
		t.Error("expected this stage's whisper, not an earlier one")
	}
}

func TestStage05_CoverTheWindows(t *testing.T) {
	r, n := roomAt(t, "wind_turns", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "use", "blanket", "windows", "")
	if !n.heard("One window to go") {
		t.Error("expected the half-covered narration")
	}

	// The same cloth can't cover both windows.
	do(t, r, ch.ID, "use", "blanket", "windows", "")
	if !n.heard("already hanging") {
		t.Error("expected the re-use rejection")
	}

	do(t, r, ch.ID, "use", "bathtowel", "windows", "")
	waitForState(t, r, "dark_room", 10*time.Second)
	if !n.heard("turned to face the cabin") {
		t.Error("expected the scarecrow to turn with the wind")
	}
}

func TestStage06_LooseStone(t *testing.T) {
	r, n := roomAt(t, "dark_room", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "push", "stone", "", "")
	if !n.heard("Something sturdy to stand on") {
		t.Error("expected the floor-level rejection")
	}

	do(t, r, ch.ID, "move", "chair", "", "fireplace")
	do(t, r, ch.ID, "climb", "chair", "", "")

	// With the damper shut, the draft holds the stone in place.
	do(t, r, ch.ID, "push", "stone", "", "")
	if !n.heard("holds the stone pressed") {
		t.Error("expected the closed-damper rejection")
	}

	do(t, r, ch.ID, "open", "damper", "", "")
	// The chair is still at the fireplace; reach survives the damper trip.
	do(t, r, ch.ID, "push", "stone", "", "")
	waitForState(t, r, "chimney_cache", 10*time.Second)
	if !n.heard("hidden cubby") {
		t.Error("expected the cubby reveal")
	}
}

func TestStage07_LeverAndChest(t *testing.T) {
	r, n := roomAt(t, "chimney_cache", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "take", "lever", "", "")
	if !n.heard("You'd need to get up there again") {
		t.Error("expected the reach rejection")
	}

	do(t, r, ch.ID, "move", "chair", "", "fireplace")
	do(t, r, ch.ID, "climb", "chair", "", "")
	do(t, r, ch.ID, "take", "lever", "", "")
	if !n.heard("cold as a winter well") {
		t.Error("expected the lever retrieval")
	}

	// The chest is still hiding under the bed.
	do(t, r, ch.ID, "insert", "lever", "chest", "")
	if !n.heard("haven't found anything with a socket") {
		t.Error("expected the no-chest rejection")
	}

	do(t, r, ch.ID, "kneel", "bed", "", "")
	if !n.heard("small, heavy chest") {
		t.Error("expected the chest discovery")
	}

	do(t, r, ch.ID, "insert", "lever", "chest", "")
	waitForState(t, r, "bandits_chest", 10*time.Second)
	if !n.heard("machinery wakes") {
		t.Error("expected the chest to start ticking")
	}
}

func TestStage08_BanditKingsJig(t *testing.T) {
	r, n := roomAt(t, "bandits_chest", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "read", "plate", "", "")
	if !n.heard("BANDIT KING'S JIG") {
		t.Error("expected the engraved dance")
	}

	do(t, r, ch.ID, "push", "lever", "", "sideways")
	if !n.heard("up, down, left or right") {
		t.Error("expected the direction help")
	}

	// Turning before the dance gets nowhere.
	do(t, r, ch.ID, "turn", "lever", "", "")
	if !n.heard("refuses to turn") {
		t.Error("expected the unprimed rejection")
	}

	// A wrong dance clicks along and only clunks at the end.
	for i := 0; i < 9; i++ {
		do(t, r, ch.ID, "push", "lever", "", "up")
	}
	do(t, r, ch.ID, "push", "lever", "", "down")
	if !n.heard("CLUNK") {
		t.Error("expected the wrong-dance reset")
	}

	for _, dir := range leverJig {
		do(t, r, ch.ID, "push", "lever", "", dir)
	}
	if !n.heard("promising CLICK") {
		t.Error("expected the mechanism to arm")
	}

	do(t, r, ch.ID, "turn", "lever", "", "")
	waitForState(t, r, "rosebush", 10*time.Second)
	if !n.heard("withered *rosebush") {
		t.Error("expected the chest contents reveal")
	}
}

func TestStage09_BoneFertilizer(t *testing.T) {
	r, n := roomAt(t, "rosebush", nil)
	ch := r.Join("Ada")

	// Ashes before the childmaker ruins the batch.
	do(t, r, ch.ID, "use", "urn", "rosebush", "")
	if !n.heard("flakes away") {
		t.Error("expected the failed-fertilizer narration")
	}

	do(t, r, ch.ID, "use", "potion", "rosebush", "")
	for i := 0; i < 3; i++ {
		do(t, r, ch.ID, "use", "urn", "rosebush", "")
	}
	do(t, r, ch.ID, "use", "pie", "rosebush", "")
	// The last ingredient is taken, not given.
	do(t, r, ch.ID, "feel", "rosebush", "", "")
	if !n.heard("SURGES") {
		t.Error("expected the rosebush to bloom")
	}

	waitForState(t, r, "burn_the_roses", 10*time.Second)
	if r.Object("potion") != nil {
		t.Error("the potion should be spent")
	}
}

func TestStage10_BurnTheRosebush(t *testing.T) {
	r, n := roomAt(t, "burn_the_roses", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "burn", "rosebush", "", "")
	if !n.heard("Not here") {
		t.Error("expected the mid-floor rejection")
	}

	do(t, r, ch.ID, "move", "rosebush", "", "fireplace")
	do(t, r, ch.ID, "burn", "rosebush", "", "")
	if !n.heard("Open the flue first") {
		t.Error("expected the closed-damper rejection")
	}

	do(t, r, ch.ID, "open", "damper", "", "")
	do(t, r, ch.ID, "use", "matches", "rosebush", "")
	if !n.heard("WHUMP") {
		t.Error("expected the bush to catch")
	}

	waitForState(t, r, "open_door", 10*time.Second)
	if !n.heard("clinks against the grate") {
		t.Error("expected the key to drop free")
	}
}

func TestStage11_KeyAndDeparture(t *testing.T) {
	r, n := roomAt(t, "open_door", nil)
	ch := r.Join("Ada")

	do(t, r, ch.ID, "use", "key", "door", "")
	if !n.heard("still lying in the ashes") {
		t.Error("expected the not-taken rejection")
	}

	do(t, r, ch.ID, "take", "key", "", "")
	do(t, r, ch.ID, "use", "key", "door", "")
	if !n.heard("sweetest sound") {
		t.Error("expected the unlock narration")
	}

	// Leaving needs the door actually open.
	do(t, r, ch.ID, "leave", "", "", "")
	if !n.heard("The door is still closed.") {
		t.Error("expected the closed-door rejection")
	}

	do(t, r, ch.ID, "open", "door", "", "")
	if !n.heard("Sunlight floods in") {
		t.Error("expected the door to swing open")
	}

	do(t, r, ch.ID, "leave", "", "", "")
	if !n.heard("into sunlight and wind") {
		t.Error("expected the departure")
	}

	// The walk down to the green is a long cinematic.
	waitForState(t, r, "questions", 25*time.Second)
	if r.Object("door") != nil {
		t.Error("the cabin should be left behind")
	}
}

func TestStage12_QuestionsAndEpilogue(t *testing.T) {
	r, n := roomAt(t, "questions", &game.RoomRecord{
		Progress: 100,
		Score:    map[string]int{"the whole cabin": 58},
	})
	ch := r.Join("Ada")

	// The greeting leads with the first question.
	if !n.heard("Vale's full name") {
		t.Error("expected the first question on arrival")
	}

	do(t, r, ch.ID, "answer", "", "", "bloch")
	if !n.heard("Vale Bloch") {
		t.Error("expected the magus reveal")
	}
	if !n.heard("Who was the bandit king") {
		t.Error("expected the second question to follow")
	}

	do(t, r, ch.ID, "answer", "", "", "jester")
	if !n.heard("does not deny a single thing") {
		t.Error("expected the bandit reveal")
	}

	do(t, r, ch.ID, "answer", "", "", "warwick")
	if !n.heard("The locket was his to give") {
		t.Error("expected the maiden reveal")
	}
	if !n.heard("Final tally for Ada: 58 points of 58") {
		t.Error("expected the scored tally")
	}
	if !n.heard("new village record") {
		t.Error("expected the dominate ending at full marks")
	}

	// Classifications stick to the character.
	testutil.AssertEqual(t, "q1", ch.Flags.Value("question1"), "MAGUS")
	testutil.AssertEqual(t, "q2", ch.Flags.Value("question2"), "JESTER")
	testutil.AssertEqual(t, "q3", ch.Flags.Value("question3"), "BLACKSMITH")

	// With everything answered, the jester is out of questions.
	do(t, r, ch.ID, "answer", "", "", "anything")
	if !n.heard("Only pies") {
		t.Error("expected the no-more-questions reply")
	}
}

func TestStage12_HintsBiteIntoTheTally(t *testing.T) {
	r, n := roomAt(t, "questions", &game.RoomRecord{
		Progress:  100,
		HintsUsed: 2,
		Score:     map[string]int{"the whole cabin": 58},
	})
	ch := r.Join("Ada")

	do(t, r, ch.ID, "answer", "", "", "bloch")
	do(t, r, ch.ID, "answer", "", "", "jester")
	do(t, r, ch.ID, "answer", "", "", "warwick")

	// 58 raw minus two hints is 48 of 58: an 82% showing.
	if !n.heard("standing at 82%") {
		t.Error("expected the hint-adjusted percentage")
	}
	if !n.heard("your name comes first") {
		t.Error("expected the plain win ending")
	}
}

func TestMidGameRestoreKeepsSolvedProgress(t *testing.T) {
	r, _ := roomAt(t, "open_door", nil)
	ch := r.Join("Ada")
	do(t, r, ch.ID, "take", "key", "", "")

	rec := r.Snapshot()
	restored, err := game.RestoreRoom("test", mustSet(t), &recorder{}, MaxScore, rec, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if restored.Character("ada") == nil {
		t.Fatal("expected the character to survive the restart")
	}

	// The key stays taken: unlocking works without fishing it out again.
	if err := restored.Perform("ada", "use", "key", "door", ""); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if !restored.Object("door").Flags.Has(game.FlagUnlocked) {
		t.Error("expected the door to unlock straight away")
	}
}

func mustSet(t *testing.T) *game.StateSet {
	t.Helper()
	set, err := Set()
	if err != nil {
		t.Fatalf("building state set: %v", err)
	}
	return set
}
