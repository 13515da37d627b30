package states

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// The three questions the Jester asks on the walk down to the green.
// Answers are free text; anything unrecognized still resolves.
const (
	question1 = "\"First question,\" says the Jester. \"Once upon a time, " +
		"before the bells, my monkey's name belonged to a person. What was " +
		"Vale's full name?\" (*answer <name>)"
	question2 = "\"Second question. The old story blames a bandit king for " +
		"emptying half the village's purses. Who was the bandit king, " +
		"really?\" (*answer <name>)"
	question3 = "\"Last question. Two men loved the fairest maiden in the " +
		"village. Whom did she love?\" (*answer <name>)"
)

var valeReveal = map[string]string{
	"MAGUS": "The Jester nods slowly. \"Vale Bloch. The Magus built the " +
		"monkey and gave it his own name. Vanity, that man. But he built well.\"",
	"BLACKSMITH": "\"Warwick? The smith shoed horses, dear. He never built " +
		"anything that talked back.\" She grins like you almost had it.",
	"BAKER": "\"Bullington baked. Beautifully. But the only thing Agda ever " +
		"wound up was me.\" The bells shiver with her laugh.",
	"JESTER": "\"Me? I only wind him up in the mornings.\" She looks, " +
		"briefly, enormously flattered.",
	"OTHER": "\"Never heard of them,\" says the Jester. \"But names are " +
		"slippery things. I've lost one or two myself.\"",
}

var banditReveal = map[string]string{
	"JESTER": "For one heartbeat the bells go completely quiet. \"Clever,\" " +
		"she says, and does not deny a single thing.",
	"BLACKSMITH": "\"Poor Angus. Everyone blamed the smith - he had the " +
		"arms for it, I suppose. He never took so much as an apple.\"",
	"BAKER": "\"Agda? Agda couldn't rob a bread bin without apologizing " +
		"to it.\"",
	"MAGUS": "\"The Magus stole years, not purses. Worse crime, if you " +
		"ask me. Nobody ever does.\"",
	"OTHER": "\"An interesting theory,\" says the Jester, in the tone of " +
		"someone filing it away for a future prank.",
}

var maidenReveal = map[string]string{
	"BLACKSMITH": "She touches something at her throat that isn't there. " +
		"\"The smith, yes. The locket was his to give. She never got the " +
		"chance to answer him.\"",
	"BAKER": "\"She loved his pies,\" the Jester allows. \"That is not " +
		"nothing. But it is not that, either.\"",
	"MAGUS": "\"The Magus loved only his work. She knew it before he did.\"",
	"OTHER": "\"Perhaps. The heart keeps worse secrets than any chest " +
		"I ever locked.\"",
}

var contestEndings = map[game.ContestTier]string{
	game.TierMissed: "By the time you reach the green, the judges are " +
		"wiping their chins. The contest is over; the Jester won it " +
		"uncontested, as planned. She pats your shoulder with infuriating " +
		"kindness. \"Next year, bring a lockpick.\"",
	game.TierDefeat: "You take your place at the trestle table with " +
		"minutes to spare. It is a near thing - a very near thing - but " +
		"when the last tin is licked, the Jester's tally stands one pie " +
		"ahead of yours. She bows. You boo. The village cheers you both.",
	game.TierWin: "You eat like the cabin taught you: methodically, in " +
		"the right order, wasting nothing. When the judges call it, your " +
		"name comes first and the Jester's second. She congratulates you " +
		"with a grace so suspicious you check your pockets afterwards.",
	game.TierDominate: "It isn't even close. Pie after pie goes the way " +
		"of the coin, the stone, the chest, the door. The judges declare " +
		"a new village record. The Jester announces loudly that she let " +
		"you win. Nobody, not even Vale, pretends to believe her.",
}

// Stage twelve: out of the cabin and down to the contest, paying for
// the answers (and the hints) along the way. Terminal.
func state012() *game.State {
	return &game.State{
		Name:     "questions",
		Progress: 100,
		Greeting: `You are out, {{.Name}}! The cabin stands behind you, the
village green waits below, and the Jester walks beside you with Vale
riding her shoulder.

` + question1,
		RoomDesc: `The path down to the village green, lined with bunting.
Below, trestle tables groan under more pies than seems prudent. The
*jester walks beside you, asking her questions, and Vale rides her
shoulder pretending not to listen.`,
		Hints: []string{
			"Vale's own story named the four friends. The scribbles on the door said whose name the monkey wears.",
			"The night the bells went quiet: Vale heard bells on the bandit king's horse.",
			"The locket was signed 'W.', and only one of the maiden's suitors worked with fire.",
		},
		Init: func(r *game.Room) {
			jester := game.NewObject("jester", []string{"her", "questions"},
				&game.Listenable{OnListen: func(a *game.Action) {
					a.Char(currentQuestion(a.Actor))
				}})
			jester.Desc = "The Jester, in full bells, walking you down to the " +
				"green. She is enjoying this far too much."
			jester.SignatureHelp = "*answer <your answer>, or *listen to her " +
				"to hear the question again."
			jester.Verb("answer", answerQuestion)
			r.AddObject(jester)
		},
	}
}

func currentQuestion(ch *game.Character) string {
	switch {
	case !ch.Flags.Has(flagQuestion1):
		return question1
	case !ch.Flags.Has(flagQuestion2):
		return question2
	case !ch.Flags.Has(flagQuestion3):
		return question3
	}
	return "\"No more questions,\" says the Jester. \"Only pies.\""
}

func answerQuestion(a *game.Action) {
	ans := strings.TrimSpace(a.Args)
	if ans == "" {
		a.Char("Answer what? Try *answer <name>.")
		return
	}
	switch {
	case !a.Actor.Flags.Has(flagQuestion1):
		id := game.AnswerValeName.Classify(ans)
		a.Actor.Flags.SetValue(flagQuestion1, id)
		a.Char(valeReveal[id] + "\n\n" + question2)
	case !a.Actor.Flags.Has(flagQuestion2):
		id := game.AnswerBanditName.Classify(ans)
		a.Actor.Flags.SetValue(flagQuestion2, id)
		a.Char(banditReveal[id] + "\n\n" + question3)
	case !a.Actor.Flags.Has(flagQuestion3):
		id := game.AnswerMaidenName.Classify(ans)
		a.Actor.Flags.SetValue(flagQuestion3, id)
		a.Char(maidenReveal[id])
		a.Allf("%s has given the Jester all three answers.", a.Actor.Name)
		playEpilogue(a)
	default:
		a.Char("\"No more questions,\" says the Jester. \"Only pies.\"")
	}
}

// playEpilogue resolves and narrates one character's ending.
func playEpilogue(a *game.Action) {
	ep := a.Room.EpilogueFor(a.Actor,
		a.Actor.Flags.Value(flagQuestion1),
		a.Actor.Flags.Value(flagQuestion2),
		a.Actor.Flags.Value(flagQuestion3))

	var b strings.Builder
	b.WriteString("The Jester claps her hands once, and the green rushes " +
		"up to meet you.\n\n")
	b.WriteString(contestEndings[ep.Tier])
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Final tally for %s: %d points of %d, standing at %d%% "+
		"once the hints were paid for.",
		a.Actor.Name, a.Room.TotalScore(), a.Room.MaxScore(), ep.Percent)

	if len(a.Actor.Achievements) > 0 {
		names := make([]string, 0, len(a.Actor.Achievements))
		for n := range a.Actor.Achievements {
			names = append(names, n)
		}
		sort.Strings(names)
		b.WriteString("\n\nAchievements:")
		for _, n := range names {
			b.WriteString("\n  " + n + " - " + a.Actor.Achievements[n])
		}
	}

	a.Char(b.String())
}
