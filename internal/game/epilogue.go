package game

import "strings"

// HintPenalty is the score cost of every hint revealed.
const HintPenalty = 5

// AdjustedScore converts the raw rubric total into the final score:
// hints are paid for before the progress scaling, so an early quit
// with many hints can't dodge the penalty.
func AdjustedScore(raw, hintsUsed, maxScore, progress int) int {
	adjusted := raw - hintsUsed*HintPenalty
	if adjusted < 0 {
		adjusted = 0
	}
	if adjusted > maxScore {
		adjusted = maxScore
	}
	return adjusted * progress / 100
}

// AdjustedPercent is the adjusted score as a percentage of the
// ceiling.
func AdjustedPercent(raw, hintsUsed, maxScore, progress int) int {
	if maxScore <= 0 {
		return 0
	}
	return AdjustedScore(raw, hintsUsed, maxScore, progress) * 100 / maxScore
}

// ContestTier is the score-derived branch of the ending.
type ContestTier string

const (
	TierMissed   ContestTier = "missed"
	TierDefeat   ContestTier = "defeat"
	TierWin      ContestTier = "win"
	TierDominate ContestTier = "dominate"
)

// TierFor selects the contest outcome from the adjusted score
// percentage.
func TierFor(percent int) ContestTier {
	switch {
	case percent < 40:
		return TierMissed
	case percent < 70:
		return TierDefeat
	case percent < 95:
		return TierWin
	default:
		return TierDominate
	}
}

// AnswerMap classifies free-text final-question answers into a fixed
// identity set. Lookup is case-insensitive; anything unrecognized is
// "OTHER" rather than an error, so the ending always resolves.
type AnswerMap map[string]string

// Classify resolves a player answer to an identity.
func (m AnswerMap) Classify(answer string) string {
	if id, ok := m[strings.ToLower(strings.TrimSpace(answer))]; ok {
		return id
	}
	return "OTHER"
}

// The three final questions' answer tables. Common misspellings of
// the village names are accepted.
var (
	AnswerValeName = AnswerMap{
		"bloch":               "MAGUS",
		"vale bloch":          "MAGUS",
		"master vale bloch":   "MAGUS",
		"mr vale bloch":       "MAGUS",
		"warwick":             "BLACKSMITH",
		"warvick":             "BLACKSMITH",
		"varvick":             "BLACKSMITH",
		"vale warwick":        "BLACKSMITH",
		"master vale warwick": "BLACKSMITH",
		"jester":              "JESTER",
		"bullington":          "BAKER",
		"bulington":           "BAKER",
		"bullinton":           "BAKER",
		"vale bullington":     "BAKER",
	}
	AnswerBanditName = AnswerMap{
		"jester": "JESTER",
		"vale":   "MAGUS",
		"angus":  "BLACKSMITH",
		"agda":   "BAKER",
	}
	AnswerMaidenName = AnswerMap{
		"warwick":    "BLACKSMITH",
		"bullington": "BAKER",
		"bloch":      "MAGUS",
	}
)

// EpilogueInput is everything the ending selection needs, snapshotted
// from the room and the finishing character. Selection is pure: the
// same input always yields the same playback.
type EpilogueInput struct {
	CharName  string
	RawScore  int
	MaxScore  int
	HintsUsed int
	Progress  int

	// Stored classifications of the three final answers.
	ValeName   string
	BanditName string
	MaidenName string
}

// Epilogue holds the resolved branches. Fragment text lives with the
// state content; this carries only the selection.
type Epilogue struct {
	Percent    int
	Tier       ContestTier
	ValeName   string
	BanditName string
	MaidenName string
}

// EpilogueFor resolves a character's ending from the room's current
// standing. Handler-safe: callers already hold the room lock.
func (r *Room) EpilogueFor(ch *Character, valeName, banditName, maidenName string) Epilogue {
	return ResolveEpilogue(EpilogueInput{
		CharName:   ch.Name,
		RawScore:   r.TotalScore(),
		MaxScore:   r.maxScore,
		HintsUsed:  r.hintsUsed,
		Progress:   r.progress,
		ValeName:   valeName,
		BanditName: banditName,
		MaidenName: maidenName,
	})
}

// ResolveEpilogue computes the branching for one character's ending.
func ResolveEpilogue(in EpilogueInput) Epilogue {
	percent := AdjustedPercent(in.RawScore, in.HintsUsed, in.MaxScore, in.Progress)
	return Epilogue{
		Percent:    percent,
		Tier:       TierFor(percent),
		ValeName:   in.ValeName,
		BanditName: in.BanditName,
		MaidenName: in.MaidenName,
	}
}
