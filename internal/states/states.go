// Package states holds the content of the Jester's cabin scenario:
// twelve stages from the locked front door to the pie-eating contest
// epilogue. The engine knows nothing about cabins; everything here is
// plain content wired onto the capability framework.
package states

import (
	"github.com/pixil98/go-escaperoom/internal/game"
)

// MaxScore is the rubric total across all stages. The epilogue
// percentage is computed against this.
const MaxScore = 58

// Set assembles the full cabin sequence.
func Set() (*game.StateSet, error) {
	return game.NewStateSet(
		state001(),
		state002(),
		state003(),
		state004(),
		state005(),
		state006(),
		state007(),
		state008(),
		state009(),
		state010(),
		state011(),
		state012(),
	)
}

// greeting is the situation recap every character gets on arrival,
// with a per-state last line splicing them into the story so far.
func greeting(tail string) string {
	return `This is the situation, {{.Name}}:

The Jester wants to win your village's yearly pie-eating contest. As
it turns out, you are one of her most dangerous opponents.

Today, the day of the contest, she invited you to her small cabin for
a 'strategy chat'. But she tricked you and now you are locked in! If
you don't get out before the contest starts she'll get to eat all
those pies on her own and surely win!

` + tail
}
