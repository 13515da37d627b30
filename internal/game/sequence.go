package game

// SequenceStatus is the result of feeding one step to an Accumulator.
type SequenceStatus int

const (
	// SequenceProgress: the step extends a valid prefix (or the full
	// sequence isn't long enough to judge yet).
	SequenceProgress SequenceStatus = iota
	// SequenceComplete: the applied steps now equal the whole target.
	SequenceComplete
	// SequenceReset: the steps diverged; the accumulator was zeroed.
	SequenceReset
)

// Accumulator drives ordered-step puzzles: the childmaker recipe, the
// fertilizer, the chest lever. The applied list is valid only while
// it is a literal prefix of the target; any mismatch zeroes it, with
// no partial credit and no reordering.
type Accumulator struct {
	target  []string
	applied []string
	// strict accumulators judge immediately on each step (recipes);
	// lax ones only judge once the full length is reached (the chest
	// lever clicks along happily until the tenth move).
	judgeAtFullLength bool
}

// NewAccumulator returns a step accumulator judging each step as it
// arrives.
func NewAccumulator(target []string) *Accumulator {
	return &Accumulator{target: target}
}

// NewDeferredAccumulator returns an accumulator that only checks the
// sequence once it has reached the target's full length.
func NewDeferredAccumulator(target []string) *Accumulator {
	return &Accumulator{target: target, judgeAtFullLength: true}
}

// Apply feeds one step and reports the result. After SequenceReset
// the accumulator is empty and a fresh fully-correct run still
// succeeds.
func (s *Accumulator) Apply(step string) SequenceStatus {
	s.applied = append(s.applied, step)

	if s.judgeAtFullLength {
		if len(s.applied) < len(s.target) {
			return SequenceProgress
		}
		if s.matchesPrefix() && len(s.applied) == len(s.target) {
			return SequenceComplete
		}
		s.applied = nil
		return SequenceReset
	}

	if !s.matchesPrefix() {
		s.applied = nil
		return SequenceReset
	}
	if len(s.applied) == len(s.target) {
		return SequenceComplete
	}
	return SequenceProgress
}

// Complete reports whether the applied steps equal the whole target.
func (s *Accumulator) Complete() bool {
	return len(s.applied) == len(s.target) && s.matchesPrefix()
}

// Len returns how many steps are currently applied.
func (s *Accumulator) Len() int { return len(s.applied) }

// Applied returns a copy of the applied steps, for persistence.
func (s *Accumulator) Applied() []string {
	out := make([]string, len(s.applied))
	copy(out, s.applied)
	return out
}

// Reset empties the accumulator, e.g. when a mixing bowl is wiped
// clean by hand.
func (s *Accumulator) Reset() { s.applied = nil }

// restore reinstates persisted steps without judging them.
func (s *Accumulator) restore(steps []string) {
	s.applied = append([]string(nil), steps...)
}

func (s *Accumulator) matchesPrefix() bool {
	if len(s.applied) > len(s.target) {
		return false
	}
	for i, step := range s.applied {
		if s.target[i] != step {
			return false
		}
	}
	return true
}
