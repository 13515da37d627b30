package game

import "time"

// Schedule runs fn after delay, under the room lock, unless the room
// has transitioned state or closed in the meantime. Narrative pacing
// only: a skipped callback is a correct outcome, not a lost event.
func (r *Room) Schedule(delay time.Duration, fn func(r *Room)) {
	epoch := r.epoch
	time.AfterFunc(delay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed || r.epoch != epoch {
			return
		}
		fn(r)
	})
}

// Cinematic plays a paced sequence of plain-text beats to the whole
// room, one per interval, starting immediately. A state transition
// mid-sequence cancels the remaining beats.
func (r *Room) Cinematic(interval time.Duration, beats ...string) {
	if len(beats) == 0 {
		return
	}
	r.Broadcast(beats[0])
	for i, beat := range beats[1:] {
		b := beat
		r.Schedule(time.Duration(i+1)*interval, func(r *Room) {
			r.Broadcast(b)
		})
	}
}
