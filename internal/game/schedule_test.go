package game

import (
	"testing"
	"time"
)

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestSchedule_FiresAfterDelay(t *testing.T) {
	r, n := newTestRoom(t, nil)
	r.Join("Ada")

	r.mu.Lock()
	r.Schedule(10*time.Millisecond, func(r *Room) {
		r.Broadcast("The floor creaks.")
	})
	r.mu.Unlock()

	if !waitFor(t, 2*time.Second, func() bool { return n.contains("The floor creaks.") }) {
		t.Error("expected the scheduled broadcast to fire")
	}
}

func TestSchedule_StateTransitionCancels(t *testing.T) {
	r, n := newTestRoom(t, nil)
	r.Join("Ada")

	r.mu.Lock()
	r.Schedule(30*time.Millisecond, func(r *Room) {
		r.Broadcast("This belongs to the old chapter.")
	})
	r.Advance()
	r.mu.Unlock()

	time.Sleep(150 * time.Millisecond)
	if n.contains("This belongs to the old chapter.") {
		t.Error("a transition must cancel pending steps")
	}
}

func TestSchedule_CloseCancels(t *testing.T) {
	r, n := newTestRoom(t, nil)
	r.Join("Ada")

	r.mu.Lock()
	r.Schedule(30*time.Millisecond, func(r *Room) {
		r.Broadcast("Nobody should hear this.")
	})
	r.mu.Unlock()
	r.Close()

	time.Sleep(150 * time.Millisecond)
	if n.contains("Nobody should hear this.") {
		t.Error("closing the room must cancel pending steps")
	}
}

func TestSchedule_DuplicateAdvanceIsSafe(t *testing.T) {
	r, _ := newTestRoom(t, nil)
	r.Join("Ada")

	// Two deferred advances in the same epoch: the first transitions,
	// the second must no-op instead of skipping a chapter.
	r.mu.Lock()
	r.Schedule(10*time.Millisecond, func(r *Room) { r.Advance() })
	r.Schedule(15*time.Millisecond, func(r *Room) { r.Advance() })
	r.mu.Unlock()

	if !waitFor(t, 2*time.Second, func() bool { return r.StateName() == "two" }) {
		t.Fatal("expected the room to advance")
	}
	time.Sleep(100 * time.Millisecond)
	if got := r.StateName(); got != "two" {
		t.Errorf("expected to stay in state two, got %q", got)
	}
}

func TestCinematic_PlaysBeatsInOrder(t *testing.T) {
	r, n := newTestRoom(t, nil)
	r.Join("Ada")

	r.mu.Lock()
	r.Cinematic(10*time.Millisecond, "Beat one.", "Beat two.", "Beat three.")
	r.mu.Unlock()

	if !n.contains("Beat one.") {
		t.Error("the first beat plays immediately")
	}
	if !waitFor(t, 2*time.Second, func() bool { return n.contains("Beat three.") }) {
		t.Error("expected the last beat to play")
	}
}
