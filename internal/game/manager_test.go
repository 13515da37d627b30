package game

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pixil98/go-escaperoom/internal/storage"
	"github.com/pixil98/go-testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager(t *testing.T, dir string) *Manager {
	t.Helper()

	set, err := NewStateSet(
		&State{Name: "one", Next: "two", Progress: 50},
		&State{Name: "two", Progress: 100},
	)
	if err != nil {
		t.Fatalf("building state set: %v", err)
	}
	store, err := storage.NewFileStore[*RoomRecord](dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return NewManager(set, &recorder{}, store, 20, testLogger())
}

func TestManager_RoomGetOrCreate(t *testing.T) {
	m := newTestManager(t, t.TempDir())

	first := m.Room("alpha")
	if first == nil {
		t.Fatal("expected a room")
	}
	testutil.AssertEqual(t, "fresh state", first.StateName(), "one")

	if m.Room("alpha") != first {
		t.Error("expected the same live instance on a second lookup")
	}
	if m.Room("beta") == first {
		t.Error("expected distinct rooms per id")
	}
}

func TestManager_ResumesFromLedger(t *testing.T) {
	dir := t.TempDir()

	m := newTestManager(t, dir)
	r := m.Room("alpha")
	r.mu.Lock()
	r.Advance()
	r.mu.Unlock()
	if err := m.SaveAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A new manager over the same ledger picks up where play stopped.
	again := newTestManager(t, dir)
	resumed := again.Room("alpha")
	testutil.AssertEqual(t, "resumed state", resumed.StateName(), "two")
	testutil.AssertEqual(t, "resumed progress", resumed.Progress(), 50)
}

func TestManager_StaleLedgerStartsFresh(t *testing.T) {
	dir := t.TempDir()

	m := newTestManager(t, dir)
	store, err := storage.NewFileStore[*RoomRecord](dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	if err := store.Save("alpha", &RoomRecord{State: "removed_state", Progress: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.store = store

	r := m.Room("alpha")
	testutil.AssertEqual(t, "fresh state", r.StateName(), "one")
}

func TestManager_CloseSavesAndStops(t *testing.T) {
	dir := t.TempDir()

	m := newTestManager(t, dir)
	_ = m.Room("alpha")
	if err := m.Close("alpha"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again := newTestManager(t, dir)
	resumed := again.Room("alpha")
	testutil.AssertEqual(t, "saved state", resumed.StateName(), "one")

	// Closing an unknown id is a no-op.
	if err := m.Close("nope"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestManager_TickRunsWithoutRooms(t *testing.T) {
	m := newTestManager(t, t.TempDir())
	if err := m.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
