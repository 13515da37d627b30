package commands

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/pixil98/go-escaperoom/internal/game"
	"github.com/pixil98/go-testutil"
)

type fakeProvider struct {
	room *game.Room
}

func (p *fakeProvider) Room(id string) *game.Room { return p.room }

// newTestHandler builds a handler over a one-room world with a door
// and a readable note.
func newTestHandler(t *testing.T) (*Handler, *game.Room, *sync.Map) {
	t.Helper()

	set, err := game.NewStateSet(
		&game.State{
			Name:     "only",
			Progress: 100,
			RoomDesc: "A small test cell.",
			Hints:    []string{"try the door"},
			Init: func(r *game.Room) {
				door := game.NewObject("door", nil, &game.Openable{})
				door.Desc = "A heavy oak door."
				r.AddObject(door)

				note := game.NewObject("note", nil, &game.Readable{
					OnRead: func(a *game.Action) { a.Char("It says: hello.") },
				})
				r.AddObject(note)
			},
		},
	)
	if err != nil {
		t.Fatalf("building state set: %v", err)
	}

	var msgs sync.Map
	notifier := game.NotifierFunc(func(charID, text string) {
		prev, _ := msgs.LoadOrStore(charID, "")
		msgs.Store(charID, prev.(string)+"\n"+text)
	})

	room := game.NewRoom("cell", set, notifier, 10, nil)
	return NewHandler(&fakeProvider{room: room}), room, &msgs
}

func sawText(msgs *sync.Map, charID, sub string) bool {
	v, ok := msgs.Load(charID)
	return ok && strings.Contains(v.(string), sub)
}

func TestHandler_Exec(t *testing.T) {
	tests := map[string]struct {
		line     string
		expReply string // substring of the direct reply
		expErr   string // substring of the returned error
	}{
		"empty line is ignored": {
			line: "",
		},
		"look describes the room": {
			line:     "look",
			expReply: "A small test cell.",
		},
		"look at object": {
			line:     "look at door",
			expReply: "A heavy oak door.",
		},
		"look at missing object": {
			line:   "look at unicorn",
			expErr: "You see no 'unicorn' here.",
		},
		"hint reveals the ladder": {
			line:     "hint",
			expReply: "try the door",
		},
		"progress summarizes standing": {
			line:     "progress",
			expReply: "Progress:",
		},
		"who lists the room": {
			line:     "who",
			expReply: "Ada",
		},
		"help text": {
			line:     "help",
			expReply: "Commands:",
		},
		"dispatched verb rejection": {
			line:   "eat door",
			expErr: "You can't eat the door.",
		},
		"unknown object rejection": {
			line:   "open hatch",
			expErr: "You see no 'hatch' here.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, room, _ := newTestHandler(t)
			room.Join("Ada")

			reply, err := h.Exec(context.Background(), "cell", "ada", tt.line)

			if tt.expErr != "" {
				if err == nil {
					t.Fatal("expected an error")
				}
				var ue *game.UserError
				if !errors.As(err, &ue) {
					t.Fatalf("expected a user error, got %T", err)
				}
				if !strings.Contains(err.Error(), tt.expErr) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.expErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.expReply == "" {
				testutil.AssertEqual(t, "reply", reply, "")
			} else if !strings.Contains(reply, tt.expReply) {
				t.Errorf("reply %q does not contain %q", reply, tt.expReply)
			}
		})
	}
}

func TestHandler_Quit(t *testing.T) {
	h, room, _ := newTestHandler(t)
	room.Join("Ada")

	_, err := h.Exec(context.Background(), "cell", "ada", "quit")

	if !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
}

func TestHandler_DispatchSpeaksThroughTheRoom(t *testing.T) {
	h, room, msgs := newTestHandler(t)
	room.Join("Ada")

	reply, err := h.Exec(context.Background(), "cell", "ada", "read note")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "direct reply", reply, "")
	if !sawText(msgs, "ada", "It says: hello.") {
		t.Error("expected the read handler to message the actor")
	}
}

func TestHandler_SayReachesEveryone(t *testing.T) {
	h, room, msgs := newTestHandler(t)
	room.Join("Ada")
	room.Join("Brin")

	_, err := h.Exec(context.Background(), "cell", "ada", "say follow me")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawText(msgs, "ada", "follow me") {
		t.Error("expected the speaker to hear themselves")
	}
	if !sawText(msgs, "brin", "Ada says") {
		t.Error("expected the observer to hear third-person speech")
	}
}
