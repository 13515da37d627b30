package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-escaperoom/internal/game"
)

// ErrQuit signals that the player asked to leave; the session layer
// owns the actual disconnect.
var ErrQuit = errors.New("player quit")

// RoomProvider hands out live rooms by id.
type RoomProvider interface {
	Room(id string) *game.Room
}

// Handler turns parsed player lines into engine calls: a few built-in
// verbs, everything else dispatched to the room's object set. Replies
// returned directly (look output, hints) go back on the caller's
// connection; narrative side effects travel through the room's
// notifier.
type Handler struct {
	rooms RoomProvider
}

func NewHandler(rooms RoomProvider) *Handler {
	return &Handler{rooms: rooms}
}

const helpText = `Commands:
  look [object]        - describe the room or an object
  <verb> <object>      - act on an object (open, read, feel, smell, taste,
                         listen, turn, sit, lie, kneel, climb, use X on Y...)
  enter <code> on <obj> - try a code on a lock
  stand                - get back on your feet
  hint                 - ask for help (costs score)
  progress             - show progress and hints used
  say <text>           - talk to the others in the room
  who                  - who is here
  quit                 - leave the game`

// Exec runs one command line for a character. The returned string is
// the direct reply to print, empty when the command speaks through
// room messaging instead.
func (h *Handler) Exec(ctx context.Context, roomID, charID, line string) (string, error) {
	in := Parse(line)
	if in.Verb == "" {
		return "", nil
	}

	room := h.rooms.Room(roomID)

	switch in.Verb {
	case "look", "l", "examine", "ex":
		target := strings.TrimSpace(in.Target + " " + in.Args)
		// "look at door" and "look door" are the same request.
		target = strings.TrimPrefix(target, "at ")
		return room.LookAt(charID, target)

	case "hint":
		return room.UseHint(), nil

	case "stand":
		return "", room.Stand(charID)

	case "progress", "score":
		return room.Scoreboard(), nil

	case "say":
		return "", room.Say(charID, in.Args)

	case "who":
		return whoList(room), nil

	case "help":
		return helpText, nil

	case "quit":
		return "", ErrQuit
	}

	return "", room.Perform(charID, in.Verb, in.Target, in.Second, in.Args)
}

func whoList(room *game.Room) string {
	chars := room.Characters()
	if len(chars) == 0 {
		return "Nobody is here. Not even you, somehow."
	}
	names := make([]string, 0, len(chars))
	for _, c := range chars {
		names = append(names, c.Name)
	}
	return fmt.Sprintf("In the room: %s.", strings.Join(names, ", "))
}
