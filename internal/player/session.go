package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-escaperoom/internal/commands"
	"github.com/pixil98/go-escaperoom/internal/game"
	"github.com/pixil98/go-escaperoom/internal/messaging"
)

// Session is one live connection playing a character in a room.
type Session struct {
	conn       io.ReadWriter
	charID     string
	roomID     string
	cmdHandler *commands.Handler

	msgs chan []byte
}

// Play runs the session's read loop until the player quits, the
// connection drops, or the context ends.
func (s *Session) Play(ctx context.Context) error {
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	// Show the player the room on arrival.
	if err := s.exec(ctx, "look"); err != nil {
		return fmt.Errorf("initial look: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg := <-s.msgs:
			if err := s.writeLine("\n" + string(msg)); err != nil {
				return err
			}
			if err := s.prompt(); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line == "" {
				if err := s.prompt(); err != nil {
					return err
				}
				continue
			}

			err := s.exec(ctx, line)
			if errors.Is(err, commands.ErrQuit) {
				if werr := s.writeLine("Goodbye!"); werr != nil {
					slog.Warn("writing goodbye", "char", s.charID, "error", werr)
				}
				return nil
			}
			if err != nil {
				return fmt.Errorf("command execution failed: %w", err)
			}

			if err := s.prompt(); err != nil {
				return err
			}
		}
	}
}

// exec runs one line and routes the reply or rejection back to the
// connection. Only system failures escape as errors.
func (s *Session) exec(ctx context.Context, line string) error {
	reply, err := s.cmdHandler.Exec(ctx, s.roomID, s.charID, line)
	if err != nil {
		var userErr *game.UserError
		if errors.As(err, &userErr) {
			return s.writeLine(userErr.Message)
		}
		return err
	}
	if reply != "" {
		return s.writeLine(reply)
	}
	return nil
}

func (s *Session) prompt() error {
	_, err := s.conn.Write([]byte("> "))
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(msg + "\n"))
	return err
}

// Subscriber hands sessions a live feed of their character's
// narrative subject. The embedded NATS server implements this.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Manager runs login and the session lifecycle for every incoming
// connection.
type Manager struct {
	rooms      *game.Manager
	roomIDs    []string
	cmdHandler *commands.Handler
	sub        Subscriber
}

func NewManager(rooms *game.Manager, roomIDs []string, cmd *commands.Handler, sub Subscriber) *Manager {
	return &Manager{
		rooms:      rooms,
		roomIDs:    roomIDs,
		cmdHandler: cmd,
		sub:        sub,
	}
}

// RunSession owns one connection end to end: name prompt, room
// choice, join, play, leave.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	name, err := Prompt(conn, "What is your name? ", WithValidator(validName), WithMaxTries(5))
	if err != nil {
		return fmt.Errorf("name prompt: %w", err)
	}

	roomID := m.roomIDs[0]
	if len(m.roomIDs) > 1 {
		roomID, err = PromptSelect(conn, "Choose a cabin:", m.roomIDs)
		if err != nil {
			return fmt.Errorf("room selection: %w", err)
		}
	}

	room := m.rooms.Room(roomID)
	char := room.Join(name)

	s := &Session{
		conn:       conn,
		charID:     char.ID,
		roomID:     roomID,
		cmdHandler: m.cmdHandler,
		msgs:       make(chan []byte, 16),
	}

	unsubscribe, err := m.sub.Subscribe(messaging.CharacterSubject(char.ID), func(data []byte) {
		select {
		case s.msgs <- data:
		default:
			// A session that can't drain its feed loses narrative
			// lines rather than blocking the room.
		}
	})
	if err != nil {
		return fmt.Errorf("subscribing %s: %w", char.ID, err)
	}
	defer unsubscribe()
	defer room.Leave(char.ID)

	return s.Play(ctx)
}

func validName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if len(name) < 2 || len(name) > 15 {
		return false, "Names are 2 to 15 letters.\n"
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false, "Letters only, please.\n"
		}
	}
	return true, ""
}
