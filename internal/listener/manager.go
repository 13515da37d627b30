package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-escaperoom/internal/player"
)

const banner = `  .-------------------------------------------------.
  |              THE JESTER'S CABIN                  |
  |   An escape room in twelve acts. Bring friends.  |
  '-------------------------------------------------'
`

// ConnectionManager hands accepted connections to the player session
// layer, regardless of which transport they arrived over.
type ConnectionManager struct {
	pm *player.Manager
}

func NewConnectionManager(pm *player.Manager) *ConnectionManager {
	return &ConnectionManager{
		pm: pm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if _, err := conn.Write([]byte(banner + "\n")); err != nil {
		slog.WarnContext(ctx, "writing banner", "error", err)
		return
	}
	if err := m.pm.RunSession(ctx, conn); err != nil {
		slog.WarnContext(ctx, "player session", "error", err)
	}
}
