package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/session"
)

// ConnectionManager hands accepted line-oriented connections (telnet, ssh)
// to a session loop.
type ConnectionManager struct {
	sessions *session.Manager
}

func NewConnectionManager(sessions *session.Manager) *ConnectionManager {
	return &ConnectionManager{
		sessions: sessions,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	if err := runLineSession(ctx, m.sessions, conn); err != nil {
		slog.WarnContext(ctx, "line session", "error", err)
	}
}
