package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
)

// Session is one connected player: an identity, the channel carrying its
// outbound payloads, and the vocabulary its transport speaks.
type Session struct {
	id    string
	kind  Kind
	msgs  chan []byte
	unsub func()
	m     *Manager

	closeOnce sync.Once
}

// ID returns the session's assigned identity.
func (s *Session) ID() string {
	return s.id
}

// Msgs returns the channel of payloads published to this session's subject.
func (s *Session) Msgs() <-chan []byte {
	return s.msgs
}

// Execute interprets one command on behalf of this session.
func (s *Session) Execute(ctx context.Context, cmd commands.Command) commands.Outcome {
	return s.m.handler(s.kind).Execute(ctx, s.id, cmd)
}

// Deliver publishes a payload to this session's own subject so the session's
// writer loop remains the sole transport writer.
func (s *Session) Deliver(o commands.Outcome) error {
	return s.m.sender.Send(s.id, o)
}

// Disconnect announces the departure to all remaining sessions and purges the
// identity from the registry. It is idempotent: a second call, or a call for
// an already-removed identity, is a no-op.
func (s *Session) Disconnect() {
	s.closeOnce.Do(func() {
		s.unsub()

		snap, err := s.m.world.Player(s.id)
		if err != nil {
			return
		}

		s.m.sender.Broadcast(commands.NewPlayerLeft(snap.Name), s.id)

		if err := s.m.world.RemovePlayer(s.id); err != nil && err != game.ErrPlayerNotFound {
			slog.Warn("removing player", "session", s.id, "error", err)
		}

		slog.Info("player disconnected", "session", s.id, "name", snap.Name)
	})
}
