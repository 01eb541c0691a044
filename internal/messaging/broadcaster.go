package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
)

// SessionSubject is the per-session subject all of a session's outbound
// payloads are published to.
func SessionSubject(id string) string {
	return fmt.Sprintf("session-%s", id)
}

// Publisher is the slice of the bus the broadcaster needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Broadcaster delivers one payload to every registered session, optionally
// excluding one. A failed publish to one session is logged and skipped; it
// never blocks or fails delivery to the others.
type Broadcaster struct {
	pub   Publisher
	world *game.WorldState
}

func NewBroadcaster(pub Publisher, world *game.WorldState) *Broadcaster {
	return &Broadcaster{
		pub:   pub,
		world: world,
	}
}

func (b *Broadcaster) Broadcast(o commands.Outcome, excludeID string) {
	data, err := json.Marshal(o)
	if err != nil {
		slog.Error("marshalling broadcast payload", "error", err)
		return
	}

	for _, p := range b.world.Players() {
		if p.ID == excludeID || !p.Connected {
			continue
		}
		if err := b.pub.Publish(SessionSubject(p.ID), data); err != nil {
			slog.Warn("publishing to session", "session", p.ID, "error", err)
		}
	}
}

// Send delivers one payload to a single session.
func (b *Broadcaster) Send(id string, o commands.Outcome) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshalling payload: %w", err)
	}
	return b.pub.Publish(SessionSubject(id), data)
}
