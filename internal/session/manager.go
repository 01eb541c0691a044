package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/messaging"
)

// msgBuffer bounds a session's pending outbound payloads. Broadcast is
// fire-and-forget: when a session's buffer is full the payload is dropped for
// that session rather than blocking the publisher.
const msgBuffer = 32

// Kind selects which command vocabulary a session speaks.
type Kind int

const (
	// KindSocket is the JSON websocket protocol: chat, no quit.
	KindSocket Kind = iota
	// KindLine is the line-oriented protocol: chat and quit.
	KindLine
)

// Bus is the slice of the message bus the manager needs.
type Bus interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Sender delivers payloads to sessions over the bus.
type Sender interface {
	Send(id string, o commands.Outcome) error
	Broadcast(o commands.Outcome, excludeID string)
}

// Manager owns the accept/teardown of sessions: identity assignment,
// registration, join/leave notifications, and purging on disconnect.
type Manager struct {
	world  *game.WorldState
	bus    Bus
	sender Sender

	socketHandler *commands.Handler
	lineHandler   *commands.Handler
}

func NewManager(world *game.WorldState, bus Bus, sender Sender, socketHandler, lineHandler *commands.Handler) *Manager {
	return &Manager{
		world:         world,
		bus:           bus,
		sender:        sender,
		socketHandler: socketHandler,
		lineHandler:   lineHandler,
	}
}

// Connect allocates a fresh identity, registers the player at the entry
// scene, subscribes the session's subject, and announces the join to everyone
// else. The returned welcome payload is handed to the transport to deliver.
func (m *Manager) Connect(ctx context.Context, kind Kind) (*Session, *commands.Welcome, error) {
	id := uuid.NewString()
	name := fmt.Sprintf("玩家%d", rand.IntN(1000))

	if err := m.world.AddPlayer(id, name); err != nil {
		return nil, nil, fmt.Errorf("registering player: %w", err)
	}

	msgs := make(chan []byte, msgBuffer)
	unsub, err := m.bus.Subscribe(messaging.SessionSubject(id), func(data []byte) {
		select {
		case msgs <- data:
		default:
			slog.Warn("session buffer full, dropping payload", "session", id)
		}
	})
	if err != nil {
		if removeErr := m.world.RemovePlayer(id); removeErr != nil {
			slog.Warn("removing player after subscribe failure", "session", id, "error", removeErr)
		}
		return nil, nil, fmt.Errorf("subscribing session subject: %w", err)
	}

	slog.InfoContext(ctx, "player connected", "session", id, "name", name)

	entry := m.world.Catalogue().EntryScene()
	welcome := commands.NewWelcome(id, m.handler(kind).SceneSnapshot(entry), m.world.PlayerCount())

	m.sender.Broadcast(commands.NewPlayerJoined(name), id)

	return &Session{
		id:    id,
		kind:  kind,
		msgs:  msgs,
		unsub: unsub,
		m:     m,
	}, welcome, nil
}

func (m *Manager) handler(kind Kind) *commands.Handler {
	if kind == KindLine {
		return m.lineHandler
	}
	return m.socketHandler
}
