package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
)

// Broadcaster fans a payload out to every registered session, optionally
// excluding one. Delivery is fire-and-forget.
type Broadcaster interface {
	Broadcast(o Outcome, excludeID string)
}

type handlerFunc func(ctx context.Context, p game.PlayerSnapshot, target string) (Outcome, error)

// Handler interprets commands against the shared world. It is safe for
// concurrent use by distinct sessions; all shared-state access goes through
// the world's methods.
type Handler struct {
	world   *game.WorldState
	actions map[Action]handlerFunc
	order   []Action

	broadcaster Broadcaster
	now         func() time.Time
}

type HandlerOpt func(*Handler)

// WithChat enables the chat action, fanning messages out via b. Only the
// networked transports register it.
func WithChat(b Broadcaster) HandlerOpt {
	return func(h *Handler) {
		h.broadcaster = b
		h.register(ActionChat, h.handleChat)
	}
}

// WithQuit enables the quit action for line-oriented sessions.
func WithQuit() HandlerOpt {
	return func(h *Handler) {
		h.register(ActionQuit, h.handleQuit)
	}
}

func NewHandler(world *game.WorldState, opts ...HandlerOpt) *Handler {
	h := &Handler{
		world:   world,
		actions: make(map[Action]handlerFunc),
		now:     time.Now,
	}

	h.register(ActionGo, h.handleGo)
	h.register(ActionLook, h.handleLook)
	h.register(ActionTalk, h.handleTalk)
	h.register(ActionTake, h.handleTake)
	h.register(ActionStatus, h.handleStatus)

	for _, opt := range opts {
		opt(h)
	}

	// Registered last so the help listing puts the transport extras (chat,
	// quit) ahead of it, matching the client-facing command order.
	h.register(ActionHelp, h.handleHelp)

	return h
}

func (h *Handler) register(a Action, fn handlerFunc) {
	if _, exists := h.actions[a]; exists {
		return
	}
	h.actions[a] = fn
	h.order = append(h.order, a)
}

// Execute interprets one command for the given session and returns a tagged
// outcome. Every failure class - unknown session, unknown action, failed
// precondition - comes back as an error payload; nothing here terminates the
// connection.
func (h *Handler) Execute(ctx context.Context, playerID string, cmd Command) Outcome {
	p, err := h.world.Player(playerID)
	if err != nil {
		return NewError("玩家不存在")
	}
	h.world.MarkActive(playerID)

	fn, ok := h.actions[Action(cmd.Action)]
	if !ok {
		return NewError(fmt.Sprintf("未知命令: %s", cmd.Action))
	}

	out, err := fn(ctx, p, strings.TrimSpace(cmd.Target))
	if err != nil {
		var userErr *UserError
		if errors.As(err, &userErr) {
			return NewError(userErr.Message)
		}
		slog.ErrorContext(ctx, "executing command", "action", cmd.Action, "player", playerID, "error", err)
		return NewError("消息处理错误")
	}
	return out
}

// SceneSnapshot combines a scene's catalogue entry with its live item roster.
func (h *Handler) SceneSnapshot(name string) *SceneSnapshot {
	return SnapshotScene(h.world, name)
}

// SnapshotScene builds the client view of a scene: static catalogue fields
// plus the live item roster.
func SnapshotScene(world *game.WorldState, name string) *SceneSnapshot {
	scene := world.Catalogue().Scene(name)
	if scene == nil {
		return nil
	}
	return &SceneSnapshot{
		ID:          scene.ID,
		Name:        scene.Name,
		Description: scene.Description,
		Exits:       scene.Exits,
		NPCs:        scene.NPCs,
		Items:       world.SceneItems(name),
	}
}
