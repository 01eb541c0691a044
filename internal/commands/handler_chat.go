package commands

import (
	"context"
	"time"

	"github.com/pixil98/go-adventure/internal/game"
)

// handleChat fans a chat line out to every session, sender included, and
// returns the same payload to the caller.
func (h *Handler) handleChat(ctx context.Context, p game.PlayerSnapshot, message string) (Outcome, error) {
	msg := &ChatMessage{
		Type:      "chat-message",
		Player:    p.Name,
		Message:   message,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}

	h.broadcaster.Broadcast(msg, "")
	return msg, nil
}
