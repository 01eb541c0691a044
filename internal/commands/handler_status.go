package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// handleStatus returns the player's full self-view. It never fails.
func (h *Handler) handleStatus(ctx context.Context, p game.PlayerSnapshot, target string) (Outcome, error) {
	return &PlayerStatus{
		Type: "player-status",
		Player: StatusPlayer{
			Name:       p.Name,
			Level:      p.Level,
			Experience: p.Experience,
			Attributes: p.Attributes,
			Inventory:  p.Inventory,
			Scene:      p.SceneID,
		},
	}, nil
}
