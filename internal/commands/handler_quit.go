package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// handleQuit signals the line session loop to end.
func (h *Handler) handleQuit(ctx context.Context, p game.PlayerSnapshot, target string) (Outcome, error) {
	return &Farewell{
		Type:    "farewell",
		Message: "游戏结束，再见！",
	}, nil
}
