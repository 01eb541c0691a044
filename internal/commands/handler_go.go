package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// handleGo moves the player through an exit of the current scene.
func (h *Handler) handleGo(ctx context.Context, p game.PlayerSnapshot, direction string) (Outcome, error) {
	scene := h.world.Catalogue().Scene(p.SceneID)
	if scene == nil {
		return nil, fmt.Errorf("player %s in unknown scene %q", p.ID, p.SceneID)
	}

	dest, ok := scene.Exits[direction]
	if !ok {
		return nil, NewUserError(fmt.Sprintf("你不能往%s走。", direction))
	}

	if err := h.world.MovePlayer(p.ID, dest); err != nil {
		return nil, fmt.Errorf("moving player %s to %q: %w", p.ID, dest, err)
	}

	snap := h.SceneSnapshot(dest)
	return &SceneChange{
		Type:    "scene-change",
		Scene:   snap,
		Message: fmt.Sprintf("你向%s走去，来到了%s。\n%s", direction, snap.Name, snap.Description),
	}, nil
}
