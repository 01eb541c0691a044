package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/pixil98/go-adventure/internal/game"
)

// handleLook describes the current scene, or a specific npc or item in it.
// It never mutates any state.
func (h *Handler) handleLook(ctx context.Context, p game.PlayerSnapshot, target string) (Outcome, error) {
	scene := h.world.Catalogue().Scene(p.SceneID)
	if scene == nil {
		return nil, fmt.Errorf("player %s in unknown scene %q", p.ID, p.SceneID)
	}

	if target == "" {
		return &SceneDescription{
			Type:        "scene-description",
			Description: scene.Description,
		}, nil
	}

	if slices.Contains(scene.NPCs, target) {
		return &NPCDescription{
			Type: "npc-description",
			NPC:  h.world.Catalogue().NPC(target),
		}, nil
	}

	// Items are checked against the live roster, not the catalogue: a taken
	// item is no longer visible.
	if slices.Contains(h.world.SceneItems(p.SceneID), target) {
		return &ItemDescription{
			Type:    "item-description",
			Message: fmt.Sprintf("你看到了%s，它似乎很有用。", target),
		}, nil
	}

	return nil, NewUserError(fmt.Sprintf("你没有看到%s。", target))
}
