package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/pixil98/go-adventure/internal/game"
)

const greetingTopic = "问候"

// handleTalk returns the greeting line of an npc present in the player's
// current scene.
func (h *Handler) handleTalk(ctx context.Context, p game.PlayerSnapshot, target string) (Outcome, error) {
	scene := h.world.Catalogue().Scene(p.SceneID)
	if scene == nil {
		return nil, fmt.Errorf("player %s in unknown scene %q", p.ID, p.SceneID)
	}

	if !slices.Contains(scene.NPCs, target) {
		return nil, NewUserError(fmt.Sprintf("这里没有%s。", target))
	}

	npc := h.world.Catalogue().NPC(target)
	return &NPCDialogue{
		Type:    "npc-dialogue",
		NPC:     npc.Name,
		Message: fmt.Sprintf("[%s]: %s", npc.Name, npc.Dialogue[greetingTopic]),
	}, nil
}
