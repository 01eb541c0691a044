package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-adventure/internal/game"
)

// handleTake claims an item from the scene's roster, appends it to the
// player's inventory, and applies its attribute deltas. The claim is a single
// atomic world operation: of two sessions racing for the last copy of an
// item, exactly one gets the item-taken outcome and the reward, and a claim
// for a vanished player leaves the roster untouched.
func (h *Handler) handleTake(ctx context.Context, p game.PlayerSnapshot, target string) (Outcome, error) {
	snap, err := h.world.ClaimItem(p.ID, target)
	if err != nil {
		if errors.Is(err, game.ErrItemNotPresent) {
			return nil, NewUserError(fmt.Sprintf("这里没有%s可以拿。", target))
		}
		return nil, fmt.Errorf("claiming %q for player %s: %w", target, p.ID, err)
	}

	return &ItemTaken{
		Type: "item-taken",
		Item: target,
		Player: TakenPlayer{
			Inventory:  snap.Inventory,
			Attributes: snap.Attributes,
		},
		Message: fmt.Sprintf("你拿起了%s。", target),
	}, nil
}
