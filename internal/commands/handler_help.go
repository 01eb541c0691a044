package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

var helpCatalogue = map[Action]HelpEntry{
	ActionGo:     {Action: "go", Description: "向指定方向移动", Example: "go 东"},
	ActionLook:   {Action: "look", Description: "查看当前场景或特定目标", Example: "look 老君"},
	ActionTalk:   {Action: "talk", Description: "与NPC交谈", Example: "talk 小黑"},
	ActionTake:   {Action: "take", Description: "拿起物品", Example: "take 灵气结晶"},
	ActionStatus: {Action: "status", Description: "查看角色状态", Example: "status"},
	ActionHelp:   {Action: "help", Description: "显示帮助信息", Example: "help"},
	ActionChat:   {Action: "chat", Description: "在聊天频道发言", Example: "chat 大家好"},
	ActionQuit:   {Action: "quit", Description: "退出游戏", Example: "quit"},
}

// handleHelp lists the actions this handler actually has registered, in
// registration order, so each transport's vocabulary documents itself.
func (h *Handler) handleHelp(ctx context.Context, p game.PlayerSnapshot, target string) (Outcome, error) {
	entries := make([]HelpEntry, 0, len(h.order))
	for _, a := range h.order {
		if e, ok := helpCatalogue[a]; ok {
			entries = append(entries, e)
		}
	}
	return &Help{Type: "help", Commands: entries}, nil
}
