package display

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-adventure/internal/commands"
)

// attributeOrder fixes the display order of the five base attributes.
var attributeOrder = []string{"灵力值", "生命值", "体力值", "记忆值", "梦想值"}

// Render converts a tagged outcome into the human-readable narration the
// line-oriented transports print.
func Render(o commands.Outcome) string {
	switch v := o.(type) {
	case *commands.Welcome:
		return fmt.Sprintf("%s\n%s", v.Message, v.Scene.Description)
	case *commands.SceneChange:
		return v.Message
	case *commands.SceneDescription:
		return v.Description
	case *commands.NPCDescription:
		return v.NPC.Description
	case *commands.NPCDialogue:
		return v.Message
	case *commands.ItemDescription:
		return v.Message
	case *commands.ItemTaken:
		return v.Message
	case *commands.PlayerStatus:
		return renderStatus(v.Player)
	case *commands.Help:
		return renderHelp(v.Commands)
	case *commands.ChatMessage:
		return fmt.Sprintf("[聊天] %s: %s", v.Player, v.Message)
	case *commands.PlayerJoined:
		return fmt.Sprintf("%s 加入了游戏。", v.Player)
	case *commands.PlayerLeft:
		return fmt.Sprintf("%s 离开了游戏。", v.Player)
	case *commands.Farewell:
		return v.Message
	case *commands.ErrorOutcome:
		return v.Err
	default:
		return ""
	}
}

func renderStatus(p commands.StatusPlayer) string {
	var b strings.Builder
	b.WriteString("=== 角色状态 ===\n")
	fmt.Fprintf(&b, "姓名: %s\n", p.Name)
	fmt.Fprintf(&b, "等级: %d\n", p.Level)
	fmt.Fprintf(&b, "经验: %d\n", p.Experience)
	for _, attr := range orderedAttributes(p.Attributes) {
		fmt.Fprintf(&b, "%s: %d\n", attr, p.Attributes[attr])
	}
	inventory := "空"
	if len(p.Inventory) > 0 {
		inventory = strings.Join(p.Inventory, ", ")
	}
	fmt.Fprintf(&b, "背包: %s\n", inventory)
	b.WriteString("================")
	return b.String()
}

func orderedAttributes(attrs map[string]int) []string {
	ordered := make([]string, 0, len(attrs))
	for _, attr := range attributeOrder {
		if _, ok := attrs[attr]; ok {
			ordered = append(ordered, attr)
		}
	}

	// Unknown attributes from custom catalogues come last, sorted.
	var extras []string
	for attr := range attrs {
		found := false
		for _, known := range attributeOrder {
			if attr == known {
				found = true
				break
			}
		}
		if !found {
			extras = append(extras, attr)
		}
	}
	sort.Strings(extras)

	return append(ordered, extras...)
}

func renderHelp(entries []commands.HelpEntry) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "可用命令:")
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s - %s (例: %s)", e.Action, e.Description, e.Example))
	}
	return strings.Join(lines, "\n")
}

// RenderWire converts a payload received from the message bus into text.
// Only broadcast-class payloads reach line sessions this way.
func RenderWire(data []byte) string {
	var payload struct {
		Type    string `json:"type"`
		Player  string `json:"player"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return string(data)
	}

	switch payload.Type {
	case "chat-message":
		return fmt.Sprintf("[聊天] %s: %s", payload.Player, payload.Message)
	case "player-joined":
		return fmt.Sprintf("%s 加入了游戏。", payload.Player)
	case "player-left":
		return fmt.Sprintf("%s 离开了游戏。", payload.Player)
	default:
		return string(data)
	}
}
