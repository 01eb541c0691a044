package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-testutil"
)

func TestRender(t *testing.T) {
	tests := map[string]struct {
		outcome commands.Outcome
		exp     string
	}{
		"scene change": {
			outcome: &commands.SceneChange{Type: "scene-change", Message: "你向东走去，来到了森林。"},
			exp:     "你向东走去，来到了森林。",
		},
		"scene description": {
			outcome: &commands.SceneDescription{Type: "scene-description", Description: "一片茂密的森林。"},
			exp:     "一片茂密的森林。",
		},
		"npc dialogue": {
			outcome: &commands.NPCDialogue{Type: "npc-dialogue", NPC: "老君", Message: "[老君]: 你好啊。"},
			exp:     "[老君]: 你好啊。",
		},
		"item taken": {
			outcome: &commands.ItemTaken{Type: "item-taken", Item: "草药", Message: "你拿起了草药。"},
			exp:     "你拿起了草药。",
		},
		"chat": {
			outcome: &commands.ChatMessage{Type: "chat-message", Player: "玩家7", Message: "大家好"},
			exp:     "[聊天] 玩家7: 大家好",
		},
		"player joined": {
			outcome: &commands.PlayerJoined{Type: "player-joined", Player: "玩家7"},
			exp:     "玩家7 加入了游戏。",
		},
		"player left": {
			outcome: &commands.PlayerLeft{Type: "player-left", Player: "玩家7"},
			exp:     "玩家7 离开了游戏。",
		},
		"farewell": {
			outcome: &commands.Farewell{Type: "farewell", Message: "游戏结束，再见！"},
			exp:     "游戏结束，再见！",
		},
		"error": {
			outcome: commands.NewError("未知命令: dance"),
			exp:     "未知命令: dance",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "rendered", Render(tt.outcome), tt.exp)
		})
	}
}

func TestRenderStatus(t *testing.T) {
	out := Render(&commands.PlayerStatus{
		Type: "player-status",
		Player: commands.StatusPlayer{
			Name:       "玩家7",
			Level:      1,
			Experience: 0,
			Attributes: map[string]int{"灵力值": 100, "生命值": 115, "体力值": 100, "记忆值": 0, "梦想值": 0},
			Inventory:  []string{"草药"},
			Scene:      "森林",
		},
	})

	lines := strings.Split(out, "\n")
	exp := []string{
		"=== 角色状态 ===",
		"姓名: 玩家7",
		"等级: 1",
		"经验: 0",
		"灵力值: 100",
		"生命值: 115",
		"体力值: 100",
		"记忆值: 0",
		"梦想值: 0",
		"背包: 草药",
		"================",
	}
	testutil.AssertEqual(t, "line count", len(lines), len(exp))
	for i := range exp {
		testutil.AssertEqual(t, "line", lines[i], exp[i])
	}
}

func TestRenderStatusEmptyInventory(t *testing.T) {
	out := Render(&commands.PlayerStatus{
		Type: "player-status",
		Player: commands.StatusPlayer{
			Name:       "玩家7",
			Attributes: map[string]int{},
			Inventory:  []string{},
		},
	})
	if !strings.Contains(out, "背包: 空") {
		t.Errorf("expected empty inventory marker, got %q", out)
	}
}

func TestRenderHelp(t *testing.T) {
	out := Render(&commands.Help{
		Type: "help",
		Commands: []commands.HelpEntry{
			{Action: "go", Description: "向指定方向移动", Example: "go 东"},
		},
	})
	exp := "可用命令:\ngo - 向指定方向移动 (例: go 东)"
	testutil.AssertEqual(t, "rendered", out, exp)
}

func TestRenderWire(t *testing.T) {
	tests := map[string]struct {
		data string
		exp  string
	}{
		"chat": {
			data: `{"type":"chat-message","player":"玩家7","message":"大家好","timestamp":"2025-06-01T12:00:00Z"}`,
			exp:  "[聊天] 玩家7: 大家好",
		},
		"joined": {
			data: `{"type":"player-joined","player":"玩家7"}`,
			exp:  "玩家7 加入了游戏。",
		},
		"left": {
			data: `{"type":"player-left","player":"玩家7"}`,
			exp:  "玩家7 离开了游戏。",
		},
		"unknown type passes through": {
			data: `{"type":"player-status"}`,
			exp:  `{"type":"player-status"}`,
		},
		"invalid json passes through": {
			data: `not json`,
			exp:  `not json`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "rendered", RenderWire([]byte(tt.data)), tt.exp)
		})
	}
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("word ", 30)
	for _, line := range strings.Split(Wrap(long), "\n") {
		if len(line) > DefaultWidth {
			t.Errorf("line exceeds %d columns: %q", DefaultWidth, line)
		}
	}
}
