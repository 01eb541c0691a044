package commands

import (
	"github.com/pixil98/go-adventure/internal/catalogue"
)

// Outcome is the tagged result of interpreting one command. Every variant
// marshals to the wire payload the networked transport sends; the line
// transports render the same variants as text instead.
type Outcome interface {
	outcome()
}

// SceneSnapshot is a scene as a client sees it: the static catalogue fields
// plus the live item roster.
type SceneSnapshot struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits"`
	NPCs        []string          `json:"npcs"`
	Items       []string          `json:"items"`
}

type Welcome struct {
	Type        string         `json:"type"`
	PlayerID    string         `json:"playerId"`
	Scene       *SceneSnapshot `json:"scene"`
	PlayerCount int            `json:"playerCount"`
	Message     string         `json:"message"`
}

func (*Welcome) outcome() {}

func NewWelcome(playerID string, scene *SceneSnapshot, playerCount int) *Welcome {
	return &Welcome{
		Type:        "welcome",
		PlayerID:    playerID,
		Scene:       scene,
		PlayerCount: playerCount,
		Message:     "欢迎来到众生之门文本游戏！",
	}
}

type PlayerJoined struct {
	Type   string `json:"type"`
	Player string `json:"player"`
}

func (*PlayerJoined) outcome() {}

func NewPlayerJoined(name string) *PlayerJoined {
	return &PlayerJoined{Type: "player-joined", Player: name}
}

type PlayerLeft struct {
	Type   string `json:"type"`
	Player string `json:"player"`
}

func (*PlayerLeft) outcome() {}

func NewPlayerLeft(name string) *PlayerLeft {
	return &PlayerLeft{Type: "player-left", Player: name}
}

type SceneChange struct {
	Type    string         `json:"type"`
	Scene   *SceneSnapshot `json:"scene"`
	Message string         `json:"message"`
}

func (*SceneChange) outcome() {}

type SceneDescription struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

func (*SceneDescription) outcome() {}

type NPCDescription struct {
	Type string         `json:"type"`
	NPC  *catalogue.NPC `json:"npc"`
}

func (*NPCDescription) outcome() {}

type NPCDialogue struct {
	Type    string `json:"type"`
	NPC     string `json:"npc"`
	Message string `json:"message"`
}

func (*NPCDialogue) outcome() {}

type ItemDescription struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (*ItemDescription) outcome() {}

// TakenPlayer is the slice of player state echoed back with an item-taken
// payload.
type TakenPlayer struct {
	Inventory  []string       `json:"inventory"`
	Attributes map[string]int `json:"attributes"`
}

type ItemTaken struct {
	Type    string      `json:"type"`
	Item    string      `json:"item"`
	Player  TakenPlayer `json:"player"`
	Message string      `json:"message"`
}

func (*ItemTaken) outcome() {}

// StatusPlayer is the full self-view returned by the status action.
type StatusPlayer struct {
	Name       string         `json:"name"`
	Level      int            `json:"level"`
	Experience int            `json:"experience"`
	Attributes map[string]int `json:"attributes"`
	Inventory  []string       `json:"inventory"`
	Scene      string         `json:"currentScene"`
}

type PlayerStatus struct {
	Type   string       `json:"type"`
	Player StatusPlayer `json:"player"`
}

func (*PlayerStatus) outcome() {}

type HelpEntry struct {
	Action      string `json:"action"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

type Help struct {
	Type     string      `json:"type"`
	Commands []HelpEntry `json:"commands"`
}

func (*Help) outcome() {}

type ChatMessage struct {
	Type      string `json:"type"`
	Player    string `json:"player"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (*ChatMessage) outcome() {}

// Farewell ends a line session. It never travels the websocket wire; the
// networked variant has no quit action.
type Farewell struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (*Farewell) outcome() {}

// ErrorOutcome carries any failure back to the originating session as a
// normal payload, never as a transport-level failure.
type ErrorOutcome struct {
	Err string `json:"error"`
}

func (*ErrorOutcome) outcome() {}

func NewError(msg string) *ErrorOutcome {
	return &ErrorOutcome{Err: msg}
}
