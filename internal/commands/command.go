package commands

import (
	"encoding/json"
	"strings"
)

// Action is one of the interpreter's recognized verbs.
type Action string

const (
	ActionGo     Action = "go"
	ActionLook   Action = "look"
	ActionTalk   Action = "talk"
	ActionTake   Action = "take"
	ActionStatus Action = "status"
	ActionHelp   Action = "help"
	ActionChat   Action = "chat"
	ActionQuit   Action = "quit"
)

// Command is one inbound request from a session. The networked transport
// delivers it pre-split as JSON; line transports build it with ParseLine.
type Command struct {
	Action string          `json:"action"`
	Target string          `json:"target,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ParseLine splits a raw text line into a command. The whole line is
// lower-cased before splitting, matching the standalone client; the first
// field is the action and the remainder is the target.
func ParseLine(line string) Command {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return Command{}
	}
	return Command{
		Action: fields[0],
		Target: strings.Join(fields[1:], " "),
	}
}
