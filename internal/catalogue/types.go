package catalogue

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Scene is a location node in the world graph. Exits map a direction label
// to the destination scene's name.
type Scene struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits"`
	NPCs        []string          `json:"npcs"`
	Items       []string          `json:"items"`
}

func (s *Scene) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("scene name is required"))
	}
	if s.Description == "" {
		el.Add(fmt.Errorf("scene description is required"))
	}

	for dir, dest := range s.Exits {
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: destination is required", dir))
		}
	}

	return el.Err()
}

// NPC is a non-player character. Dialogue maps a topic label to one line of
// speech; the 问候 topic is what the npc says when talked to.
type NPC struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Dialogue    map[string]string `json:"dialogue"`
	Tasks       []string          `json:"tasks"`
}

func (n *NPC) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("npc name is required"))
	}
	if n.Description == "" {
		el.Add(fmt.Errorf("npc description is required"))
	}

	return el.Err()
}

// Task is offered by an NPC. There is no completion logic; tasks exist so
// that dialogue and the informational API can surface them.
type Task struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Giver        string            `json:"giver"`
	Status       string            `json:"status"`
	Reward       map[string]int    `json:"reward"`
	Requirements map[string]string `json:"requirements"`
}

func (t *Task) Validate() error {
	el := errors.NewErrorList()

	if t.Name == "" {
		el.Add(fmt.Errorf("task name is required"))
	}
	if t.Giver == "" {
		el.Add(fmt.Errorf("task giver is required"))
	}

	return el.Err()
}

// Item describes a takeable item and the attribute deltas applied the moment
// it moves from a scene into a player's inventory.
type Item struct {
	Name    string         `json:"name"`
	Effects map[string]int `json:"effects"`
}

func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item name is required")
	}
	return nil
}
