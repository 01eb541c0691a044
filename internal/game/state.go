package game

import "time"

// PlayerState holds all mutable state for one registered session. Fields are
// only written by WorldState methods while the world lock is held; the owning
// session's command stream is the sole source of those writes.
type PlayerState struct {
	ID   string
	Name string

	SceneID    string
	Attributes map[string]int
	Inventory  []string

	// Present in the data model but never mutated by any command.
	Level      int
	Experience int

	Connected    bool
	LastActivity time.Time
}

// PlayerSnapshot is a point-in-time copy of a player's state, safe to use
// outside the world lock.
type PlayerSnapshot struct {
	ID         string
	Name       string
	SceneID    string
	Attributes map[string]int
	Inventory  []string
	Level      int
	Experience int
	Connected  bool
}

func (p *PlayerState) snapshot() PlayerSnapshot {
	attrs := make(map[string]int, len(p.Attributes))
	for k, v := range p.Attributes {
		attrs[k] = v
	}
	inv := make([]string, len(p.Inventory))
	copy(inv, p.Inventory)

	return PlayerSnapshot{
		ID:         p.ID,
		Name:       p.Name,
		SceneID:    p.SceneID,
		Attributes: attrs,
		Inventory:  inv,
		Level:      p.Level,
		Experience: p.Experience,
		Connected:  p.Connected,
	}
}
