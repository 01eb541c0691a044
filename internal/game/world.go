package game

import (
	"sync"
	"time"

	"github.com/pixil98/go-adventure/internal/catalogue"
)

// WorldState is the single source of truth for all mutable game state: the
// session registry and the per-scene item rosters. All access goes through
// its methods to ensure thread-safety; the catalogue itself is immutable and
// needs no locking.
type WorldState struct {
	mu  sync.RWMutex
	cat *catalogue.Catalogue

	players map[string]*PlayerState
	scenes  map[string]*sceneState
}

// sceneState is the mutable overlay on a catalogue scene: the items still
// present. The roster shrinks when items are taken and never regrows.
type sceneState struct {
	items []string
}

// NewWorldState derives the mutable scene overlays from the catalogue.
func NewWorldState(cat *catalogue.Catalogue) *WorldState {
	scenes := make(map[string]*sceneState, len(cat.Scenes()))
	for name, scene := range cat.Scenes() {
		items := make([]string, len(scene.Items))
		copy(items, scene.Items)
		scenes[name] = &sceneState{items: items}
	}

	return &WorldState{
		cat:     cat,
		players: make(map[string]*PlayerState),
		scenes:  scenes,
	}
}

// Catalogue returns the immutable seed data.
func (w *WorldState) Catalogue() *catalogue.Catalogue {
	return w.cat
}

// AddPlayer registers a new session at the entry scene with default
// attributes.
func (w *WorldState) AddPlayer(id, name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.players[id]; exists {
		return ErrPlayerExists
	}

	w.players[id] = &PlayerState{
		ID:           id,
		Name:         name,
		SceneID:      w.cat.EntryScene(),
		Attributes:   catalogue.DefaultAttributes(),
		Inventory:    []string{},
		Level:        1,
		Experience:   0,
		Connected:    true,
		LastActivity: time.Now(),
	}
	return nil
}

// RemovePlayer removes a session from the registry. The identity is not
// reachable afterwards; late commands addressed to it fail with
// ErrPlayerNotFound.
func (w *WorldState) RemovePlayer(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.players[id]; !exists {
		return ErrPlayerNotFound
	}

	delete(w.players, id)
	return nil
}

// Player returns a snapshot of the player's state.
func (w *WorldState) Player(id string) (PlayerSnapshot, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, ok := w.players[id]
	if !ok {
		return PlayerSnapshot{}, ErrPlayerNotFound
	}
	return p.snapshot(), nil
}

// Players returns a snapshot of every registered player.
func (w *WorldState) Players() []PlayerSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snaps := make([]PlayerSnapshot, 0, len(w.players))
	for _, p := range w.players {
		snaps = append(snaps, p.snapshot())
	}
	return snaps
}

// PlayerCount returns the current population.
func (w *WorldState) PlayerCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.players)
}

// MovePlayer sets the player's current scene.
func (w *WorldState) MovePlayer(id, scene string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.players[id]
	if !ok {
		return ErrPlayerNotFound
	}
	if _, ok := w.scenes[scene]; !ok {
		return ErrUnknownScene
	}

	p.SceneID = scene
	return nil
}

// MarkActive resets the player's idle timer.
func (w *WorldState) MarkActive(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if p, ok := w.players[id]; ok {
		p.LastActivity = time.Now()
	}
}

// SceneItems returns a copy of the items currently present in a scene.
func (w *WorldState) SceneItems(scene string) []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	ss, ok := w.scenes[scene]
	if !ok {
		return nil
	}
	items := make([]string, len(ss.items))
	copy(items, ss.items)
	return items
}

// ClaimItem moves one item from the player's current scene into their
// inventory and applies its attribute deltas, all under a single lock hold.
// It is the only mutator of shared scene data and is linearizable: when two
// sessions race for the same item, exactly one call succeeds and the rest
// return ErrItemNotPresent. A player that is gone by the time the claim runs
// gets ErrPlayerNotFound and the roster is left untouched.
func (w *WorldState) ClaimItem(id, item string) (PlayerSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.players[id]
	if !ok {
		return PlayerSnapshot{}, ErrPlayerNotFound
	}
	ss, ok := w.scenes[p.SceneID]
	if !ok {
		return PlayerSnapshot{}, ErrUnknownScene
	}

	found := false
	for i, present := range ss.items {
		if present == item {
			ss.items = append(ss.items[:i], ss.items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return PlayerSnapshot{}, ErrItemNotPresent
	}

	p.Inventory = append(p.Inventory, item)
	// The roster only lists catalogue-validated items, so the lookup cannot
	// miss once the claim succeeded.
	if spec := w.cat.Item(item); spec != nil {
		for attr, delta := range spec.Effects {
			p.Attributes[attr] += delta
		}
	}
	return p.snapshot(), nil
}
