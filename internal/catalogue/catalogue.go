package catalogue

import (
	"fmt"
	"path/filepath"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Catalogue is the immutable seed data for the world: scenes, npcs, tasks,
// and the item effect table. It is loaded once at startup and shared
// read-only by every session.
type Catalogue struct {
	scenes     map[string]*Scene
	npcs       map[string]*NPC
	tasks      map[string]*Task
	items      map[string]*Item
	entryScene string
}

func New(scenes map[string]*Scene, npcs map[string]*NPC, tasks map[string]*Task, items map[string]*Item, entryScene string) (*Catalogue, error) {
	c := &Catalogue{
		scenes:     scenes,
		npcs:       npcs,
		tasks:      tasks,
		items:      items,
		entryScene: entryScene,
	}

	err := c.validate()
	if err != nil {
		return nil, fmt.Errorf("validating catalogue: %w", err)
	}

	return c, nil
}

// NewFromAssets loads a catalogue from a directory of JSON asset files with
// scenes/, npcs/, tasks/, and items/ subdirectories.
func NewFromAssets(path, entryScene string) (*Catalogue, error) {
	sceneStore, err := storage.NewFileStore[*Scene](filepath.Join(path, "scenes"))
	if err != nil {
		return nil, fmt.Errorf("loading scenes: %w", err)
	}
	npcStore, err := storage.NewFileStore[*NPC](filepath.Join(path, "npcs"))
	if err != nil {
		return nil, fmt.Errorf("loading npcs: %w", err)
	}
	taskStore, err := storage.NewFileStore[*Task](filepath.Join(path, "tasks"))
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	itemStore, err := storage.NewFileStore[*Item](filepath.Join(path, "items"))
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}

	// Asset ids are stable ascii identifiers; gameplay references entries by
	// their display name, so key the catalogue maps by name.
	scenes := map[string]*Scene{}
	for id, s := range sceneStore.GetAll() {
		if s.ID == "" {
			s.ID = id.String()
		}
		scenes[s.Name] = s
	}
	npcs := map[string]*NPC{}
	for id, n := range npcStore.GetAll() {
		if n.ID == "" {
			n.ID = id.String()
		}
		npcs[n.Name] = n
	}
	tasks := map[string]*Task{}
	for id, t := range taskStore.GetAll() {
		if t.ID == "" {
			t.ID = id.String()
		}
		tasks[t.Name] = t
	}
	items := map[string]*Item{}
	for _, i := range itemStore.GetAll() {
		items[i.Name] = i
	}

	return New(scenes, npcs, tasks, items, entryScene)
}

// validate checks referential integrity: every exit target, scene npc, scene
// item, npc task, and task giver must resolve to a catalogue entry.
func (c *Catalogue) validate() error {
	el := errors.NewErrorList()

	if _, ok := c.scenes[c.entryScene]; !ok {
		el.Add(fmt.Errorf("entry scene %q does not exist", c.entryScene))
	}

	for name, scene := range c.scenes {
		for dir, dest := range scene.Exits {
			if _, ok := c.scenes[dest]; !ok {
				el.Add(fmt.Errorf("scene %q: exit %s leads to unknown scene %q", name, dir, dest))
			}
		}
		for _, npc := range scene.NPCs {
			if _, ok := c.npcs[npc]; !ok {
				el.Add(fmt.Errorf("scene %q: unknown npc %q", name, npc))
			}
		}
		for _, item := range scene.Items {
			if _, ok := c.items[item]; !ok {
				el.Add(fmt.Errorf("scene %q: unknown item %q", name, item))
			}
		}
	}

	for name, npc := range c.npcs {
		for _, task := range npc.Tasks {
			if _, ok := c.tasks[task]; !ok {
				el.Add(fmt.Errorf("npc %q: unknown task %q", name, task))
			}
		}
	}

	for name, task := range c.tasks {
		if _, ok := c.npcs[task.Giver]; !ok {
			el.Add(fmt.Errorf("task %q: unknown giver %q", name, task.Giver))
		}
	}

	return el.Err()
}

// EntryScene returns the name of the scene new players start in.
func (c *Catalogue) EntryScene() string {
	return c.entryScene
}

// Scene returns the scene with the given name, or nil.
func (c *Catalogue) Scene(name string) *Scene {
	return c.scenes[name]
}

// NPC returns the npc with the given name, or nil.
func (c *Catalogue) NPC(name string) *NPC {
	return c.npcs[name]
}

// Task returns the task with the given name, or nil.
func (c *Catalogue) Task(name string) *Task {
	return c.tasks[name]
}

// Item returns the item with the given name, or nil.
func (c *Catalogue) Item(name string) *Item {
	return c.items[name]
}

// Scenes returns all scenes keyed by name.
func (c *Catalogue) Scenes() map[string]*Scene {
	return c.scenes
}

// NPCs returns all npcs keyed by name.
func (c *Catalogue) NPCs() map[string]*NPC {
	return c.npcs
}

// Tasks returns all tasks keyed by name.
func (c *Catalogue) Tasks() map[string]*Task {
	return c.tasks
}
