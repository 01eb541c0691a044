package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/catalogue"
	"github.com/pixil98/go-errors"
)

type WorldConfig struct {
	// AssetPath points at a directory of JSON catalogue assets. When empty
	// the built-in world is used.
	AssetPath  string `json:"asset_path,omitempty"`
	EntryScene string `json:"entry_scene,omitempty"`
}

func (c *WorldConfig) Validate() error {
	el := errors.NewErrorList()

	if c.AssetPath != "" {
		if _, err := os.Stat(c.AssetPath); err != nil {
			el.Add(fmt.Errorf("asset_path: %w", err))
		}
	}

	return el.Err()
}

func (c *WorldConfig) BuildCatalogue() (*catalogue.Catalogue, error) {
	if c.AssetPath == "" {
		return catalogue.Default(), nil
	}

	entry := c.EntryScene
	if entry == "" {
		entry = catalogue.DefaultEntryScene
	}

	cat, err := catalogue.NewFromAssets(c.AssetPath, entry)
	if err != nil {
		return nil, fmt.Errorf("loading catalogue from %q: %w", c.AssetPath, err)
	}
	return cat, nil
}
