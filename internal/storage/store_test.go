package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

type testSpec struct {
	Name string `json:"name"`
}

func (s *testSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name must be set")
	}
	return nil
}

func writeTestAsset(t *testing.T, dir, file, id, name string) {
	t.Helper()

	data := fmt.Sprintf(`{"version": 1, "id": %q, "spec": {"name": %q}}`, id, name)
	if err := os.WriteFile(filepath.Join(dir, file), []byte(data), 0644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}
}

func TestFileStoreLoad(t *testing.T) {
	tests := map[string]struct {
		setup  func(t *testing.T, dir string)
		expErr bool
		expLen int
	}{
		"empty dir": {
			setup:  func(t *testing.T, dir string) {},
			expLen: 0,
		},
		"single asset": {
			setup: func(t *testing.T, dir string) {
				writeTestAsset(t, dir, "a.json", "herb", "草药")
			},
			expLen: 1,
		},
		"nested dirs": {
			setup: func(t *testing.T, dir string) {
				sub := filepath.Join(dir, "more")
				if err := os.Mkdir(sub, 0755); err != nil {
					t.Fatal(err)
				}
				writeTestAsset(t, dir, "a.json", "herb", "草药")
				writeTestAsset(t, sub, "b.json", "crystal", "灵气结晶")
			},
			expLen: 2,
		},
		"non-json ignored": {
			setup: func(t *testing.T, dir string) {
				writeTestAsset(t, dir, "a.json", "herb", "草药")
				if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			expLen: 1,
		},
		"duplicate key": {
			setup: func(t *testing.T, dir string) {
				writeTestAsset(t, dir, "a.json", "herb", "草药")
				writeTestAsset(t, dir, "b.json", "herb", "另一种草药")
			},
			expErr: true,
		},
		"invalid spec": {
			setup: func(t *testing.T, dir string) {
				writeTestAsset(t, dir, "a.json", "herb", "")
			},
			expErr: true,
		},
		"invalid identifier": {
			setup: func(t *testing.T, dir string) {
				writeTestAsset(t, dir, "a.json", "herb!", "草药")
			},
			expErr: true,
		},
		"malformed json": {
			setup: func(t *testing.T, dir string) {
				if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte("{"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			store, err := NewFileStore[*testSpec](dir)
			if tt.expErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "record count", len(store.GetAll()), tt.expLen)
		})
	}
}

func TestFileStoreGet(t *testing.T) {
	dir := t.TempDir()
	writeTestAsset(t, dir, "a.json", "herb", "草药")

	store, err := NewFileStore[*testSpec](dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := store.Get("herb")
	if got == nil {
		t.Fatal("expected record for herb")
	}
	testutil.AssertEqual(t, "name", got.Name, "草药")

	missing := store.Get("missing")
	if missing != nil {
		t.Errorf("expected nil for missing record, got %+v", missing)
	}
}

func TestFileStoreMissingPath(t *testing.T) {
	_, err := NewFileStore[*testSpec](filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("expected error for missing path")
	}
}
