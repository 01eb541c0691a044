package listener

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/pixil98/go-adventure/internal/catalogue"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func newTestWebListener(t *testing.T) (*WebListener, *game.WorldState) {
	t.Helper()

	world := game.NewWorldState(catalogue.Default())
	return NewWebListener(8080, nil, world), world
}

func TestHandleHealth(t *testing.T) {
	l, world := newTestWebListener(t)
	if err := world.AddPlayer("p1", "玩家1"); err != nil {
		t.Fatalf("adding player: %v", err)
	}

	rec := httptest.NewRecorder()
	l.handleHealth(rec, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertEqual(t, "status code", rec.Code, 200)
	testutil.AssertEqual(t, "content type", rec.Header().Get("Content-Type"), "application/json")

	var payload struct {
		Status      string `json:"status"`
		Timestamp   string `json:"timestamp"`
		PlayerCount int    `json:"playerCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	testutil.AssertEqual(t, "status", payload.Status, "ok")
	testutil.AssertEqual(t, "player count", payload.PlayerCount, 1)
	if payload.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestHandleGameInfo(t *testing.T) {
	l, world := newTestWebListener(t)

	// Rosters in the response are live, not the catalogue seed.
	if err := world.AddPlayer("p1", "玩家1"); err != nil {
		t.Fatalf("adding player: %v", err)
	}
	if err := world.MovePlayer("p1", "森林"); err != nil {
		t.Fatalf("moving player: %v", err)
	}
	if _, err := world.ClaimItem("p1", "草药"); err != nil {
		t.Fatalf("claiming item: %v", err)
	}

	rec := httptest.NewRecorder()
	l.handleGameInfo(rec, httptest.NewRequest("GET", "/api/game-info", nil))

	testutil.AssertEqual(t, "status code", rec.Code, 200)

	var payload struct {
		Scenes map[string]struct {
			Name  string   `json:"name"`
			Items []string `json:"items"`
		} `json:"scenes"`
		NPCs        map[string]any `json:"npcs"`
		PlayerCount int            `json:"playerCount"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	testutil.AssertEqual(t, "scene count", len(payload.Scenes), 4)
	testutil.AssertEqual(t, "npc count", len(payload.NPCs), 3)
	testutil.AssertEqual(t, "player count", payload.PlayerCount, 1)

	forest, ok := payload.Scenes["森林"]
	if !ok {
		t.Fatal("expected 森林 in response")
	}
	for _, item := range forest.Items {
		if item == "草药" {
			t.Error("expected taken item absent from roster")
		}
	}
}

func TestHandlePlayers(t *testing.T) {
	l, world := newTestWebListener(t)
	if err := world.AddPlayer("p1", "玩家1"); err != nil {
		t.Fatalf("adding player: %v", err)
	}
	if err := world.MovePlayer("p1", "道观"); err != nil {
		t.Fatalf("moving player: %v", err)
	}

	rec := httptest.NewRecorder()
	l.handlePlayers(rec, httptest.NewRequest("GET", "/api/players", nil))

	testutil.AssertEqual(t, "status code", rec.Code, 200)

	var players []playerInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &players); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	testutil.AssertEqual(t, "player count", len(players), 1)
	testutil.AssertEqual(t, "id", players[0].ID, "p1")
	testutil.AssertEqual(t, "name", players[0].Name, "玩家1")
	testutil.AssertEqual(t, "scene", players[0].Scene, "道观")
	testutil.AssertEqual(t, "connected", players[0].Connected, true)
}

func TestHandlePlayersEmpty(t *testing.T) {
	l, _ := newTestWebListener(t)

	rec := httptest.NewRecorder()
	l.handlePlayers(rec, httptest.NewRequest("GET", "/api/players", nil))

	// An empty registry marshals as an empty array, not null.
	testutil.AssertEqual(t, "body", rec.Body.String(), "[]\n")
}
