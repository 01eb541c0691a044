package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/session"
)

const shutdownTimeout = 5 * time.Second

// WebListener serves the websocket wire protocol and the read-only
// informational endpoints on a single HTTP server.
type WebListener struct {
	port     uint16
	sessions *session.Manager
	world    *game.WorldState

	upgrader websocket.Upgrader
}

func NewWebListener(port uint16, sessions *session.Manager, world *game.WorldState) *WebListener {
	return &WebListener{
		port:     port,
		sessions: sessions,
		world:    world,
	}
}

func (l *WebListener) Start(ctx context.Context) error {
	// Websocket connections are hijacked from the HTTP server, so Shutdown
	// won't close them; cancel this context to end their session loops.
	connCtx, cancelConns := context.WithCancel(context.Background())
	defer cancelConns()

	var wg sync.WaitGroup

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		wg.Add(1)
		defer wg.Done()
		l.handleSocket(connCtx, w, r)
	})
	mux.HandleFunc("/api/game-info", l.handleGameInfo)
	mux.HandleFunc("/api/players", l.handlePlayers)
	mux.HandleFunc("/health", l.handleHealth)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", l.port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()

		// Stop accepting, then kick the live websocket sessions.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("shutting down web listener", "error", err)
		}
		cancelConns()
	}()

	slog.InfoContext(ctx, "listening for websocket clients", "port", l.port)

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http on port %d: %w", l.port, err)
	}

	wg.Wait()
	return nil
}

// handleSocket runs one websocket session: a reader goroutine feeds inbound
// messages into the select loop, which is the connection's only writer.
func (l *WebListener) handleSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("upgrading websocket connection", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	sess, welcome, err := l.sessions.Connect(ctx, session.KindSocket)
	if err != nil {
		slog.Error("accepting websocket session", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer sess.Disconnect()

	if err := conn.WriteJSON(welcome); err != nil {
		slog.Warn("sending welcome", "session", sess.ID(), "error", err)
		return
	}

	inbound := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case inbound <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case err := <-readErr:
			// Normal close or transport failure either way; cleanup happens
			// in the deferred Disconnect.
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read", "session", sess.ID(), "error", err)
			}
			return

		case data := <-sess.Msgs():
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				// Transport errors are non-fatal; the session ends when the
				// read side observes the close.
				slog.Warn("websocket write", "session", sess.ID(), "error", err)
			}

		case data := <-inbound:
			var cmd commands.Command
			if err := json.Unmarshal(data, &cmd); err != nil {
				if sendErr := sess.Deliver(commands.NewError("消息处理错误")); sendErr != nil {
					slog.Warn("delivering parse error", "session", sess.ID(), "error", sendErr)
				}
				continue
			}

			out := sess.Execute(ctx, cmd)
			if err := sess.Deliver(out); err != nil {
				slog.Warn("delivering outcome", "session", sess.ID(), "error", err)
			}
		}
	}
}

// handleGameInfo returns the full catalogue plus live scene rosters and the
// current population. Computed at call time; nothing is cached.
func (l *WebListener) handleGameInfo(w http.ResponseWriter, r *http.Request) {
	cat := l.world.Catalogue()

	scenes := make(map[string]*commands.SceneSnapshot, len(cat.Scenes()))
	for name := range cat.Scenes() {
		scenes[name] = commands.SnapshotScene(l.world, name)
	}

	writeJSON(w, map[string]any{
		"scenes":      scenes,
		"npcs":        cat.NPCs(),
		"tasks":       cat.Tasks(),
		"playerCount": l.world.PlayerCount(),
	})
}

type playerInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Level     int    `json:"level"`
	Scene     string `json:"currentScene"`
	Connected bool   `json:"connected"`
}

func (l *WebListener) handlePlayers(w http.ResponseWriter, r *http.Request) {
	snaps := l.world.Players()
	players := make([]playerInfo, 0, len(snaps))
	for _, p := range snaps {
		players = append(players, playerInfo{
			ID:        p.ID,
			Name:      p.Name,
			Level:     p.Level,
			Scene:     p.SceneID,
			Connected: p.Connected,
		})
	}
	writeJSON(w, players)
}

func (l *WebListener) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"playerCount": l.world.PlayerCount(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response", "error", err)
	}
}
