package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/catalogue"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

// fakeBus records subscriptions and lets tests push payloads to them.
type fakeBus struct {
	handlers map[string]func([]byte)
	unsubbed []string
	failNext bool
}

func newFakeBus() *fakeBus {
	return &fakeBus{handlers: map[string]func([]byte){}}
}

func (b *fakeBus) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	if b.failNext {
		b.failNext = false
		return nil, fmt.Errorf("subscribe failed")
	}
	b.handlers[subject] = handler
	return func() {
		delete(b.handlers, subject)
		b.unsubbed = append(b.unsubbed, subject)
	}, nil
}

// fakeSender records sends and broadcasts.
type fakeSender struct {
	sent       map[string][]commands.Outcome
	broadcasts []commands.Outcome
	excludes   []string
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: map[string][]commands.Outcome{}}
}

func (s *fakeSender) Send(id string, o commands.Outcome) error {
	s.sent[id] = append(s.sent[id], o)
	return nil
}

func (s *fakeSender) Broadcast(o commands.Outcome, excludeID string) {
	s.broadcasts = append(s.broadcasts, o)
	s.excludes = append(s.excludes, excludeID)
}

func newTestManager(t *testing.T) (*Manager, *game.WorldState, *fakeBus, *fakeSender) {
	t.Helper()

	world := game.NewWorldState(catalogue.Default())
	bus := newFakeBus()
	sender := newFakeSender()
	socketHandler := commands.NewHandler(world, commands.WithChat(sender))
	lineHandler := commands.NewHandler(world, commands.WithChat(sender), commands.WithQuit())
	return NewManager(world, bus, sender, socketHandler, lineHandler), world, bus, sender
}

func TestConnect(t *testing.T) {
	m, world, bus, sender := newTestManager(t)

	sess, welcome, err := m.Connect(context.Background(), KindSocket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The player is registered at the entry scene under a generated name.
	p, err := world.Player(sess.ID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(p.Name, "玩家") {
		t.Errorf("expected generated player name, got %q", p.Name)
	}
	testutil.AssertEqual(t, "scene", p.SceneID, "蓝溪镇")

	testutil.AssertEqual(t, "welcome type", welcome.Type, "welcome")
	testutil.AssertEqual(t, "welcome player", welcome.PlayerID, sess.ID())
	testutil.AssertEqual(t, "welcome scene", welcome.Scene.Name, "蓝溪镇")
	testutil.AssertEqual(t, "welcome count", welcome.PlayerCount, 1)

	// The session's subject is subscribed and the join went to everyone else.
	if _, ok := bus.handlers["session-"+sess.ID()]; !ok {
		t.Error("expected session subject subscription")
	}
	testutil.AssertEqual(t, "broadcasts", len(sender.broadcasts), 1)
	joined, ok := sender.broadcasts[0].(*commands.PlayerJoined)
	if !ok {
		t.Fatalf("expected player-joined broadcast, got %T", sender.broadcasts[0])
	}
	testutil.AssertEqual(t, "joined name", joined.Player, p.Name)
	testutil.AssertEqual(t, "exclude", sender.excludes[0], sess.ID())
}

func TestConnectSubscribeFailure(t *testing.T) {
	m, world, bus, _ := newTestManager(t)
	bus.failNext = true

	_, _, err := m.Connect(context.Background(), KindSocket)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// Registration is rolled back so the failed session leaves no ghost.
	testutil.AssertEqual(t, "count", world.PlayerCount(), 0)
}

func TestSessionMsgs(t *testing.T) {
	m, _, bus, _ := newTestManager(t)

	sess, _, err := m.Connect(context.Background(), KindSocket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bus.handlers["session-"+sess.ID()]([]byte(`{"type":"player-joined","player":"玩家9"}`))

	select {
	case data := <-sess.Msgs():
		var payload struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			t.Fatalf("unmarshalling payload: %v", err)
		}
		testutil.AssertEqual(t, "type", payload.Type, "player-joined")
	default:
		t.Fatal("expected a buffered payload")
	}
}

func TestSessionMsgsDropWhenFull(t *testing.T) {
	m, _, bus, _ := newTestManager(t)

	sess, _, err := m.Connect(context.Background(), KindSocket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Overfill the buffer; the excess payload is dropped, not blocking.
	handler := bus.handlers["session-"+sess.ID()]
	for i := 0; i < msgBuffer+1; i++ {
		handler([]byte(`{}`))
	}
	testutil.AssertEqual(t, "buffered", len(sess.Msgs()), msgBuffer)
}

func TestSessionExecuteVocabulary(t *testing.T) {
	m, _, _, _ := newTestManager(t)
	ctx := context.Background()

	socket, _, err := m.Connect(ctx, KindSocket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line, _, err := m.Connect(ctx, KindLine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only line sessions speak quit.
	if _, ok := socket.Execute(ctx, commands.Command{Action: "quit"}).(*commands.ErrorOutcome); !ok {
		t.Error("expected quit rejected for socket session")
	}
	if _, ok := line.Execute(ctx, commands.Command{Action: "quit"}).(*commands.Farewell); !ok {
		t.Error("expected farewell for line session")
	}
}

func TestSessionDeliver(t *testing.T) {
	m, _, _, sender := newTestManager(t)

	sess, _, err := m.Connect(context.Background(), KindSocket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := commands.NewError("未知命令: dance")
	if err := sess.Deliver(out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "sent", len(sender.sent[sess.ID()]), 1)
}

func TestDisconnect(t *testing.T) {
	m, world, bus, sender := newTestManager(t)
	ctx := context.Background()

	sess, _, err := m.Connect(ctx, KindSocket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	name := mustName(t, world, sess.ID())

	sess.Disconnect()

	if _, err := world.Player(sess.ID()); err == nil {
		t.Error("expected player removed from registry")
	}
	testutil.AssertEqual(t, "unsubscribed", len(bus.unsubbed), 1)

	// One join, one leave.
	testutil.AssertEqual(t, "broadcasts", len(sender.broadcasts), 2)
	left, ok := sender.broadcasts[1].(*commands.PlayerLeft)
	if !ok {
		t.Fatalf("expected player-left broadcast, got %T", sender.broadcasts[1])
	}
	testutil.AssertEqual(t, "left name", left.Player, name)

	// Late commands addressed to the removed identity fail cleanly.
	out := sess.Execute(ctx, commands.Command{Action: "status"})
	errOut, ok := out.(*commands.ErrorOutcome)
	if !ok {
		t.Fatalf("expected error outcome, got %T", out)
	}
	testutil.AssertEqual(t, "message", errOut.Err, "玩家不存在")
}

func TestDisconnectIdempotent(t *testing.T) {
	m, _, _, sender := newTestManager(t)

	sess, _, err := m.Connect(context.Background(), KindSocket)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sess.Disconnect()
	sess.Disconnect()

	// Join plus a single leave, no matter how many times teardown runs.
	testutil.AssertEqual(t, "broadcasts", len(sender.broadcasts), 2)
}

func mustName(t *testing.T, world *game.WorldState, id string) string {
	t.Helper()

	p, err := world.Player(id)
	if err != nil {
		t.Fatalf("looking up player %s: %v", id, err)
	}
	return p.Name
}
