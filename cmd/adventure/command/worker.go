package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/session"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the immutable world catalogue; referential integrity is checked
	// here so a broken world never starts serving.
	cat, err := cfg.World.BuildCatalogue()
	if err != nil {
		return nil, fmt.Errorf("building catalogue: %w", err)
	}

	world := game.NewWorldState(cat)

	// Message bus carrying every outbound payload
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	broadcaster := messaging.NewBroadcaster(natsServer, world)

	// One interpreter per transport vocabulary: the socket protocol carries
	// chat, the line protocols carry chat and quit.
	socketHandler := commands.NewHandler(world, commands.WithChat(broadcaster))
	lineHandler := commands.NewHandler(world, commands.WithChat(broadcaster), commands.WithQuit())

	sessions := session.NewManager(world, natsServer, broadcaster, socketHandler, lineHandler)
	cm := listener.NewConnectionManager(sessions)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(sessions, cm, world)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = w
	}

	// Create a worker list
	return service.WorkerList{
		"nats":      natsServer,
		"listeners": &listeners,
	}, nil
}
