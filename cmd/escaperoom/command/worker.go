package command

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-escaperoom/internal/commands"
	"github.com/pixil98/go-escaperoom/internal/driver"
	"github.com/pixil98/go-escaperoom/internal/game"
	"github.com/pixil98/go-escaperoom/internal/listener"
	"github.com/pixil98/go-escaperoom/internal/messaging"
	"github.com/pixil98/go-escaperoom/internal/player"
	"github.com/pixil98/go-escaperoom/internal/states"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Messaging backbone
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	notifier := messaging.NewNatsNotifier(natsServer)

	// Game content and room lifecycle
	stateSet, err := states.Set()
	if err != nil {
		return nil, fmt.Errorf("building state set: %w", err)
	}
	ledger, err := cfg.Rooms.BuildLedgerStore()
	if err != nil {
		return nil, fmt.Errorf("creating ledger store: %w", err)
	}
	roomManager := game.NewManager(stateSet, notifier, ledger, states.MaxScore, slog.Default())

	// Player-facing layers
	cmdHandler := commands.NewHandler(roomManager)
	playerManager := player.NewManager(roomManager, cfg.Rooms.Ids, cmdHandler, natsServer)
	connManager := listener.NewConnectionManager(playerManager)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(connManager)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Setup the tick driver
	var driverOpts []driver.GameDriverOpt
	if cfg.TickInterval != "" {
		d, err := time.ParseDuration(cfg.TickInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_interval: %w", err)
		}
		driverOpts = append(driverOpts, driver.WithTickLength(d))
	}
	gameDriver := driver.NewGameDriver([]driver.Manager{roomManager}, driverOpts...)

	// Create a worker list
	return service.WorkerList{
		"nats":      natsServer,
		"driver":    gameDriver,
		"listeners": &listeners,
	}, nil
}
