package driver

import (
	"context"
	"time"
)

const (
	DefaultTickLength = time.Second * 2
)

// Manager is anything that wants periodic ambient work: room chatter,
// autosave cadence.
type Manager interface {
	Tick(context.Context) error
}

// GameDriver fans a fixed-interval tick out to its managers.
type GameDriver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewGameDriver(managers []Manager, opts ...GameDriverOpt) *GameDriver {
	d := &GameDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *GameDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *GameDriver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
