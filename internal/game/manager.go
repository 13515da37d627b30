package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-escaperoom/internal/storage"
)

const defaultSaveEvery = 30 * time.Second

// Manager owns the live room set: get-or-create with restore from the
// ledger store, ambient ticking, and periodic autosave. It plugs into
// the shared tick driver.
type Manager struct {
	mu       sync.Mutex
	rooms    map[string]*Room
	states   *StateSet
	notifier Notifier
	store    storage.Storer[*RoomRecord]
	maxScore int
	log      *slog.Logger

	saveEvery time.Duration
	lastSave  time.Time
}

func NewManager(states *StateSet, notifier Notifier, store storage.Storer[*RoomRecord], maxScore int, log *slog.Logger) *Manager {
	return &Manager{
		rooms:     map[string]*Room{},
		states:    states,
		notifier:  notifier,
		store:     store,
		maxScore:  maxScore,
		log:       log,
		saveEvery: defaultSaveEvery,
	}
}

// Room returns the live room under id, resuming it from the ledger
// store when a record exists, or starting a fresh one.
func (m *Manager) Room(id string) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.rooms[id]; ok {
		return r
	}

	if rec := m.store.Get(id); rec != nil {
		r, err := RestoreRoom(id, m.states, m.notifier, m.maxScore, rec, m.log)
		if err == nil {
			m.rooms[id] = r
			m.log.Info("room resumed", "room", id, "state", rec.State)
			return r
		}
		// A stale record referencing a removed state starts over
		// rather than refusing the playgroup entry.
		m.log.Error("restoring room, starting fresh", "room", id, "error", err)
	}

	r := NewRoom(id, m.states, m.notifier, m.maxScore, m.log)
	m.rooms[id] = r
	m.log.Info("room created", "room", id)
	return r
}

// Close tears down a live room, saving its ledger one last time.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[id]
	if !ok {
		return nil
	}
	delete(m.rooms, id)

	err := m.store.Save(id, r.Snapshot())
	r.Close()
	return err
}

// Tick drives ambient chatter and the autosave cadence.
func (m *Manager) Tick(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for _, r := range m.rooms {
		r.Tick(now)
	}

	if m.lastSave.IsZero() {
		m.lastSave = now
		return nil
	}
	if now.Sub(m.lastSave) < m.saveEvery {
		return nil
	}
	m.lastSave = now
	return m.saveAll()
}

// SaveAll writes every live room's ledger, for shutdown.
func (m *Manager) SaveAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveAll()
}

func (m *Manager) saveAll() error {
	el := errors.NewErrorList()
	for id, r := range m.rooms {
		el.Add(m.store.Save(id, r.Snapshot()))
	}
	return el.Err()
}
