package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-escaperoom/internal/game"
	"github.com/pixil98/go-escaperoom/internal/storage"
)

// RoomsConfig names the playgroup rooms offered at login and where
// their ledgers are kept between restarts.
type RoomsConfig struct {
	Ids        []string `json:"ids"`
	LedgerPath string   `json:"ledger_path"`
}

func (c *RoomsConfig) Validate() error {
	el := errors.NewErrorList()

	if len(c.Ids) == 0 {
		el.Add(fmt.Errorf("at least one room id is required"))
	}
	if c.LedgerPath == "" {
		el.Add(fmt.Errorf("ledger_path is required"))
	} else if _, err := os.Stat(c.LedgerPath); err != nil {
		el.Add(fmt.Errorf("invalid ledger_path %q: %w", c.LedgerPath, err))
	}

	return el.Err()
}

func (c *RoomsConfig) BuildLedgerStore() (*storage.FileStore[*game.RoomRecord], error) {
	return storage.NewFileStore[*game.RoomRecord](c.LedgerPath)
}
