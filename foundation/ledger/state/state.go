// Package state is the core API for the vote ledger and implements all the
// business rules and processing.
package state

import (
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/voteledger/voteledger/foundation/ledger/database"
	"github.com/voteledger/voteledger/foundation/ledger/genesis"
	"github.com/voteledger/voteledger/foundation/ledger/mempool"
	"github.com/voteledger/voteledger/foundation/ledger/registry"
)

// EventHandler defines a function that is called when events occur in the
// processing of votes and blocks.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by any
// package providing support for background mining.
type Worker interface {
	Shutdown()
	SignalStartMining()
	SignalCancelMining() (done func())
}

// =============================================================================

// Config represents the configuration required to start the ledger.
type Config struct {
	Genesis   genesis.Genesis
	EvHandler EventHandler
	Clock     clockwork.Clock
}

// State manages the vote ledger. There is no hidden process-wide instance;
// every State is explicitly constructed and owned by its caller.
type State struct {
	mu sync.Mutex

	evHandler EventHandler
	clock     clockwork.Clock

	genesis  genesis.Genesis
	mempool  *mempool.Mempool
	registry *registry.Registry
	db       *database.Database

	// The Worker is not set at construction. The call to worker.Run will
	// assign itself and start the mining goroutine.
	Worker Worker
}

// New constructs a new ledger for vote management. The genesis block is
// created and appended immediately so the chain is never empty.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	if cfg.Genesis.Difficulty > database.MaxDifficulty {
		return nil, fmt.Errorf("difficulty %d exceeds the maximum of %d", cfg.Genesis.Difficulty, database.MaxDifficulty)
	}

	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	db := database.New(clock.Now(), ev)

	state := State{
		evHandler: ev,
		clock:     clock,

		genesis:  cfg.Genesis,
		mempool:  mempool.New(),
		registry: registry.New(db.Copy()),
		db:       db,
	}

	return &state, nil
}

// Shutdown cleanly brings the ledger down.
func (s *State) Shutdown() error {
	s.evHandler("state: Shutdown: started")
	defer s.evHandler("state: Shutdown: completed")

	// Stop any mining activity before the ledger goes away.
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}
