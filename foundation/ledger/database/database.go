// Package database maintains the in-memory chain of sealed blocks and the
// types the chain is made of.
package database

import (
	"fmt"
	"sync"
	"time"
)

// Database manages the ordered chain of sealed blocks. The chain is never
// empty; it is seeded with the genesis block at construction.
type Database struct {
	mu    sync.RWMutex
	chain []Block
}

// New constructs a new database seeded with the genesis block.
func New(now time.Time, ev func(v string, args ...any)) *Database {
	genesis := Genesis(now)

	db := Database{
		chain: []Block{genesis},
	}

	ev("database: New: genesis block created: hash[%s]", genesis.Hash)

	return &db
}

// LatestBlock returns the current chain tip.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.chain[len(db.chain)-1]
}

// ChainLength returns the number of blocks in the chain including genesis.
func (db *Database) ChainLength() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.chain)
}

// Write appends a sealed block to the chain.
func (db *Database) Write(block Block) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.chain = append(db.chain, block)
}

// Copy returns a copy of the full chain for read-only use by callers.
func (db *Database) Copy() []Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	chain := make([]Block, len(db.chain))
	copy(chain, db.chain)

	return chain
}

// BlocksByNumber returns the set of blocks for the specified range inclusive.
func (db *Database) BlocksByNumber(from uint64, to uint64) []Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if from >= uint64(len(db.chain)) {
		return nil
	}
	if to >= uint64(len(db.chain)) {
		to = uint64(len(db.chain) - 1)
	}
	if from > to {
		return nil
	}

	blocks := make([]Block, 0, to-from+1)
	blocks = append(blocks, db.chain[from:to+1]...)

	return blocks
}

// ValidateChain performs the full pairwise audit of a chain of blocks: every
// block must link to its parent, recompute to its stored hash, and satisfy
// the difficulty target. The genesis block is the fixed starting point of the
// first comparison and is never validated on its own.
func ValidateChain(chain []Block, difficulty uint, ev func(v string, args ...any)) error {
	for i := 1; i < len(chain); i++ {
		if err := chain[i].ValidateBlock(chain[i-1], difficulty, ev); err != nil {
			return fmt.Errorf("block %d: %w", chain[i].Index, err)
		}
	}

	return nil
}
