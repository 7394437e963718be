// Package registry tracks which voter ids have already cast a vote, across
// both pending and already-mined votes.
package registry

import (
	"sync"

	"github.com/voteledger/voteledger/foundation/ledger/database"
)

// Registry maintains the set of voter ids that have voted. Membership is
// checked by literal string equality with no normalization.
type Registry struct {
	mu    sync.RWMutex
	voted map[string]struct{}
}

// New constructs a registry seeded with every voter id recorded in the
// specified blocks.
func New(blocks []database.Block) *Registry {
	r := Registry{
		voted: make(map[string]struct{}),
	}

	for _, block := range blocks {
		for _, vote := range block.Votes {
			r.voted[vote.VoterID] = struct{}{}
		}
	}

	return &r
}

// HasVoted reports whether the specified voter id has already cast a vote.
func (r *Registry) HasVoted(voterID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.voted[voterID]
	return exists
}

// Record marks the specified voter id as having voted. It returns false if
// the id was already recorded, leaving the registry unchanged.
func (r *Registry) Record(voterID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.voted[voterID]; exists {
		return false
	}

	r.voted[voterID] = struct{}{}
	return true
}

// Count returns the number of voter ids recorded.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.voted)
}
