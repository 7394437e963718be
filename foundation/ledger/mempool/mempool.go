// Package mempool maintains the ordered queue of votes waiting to be mined
// into a block.
package mempool

import (
	"sync"

	"github.com/voteledger/voteledger/foundation/ledger/database"
)

// Mempool represents the pending votes in acceptance order. Order matters:
// votes are sealed into a block in the order they were accepted.
type Mempool struct {
	mu    sync.RWMutex
	votes []database.Vote
}

// New constructs a new mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of votes in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.votes)
}

// Append adds a vote to the end of the pool.
func (mp *Mempool) Append(vote database.Vote) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.votes = append(mp.votes, vote)

	return len(mp.votes)
}

// Delete removes the vote for the specified voter id from the pool. Voter ids
// are unique across the ledger so at most one vote can match.
func (mp *Mempool) Delete(vote database.Vote) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	for i, v := range mp.votes {
		if v.VoterID == vote.VoterID {
			mp.votes = append(mp.votes[:i], mp.votes[i+1:]...)
			return
		}
	}
}

// Truncate clears all the votes from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.votes = nil
}

// Copy returns a copy of the pending votes in acceptance order.
func (mp *Mempool) Copy() []database.Vote {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	votes := make([]database.Vote, len(mp.votes))
	copy(votes, mp.votes)

	return votes
}
