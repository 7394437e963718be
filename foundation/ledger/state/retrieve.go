package state

import (
	"github.com/voteledger/voteledger/foundation/ledger/database"
	"github.com/voteledger/voteledger/foundation/ledger/genesis"
)

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveLatestBlock returns a copy of the current chain tip.
func (s *State) RetrieveLatestBlock() database.Block {
	return s.db.LatestBlock()
}

// RetrieveChain returns a copy of the full chain for read-only use.
func (s *State) RetrieveChain() []database.Block {
	return s.db.Copy()
}

// RetrieveBlocksByNumber returns the blocks for the specified range inclusive.
func (s *State) RetrieveBlocksByNumber(from uint64, to uint64) []database.Block {
	return s.db.BlocksByNumber(from, to)
}

// RetrieveMempool returns a copy of the pending votes in acceptance order.
func (s *State) RetrieveMempool() []database.Vote {
	return s.mempool.Copy()
}

// QueryChainLength returns the number of blocks in the chain including the
// genesis block.
func (s *State) QueryChainLength() int {
	return s.db.ChainLength()
}

// QueryMempoolLength returns the current number of pending votes.
func (s *State) QueryMempoolLength() int {
	return s.mempool.Count()
}

// QueryHasVoted reports whether the specified voter id has already voted.
func (s *State) QueryHasVoted(voterID string) bool {
	return s.registry.HasVoted(voterID)
}

// ValidateChain walks the chain and confirms every block correctly links to
// its parent, recomputes to its stored hash, and satisfies the difficulty
// target. The walk is read-only over the current chain state.
func (s *State) ValidateChain() error {
	return database.ValidateChain(s.db.Copy(), s.genesis.Difficulty, s.evHandler)
}
