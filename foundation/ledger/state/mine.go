package state

import (
	"context"
	"errors"

	"github.com/voteledger/voteledger/foundation/ledger/database"
)

// ErrNoPendingVotes is returned when a block is requested to be mined and
// there are no votes waiting. This is a no-op, not a failure.
var ErrNoPendingVotes = errors.New("no votes in mempool")

// ErrStaleBlock is returned from AcceptBlock when the chain tip moved while
// the proof was being searched for.
var ErrStaleBlock = errors.New("block does not extend the current chain tip")

// ErrInvalidProof is returned from AcceptBlock when the proof does not
// satisfy the difficulty target or does not match the block content.
var ErrInvalidProof = errors.New("proof is not valid for the block")

// =============================================================================

// MineNewBlock attempts to create a new block carrying all the pending votes
// with a proper hash that can become the next block in the chain. The search
// can be cancelled through the context. Pending votes are only removed once
// the block is admitted; on any failure they stay queued for a later attempt.
func (s *State) MineNewBlock(ctx context.Context) (database.Block, error) {
	s.evHandler("state: MineNewBlock: MINING: check mempool count")

	// Snapshot the pending votes and the chain tip together. The search
	// itself runs outside the lock so votes can keep arriving.
	s.mu.Lock()
	votes := s.mempool.Copy()
	latestBlock := s.db.LatestBlock()
	s.mu.Unlock()

	if len(votes) == 0 {
		return database.Block{}, ErrNoPendingVotes
	}

	s.evHandler("state: MineNewBlock: MINING: perform POW: votes[%d]", len(votes))

	// Attempt to create a new block by solving the POW puzzle.
	block, proof, err := database.POW(ctx, s.genesis.Difficulty, latestBlock, votes, s.clock.Now(), s.evHandler)
	if err != nil {
		return database.Block{}, err
	}

	// Just check one more time we were not cancelled.
	if ctx.Err() != nil {
		return database.Block{}, ctx.Err()
	}

	s.evHandler("state: MineNewBlock: MINING: accept block")

	return s.AcceptBlock(block, proof)
}

// AcceptBlock independently re-verifies a proof against the current chain tip
// before the block is appended. The search is not trusted to decide its proof
// still matches chain state; the tip may have moved while the search ran, and
// a stale result must be rejected rather than silently applied. On success
// the proof becomes the block's stored hash and the votes it carries leave
// the pending queue.
func (s *State) AcceptBlock(block database.Block, proof string) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	latestBlock := s.db.LatestBlock()

	if block.PrevBlockHash != latestBlock.Hash {
		s.evHandler("state: AcceptBlock: rejected: blk[%d]: stale parent[%s]", block.Index, block.PrevBlockHash)
		return database.Block{}, ErrStaleBlock
	}

	if !database.IsHashSolved(s.genesis.Difficulty, proof) || proof != block.ComputeHash() {
		s.evHandler("state: AcceptBlock: rejected: blk[%d]: invalid proof[%s]", block.Index, proof)
		return database.Block{}, ErrInvalidProof
	}

	// The block seals with the verified proof as its stored hash and is
	// immutable from this point.
	block.Hash = proof
	s.db.Write(block)

	s.evHandler("state: AcceptBlock: admitted: blk[%d]: votes[%d]: hash[%s]", block.Index, len(block.Votes), block.Hash)

	// The pending votes only clear once a block carrying them is admitted.
	// Votes that arrived while the search was running stay queued.
	for _, vote := range block.Votes {
		s.mempool.Delete(vote)
	}

	return block, nil
}
