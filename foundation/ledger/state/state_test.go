package state_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/voteledger/voteledger/foundation/ledger/database"
	"github.com/voteledger/voteledger/foundation/ledger/genesis"
	"github.com/voteledger/voteledger/foundation/ledger/state"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func newTestState(t *testing.T, difficulty uint) *state.State {
	t.Helper()

	gen := genesis.Genesis{
		Date:       time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		ChainID:    1,
		Difficulty: difficulty,
	}

	st, err := state.New(state.Config{
		Genesis: gen,
		Clock:   clockwork.NewFakeClockAt(gen.Date),
	})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the ledger: %s", failed, err)
	}

	return st
}

func TestVotingScenario(t *testing.T) {
	t.Log("Given the need to validate the full vote and mine workflow.")
	{
		t.Logf("\tTest 0:\tWhen casting two votes and mining at difficulty 2.")
		{
			st := newTestState(t, 2)
			genesisBlock := st.RetrieveLatestBlock()

			if err := st.SubmitVote("v1", "Alice"); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to submit the first vote: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to submit the first vote.", success)

			if err := st.SubmitVote("v2", "Bob"); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to submit the second vote: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to submit the second vote.", success)

			pendingBefore := st.RetrieveMempool()

			block, err := st.MineNewBlock(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to mine a block: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to mine a block.", success)

			if block.Index != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould have block index 1: got %d", failed, block.Index)
			}
			t.Logf("\t%s\tTest 0:\tShould have block index 1.", success)

			if len(block.Votes) != len(pendingBefore) {
				t.Fatalf("\t%s\tTest 0:\tShould carry every pending vote: got %d, exp %d", failed, len(block.Votes), len(pendingBefore))
			}
			for i, vote := range block.Votes {
				if vote != pendingBefore[i] {
					t.Fatalf("\t%s\tTest 0:\tShould carry the pending votes in order.", failed)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould carry every pending vote in order.", success)

			if !strings.HasPrefix(block.Hash, "00") {
				t.Fatalf("\t%s\tTest 0:\tShould have a hash satisfying difficulty 2: got %s", failed, block.Hash)
			}
			t.Logf("\t%s\tTest 0:\tShould have a hash satisfying difficulty 2.", success)

			if block.PrevBlockHash != genesisBlock.Hash {
				t.Fatalf("\t%s\tTest 0:\tShould link to the genesis block.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould link to the genesis block.", success)

			if st.QueryMempoolLength() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould have an empty pending queue after mining.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould have an empty pending queue after mining.", success)

			if err := st.ValidateChain(); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould have a valid chain: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould have a valid chain.", success)

			// A voter that is already on the chain can never vote again.
			if err := st.SubmitVote("v1", "Carol"); !errors.Is(err, state.ErrAlreadyVoted) {
				t.Fatalf("\t%s\tTest 0:\tShould reject a second vote from a mined voter: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould reject a second vote from a mined voter.", success)

			if st.QueryMempoolLength() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the pending queue untouched on rejection.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the pending queue untouched on rejection.", success)
		}
	}
}

func TestDedup(t *testing.T) {
	t.Log("Given the need to validate duplicate vote rejection.")
	{
		t.Logf("\tTest 0:\tWhen the same voter id votes twice before mining.")
		{
			st := newTestState(t, 1)

			if err := st.SubmitVote("v1", "Alice"); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould accept the first vote: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould accept the first vote.", success)

			if err := st.SubmitVote("v1", "Bob"); !errors.Is(err, state.ErrAlreadyVoted) {
				t.Fatalf("\t%s\tTest 0:\tShould reject the second vote: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould reject the second vote.", success)

			if st.QueryMempoolLength() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould still have exactly one pending vote: got %d", failed, st.QueryMempoolLength())
			}
			t.Logf("\t%s\tTest 0:\tShould still have exactly one pending vote.", success)
		}

		t.Logf("\tTest 1:\tWhen the candidate value is empty.")
		{
			st := newTestState(t, 1)

			// Empty candidate content is an accepted edge case, not an error.
			if err := st.SubmitVote("v1", ""); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould accept a vote with an empty candidate: %s", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould accept a vote with an empty candidate.", success)
		}
	}
}

func TestMineEmpty(t *testing.T) {
	t.Log("Given the need to validate mining with no pending votes.")
	{
		t.Logf("\tTest 0:\tWhen the pending queue is empty.")
		{
			st := newTestState(t, 1)

			if _, err := st.MineNewBlock(context.Background()); !errors.Is(err, state.ErrNoPendingVotes) {
				t.Fatalf("\t%s\tTest 0:\tShould report there is nothing to mine: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould report there is nothing to mine.", success)

			if st.QueryChainLength() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the chain unchanged: got length %d", failed, st.QueryChainLength())
			}
			t.Logf("\t%s\tTest 0:\tShould leave the chain unchanged.", success)
		}
	}
}

func TestAcceptBlock(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	votes := []database.Vote{{VoterID: "x1", Candidate: "Alice"}}

	t.Log("Given the need to validate admission re-verification.")
	{
		t.Logf("\tTest 0:\tWhen the candidate does not extend the chain tip.")
		{
			st := newTestState(t, 0)

			stale := database.NewBlock(1, votes, "not-the-tip", now)
			if _, err := st.AcceptBlock(stale, stale.ComputeHash()); !errors.Is(err, state.ErrStaleBlock) {
				t.Fatalf("\t%s\tTest 0:\tShould reject a stale candidate: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould reject a stale candidate.", success)

			if st.QueryChainLength() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the chain unchanged.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the chain unchanged.", success)
		}

		t.Logf("\tTest 1:\tWhen the proof does not match the block content.")
		{
			st := newTestState(t, 0)

			block := database.NewBlock(1, votes, st.RetrieveLatestBlock().Hash, now)
			badProof := strings.Repeat("0", 64)

			if _, err := st.AcceptBlock(block, badProof); !errors.Is(err, state.ErrInvalidProof) {
				t.Fatalf("\t%s\tTest 1:\tShould reject a proof that does not match: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould reject a proof that does not match.", success)
		}

		t.Logf("\tTest 2:\tWhen the proof does not satisfy the difficulty target.")
		{
			st := newTestState(t, 2)
			st.SubmitVote("x1", "Alice")

			block := database.NewBlock(1, st.RetrieveMempool(), st.RetrieveLatestBlock().Hash, now)

			// The digest is honest for the content but almost certainly does
			// not carry two leading zeros at nonce 0.
			proof := block.ComputeHash()
			if strings.HasPrefix(proof, "00") {
				t.Skip("nonce 0 happened to satisfy the target")
			}

			if _, err := st.AcceptBlock(block, proof); !errors.Is(err, state.ErrInvalidProof) {
				t.Fatalf("\t%s\tTest 2:\tShould reject an unsolved proof: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould reject an unsolved proof.", success)

			if st.QueryMempoolLength() != 1 {
				t.Fatalf("\t%s\tTest 2:\tShould leave the pending votes untouched.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould leave the pending votes untouched.", success)
		}
	}
}

func TestMineCancelled(t *testing.T) {
	t.Log("Given the need to validate a cancelled mining operation.")
	{
		t.Logf("\tTest 0:\tWhen the context is already cancelled.")
		{
			st := newTestState(t, 2)
			st.SubmitVote("v1", "Alice")

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			if _, err := st.MineNewBlock(ctx); err == nil {
				t.Fatalf("\t%s\tTest 0:\tShould return the cancellation error.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould return the cancellation error.", success)

			if st.QueryMempoolLength() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould keep the pending votes for a retry.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould keep the pending votes for a retry.", success)

			if st.QueryChainLength() != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the chain unchanged.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the chain unchanged.", success)
		}
	}
}

func TestVoteArrivingDuringMine(t *testing.T) {
	t.Log("Given the need to validate votes arriving while a block is admitted.")
	{
		t.Logf("\tTest 0:\tWhen a vote lands between search and admission.")
		{
			st := newTestState(t, 0)
			st.SubmitVote("v1", "Alice")

			// Build the candidate from the current queue, then accept a late
			// vote before admission. The late vote must survive the clearing.
			now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
			block := database.NewBlock(1, st.RetrieveMempool(), st.RetrieveLatestBlock().Hash, now)

			st.SubmitVote("v2", "Bob")

			if _, err := st.AcceptBlock(block, block.ComputeHash()); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould admit the candidate: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould admit the candidate.", success)

			pending := st.RetrieveMempool()
			if len(pending) != 1 || pending[0].VoterID != "v2" {
				t.Fatalf("\t%s\tTest 0:\tShould keep the late vote queued: got %v", failed, pending)
			}
			t.Logf("\t%s\tTest 0:\tShould keep the late vote queued.", success)
		}
	}
}
