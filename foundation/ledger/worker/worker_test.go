package worker_test

import (
	"testing"
	"time"

	"github.com/voteledger/voteledger/foundation/ledger/genesis"
	"github.com/voteledger/voteledger/foundation/ledger/state"
	"github.com/voteledger/voteledger/foundation/ledger/worker"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func noopEv(v string, args ...any) {}

func TestSignalMining(t *testing.T) {
	t.Log("Given the need to validate the background mining workflow.")
	{
		t.Logf("\tTest 0:\tWhen signaling a mining operation with pending votes.")
		{
			gen := genesis.Genesis{
				Date:       time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
				ChainID:    1,
				Difficulty: 1,
			}

			st, err := state.New(state.Config{Genesis: gen})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the ledger: %s", failed, err)
			}

			worker.Run(st, noopEv)
			defer st.Shutdown()

			if err := st.SubmitVote("v1", "Alice"); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to submit a vote: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to submit a vote.", success)

			st.Worker.SignalStartMining()

			// At difficulty 1 the search completes almost immediately.
			deadline := time.Now().Add(10 * time.Second)
			for st.QueryChainLength() < 2 {
				if time.Now().After(deadline) {
					t.Fatalf("\t%s\tTest 0:\tShould mine a block from the signal.", failed)
				}
				time.Sleep(50 * time.Millisecond)
			}
			t.Logf("\t%s\tTest 0:\tShould mine a block from the signal.", success)

			if st.QueryMempoolLength() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould clear the pending queue.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould clear the pending queue.", success)

			if err := st.ValidateChain(); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould have a valid chain: %s", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould have a valid chain.", success)
		}
	}
}
