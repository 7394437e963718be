package registry_test

import (
	"testing"
	"time"

	"github.com/voteledger/voteledger/foundation/ledger/database"
	"github.com/voteledger/voteledger/foundation/ledger/registry"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestRegistry(t *testing.T) {
	t.Log("Given the need to validate voter dedup tracking.")
	{
		t.Logf("\tTest 0:\tWhen recording voter ids.")
		{
			r := registry.New(nil)

			if !r.Record("v1") {
				t.Fatalf("\t%s\tTest 0:\tShould be able to record a new voter id.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to record a new voter id.", success)

			if r.Record("v1") {
				t.Fatalf("\t%s\tTest 0:\tShould reject a voter id recorded twice.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould reject a voter id recorded twice.", success)

			if !r.HasVoted("v1") || r.HasVoted("v2") {
				t.Fatalf("\t%s\tTest 0:\tShould report membership correctly.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould report membership correctly.", success)
		}

		t.Logf("\tTest 1:\tWhen voter id case differs.")
		{
			r := registry.New(nil)
			r.Record("Voter")

			// Equality is literal; no normalization is applied.
			if r.HasVoted("voter") {
				t.Fatalf("\t%s\tTest 1:\tShould treat differing case as a different voter.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould treat differing case as a different voter.", success)
		}

		t.Logf("\tTest 2:\tWhen seeding from existing blocks.")
		{
			now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
			blocks := []database.Block{
				database.Genesis(now),
				database.NewBlock(1, []database.Vote{{VoterID: "v1", Candidate: "Alice"}}, "0", now),
			}

			r := registry.New(blocks)

			if !r.HasVoted("v1") {
				t.Fatalf("\t%s\tTest 2:\tShould know about voters recorded on the chain.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould know about voters recorded on the chain.", success)

			if r.Count() != 1 {
				t.Fatalf("\t%s\tTest 2:\tShould have 1 recorded voter: got %d", failed, r.Count())
			}
			t.Logf("\t%s\tTest 2:\tShould have 1 recorded voter.", success)
		}
	}
}
