package digest_test

import (
	"strings"
	"testing"

	"github.com/voteledger/voteledger/foundation/ledger/digest"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestHash(t *testing.T) {
	content := map[string]any{
		"index":         uint64(1),
		"transactions":  []map[string]string{{"voter_id": "v1", "candidate": "Alice"}},
		"timestamp":     int64(1700000000),
		"previous_hash": "0",
		"nonce":         uint64(0),
	}

	t.Log("Given the need to validate the canonical digest.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same content twice.")
		{
			h1 := digest.Hash(content)
			h2 := digest.Hash(content)

			if h1 != h2 {
				t.Fatalf("\t%s\tTest 0:\tShould get the same digest for the same content: got %s, exp %s", failed, h2, h1)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same digest for the same content.", success)

			if len(h1) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould get a 64 character digest: got %d", failed, len(h1))
			}
			t.Logf("\t%s\tTest 0:\tShould get a 64 character digest.", success)

			if h1 != strings.ToLower(h1) {
				t.Fatalf("\t%s\tTest 0:\tShould get a lowercase hex digest: got %s", failed, h1)
			}
			t.Logf("\t%s\tTest 0:\tShould get a lowercase hex digest.", success)
		}

		t.Logf("\tTest 1:\tWhen changing a single field value.")
		{
			h1 := digest.Hash(content)

			changed := map[string]any{}
			for k, v := range content {
				changed[k] = v
			}
			changed["nonce"] = uint64(1)

			h2 := digest.Hash(changed)
			if h1 == h2 {
				t.Fatalf("\t%s\tTest 1:\tShould get a different digest when the nonce changes.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get a different digest when the nonce changes.", success)
		}
	}
}
