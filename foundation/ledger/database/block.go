package database

import (
	"context"
	"fmt"
	"time"

	"github.com/voteledger/voteledger/foundation/ledger/digest"
)

// Block represents one chain position: the votes sealed at that position and
// the linkage to the previous block. Once a block is admitted to the chain it
// is treated as immutable.
type Block struct {
	Index         uint64 `json:"index"`
	Votes         []Vote `json:"transactions"`
	TimeStamp     int64  `json:"timestamp"`
	PrevBlockHash string `json:"previous_hash"`
	Nonce         uint64 `json:"nonce"`
	Hash          string `json:"hash"`
}

// NewBlock constructs an unsealed block. The stored hash is computed
// immediately from the current field values with the nonce at zero.
func NewBlock(index uint64, votes []Vote, prevBlockHash string, now time.Time) Block {
	b := Block{
		Index:         index,
		Votes:         votes,
		TimeStamp:     now.UTC().Unix(),
		PrevBlockHash: prevBlockHash,
	}
	b.Hash = b.ComputeHash()

	return b
}

// Genesis constructs the fixed first block of a chain. The genesis block has
// no parent and is exempt from proof of work.
func Genesis(now time.Time) Block {
	return NewBlock(0, []Vote{}, digest.GenesisParentHash, now)
}

// ComputeHash derives the digest from the block's current content. The stored
// Hash field is not an input and is not modified; callers compare the two to
// detect tampering.
func (b Block) ComputeHash() string {
	return digest.Hash(map[string]any{
		"index":         b.Index,
		"transactions":  b.Votes,
		"timestamp":     b.TimeStamp,
		"previous_hash": b.PrevBlockHash,
		"nonce":         b.Nonce,
	})
}

// POW constructs the next block from the specified votes and performs the
// work to find a nonce whose digest satisfies the difficulty target. The
// returned proof is not written to the block's stored hash; that happens at
// admission, after independent re-verification.
func POW(ctx context.Context, difficulty uint, prevBlock Block, votes []Vote, now time.Time, ev func(v string, args ...any)) (Block, string, error) {
	nb := NewBlock(prevBlock.Index+1, votes, prevBlock.Hash, now)

	proof, err := nb.performPOW(ctx, difficulty, ev)
	if err != nil {
		return Block{}, "", err
	}

	return nb, proof, nil
}

// performPOW does the work of finding a nonce whose digest carries the
// required number of leading zeros. Pointer semantics are being used since a
// nonce is being discovered. The search starts at zero and can be cancelled
// through the context.
func (b *Block) performPOW(ctx context.Context, difficulty uint, ev func(v string, args ...any)) (string, error) {
	ev("database: performPOW: MINING: started")
	defer ev("database: performPOW: MINING: completed")

	// Log the votes that are a part of this potential block.
	for _, vote := range b.Votes {
		ev("database: performPOW: MINING: vote[%s]", vote)
	}

	b.Nonce = 0

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: performPOW: MINING: attempts[%d]", attempts)
		}

		// Did the caller cancel the search.
		if ctx.Err() != nil {
			ev("database: performPOW: MINING: CANCELLED")
			return "", ctx.Err()
		}

		// Hash the block and check if we have solved the puzzle.
		hash := b.ComputeHash()
		if !IsHashSolved(difficulty, hash) {
			b.Nonce++
			continue
		}

		ev("database: performPOW: MINING: SOLVED: prevBlk[%s]: newBlk[%s]", b.PrevBlockHash, hash)
		ev("database: performPOW: MINING: attempts[%d]", attempts)

		return hash, nil
	}
}

// ValidateBlock confirms the block legitimately follows the specified
// previous block and satisfies the difficulty target.
func (b Block) ValidateBlock(prevBlock Block, difficulty uint, ev func(v string, args ...any)) error {
	ev("database: ValidateBlock: blk[%d]: check: block number is the next number", b.Index)

	if b.Index != prevBlock.Index+1 {
		return fmt.Errorf("this block is not the next number, got %d, exp %d", b.Index, prevBlock.Index+1)
	}

	ev("database: ValidateBlock: blk[%d]: check: parent hash matches parent block", b.Index)

	if b.PrevBlockHash != prevBlock.Hash {
		return fmt.Errorf("parent block hash doesn't match our known parent, got %s, exp %s", b.PrevBlockHash, prevBlock.Hash)
	}

	ev("database: ValidateBlock: blk[%d]: check: stored hash matches content", b.Index)

	if hash := b.ComputeHash(); hash != b.Hash {
		return fmt.Errorf("stored hash doesn't match block content, got %s, exp %s", b.Hash, hash)
	}

	ev("database: ValidateBlock: blk[%d]: check: block hash has been solved", b.Index)

	if !IsHashSolved(difficulty, b.Hash) {
		return fmt.Errorf("%s invalid block hash", b.Hash)
	}

	return nil
}

// MaxDifficulty is the largest number of leading zero characters the sealing
// search will target.
const MaxDifficulty = 16

// IsHashSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of 0's.
func IsHashSolved(difficulty uint, hash string) bool {
	const match = "00000000000000000"

	if len(hash) != 64 {
		return false
	}
	if difficulty > MaxDifficulty {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}
