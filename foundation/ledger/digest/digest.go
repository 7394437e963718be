// Package digest provides the canonical hashing support for the ledger.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// GenesisParentHash is the previous hash value carried by the genesis block,
// which has no parent.
const GenesisParentHash = "0"

// zeroHash represents a hash code of all zeros.
const zeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// Hash returns the hex encoded sha256 digest for the value. The value is
// serialized to its canonical form first: encoding/json writes map keys in
// sorted order, so hashing a map produces the same bytes for the same field
// values regardless of how the map was built.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return zeroHash
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
