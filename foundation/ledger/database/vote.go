package database

import "fmt"

// Vote represents a single cast ballot recorded on the chain. A vote is
// immutable once created.
type Vote struct {
	VoterID   string `json:"voter_id"`
	Candidate string `json:"candidate"`
}

// String implements the fmt.Stringer interface for event logging.
func (v Vote) String() string {
	return fmt.Sprintf("%s:%s", v.VoterID, v.Candidate)
}
