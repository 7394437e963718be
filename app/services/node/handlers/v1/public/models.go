package public

// newVote is what clients send to cast a vote. The voter id must be present
// on the wire; the ledger itself stays permissive about content.
type newVote struct {
	VoterID   string `json:"voter_id" validate:"required"`
	Candidate string `json:"candidate"`
}

// validity is the result of a full chain audit.
type validity struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}
