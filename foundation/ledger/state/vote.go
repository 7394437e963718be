package state

import (
	"errors"

	"github.com/voteledger/voteledger/foundation/ledger/database"
)

// ErrAlreadyVoted is returned from SubmitVote when the voter id has already
// cast a vote.
var ErrAlreadyVoted = errors.New("voter has already voted")

// SubmitVote accepts a vote into the pending queue. A voter id may vote at
// most once for the lifetime of the ledger, regardless of which block the
// vote eventually ends up in, so membership is checked here and not at mining
// time. The candidate value is deliberately not validated; an empty string is
// an accepted vote.
func (s *State) SubmitVote(voterID string, candidate string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.registry.Record(voterID) {
		s.evHandler("state: SubmitVote: rejected: voter[%s]: already voted", voterID)
		return ErrAlreadyVoted
	}

	vote := database.Vote{VoterID: voterID, Candidate: candidate}
	pending := s.mempool.Append(vote)

	s.evHandler("state: SubmitVote: accepted: vote[%s]: pending[%d]", vote, pending)

	return nil
}
