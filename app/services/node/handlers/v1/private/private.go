// Package private maintains the group of handlers for operator access.
package private

import (
	"context"
	"errors"
	"net/http"

	v1 "github.com/voteledger/voteledger/business/web/v1"
	"github.com/voteledger/voteledger/foundation/ledger/state"
	"github.com/voteledger/voteledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of operator endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Status returns the current status of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	latestBlock := h.State.RetrieveLatestBlock()

	status := struct {
		ChainID      uint16 `json:"chain_id"`
		Difficulty   uint   `json:"difficulty"`
		LatestIndex  uint64 `json:"latest_index"`
		LatestHash   string `json:"latest_hash"`
		ChainLength  int    `json:"chain_length"`
		PendingVotes int    `json:"pending_votes"`
	}{
		ChainID:      h.State.RetrieveGenesis().ChainID,
		Difficulty:   h.State.RetrieveGenesis().Difficulty,
		LatestIndex:  latestBlock.Index,
		LatestHash:   latestBlock.Hash,
		ChainLength:  h.State.QueryChainLength(),
		PendingVotes: h.State.QueryMempoolLength(),
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}

// Mine performs a synchronous mining operation and returns the admitted
// block. An empty pending queue is a no-op, not a failure.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	block, err := h.State.MineNewBlock(ctx)
	if err != nil {
		if errors.Is(err, state.ErrNoPendingVotes) {
			resp := struct {
				Status string `json:"status"`
			}{
				Status: "no votes to mine",
			}
			return web.Respond(ctx, w, resp, http.StatusOK)
		}
		return v1.NewRequestError(err, http.StatusConflict)
	}

	h.Log.Infow("block mined", "traceid", v.TraceID, "block", block.Index, "votes", len(block.Votes), "hash", block.Hash)

	return web.Respond(ctx, w, block, http.StatusOK)
}

// Validate performs a full audit of the chain.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Valid  bool   `json:"valid"`
		Reason string `json:"reason,omitempty"`
	}{
		Valid: true,
	}

	if err := h.State.ValidateChain(); err != nil {
		resp.Valid = false
		resp.Reason = err.Error()
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
