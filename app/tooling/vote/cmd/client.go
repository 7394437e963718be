package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// errorResponse matches the node's error payload.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// block matches the wire form of a chain block.
type block struct {
	Index         uint64 `json:"index"`
	Votes         []vote `json:"transactions"`
	TimeStamp     int64  `json:"timestamp"`
	PrevBlockHash string `json:"previous_hash"`
	Nonce         uint64 `json:"nonce"`
	Hash          string `json:"hash"`
}

// vote matches the wire form of a single vote.
type vote struct {
	VoterID   string `json:"voter_id"`
	Candidate string `json:"candidate"`
}

// validity matches the wire form of a chain audit result.
type validity struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

var client = http.Client{
	Timeout: 5 * time.Minute,
}

// send performs a JSON round trip against the node. A non-2xx status is
// turned into an error carrying the node's error message.
func send(method string, url string, in any, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
			return fmt.Errorf("node returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("%s", er.Error)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
	}

	return nil
}
