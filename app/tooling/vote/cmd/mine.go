package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mineCmd)
}

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the pending votes into a block",
	RunE:  mineRun,
}

func mineRun(cmd *cobra.Command, args []string) error {

	// The mine endpoint returns either the admitted block or a status
	// message when there is nothing to mine.
	var raw json.RawMessage
	if err := send(http.MethodPost, privateURL+"/v1/node/mine", nil, &raw); err != nil {
		return err
	}

	var b block
	if err := json.Unmarshal(raw, &b); err == nil && b.Hash != "" {
		fmt.Printf("block %d mined and added: hash %s\n", b.Index, b.Hash)
		return nil
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &status); err != nil {
		return err
	}

	fmt.Println(status.Status)
	return nil
}
