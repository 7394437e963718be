package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	voterID   string
	candidate string
)

func init() {
	rootCmd.AddCommand(castCmd)
	castCmd.Flags().StringVarP(&voterID, "voter", "v", "", "Voter id casting the vote.")
	castCmd.Flags().StringVarP(&candidate, "candidate", "c", "", "Candidate the vote is for.")
	castCmd.MarkFlagRequired("voter")
}

var castCmd = &cobra.Command{
	Use:   "cast",
	Short: "Cast a vote",
	RunE:  castRun,
}

func castRun(cmd *cobra.Command, args []string) error {
	in := vote{
		VoterID:   voterID,
		Candidate: candidate,
	}

	var resp struct {
		Status  string `json:"status"`
		Pending int    `json:"pending"`
	}

	if err := send(http.MethodPost, nodeURL+"/v1/vote/add", in, &resp); err != nil {
		return err
	}

	fmt.Printf("%s: pending votes %d\n", resp.Status, resp.Pending)
	return nil
}
