package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(pendingCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Audit the full chain",
	RunE:  validateRun,
}

func validateRun(cmd *cobra.Command, args []string) error {
	var v validity
	if err := send(http.MethodGet, nodeURL+"/v1/chain/validate", nil, &v); err != nil {
		return err
	}

	if !v.Valid {
		return fmt.Errorf("chain has been tampered: %s", v.Reason)
	}

	fmt.Println("chain is valid")
	return nil
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List the votes waiting to be mined",
	RunE:  pendingRun,
}

func pendingRun(cmd *cobra.Command, args []string) error {
	var votes []vote
	if err := send(http.MethodGet, nodeURL+"/v1/vote/pending/list", nil, &votes); err != nil {
		return err
	}

	if len(votes) == 0 {
		fmt.Println("no pending votes")
		return nil
	}

	for _, v := range votes {
		fmt.Printf("  - %s voted for %s\n", v.VoterID, v.Candidate)
	}
	return nil
}
