package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chainCmd)
}

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Display the full chain of blocks",
	RunE:  chainRun,
}

func chainRun(cmd *cobra.Command, args []string) error {
	var blocks []block
	if err := send(http.MethodGet, nodeURL+"/v1/chain/list", nil, &blocks); err != nil {
		return err
	}

	printChain(blocks)
	return nil
}

func printChain(blocks []block) {
	for _, b := range blocks {
		fmt.Printf("\nBlock %d\n", b.Index)
		fmt.Printf("Timestamp: %s\n", time.Unix(b.TimeStamp, 0).UTC().Format(time.RFC1123))
		fmt.Printf("Previous Hash: %s\n", b.PrevBlockHash)
		fmt.Printf("Hash: %s\n", b.Hash)
		fmt.Println("Votes:")
		for _, v := range b.Votes {
			fmt.Printf("  - %s voted for %s\n", v.VoterID, v.Candidate)
		}
	}
	fmt.Println()
}
