// Package cmd contains the vote client app.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	nodeURL    string
	privateURL string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&nodeURL, "url", "u", "http://localhost:8080", "Public API of the ledger node.")
	rootCmd.PersistentFlags().StringVarP(&privateURL, "private-url", "p", "http://localhost:9080", "Private API of the ledger node.")
}

var rootCmd = &cobra.Command{
	Use:   "vote",
	Short: "Client for the vote ledger node",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
