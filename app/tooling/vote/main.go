// This program provides a command line client for the vote ledger node.
package main

import "github.com/voteledger/voteledger/app/tooling/vote/cmd"

func main() {
	cmd.Execute()
}
