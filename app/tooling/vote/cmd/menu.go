package cmd

import (
	"net/http"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	castOption     = "Cast a vote"
	mineOption     = "Mine votes into a block"
	viewOption     = "View the chain"
	validateOption = "Validate the chain"
	exitOption     = "Exit"
)

func init() {
	rootCmd.AddCommand(menuCmd)
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive voting menu",
	RunE:  menuRun,
}

func menuRun(cmd *cobra.Command, args []string) error {
	options := []string{castOption, mineOption, viewOption, validateOption, exitOption}

	for {
		choice, err := pterm.DefaultInteractiveSelect.WithOptions(options).Show("Decentralized Voting System")
		if err != nil {
			return err
		}

		switch choice {
		case castOption:
			if err := menuCast(); err != nil {
				pterm.Error.Println(err)
			}

		case mineOption:
			if err := mineRun(cmd, args); err != nil {
				pterm.Error.Println(err)
			}

		case viewOption:
			if err := chainRun(cmd, args); err != nil {
				pterm.Error.Println(err)
			}

		case validateOption:
			if err := validateRun(cmd, args); err != nil {
				pterm.Error.Println(err)
			}

		case exitOption:
			pterm.Println("Goodbye!")
			return nil
		}
	}
}

func menuCast() error {
	id, err := pterm.DefaultInteractiveTextInput.Show("Enter Voter ID")
	if err != nil {
		return err
	}

	name, err := pterm.DefaultInteractiveTextInput.Show("Enter Candidate Name")
	if err != nil {
		return err
	}

	in := vote{
		VoterID:   id,
		Candidate: name,
	}

	var resp struct {
		Status  string `json:"status"`
		Pending int    `json:"pending"`
	}

	if err := send(http.MethodPost, nodeURL+"/v1/vote/add", in, &resp); err != nil {
		return err
	}

	pterm.Success.Printfln("Vote cast for %s.", name)
	return nil
}
