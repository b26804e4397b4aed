package cmd

import (
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <username>...",
	Short: "Fetch the registry records for one or more usernames",
	Long: `Fetch the registry records for one or more usernames in a single
request.

Examples:
  blockname lookup alice
  blockname lookup alice bob carol`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	payload, err := client.LookupUsers(cmd.Context(), args)
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}
