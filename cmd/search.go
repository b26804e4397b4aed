package cmd

import (
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the registry",
	Long: `Search the registry. The query is passed to the API verbatim, so
service-side query syntax works directly.

Examples:
  blockname search alice
  blockname search twitter:alice`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	payload, err := client.Search(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}
