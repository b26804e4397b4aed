package cmd

import (
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names <address>",
	Short: "List registry names owned by an address",
	Long: `List the registry names owned by a blockchain address.

Example:
  blockname names 1FmWhs2ma5JSwqqo9Fkd2serfDnNmhLHJG`,
	Args: cobra.ExactArgs(1),
	RunE: runNames,
}

func runNames(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	payload, err := client.NamesOwned(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}
