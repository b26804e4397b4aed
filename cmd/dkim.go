package cmd

import (
	"github.com/spf13/cobra"
)

var dkimCmd = &cobra.Command{
	Use:   "dkim <domain>",
	Short: "Fetch the DKIM public key for a domain",
	Long: `Fetch the DKIM public key the registry resolves from a domain's
DNS records.

Example:
  blockname dkim example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runDKIM,
}

func runDKIM(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	payload, err := client.DKIMPublicKey(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}
