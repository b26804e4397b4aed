package cmd

import (
	"github.com/spf13/cobra"
)

var broadcastCmd = &cobra.Command{
	Use:   "broadcast <signed-tx-hex>",
	Short: "Broadcast a signed transaction",
	Long: `Broadcast a signed, hex-encoded transaction through the registry's
blockchain node. Sign the transaction locally first; this command never
touches key material.

Example:
  blockname broadcast 0100000001ab...`,
	Args: cobra.ExactArgs(1),
	RunE: runBroadcast,
}

func runBroadcast(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	payload, err := client.BroadcastTransaction(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}
