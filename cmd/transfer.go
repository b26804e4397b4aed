package cmd

import (
	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <username> <transfer-address> <owner-pubkey>",
	Short: "Transfer ownership of a username",
	Long: `Transfer ownership of a username to another address. The transfer
must be signed off by the public key that currently owns the name.

Example:
  blockname transfer alice 1NewOwnerAddr... 04deadbeef...`,
	Args: cobra.ExactArgs(3),
	RunE: runTransfer,
}

func runTransfer(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	payload, err := client.TransferUser(cmd.Context(), args[0], args[1], args[2])
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}
