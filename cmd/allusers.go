package cmd

import (
	"github.com/spf13/cobra"
)

var allUsersCmd = &cobra.Command{
	Use:   "all-users",
	Short: "List all registered usernames",
	Args:  cobra.NoArgs,
	RunE:  runAllUsers,
}

func runAllUsers(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	payload, err := client.AllUsers(cmd.Context())
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}
