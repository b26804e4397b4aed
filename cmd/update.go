package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blocknamehq/blockname-go/registry"
)

var updateCmd = &cobra.Command{
	Use:   "update <username> <profile-json> <owner-pubkey>",
	Short: "Replace a username's profile document",
	Long: `Replace a username's profile document. The update must be signed
off by the public key that owns the name.

Example:
  blockname update alice '{"name":"Alice","website":"https://alice.me"}' 04deadbeef...`,
	Args: cobra.ExactArgs(3),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	var profile registry.Profile
	if err := json.Unmarshal([]byte(args[1]), &profile); err != nil {
		return fmt.Errorf("invalid profile JSON: %w", err)
	}

	payload, err := client.UpdateUser(cmd.Context(), args[0], profile, args[2])
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}
