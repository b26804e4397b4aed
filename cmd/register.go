package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blocknamehq/blockname-go/registry"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <recipient-address>",
	Short: "Register a username",
	Long: `Register a username, directing ownership to the recipient address.

An initial profile document can be supplied as inline JSON; without it the
name is created with an empty profile.

Examples:
  blockname register alice 1FmWhs2ma5JSwqqo9Fkd2serfDnNmhLHJG
  blockname register alice 1FmWhs2... --profile '{"name":"Alice"}'`,
	Args: cobra.ExactArgs(2),
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	var profile registry.Profile

	if raw, _ := cmd.Flags().GetString("profile"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			return fmt.Errorf("invalid profile JSON: %w", err)
		}
	}

	payload, err := client.RegisterUser(cmd.Context(), args[0], args[1], profile)
	if err != nil {
		return err
	}

	printPayload(payload)

	return nil
}

func init() {
	registerCmd.Flags().String("profile", "", "initial profile document as inline JSON")
}
