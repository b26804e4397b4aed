package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.3.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blockname",
	Short: "Command-line client for the Blockname identity registry",
	Long: `blockname talks to the Blockname identity/naming registry API:
username lookup and registration, profile updates, ownership transfer,
transaction broadcast, and address/domain queries.

Credentials come from the environment (or a .env file):
  BLOCKNAME_APP_ID      application id
  BLOCKNAME_APP_SECRET  application secret

Examples:
  blockname lookup alice bob           # Fetch registry records
  blockname search twitter:alice       # Search the registry
  blockname register alice 1A2b3C...   # Register a username
  blockname unspents 1A2b3C...         # List unspent outputs
  blockname --network staging lookup alice`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("network", "", "target environment: mainnet or staging")
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(allUsersCmd)
	rootCmd.AddCommand(broadcastCmd)
	rootCmd.AddCommand(unspentsCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(dkimCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blockname v%s\n", version)
	},
}
