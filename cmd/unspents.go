package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var satoshisPerCoin = decimal.NewFromInt(100_000_000)

var unspentsCmd = &cobra.Command{
	Use:   "unspents <address>",
	Short: "List unspent outputs funding an address",
	Long: `List the unspent transaction outputs funding an address. These are
the inputs available for building registration or transfer transactions.

Example:
  blockname unspents 1FmWhs2ma5JSwqqo9Fkd2serfDnNmhLHJG`,
	Args: cobra.ExactArgs(1),
	RunE: runUnspents,
}

func runUnspents(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	payload, err := client.UnspentOutputs(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if raw, _ := cmd.Flags().GetBool("json"); raw {
		printPayload(payload)

		return nil
	}

	var response struct {
		Unspents []struct {
			TransactionHash string `json:"transaction_hash"`
			OutputIndex     uint32 `json:"output_index"`
			Value           int64  `json:"value"`
			Confirmations   int64  `json:"confirmations"`
		} `json:"unspents"`
	}

	// payload shape is the service's contract; fall back to raw output
	// when it does not decode
	if err := json.Unmarshal(payload, &response); err != nil {
		printPayload(payload)

		return nil
	}

	_, _ = heading.Printf("Unspent outputs for %s\n", args[0])

	total := decimal.Zero

	for _, unspent := range response.Unspents {
		amount := decimal.NewFromInt(unspent.Value).Div(satoshisPerCoin)
		total = total.Add(amount)

		fmt.Printf("  %s:%d  %s BTC  (%d confirmations)\n",
			unspent.TransactionHash,
			unspent.OutputIndex,
			amount.StringFixed(8),
			unspent.Confirmations,
		)
	}

	fmt.Printf("Total: %s BTC across %d outputs\n", total.StringFixed(8), len(response.Unspents))

	return nil
}

func init() {
	unspentsCmd.Flags().Bool("json", false, "print the raw JSON response")
}
