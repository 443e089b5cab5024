package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Fund and inspect accounts",
	}
	accountCmd.AddCommand(
		newAccountFundCmd(),
		newAccountInfoCmd(),
		newHistoryCmd("account", "account_tx", "List the transactions that touched an account"),
	)
	return accountCmd
}

func newAccountFundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <account> <amount>",
		Short: "Credit base currency to an account, creating it if needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return callMethod(cmd, "fund", map[string]interface{}{
				"account": args[0],
				"amount":  strconv.FormatUint(amount, 10),
			})
		},
	}
}

func newAccountInfoCmd() *cobra.Command {
	var holdings bool
	cmd := &cobra.Command{
		Use:   "info <account>",
		Short: "Show an account's balance and reserve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callMethod(cmd, "account_info", map[string]interface{}{
				"account":  args[0],
				"holdings": holdings,
			})
		},
	}
	cmd.Flags().BoolVar(&holdings, "holdings", false, "include unit balances")
	return cmd
}

func newTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tx <hash>",
		Short: "Look up an applied transaction by hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callMethod(cmd, "tx", map[string]interface{}{"transaction": args[0]})
		},
	}
}
