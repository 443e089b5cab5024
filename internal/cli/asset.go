package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAssetCmd() *cobra.Command {
	assetCmd := &cobra.Command{
		Use:   "asset",
		Short: "Create, trade and inspect assets",
	}
	assetCmd.AddCommand(
		newAssetCreateCmd(),
		newTradeCmd("buy", "asset_buy", "Buy newly minted units at the asset's price"),
		newTradeCmd("sell", "asset_sell", "Sell units back for the price minus the fee"),
		newAssetInfoCmd(),
		newHistoryCmd("asset", "asset_tx", "List the transactions that touched an asset"),
	)
	return assetCmd
}

func newAssetCreateCmd() *cobra.Command {
	var (
		account  string
		symbol   string
		uri      string
		decimals uint8
		supply   uint64
		price    uint64
	)
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a new asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{
				"account":        account,
				"name":           args[0],
				"symbol":         symbol,
				"decimals":       decimals,
				"initial_supply": strconv.FormatUint(supply, 10),
				"price_per_unit": strconv.FormatUint(price, 10),
			}
			if uri != "" {
				params["uri"] = uri
			}
			return callMethod(cmd, "asset_create", params)
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "creator account address")
	cmd.Flags().StringVar(&symbol, "symbol", "", "ticker symbol")
	cmd.Flags().StringVar(&uri, "uri", "", "metadata URI")
	cmd.Flags().Uint8Var(&decimals, "decimals", 9, "display precision of the units")
	cmd.Flags().Uint64Var(&supply, "supply", 0, "declared initial supply")
	cmd.Flags().Uint64Var(&price, "price", 0, "base currency price of one unit")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

// newTradeCmd builds the buy and sell commands, which differ only in method.
func newTradeCmd(use, method, short string) *cobra.Command {
	var account string
	cmd := &cobra.Command{
		Use:   use + " <asset> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return callMethod(cmd, method, map[string]interface{}{
				"account": account,
				"asset":   args[0],
				"amount":  strconv.FormatUint(amount, 10),
			})
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "trading account address")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func newAssetInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <asset>",
		Short: "Show an asset record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callMethod(cmd, "asset_info", map[string]interface{}{"asset": args[0]})
		},
	}
}

// newHistoryCmd builds account tx and asset tx. key is the params field
// naming what the history is for.
func newHistoryCmd(key, method, short string) *cobra.Command {
	var (
		limit   uint32
		marker  uint64
		forward bool
	)
	cmd := &cobra.Command{
		Use:   "tx <" + key + ">",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{key: args[0]}
			if limit > 0 {
				params["limit"] = limit
			}
			if cmd.Flags().Changed("marker") {
				params["marker"] = marker
			}
			if forward {
				params["forward"] = true
			}
			return callMethod(cmd, method, params)
		},
	}
	cmd.Flags().Uint32Var(&limit, "limit", 0, "maximum entries per page")
	cmd.Flags().Uint64Var(&marker, "marker", 0, "resume after this transaction index")
	cmd.Flags().BoolVar(&forward, "forward", false, "list oldest first")
	return cmd
}

func parseAmount(s string) (uint64, error) {
	amount, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: must be a non-negative integer", s)
	}
	return amount, nil
}
