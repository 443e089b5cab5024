package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_handlers"
	"github.com/LeJamon/goMemeLedger/internal/rpc/rpc_types"
)

func newWalletCmd() *cobra.Command {
	walletCmd := &cobra.Command{
		Use:   "wallet",
		Short: "Key management",
	}

	var passphrase string
	proposeCmd := &cobra.Command{
		Use:   "propose",
		Short: "Generate a key pair and its account address",
		Long: `Generate a secp256k1 key pair. With --passphrase the keys are derived
deterministically from it; otherwise they are random.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No ledger is needed to make keys.
			registry := rpc_types.NewMethodRegistry()
			registry.Register("wallet_propose", &rpc_handlers.WalletProposeMethod{})

			params, err := encodeParams(map[string]interface{}{"passphrase": passphrase})
			if err != nil {
				return err
			}
			return runMethod(context.Background(), cmd, registry, "wallet_propose", params)
		},
	}
	proposeCmd.Flags().StringVar(&passphrase, "passphrase", "", "derive the keys from this passphrase")

	walletCmd.AddCommand(proposeCmd)
	return walletCmd
}
