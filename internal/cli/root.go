package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the memeledgerd release string.
var Version = "0.1.0-dev"

var (
	// Global flags
	configFile string
	debug      bool
)

// newRootCmd builds the command tree. Each call returns a fresh tree so
// flag state does not leak between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "memeledgerd",
		Short: "memeledgerd - fixed-price meme coin ledger",
		Long: `memeledgerd keeps a ledger of meme coin assets. Creators register an
asset with a fixed unit price; holders buy newly minted units and sell
them back for the price minus a 5% fee.

Without a subcommand the node server is started.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable normally suppressed debug logging")

	serveCmd := newServeCmd()
	rootCmd.RunE = serveCmd.RunE

	rootCmd.AddCommand(
		serveCmd,
		newAssetCmd(),
		newAccountCmd(),
		newTxCmd(),
		newWalletCmd(),
		newRPCCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command line. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
