package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stellarsql/stellar/cmd/gen"
	"github.com/stellarsql/stellar/internal/meta"
)

// RootCmd represents the base command. Running it bare (or with a
// host/port pair) opens an interactive session, same as `connect`.
var RootCmd = &cobra.Command{
	Use:   "stellar [host] [port]",
	Short: "Interactive client for StellarSQL",
	Long: `stellar is an interactive command-line client for a StellarSQL
database server. It speaks the pipe-delimited session protocol over a
plain TCP socket: register or set a user, select or create a database,
then type queries.

Usage
	stellar
	stellar <host> <port>

`,
	Args: hostPortArgs,
	RunE: runConnect,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information for this stellar binary",
	Run: func(cmd *cobra.Command, args []string) {
		info := meta.GetInfo()
		fmt.Printf("stellar %s (build %s, %s, %s)\n",
			info.Version, info.Build, info.GoVersion, info.Platform)
	},
}

func init() {
	RootCmd.AddCommand(ConnectCmd)
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(gen.RootCmd)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
