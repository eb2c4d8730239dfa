package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/stellarsql/stellar/client"
	"github.com/stellarsql/stellar/internal/env"
	"github.com/stellarsql/stellar/shell"
)

var (
	// Enables verbose diagnostic logging on stderr
	debug bool
)

func init() {
	// Persistent on the root so both `stellar` and `stellar connect`
	// understand it.
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug diagnostics to stderr")
}

var ConnectCmd = &cobra.Command{
	Use:   "connect [host] [port]",
	Short: "Open an interactive session with a StellarSQL server",
	Long: `Open an interactive session with a StellarSQL server.

Takes either no arguments or a host/port pair. With no arguments the
endpoint comes from STELLAR_HOST/STELLAR_PORT, defaulting to
127.0.0.1:23333.

Usage
	stellar connect
	stellar connect 10.1.2.3 23333

`,
	Args: hostPortArgs,
	RunE: runConnect,
}

// hostPortArgs accepts exactly zero or two positional arguments. Any
// other count is a usage error.
func hostPortArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("accepts no arguments or exactly <host> <port>, received %d argument(s)", len(args))
	}

	return nil
}

func runConnect(cmd *cobra.Command, args []string) error {
	// The signal context only guards the dial: once the session is up,
	// reads block without deadline and Ctrl+C kills the process.
	ctx, signalStop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer signalStop()

	conf, err := env.LoadConfig(ctx)
	if err != nil {
		return err
	}

	// Either the --debug flag or STELLAR_DEBUG turns diagnostics on.
	log, err := env.MakeLogger(debug || conf.Debug)
	if err != nil {
		return err
	}

	host, port := conf.Host, strconv.Itoa(conf.Port)
	if len(args) == 2 {
		host, port = args[0], args[1]
	}

	addr := net.JoinHostPort(host, port)

	conn, err := client.Dial(ctx, addr, log.Named("client"))
	if err != nil {
		log.Debug("Dial failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Unable to connect %s\n", addr)
		os.Exit(1)
	}

	fmt.Printf("Connect to %s\n", addr)

	sh := shell.New(conn, os.Stdin, os.Stdout, log.Named("shell"))

	return multierr.Append(sh.Run(), conn.Close())
}
