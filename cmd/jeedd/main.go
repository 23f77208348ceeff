package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// errFindings makes the process exit with status 1 without printing an
// error; the command has already reported what it found.
var errFindings = errors.New("findings reported")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "jeedd:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:           "jeedd",
		Short:         "Read, check and normalise Java EE deployment descriptors",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity(verbose, os.Getenv("JEEDD_LOG")), nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more, repeat for debug output")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

// verbosity combines the -v count with JEEDD_LOG. Without either only
// errors are logged.
func verbosity(flag int, env string) int {
	if flag > 0 {
		return flag
	}
	if n, err := strconv.Atoi(env); err == nil {
		return n
	}
	return 0
}
