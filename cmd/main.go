package main

import (
	"fmt"
	"os"

	"host-checks/internal/nagios"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "host-checks",
	Short: "Nagios-style host health checks",
	Long: `A set of host health checks following the Nagios plugin contract:
each check evaluates one measured quantity against warn/critical thresholds,
prints a single status line and exits with the matching status code
(0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides HOSTCHECK_LOG_LEVEL")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Argument and configuration errors are operator errors, not a
		// monitored-system failure: report them as UNKNOWN.
		fmt.Fprintf(os.Stderr, "UNKNOWN: %v\n", err)
		os.Exit(nagios.StatusUnknown.ExitCode())
	}
}

// report prints the status line and terminates with the matching exit code.
func report(status nagios.Status, message string) {
	fmt.Println(nagios.Line(status, message))
	os.Exit(status.ExitCode())
}
