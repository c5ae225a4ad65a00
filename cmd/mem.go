package main

import (
	"fmt"

	"host-checks/internal/config"
	"host-checks/internal/logging"
	"host-checks/internal/meminfo"
	"host-checks/internal/nagios"
	"host-checks/internal/threshold"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var memCmd = &cobra.Command{
	Use:   "mem",
	Short: "Check the percentage of available memory",
	Long: `Checks the amount of available memory on the host. Available memory
falling below the warn or critical percentage constitutes a failure.`,
	RunE: runMemCommand,
}

var (
	memWarnPct  int
	memCritPct  int
	meminfoPath string
)

func init() {
	memCmd.Flags().IntVarP(&memWarnPct, "warn", "w", 0, "warn level: available memory below this percentage is a warning (required)")
	memCmd.Flags().IntVarP(&memCritPct, "critical", "c", 0, "critical level: available memory below this percentage is critical (required)")
	memCmd.Flags().StringVar(&meminfoPath, "meminfo", "", "meminfo-format file to read (default /proc/meminfo, or HOSTCHECK_MEMINFO_PATH)")
	memCmd.MarkFlagRequired("warn")
	memCmd.MarkFlagRequired("critical")

	rootCmd.AddCommand(memCmd)
}

func runMemCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := meminfoPath
	if path == "" {
		path = cfg.MeminfoPath
	}

	logger := logging.NewCheckLogger(logging.Initialize(effectiveLogLevel(cfg)), "mem")

	status, line, err := memCheck(path, memWarnPct, memCritPct, logger)
	if err != nil {
		return err
	}

	report(status, line)
	return nil
}

// memCheck validates the percentage cutoffs, reads the meminfo table and
// classifies the available-memory percentage. The cutoffs are validated
// before any measurement is taken.
func memCheck(path string, warnPct, critPct int, logger *logrus.Entry) (nagios.Status, string, error) {
	cutoffs, err := threshold.NewPercent(warnPct, critPct)
	if err != nil {
		return nagios.StatusUnknown, "", err
	}

	table, err := meminfo.ReadFile(path)
	if err != nil {
		return nagios.StatusUnknown, "", err
	}

	avail, err := table.Availability()
	if err != nil {
		return nagios.StatusUnknown, "", err
	}

	logger.WithFields(logrus.Fields{
		"total":             avail.Total.Value,
		"available":         avail.Available.Value,
		"percent_available": avail.Percent,
	}).Info("Measured memory availability")

	status := nagios.ClassifyPercent(avail.Percent, cutoffs)
	message := fmt.Sprintf("Mem: %d %s, Available: %d %s, Percent available: %.2f%%",
		avail.Total.Value, avail.Total.Unit,
		avail.Available.Value, avail.Available.Unit,
		avail.Percent)

	return status, nagios.Line(status, message), nil
}

// effectiveLogLevel prefers the command line flag over the configured level.
func effectiveLogLevel(cfg *config.Config) string {
	if logLevel != "" {
		return logLevel
	}
	return cfg.LogLevel
}
