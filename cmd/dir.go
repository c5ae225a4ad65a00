package main

import (
	"fmt"

	"host-checks/internal/config"
	"host-checks/internal/dirsize"
	"host-checks/internal/logging"
	"host-checks/internal/nagios"
	"host-checks/internal/threshold"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Check the size of a directory's contents",
	Long: `Checks the total size of the contents of a directory. Warn and
critical can be either a single value (trigger if over) or a range in the
form value:value (trigger if outside of it). Values can have a k, m, or g
suffix (or no suffix).`,
	RunE: runDirCommand,
}

var (
	dirPath     string
	dirXdev     bool
	dirWarnSpec string
	dirCritSpec string
)

func init() {
	dirCmd.Flags().StringVarP(&dirPath, "dir", "d", "", "the directory to check (required)")
	dirCmd.Flags().BoolVar(&dirXdev, "xdev", false, "do not cross filesystem devices during the scan")
	dirCmd.Flags().StringVarP(&dirWarnSpec, "warn", "w", "", "warn level or range, e.g. 512 or 1k:15k or 100M:2g (required)")
	dirCmd.Flags().StringVarP(&dirCritSpec, "critical", "c", "", "critical level or range, e.g. 768 or 512:20k or 50M:3g (required)")
	dirCmd.MarkFlagRequired("dir")
	dirCmd.MarkFlagRequired("warn")
	dirCmd.MarkFlagRequired("critical")

	rootCmd.AddCommand(dirCmd)
}

func runDirCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewCheckLogger(logging.Initialize(effectiveLogLevel(cfg)), "dir")
	scanner := dirsize.NewScanner(logger)

	status, line, err := dirCheck(scanner, dirPath, dirXdev, dirWarnSpec, dirCritSpec, logger)
	if err != nil {
		return err
	}

	report(status, line)
	return nil
}

// dirCheck parses and validates both ranges, scans the directory and
// classifies the total. Threshold errors are detected before any
// filesystem access.
func dirCheck(scanner *dirsize.Scanner, dir string, xdev bool, warnSpec, critSpec string, logger *logrus.Entry) (nagios.Status, string, error) {
	warn, err := threshold.ParseRange(warnSpec)
	if err != nil {
		return nagios.StatusUnknown, "", fmt.Errorf("invalid value (%s) for warn: %w", warnSpec, err)
	}

	crit, err := threshold.ParseRange(critSpec)
	if err != nil {
		return nagios.StatusUnknown, "", fmt.Errorf("invalid value (%s) for critical: %w", critSpec, err)
	}

	pair, err := threshold.NewPair(warn, crit)
	if err != nil {
		return nagios.StatusUnknown, "", err
	}

	total, err := scanner.Scan(dir, xdev)
	if err != nil {
		return nagios.StatusUnknown, "", err
	}

	logger.WithFields(logrus.Fields{
		"dir":   dir,
		"xdev":  xdev,
		"bytes": total,
	}).Info("Measured directory size")

	status := nagios.ClassifyBytes(total, pair)
	message := fmt.Sprintf("%s size is %s", dir, nagios.FormatBytes(total))

	return status, nagios.Line(status, message), nil
}
