package nagios

import (
	"fmt"

	"host-checks/internal/threshold"
)

// Status is a Nagios plugin status. The ordinal values are the process exit
// codes and part of the external contract; they must never be renumbered.
type Status int

const (
	StatusOK       Status = 0
	StatusWarning  Status = 1
	StatusCritical Status = 2
	StatusUnknown  Status = 3
)

// String returns the status-line prefix for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRIT"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	return int(s)
}

// Line renders the one-line plugin output for a status and message.
func Line(s Status, message string) string {
	return fmt.Sprintf("%s - %s", s, message)
}

// ClassifyBytes evaluates a byte count against a validated threshold pair.
// Critical is checked first so it takes precedence when both ranges are
// violated. The comparisons are strict: a value exactly at a bound is inside.
func ClassifyBytes(value uint64, t threshold.Pair) Status {
	switch {
	case value > t.Crit.Max || value < t.Crit.Min:
		return StatusCritical
	case value > t.Warn.Max || value < t.Warn.Min:
		return StatusWarning
	default:
		return StatusOK
	}
}

// ClassifyPercent evaluates a percentage against warn/critical floors.
// Both cutoffs are strict lower bounds: a value exactly at a floor passes it.
func ClassifyPercent(percent float64, t threshold.Percent) Status {
	switch {
	case percent < float64(t.Crit):
		return StatusCritical
	case percent < float64(t.Warn):
		return StatusWarning
	default:
		return StatusOK
	}
}

// FormatBytes renders a byte count in the largest of GB/MB/KB that the value
// strictly exceeds, to three decimal places, or as a plain byte count.
func FormatBytes(n uint64) string {
	switch {
	case n > threshold.Gigabyte:
		return fmt.Sprintf("%.3fGB", float64(n)/float64(threshold.Gigabyte))
	case n > threshold.Megabyte:
		return fmt.Sprintf("%.3fMB", float64(n)/float64(threshold.Megabyte))
	case n > threshold.Kilobyte:
		return fmt.Sprintf("%.3fKB", float64(n)/float64(threshold.Kilobyte))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
