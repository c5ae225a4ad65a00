package threshold

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Byte multipliers for the k/m/g value suffixes.
const (
	Kilobyte uint64 = 1024
	Megabyte uint64 = 1024 * 1024
	Gigabyte uint64 = 1024 * 1024 * 1024
)

var (
	// ErrInvalidValue indicates a malformed numeric value or suffix.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidRange indicates a malformed range specification.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInconsistentThresholds indicates warn and critical thresholds
	// that contradict each other.
	ErrInconsistentThresholds = errors.New("inconsistent thresholds")
)

// valueRe matches a non-negative integer with an optional k/m/g suffix.
var valueRe = regexp.MustCompile(`^([0-9]+)([kKmMgG]?)$`)

// Normalize converts a value with an optional k/m/g suffix to a byte count.
func Normalize(value string) (uint64, error) {
	match := valueRe.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("%w: %q does not match [0-9]+[kKmMgG]?", ErrInvalidValue, value)
	}

	n, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValue, value, err)
	}

	switch strings.ToLower(match[2]) {
	case "":
		return n, nil
	case "k":
		return n * Kilobyte, nil
	case "m":
		return n * Megabyte, nil
	default: // "g", the only remaining suffix the pattern admits
		return n * Gigabyte, nil
	}
}

// Range is an inclusive byte interval. Values outside it trigger a failure.
type Range struct {
	Min uint64
	Max uint64
}

// ParseRange parses a range specification of the form "max" or "min:max",
// normalizing each side to bytes. A bare value means a range of 0:value.
func ParseRange(spec string) (Range, error) {
	var minPart, maxPart string

	switch strings.Count(spec, ":") {
	case 0:
		minPart, maxPart = "0", spec
	case 1:
		parts := strings.SplitN(spec, ":", 2)
		minPart, maxPart = parts[0], parts[1]
	default:
		return Range{}, fmt.Errorf("%w: %q has too many colons", ErrInvalidRange, spec)
	}

	min, err := Normalize(minPart)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, spec, err)
	}

	max, err := Normalize(maxPart)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, spec, err)
	}

	return Range{Min: min, Max: max}, nil
}

// Pair holds a warn range nested inside a critical range. Critical is the
// outer envelope; a value outside it is worse than one merely outside warn.
type Pair struct {
	Warn Range
	Crit Range
}

// NewPair validates warn and critical ranges against each other and returns
// the pair. Checks run in a fixed order: each range must have min <= max,
// then critical must fully contain warn.
func NewPair(warn, crit Range) (Pair, error) {
	if warn.Min > warn.Max {
		return Pair{}, fmt.Errorf("%w: warn minimum (%d) is greater than warn maximum (%d)",
			ErrInvalidRange, warn.Min, warn.Max)
	}
	if crit.Min > crit.Max {
		return Pair{}, fmt.Errorf("%w: critical minimum (%d) is greater than critical maximum (%d)",
			ErrInvalidRange, crit.Min, crit.Max)
	}
	if warn.Min < crit.Min {
		return Pair{}, fmt.Errorf("%w: warning min must be higher than critical min", ErrInconsistentThresholds)
	}
	if warn.Max > crit.Max {
		return Pair{}, fmt.Errorf("%w: warning max must be lower than critical max", ErrInconsistentThresholds)
	}
	return Pair{Warn: warn, Crit: crit}, nil
}

// Percent holds scalar warn/critical percentage floors. Warn must be the
// higher floor so it fires before critical as the measured percentage drops.
type Percent struct {
	Warn int
	Crit int
}

// NewPercent validates the two percentage floors against each other.
func NewPercent(warn, crit int) (Percent, error) {
	if warn < crit {
		return Percent{}, fmt.Errorf("%w: warn threshold must be higher than critical threshold", ErrInconsistentThresholds)
	}
	return Percent{Warn: warn, Crit: crit}, nil
}
