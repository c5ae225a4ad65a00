package meminfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrMissingMetric indicates that a metric required to compute availability
// is absent from the parsed table.
var ErrMissingMetric = errors.New("missing metric")

// lineRe matches one meminfo entry: an identifier, a non-negative integer
// and an optional unit label. Lines that don't match are not entries.
var lineRe = regexp.MustCompile(`^\s*([a-zA-Z0-9_()]+):\s+([0-9]+)\s*([a-zA-Z]*)\s*$`)

// Quantity is a measured value with its unit label. Units are opaque; the
// availability computation assumes all entries in one table share a unit,
// which holds for /proc/meminfo (kB) but is not verified.
type Quantity struct {
	Value uint64
	Unit  string
}

// Table maps lower-cased metric names to quantities. It is built once per
// run and read-only afterward.
type Table map[string]Quantity

// Parse reads meminfo-formatted text into a Table. Lines that don't match
// the entry pattern are skipped.
func Parse(r io.Reader) (Table, error) {
	table := make(Table)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		match := lineRe.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}

		value, err := strconv.ParseUint(match[2], 10, 64)
		if err != nil {
			// The pattern only admits digits; overflow is the one way here.
			return nil, fmt.Errorf("failed to parse %q value %q: %w", match[1], match[2], err)
		}

		table[strings.ToLower(match[1])] = Quantity{Value: value, Unit: match[3]}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meminfo input: %w", err)
	}

	return table, nil
}

// ReadFile parses the meminfo-formatted file at path.
func ReadFile(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open meminfo file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Availability holds the normalized memory figures derived from a Table.
type Availability struct {
	Total     Quantity
	Available Quantity
	Percent   float64
}

// Availability derives total, available and percent-available figures.
// MemAvailable is used directly when present; otherwise availability is
// approximated as total minus cached minus buffers, which ignores
// reclaimable slab and is less accurate.
func (t Table) Availability() (Availability, error) {
	total, ok := t["memtotal"]
	if !ok {
		return Availability{}, fmt.Errorf("%w: memtotal", ErrMissingMetric)
	}
	if total.Value == 0 {
		return Availability{}, fmt.Errorf("%w: memtotal is zero", ErrMissingMetric)
	}

	var available Quantity
	if avail, ok := t["memavailable"]; ok {
		available = avail
	} else {
		cached, ok := t["cached"]
		if !ok {
			return Availability{}, fmt.Errorf("%w: cached (needed without memavailable)", ErrMissingMetric)
		}
		buffers, ok := t["buffers"]
		if !ok {
			return Availability{}, fmt.Errorf("%w: buffers (needed without memavailable)", ErrMissingMetric)
		}
		if cached.Value+buffers.Value > total.Value {
			return Availability{}, fmt.Errorf("%w: cached and buffers exceed memtotal", ErrMissingMetric)
		}
		available = Quantity{
			Value: total.Value - cached.Value - buffers.Value,
			Unit:  total.Unit,
		}
	}

	return Availability{
		Total:     total,
		Available: available,
		Percent:   float64(available.Value) / float64(total.Value) * 100.0,
	}, nil
}
