package meminfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMeminfo = `MemTotal:       16384256 kB
MemFree:         2048128 kB
MemAvailable:    8192512 kB
Buffers:          512256 kB
Cached:          4096128 kB
Active(anon):    3072000 kB
HugePages_Total:       0
DirectMap4k:      262144 kB
`

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleMeminfo))
	require.NoError(t, err)

	assert.Equal(t, Quantity{Value: 16384256, Unit: "kB"}, table["memtotal"])
	assert.Equal(t, Quantity{Value: 8192512, Unit: "kB"}, table["memavailable"])

	// parenthesized names are valid identifiers
	assert.Equal(t, Quantity{Value: 3072000, Unit: "kB"}, table["active(anon)"])

	// unit label is optional
	assert.Equal(t, Quantity{Value: 0, Unit: ""}, table["hugepages_total"])
}

func TestParseSkipsNonMatchingLines(t *testing.T) {
	input := strings.Join([]string{
		"some header garbage",
		"",
		"MemTotal:  1000 kB",
		"Negative: -5 kB",
		"Decimal: 1.5 kB",
		"NoValue:",
	}, "\n")

	table, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, table, 1)
	assert.Contains(t, table, "memtotal")
}

func TestAvailabilityDirect(t *testing.T) {
	table := Table{
		"memtotal":     {Value: 1000000, Unit: "kB"},
		"memavailable": {Value: 400000, Unit: "kB"},
		"cached":       {Value: 999999, Unit: "kB"},
	}

	avail, err := table.Availability()
	require.NoError(t, err)

	assert.Equal(t, uint64(1000000), avail.Total.Value)
	assert.Equal(t, uint64(400000), avail.Available.Value)
	assert.InDelta(t, 40.0, avail.Percent, 0.0001)
}

func TestAvailabilityFallback(t *testing.T) {
	table := Table{
		"memtotal": {Value: 1000000, Unit: "kB"},
		"cached":   {Value: 100000, Unit: "kB"},
		"buffers":  {Value: 50000, Unit: "kB"},
	}

	avail, err := table.Availability()
	require.NoError(t, err)

	assert.Equal(t, uint64(850000), avail.Available.Value)
	assert.Equal(t, "kB", avail.Available.Unit)
	assert.InDelta(t, 85.0, avail.Percent, 0.0001)
}

func TestAvailabilityMissingMetrics(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{"no memtotal", Table{"memavailable": {Value: 100}}},
		{"zero memtotal", Table{"memtotal": {Value: 0}, "memavailable": {Value: 0}}},
		{"fallback without cached", Table{"memtotal": {Value: 1000}, "buffers": {Value: 10}}},
		{"fallback without buffers", Table{"memtotal": {Value: 1000}, "cached": {Value: 10}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.table.Availability()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingMetric)
		})
	}
}

func TestAvailabilityEndToEnd(t *testing.T) {
	table, err := Parse(strings.NewReader(sampleMeminfo))
	require.NoError(t, err)

	avail, err := table.Availability()
	require.NoError(t, err)
	assert.InDelta(t, 50.002, avail.Percent, 0.01)
}
