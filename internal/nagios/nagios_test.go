package nagios

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"host-checks/internal/threshold"
)

func TestStatusExitCodes(t *testing.T) {
	assert.Equal(t, 0, StatusOK.ExitCode())
	assert.Equal(t, 1, StatusWarning.ExitCode())
	assert.Equal(t, 2, StatusCritical.ExitCode())
	assert.Equal(t, 3, StatusUnknown.ExitCode())
}

func TestLine(t *testing.T) {
	assert.Equal(t, "OK - all good", Line(StatusOK, "all good"))
	assert.Equal(t, "WARNING - getting full", Line(StatusWarning, "getting full"))
	assert.Equal(t, "CRIT - too big", Line(StatusCritical, "too big"))
}

func TestClassifyBytes(t *testing.T) {
	pair := threshold.Pair{
		Warn: threshold.Range{Min: 200, Max: 900},
		Crit: threshold.Range{Min: 100, Max: 1000},
	}

	tests := []struct {
		name     string
		value    uint64
		expected Status
	}{
		{"inside warn", 500, StatusOK},
		{"at warn max", 900, StatusOK},
		{"above warn max inside crit", 950, StatusWarning},
		{"at crit max", 1000, StatusWarning},
		{"one above crit max", 1001, StatusCritical},
		{"at warn min", 200, StatusOK},
		{"below warn min inside crit", 150, StatusWarning},
		{"at crit min", 100, StatusWarning},
		{"below crit min", 99, StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyBytes(tt.value, pair))
		})
	}
}

func TestClassifyBytesCriticalTakesPrecedence(t *testing.T) {
	// value outside both envelopes is critical, not warning
	pair := threshold.Pair{
		Warn: threshold.Range{Min: 0, Max: 500},
		Crit: threshold.Range{Min: 0, Max: 600},
	}
	assert.Equal(t, StatusCritical, ClassifyBytes(700, pair))
}

func TestClassifyPercent(t *testing.T) {
	cutoffs := threshold.Percent{Warn: 50, Crit: 20}

	tests := []struct {
		name     string
		percent  float64
		expected Status
	}{
		{"plenty available", 80.0, StatusOK},
		{"exactly at warn floor", 50.0, StatusOK},
		{"below warn floor", 40.0, StatusWarning},
		{"exactly at crit floor", 20.0, StatusWarning},
		{"below crit floor", 19.9, StatusCritical},
		{"nothing left", 0.0, StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyPercent(tt.percent, cutoffs))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		value    uint64
		expected string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{1024, "1024 bytes"},
		{1025, "1.001KB"},
		{2048, "2.000KB"},
		{1048576, "1024.000KB"},
		{1048577, "1.000MB"},
		{5 * 1048576, "5.000MB"},
		{2 * 1073741824, "2.000GB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.value))
		})
	}
}
