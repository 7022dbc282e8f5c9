package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitals-sh/vitals/internal/metrics"
)

func TestUsedPercent(t *testing.T) {
	tests := []struct {
		name      string
		available uint64
		total     uint64
		expected  uint8
	}{
		{"full disk", 0, 100, 100},
		{"zero total guarded", 50, 0, 0},
		{"empty disk", 100, 100, 0},
		{"half used", 50, 100, 50},
		{"rounds up", 333, 1000, 67},
		{"rounds down", 666, 1000, 33},
		{"available exceeds total saturates", 200, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, usedPercent(tt.available, tt.total))
		})
	}
}

func TestDiskName(t *testing.T) {
	tests := []struct {
		device   string
		expected string
	}{
		{"/dev/disk/by-id/xyz", "xyz"},
		{"/dev/sda1", "sda1"},
		{"sda1", "sda1"},
		{"/dev/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			assert.Equal(t, tt.expected, diskName(tt.device))
		})
	}
}

func TestDiskGaugeRefreshReplaces(t *testing.T) {
	g := NewDiskGauge()

	g.Refresh([]metrics.DiskStat{
		{Device: "/dev/sda1", Available: 0, Total: 100},
		{Device: "/dev/sdb1", Available: 50, Total: 100},
	})

	entries := g.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, DiskEntry{Name: "sda1", UsedPercent: 100}, entries[0])
	assert.Equal(t, DiskEntry{Name: "sdb1", UsedPercent: 50}, entries[1])

	// A refresh replaces, never appends.
	g.Refresh([]metrics.DiskStat{
		{Device: "/dev/nvme0n1p1", Available: 25, Total: 100},
	})
	entries = g.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, DiskEntry{Name: "nvme0n1p1", UsedPercent: 75}, entries[0])
}

func TestDiskGaugeEntriesAreCopies(t *testing.T) {
	g := NewDiskGauge()
	g.Refresh([]metrics.DiskStat{{Device: "sda", Available: 50, Total: 100}})

	entries := g.Entries()
	entries[0].UsedPercent = 0

	assert.Equal(t, uint8(50), g.Entries()[0].UsedPercent)
}

func TestDiskGaugeEmpty(t *testing.T) {
	g := NewDiskGauge()
	assert.Nil(t, g.Entries())

	g.Refresh(nil)
	assert.Nil(t, g.Entries())
}
