package dashboard

import (
	"math"
	"strings"

	"github.com/vitals-sh/vitals/internal/metrics"
)

// DiskEntry is one disk gauge: a short device name and how full it is.
type DiskEntry struct {
	Name        string
	UsedPercent uint8
}

// DiskGauge holds the current disk capacity snapshot. The whole list is
// replaced on each refresh; capacity rarely changes shape mid-run, so there
// is no per-disk history.
type DiskGauge struct {
	entries []DiskEntry
}

// NewDiskGauge creates an empty gauge.
func NewDiskGauge() *DiskGauge {
	return &DiskGauge{}
}

// Refresh replaces the entire entry list from raw provider readings.
func (g *DiskGauge) Refresh(raw []metrics.DiskStat) {
	entries := make([]DiskEntry, 0, len(raw))
	for _, d := range raw {
		entries = append(entries, DiskEntry{
			Name:        diskName(d.Device),
			UsedPercent: usedPercent(d.Available, d.Total),
		})
	}
	g.entries = entries
}

// Entries returns a copy of the current snapshot.
func (g *DiskGauge) Entries() []DiskEntry {
	if len(g.entries) == 0 {
		return nil
	}
	out := make([]DiskEntry, len(g.entries))
	copy(out, g.entries)
	return out
}

// diskName shortens a device path to its final path segment, so
// "/dev/disk/by-id/xyz" displays as "xyz". Names without a separator pass
// through unchanged.
func diskName(device string) string {
	if idx := strings.LastIndex(device, "/"); idx >= 0 {
		return device[idx+1:]
	}
	return device
}

// usedPercent computes round((total-available)/total*100), saturated to
// [0,100]. A zero total yields 0 rather than dividing by zero.
func usedPercent(available, total uint64) uint8 {
	if total == 0 {
		return 0
	}
	if available > total {
		available = total
	}
	used := float64(total-available) / float64(total) * 100
	pct := math.Round(used)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return uint8(pct)
}
