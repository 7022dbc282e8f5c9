// Package metrics defines the provider interface the dashboard samples from,
// along with the raw reading types it returns. The real implementation is
// backed by gopsutil; tests use the fake in metricstest.
package metrics

// MemoryStat is a point-in-time memory reading in bytes.
type MemoryStat struct {
	Used  uint64
	Total uint64
}

// DiskStat is a point-in-time capacity reading for one mounted disk.
// Device is the raw device path as reported by the OS.
type DiskStat struct {
	Device    string
	Available uint64
	Total     uint64
}

// InterfaceStat is a cumulative traffic counter for one network interface.
// Packets is the sum of packets received and transmitted since boot.
type InterfaceStat struct {
	Name    string
	Packets uint64
}

// ProcessStat describes one running process.
type ProcessStat struct {
	PID         uint32
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
}

// Provider supplies raw point-in-time readings for every metric stream the
// dashboard tracks. Implementations may fail per call; the sampling engine
// treats each failure as a one-tick skip of that stream, never as fatal.
type Provider interface {
	// CPUPercent returns global CPU utilization in [0,100].
	CPUPercent() (float64, error)

	// Memory returns used and total physical memory.
	Memory() (MemoryStat, error)

	// Disks enumerates mounted disks with their capacity.
	Disks() ([]DiskStat, error)

	// Interfaces returns cumulative packet counters per network interface.
	Interfaces() ([]InterfaceStat, error)

	// Processes lists running processes. This is the most expensive call
	// and is throttled by the engine.
	Processes() ([]ProcessStat, error)
}
