package dashboard

// View is the read-only projection of dashboard state handed to the render
// surface once per frame. It holds copies only; there is no path from a
// View back into engine-owned state.
type View struct {
	// Frame is the frame counter of the most recent tick.
	Frame uint64

	// CPU is the global CPU utilization history, one sample per tick.
	CPU []Sample

	// Memory is the used-memory history in bytes, one sample per tick.
	Memory []Sample

	// MemoryUsed and MemoryTotal are the most recent memory readings.
	MemoryUsed  uint64
	MemoryTotal uint64

	// Interfaces holds per-interface packet histories, sorted by name.
	Interfaces []InterfaceSeries

	// Disks is the current disk gauge snapshot.
	Disks []DiskEntry

	// Processes is the current process ranking, CPU descending.
	Processes []ProcessRow

	// Selected is the cursor index into Processes, or -1 when empty.
	Selected int
}

// CPUPercentNow returns the most recent CPU reading, or 0 before the first
// sample.
func (v View) CPUPercentNow() float64 {
	if len(v.CPU) == 0 {
		return 0
	}
	return v.CPU[len(v.CPU)-1].Value
}

// MemoryPercentNow returns used memory as a percentage of total, with a
// zero total yielding 0.
func (v View) MemoryPercentNow() float64 {
	if v.MemoryTotal == 0 {
		return 0
	}
	return float64(v.MemoryUsed) / float64(v.MemoryTotal) * 100
}
