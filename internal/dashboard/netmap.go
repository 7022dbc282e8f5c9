package dashboard

import "sort"

// InterfaceSeries is a read-only snapshot of one interface's history.
type InterfaceSeries struct {
	Name   string
	Values []float64
}

// InterfaceHistory maps interface names to their own time series of
// cumulative packet counts. Interfaces appear when first reported by the
// provider and are never removed within a run.
type InterfaceHistory struct {
	series map[string]*TimeSeries
	maxLen int
}

// NewInterfaceHistory creates an empty history. maxLen bounds each
// interface's series; <= 0 means unbounded.
func NewInterfaceHistory(maxLen int) *InterfaceHistory {
	return &InterfaceHistory{
		series: make(map[string]*TimeSeries),
		maxLen: maxLen,
	}
}

// Record appends the cumulative packet count for the named interface at the
// given frame, creating the series when the interface is seen for the first
// time. The raw counter is charted directly rather than as a delta.
func (h *InterfaceHistory) Record(seq uint64, name string, cumulativePackets float64) error {
	ts, ok := h.series[name]
	if !ok {
		ts = NewTimeSeries(h.maxLen)
		h.series[name] = ts
	}
	return ts.Append(seq, cumulativePackets)
}

// Len returns the number of tracked interfaces.
func (h *InterfaceHistory) Len() int {
	return len(h.series)
}

// SnapshotSorted returns a copy of every interface's history ordered by
// interface name, ascending. The ordering is load-bearing: map iteration
// order would reshuffle the network panel between frames.
func (h *InterfaceHistory) SnapshotSorted() []InterfaceSeries {
	if len(h.series) == 0 {
		return nil
	}

	names := make([]string, 0, len(h.series))
	for name := range h.series {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]InterfaceSeries, 0, len(names))
	for _, name := range names {
		out = append(out, InterfaceSeries{
			Name:   name,
			Values: h.series[name].Values(),
		})
	}
	return out
}
