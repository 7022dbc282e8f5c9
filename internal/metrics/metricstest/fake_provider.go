// Package metricstest provides a scriptable fake Provider for tests.
package metricstest

import (
	"errors"

	"github.com/vitals-sh/vitals/internal/metrics"
)

// ErrUnavailable is returned by fake calls configured to fail.
var ErrUnavailable = errors.New("provider unavailable")

// FakeProvider implements metrics.Provider with canned readings.
// Each stream can be failed independently to exercise per-stream skips.
type FakeProvider struct {
	CPU       float64
	Mem       metrics.MemoryStat
	DiskList  []metrics.DiskStat
	IfaceList []metrics.InterfaceStat
	ProcList  []metrics.ProcessStat

	FailCPU        bool
	FailMem        bool
	FailDisks      bool
	FailInterfaces bool
	FailProcesses  bool

	// Call counters, for asserting refresh cadence.
	CPUCalls       int
	MemCalls       int
	DiskCalls      int
	InterfaceCalls int
	ProcessCalls   int
}

var _ metrics.Provider = (*FakeProvider)(nil)

// NewFakeProvider returns a fake with reasonable non-zero defaults.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		CPU: 12.5,
		Mem: metrics.MemoryStat{Used: 4 << 30, Total: 16 << 30},
		DiskList: []metrics.DiskStat{
			{Device: "/dev/sda1", Available: 50 << 30, Total: 100 << 30},
		},
		IfaceList: []metrics.InterfaceStat{
			{Name: "eth0", Packets: 100},
		},
		ProcList: []metrics.ProcessStat{
			{PID: 1, Name: "init", CPUPercent: 0.1, MemoryBytes: 8 << 20},
		},
	}
}

func (f *FakeProvider) CPUPercent() (float64, error) {
	f.CPUCalls++
	if f.FailCPU {
		return 0, ErrUnavailable
	}
	return f.CPU, nil
}

func (f *FakeProvider) Memory() (metrics.MemoryStat, error) {
	f.MemCalls++
	if f.FailMem {
		return metrics.MemoryStat{}, ErrUnavailable
	}
	return f.Mem, nil
}

func (f *FakeProvider) Disks() ([]metrics.DiskStat, error) {
	f.DiskCalls++
	if f.FailDisks {
		return nil, ErrUnavailable
	}
	return append([]metrics.DiskStat(nil), f.DiskList...), nil
}

func (f *FakeProvider) Interfaces() ([]metrics.InterfaceStat, error) {
	f.InterfaceCalls++
	if f.FailInterfaces {
		return nil, ErrUnavailable
	}
	return append([]metrics.InterfaceStat(nil), f.IfaceList...), nil
}

func (f *FakeProvider) Processes() ([]metrics.ProcessStat, error) {
	f.ProcessCalls++
	if f.FailProcesses {
		return nil, ErrUnavailable
	}
	return append([]metrics.ProcessStat(nil), f.ProcList...), nil
}
