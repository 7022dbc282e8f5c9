package metrics

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/vitals-sh/vitals/internal/errors"
	"github.com/vitals-sh/vitals/internal/logger"
)

// SystemProvider reads metrics from the local host via gopsutil.
type SystemProvider struct {
	log logger.Logger
}

var _ Provider = (*SystemProvider)(nil)

// NewSystemProvider creates a provider for the local host.
func NewSystemProvider(log logger.Logger) *SystemProvider {
	if log == nil {
		log = logger.Noop()
	}
	return &SystemProvider{log: log}
}

// CPUPercent returns global CPU utilization since the previous call.
// The zero interval makes gopsutil compute the delta against its last
// reading instead of blocking the sampling loop.
func (p *SystemProvider) CPUPercent() (float64, error) {
	percents, err := cpu.Percent(0, false)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrProvider, "Failed to read CPU utilization")
	}
	if len(percents) == 0 {
		return 0, errors.New(errors.ErrProvider, "CPU utilization unavailable", "")
	}
	return percents[0], nil
}

// Memory returns used and total physical memory.
func (p *SystemProvider) Memory() (MemoryStat, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryStat{}, errors.Wrap(err, errors.ErrProvider, "Failed to read memory usage")
	}
	return MemoryStat{Used: vm.Used, Total: vm.Total}, nil
}

// Disks enumerates physical partitions with their capacity. Partitions whose
// usage cannot be read (e.g. permission-restricted mounts) are skipped.
func (p *SystemProvider) Disks() ([]DiskStat, error) {
	partitions, err := disk.Partitions(false)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProvider, "Failed to enumerate disks")
	}

	stats := make([]DiskStat, 0, len(partitions))
	for _, part := range partitions {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil {
			p.log.Debug("skipping disk %s: %v", part.Mountpoint, err)
			continue
		}
		stats = append(stats, DiskStat{
			Device:    part.Device,
			Available: usage.Free,
			Total:     usage.Total,
		})
	}
	return stats, nil
}

// Interfaces returns cumulative packet counters per interface.
func (p *SystemProvider) Interfaces() ([]InterfaceStat, error) {
	counters, err := net.IOCounters(true)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProvider, "Failed to read network counters")
	}

	stats := make([]InterfaceStat, 0, len(counters))
	for _, c := range counters {
		stats = append(stats, InterfaceStat{
			Name:    c.Name,
			Packets: c.PacketsRecv + c.PacketsSent,
		})
	}
	return stats, nil
}

// Processes lists running processes. Processes that disappear mid-scan or
// deny access are skipped rather than failing the whole enumeration.
func (p *SystemProvider) Processes() ([]ProcessStat, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProvider, "Failed to enumerate processes")
	}

	stats := make([]ProcessStat, 0, len(procs))
	for _, proc := range procs {
		stat := ProcessStat{PID: uint32(proc.Pid)}

		name, err := proc.Name()
		if err != nil {
			continue
		}
		stat.Name = name

		if cpuPct, err := proc.CPUPercent(); err == nil {
			stat.CPUPercent = cpuPct
		}
		if memInfo, err := proc.MemoryInfo(); err == nil && memInfo != nil {
			stat.MemoryBytes = memInfo.RSS
		}

		stats = append(stats, stat)
	}
	return stats, nil
}
