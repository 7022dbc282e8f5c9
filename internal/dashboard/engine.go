package dashboard

import (
	"errors"

	"github.com/vitals-sh/vitals/internal/logger"
	"github.com/vitals-sh/vitals/internal/metrics"
)

// ErrStaleFrame is returned by Tick when the frame counter is not strictly
// greater than the previous tick's. Nothing is mutated in that case.
var ErrStaleFrame = errors.New("non-increasing frame counter")

// Default cadences, in frames.
const (
	// DefaultProcessRefreshFrames throttles process enumeration, the most
	// expensive provider call.
	DefaultProcessRefreshFrames = 30

	// DefaultHistoryLimit bounds each stream's retained samples.
	DefaultHistoryLimit = 600
)

// Options configures the sampling engine.
type Options struct {
	// HistoryLimit is the max samples retained per stream; 0 is unbounded.
	HistoryLimit int

	// ProcessRefreshFrames is the process list cadence: a refresh runs on
	// frames where frame % ProcessRefreshFrames == 0.
	ProcessRefreshFrames int

	// DiskRefreshFrames is the disk snapshot cadence. 0 refreshes disks on
	// the first tick only; a positive value also refreshes on frames where
	// frame % DiskRefreshFrames == 0.
	DiskRefreshFrames int
}

// withDefaults fills in zero-valued cadences.
func (o Options) withDefaults() Options {
	if o.ProcessRefreshFrames <= 0 {
		o.ProcessRefreshFrames = DefaultProcessRefreshFrames
	}
	return o
}

// Engine orchestrates sampling: on each frame tick it decides which streams
// to refresh, pulls from the provider, and appends or replaces state. It is
// the sole writer of every history it owns.
type Engine struct {
	provider metrics.Provider
	log      logger.Logger
	opts     Options

	cpu    *TimeSeries
	memory *TimeSeries
	net    *InterfaceHistory
	disks  *DiskGauge
	procs  *ProcessTable

	memUsed  uint64
	memTotal uint64

	lastFrame uint64
	ticked    bool
}

// NewEngine creates an engine sampling from the given provider.
func NewEngine(provider metrics.Provider, log logger.Logger, opts Options) *Engine {
	if log == nil {
		log = logger.Noop()
	}
	opts = opts.withDefaults()
	return &Engine{
		provider: provider,
		log:      log,
		opts:     opts,
		cpu:      NewTimeSeries(opts.HistoryLimit),
		memory:   NewTimeSeries(opts.HistoryLimit),
		net:      NewInterfaceHistory(opts.HistoryLimit),
		disks:    NewDiskGauge(),
		procs:    NewProcessTable(),
	}
}

// Tick is the sole mutation entry point. It samples every per-frame stream
// and runs the throttled refreshes due at this frame. A frame counter that
// is not strictly greater than the previous one fails with ErrStaleFrame
// and mutates nothing.
//
// Provider failures are non-fatal: the failing stream keeps its previous
// history unchanged for this tick and every other stream still refreshes.
func (e *Engine) Tick(frame uint64) error {
	if e.ticked && frame <= e.lastFrame {
		return ErrStaleFrame
	}
	firstTick := !e.ticked
	e.ticked = true
	e.lastFrame = frame

	e.sampleCPU(frame)
	e.sampleMemory(frame)
	e.sampleNetwork(frame)

	if firstTick || (e.opts.DiskRefreshFrames > 0 && frame%uint64(e.opts.DiskRefreshFrames) == 0) {
		e.refreshDisks()
	}
	if frame%uint64(e.opts.ProcessRefreshFrames) == 0 {
		e.refreshProcesses()
	}
	return nil
}

func (e *Engine) sampleCPU(frame uint64) {
	pct, err := e.provider.CPUPercent()
	if err != nil {
		e.log.Debug("cpu sample skipped at frame %d: %v", frame, err)
		return
	}
	if err := e.cpu.Append(frame, pct); err != nil {
		e.log.Error("dropping cpu sample: %v", err)
	}
}

func (e *Engine) sampleMemory(frame uint64) {
	stat, err := e.provider.Memory()
	if err != nil {
		e.log.Debug("memory sample skipped at frame %d: %v", frame, err)
		return
	}
	e.memUsed = stat.Used
	e.memTotal = stat.Total
	if err := e.memory.Append(frame, float64(stat.Used)); err != nil {
		e.log.Error("dropping memory sample: %v", err)
	}
}

func (e *Engine) sampleNetwork(frame uint64) {
	ifaces, err := e.provider.Interfaces()
	if err != nil {
		e.log.Debug("network sample skipped at frame %d: %v", frame, err)
		return
	}
	for _, iface := range ifaces {
		if err := e.net.Record(frame, iface.Name, float64(iface.Packets)); err != nil {
			e.log.Error("dropping network sample for %s: %v", iface.Name, err)
		}
	}
}

func (e *Engine) refreshDisks() {
	raw, err := e.provider.Disks()
	if err != nil {
		e.log.Debug("disk refresh skipped: %v", err)
		return
	}
	e.disks.Refresh(raw)
}

func (e *Engine) refreshProcesses() {
	raw, err := e.provider.Processes()
	if err != nil {
		e.log.Debug("process refresh skipped: %v", err)
		return
	}
	e.procs.Refresh(raw, e.memTotal)
}

// CPU returns the CPU utilization series.
func (e *Engine) CPU() *TimeSeries { return e.cpu }

// Memory returns the used-memory series.
func (e *Engine) Memory() *TimeSeries { return e.memory }

// Network returns the per-interface history map.
func (e *Engine) Network() *InterfaceHistory { return e.net }

// Disks returns the disk gauge snapshot.
func (e *Engine) Disks() *DiskGauge { return e.disks }

// Processes returns the ranked process table.
func (e *Engine) Processes() *ProcessTable { return e.procs }

// MemoryTotals returns the most recent used and total memory readings.
func (e *Engine) MemoryTotals() (used, total uint64) {
	return e.memUsed, e.memTotal
}
