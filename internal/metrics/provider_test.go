package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitals-sh/vitals/internal/logger"
)

// Smoke tests against the real host. Values vary, so these only assert the
// readings are well-formed.

func TestSystemProviderMemory(t *testing.T) {
	p := NewSystemProvider(logger.Noop())

	stat, err := p.Memory()
	require.NoError(t, err)
	assert.Greater(t, stat.Total, uint64(0))
	assert.LessOrEqual(t, stat.Used, stat.Total)
}

func TestSystemProviderCPU(t *testing.T) {
	p := NewSystemProvider(logger.Noop())

	pct, err := p.CPUPercent()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pct, 0.0)
	assert.LessOrEqual(t, pct, 100.0)
}

func TestSystemProviderDisks(t *testing.T) {
	p := NewSystemProvider(logger.Noop())

	disks, err := p.Disks()
	require.NoError(t, err)
	for _, d := range disks {
		assert.NotEmpty(t, d.Device)
		assert.LessOrEqual(t, d.Available, d.Total)
	}
}

func TestSystemProviderInterfaces(t *testing.T) {
	p := NewSystemProvider(logger.Noop())

	ifaces, err := p.Interfaces()
	require.NoError(t, err)
	for _, iface := range ifaces {
		assert.NotEmpty(t, iface.Name)
	}
}

func TestSystemProviderProcesses(t *testing.T) {
	p := NewSystemProvider(logger.Noop())

	procs, err := p.Processes()
	require.NoError(t, err)
	assert.NotEmpty(t, procs)
	for _, proc := range procs {
		assert.NotZero(t, proc.PID)
	}
}
