package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterfaceHistoryRecord(t *testing.T) {
	h := NewInterfaceHistory(0)

	require.NoError(t, h.Record(1, "eth0", 100))
	require.NoError(t, h.Record(1, "wlan0", 50))
	require.NoError(t, h.Record(2, "eth0", 180))
	require.NoError(t, h.Record(2, "wlan0", 50))

	snap := h.SnapshotSorted()
	require.Len(t, snap, 2)

	// Lexicographic name order, histories in capture order.
	assert.Equal(t, "eth0", snap[0].Name)
	assert.Equal(t, []float64{100, 180}, snap[0].Values)
	assert.Equal(t, "wlan0", snap[1].Name)
	assert.Equal(t, []float64{50, 50}, snap[1].Values)
}

func TestInterfaceHistoryNewInterfaceMidRun(t *testing.T) {
	h := NewInterfaceHistory(0)

	require.NoError(t, h.Record(1, "eth0", 10))
	require.NoError(t, h.Record(2, "eth0", 20))
	require.NoError(t, h.Record(2, "tun0", 5))

	assert.Equal(t, 2, h.Len())

	snap := h.SnapshotSorted()
	require.Len(t, snap, 2)
	assert.Equal(t, "eth0", snap[0].Name)
	assert.Equal(t, "tun0", snap[1].Name)
	assert.Equal(t, []float64{5}, snap[1].Values)
}

func TestInterfaceHistorySortedOrderIsStable(t *testing.T) {
	h := NewInterfaceHistory(0)

	// Insertion order deliberately scrambled.
	names := []string{"wlan0", "docker0", "eth1", "eth0", "lo"}
	for i, name := range names {
		require.NoError(t, h.Record(uint64(i+1), name, 1))
	}

	snap := h.SnapshotSorted()
	got := make([]string, len(snap))
	for i, s := range snap {
		got[i] = s.Name
	}
	assert.Equal(t, []string{"docker0", "eth0", "eth1", "lo", "wlan0"}, got)
}

func TestInterfaceHistoryPropagatesOrdering(t *testing.T) {
	h := NewInterfaceHistory(0)

	require.NoError(t, h.Record(5, "eth0", 1))
	assert.ErrorIs(t, h.Record(5, "eth0", 2), ErrOutOfOrderSample)
	assert.ErrorIs(t, h.Record(4, "eth0", 2), ErrOutOfOrderSample)

	snap := h.SnapshotSorted()
	require.Len(t, snap, 1)
	assert.Equal(t, []float64{1}, snap[0].Values)
}

func TestInterfaceHistoryEmptySnapshot(t *testing.T) {
	h := NewInterfaceHistory(0)
	assert.Nil(t, h.SnapshotSorted())
}

func TestInterfaceHistoryBounded(t *testing.T) {
	h := NewInterfaceHistory(2)

	for frame := uint64(1); frame <= 4; frame++ {
		require.NoError(t, h.Record(frame, "eth0", float64(frame*10)))
	}

	snap := h.SnapshotSorted()
	require.Len(t, snap, 1)
	assert.Equal(t, []float64{30, 40}, snap[0].Values)
}
