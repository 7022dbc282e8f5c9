package dashboard

import (
	"sort"

	"github.com/vitals-sh/vitals/internal/metrics"
)

// ProcessRow is one row of the process panel. Rows are rebuilt in full on
// every process refresh; the pid carries no identity across refreshes.
type ProcessRow struct {
	PID           uint32
	Command       string
	CPUPercent    float64
	MemoryPercent float64
}

// ProcessTable derives a sorted, selectable view over the provider's
// current process list.
type ProcessTable struct {
	sorted []ProcessRow
	cursor int
}

// NewProcessTable creates an empty table with no selection.
func NewProcessTable() *ProcessTable {
	return &ProcessTable{cursor: -1}
}

// Refresh rebuilds all rows from raw provider readings and re-sorts them by
// CPU descending. The sort is stable so processes with identical CPU keep
// their provider order and do not jump rows between refreshes. The cursor is
// re-clamped when the row count shrinks, and moves to the first row when
// rows appear for the first time.
func (t *ProcessTable) Refresh(raw []metrics.ProcessStat, totalMemory uint64) {
	rows := make([]ProcessRow, 0, len(raw))
	for _, p := range raw {
		var memPct float64
		if totalMemory > 0 {
			memPct = float64(p.MemoryBytes) / float64(totalMemory) * 100
		}
		rows = append(rows, ProcessRow{
			PID:           p.PID,
			Command:       p.Name,
			CPUPercent:    p.CPUPercent,
			MemoryPercent: memPct,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CPUPercent > rows[j].CPUPercent
	})
	t.sorted = rows
	t.clampCursor()
}

// SortedView returns a copy of the rows ordered by CPU descending.
func (t *ProcessTable) SortedView() []ProcessRow {
	if len(t.sorted) == 0 {
		return nil
	}
	out := make([]ProcessRow, len(t.sorted))
	copy(out, t.sorted)
	return out
}

// Len returns the current row count.
func (t *ProcessTable) Len() int {
	return len(t.sorted)
}

// Selected returns the cursor index into SortedView, or -1 when the table
// is empty.
func (t *ProcessTable) Selected() int {
	return t.cursor
}

// MoveSelection shifts the cursor by delta, clamping to [0, len-1]. It never
// wraps, and is a no-op on an empty table.
func (t *ProcessTable) MoveSelection(delta int) {
	if len(t.sorted) == 0 {
		return
	}
	t.cursor += delta
	t.clampCursor()
}

func (t *ProcessTable) clampCursor() {
	if len(t.sorted) == 0 {
		t.cursor = -1
		return
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	if t.cursor > len(t.sorted)-1 {
		t.cursor = len(t.sorted) - 1
	}
}
