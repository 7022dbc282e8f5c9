package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille rendering for the CPU and memory line charts.
//
// Each braille character is a 2x4 dot matrix, so a chart of W characters by
// H rows plots up to 2W points at 4H vertical levels. Unicode braille
// starts at U+2800; dot positions map to bits as:
//
//	col 0: bits 0,1,2,6 (rows top to bottom)
//	col 1: bits 3,4,5,7

const brailleBase = '\u2800'

// brailleBits[row][col] is the bit for a dot at that position.
var brailleBits = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// sparkBlocks are the eight block characters for single-row sparklines.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// resample shrinks data to at most points values by picking evenly spaced
// samples. Data already within the budget is returned as-is.
func resample(data []float64, points int) []float64 {
	if points <= 0 || len(data) <= points {
		return data
	}
	out := make([]float64, points)
	step := float64(len(data)) / float64(points)
	for i := range out {
		idx := int(float64(i) * step)
		if idx >= len(data) {
			idx = len(data) - 1
		}
		out[i] = data[idx]
	}
	return out
}

// renderBrailleChart plots data as a braille line chart of width x height
// characters with a fixed [0, maxVal] vertical range. Data wider than the
// chart is resampled; narrower data fills from the left, matching a chart
// whose x axis grows with history length.
func renderBrailleChart(data []float64, width, height int, maxVal float64, color lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	points := resample(data, width*2)
	totalDots := height * 4

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	for i, val := range points {
		frac := val / maxVal
		if frac < 0 {
			frac = 0
		}
		if frac > 1 {
			frac = 1
		}
		dots := int(frac * float64(totalDots))

		charCol := i / 2
		if charCol >= width {
			break
		}
		subCol := i % 2

		for dot := 0; dot < dots; dot++ {
			row := height - 1 - dot/4
			if row < 0 {
				break
			}
			subRow := 3 - dot%4
			grid[row][charCol] |= rune(1 << brailleBits[subRow][subCol])
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// renderSparkline draws a single-row block sparkline auto-scaled to the
// data's own min/max, which suits raw counters like cumulative packets.
// Only the trailing width values are shown.
func renderSparkline(data []float64, width int, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var b strings.Builder
	for _, v := range data {
		idx := 0
		if maxVal > minVal {
			idx = int((v - minVal) / (maxVal - minVal) * float64(len(sparkBlocks)-1))
		}
		if idx < 0 {
			idx = 0
		}
		if idx > len(sparkBlocks)-1 {
			idx = len(sparkBlocks) - 1
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

// renderGaugeBar draws a horizontal bar of the given width filled to pct,
// colored by severity band.
func renderGaugeBar(pct uint8, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(float64(pct) / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat(" ", width-filled)
	return lipgloss.NewStyle().Foreground(BandColor(float64(pct))).Render(bar)
}
