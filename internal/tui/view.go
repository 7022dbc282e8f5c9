package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vitals-sh/vitals/internal/dashboard"
)

// Fixed layout: header line, CPU chart across the top quarter, then disks
// beside memory, then network beside processes.
func (m Model) renderDashboard(v dashboard.View) string {
	header := headerStyle.Width(m.width).Render("vitals")

	bodyHeight := m.height - 1
	if bodyHeight < 3 {
		return header
	}

	cpuHeight := bodyHeight / 4
	if cpuHeight < 3 {
		cpuHeight = 3
	}
	rest := bodyHeight - cpuHeight
	midHeight := rest / 2
	botHeight := rest - midHeight

	diskWidth := m.width * 30 / 100
	if diskWidth < 10 {
		diskWidth = 10
	}
	memWidth := m.width - diskWidth

	netWidth := m.width / 2
	procWidth := m.width - netWidth

	cpu := m.renderCPUPanel(v, m.width, cpuHeight)
	disks := m.renderDiskPanel(v, diskWidth, midHeight)
	memory := m.renderMemoryPanel(v, memWidth, midHeight)
	network := m.renderNetworkPanel(v, netWidth, botHeight)
	procs := m.renderProcessPanel(v, procWidth, botHeight)

	mid := lipgloss.JoinHorizontal(lipgloss.Top, disks, memory)
	bot := lipgloss.JoinHorizontal(lipgloss.Top, network, procs)

	return lipgloss.JoinVertical(lipgloss.Left, header, cpu, mid, bot)
}

// panel frames content with a rounded border and a title.
func panel(title, content string, width, height int) string {
	inner := panelStyle.
		Width(width - 2).
		Height(height - 2)
	return inner.Render(titleStyle.Render(title) + "\n" + content)
}

func (m Model) renderCPUPanel(v dashboard.View, width, height int) string {
	pct := v.CPUPercentNow()
	label := lipgloss.NewStyle().
		Foreground(BandColor(pct)).
		Render(fmt.Sprintf("%.2f%%", pct))

	chartW := width - 4
	chartH := height - 3
	if chartH < 1 {
		chartH = 1
	}

	values := sampleValues(v.CPU)
	chart := renderBrailleChart(values, chartW, chartH, 100, ColorHealthy)
	return panel("CPU "+label, chart, width, height)
}

func (m Model) renderMemoryPanel(v dashboard.View, width, height int) string {
	pct := v.MemoryPercentNow()
	label := lipgloss.NewStyle().
		Foreground(BandColor(pct)).
		Render(fmt.Sprintf("%.2f%%", pct))

	chartW := width - 4
	chartH := height - 3
	if chartH < 1 {
		chartH = 1
	}

	values := sampleValues(v.Memory)
	chart := renderBrailleChart(values, chartW, chartH, float64(v.MemoryTotal), ColorMemGraph)
	return panel("Memory "+label, chart, width, height)
}

func (m Model) renderDiskPanel(v dashboard.View, width, height int) string {
	nameW := 0
	for _, d := range v.Disks {
		if len(d.Name) > nameW {
			nameW = len(d.Name)
		}
	}

	barW := width - nameW - 10
	if barW < 4 {
		barW = 4
	}

	maxRows := height - 3
	var lines []string
	for i, d := range v.Disks {
		if i >= maxRows {
			break
		}
		line := fmt.Sprintf("%-*s %s %3d%%",
			nameW, d.Name, renderGaugeBar(d.UsedPercent, barW), d.UsedPercent)
		lines = append(lines, rowStyle.Render(line))
	}
	if len(lines) == 0 {
		lines = append(lines, axisStyle.Render("no disks"))
	}
	return panel("Disks", strings.Join(lines, "\n"), width, height)
}

func (m Model) renderNetworkPanel(v dashboard.View, width, height int) string {
	nameW := 0
	for _, iface := range v.Interfaces {
		if len(iface.Name) > nameW {
			nameW = len(iface.Name)
		}
	}

	sparkW := width - nameW - 5
	if sparkW < 4 {
		sparkW = 4
	}

	maxRows := height - 3
	var lines []string
	for i, iface := range v.Interfaces {
		if i >= maxRows {
			break
		}
		name := ifaceNameStyle.Render(fmt.Sprintf("%-*s", nameW, iface.Name))
		lines = append(lines, name+" "+renderSparkline(iface.Values, sparkW, ColorHealthy))
	}
	if len(lines) == 0 {
		lines = append(lines, axisStyle.Render("no interfaces"))
	}
	return panel("Network", strings.Join(lines, "\n"), width, height)
}

func (m Model) renderProcessPanel(v dashboard.View, width, height int) string {
	cmdW := width - 28
	if cmdW < 8 {
		cmdW = 8
	}

	header := tableHeaderStyle.Render(
		fmt.Sprintf("%-8s %-*s %7s %7s", "Pid", cmdW, "Cmd", "CPU%", "Mem%"))

	maxRows := height - 4
	if maxRows < 1 {
		maxRows = 1
	}

	// Keep the selected row visible by scrolling the window around it.
	start := 0
	if v.Selected >= maxRows {
		start = v.Selected - maxRows + 1
	}
	end := start + maxRows
	if end > len(v.Processes) {
		end = len(v.Processes)
	}

	lines := []string{header}
	for i := start; i < end; i++ {
		p := v.Processes[i]
		cmd := p.Command
		if len(cmd) > cmdW {
			cmd = cmd[:cmdW-1] + "…"
		}
		row := fmt.Sprintf("%-8d %-*s %7.2f %7.2f", p.PID, cmdW, cmd, p.CPUPercent, p.MemoryPercent)
		if i == v.Selected {
			lines = append(lines, selectedRowStyle.Render("> "+row))
		} else {
			lines = append(lines, rowStyle.Render("  "+row))
		}
	}
	return panel("Processes", strings.Join(lines, "\n"), width, height)
}

func sampleValues(samples []dashboard.Sample) []float64 {
	if len(samples) == 0 {
		return nil
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}
	return out
}
