package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/trace"
)

// eighths are partial block glyphs from 1/8 to 8/8 of a cell.
var eighths = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderBars draws arr as vertical bars height rows tall, one column per
// element (two when barWidth is 2). Heights are scaled to the largest
// absolute value; negative values draw like their magnitude.
func RenderBars(arr trace.Array, height, barWidth int, theme Theme) string {
	if len(arr) == 0 || height <= 0 {
		return ""
	}
	barWidth = max(barWidth, 1)

	peak := 1
	for _, e := range arr {
		peak = max(peak, abs(e.Value))
	}

	// Bar heights in eighths of a row.
	levels := make([]int, len(arr))
	for i, e := range arr {
		levels[i] = abs(e.Value) * height * 8 / peak
		if e.Value != 0 {
			levels[i] = max(levels[i], 1)
		}
	}

	styles := make(map[trace.State]lipgloss.Style, len(theme.Bars))
	for s, c := range theme.Bars {
		styles[s] = lipgloss.NewStyle().Foreground(c)
	}

	rows := make([]string, height)
	for r := 0; r < height; r++ {
		floor := (height - 1 - r) * 8
		var sb strings.Builder
		for i, e := range arr {
			cell := " "
			switch fill := levels[i] - floor; {
			case fill >= 8:
				cell = string(eighths[7])
			case fill > 0:
				cell = string(eighths[fill-1])
			}
			if cell != " " {
				cell = styles[e.State].Render(strings.Repeat(cell, barWidth))
			} else {
				cell = strings.Repeat(cell, barWidth)
			}
			sb.WriteString(cell)
			if barWidth > 1 {
				sb.WriteByte(' ')
			}
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// Legend lists the state colors of theme.
func Legend(theme Theme) string {
	var parts []string
	for _, s := range []trace.State{trace.Default, trace.Comparing, trace.Pivot, trace.Active, trace.Sorted} {
		sw := lipgloss.NewStyle().Foreground(theme.Bars[s]).Render("█")
		parts = append(parts, sw+" "+string(s))
	}
	return strings.Join(parts, "  ")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
