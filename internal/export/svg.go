package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
)

// StateColors are the bar fills used by the browser front-end.
var StateColors = map[trace.State]string{
	trace.Default:   "#60a5fa",
	trace.Comparing: "#ef4444",
	trace.Sorted:    "#22c55e",
	trace.Pivot:     "#eab308",
	trace.Active:    "#3b82f6",
}

// FrameToSVG draws one frame as a bar chart. Bar heights are scaled to the
// largest absolute value in the frame.
func FrameToSVG(f trace.Frame, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	n := len(f.Array)
	if n > 0 {
		peak := 1
		for _, e := range f.Array {
			peak = max(peak, abs(e.Value))
		}

		const gap = 2.0
		chart := float64(height) - 24
		barW := (float64(width) - gap*float64(n+1)) / float64(n)
		if barW < 1 {
			barW = 1
		}

		for i, e := range f.Array {
			h := float64(abs(e.Value)) / float64(peak) * chart
			x := gap + float64(i)*(barW+gap)
			y := chart - h
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, barW, h, StateColors[e.State]))
		}
	}

	sb.WriteString(fmt.Sprintf(`<text x="4" y="%d" fill="#cccccc" font-family="monospace" font-size="12">%s</text>
`, height-6, escape(f.String())))
	sb.WriteString("</svg>")
	return sb.String()
}

// CountersToSVG plots comparisons and swaps against frame index.
func CountersToSVG(t trace.Trace, width, height int) string {
	if len(t) < 2 {
		return ""
	}

	peak := max(t.Comparisons(), t.Swaps(), 1)
	span := float64(len(t) - 1)

	path := func(value func(trace.Frame) int) string {
		var sb strings.Builder
		for i, f := range t {
			x := float64(i) / span * float64(width)
			y := float64(height) - float64(value(f))/float64(peak)*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, StateColors[trace.Comparing], path(func(f trace.Frame) int { return f.Comparisons })))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, StateColors[trace.Sorted], path(func(f trace.Frame) int { return f.Swaps })))
	sb.WriteString("</svg>")
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string { return escaper.Replace(s) }
