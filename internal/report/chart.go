package report

import (
	"fmt"
	"strings"
)

// Glyphs assigned to series in order. Wraps around past eight series.
var chartGlyphs = []byte{'*', 'o', '+', 'x', '#', '@', '%', '&'}

// RenderChart draws the given per-agent series as an ASCII line chart.
// Series are plotted in the order of names so glyph assignment is stable;
// the vertical axis is scaled from zero to the largest value seen. Returns
// the chart followed by a glyph legend, ready to print.
func RenderChart(title string, names []string, series map[string][]float64, width, height int) string {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}

	rounds := 0
	maxVal := 0.0
	for _, name := range names {
		values := series[name]
		if len(values) > rounds {
			rounds = len(values)
		}
		for _, v := range values {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	if rounds == 0 {
		b.WriteString("(no rounds recorded)\n")
		return b.String()
	}

	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width))
	}

	for si, name := range names {
		glyph := chartGlyphs[si%len(chartGlyphs)]
		for i, v := range series[name] {
			col := 0
			if rounds > 1 {
				col = i * (width - 1) / (rounds - 1)
			}
			row := height - 1
			if maxVal > 0 {
				row = height - 1 - int(v/maxVal*float64(height-1)+0.5)
			}
			grid[row][col] = glyph
		}
	}

	fmt.Fprintf(&b, "%10.2f ┤%s\n", maxVal, string(grid[0]))
	for i := 1; i < height-1; i++ {
		fmt.Fprintf(&b, "%10s │%s\n", "", string(grid[i]))
	}
	fmt.Fprintf(&b, "%10.2f ┤%s\n", 0.0, string(grid[height-1]))
	fmt.Fprintf(&b, "%10s └%s\n", "", strings.Repeat("─", width))
	fmt.Fprintf(&b, "%10s  round 1 .. %d\n", "", rounds)

	for si, name := range names {
		fmt.Fprintf(&b, "  %c %s\n", chartGlyphs[si%len(chartGlyphs)], name)
	}
	return b.String()
}
