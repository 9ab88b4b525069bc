// internal/report/table.go
// Package report renders aggregated benchmark results into a console table, a
// comparison chart, a CSV file, and a markdown snippet. Every renderer reads
// the same Report and tolerates a partial tool set: only tools with a
// positive median time appear.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/boltdm/dlbench/internal/benchmark"
	"github.com/charmbracelet/lipgloss"
)

const tableWidth = 70

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

// Table writes the fixed-width results table. Manually measured tools add a
// footnote below the table.
func Table(w io.Writer, rep benchmark.Report) {
	rule := strings.Repeat("=", tableWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("BENCHMARK RESULTS - %.2f MB File", rep.FileSizeMB)))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-15s %-12s %-15s %-15s\n", "Tool", "Time (s)", "Avg Speed", "Peak Speed")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	manual := false
	for _, s := range rep.Summaries {
		if s.Time <= 0 {
			continue
		}
		name := strings.ToUpper(s.Tool)
		if s.Manual {
			name += " *"
			manual = true
		}
		fmt.Fprintf(w, "%-15s %-12.2f %-15.2f %-15s\n", name, s.Time, s.AvgSpeed, peakCell(s.PeakSpeed))
	}

	fmt.Fprintln(w, rule)
	if manual {
		fmt.Fprintln(w, "* manually measured")
	}
}

func peakCell(peak float64) string {
	if peak <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f MB/s", peak)
}
