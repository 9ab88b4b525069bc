// internal/report/markdown.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/boltdm/dlbench/internal/benchmark"
)

// Markdown prints a fenced README-ready snippet: a comparison table plus an
// image reference to the rendered chart. Manually measured tools get a " *"
// name suffix.
func Markdown(w io.Writer, rep benchmark.Report, chartPath string) {
	fmt.Fprintln(w, "\n### Markdown for README:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "```markdown")
	fmt.Fprintf(w, "## Performance Comparison (%.0fMB File)\n", rep.FileSizeMB)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Tool | Time | Avg Speed | Peak Speed |")
	fmt.Fprintln(w, "|------|------|-----------|------------|")

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
		peak := "-"
		if s.PeakSpeed > 0 {
			peak = fmt.Sprintf("%.1f MB/s", s.PeakSpeed)
		}
		fmt.Fprintf(w, "| %s | %.1fs | %.1f MB/s | %s |\n", name, s.Time, s.AvgSpeed, peak)
	}

	if manual {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "\\* manually measured")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "![Benchmark Results](%s)\n", chartPath)
	fmt.Fprintln(w, "```")
}
