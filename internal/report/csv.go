// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/boltdm/dlbench/internal/benchmark"
)

// CSV writes one row per rendered tool, creating the output directory when
// absent. Manually measured tools carry a note in the last column.
func CSV(path string, rep benchmark.Report) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"Tool", "Time (s)", "Avg Speed (MB/s)", "Peak Speed (MB/s)", "Notes"}); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, s := range rep.Summaries {
		if s.Time <= 0 {
			continue
		}
		note := ""
		if s.Manual {
			note = "manual measurement"
		}
		row := []string{
			s.Tool,
			fmt.Sprintf("%.2f", s.Time),
			fmt.Sprintf("%.2f", s.AvgSpeed),
			fmt.Sprintf("%.2f", s.PeakSpeed),
			note,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
