package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/boltdm/dlbench/internal/benchmark"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestChartWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "benchmark_results.png")
	if err := Chart(path, sampleReport()); err != nil {
		t.Fatalf("Chart: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading chart: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("output is not a PNG file")
	}
}

func TestChartFailsWithoutTools(t *testing.T) {
	rep := benchmark.Report{FileSizeMB: 500.0}
	if err := Chart(filepath.Join(t.TempDir(), "chart.png"), rep); err == nil {
		t.Fatalf("expected an error when no tool succeeded")
	}
}
