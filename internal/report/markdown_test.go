package report

import (
	"strings"
	"testing"
)

func TestMarkdownSnippet(t *testing.T) {
	var buf strings.Builder
	Markdown(&buf, sampleReport(), "docs/benchmark_results.png")
	out := buf.String()

	if !strings.Contains(out, "## Performance Comparison (500MB File)") {
		t.Fatalf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, "| BOLTDM | 11.0s | 45.4 MB/s | 52.0 MB/s |") {
		t.Fatalf("missing table row:\n%s", out)
	}
	if !strings.Contains(out, "| IDMAN * | 120.0s | 5.0 MB/s | - |") {
		t.Fatalf("manual row with dash peak not rendered:\n%s", out)
	}
	if !strings.Contains(out, "\\* manually measured") {
		t.Fatalf("missing escaped footnote:\n%s", out)
	}
	if !strings.Contains(out, "![Benchmark Results](docs/benchmark_results.png)") {
		t.Fatalf("missing chart reference:\n%s", out)
	}
	if !strings.Contains(out, "```markdown") {
		t.Fatalf("snippet not fenced:\n%s", out)
	}
}
