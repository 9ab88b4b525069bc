// internal/benchmark/collector.go
package benchmark

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/boltdm/dlbench/internal/logging"
)

// Collector measures one trial of one download tool. Implementations never
// fail a trial: a broken launch or a missing output file becomes a
// zero-throughput RunRecord and the benchmark continues.
type Collector interface {
	Name() string
	Collect(run int) RunRecord
}

var runCommand = func(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// speedPattern matches "43.2 MB/s" and "@ 7 MB/s" shapes anywhere in tool output.
var speedPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*MB/s`)

// scrapePeakSpeed returns the largest MB/s figure found in text, or zero when
// no speed was printed.
func scrapePeakSpeed(text string) float64 {
	peak := 0.0
	for _, match := range speedPattern.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		if value > peak {
			peak = value
		}
	}
	return peak
}

// measureAndRemove stats the output file, deletes it, and returns the average
// throughput in MB/s. A missing file or non-positive duration yields zero.
func measureAndRemove(path string, duration float64) float64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	size := info.Size()
	_ = os.Remove(path)
	if duration <= 0 {
		return 0
	}
	return float64(size) / bytesPerMB / duration
}

// expandArgs substitutes {placeholder} tokens in an argument template.
func expandArgs(template []string, values map[string]string) []string {
	args := make([]string, len(template))
	for i, arg := range template {
		for key, value := range values {
			arg = strings.ReplaceAll(arg, "{"+key+"}", value)
		}
		args[i] = arg
	}
	return args
}

// toolName derives a display name from an executable path.
func toolName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TargetCollector benchmarks the download manager under test as an opaque
// subprocess: wall clock from launch to exit, average speed from the final
// file size, peak speed scraped from the captured output.
type TargetCollector struct {
	Path    string
	Args    []string
	Target  TransferTarget
	WorkDir string
}

func (c *TargetCollector) Name() string { return toolName(c.Path) }

func (c *TargetCollector) Collect(run int) RunRecord {
	outPath := filepath.Join(c.WorkDir, fmt.Sprintf("%s_%d.bin", c.Name(), run))
	args := expandArgs(c.Args, map[string]string{"url": c.Target.URL, "out": outPath})

	logging.DebugEvent("%s run %d: exec %s %v", c.Name(), run, c.Path, args)
	start := time.Now()
	output, err := runCommand(c.Path, args...)
	duration := time.Since(start).Seconds()
	if err != nil {
		logging.LogEvent("%s run %d exited with error: %v", c.Name(), run, err)
	}
	logging.DebugEvent("%s run %d output:\n%s", c.Name(), run, output)

	rec := RunRecord{Duration: duration}
	rec.AvgSpeed = measureAndRemove(outPath, duration)

	// Scraped text is peak-only; the average always comes from the file size
	// so imprecise log sampling cannot skew both columns.
	rec.PeakSpeed = scrapePeakSpeed(string(output))
	if rec.PeakSpeed < rec.AvgSpeed {
		rec.PeakSpeed = rec.AvgSpeed
	}
	return rec
}

// ReferenceCollector benchmarks a third-party downloader that detaches after
// launch: the subprocess is started in silent mode and completion is detected
// by polling the output file until it reaches the expected size or stops
// growing.
type ReferenceCollector struct {
	Path         string
	Args         []string
	Target       TransferTarget
	WorkDir      string
	PollInterval time.Duration
	PollTimeout  time.Duration
}

func (c *ReferenceCollector) Name() string { return toolName(c.Path) }

func (c *ReferenceCollector) Collect(run int) RunRecord {
	// The reference tool is told the real remote filename so it saves exactly
	// where the poll loop watches; the run prefix keeps trials distinct.
	filename := fmt.Sprintf("%d_%s", run, c.Target.Filename)
	outPath := filepath.Join(c.WorkDir, filename)
	_ = os.Remove(outPath)

	args := expandArgs(c.Args, map[string]string{
		"url":  c.Target.URL,
		"dir":  c.WorkDir,
		"file": filename,
	})

	logging.DebugEvent("%s run %d: exec %s %v", c.Name(), run, c.Path, args)
	start := time.Now()
	if _, err := runCommand(c.Path, args...); err != nil {
		logging.LogEvent("%s run %d exited with error: %v", c.Name(), run, err)
	}
	c.waitForFile(outPath)
	duration := time.Since(start).Seconds()

	return RunRecord{
		Duration: duration,
		AvgSpeed: measureAndRemove(outPath, duration),
	}
}

// waitForFile polls until the output file reaches the expected size, its size
// is unchanged across two consecutive non-empty polls, or the ceiling passes.
// A timeout is not an error: the caller measures whatever exists at the ceiling.
func (c *ReferenceCollector) waitForFile(path string) {
	interval := c.PollInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	timeout := c.PollTimeout
	if timeout <= 0 {
		timeout = 300 * time.Second
	}

	deadline := time.Now().Add(timeout)
	var prev int64 = -1
	for time.Now().Before(deadline) {
		if info, err := os.Stat(path); err == nil {
			size := info.Size()
			if c.Target.SizeKnown && size >= c.Target.Size {
				return
			}
			if size > 0 && size == prev {
				return
			}
			prev = size
		}
		time.Sleep(interval)
	}
	logging.LogEvent("%s output never stabilized within %s", c.Name(), timeout)
}

// BaselineCollector benchmarks a plain HTTP fetch command. No peak metric is
// observable for this variant.
type BaselineCollector struct {
	Command []string
	Target  TransferTarget
	WorkDir string
}

func (c *BaselineCollector) Name() string { return toolName(c.Command[0]) }

func (c *BaselineCollector) Collect(run int) RunRecord {
	outPath := filepath.Join(c.WorkDir, fmt.Sprintf("%s_%d.bin", c.Name(), run))
	args := expandArgs(c.Command[1:], map[string]string{"url": c.Target.URL, "out": outPath})

	logging.DebugEvent("%s run %d: exec %s %v", c.Name(), run, c.Command[0], args)
	start := time.Now()
	if _, err := runCommand(c.Command[0], args...); err != nil {
		logging.LogEvent("%s run %d exited with error: %v", c.Name(), run, err)
	}
	duration := time.Since(start).Seconds()

	return RunRecord{
		Duration: duration,
		AvgSpeed: measureAndRemove(outPath, duration),
	}
}
