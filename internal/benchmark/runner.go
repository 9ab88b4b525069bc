// internal/benchmark/runner.go
package benchmark

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/boltdm/dlbench/internal/logging"
)

// Options configures a benchmark run. Argument templates use {url}, {out},
// {dir} and {file} placeholders; they are conventions owned by the CLI layer,
// not computed here.
type Options struct {
	Target TransferTarget
	Runs   int

	TargetPath string
	TargetArgs []string

	ReferencePath string
	ReferenceArgs []string
	SkipReference bool
	Manual        *ManualMeasurement

	FetchCommand []string

	PollInterval time.Duration
	PollTimeout  time.Duration

	// Progress is invoked with each RunRecord as it is produced, before the
	// next tool or trial starts. May be nil.
	Progress func(tool string, run int, rec RunRecord)
}

var (
	lookupTool = exec.LookPath
	makeTempDir = func() (string, error) { return os.MkdirTemp("", "dlbench-") }
)

// Run executes the configured trials sequentially, one tool at a time, and
// returns the accumulated per-tool sample sets in display order. The only
// fatal condition is a missing target executable; every other failure is a
// logged notice and the benchmark continues. The shared working directory is
// removed on every exit path.
func Run(opts Options) ([]ToolSampleSet, error) {
	if _, err := lookupTool(opts.TargetPath); err != nil {
		return nil, fmt.Errorf("target tool not found at %q: %w", opts.TargetPath, err)
	}

	workDir, err := makeTempDir()
	if err != nil {
		return nil, fmt.Errorf("could not create working directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	var (
		collectors []Collector
		sets       []ToolSampleSet
	)
	addTool := func(c Collector, set ToolSampleSet) {
		collectors = append(collectors, c)
		sets = append(sets, set)
	}

	addTool(&TargetCollector{
		Path:    opts.TargetPath,
		Args:    opts.TargetArgs,
		Target:  opts.Target,
		WorkDir: workDir,
	}, ToolSampleSet{Tool: toolName(opts.TargetPath)})

	switch {
	case opts.Manual != nil:
		// Operator-supplied numbers replace live measurement entirely.
		name := "reference"
		if opts.ReferencePath != "" {
			name = toolName(opts.ReferencePath)
		}
		rec := opts.Manual.Record(opts.Target.SizeMB())
		sets = append(sets, ToolSampleSet{Tool: name, Records: []RunRecord{rec}, Manual: true})
		collectors = append(collectors, nil)
	case opts.SkipReference || opts.ReferencePath == "":
		// Reference tool not requested.
	default:
		if _, err := os.Stat(opts.ReferencePath); err != nil {
			logging.LogEvent("reference tool not found at %s, skipping", opts.ReferencePath)
		} else {
			addTool(&ReferenceCollector{
				Path:         opts.ReferencePath,
				Args:         opts.ReferenceArgs,
				Target:       opts.Target,
				WorkDir:      workDir,
				PollInterval: opts.PollInterval,
				PollTimeout:  opts.PollTimeout,
			}, ToolSampleSet{Tool: toolName(opts.ReferencePath)})
		}
	}

	if len(opts.FetchCommand) > 0 {
		addTool(&BaselineCollector{
			Command: opts.FetchCommand,
			Target:  opts.Target,
			WorkDir: workDir,
		}, ToolSampleSet{Tool: toolName(opts.FetchCommand[0])})
	}

	runs := opts.Runs
	if runs <= 0 {
		runs = 1
	}
	for run := 1; run <= runs; run++ {
		logging.LogEvent("=== Run %d/%d ===", run, runs)
		for i, collector := range collectors {
			if collector == nil {
				continue
			}
			rec := collector.Collect(run)
			sets[i].Records = append(sets[i].Records, rec)
			if opts.Progress != nil {
				opts.Progress(sets[i].Tool, run, rec)
			}
		}
	}

	return sets, nil
}
