package benchmark

import (
	"errors"
	"os"
	"testing"
)

func TestRunFailsWithoutTarget(t *testing.T) {
	orig := lookupTool
	defer func() { lookupTool = orig }()
	lookupTool = func(string) (string, error) { return "", errors.New("not found") }

	_, err := Run(Options{TargetPath: "build/bin/boltdm"})
	if err == nil {
		t.Fatalf("expected an error for a missing target executable")
	}
}

func stubToolchain(t *testing.T) {
	t.Helper()
	origLookup, origRun := lookupTool, runCommand
	t.Cleanup(func() { lookupTool, runCommand = origLookup, origRun })

	lookupTool = func(path string) (string, error) { return path, nil }
	runCommand = func(name string, args ...string) ([]byte, error) {
		for i, arg := range args {
			if arg == "-o" && i+1 < len(args) {
				return nil, os.WriteFile(args[i+1], make([]byte, bytesPerMB), 0o644)
			}
		}
		return nil, nil
	}
}

func TestRunAccumulatesPerTool(t *testing.T) {
	stubToolchain(t)

	var progress int
	sets, err := Run(Options{
		Target:     TransferTarget{URL: "http://example.com/f.zip"},
		Runs:       3,
		TargetPath: "build/bin/boltdm",
		TargetArgs: []string{"{url}", "-o", "{out}", "-q"},
		FetchCommand: []string{
			"curl", "-sS", "-o", "{out}", "{url}",
		},
		Progress: func(tool string, run int, rec RunRecord) { progress++ },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sets) != 2 {
		t.Fatalf("tool count = %d, want target and baseline", len(sets))
	}
	if sets[0].Tool != "boltdm" || sets[1].Tool != "curl" {
		t.Fatalf("tool order = %q, %q", sets[0].Tool, sets[1].Tool)
	}
	for _, set := range sets {
		if len(set.Records) != 3 {
			t.Fatalf("%s records = %d, want 3", set.Tool, len(set.Records))
		}
	}
	if progress != 6 {
		t.Fatalf("progress callbacks = %d, want 6", progress)
	}
}

func TestRunSkipsMissingReference(t *testing.T) {
	stubToolchain(t)

	sets, err := Run(Options{
		Target:        TransferTarget{URL: "http://example.com/f.zip"},
		Runs:          1,
		TargetPath:    "build/bin/boltdm",
		TargetArgs:    []string{"{url}", "-o", "{out}"},
		ReferencePath: "/nonexistent/idman.exe",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, set := range sets {
		if set.Tool == "idman" {
			t.Fatalf("missing reference tool was not skipped")
		}
	}
}

func TestRunInjectsManualMeasurement(t *testing.T) {
	stubToolchain(t)

	sets, err := Run(Options{
		Target:        TransferTarget{URL: "http://example.com/f.zip", Size: 600 * bytesPerMB, SizeKnown: true},
		Runs:          3,
		TargetPath:    "build/bin/boltdm",
		TargetArgs:    []string{"{url}", "-o", "{out}"},
		ReferencePath: "idman.exe",
		Manual:        &ManualMeasurement{Time: 120.0},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var manual *ToolSampleSet
	for i := range sets {
		if sets[i].Manual {
			manual = &sets[i]
		}
	}
	if manual == nil {
		t.Fatalf("no manual sample set produced")
	}
	if manual.Tool != "idman" {
		t.Fatalf("manual tool = %q, want idman", manual.Tool)
	}
	if len(manual.Records) != 1 {
		t.Fatalf("manual records = %d, want exactly one injected record", len(manual.Records))
	}
	if !almostEqual(manual.Records[0].AvgSpeed, 5.0) {
		t.Fatalf("manual avg = %v, want 600MB / 120s = 5.0", manual.Records[0].AvgSpeed)
	}
}
