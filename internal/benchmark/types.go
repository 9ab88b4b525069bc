// internal/benchmark/types.go
// Package benchmark drives repeated download trials of a target tool and two
// reference tools, reduces the raw samples, and produces the report consumed
// by the renderers.
package benchmark

import (
	"net/url"
	"path"
	"strings"
)

const (
	bytesPerMB = 1024 * 1024
	// fallbackSizeMB stands in for the transfer size when the probe could not
	// resolve one; it matches the default test file.
	fallbackSizeMB = 500.0
)

// TransferTarget is the remote resource every tool downloads. Created once
// per benchmark invocation and never mutated.
type TransferTarget struct {
	URL       string
	Size      int64
	SizeKnown bool
	Filename  string
}

// NewTransferTarget builds a TransferTarget, deriving the local filename from
// the last URL path segment.
func NewTransferTarget(rawURL string, size int64, sizeKnown bool) TransferTarget {
	return TransferTarget{
		URL:       rawURL,
		Size:      size,
		SizeKnown: sizeKnown,
		Filename:  filenameFromURL(rawURL),
	}
}

// SizeMB returns the expected transfer size in MB, substituting a fixed
// fallback when the probe failed.
func (t TransferTarget) SizeMB() float64 {
	if !t.SizeKnown {
		return fallbackSizeMB
	}
	return float64(t.Size) / bytesPerMB
}

func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err == nil {
		if name := path.Base(parsed.Path); name != "" && name != "." && name != "/" {
			return name
		}
	}
	if idx := strings.LastIndex(rawURL, "/"); idx >= 0 && idx < len(rawURL)-1 {
		return rawURL[idx+1:]
	}
	return "download"
}

// RunRecord is one measurement of one tool for one trial. Durations are in
// seconds and speeds in MB/s. PeakSpeed of zero means no peak was observable
// for that run.
type RunRecord struct {
	Duration  float64
	AvgSpeed  float64
	PeakSpeed float64
}

// ToolSampleSet accumulates RunRecords for a single tool; insertion order is
// trial order. Manual marks sets supplied by the operator instead of live runs.
type ToolSampleSet struct {
	Tool    string
	Records []RunRecord
	Manual  bool
}

// ToolSummary is the median reduction of a ToolSampleSet.
type ToolSummary struct {
	Tool      string
	Time      float64
	AvgSpeed  float64
	PeakSpeed float64
	Manual    bool
}

// Report is the terminal artifact consumed by all renderers. Summaries keep
// the tool order used during the run.
type Report struct {
	Summaries  []ToolSummary
	FileSizeMB float64
}

// ManualMeasurement holds operator-supplied numbers for a reference tool that
// cannot be scripted. AvgSpeed and PeakSpeed are optional.
type ManualMeasurement struct {
	Time      float64
	AvgSpeed  *float64
	PeakSpeed *float64
}

// Record converts the manual numbers into a single RunRecord, deriving the
// average speed from the transfer size when it was not supplied.
func (m ManualMeasurement) Record(fileSizeMB float64) RunRecord {
	rec := RunRecord{Duration: m.Time}
	if m.AvgSpeed != nil {
		rec.AvgSpeed = *m.AvgSpeed
	} else if m.Time > 0 {
		rec.AvgSpeed = fileSizeMB / m.Time
	}
	if m.PeakSpeed != nil {
		rec.PeakSpeed = *m.PeakSpeed
	}
	return rec
}
