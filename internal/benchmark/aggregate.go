// internal/benchmark/aggregate.go
package benchmark

import "sort"

// Aggregate reduces each tool's raw samples into median summary statistics.
// Tools with no records, or whose every run failed (all-zero average speed),
// are omitted rather than emitted as zero-filled rows.
func Aggregate(sets []ToolSampleSet, fileSizeMB float64) Report {
	report := Report{FileSizeMB: fileSizeMB}
	for _, set := range sets {
		summary, ok := summarize(set)
		if !ok {
			continue
		}
		report.Summaries = append(report.Summaries, summary)
	}
	return report
}

func summarize(set ToolSampleSet) (ToolSummary, bool) {
	if len(set.Records) == 0 {
		return ToolSummary{}, false
	}

	durations := make([]float64, 0, len(set.Records))
	avgs := make([]float64, 0, len(set.Records))
	peaks := make([]float64, 0, len(set.Records))
	for _, rec := range set.Records {
		durations = append(durations, rec.Duration)
		avgs = append(avgs, rec.AvgSpeed)
		peaks = append(peaks, rec.PeakSpeed)
	}

	bestAvg := maxValue(avgs)
	if bestAvg == 0 {
		// Every run failed; nothing to report for this tool.
		return ToolSummary{}, false
	}

	summary := ToolSummary{
		Tool:      set.Tool,
		Time:      median(durations),
		AvgSpeed:  median(avgs),
		PeakSpeed: median(peaks),
		Manual:    set.Manual,
	}
	if summary.PeakSpeed == 0 {
		// No directly observable peak signal; the best single-run average is
		// still a useful estimate.
		summary.PeakSpeed = bestAvg
	}
	return summary, true
}

// median resists single-run outliers from network jitter or transient system
// load; an even sample count averages the two middle values.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func maxValue(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
