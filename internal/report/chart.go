// internal/report/chart.go
package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/boltdm/dlbench/internal/benchmark"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ChartFunc renders the comparison chart to a PNG file. Chart rendering is an
// optional capability: callers treat a nil ChartFunc, or a returned error, as
// "skip the chart" and still produce the other report formats.
type ChartFunc func(path string, rep benchmark.Report) error

var barColor = color.RGBA{R: 33, G: 150, B: 243, A: 255}

// Chart writes three side-by-side bar groups (average speed, download time,
// peak speed) across the rendered tools, each bar annotated with its value.
func Chart(path string, rep benchmark.Report) error {
	var (
		names []string
		times []float64
		avgs  []float64
		peaks []float64
	)
	manual := false
	for _, s := range rep.Summaries {
		if s.Time <= 0 {
			continue
		}
		name := s.Tool
		if s.Manual {
			name += " *"
			manual = true
		}
		names = append(names, name)
		times = append(times, s.Time)
		avgs = append(avgs, s.AvgSpeed)
		peak := s.PeakSpeed
		if peak <= 0 {
			peak = s.AvgSpeed
		}
		peaks = append(peaks, peak)
	}
	if len(names) == 0 {
		return fmt.Errorf("no successful tools to chart")
	}

	avgTitle := "Average Speed"
	if manual {
		avgTitle += " (* manual measurement)"
	}

	avgPlot, err := barPlot(avgTitle, "Speed (MB/s)", names, avgs, "%.1f")
	if err != nil {
		return err
	}
	timePlot, err := barPlot(fmt.Sprintf("Download Time - %.0fMB File", rep.FileSizeMB), "Time (seconds)", names, times, "%.1fs")
	if err != nil {
		return err
	}
	peakPlot, err := barPlot("Peak Speed", "Speed (MB/s)", names, peaks, "%.1f")
	if err != nil {
		return err
	}

	img := vgimg.New(15*vg.Inch, 5*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1, Cols: 3,
		PadX: vg.Millimeter * 6, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 4, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	plots := [][]*plot.Plot{{avgPlot, timePlot, peakPlot}}
	canvases := plot.Align(plots, tiles, dc)
	for i, p := range plots[0] {
		p.Draw(canvases[0][i])
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating chart file: %w", err)
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		return fmt.Errorf("error writing chart: %w", err)
	}
	return nil
}

func barPlot(title, yLabel string, names []string, values []float64, format string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)

	// Headroom above the tallest bar so the annotations are not clipped.
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	p.Y.Max = max * 1.15

	pts := make(plotter.XYs, len(values))
	texts := make([]string, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
		texts[i] = fmt.Sprintf(format, v)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
	}
	p.Add(labels)

	return p, nil
}
