// Package stats summarises generations and charts how a run evolves.
package stats

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"gol3d/pkg/core"
)

// ErrNoSamples is returned when a chart is requested before anything was recorded.
var ErrNoSamples = errors.New("no samples recorded")

// Sample describes one generation.
type Sample struct {
	Generation uint64
	Population int
	// Density is the live fraction of the cube.
	Density   float64
	MeanAge   float64
	StdDevAge float64
	MaxAge    float64
}

// Summarize computes population and age statistics for a snapshot. Age
// statistics only consider live cells.
func Summarize(s core.Snapshot) Sample {
	ages := make([]float64, 0, len(s.Ages)/4)
	for _, a := range s.Ages {
		if a > 0 {
			ages = append(ages, float64(a))
		}
	}
	out := Sample{Generation: s.Generation, Population: len(ages)}
	if len(s.Ages) > 0 {
		out.Density = float64(len(ages)) / float64(len(s.Ages))
	}
	switch len(ages) {
	case 0:
	case 1:
		out.MeanAge = ages[0]
		out.MaxAge = ages[0]
	default:
		out.MeanAge, out.StdDevAge = stat.MeanStdDev(ages, nil)
		out.MaxAge = floats.Max(ages)
	}
	return out
}

// String renders a one-line summary for logs.
func (s Sample) String() string {
	return fmt.Sprintf("gen=%d pop=%d density=%.4f age(mean=%.2f sd=%.2f max=%.0f)",
		s.Generation, s.Population, s.Density, s.MeanAge, s.StdDevAge, s.MaxAge)
}

// Recorder accumulates samples over a run.
type Recorder struct {
	mu      sync.Mutex
	samples []Sample
}

// Record summarises s, stores the sample and returns it.
func (r *Recorder) Record(s core.Snapshot) Sample {
	sample := Summarize(s)
	r.mu.Lock()
	r.samples = append(r.samples, sample)
	r.mu.Unlock()
	return sample
}

// Samples returns a copy of the recorded samples.
func (r *Recorder) Samples() []Sample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sample(nil), r.samples...)
}

// WritePlot charts population and mean age per generation. The image format
// follows the file extension (png, svg, pdf...).
func (r *Recorder) WritePlot(path string) error {
	samples := r.Samples()
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create output dir %s", dir)
		}
	}

	popPts := make(plotter.XYs, len(samples))
	agePts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		popPts[i] = plotter.XY{X: float64(s.Generation), Y: float64(s.Population)}
		agePts[i] = plotter.XY{X: float64(s.Generation), Y: s.MeanAge}
	}

	p := plot.New()
	p.Title.Text = "Population and mean age"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Cells / generations"

	popLine, err := plotter.NewLine(popPts)
	if err != nil {
		return errors.Wrap(err, "population line")
	}
	popLine.Color = color.RGBA{R: 230, G: 60, B: 30, A: 255}
	popLine.Width = vg.Points(1)

	ageLine, err := plotter.NewLine(agePts)
	if err != nil {
		return errors.Wrap(err, "mean age line")
	}
	ageLine.Color = color.RGBA{R: 240, G: 180, B: 0, A: 255}
	ageLine.Width = vg.Points(1)

	p.Add(popLine, ageLine)
	p.Legend.Add("population", popLine)
	p.Legend.Add("mean age", ageLine)

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "save plot %s", path)
	}
	return nil
}
