package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Sentinel errors returned by the renderers.
var (
	// ErrNilWriter indicates a nil io.Writer.
	ErrNilWriter = errors.New("plot: writer is nil")

	// ErrNoSeries indicates a render call with nothing to draw.
	ErrNoSeries = errors.New("plot: no series to render")

	// ErrLengthMismatch indicates labels and values of different lengths.
	ErrLengthMismatch = errors.New("plot: labels and values differ in length")
)

// ConvergenceTrace accumulates (iteration, Δ) pairs from an iteration
// driver. Its Observe method matches solve.ProgressFunc, so a trace can
// be registered directly:
//
//	_, _ = sv.ValueIteration(tol, solve.WithProgress(trace.Observe))
type ConvergenceTrace struct {
	Name       string
	Iterations []int
	Deltas     []float64
}

// Observe appends one driver step to the trace.
func (t *ConvergenceTrace) Observe(iteration int, delta float64) {
	t.Iterations = append(t.Iterations, iteration)
	t.Deltas = append(t.Deltas, delta)
}

// Len returns the number of recorded steps.
func (t *ConvergenceTrace) Len() int { return len(t.Deltas) }

// RenderConvergence draws one line per trace, Δ against iteration count,
// and writes the chart as standalone HTML to w.
func RenderConvergence(w io.Writer, title string, traces ...ConvergenceTrace) error {
	if w == nil {
		return ErrNilWriter
	}
	if len(traces) == 0 {
		return ErrNoSeries
	}

	// X axis spans the longest trace.
	maxLen := 0
	for _, tr := range traces {
		if tr.Len() > maxLen {
			maxLen = tr.Len()
		}
	}
	if maxLen == 0 {
		return ErrNoSeries
	}

	steps := make([]string, maxLen)
	for i := range steps {
		steps[i] = fmt.Sprintf("%d", i+1)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	line.SetXAxis(steps)
	for _, tr := range traces {
		items := make([]opts.LineData, tr.Len())
		for i, d := range tr.Deltas {
			items[i] = opts.LineData{Value: d}
		}
		line.AddSeries(tr.Name, items)
	}

	return line.Render(w)
}

// RenderValues draws the value function as a bar chart: one bar per
// state label. labels and values must align index for index.
func RenderValues(w io.Writer, title string, labels []string, values []float64) error {
	if w == nil {
		return ErrNilWriter
	}
	if len(values) == 0 {
		return ErrNoSeries
	}
	if len(labels) != len(values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLengthMismatch, len(labels), len(values))
	}

	items := make([]opts.BarData, len(values))
	for i, v := range values {
		items[i] = opts.BarData{Value: v}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	bar.SetXAxis(labels)
	bar.AddSeries("value", items)

	return bar.Render(w)
}
