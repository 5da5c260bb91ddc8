// Package plot_test checks the renderers produce HTML containing the
// requested series and reject degenerate inputs.
package plot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/compact"
	"github.com/katalvlaran/bellman/plot"
	"github.com/katalvlaran/bellman/solve"
	"github.com/katalvlaran/bellman/worlds"
)

func TestRenderConvergence_NilWriter(t *testing.T) {
	err := plot.RenderConvergence(nil, "t", plot.ConvergenceTrace{Name: "x", Deltas: []float64{1}})
	require.ErrorIs(t, err, plot.ErrNilWriter)
}

func TestRenderConvergence_NoSeries(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, plot.RenderConvergence(&buf, "t"), plot.ErrNoSeries)

	// A trace with no recorded steps is as empty as no trace at all.
	require.ErrorIs(t, plot.RenderConvergence(&buf, "t", plot.ConvergenceTrace{Name: "x"}), plot.ErrNoSeries)
}

func TestRenderConvergence_FromSolverProgress(t *testing.T) {
	cm, err := compact.Build(worlds.RecyclingRobot())
	require.NoError(t, err)
	sv, err := solve.New(cm, 0.95)
	require.NoError(t, err)

	trace := plot.ConvergenceTrace{Name: "value iteration"}
	converged, err := sv.ValueIteration(1e-6, solve.WithProgress(trace.Observe))
	require.NoError(t, err)
	require.True(t, converged)
	require.Positive(t, trace.Len())

	var buf bytes.Buffer
	require.NoError(t, plot.RenderConvergence(&buf, "Recycling robot", trace))
	require.Contains(t, buf.String(), "value iteration")
	require.Contains(t, buf.String(), "Recycling robot")
}

func TestRenderValues_LengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := plot.RenderValues(&buf, "t", []string{"a"}, []float64{1, 2})
	require.ErrorIs(t, err, plot.ErrLengthMismatch)
}

func TestRenderValues_WritesChart(t *testing.T) {
	var buf bytes.Buffer
	err := plot.RenderValues(&buf, "Values", []string{"high", "low"}, []float64{91.3, 86.8})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Values")
	require.Contains(t, buf.String(), "high")
}
