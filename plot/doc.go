// Package plot renders solver diagnostics as self-contained HTML charts
// via go-echarts: convergence traces (Δ per iteration) and per-state
// value functions.
//
// ⚙️ Usage:
//
//	var trace plot.ConvergenceTrace
//	trace.Name = "value iteration"
//	_, _ = sv.ValueIteration(1e-9, solve.WithProgress(trace.Observe))
//
//	f, _ := os.Create("convergence.html")
//	defer f.Close()
//	_ = plot.RenderConvergence(f, "Recycling robot", trace)
//
// Charts are written to any io.Writer; the output is a standalone HTML
// page loading echarts from a CDN, the go-echarts default.
package plot
