package solve

import "fmt"

// ValueIteration repeats Bellman-optimality sweeps until the max-norm
// change drops below tol (converged, returns true) or the iteration
// budget runs out (returns false — a status, not an error).
//
// Options customization:
//
//   - WithMaxIterations(n): cap the number of sweeps.
//   - WithProgress(fn):     observe (iterationsDone, Δ) after every sweep.
//
// Errors: ErrBadTolerance for tol ≤ 0; model-contract violations surfaced
// by the sweep itself (ErrNoActions).
func (sv *Solver) ValueIteration(tol float64, opts ...RunOption) (bool, error) {
	if tol <= 0 {
		return false, fmt.Errorf("%w: got %v", ErrBadTolerance, tol)
	}

	cfg := DefaultRunOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		delta, err := sv.ValueIterationStep()
		if err != nil {
			return false, err
		}
		if cfg.Progress != nil {
			cfg.Progress(iter, delta)
		}
		if delta < tol {
			return true, nil
		}
	}

	// Budget exhausted without convergence; the caller decides what next.
	return false, nil
}

// PolicyIteration alternates an inner loop of evaluation sweeps with one
// policy improvement per round, until improvement reports a stable policy
// (returns true) or the outer budget runs out (returns false, nil).
//
// The inner loop stops when a sweep's Δ drops below valueTol or after
// WithMaxValueIterations sweeps, whichever comes first.
//
// Options customization:
//
//   - WithMaxIterations(n):       cap the number of improvement rounds.
//   - WithMaxValueIterations(n):  cap evaluation sweeps per round.
//   - WithPolicyProgress(fn):     observe (round, sweepsDone, Δ) per sweep.
//
// Errors: ErrBadTolerance for valueTol ≤ 0; ErrNoActions from improvement.
func (sv *Solver) PolicyIteration(valueTol float64, opts ...RunOption) (bool, error) {
	if valueTol <= 0 {
		return false, fmt.Errorf("%w: got %v", ErrBadTolerance, valueTol)
	}

	cfg := DefaultRunOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	for outer := 1; outer <= cfg.MaxIterations; outer++ {
		// Inner loop: evaluate the current policy to (near) convergence.
		for inner := 1; inner <= cfg.MaxValueIterations; inner++ {
			delta := sv.EvaluatePolicy()
			if cfg.PolicyProgress != nil {
				cfg.PolicyProgress(outer, inner, delta)
			}
			if delta < valueTol {
				break
			}
		}

		// One greedy improvement; a stable policy is the fixed point.
		changed, err := sv.ImprovePolicy()
		if err != nil {
			return false, err
		}
		if !changed {
			return true, nil
		}
	}

	return false, nil
}

// PolicyIterationExact runs policy iteration with exact inner evaluation:
// one linear solve per improvement round, since the solve converges the
// value function for the current policy in a single shot.
//
// Options customization:
//
//   - WithMaxIterations(n): cap the number of improvement rounds.
//
// Errors: ErrSingularSystem from the solve (fatal); ErrNoActions from
// improvement.
func (sv *Solver) PolicyIterationExact(opts ...RunOption) (bool, error) {
	cfg := DefaultRunOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	for outer := 1; outer <= cfg.MaxIterations; outer++ {
		if err := sv.EvaluatePolicyExact(); err != nil {
			return false, err
		}

		changed, err := sv.ImprovePolicy()
		if err != nil {
			return false, err
		}
		if !changed {
			return true, nil
		}
	}

	return false, nil
}
