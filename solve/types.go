// Package solve: sentinel errors, construction options and run options.
package solve

import (
	"errors"
	"math"

	"github.com/katalvlaran/bellman/mdp"
)

// Sentinel errors returned by the solver. Tests match them via errors.Is.
var (
	// ErrNilModel indicates a nil *compact.Model was passed to New.
	ErrNilModel = errors.New("solve: compact model is nil")

	// ErrBadDiscount indicates a discount factor outside (0,1].
	ErrBadDiscount = errors.New("solve: discount must be in (0,1]")

	// ErrUnknownState indicates an initial value or policy entry keyed by a
	// state the compact model does not index.
	ErrUnknownState = errors.New("solve: unknown state in initial configuration")

	// ErrUnknownAction indicates an initial policy entry selecting an
	// action its state does not offer.
	ErrUnknownAction = errors.New("solve: unknown action in initial policy")

	// ErrIncompleteValue indicates a caller-supplied initial value map that
	// does not cover every state. Configuration errors are rejected at
	// construction, not discovered mid-iteration.
	ErrIncompleteValue = errors.New("solve: initial value does not cover every state")

	// ErrIncompletePolicy indicates a caller-supplied initial policy that
	// does not cover every state.
	ErrIncompletePolicy = errors.New("solve: initial policy does not cover every state")

	// ErrNoActions indicates a state with no actions was encountered while
	// selecting a best action. Build already rejects such models; seeing
	// this error means the compact model was constructed by other means.
	ErrNoActions = errors.New("solve: state has no actions to select from")

	// ErrSingularSystem indicates the exact-evaluation linear system could
	// not be solved. Fatal: retrying with the same inputs cannot succeed.
	// A discount of exactly 1 combined with certain policies is the usual
	// culprit.
	ErrSingularSystem = errors.New("solve: singular linear system in exact evaluation")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("solve: tolerance must be positive")

	// ErrBadBudget indicates a non-positive iteration budget passed to a
	// run option.
	ErrBadBudget = errors.New("solve: iteration budget must be positive")

	// ErrNilProgress indicates a nil callback passed to a progress option.
	ErrNilProgress = errors.New("solve: progress callback is nil")
)

// StateAction keys one Q-value: the state and the action it was backed
// up for, both in the caller's original values.
type StateAction struct {
	State  mdp.State
	Action mdp.Action
}

// Options configures Solver construction.
//
// InitialValue is the starting V, keyed by original state values; nil
// means V[s] = 0 everywhere. InitialPolicy is the starting π, keyed the
// same way; nil means action index 0 everywhere. A non-nil map must
// cover every state.
type Options struct {
	InitialValue  map[mdp.State]float64
	InitialPolicy map[mdp.State]mdp.Action
}

// Option is a functional option for New.
type Option func(*Options)

// WithInitialValue seeds the value vector from a map keyed by original
// state values. The map must cover every state of the compact model;
// missing entries are a configuration error (ErrIncompleteValue).
func WithInitialValue(v map[mdp.State]float64) Option {
	return func(o *Options) { o.InitialValue = v }
}

// WithInitialPolicy seeds the policy vector from a map keyed by original
// state values. The map must cover every state and every entry must name
// an action its state offers.
func WithInitialPolicy(p map[mdp.State]mdp.Action) Option {
	return func(o *Options) { o.InitialPolicy = p }
}

// DefaultOptions returns the construction defaults: zero initial values
// and the first action of every state as the initial policy.
func DefaultOptions() Options {
	return Options{InitialValue: nil, InitialPolicy: nil}
}

// ProgressFunc observes one value-iteration step: the number of steps
// done so far and the max-norm change Δ of the last step.
type ProgressFunc func(iteration int, delta float64)

// PolicyProgressFunc observes one inner evaluation sweep of policy
// iteration: the outer (policy) iteration, the inner (value) sweep count
// within it, and the sweep's Δ.
type PolicyProgressFunc func(policyIter, valueIter int, delta float64)

// RunOptions configures one call to an iteration driver.
//
// MaxIterations is the outer budget: value-iteration steps, or policy
// improvement rounds. MaxValueIterations is the inner evaluation-sweep
// budget per policy-iteration round. Both default to effectively
// unbounded, so the tolerance alone stops the loops. Progress and
// PolicyProgress are the per-step observers of the two drivers.
type RunOptions struct {
	MaxIterations      int
	MaxValueIterations int
	Progress           ProgressFunc
	PolicyProgress     PolicyProgressFunc
}

// RunOption is a functional option for the iteration drivers.
type RunOption func(*RunOptions)

// WithMaxIterations caps the outer loop of a driver. Exhausting the cap
// is reported as (false, nil), not as an error. Must be positive;
// non-positive values panic (programmer error, caught early).
func WithMaxIterations(n int) RunOption {
	return func(o *RunOptions) {
		if n <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxIterations = n
	}
}

// WithMaxValueIterations caps the inner evaluation loop of
// PolicyIteration. Must be positive; non-positive values panic.
func WithMaxValueIterations(n int) RunOption {
	return func(o *RunOptions) {
		if n <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.MaxValueIterations = n
	}
}

// WithProgress registers a per-step observer for ValueIteration.
// Passing nil panics.
func WithProgress(fn ProgressFunc) RunOption {
	return func(o *RunOptions) {
		if fn == nil {
			panic(ErrNilProgress.Error())
		}
		o.Progress = fn
	}
}

// WithPolicyProgress registers a per-sweep observer for PolicyIteration.
// Passing nil panics.
func WithPolicyProgress(fn PolicyProgressFunc) RunOption {
	return func(o *RunOptions) {
		if fn == nil {
			panic(ErrNilProgress.Error())
		}
		o.PolicyProgress = fn
	}
}

// DefaultRunOptions returns the driver defaults: unbounded budgets and no
// observers.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		MaxIterations:      math.MaxInt,
		MaxValueIterations: math.MaxInt,
	}
}
