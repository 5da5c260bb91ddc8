// Package compact: sentinel errors, option surface and the Successor triple.
package compact

import (
	"errors"

	"github.com/katalvlaran/bellman/mdp"
)

// Sentinel errors returned by Build. Tests match them via errors.Is.
var (
	// ErrNilModel indicates a nil mdp.Model was passed to Build.
	ErrNilModel = errors.New("compact: model is nil")

	// ErrNoStates indicates the model enumerates no states.
	ErrNoStates = errors.New("compact: model has no states")

	// ErrDuplicateState indicates States() enumerated the same state twice.
	ErrDuplicateState = errors.New("compact: duplicate state")

	// ErrNoActions indicates a state with an empty action set. Downstream
	// policy improvement has no action to select there, so Build rejects
	// the model outright.
	ErrNoActions = errors.New("compact: state has no actions")

	// ErrDuplicateAction indicates Actions(s) enumerated the same action twice.
	ErrDuplicateAction = errors.New("compact: duplicate action")

	// ErrNoSuccessors indicates a (state, action) pair whose NextStates
	// enumeration is empty. Terminal states are declared through
	// zero-probability rows, not through missing ones; an empty source
	// row is a malformed model. Rows that merely sparsify to empty
	// remain legal.
	ErrNoSuccessors = errors.New("compact: action has no successor states")

	// ErrUnknownState indicates NextStates returned a state that States()
	// never enumerated. Every reachable state, terminal ones included,
	// must be part of the state set.
	ErrUnknownState = errors.New("compact: successor state not in state set")

	// ErrDuplicateTransition indicates the same next state appeared twice
	// within one (state, action) successor list. Rejected outright rather
	// than last-one-wins: a duplicate is a bug in the source model.
	ErrDuplicateTransition = errors.New("compact: duplicate successor in transition row")

	// ErrProbabilityRange indicates a transition probability outside [0,1].
	ErrProbabilityRange = errors.New("compact: transition probability outside [0,1]")

	// ErrNilLess indicates WithOrdered was given a nil comparison function.
	ErrNilLess = errors.New("compact: ordered index requires a non-nil less function")
)

// Successor is one entry of a compact transition row: taking the row's
// action reaches state index Next with probability Prob and reward Reward.
type Successor struct {
	Next   int
	Prob   float64
	Reward float64
}

// Options configures Build. Dense keeps zero-probability successors
// instead of dropping them. A non-nil Less supplies a total order over
// states and switches the index map to the ordered (binary search)
// strategy.
type Options struct {
	Dense bool
	Less  func(a, b mdp.State) bool
}

// Option is a functional option for Build.
type Option func(*Options)

// WithDense retains successors whose transition probability is exactly
// zero. The default (sparse) mode drops them, which is what the solver
// wants; dense mode preserves the source model's full reachability
// structure for round-trip inspection.
func WithDense() Option {
	return func(o *Options) { o.Dense = true }
}

// WithOrdered switches the state index map to the ordered strategy:
// states are kept sorted under less and looked up by binary search.
// less must be a strict total order over every state the model can
// produce. Passing nil panics (programmer error, caught early).
func WithOrdered(less func(a, b mdp.State) bool) Option {
	return func(o *Options) {
		if less == nil {
			panic(ErrNilLess.Error())
		}
		o.Less = less
	}
}

// DefaultOptions returns the Build defaults: sparse successor rows and
// the unordered (first-seen, equality scan) index strategy.
func DefaultOptions() Options {
	return Options{Dense: false, Less: nil}
}
