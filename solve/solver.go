package solve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bellman/compact"
	"github.com/katalvlaran/bellman/mdp"
)

// rowNeverBuilt tags a linear-system row that has not been derived yet.
const rowNeverBuilt = -1

// improveEps is the margin a challenger action must beat the incumbent
// by before ImprovePolicy switches. Exactly tied actions can come out of
// an evaluation a few ulps apart (the linear solve included); switching
// on that noise would flip the policy between equal actions forever.
const improveEps = 1e-12

// Solver carries the mutable state of a dynamic-programming solve: the
// value vector, the policy vector, and the lazily built linear system for
// exact evaluation. Construct with New; all methods are single-threaded.
type Solver struct {
	cm    *compact.Model
	gamma float64

	v      []float64 // V[si], one estimate per state index
	policy []int     // π[si], one action index per state index

	// Exact-evaluation system, allocated on first use. builtWith[si] is
	// the action index row si was last derived from (rowNeverBuilt before
	// the first derivation); a row is rebuilt only when the tag disagrees
	// with the current policy.
	a         *mat.Dense
	b         *mat.VecDense
	builtWith []int
}

// New constructs a Solver over a compact model.
//
// Preconditions and validation (in order):
//  1. cm must be non-nil (ErrNilModel).
//  2. discount must lie in (0,1] (ErrBadDiscount).
//  3. A supplied initial value map must key only known states
//     (ErrUnknownState) and cover all of them (ErrIncompleteValue).
//  4. A supplied initial policy map must key only known states, name only
//     offered actions (ErrUnknownAction), and cover every state
//     (ErrIncompletePolicy).
//
// Absent options, V starts at 0 and π at action index 0 for every state;
// both are always valid because Build guarantees a non-empty action set
// per state.
func New(cm *compact.Model, discount float64, opts ...Option) (*Solver, error) {
	// 1) Assemble Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate model and discount.
	if cm == nil {
		return nil, ErrNilModel
	}
	if discount <= 0 || discount > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadDiscount, discount)
	}

	n := cm.NumStates()
	sv := &Solver{
		cm:        cm,
		gamma:     discount,
		v:         make([]float64, n),
		policy:    make([]int, n),
		builtWith: make([]int, n),
	}
	for si := range sv.builtWith {
		sv.builtWith[si] = rowNeverBuilt
	}

	// 3) Seed the value vector.
	if cfg.InitialValue != nil {
		if err := sv.seedValue(cfg.InitialValue); err != nil {
			return nil, err
		}
	}

	// 4) Seed the policy vector.
	if cfg.InitialPolicy != nil {
		if err := sv.seedPolicy(cfg.InitialPolicy); err != nil {
			return nil, err
		}
	}

	return sv, nil
}

// seedValue copies a caller-supplied initial value map into V, enforcing
// full coverage of the state set.
func (sv *Solver) seedValue(initial map[mdp.State]float64) error {
	covered := make([]bool, sv.cm.NumStates())
	for s, val := range initial {
		si, ok := sv.cm.StateIndex(s)
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownState, s)
		}
		sv.v[si] = val
		covered[si] = true
	}

	for si, ok := range covered {
		if !ok {
			return fmt.Errorf("%w: missing %v", ErrIncompleteValue, sv.cm.State(si))
		}
	}

	return nil
}

// seedPolicy copies a caller-supplied initial policy map into π, enforcing
// full coverage and per-state action validity.
func (sv *Solver) seedPolicy(initial map[mdp.State]mdp.Action) error {
	covered := make([]bool, sv.cm.NumStates())
	for s, a := range initial {
		si, ok := sv.cm.StateIndex(s)
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownState, s)
		}
		ai, ok := sv.cm.ActionIndex(si, a)
		if !ok {
			return fmt.Errorf("%w: %v in state %v", ErrUnknownAction, a, s)
		}
		sv.policy[si] = ai
		covered[si] = true
	}

	for si, ok := range covered {
		if !ok {
			return fmt.Errorf("%w: missing %v", ErrIncompletePolicy, sv.cm.State(si))
		}
	}

	return nil
}

// Discount returns the discount factor γ.
func (sv *Solver) Discount() float64 { return sv.gamma }

// Model returns the compact model the solver iterates over.
func (sv *Solver) Model() *compact.Model { return sv.cm }

// Backup computes the one-step Bellman backup of (state si, action ai)
// under the current value vector:
//
//	Σ over successors (t, p, r):  p · (r + γ·V[t])
//
// A pure read of V; the sum over an empty successor row is 0, which makes
// terminal states fix at their initial value.
func (sv *Solver) Backup(si, ai int) float64 {
	var q float64
	for _, sc := range sv.cm.Successors(si, ai) {
		q += sc.Prob * (sc.Reward + sv.gamma*sv.v[sc.Next])
	}

	return q
}

// EvaluatePolicy performs one in-place evaluation sweep under the current
// policy: V[s] ← Backup(s, π[s]) for every state in ascending index
// order. Later states see earlier states' fresh values (Gauss–Seidel).
// Returns Δ = max over states of |old V[s] − new V[s]|.
func (sv *Solver) EvaluatePolicy() float64 {
	var delta float64
	for si := range sv.v {
		updated := sv.Backup(si, sv.policy[si])
		if d := math.Abs(updated - sv.v[si]); d > delta {
			delta = d
		}
		sv.v[si] = updated
	}

	return delta
}

// ImprovePolicy greedifies the policy against the current value vector:
// π[s] ← argmax over actions of Backup(s, a), ties resolved in favor of
// the earliest action in model order. The incumbent action survives
// near-ties: a challenger must beat the incumbent's backup by more than
// improveEps, so evaluation rounding cannot flip the policy between
// actions that are equal in exact arithmetic. Reports whether any
// state's action changed; false means the policy is a fixed point of
// improvement.
func (sv *Solver) ImprovePolicy() (bool, error) {
	changed := false
	for si := range sv.policy {
		bestAI, bestQ, err := sv.bestAction(si)
		if err != nil {
			return false, err
		}
		if bestAI == sv.policy[si] {
			continue
		}
		if bestQ-sv.Backup(si, sv.policy[si]) <= improveEps {
			continue
		}
		sv.policy[si] = bestAI
		changed = true
	}

	return changed, nil
}

// ValueIterationStep performs one Bellman-optimality sweep: for every
// state it selects the best action like ImprovePolicy and, in the same
// pass, assigns V[s] the best backup value — evaluation and improvement
// fused. Returns Δ = max over states of |old V[s] − new V[s]|.
func (sv *Solver) ValueIterationStep() (float64, error) {
	var delta float64
	for si := range sv.v {
		bestAI, bestQ, err := sv.bestAction(si)
		if err != nil {
			return 0, err
		}
		sv.policy[si] = bestAI
		if d := math.Abs(bestQ - sv.v[si]); d > delta {
			delta = d
		}
		sv.v[si] = bestQ
	}

	return delta, nil
}

// bestAction scans the actions of state si and returns the index and
// backup value of the greatest one, first action winning ties.
func (sv *Solver) bestAction(si int) (int, float64, error) {
	numActions := sv.cm.NumActions(si)
	if numActions == 0 {
		return 0, 0, fmt.Errorf("%w: state %v", ErrNoActions, sv.cm.State(si))
	}

	bestAI, bestQ := 0, sv.Backup(si, 0)
	for ai := 1; ai < numActions; ai++ {
		if q := sv.Backup(si, ai); q > bestQ {
			bestAI, bestQ = ai, q
		}
	}

	return bestAI, bestQ, nil
}

// Value snapshots the current value function as a fresh map keyed by the
// caller's original state values. Mutating the result does not touch
// solver state.
func (sv *Solver) Value() map[mdp.State]float64 {
	out := make(map[mdp.State]float64, len(sv.v))
	for si, val := range sv.v {
		out[sv.cm.State(si)] = val
	}

	return out
}

// Policy snapshots the current policy as a fresh map from original state
// values to original action values.
func (sv *Solver) Policy() map[mdp.State]mdp.Action {
	out := make(map[mdp.State]mdp.Action, len(sv.policy))
	for si, ai := range sv.policy {
		out[sv.cm.State(si)] = sv.cm.Action(si, ai)
	}

	return out
}

// StateActionValues computes the Q-value of every (state, action) pair
// under the current value vector — Backup for the full action grid,
// keyed by original values. Useful for diagnostics and for verifying an
// optimal policy's value decomposition externally.
func (sv *Solver) StateActionValues() map[StateAction]float64 {
	out := make(map[StateAction]float64)
	for si := 0; si < sv.cm.NumStates(); si++ {
		s := sv.cm.State(si)
		for ai := 0; ai < sv.cm.NumActions(si); ai++ {
			out[StateAction{State: s, Action: sv.cm.Action(si, ai)}] = sv.Backup(si, ai)
		}
	}

	return out
}
