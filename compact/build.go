package compact

import (
	"fmt"

	"github.com/katalvlaran/bellman/mdp"
)

// Build converts a generic model into its compact indexed form.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilModel).
//  2. m.States() must be non-empty (ErrNoStates) and duplicate-free
//     (ErrDuplicateState).
//  3. Every state must offer at least one action (ErrNoActions), with no
//     duplicates (ErrDuplicateAction).
//  4. Every (state, action) pair must enumerate at least one successor
//     (ErrNoSuccessors); rows may still sparsify to empty.
//  5. Every successor must itself be an enumerated state (ErrUnknownState).
//  6. No (state, action) row may list the same successor twice
//     (ErrDuplicateTransition).
//  7. Every probability must lie in [0,1] (ErrProbabilityRange).
//
// Options customization:
//
//   - WithDense():       keep zero-probability successors.
//   - WithOrdered(less): index states in sort order via binary search.
//
// The returned Model is immutable and self-contained: it holds no
// reference to m, so the caller may discard the generic model afterwards.
func Build(m mdp.Model, opts ...Option) (*Model, error) {
	// 1) Assemble Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the model reference.
	if m == nil {
		return nil, ErrNilModel
	}

	// 3) Enumerate states and validate non-emptiness.
	states := m.States()
	if len(states) == 0 {
		return nil, ErrNoStates
	}

	// 4) First pass: index every state before recording any triple.
	//    Ordered insertion shifts later indices, so successor rows must
	//    not exist yet when the map is still growing.
	idx := newIndexMap(cfg.Less)
	for _, s := range states {
		if _, inserted := idx.insert(s); !inserted {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateState, s)
		}
	}
	n := idx.len()

	// 5) Second pass: record action lists and successor rows against the
	//    now-stable index assignment.
	cm := &Model{
		idx:     idx,
		actions: make([][]mdp.Action, n),
		succ:    make([][][]Successor, n),
		dense:   cfg.Dense,
	}
	for _, s := range states {
		si, _ := idx.lookup(s)
		if err := cm.fillState(m, s, si); err != nil {
			return nil, err
		}
	}

	return cm, nil
}

// fillState records the action list and successor rows of one state.
func (cm *Model) fillState(m mdp.Model, s mdp.State, si int) error {
	acts := m.Actions(s)
	if len(acts) == 0 {
		return fmt.Errorf("%w: %v", ErrNoActions, s)
	}

	// Copy the action list: the compact model must not alias caller slices.
	cm.actions[si] = make([]mdp.Action, len(acts))
	copy(cm.actions[si], acts)

	cm.succ[si] = make([][]Successor, len(acts))
	for ai, a := range acts {
		// Duplicate-action check by equality scan over the prefix; action
		// lists are short, so O(A²) per state is irrelevant in practice.
		for _, prev := range acts[:ai] {
			if prev == a {
				return fmt.Errorf("%w: %v in state %v", ErrDuplicateAction, a, s)
			}
		}

		row, err := cm.fillRow(m, s, a)
		if err != nil {
			return err
		}
		cm.succ[si][ai] = row
	}

	return nil
}

// fillRow materializes one (state, action) successor row, applying the
// sparse filter and the per-row duplicate and range checks.
func (cm *Model) fillRow(m mdp.Model, s mdp.State, a mdp.Action) ([]Successor, error) {
	next := m.NextStates(s, a)
	if len(next) == 0 {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrNoSuccessors, s, a)
	}

	row := make([]Successor, 0, len(next))
	seen := make(map[int]struct{}, len(next))

	for _, t := range next {
		ti, ok := cm.idx.lookup(t)
		if !ok {
			return nil, fmt.Errorf("%w: %v reached from (%v, %v)", ErrUnknownState, t, s, a)
		}

		// The duplicate check covers dropped entries too: a zero-prob and a
		// positive-prob mention of the same successor is still a malformed row.
		if _, dup := seen[ti]; dup {
			return nil, fmt.Errorf("%w: %v listed twice for (%v, %v)", ErrDuplicateTransition, t, s, a)
		}
		seen[ti] = struct{}{}

		p := m.TransitionProbability(s, a, t)
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: p(%v|%v,%v)=%v", ErrProbabilityRange, t, s, a, p)
		}

		if p > 0 || cm.dense {
			row = append(row, Successor{Next: ti, Prob: p, Reward: m.Reward(s, a, t)})
		}
	}

	return row, nil
}
