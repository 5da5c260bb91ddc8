package mdp

import (
	"fmt"
	"math"
)

// Validate checks the probabilistic contract of a Model:
//
//  1. the model is non-nil and enumerates at least one state;
//  2. States() contains no duplicates;
//  3. every state offers at least one action, with no duplicates;
//  4. every (state, action) pair reaches at least one successor;
//  5. every transition probability lies within [0,1];
//  6. the probabilities of each (state, action) row sum to 1 within tol.
//
// One carve-out to rule 6: a row whose probabilities are all exactly zero
// is read as an explicit terminal declaration (the state absorbs without a
// successor) and is exempt from the mass check. Sparse compaction drops
// such rows entirely and compact.Model.Terminal reports the state.
//
// tol must be positive; 1e-6 is a reasonable default for models assembled
// from float literals.
//
// Validate walks the full enumeration once: O(S·A·N) queries for S states,
// A actions per state and N successors per action.
func Validate(m Model, tol float64) error {
	// 1) Guard the arguments.
	if tol <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadTolerance, tol)
	}
	if m == nil {
		return ErrNilModel
	}

	// 2) States: non-empty, duplicate-free.
	states := m.States()
	if len(states) == 0 {
		return ErrNoStates
	}
	seenState := make(map[State]bool, len(states))
	for _, s := range states {
		if seenState[s] {
			return fmt.Errorf("%w: %v", ErrDuplicateState, s)
		}
		seenState[s] = true
	}

	// 3) Per-state action sets and per-action successor rows.
	for _, s := range states {
		actions := m.Actions(s)
		if len(actions) == 0 {
			return fmt.Errorf("%w: %v", ErrNoActions, s)
		}
		seenAction := make(map[Action]bool, len(actions))
		for _, a := range actions {
			if seenAction[a] {
				return fmt.Errorf("%w: %v in state %v", ErrDuplicateAction, a, s)
			}
			seenAction[a] = true

			if err := validateRow(m, s, a, tol); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateRow checks the successor row of a single (state, action) pair:
// non-empty, per-transition probability in range, total mass ≈ 1.
func validateRow(m Model, s State, a Action, tol float64) error {
	next := m.NextStates(s, a)
	if len(next) == 0 {
		return fmt.Errorf("%w: (%v, %v)", ErrNoSuccessors, s, a)
	}

	var mass float64
	for _, t := range next {
		p := m.TransitionProbability(s, a, t)
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: p(%v|%v,%v)=%v", ErrProbabilityRange, t, s, a, p)
		}
		mass += p
	}

	// Zero total mass declares the row terminal; see the Validate doc.
	if mass == 0 {
		return nil
	}

	if math.Abs(mass-1) > tol {
		return fmt.Errorf("%w: (%v, %v) sums to %v", ErrProbabilityMass, s, a, mass)
	}

	return nil
}
