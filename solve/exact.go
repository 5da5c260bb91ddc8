package solve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// EvaluatePolicyExact computes the current policy's value function in one
// shot by solving the Bellman linear system
//
//	(I − γ·P_π)·V = R_π
//
// where row s encodes state s under its policy action: the diagonal
// starts at 1, each successor t subtracts γ·p at column t (self-loops
// fold into the diagonal), and the right-hand side is Σ p·r.
//
// The system is built lazily and patched incrementally: the first call
// derives every row; subsequent calls re-derive only rows whose tagged
// action disagrees with the current policy. On success V is replaced
// wholesale by the solution.
//
// Errors:
//   - ErrSingularSystem when the dense solve fails (singular or
//     numerically unusable system — possible when γ = 1). Fatal; the
//     partial V is left untouched and no retry is attempted.
func (sv *Solver) EvaluatePolicyExact() error {
	n := sv.cm.NumStates()

	// 1) Allocate the system on first use.
	if sv.a == nil {
		sv.a = mat.NewDense(n, n, nil)
		sv.b = mat.NewVecDense(n, nil)
	}

	// 2) Re-derive exactly the rows whose policy action changed since they
	//    were last built (all of them on the first call).
	for si := 0; si < n; si++ {
		if sv.builtWith[si] != sv.policy[si] {
			sv.rebuildRow(si)
		}
	}

	// 3) Dense solve. gonum reports singular and numerically hopeless
	//    systems through the returned error; surface either as fatal.
	var x mat.VecDense
	if err := x.SolveVec(sv.a, sv.b); err != nil {
		return fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	// 4) Replace the value vector wholesale.
	for si := 0; si < n; si++ {
		sv.v[si] = x.AtVec(si)
	}

	return nil
}

// rebuildRow derives row si of (A, b) from the compact successor row of
// (si, π[si]) and tags it with the action used.
func (sv *Solver) rebuildRow(si int) {
	// Zero the stale row, then place the identity diagonal.
	for j := 0; j < sv.cm.NumStates(); j++ {
		sv.a.Set(si, j, 0)
	}
	sv.a.Set(si, si, 1)

	var rhs float64
	for _, sc := range sv.cm.Successors(si, sv.policy[si]) {
		sv.a.Set(si, sc.Next, sv.a.At(si, sc.Next)-sv.gamma*sc.Prob)
		rhs += sc.Prob * sc.Reward
	}
	sv.b.SetVec(si, rhs)

	sv.builtWith[si] = sv.policy[si]
}
