// Package solve implements the classical dynamic-programming algorithms
// for finite MDPs over a compact.Model: policy evaluation (iterative and
// exact), policy improvement, policy iteration and value iteration.
//
// 🚀 The Solver
//
//	A Solver owns two dense vectors indexed by state:
//	  • V  — the value estimate, one float64 per state
//	  • π  — the policy, one action index per state
//	plus a lazily built linear system (A, b) for exact evaluation.
//	Every algorithm is a different way of driving V and π to the Bellman
//	fixed point:
//
//	  EvaluatePolicy       V[s] ← Σ p·(r + γ·V[t]) under π[s]   (one sweep, in place)
//	  EvaluatePolicyExact  solve (I − γ·P_π)·V = R_π             (one shot, gonum)
//	  ImprovePolicy        π[s] ← argmax_a Backup(s, a)
//	  ValueIterationStep   V[s] ← max_a Backup(s, a), fused with the argmax
//
// The in-place sweep is Gauss–Seidel style: later states in a pass see
// earlier states' fresh values. That is an accepted acceleration, not a
// bug; the fixed point is unchanged. Improvement keeps the incumbent
// action on near-ties: a challenger must win by a small margin, so
// evaluation rounding cannot flip the policy between actions that are
// equal in exact arithmetic.
//
// ✨ Convergence drivers:
//
//   - ValueIteration(tol)        — repeat steps until Δ = max|ΔV| < tol.
//   - PolicyIteration(valueTol)  — alternate bounded evaluation sweeps with
//     one improvement; stop when the policy is stable.
//   - PolicyIterationExact()     — same outer loop, one exact solve per
//     improvement (the value converges in one shot per policy).
//
// Each driver takes an iteration budget (WithMaxIterations and, for the
// approximate inner loop, WithMaxValueIterations). Exhausting a budget is
// not an error: the driver returns (false, nil) and the caller decides
// whether to continue, relax the tolerance, or give up. Progress callbacks
// (WithProgress, WithPolicyProgress) observe every step.
//
// ⚙️ Exact evaluation and the incremental system:
//
//	Row s of A encodes the Bellman equation of state s under its current
//	policy action. Each row remembers the action it was built with; after
//	a policy change only the disagreeing rows are rebuilt before the next
//	solve. A singular system (possible when γ = 1) surfaces as
//	ErrSingularSystem — fatal, never retried, since the same inputs
//	cannot suddenly become solvable.
//
// All operations are synchronous and single-threaded. The Solver never
// locks: concurrent use is a caller bug. Long-running work is bounded
// only by iteration budgets; callers needing finer-grained cancellation
// drive the single-step primitives themselves.
//
// Complexity per sweep: O(Σ successors) for evaluation, O(Σ per-action
// successors) for improvement; the exact solve is O(n³) on first build
// and O(changed·n + n³) after policy changes.
package solve
