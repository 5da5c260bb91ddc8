// Package mdp defines the generic model contract for finite Markov Decision
// Processes and ships two concrete, order-preserving implementations.
//
// 🚀 What is a Model?
//
//	A finite MDP is fully described by five read-only queries:
//	  • States()                          — every situation the process can be in
//	  • Actions(s)                        — the choices available in state s
//	  • NextStates(s, a)                  — the states reachable by taking a in s
//	  • TransitionProbability(s, a, next) — how likely each successor is
//	  • Reward(s, a, next)                — the immediate payoff of that move
//
// Any type satisfying Model can be handed to compact.Build and solved.
// The two bundled implementations cover the common storage shapes:
//
//   - TabularModel — built from a flat slice of Transition rows, the shape
//     you get from a CSV, a database query, or a hand-written table.
//   - MapModel     — built incrementally via Add, the shape you get when
//     generating a model programmatically.
//
// Both preserve first-seen order for states, for actions within a state,
// and for successors within a (state, action) pair, so index assignment
// downstream is deterministic.
//
// ⚙️ Caller obligations:
//
//   - State and Action values must be comparable Go values with structural
//     equality (strings, ints, small structs of primitives). Pointer
//     identity as equality will silently split one logical state into many.
//   - States() must be non-empty and duplicate-free; Actions(s) must be
//     non-empty for every state; NextStates must be duplicate-free.
//   - The model must be referentially consistent: repeated calls with equal
//     arguments must return equal answers for the lifetime of a solve.
//
// Validate checks the probabilistic side of the contract (mass ≈ 1 per
// (state, action) row, probabilities within [0,1], no empty action or
// successor sets) and is the recommended pre-flight before compact.Build.
package mdp
