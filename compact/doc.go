// Package compact converts a generic mdp.Model into an indexed sparse
// representation built for the inner loops of dynamic programming.
//
// 🚀 What does compaction buy?
//
//	The generic Model speaks in the caller's own state and action values,
//	looked up by equality. Every Bellman backup would pay that lookup
//	cost thousands of times. Build walks the model once and produces:
//	  • a bijection between states and dense integers 0..n-1
//	  • per-state action lists, index-addressed in model order
//	  • successors[si][ai] = [(next index, probability, reward), ...]
//	dropping zero-probability triples unless dense mode is requested.
//	After Build, algorithms touch nothing but ints and float64s.
//
// ✨ Index map strategies:
//
//   - unordered (default) — states take indices in first-seen order and are
//     looked up by equality scan: O(n) per lookup, no ordering requirement.
//   - ordered (WithOrdered) — states are kept sorted under a caller-supplied
//     total order and looked up by binary search: O(log n) per lookup.
//     Indices then follow sort order, not enumeration order.
//
// Action indices are scoped per state: index 2 in state 0 and index 2 in
// state 1 are unrelated actions.
//
// ⚙️ Usage:
//
//	cm, err := compact.Build(model)                      // sparse, unordered
//	cm, err := compact.Build(model, compact.WithDense()) // keep p==0 triples
//	cm, err := compact.Build(model, compact.WithOrdered(func(a, b mdp.State) bool {
//	    return a.(int) < b.(int)
//	}))
//
// The result is immutable: build once, read for the lifetime of a solve.
// Mutating the source model while a compact.Model derived from it is in
// use is undefined behavior.
//
// Complexity: Build is O(S·A·N) model queries plus O(S) or O(S log S)
// index maintenance; every lookup on the result is O(1) except
// StateIndex/ActionIndex, which cost one scan or binary search.
package compact
