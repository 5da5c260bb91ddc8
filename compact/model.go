package compact

import "github.com/katalvlaran/bellman/mdp"

// Model is the compact indexed form of a finite MDP: a state index map,
// per-state action lists, and sparse successor rows. Built once by Build,
// read-only thereafter.
type Model struct {
	idx     *indexMap
	actions [][]mdp.Action // [si] -> action values in model order
	succ    [][][]Successor
	dense   bool
}

// NumStates returns n, the number of indexed states.
func (cm *Model) NumStates() int { return cm.idx.len() }

// Dense reports whether zero-probability successors were retained.
func (cm *Model) Dense() bool { return cm.dense }

// StateIndex returns the dense index of s, or false when s is unknown.
// Cost: one equality scan (unordered) or one binary search (ordered).
func (cm *Model) StateIndex(s mdp.State) (int, bool) { return cm.idx.lookup(s) }

// State returns the state value at index si. si must be in [0, NumStates).
func (cm *Model) State(si int) mdp.State { return cm.idx.at(si) }

// Actions returns the action values of state si in model order. The
// returned slice is the internal one; treat as read-only.
func (cm *Model) Actions(si int) []mdp.Action { return cm.actions[si] }

// NumActions returns the number of actions available in state si.
func (cm *Model) NumActions(si int) int { return len(cm.actions[si]) }

// Action returns the action value at index ai of state si. Action indices
// are scoped per state.
func (cm *Model) Action(si, ai int) mdp.Action { return cm.actions[si][ai] }

// ActionIndex returns the index of action a within state si, or false
// when si does not offer a. Cost: one equality scan.
func (cm *Model) ActionIndex(si int, a mdp.Action) (int, bool) {
	for ai, have := range cm.actions[si] {
		if have == a {
			return ai, true
		}
	}

	return 0, false
}

// Successors returns the compact transition row of (si, ai). In sparse
// mode every entry has Prob > 0; in dense mode zero-probability entries
// are present too. The returned slice is the internal one; treat as
// read-only.
func (cm *Model) Successors(si, ai int) []Successor {
	return cm.succ[si][ai]
}

// Terminal reports whether state si has no positive-probability outgoing
// transition under any action — a de facto terminal (absorbing) state.
// Such states stay in the state set and keep valid indices; only their
// dynamics are empty.
func (cm *Model) Terminal(si int) bool {
	for ai := range cm.succ[si] {
		for _, sc := range cm.succ[si][ai] {
			if sc.Prob > 0 {
				return false
			}
		}
	}

	return true
}
