package mdp

import "fmt"

// stateAction keys a per-action successor list.
type stateAction struct {
	s State
	a Action
}

// transitionKey keys a single (state, action, next) outcome.
type transitionKey struct {
	s    State
	a    Action
	next State
}

// MapModel is an incrementally built, order-preserving MDP representation.
//
// Add records one transition at a time; the first mention of a state, of an
// action within a state, or of a successor within a (state, action) pair
// fixes its enumeration position. MapModel therefore yields deterministic
// index assignment when handed to compact.Build, unlike a bare Go map.
//
// MapModel implements Model. The zero value is not usable; construct with
// NewMap.
type MapModel struct {
	states    []State                   // first-seen state order
	actions   map[State][]Action        // first-seen action order per state
	next      map[stateAction][]State   // first-seen successor order per (s, a)
	outcomes  map[transitionKey]Outcome // probability & reward per triple
	stateSeen map[State]bool            // membership for O(1) duplicate checks
}

// NewMap returns an empty MapModel ready for Add calls.
func NewMap() *MapModel {
	return &MapModel{
		actions:   make(map[State][]Action),
		next:      make(map[stateAction][]State),
		outcomes:  make(map[transitionKey]Outcome),
		stateSeen: make(map[State]bool),
	}
}

// Add records that taking a in s reaches next with probability prob and
// immediate reward reward.
//
// Errors:
//   - ErrProbabilityRange    if prob is outside [0,1].
//   - ErrDuplicateTransition if the (s, a, next) triple was already added.
func (m *MapModel) Add(s State, a Action, next State, prob, reward float64) error {
	// 1) Range-check the probability before touching any structure.
	if prob < 0 || prob > 1 {
		return fmt.Errorf("%w: p(%v|%v,%v)=%v", ErrProbabilityRange, next, s, a, prob)
	}

	// 2) Reject duplicate triples outright; overwriting would mask caller bugs.
	key := transitionKey{s: s, a: a, next: next}
	if _, dup := m.outcomes[key]; dup {
		return fmt.Errorf("%w: (%v, %v, %v)", ErrDuplicateTransition, s, a, next)
	}

	// 3) Record the state on first mention, preserving insertion order.
	if !m.stateSeen[s] {
		m.stateSeen[s] = true
		m.states = append(m.states, s)
	}

	// 4) Record the action on first mention within s.
	sa := stateAction{s: s, a: a}
	if _, known := m.next[sa]; !known {
		m.actions[s] = append(m.actions[s], a)
		m.next[sa] = nil // reserve the slot so the action is not re-appended
	}

	// 5) Record the successor and its outcome.
	m.next[sa] = append(m.next[sa], next)
	m.outcomes[key] = Outcome{Prob: prob, Reward: reward}

	return nil
}

// States implements Model. The returned slice is shared; treat as read-only.
func (m *MapModel) States() []State { return m.states }

// Actions implements Model.
func (m *MapModel) Actions(s State) []Action { return m.actions[s] }

// NextStates implements Model.
func (m *MapModel) NextStates(s State, a Action) []State {
	return m.next[stateAction{s: s, a: a}]
}

// TransitionProbability implements Model. Outside the enumerated triples
// it returns 0, but callers must not rely on that value.
func (m *MapModel) TransitionProbability(s State, a Action, next State) float64 {
	return m.outcomes[transitionKey{s: s, a: a, next: next}].Prob
}

// Reward implements Model. Outside the enumerated triples it returns 0,
// but callers must not rely on that value.
func (m *MapModel) Reward(s State, a Action, next State) float64 {
	return m.outcomes[transitionKey{s: s, a: a, next: next}].Reward
}
