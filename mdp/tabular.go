package mdp

import "fmt"

// TabularModel is a Model backed by a flat list of Transition rows — the
// shape produced by a CSV load, a database query, or a hand-written table.
//
// Row order is meaningful: the first row mentioning a state (or an action
// within a state) fixes that state's (or action's) enumeration position.
type TabularModel struct {
	*MapModel
}

// NewTabular builds a TabularModel from flat transition rows.
//
// Errors:
//   - ErrNoTransitions      if rows is empty.
//   - ErrProbabilityRange   if any row's Prob is outside [0,1].
//   - ErrDuplicateTransition if two rows share the same (From, Action, To).
func NewTabular(rows []Transition) (*TabularModel, error) {
	if len(rows) == 0 {
		return nil, ErrNoTransitions
	}

	m := NewMap()
	for i, row := range rows {
		if err := m.Add(row.From, row.Action, row.To, row.Prob, row.Reward); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return &TabularModel{MapModel: m}, nil
}
