// Package mdp_test exercises the concrete model containers and Validate.
package mdp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/mdp"
)

// twoStateRows is a minimal well-formed tabular model: two states, one
// action each, stochastic transitions that conserve probability.
func twoStateRows() []mdp.Transition {
	return []mdp.Transition{
		{From: "a", Action: "go", To: "a", Prob: 0.25, Reward: 1},
		{From: "a", Action: "go", To: "b", Prob: 0.75, Reward: 2},
		{From: "b", Action: "stay", To: "b", Prob: 1, Reward: 0},
	}
}

func TestNewTabular_EmptyRows(t *testing.T) {
	_, err := mdp.NewTabular(nil)
	require.ErrorIs(t, err, mdp.ErrNoTransitions)
}

func TestNewTabular_BadProbability(t *testing.T) {
	rows := []mdp.Transition{
		{From: "a", Action: "go", To: "b", Prob: 1.5, Reward: 0},
	}
	_, err := mdp.NewTabular(rows)
	require.ErrorIs(t, err, mdp.ErrProbabilityRange)
}

func TestNewTabular_DuplicateTriple(t *testing.T) {
	rows := []mdp.Transition{
		{From: "a", Action: "go", To: "b", Prob: 0.5, Reward: 0},
		{From: "a", Action: "go", To: "b", Prob: 0.5, Reward: 1},
	}
	_, err := mdp.NewTabular(rows)
	require.ErrorIs(t, err, mdp.ErrDuplicateTransition)
}

func TestTabular_PreservesRowOrder(t *testing.T) {
	m, err := mdp.NewTabular(twoStateRows())
	require.NoError(t, err)

	// States in first-seen order: "a" before "b".
	require.Equal(t, []mdp.State{"a", "b"}, m.States())

	// Actions in first-seen order per state.
	require.Equal(t, []mdp.Action{"go"}, m.Actions("a"))
	require.Equal(t, []mdp.Action{"stay"}, m.Actions("b"))

	// Successors in row order.
	require.Equal(t, []mdp.State{"a", "b"}, m.NextStates("a", "go"))
}

func TestTabular_OutcomeLookup(t *testing.T) {
	m, err := mdp.NewTabular(twoStateRows())
	require.NoError(t, err)

	require.Equal(t, 0.75, m.TransitionProbability("a", "go", "b"))
	require.Equal(t, 2.0, m.Reward("a", "go", "b"))
	require.Equal(t, 1.0, m.TransitionProbability("b", "stay", "b"))
}

func TestMapModel_AddAndLookup(t *testing.T) {
	m := mdp.NewMap()
	require.NoError(t, m.Add(0, "right", 1, 0.9, 0))
	require.NoError(t, m.Add(0, "right", 0, 0.1, 0))
	require.NoError(t, m.Add(1, "left", 0, 1, 5))

	require.Equal(t, []mdp.State{0, 1}, m.States())
	require.Equal(t, []mdp.Action{"right"}, m.Actions(0))
	require.Equal(t, []mdp.State{1, 0}, m.NextStates(0, "right"))
	require.Equal(t, 0.9, m.TransitionProbability(0, "right", 1))
	require.Equal(t, 5.0, m.Reward(1, "left", 0))
}

func TestMapModel_RejectsDuplicateTriple(t *testing.T) {
	m := mdp.NewMap()
	require.NoError(t, m.Add("s", "a", "t", 0.5, 0))
	err := m.Add("s", "a", "t", 0.5, 0)
	require.ErrorIs(t, err, mdp.ErrDuplicateTransition)
}

func TestMapModel_StructKeys(t *testing.T) {
	// States may be small comparable structs; equality is structural.
	type cell struct{ Row, Col int }

	m := mdp.NewMap()
	require.NoError(t, m.Add(cell{0, 0}, "east", cell{0, 1}, 1, -1))
	require.NoError(t, m.Add(cell{0, 1}, "west", cell{0, 0}, 1, -1))

	// A freshly constructed equal struct must find the same state.
	require.Equal(t, 1.0, m.TransitionProbability(cell{0, 0}, "east", cell{0, 1}))
	require.Equal(t, []mdp.State{cell{0, 0}, cell{0, 1}}, m.States())
}

func TestValidate_WellFormed(t *testing.T) {
	m, err := mdp.NewTabular(twoStateRows())
	require.NoError(t, err)
	require.NoError(t, mdp.Validate(m, 1e-6))
}

func TestValidate_NilModel(t *testing.T) {
	require.ErrorIs(t, mdp.Validate(nil, 1e-6), mdp.ErrNilModel)
}

func TestValidate_BadTolerance(t *testing.T) {
	m, _ := mdp.NewTabular(twoStateRows())
	require.ErrorIs(t, mdp.Validate(m, 0), mdp.ErrBadTolerance)
	require.ErrorIs(t, mdp.Validate(m, -1), mdp.ErrBadTolerance)
}

func TestValidate_EmptyModel(t *testing.T) {
	require.ErrorIs(t, mdp.Validate(mdp.NewMap(), 1e-6), mdp.ErrNoStates)
}

func TestValidate_MassDeficit(t *testing.T) {
	m := mdp.NewMap()
	require.NoError(t, m.Add("s", "a", "t", 0.5, 0))
	require.NoError(t, m.Add("t", "b", "s", 1, 0))

	err := mdp.Validate(m, 1e-6)
	require.ErrorIs(t, err, mdp.ErrProbabilityMass)
}

func TestValidate_MassWithinTolerance(t *testing.T) {
	m := mdp.NewMap()
	require.NoError(t, m.Add("s", "a", "t", 0.3333333, 0))
	require.NoError(t, m.Add("s", "a", "u", 0.6666667, 0))
	require.NoError(t, m.Add("t", "b", "s", 1, 0))
	require.NoError(t, m.Add("u", "b", "s", 1, 0))

	require.NoError(t, mdp.Validate(m, 1e-6))
}

func TestValidate_ZeroMassRowIsTerminal(t *testing.T) {
	// A row whose probabilities are all exactly zero declares a terminal
	// state and must pass validation.
	m := mdp.NewMap()
	require.NoError(t, m.Add("live", "go", "end", 1, 10))
	require.NoError(t, m.Add("end", "go", "end", 0, 0))

	require.NoError(t, mdp.Validate(m, 1e-6))
}
