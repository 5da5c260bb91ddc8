// Package worlds_test checks the canonical generators against the model
// contract and their documented dynamics.
package worlds_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/compact"
	"github.com/katalvlaran/bellman/mdp"
	"github.com/katalvlaran/bellman/worlds"
)

// ------------------------------------------------------------------------
// Recycling robot.
// ------------------------------------------------------------------------

func TestRecyclingRobot_PassesValidation(t *testing.T) {
	require.NoError(t, mdp.Validate(worlds.RecyclingRobot(), 1e-9))
}

func TestRecyclingRobot_Shape(t *testing.T) {
	m := worlds.RecyclingRobot()

	require.Equal(t, []mdp.State{worlds.High, worlds.Low}, m.States())
	require.Equal(t, []mdp.Action{worlds.Search, worlds.Wait}, m.Actions(worlds.High))
	require.Equal(t, []mdp.Action{worlds.Search, worlds.Wait, worlds.Recharge}, m.Actions(worlds.Low))

	// Spot-check the risky transition: searching on Low can deplete.
	require.Equal(t, 0.4, m.TransitionProbability(worlds.Low, worlds.Search, worlds.High))
	require.Equal(t, -3.0, m.Reward(worlds.Low, worlds.Search, worlds.High))
}

func TestRecyclingRobot_OptionsOverride(t *testing.T) {
	m := worlds.RecyclingRobot(
		worlds.WithAlpha(0.5),
		worlds.WithBeta(0.25),
		worlds.WithRewards(10, 2, -8),
	)

	require.Equal(t, 0.5, m.TransitionProbability(worlds.High, worlds.Search, worlds.High))
	require.Equal(t, 0.75, m.TransitionProbability(worlds.Low, worlds.Search, worlds.High))
	require.Equal(t, 10.0, m.Reward(worlds.High, worlds.Search, worlds.High))
	require.Equal(t, 2.0, m.Reward(worlds.High, worlds.Wait, worlds.High))
	require.Equal(t, -8.0, m.Reward(worlds.Low, worlds.Search, worlds.High))
	require.NoError(t, mdp.Validate(m, 1e-9))
}

func TestRecyclingRobot_BadProbabilityPanics(t *testing.T) {
	cfg := worlds.DefaultRecyclingOptions()
	require.PanicsWithValue(t, worlds.ErrBadProbability.Error(), func() {
		worlds.WithAlpha(1.5)(&cfg)
	})
	require.PanicsWithValue(t, worlds.ErrBadProbability.Error(), func() {
		worlds.WithBeta(-0.1)(&cfg)
	})
}

// ------------------------------------------------------------------------
// Gridworld.
// ------------------------------------------------------------------------

func TestGridWorld_BadDimensions(t *testing.T) {
	_, err := worlds.GridWorld(0, 3)
	require.ErrorIs(t, err, worlds.ErrBadDimensions)
	_, err = worlds.GridWorld(3, -1)
	require.ErrorIs(t, err, worlds.ErrBadDimensions)
}

func TestGridWorld_GoalOutside(t *testing.T) {
	_, err := worlds.GridWorld(3, 3, worlds.WithGoal(3, 0))
	require.ErrorIs(t, err, worlds.ErrGoalOutside)
}

func TestGridWorld_BadSlipPanics(t *testing.T) {
	cfg := worlds.GridOptions{}
	require.PanicsWithValue(t, worlds.ErrBadSlip.Error(), func() {
		worlds.WithSlip(1)(&cfg)
	})
}

func TestGridWorld_PassesValidation(t *testing.T) {
	det, err := worlds.GridWorld(3, 4)
	require.NoError(t, err)
	require.NoError(t, mdp.Validate(det, 1e-9))

	noisy, err := worlds.GridWorld(3, 4, worlds.WithSlip(0.3))
	require.NoError(t, err)
	require.NoError(t, mdp.Validate(noisy, 1e-9))
}

func TestGridWorld_BouncesOffBoundary(t *testing.T) {
	m, err := worlds.GridWorld(2, 2)
	require.NoError(t, err)

	// North from the top-left corner stays put, deterministically.
	origin := worlds.Cell{Row: 0, Col: 0}
	require.Equal(t, []mdp.State{origin}, m.NextStates(origin, worlds.North))
	require.Equal(t, 1.0, m.TransitionProbability(origin, worlds.North, origin))
}

func TestGridWorld_SlipAggregatesBounces(t *testing.T) {
	// 2x2, slip 0.2, cell (0,0), action North: the intended move bounces
	// back (p 0.8), the West slip bounces back too (p 0.1), the East slip
	// reaches (0,1) (p 0.1). Mass on (0,0) must aggregate to 0.9 in a
	// single successor entry.
	m, err := worlds.GridWorld(2, 2, worlds.WithSlip(0.2))
	require.NoError(t, err)

	origin := worlds.Cell{Row: 0, Col: 0}
	east := worlds.Cell{Row: 0, Col: 1}
	require.Len(t, m.NextStates(origin, worlds.North), 2)
	require.InDelta(t, 0.9, m.TransitionProbability(origin, worlds.North, origin), 1e-12)
	require.InDelta(t, 0.1, m.TransitionProbability(origin, worlds.North, east), 1e-12)
}

func TestGridWorld_GoalIsTerminal(t *testing.T) {
	m, err := worlds.GridWorld(3, 3, worlds.WithGoal(1, 1))
	require.NoError(t, err)

	cm, err := compact.Build(m)
	require.NoError(t, err)

	gi, ok := cm.StateIndex(worlds.Cell{Row: 1, Col: 1})
	require.True(t, ok, "the goal must stay in the state set")
	require.True(t, cm.Terminal(gi))

	// Non-goal cells are not terminal.
	si, _ := cm.StateIndex(worlds.Cell{Row: 0, Col: 0})
	require.False(t, cm.Terminal(si))
}

func TestGridWorld_GoalRewardOnEntry(t *testing.T) {
	m, err := worlds.GridWorld(2, 2, worlds.WithStepReward(-1), worlds.WithGoalReward(10))
	require.NoError(t, err)

	from := worlds.Cell{Row: 1, Col: 0}
	goal := worlds.Cell{Row: 1, Col: 1}
	require.Equal(t, 9.0, m.Reward(from, worlds.East, goal))
	require.Equal(t, -1.0, m.Reward(from, worlds.West, from))
}

// ------------------------------------------------------------------------
// Chain walk.
// ------------------------------------------------------------------------

func TestChainWalk_TooShort(t *testing.T) {
	_, err := worlds.ChainWalk(1)
	require.ErrorIs(t, err, worlds.ErrChainTooShort)
}

func TestChainWalk_PassesValidation(t *testing.T) {
	m, err := worlds.ChainWalk(5)
	require.NoError(t, err)
	require.NoError(t, mdp.Validate(m, 1e-9))
}

func TestChainWalk_Dynamics(t *testing.T) {
	m, err := worlds.ChainWalk(4)
	require.NoError(t, err)

	// Interior move: right from 1 reaches 2 with 0.9, stays with 0.1.
	require.InDelta(t, 0.9, m.TransitionProbability(1, worlds.Right, 2), 1e-12)
	require.InDelta(t, 0.1, m.TransitionProbability(1, worlds.Right, 1), 1e-12)

	// Bounce at the left end collapses to a certain self-transition.
	require.Equal(t, []mdp.State{0}, m.NextStates(0, worlds.Left))
	require.Equal(t, 1.0, m.TransitionProbability(0, worlds.Left, 0))

	// Landing on the far end pays 1.
	require.Equal(t, 1.0, m.Reward(2, worlds.Right, 3))
	require.Equal(t, 0.0, m.Reward(1, worlds.Right, 2))
}

func TestChainWalk_OrderedCompaction(t *testing.T) {
	m, err := worlds.ChainWalk(5)
	require.NoError(t, err)

	cm, err := compact.Build(m, compact.WithOrdered(worlds.IntLess))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.Equal(t, i, cm.State(i), "ordered indices must follow the integer order")
	}
}
