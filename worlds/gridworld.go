package worlds

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bellman/mdp"
)

// Compass actions of the gridworld.
const (
	North = "north"
	South = "south"
	East  = "east"
	West  = "west"
)

// Sentinel errors returned by GridWorld.
var (
	// ErrBadDimensions indicates a gridworld with fewer than one row or column.
	ErrBadDimensions = errors.New("worlds: grid dimensions must be positive")

	// ErrGoalOutside indicates a goal cell outside the grid.
	ErrGoalOutside = errors.New("worlds: goal cell outside the grid")

	// ErrBadSlip indicates a slip probability outside [0,1).
	ErrBadSlip = errors.New("worlds: slip probability must be in [0,1)")
)

// Cell is a gridworld state: a (Row, Col) position. Structural equality
// makes equal positions the same state.
type Cell struct {
	Row, Col int
}

// GridOptions parameterizes GridWorld. GoalRow/GoalCol place the
// absorbing goal cell (default bottom-right). StepReward is the reward
// of every transition (default −1, making values encode shortest
// paths); GoalReward is added on transitions entering the goal. Slip is
// the probability mass diverted to the two perpendicular directions,
// Slip/2 each (default 0: deterministic moves).
type GridOptions struct {
	GoalRow, GoalCol int
	StepReward       float64
	GoalReward       float64
	Slip             float64
}

// GridOption is a functional option for GridWorld.
type GridOption func(*GridOptions)

// WithGoal places the absorbing goal at (row, col).
func WithGoal(row, col int) GridOption {
	return func(o *GridOptions) {
		o.GoalRow, o.GoalCol = row, col
	}
}

// WithStepReward sets the per-transition reward (negative = cost).
func WithStepReward(r float64) GridOption {
	return func(o *GridOptions) { o.StepReward = r }
}

// WithGoalReward sets the extra reward on transitions entering the goal.
func WithGoalReward(r float64) GridOption {
	return func(o *GridOptions) { o.GoalReward = r }
}

// WithSlip diverts probability slip to the perpendicular directions,
// slip/2 each. Panics outside [0,1).
func WithSlip(slip float64) GridOption {
	return func(o *GridOptions) {
		if slip < 0 || slip >= 1 {
			panic(ErrBadSlip.Error())
		}
		o.Slip = slip
	}
}

// moves maps each action to its row/col delta and perpendicular pair.
var moves = map[mdp.Action]struct {
	dr, dc int
	perp   [2]mdp.Action
}{
	North: {dr: -1, dc: 0, perp: [2]mdp.Action{East, West}},
	South: {dr: 1, dc: 0, perp: [2]mdp.Action{East, West}},
	East:  {dr: 0, dc: 1, perp: [2]mdp.Action{North, South}},
	West:  {dr: 0, dc: -1, perp: [2]mdp.Action{North, South}},
}

// actionOrder fixes the deterministic enumeration order of the moves.
var actionOrder = []mdp.Action{North, South, East, West}

// GridWorld builds a rows×cols navigation MDP with four compass moves.
//
// Moving off the grid bounces back to the current cell. The goal cell is
// a de facto terminal state: its rows carry probability zero, so sparse
// compaction leaves them empty and compact.Model.Terminal reports it.
// When slip is enabled, probability mass diverted to perpendicular moves
// that land in the same cell as the intended move is aggregated, keeping
// successor lists duplicate-free.
//
// States enumerate row-major from (0,0), so index assignment downstream
// is deterministic.
func GridWorld(rows, cols int, opts ...GridOption) (*mdp.MapModel, error) {
	// 1) Assemble Options from defaults plus functional overrides.
	cfg := GridOptions{
		GoalRow:    rows - 1,
		GoalCol:    cols - 1,
		StepReward: -1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate geometry.
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	if cfg.GoalRow < 0 || cfg.GoalRow >= rows || cfg.GoalCol < 0 || cfg.GoalCol >= cols {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrGoalOutside, cfg.GoalRow, cfg.GoalCol)
	}

	goal := Cell{Row: cfg.GoalRow, Col: cfg.GoalCol}
	m := mdp.NewMap()

	// 3) Emit rows in row-major order for deterministic indexing.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := Cell{Row: r, Col: c}
			for _, a := range actionOrder {
				if cell == goal {
					// Terminal declaration: a zero-probability self row.
					mustAdd(m, cell, a, cell, 0, 0)

					continue
				}
				addMove(m, cell, a, rows, cols, goal, cfg)
			}
		}
	}

	return m, nil
}

// addMove emits the successor row of one (cell, action) pair, spreading
// probability over the intended and perpendicular landing cells and
// aggregating mass that lands in the same place.
func addMove(m *mdp.MapModel, cell Cell, a mdp.Action, rows, cols int, goal Cell, cfg GridOptions) {
	mv := moves[a]

	// Probability per landing cell, aggregated across slip outcomes.
	mass := make(map[Cell]float64, 3)
	order := make([]Cell, 0, 3)
	accumulate := func(dest Cell, p float64) {
		if _, seen := mass[dest]; !seen {
			order = append(order, dest)
		}
		mass[dest] += p
	}

	accumulate(step(cell, mv.dr, mv.dc, rows, cols), 1-cfg.Slip)
	if cfg.Slip > 0 {
		for _, pa := range mv.perp {
			pm := moves[pa]
			accumulate(step(cell, pm.dr, pm.dc, rows, cols), cfg.Slip/2)
		}
	}

	for _, dest := range order {
		reward := cfg.StepReward
		if dest == goal {
			reward += cfg.GoalReward
		}
		mustAdd(m, cell, a, dest, mass[dest], reward)
	}
}

// step applies a move delta, bouncing off the grid boundary.
func step(from Cell, dr, dc, rows, cols int) Cell {
	r, c := from.Row+dr, from.Col+dc
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return from
	}

	return Cell{Row: r, Col: c}
}
