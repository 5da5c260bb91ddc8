package worlds

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bellman/mdp"
)

// Actions of the chain walk.
const (
	Left  = "left"
	Right = "right"
)

// chainMoveProb is the probability a chain move succeeds; the remainder
// stays in place.
const chainMoveProb = 0.9

// ErrChainTooShort indicates a chain walk with fewer than two states.
var ErrChainTooShort = errors.New("worlds: chain walk needs at least two states")

// ChainWalk builds a 1-D corridor of n integer states 0..n-1 with noisy
// Left/Right moves: the move succeeds with probability 0.9 and stays in
// place otherwise. Walking off either end bounces. Transitions landing on
// the far end (state n-1) pay reward 1; everything else pays 0.
//
// Integer states give this world a natural total order, making it the
// standard fixture for compact.WithOrdered:
//
//	cm, err := compact.Build(m, compact.WithOrdered(worlds.IntLess))
func ChainWalk(n int) (*mdp.MapModel, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrChainTooShort, n)
	}

	m := mdp.NewMap()
	for s := 0; s < n; s++ {
		addChainMove(m, s, Left, s-1, n)
		addChainMove(m, s, Right, s+1, n)
	}

	return m, nil
}

// addChainMove emits the successor row of one (state, direction) pair,
// aggregating the bounce case where intent and stay coincide.
func addChainMove(m *mdp.MapModel, s int, a mdp.Action, target, n int) {
	dest := target
	if dest < 0 || dest >= n {
		dest = s // bounce off the end
	}

	if dest == s {
		// Intent and stay collapse into one self-transition of mass 1.
		mustAdd(m, s, a, s, 1, chainReward(s, n))

		return
	}

	mustAdd(m, s, a, dest, chainMoveProb, chainReward(dest, n))
	mustAdd(m, s, a, s, 1-chainMoveProb, chainReward(s, n))
}

// chainReward pays 1 for landing on the far end of the chain.
func chainReward(dest, n int) float64 {
	if dest == n-1 {
		return 1
	}

	return 0
}

// IntLess orders integer states ascending; the companion comparison for
// building chain walks with compact.WithOrdered.
func IntLess(a, b mdp.State) bool { return a.(int) < b.(int) }
