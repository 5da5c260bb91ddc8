package worlds

import (
	"errors"

	"github.com/katalvlaran/bellman/mdp"
)

// States and actions of the recycling robot.
const (
	// High is the high-battery state.
	High = "high"
	// Low is the low-battery state.
	Low = "low"

	// Search actively looks for cans: best expected reward, drains battery.
	Search = "search"
	// Wait collects whatever comes by: small reward, no battery risk.
	Wait = "wait"
	// Recharge returns to the charger: no reward, battery back to High.
	Recharge = "recharge"
)

// ErrBadProbability indicates a recycling-robot stay probability outside [0,1].
var ErrBadProbability = errors.New("worlds: probability must be in [0,1]")

// RecyclingOptions parameterizes the recycling robot. Alpha is
// P(battery stays High after searching while High) and Beta is
// P(battery stays Low after searching while Low). SearchReward and
// WaitReward are the expected cans per step of each action;
// RescuePenalty is the (normally negative) reward when searching on Low
// depletes the battery and the robot must be rescued.
type RecyclingOptions struct {
	Alpha         float64
	Beta          float64
	SearchReward  float64
	WaitReward    float64
	RescuePenalty float64
}

// RecyclingOption is a functional option for RecyclingRobot.
type RecyclingOption func(*RecyclingOptions)

// WithAlpha sets P(stay High | High, Search). Panics outside [0,1].
func WithAlpha(alpha float64) RecyclingOption {
	return func(o *RecyclingOptions) {
		if alpha < 0 || alpha > 1 {
			panic(ErrBadProbability.Error())
		}
		o.Alpha = alpha
	}
}

// WithBeta sets P(stay Low | Low, Search). Panics outside [0,1].
func WithBeta(beta float64) RecyclingOption {
	return func(o *RecyclingOptions) {
		if beta < 0 || beta > 1 {
			panic(ErrBadProbability.Error())
		}
		o.Beta = beta
	}
}

// WithRewards overrides the three reward parameters at once.
func WithRewards(search, wait, rescuePenalty float64) RecyclingOption {
	return func(o *RecyclingOptions) {
		o.SearchReward = search
		o.WaitReward = wait
		o.RescuePenalty = rescuePenalty
	}
}

// DefaultRecyclingOptions returns the classical parameterization:
// α = 0.9, β = 0.6, search pays 5, waiting pays 1, depletion costs 3.
// Under γ = 0.95 the optimal policy is Search in High, Recharge in Low.
func DefaultRecyclingOptions() RecyclingOptions {
	return RecyclingOptions{
		Alpha:         0.9,
		Beta:          0.6,
		SearchReward:  5,
		WaitReward:    1,
		RescuePenalty: -3,
	}
}

// RecyclingRobot builds the two-state recycling-robot MDP.
//
// Dynamics:
//
//	High, Search   → High with α  (SearchReward), Low with 1−α (SearchReward)
//	High, Wait     → High with 1  (WaitReward)
//	Low,  Search   → Low  with β  (SearchReward), High with 1−β (RescuePenalty)
//	Low,  Wait     → Low  with 1  (WaitReward)
//	Low,  Recharge → High with 1  (0)
func RecyclingRobot(opts ...RecyclingOption) *mdp.MapModel {
	cfg := DefaultRecyclingOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := mdp.NewMap()
	// High-battery rows.
	mustAdd(m, High, Search, High, cfg.Alpha, cfg.SearchReward)
	mustAdd(m, High, Search, Low, 1-cfg.Alpha, cfg.SearchReward)
	mustAdd(m, High, Wait, High, 1, cfg.WaitReward)
	// Low-battery rows.
	mustAdd(m, Low, Search, Low, cfg.Beta, cfg.SearchReward)
	mustAdd(m, Low, Search, High, 1-cfg.Beta, cfg.RescuePenalty)
	mustAdd(m, Low, Wait, Low, 1, cfg.WaitReward)
	mustAdd(m, Low, Recharge, High, 1, 0)

	return m
}

// mustAdd panics on Add failure. Generators build from validated
// parameters, so a failure here is a bug in the generator itself.
func mustAdd(m *mdp.MapModel, s mdp.State, a mdp.Action, next mdp.State, prob, reward float64) {
	if err := m.Add(s, a, next, prob, reward); err != nil {
		panic(err)
	}
}
