// Package worlds generates canonical finite MDPs — small, well-studied
// models with known optimal policies, used throughout the tests, examples
// and documentation of the solver.
//
// 🚀 Bundled worlds:
//
//   - RecyclingRobot — the classic two-state battery-management MDP: a
//     can-collecting robot chooses between searching (profitable but
//     draining), waiting, and recharging. With the default
//     parameterization and γ = 0.95 the optimal policy searches when the
//     battery is high and recharges when it is low.
//   - GridWorld — a rows×cols navigation task with four compass moves,
//     optional slip noise, per-step cost and an absorbing goal cell. The
//     goal is a de facto terminal state: its rows carry zero probability
//     and compact.Model.Terminal reports it.
//   - ChainWalk — a 1-D corridor of integer states with noisy left/right
//     moves and a reward at the far end. Integer states make it the
//     natural companion of compact.WithOrdered.
//
// Every generator returns an order-preserving *mdp.MapModel that passes
// mdp.Validate, so the worlds double as fixtures for the model-contract
// tests. Parameters are adjusted via functional options; options carrying
// probabilities outside [0,1] panic when applied, before any model is
// assembled.
package worlds
