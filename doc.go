// Package bellman is your in-memory toolkit for solving finite Markov
// Decision Processes exactly — from model plumbing to converged optimal
// policies via classical dynamic programming.
//
// 🚀 What is bellman?
//
//	A compact, self-contained library that brings together:
//		• Model contract: supply states, actions, transitions & rewards your way
//		• Concrete models: flat tabular rows or nested maps, order-preserving
//		• Compact form: dense integer indices + sparse successor tables
//		• Policy evaluation: iterative (Gauss–Seidel) and exact (linear solve)
//		• Policy improvement & policy iteration (approximate and exact)
//		• Value iteration with tolerances, budgets and progress callbacks
//		• Canonical worlds: recycling robot, gridworld, chain walk
//		• Charts: convergence traces & value plots rendered to HTML
//
// ✨ Why choose bellman?
//
//   - Exact answers – the model is fully known; no sampling, no approximation
//   - Fail-fast guarantees – malformed models are rejected, never patched over
//   - Index everything – algorithms run on dense ints, you see your own keys
//   - Bounded loops – every iteration takes a budget; non-convergence is a
//     status, not a hang
//
// Under the hood, everything is organized under five subpackages:
//
//	mdp/     — the generic Model contract, tabular & map-backed models, validation
//	compact/ — state/action index maps and the sparse successor table
//	solve/   — the Solver: backups, evaluation, improvement, iteration drivers
//	worlds/  — canonical MDP generators used in tests, examples and docs
//	plot/    — go-echarts rendering of convergence traces and value functions
//
// Quick sketch:
//
//	model := worlds.RecyclingRobot()
//	cm, _ := compact.Build(model)
//	sv, _ := solve.New(cm, 0.95)
//	_, _ = sv.ValueIteration(1e-9)
//	fmt.Println(sv.Policy()) // search when high, recharge when low
//
// States and actions may be any comparable Go values: strings, ints, small
// structs of primitives. Equality must be structural — two states that mean
// the same thing must compare equal. That contract belongs to the caller;
// the library never inspects state internals.
//
// Dive into the per-package docs for the algorithmic details, complexity
// notes, and the full option surface.
package bellman
