// Package mdp: central contract types and sentinel errors.
//
// This file declares State, Action, Model, Transition, Outcome and the
// package-level sentinel errors. All constructors and validators MUST
// return these sentinels (wrapped with fmt.Errorf("%w: ...") when context
// helps); tests match them via errors.Is.
package mdp

import "errors"

// Sentinel errors for model construction and validation.
var (
	// ErrNilModel indicates a nil Model was passed where one is required.
	ErrNilModel = errors.New("mdp: model is nil")

	// ErrNoStates indicates the model enumerates no states at all.
	ErrNoStates = errors.New("mdp: model has no states")

	// ErrDuplicateState indicates States() enumerated the same state twice.
	ErrDuplicateState = errors.New("mdp: duplicate state")

	// ErrNoActions indicates a state with an empty action set; every state
	// must offer at least one action.
	ErrNoActions = errors.New("mdp: state has no actions")

	// ErrDuplicateAction indicates Actions(s) enumerated the same action twice.
	ErrDuplicateAction = errors.New("mdp: duplicate action")

	// ErrNoSuccessors indicates a (state, action) pair with an empty
	// successor set.
	ErrNoSuccessors = errors.New("mdp: action has no successor states")

	// ErrNoTransitions indicates a tabular model was built from zero rows.
	ErrNoTransitions = errors.New("mdp: no transitions supplied")

	// ErrDuplicateTransition indicates the same (state, action, next) triple
	// was supplied more than once. Duplicates are rejected outright rather
	// than overwritten: a duplicate is almost always a bug in the caller's
	// model generation, and last-one-wins would mask it.
	ErrDuplicateTransition = errors.New("mdp: duplicate transition")

	// ErrProbabilityRange indicates a transition probability outside [0,1].
	ErrProbabilityRange = errors.New("mdp: transition probability outside [0,1]")

	// ErrProbabilityMass indicates the probabilities of a (state, action)
	// row do not sum to 1 within the requested tolerance.
	ErrProbabilityMass = errors.New("mdp: transition probabilities do not sum to 1")

	// ErrBadTolerance indicates a non-positive tolerance passed to Validate.
	ErrBadTolerance = errors.New("mdp: tolerance must be positive")
)

// State identifies one situation of the decision process. Any comparable
// Go value with structural equality may serve as a State.
type State interface{}

// Action identifies one choice available in a state. Any comparable Go
// value with structural equality may serve as an Action.
type Action interface{}

// Model is the read-only contract every MDP representation must satisfy.
//
// All five queries may be called arbitrarily many times and must be
// referentially consistent across calls. TransitionProbability and Reward
// are undefined outside the (States, Actions, NextStates) enumeration:
// callers must not rely on any particular value there.
type Model interface {
	// States enumerates every state. Non-empty, duplicate-free.
	States() []State

	// Actions enumerates the actions available in s. Non-empty and
	// duplicate-free for every state returned by States().
	Actions(s State) []Action

	// NextStates enumerates the states reachable by taking a in s.
	// Duplicate-free; may include zero-probability successors.
	NextStates(s State, a Action) []State

	// TransitionProbability reports P(next | s, a), a float in [0,1].
	TransitionProbability(s State, a Action, next State) float64

	// Reward reports the immediate reward of the (s, a, next) move.
	// Any float value is legitimate for in-model transitions.
	Reward(s State, a Action, next State) float64
}

// Transition is one flat row of a tabular model: taking Action in From
// lands in To with probability Prob, paying Reward.
type Transition struct {
	From   State
	Action Action
	To     State
	Prob   float64
	Reward float64
}

// Outcome bundles the probability and reward of a single transition.
type Outcome struct {
	Prob   float64
	Reward float64
}
