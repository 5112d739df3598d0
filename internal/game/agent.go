// Package game implements the repeated resource-allocation game: agents bid
// for a shared replenishing pool, receive proportional allocations, earn
// contribution-based rewards, and adapt their bidding strategy from reward
// feedback.
package game

import "fmt"

// Strategy multipliers applied after each round's reward.
const (
	strategyGain  = 1.1 // Reward was positive
	strategyDecay = 0.9 // Reward was zero or negative
)

// Params holds the static parameters an agent is constructed with.
type Params struct {
	Name         string  `yaml:"name" json:"name"`
	Capability   float64 `yaml:"capability" json:"capability"`       // Contribution produced per unit of resource
	ResourceNeed float64 `yaml:"resource_need" json:"resource_need"` // Baseline demand per round
	Selfishness  float64 `yaml:"selfishness" json:"selfishness"`     // Bid inflation factor
}

// Validate checks the non-negativity invariants on agent parameters.
func (p Params) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("agent name must not be empty")
	}
	if p.Capability < 0 {
		return fmt.Errorf("agent %s: capability %v is negative", p.Name, p.Capability)
	}
	if p.ResourceNeed < 0 {
		return fmt.Errorf("agent %s: resource_need %v is negative", p.Name, p.ResourceNeed)
	}
	if p.Selfishness < 0 {
		return fmt.Errorf("agent %s: selfishness %v is negative", p.Name, p.Selfishness)
	}
	return nil
}

// Agent is one self-interested participant in the game. The static fields
// never change after construction; the mutable state is updated exactly once
// per round by the game loop.
type Agent struct {
	Name         string
	Capability   float64
	ResourceNeed float64
	Selfishness  float64

	Strategy           float64 // Learning multiplier, starts at 1.0, stays strictly positive
	Payoff             float64 // Reward accumulated across rounds
	ResourcesAllocated float64 // Total resources received across rounds
}

// NewAgent constructs an agent from validated parameters.
func NewAgent(p Params) (*Agent, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid agent params: %w", err)
	}
	return &Agent{
		Name:         p.Name,
		Capability:   p.Capability,
		ResourceNeed: p.ResourceNeed,
		Selfishness:  p.Selfishness,
		Strategy:     1.0,
	}, nil
}

// Bid computes the agent's bid against the pool's remaining resources:
// need scaled by selfishness and the learned strategy, clamped so the bid
// never exceeds what the agent can see available. Does not mutate the agent.
func (a *Agent) Bid(remaining float64) float64 {
	bid := a.ResourceNeed * (1 + a.Selfishness*a.Strategy)
	if bid > remaining {
		return remaining
	}
	return bid
}

// UpdateStrategy scales the strategy multiplier from reward feedback.
// A zero reward counts as non-positive and decays the strategy.
func (a *Agent) UpdateStrategy(reward float64) {
	if reward > 0 {
		a.Strategy *= strategyGain
	} else {
		a.Strategy *= strategyDecay
	}
}
