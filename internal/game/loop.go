package game

import "fmt"

// History records the per-round trajectory of a finished run: for each agent
// name, the cumulative payoff and the amount allocated in every round, in
// round order. Consumed by the reporter and the results recorder.
type History struct {
	Rounds      int
	Payoffs     map[string][]float64
	Allocations map[string][]float64
}

// RoundSummary is the full outcome of one completed round, handed to the
// OnRound callback. All maps are keyed by agent name.
type RoundSummary struct {
	Round       int // 1-based
	Bids        map[string]float64
	Allocations map[string]float64
	Shares      map[string]float64
	Rewards     map[string]float64
	Payoffs     map[string]float64 // Cumulative payoff after this round
}

// Game drives the repeated allocation game over a fixed set of agents and a
// single resource pool. Rounds run strictly sequentially; agents are always
// processed in their input order so traces and history stay deterministic.
type Game struct {
	Agents []*Agent
	Pool   *ResourcePool

	// OnRound, when set, is invoked after each completed round with that
	// round's summary. Used by the console reporter.
	OnRound func(RoundSummary)
}

// NewGame wires agents to a pool, rejecting duplicate or missing pieces.
func NewGame(agents []*Agent, pool *ResourcePool) (*Game, error) {
	if len(agents) == 0 {
		return nil, fmt.Errorf("game needs at least one agent")
	}
	if pool == nil {
		return nil, fmt.Errorf("game needs a resource pool")
	}
	seen := make(map[string]bool, len(agents))
	for _, a := range agents {
		if a == nil {
			return nil, fmt.Errorf("game agents must not be nil")
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("duplicate agent name %q", a.Name)
		}
		seen[a.Name] = true
	}
	return &Game{Agents: agents, Pool: pool}, nil
}

// Run plays the given number of rounds and returns the accumulated history.
// Each round: replenish the pool, collect all bids against the same
// remaining-supply snapshot, allocate the batch, attribute value from
// capability-weighted contributions, then pay rewards and update strategies.
// A round count of zero is a valid no-op run with empty history series.
func (g *Game) Run(rounds int) (*History, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("round count %d must not be negative", rounds)
	}

	hist := &History{
		Rounds:      rounds,
		Payoffs:     make(map[string][]float64, len(g.Agents)),
		Allocations: make(map[string][]float64, len(g.Agents)),
	}
	for _, a := range g.Agents {
		hist.Payoffs[a.Name] = make([]float64, 0, rounds)
		hist.Allocations[a.Name] = make([]float64, 0, rounds)
	}

	for round := 1; round <= rounds; round++ {
		g.Pool.Replenish()

		// All bids see the same pre-allocation snapshot of the supply.
		remaining := g.Pool.Remaining()
		bids := make(map[string]float64, len(g.Agents))
		for _, a := range g.Agents {
			bids[a.Name] = a.Bid(remaining)
		}

		allocation := g.Pool.Allocate(bids)

		contributions := make(map[string]float64, len(g.Agents))
		totalContribution := 0.0
		for _, a := range g.Agents {
			allocated := allocation[a.Name]
			a.ResourcesAllocated += allocated
			contributions[a.Name] = a.Capability * allocated
			totalContribution += contributions[a.Name]
		}

		shares := ShapleyShares(contributions, totalContribution)

		rewards := make(map[string]float64, len(g.Agents))
		payoffs := make(map[string]float64, len(g.Agents))
		for _, a := range g.Agents {
			reward := shares[a.Name] * g.Pool.Total()
			a.Payoff += reward
			a.UpdateStrategy(reward)
			rewards[a.Name] = reward
			payoffs[a.Name] = a.Payoff

			hist.Payoffs[a.Name] = append(hist.Payoffs[a.Name], a.Payoff)
			hist.Allocations[a.Name] = append(hist.Allocations[a.Name], allocation[a.Name])
		}

		if g.OnRound != nil {
			g.OnRound(RoundSummary{
				Round:       round,
				Bids:        bids,
				Allocations: allocation,
				Shares:      shares,
				Rewards:     rewards,
				Payoffs:     payoffs,
			})
		}
	}

	return hist, nil
}
