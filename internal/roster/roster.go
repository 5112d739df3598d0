// Package roster generates randomized agent parameters for experiment runs.
package roster

import (
	"fmt"
	"math/rand"

	"github.com/talgya/allocsim/internal/game"
)

// Generator produces agent parameter sets from a seeded source, so the same
// seed always yields the same roster.
type Generator struct {
	rng  *rand.Rand
	next int
}

// NewGenerator creates a roster generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		next: 1,
	}
}

// Generate creates a batch of agent parameters. Capabilities land in [1, 10),
// resource needs in [5, 15), selfishness in [0, 1) — a mix of productive and
// greedy participants around the scale of the demo roster.
func (g *Generator) Generate(count int) []game.Params {
	params := make([]game.Params, 0, count)
	for i := 0; i < count; i++ {
		params = append(params, game.Params{
			Name:         fmt.Sprintf("Agent %d", g.next),
			Capability:   1 + g.rng.Float64()*9,
			ResourceNeed: 5 + g.rng.Float64()*10,
			Selfishness:  g.rng.Float64(),
		})
		g.next++
	}
	return params
}
