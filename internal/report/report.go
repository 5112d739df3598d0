// Package report renders round traces and time-series charts from game
// history to a console writer.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/talgya/allocsim/internal/game"
)

// Reporter writes the per-round trace and the end-of-run summary. Agents are
// always printed in their input order.
type Reporter struct {
	w     io.Writer
	names []string
}

// New creates a reporter that prints agents in the given order.
func New(w io.Writer, names []string) *Reporter {
	return &Reporter{w: w, names: names}
}

// Round prints one round's trace: each agent's granted amount and cumulative
// payoff. Wire this to Game.OnRound.
func (r *Reporter) Round(s game.RoundSummary) {
	fmt.Fprintf(r.w, "\n--- Round %d ---\n", s.Round)
	for _, name := range r.names {
		fmt.Fprintf(r.w, "%s: Allocated %.2f, Payoff %.2f\n",
			name, s.Allocations[name], s.Payoffs[name])
	}
}

// Summary prints the final standings sorted by total payoff, highest first.
func (r *Reporter) Summary(agents []*game.Agent) {
	ranked := make([]*game.Agent, len(agents))
	copy(ranked, agents)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Payoff > ranked[j].Payoff
	})

	fmt.Fprintf(r.w, "\n=== Final Standings ===\n")
	for i, a := range ranked {
		fmt.Fprintf(r.w, "%d. %s: payoff %s, resources %s, strategy %.3f\n",
			i+1, a.Name,
			humanize.CommafWithDigits(a.Payoff, 2),
			humanize.CommafWithDigits(a.ResourcesAllocated, 2),
			a.Strategy)
	}
}
