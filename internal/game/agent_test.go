package game

import (
	"math"
	"testing"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestBidFormula(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		strategy  float64
		remaining float64
		want      float64
	}{
		{"base strategy", Params{Name: "A", ResourceNeed: 10, Selfishness: 0.5}, 1.0, 100, 15},
		{"no selfishness", Params{Name: "B", ResourceNeed: 8, Selfishness: 0}, 1.0, 100, 8},
		{"grown strategy", Params{Name: "C", ResourceNeed: 12, Selfishness: 0.7}, 1.1, 100, 12 * (1 + 0.7*1.1)},
		{"clamped to remaining", Params{Name: "D", ResourceNeed: 10, Selfishness: 0.5}, 1.0, 9, 9},
		{"zero need", Params{Name: "E", ResourceNeed: 0, Selfishness: 0.9}, 1.0, 100, 0},
	}

	for _, tt := range tests {
		a, err := NewAgent(tt.params)
		if err != nil {
			t.Fatalf("%s: NewAgent: %v", tt.name, err)
		}
		a.Strategy = tt.strategy
		got := a.Bid(tt.remaining)
		if !approx(got, tt.want, 1e-12) {
			t.Fatalf("%s: bid=%v want %v", tt.name, got, tt.want)
		}
	}
}

func TestBidDoesNotMutateAgent(t *testing.T) {
	a, err := NewAgent(Params{Name: "A", Capability: 5, ResourceNeed: 10, Selfishness: 0.5})
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	before := *a
	a.Bid(30)
	if *a != before {
		t.Fatalf("Bid mutated agent: before=%+v after=%+v", before, *a)
	}
}

func TestUpdateStrategy(t *testing.T) {
	tests := []struct {
		name   string
		reward float64
		want   float64
	}{
		{"positive reward grows", 9.38, 1.1},
		{"negative reward decays", -3, 0.9},
		{"zero reward decays", 0, 0.9},
	}

	for _, tt := range tests {
		a, err := NewAgent(Params{Name: "A"})
		if err != nil {
			t.Fatalf("%s: NewAgent: %v", tt.name, err)
		}
		a.UpdateStrategy(tt.reward)
		if !approx(a.Strategy, tt.want, 1e-12) {
			t.Fatalf("%s: strategy=%v want %v", tt.name, a.Strategy, tt.want)
		}
	}
}

func TestStrategyStaysPositive(t *testing.T) {
	a, err := NewAgent(Params{Name: "A"})
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	for i := 0; i < 500; i++ {
		a.UpdateStrategy(-1)
		if a.Strategy <= 0 {
			t.Fatalf("strategy went non-positive after %d decays: %v", i+1, a.Strategy)
		}
	}
}

func TestNewAgentRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"empty name", Params{Capability: 1, ResourceNeed: 1}},
		{"negative capability", Params{Name: "A", Capability: -1}},
		{"negative need", Params{Name: "A", ResourceNeed: -0.5}},
		{"negative selfishness", Params{Name: "A", Selfishness: -2}},
	}

	for _, tt := range tests {
		if _, err := NewAgent(tt.params); err == nil {
			t.Fatalf("%s: expected error, got none", tt.name)
		}
	}
}

func TestNewAgentInitialState(t *testing.T) {
	a, err := NewAgent(Params{Name: "A", Capability: 5, ResourceNeed: 10, Selfishness: 0.5})
	if err != nil {
		t.Fatalf("NewAgent: %v", err)
	}
	if a.Strategy != 1.0 {
		t.Fatalf("initial strategy=%v want 1.0", a.Strategy)
	}
	if a.Payoff != 0 || a.ResourcesAllocated != 0 {
		t.Fatalf("initial accumulators not zero: payoff=%v resources=%v", a.Payoff, a.ResourcesAllocated)
	}
}
