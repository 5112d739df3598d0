package game

import "testing"

func TestShapleySharesSumToOne(t *testing.T) {
	contributions := map[string]float64{
		"Agent A": 49.13,
		"Agent B": 54.50,
		"Agent C": 53.45,
	}
	total := 0.0
	for _, c := range contributions {
		total += c
	}

	shares := ShapleyShares(contributions, total)

	sum := 0.0
	for name, share := range shares {
		if share < 0 || share > 1 {
			t.Fatalf("%s: share %v out of [0,1]", name, share)
		}
		sum += share
	}
	if !approx(sum, 1, 1e-9) {
		t.Fatalf("share sum=%v want 1", sum)
	}
}

func TestShapleySharesProportional(t *testing.T) {
	shares := ShapleyShares(map[string]float64{"A": 30, "B": 10}, 40)
	if !approx(shares["A"], 0.75, 1e-12) || !approx(shares["B"], 0.25, 1e-12) {
		t.Fatalf("shares=%v want A:0.75 B:0.25", shares)
	}
}

func TestShapleySharesZeroTotal(t *testing.T) {
	shares := ShapleyShares(map[string]float64{"A": 0, "B": 0}, 0)
	for name, share := range shares {
		if share != 0 {
			t.Fatalf("%s: share=%v want 0", name, share)
		}
	}
	if len(shares) != 2 {
		t.Fatalf("len(shares)=%d want 2", len(shares))
	}
}
