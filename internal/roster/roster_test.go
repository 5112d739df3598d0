package roster

import "testing"

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := NewGenerator(42).Generate(5)
	b := NewGenerator(42).Generate(5)

	if len(a) != 5 || len(b) != 5 {
		t.Fatalf("lengths %d/%d want 5", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("roster diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateParamsWithinRanges(t *testing.T) {
	params := NewGenerator(7).Generate(50)
	seen := make(map[string]bool, len(params))

	for _, p := range params {
		if err := p.Validate(); err != nil {
			t.Fatalf("generated invalid params: %v", err)
		}
		if p.Capability < 1 || p.Capability >= 10 {
			t.Fatalf("%s: capability %v out of [1,10)", p.Name, p.Capability)
		}
		if p.ResourceNeed < 5 || p.ResourceNeed >= 15 {
			t.Fatalf("%s: resource_need %v out of [5,15)", p.Name, p.ResourceNeed)
		}
		if p.Selfishness < 0 || p.Selfishness >= 1 {
			t.Fatalf("%s: selfishness %v out of [0,1)", p.Name, p.Selfishness)
		}
		if seen[p.Name] {
			t.Fatalf("duplicate generated name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestGenerateNumbersAcrossBatches(t *testing.T) {
	g := NewGenerator(1)
	first := g.Generate(2)
	second := g.Generate(2)

	if first[0].Name != "Agent 1" || first[1].Name != "Agent 2" {
		t.Fatalf("first batch names: %q, %q", first[0].Name, first[1].Name)
	}
	if second[0].Name != "Agent 3" || second[1].Name != "Agent 4" {
		t.Fatalf("second batch names: %q, %q", second[0].Name, second[1].Name)
	}
}
