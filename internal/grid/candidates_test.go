package grid

import "testing"

func TestCandidates_SetHasClear(t *testing.T) {
	var c Candidates
	if !c.IsEmpty() {
		t.Error("zero value should be empty")
	}
	c = c.Set(2).Set(6).Set(7).Set(9)
	if c.Count() != 4 {
		t.Errorf("Count() = %d, want 4", c.Count())
	}
	if !c.Has(2) || !c.Has(9) {
		t.Error("expected 2 and 9 to be candidates")
	}
	c = c.Clear(6)
	if c.Has(6) {
		t.Error("6 should have been cleared")
	}
	if got := c.String(); got != "279" {
		t.Errorf("String() = %q, want %q", got, "279")
	}
}

func TestCandidates_Only(t *testing.T) {
	c := NewCandidates([]int{5})
	v, ok := c.Only()
	if !ok || v != 5 {
		t.Errorf("Only() = (%d, %v), want (5, true)", v, ok)
	}
	if _, ok := All.Only(); ok {
		t.Error("All should not report a single candidate")
	}
}

func TestCandidates_OutOfRangeIgnored(t *testing.T) {
	c := NewCandidates([]int{0, 1, 10, 5})
	if c.Count() != 2 {
		t.Errorf("Count() = %d, want 2 (out-of-range digits ignored)", c.Count())
	}
}

func TestCandidates_SetAlgebra(t *testing.T) {
	a := NewCandidates([]int{1, 2, 3})
	b := NewCandidates([]int{2, 3, 4})
	if got := a.Intersect(b).String(); got != "23" {
		t.Errorf("Intersect = %q, want %q", got, "23")
	}
	if got := a.Union(b).String(); got != "1234" {
		t.Errorf("Union = %q, want %q", got, "1234")
	}
	if got := a.Subtract(b).String(); got != "1" {
		t.Errorf("Subtract = %q, want %q", got, "1")
	}
}
