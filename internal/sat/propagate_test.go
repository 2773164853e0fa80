package sat

import "testing"

func TestPropagate_unitChain(t *testing.T) {
	// 1 -> (by clause {-1, 2}) 2 -> (by clause {-2, 3}) 3
	cs := NewClauseStore(3, []Clause{
		{-1, 2},
		{-2, 3},
	})
	tr := NewTrail(3)
	heur := NewHeuristic(3, DefaultDecayPeriod)

	tr.AssignLiteralTrue(Literal(1))

	if conflict := Propagate(cs, tr, heur, NoopTracer{}); conflict != nil {
		t.Fatalf("Propagate(): got conflict %s, want none", conflict)
	}
	if got, want := tr.ValueOfLiteral(Literal(2)), True; got != want {
		t.Errorf("ValueOfLiteral(2): got %s, want %s", got, want)
	}
	if got, want := tr.ValueOfLiteral(Literal(3)), True; got != want {
		t.Errorf("ValueOfLiteral(3): got %s, want %s", got, want)
	}
	if got, want := tr.NextToPropagate(), tr.Len(); got != want {
		t.Errorf("NextToPropagate(): got %d, want %d (fixpoint)", got, want)
	}
}

func TestPropagate_conflict(t *testing.T) {
	cs := NewClauseStore(2, []Clause{
		{-1, 2},
		{-1, -2},
	})
	tr := NewTrail(2)
	heur := NewHeuristic(2, DefaultDecayPeriod)

	tr.AssignLiteralTrue(Literal(1))

	conflict := Propagate(cs, tr, heur, NoopTracer{})
	if conflict == nil {
		t.Fatal("Propagate(): got no conflict, want one")
	}
	if got, want := heur.Conflicts(), int64(1); got != want {
		t.Errorf("Conflicts(): got %d, want %d", got, want)
	}
}

func TestPropagate_tautologyNeverConflicts(t *testing.T) {
	cs := NewClauseStore(2, []Clause{{1, -1, 2}})
	tr := NewTrail(2)
	heur := NewHeuristic(2, DefaultDecayPeriod)

	tr.AssignLiteralTrue(Literal(-2))

	if conflict := Propagate(cs, tr, heur, NoopTracer{}); conflict != nil {
		t.Errorf("Propagate(): got conflict %s, want none (tautology)", conflict)
	}
}

func TestPropagate_satisfiedClauseSkipped(t *testing.T) {
	cs := NewClauseStore(2, []Clause{{1, 2}})
	tr := NewTrail(2)
	heur := NewHeuristic(2, DefaultDecayPeriod)

	tr.AssignLiteralTrue(Literal(1))

	if conflict := Propagate(cs, tr, heur, NoopTracer{}); conflict != nil {
		t.Errorf("Propagate(): got conflict %s, want none", conflict)
	}
	if got, want := tr.ValueOfLiteral(Literal(2)), Undefined; got != want {
		t.Errorf("ValueOfLiteral(2): got %s, want %s (clause already satisfied by 1)", got, want)
	}
}
