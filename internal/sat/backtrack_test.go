package sat

import "testing"

func TestBacktrack_flipsDecisionAtParentLevel(t *testing.T) {
	tr := NewTrail(3)

	// Level 0: a propagated literal.
	tr.AssignLiteralTrue(Literal(1))

	// Level 1: a decision plus one of its consequences.
	tr.PushDecisionMark()
	tr.AssignLiteralTrue(Literal(2))
	tr.AssignLiteralTrue(Literal(3))

	Backtrack(tr)

	if got, want := tr.DecisionLevel(), 0; got != want {
		t.Errorf("DecisionLevel(): got %d, want %d", got, want)
	}
	if got, want := tr.ValueOfLiteral(Literal(1)), True; got != want {
		t.Errorf("ValueOfLiteral(1): got %s, want %s (untouched)", got, want)
	}
	if got, want := tr.ValueOfLiteral(Literal(3)), Undefined; got != want {
		t.Errorf("ValueOfLiteral(3): got %s, want %s (undone)", got, want)
	}
	if got, want := tr.ValueOfLiteral(Literal(2)), False; got != want {
		t.Errorf("ValueOfLiteral(2): got %s, want %s (decision flipped)", got, want)
	}
	if got, want := tr.NextToPropagate(), tr.Len()-1; got != want {
		t.Errorf("NextToPropagate(): got %d, want %d (flip still pending)", got, want)
	}
}
