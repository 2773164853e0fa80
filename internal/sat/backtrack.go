package sat

// Backtrack performs chronological backtracking. It requires
// tr.DecisionLevel() >= 1. It pops trail entries down to and including the
// nearest decision mark, undefining each popped variable, then records the
// negation of the decision literal that was just undone as an ordinary
// propagated literal at the now-current (lower) level — as if a virtual
// unit clause had forced it. This realizes the standard DPLL enumeration:
// after exhausting a decision's positive branch, the negative branch is
// explored at the parent level without a new decision frame.
func Backtrack(tr *Trail) {
	var decision Literal

	for {
		i := len(tr.stack) - 1
		entry := tr.stack[i]
		tr.stack = tr.stack[:i]

		if entry == DecisionMark {
			break
		}
		tr.SetVariableUndefined(entry.Var())
		decision = entry
	}

	tr.level--
	tr.nextToPropagate = len(tr.stack)
	tr.AssignLiteralTrue(decision.Negate())
}
