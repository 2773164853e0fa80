package sat

// Propagate drives Boolean Constraint Propagation to a fixpoint, consuming
// trail entries from Trail.NextToPropagate() forward. Every newly assigned
// literal is checked against every clause containing its negation, since
// those are exactly the clauses that can become unit or conflicting as a
// consequence of the assignment.
//
// Propagate returns the conflicting Clause if one is found, or nil at
// fixpoint (no unprocessed trail entries remain).
func Propagate(cs *ClauseStore, tr *Trail, heur *Heuristic, tracer Tracer) Clause {
	for tr.NextToPropagate() < tr.Len() {
		p := tr.At(tr.NextToPropagate())
		tr.nextToPropagate++

		// Clauses that can become conflicting or unit as a consequence of p
		// becoming true are exactly those containing -p.
		var occur []int
		if p.IsPositive() {
			occur = cs.NegativeOccurrences(p.Var())
		} else {
			occur = cs.PositiveOccurrences(p.Var())
		}

		for _, ci := range occur {
			c := cs.ClauseAt(ci)

			satisfied := false
			undefinedCount := 0
			var lastUndefined Literal

			for _, l := range c {
				switch tr.ValueOfLiteral(l) {
				case True:
					satisfied = true
				case Undefined:
					undefinedCount++
					lastUndefined = l
				}
				if satisfied {
					break
				}
			}

			if satisfied {
				continue
			}

			switch undefinedCount {
			case 0:
				heur.BumpActivitiesForConflict(c)
				if tracer != nil {
					tracer.OnConflict(c)
				}
				return c
			case 1:
				tr.AssignLiteralTrue(lastUndefined)
			}
		}
	}

	return nil
}
