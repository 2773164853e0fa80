package sat

// DefaultDecayPeriod is the number of conflicts between two activity decays,
// exposed through Options so a caller (e.g. a command-line flag) can
// override it.
const DefaultDecayPeriod = 1000

// activityIncrement is the fixed amount added to an activity on every
// literal occurrence in a conflicting clause.
const activityIncrement = 1.0

// Heuristic maintains per-polarity activity counters and selects the next
// decision literal via a deterministic O(N) linear scan with a
// last-index-wins tie-break.
type Heuristic struct {
	posAct []float64
	negAct []float64

	conflicts   int64
	decayPeriod int64
}

// NewHeuristic allocates a Heuristic for nVars variables, all activities
// initially zero.
func NewHeuristic(nVars int, decayPeriod int64) *Heuristic {
	if decayPeriod <= 0 {
		decayPeriod = DefaultDecayPeriod
	}
	return &Heuristic{
		posAct:      make([]float64, nVars+1),
		negAct:      make([]float64, nVars+1),
		decayPeriod: decayPeriod,
	}
}

// SelectNextDecisionLiteral scans variables 1..N, considering only those
// still undefined in tr, and returns the literal of highest activity. Ties
// are broken by scan order: among literals of equal activity the
// last-examined wins, i.e. the highest-indexed variable, with negative
// polarity preferred over positive at the same variable. It returns 0 when
// every variable is assigned.
func (h *Heuristic) SelectNextDecisionLiteral(tr *Trail) Literal {
	var candidate Literal
	max := -1.0

	for v := 1; v <= tr.VariableCount(); v++ {
		if !tr.VariableIsUndefined(v) {
			continue
		}
		if h.posAct[v] >= max {
			max = h.posAct[v]
			candidate = Literal(v)
		}
		if h.negAct[v] >= max {
			max = h.negAct[v]
			candidate = Literal(-v)
		}
	}

	return candidate
}

// BumpActivitiesForConflict increments the conflict counter, decaying every
// activity (halving) when the counter reaches a multiple of the decay
// period, then bumps the activity of every literal in c.
func (h *Heuristic) BumpActivitiesForConflict(c Clause) {
	h.conflicts++
	if h.conflicts%h.decayPeriod == 0 {
		h.decay()
	}
	for _, l := range c {
		if l.IsPositive() {
			h.posAct[l.Var()] += activityIncrement
		} else {
			h.negAct[l.Var()] += activityIncrement
		}
	}
}

func (h *Heuristic) decay() {
	for v := range h.posAct {
		h.posAct[v] /= 2
		h.negAct[v] /= 2
	}
}

// Conflicts returns the number of conflicts observed so far.
func (h *Heuristic) Conflicts() int64 {
	return h.conflicts
}
