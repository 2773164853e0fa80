package sat

import "strings"

// Clause is a finite ordered sequence of literals, fixed once loaded. Order
// is irrelevant to semantics but kept stable since the Propagator reports
// conflicting clauses by reference for diagnostics.
type Clause []Literal

func (c Clause) String() string {
	if len(c) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c[0].String())
	for _, l := range c[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// ClauseStore holds the formula's clauses plus, per variable, the two
// occurrence lists (clauses containing that variable positively and
// negatively). It is built once at load time and is immutable afterwards:
// every field may be freely aliased by reference without synchronization.
type ClauseStore struct {
	clauses []Clause

	// posOccur[v] and negOccur[v] list the indices into clauses of the
	// clauses in which variable v appears positively / negatively.
	posOccur [][]int
	negOccur [][]int
}

// NewClauseStore builds a ClauseStore for nVars variables from the given
// clauses. Clauses are stored and indexed exactly as given: duplicate
// literals and tautologies (a clause containing both l and -l) are neither
// rejected nor simplified away.
func NewClauseStore(nVars int, clauses []Clause) *ClauseStore {
	cs := &ClauseStore{
		clauses:  clauses,
		posOccur: make([][]int, nVars+1),
		negOccur: make([][]int, nVars+1),
	}
	for i, c := range clauses {
		for _, l := range c {
			v := l.Var()
			if l.IsPositive() {
				cs.posOccur[v] = append(cs.posOccur[v], i)
			} else {
				cs.negOccur[v] = append(cs.negOccur[v], i)
			}
		}
	}
	return cs
}

// ClauseCount returns the number of clauses in the store.
func (cs *ClauseStore) ClauseCount() int {
	return len(cs.clauses)
}

// VariableCount returns N, the number of variables the store was built for.
func (cs *ClauseStore) VariableCount() int {
	return len(cs.posOccur) - 1
}

// ClauseAt returns the literal sequence of the clause at index i.
func (cs *ClauseStore) ClauseAt(i int) Clause {
	return cs.clauses[i]
}

// PositiveOccurrences returns the indices of the clauses in which variable v
// appears positively.
func (cs *ClauseStore) PositiveOccurrences(v int) []int {
	return cs.posOccur[v]
}

// NegativeOccurrences returns the indices of the clauses in which variable v
// appears negatively.
func (cs *ClauseStore) NegativeOccurrences(v int) []int {
	return cs.negOccur[v]
}
