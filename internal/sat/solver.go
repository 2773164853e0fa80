package sat

import (
	"fmt"
)

// Options configures a Solver.
type Options struct {
	// DecayPeriod is K, the number of conflicts between two activity
	// decays. Zero selects DefaultDecayPeriod.
	DecayPeriod int64

	// Tracer receives optional decision/conflict/backtrack callbacks. A nil
	// Tracer selects NoopTracer, whose callbacks do nothing.
	Tracer Tracer
}

// DefaultOptions are sane defaults a command-line driver can start from
// without having to set every field.
var DefaultOptions = Options{
	DecayPeriod: DefaultDecayPeriod,
}

// Solver orchestrates the Clause Store, Trail, and Heuristic through the
// DPLL control loop. It owns all mutable search state exclusively: no
// reentrancy, no globals.
type Solver struct {
	cs   *ClauseStore
	tr   *Trail
	heur *Heuristic

	tracer Tracer

	// Search statistics, exported for diagnostics.
	Decisions    int64
	Propagations int64

	// propRate tracks the running average of propagations per Propagate
	// call, a cheap O(1) diagnostic.
	propRate EMA
}

// NewSolver builds a Solver over cs with the given options.
func NewSolver(cs *ClauseStore, opts Options) *Solver {
	decay := opts.DecayPeriod
	if decay <= 0 {
		decay = DefaultDecayPeriod
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = NoopTracer{}
	}
	return &Solver{
		cs:       cs,
		tr:       NewTrail(cs.VariableCount()),
		heur:     NewHeuristic(cs.VariableCount(), decay),
		tracer:   tracer,
		propRate: NewEMA(0.9),
	}
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver(cs *ClauseStore) *Solver {
	return NewSolver(cs, DefaultOptions)
}

// Model returns the satisfying assignment found by the last successful
// Solve call, indexed by variable (index 0 unused). Only meaningful after
// Solve has returned Satisfiable.
func (s *Solver) Model() []Value {
	m := make([]Value, len(s.tr.model))
	copy(m, s.tr.model)
	return m
}

// PropagationRate returns the exponential moving average of propagations
// performed per Propagate call (see EMA).
func (s *Solver) PropagationRate() float64 {
	return s.propRate.Val()
}

// Conflicts returns the number of conflicts encountered so far.
func (s *Solver) Conflicts() int64 {
	return s.heur.Conflicts()
}

// Solve runs the DPLL control loop to completion: initial unit propagation,
// then repeated BCP-to-fixpoint, conflict-driven chronological backtrack,
// and decision branching, until the formula is shown satisfiable or
// unsatisfiable. Termination is guaranteed: the trail is bounded by 2N
// entries and every backtrack strictly shrinks the remaining search tree.
func (s *Solver) Solve() Status {
	if !s.checkUnitClauses() {
		return Unsatisfiable
	}

	for {
		beforeLen := s.tr.Len()
		conflict := Propagate(s.cs, s.tr, s.heur, s.tracer)
		s.Propagations += int64(s.tr.Len() - beforeLen)
		s.propRate.Add(float64(s.tr.Len() - beforeLen))

		if conflict != nil {
			if s.tr.DecisionLevel() == 0 {
				return Unsatisfiable
			}
			Backtrack(s.tr)
			s.tracer.OnBacktrack(s.tr.DecisionLevel())
			continue
		}

		d := s.heur.SelectNextDecisionLiteral(s.tr)
		if d == DecisionMark {
			if !s.checkModel() {
				// Indicates a solver bug, never an expected outcome.
				// Reported as a distinct status rather than a panic so
				// the driver can emit the diagnostic line and exit(1)
				// without recovering.
				return ModelCheckFailed
			}
			return Satisfiable
		}

		s.Decisions++
		s.tracer.OnDecision(d)
		s.tr.PushDecisionMark()
		s.tr.AssignLiteralTrue(d)
	}
}

// checkUnitClauses evaluates every clause that is a unit clause as loaded,
// under the (still empty) model. A literal already false means the formula
// is trivially unsatisfiable; undefined means the literal is assigned; true
// means the clause is already satisfied and is skipped.
//
// An empty clause can never become unit or conflicting through BCP (it has
// no literal, so it is never reachable from any occurrence list), so it is
// rejected here instead: an empty clause is unsatisfiable by construction
// and must be caught before the search loop ever starts.
func (s *Solver) checkUnitClauses() bool {
	for i := 0; i < s.cs.ClauseCount(); i++ {
		c := s.cs.ClauseAt(i)
		if len(c) == 0 {
			return false
		}
		if len(c) != 1 {
			continue
		}
		switch s.tr.ValueOfLiteral(c[0]) {
		case False:
			return false
		case Undefined:
			s.tr.AssignLiteralTrue(c[0])
		}
	}
	return true
}

// checkModel re-evaluates every clause under the final model before
// announcing SAT: every clause must have at least one true literal. This
// is a safety net, not an expected failure path.
func (s *Solver) checkModel() bool {
	for i := 0; i < s.cs.ClauseCount(); i++ {
		c := s.cs.ClauseAt(i)
		ok := false
		for _, l := range c {
			if s.tr.ValueOfLiteral(l) == True {
				ok = true
				break
			}
		}
		if !ok {
			fmt.Printf("c model check failed on clause %d: %s\n", i, c)
			return false
		}
	}
	return true
}
