package sat

import "log"

// Tracer receives optional observability callbacks from the search loop.
// The hot BCP path must not pay for them when untraced, so NewSolver
// substitutes NoopTracer for a nil Options.Tracer and Propagate checks for
// nil before calling out.
type Tracer interface {
	// OnDecision is called each time the Search Controller branches on a
	// new decision literal.
	OnDecision(l Literal)

	// OnConflict is called each time Propagate finds a conflicting clause.
	OnConflict(c Clause)

	// OnBacktrack is called each time the Search Controller backtracks.
	OnBacktrack(level int)
}

// NoopTracer implements Tracer with no-op methods. It is the default used
// when a caller does not supply its own Tracer.
type NoopTracer struct{}

func (NoopTracer) OnDecision(Literal) {}
func (NoopTracer) OnConflict(Clause)  {}
func (NoopTracer) OnBacktrack(int)    {}

// LoggingTracer implements Tracer by writing one line per event to Logger.
// A nil Logger falls back to log.Default().
type LoggingTracer struct {
	Logger *log.Logger
}

func (t LoggingTracer) logger() *log.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return log.Default()
}

func (t LoggingTracer) OnDecision(l Literal) {
	t.logger().Printf("decision: %s", l)
}

func (t LoggingTracer) OnConflict(c Clause) {
	t.logger().Printf("conflict: %s", c)
}

func (t LoggingTracer) OnBacktrack(level int) {
	t.logger().Printf("backtrack: level=%d", level)
}
