package sat

import "fmt"

// Literal is a nonzero signed integer: a positive value names a variable,
// a negative value names its negation, and the variable named is the
// literal's absolute value. The literal 0 is reserved as the decision mark
// on the Trail (see DecisionMark) and never denotes a variable.
type Literal int

// DecisionMark is the sentinel Trail entry pushed by Trail.PushDecisionMark
// to record a decision-level boundary. It is never a valid literal.
const DecisionMark Literal = 0

// Var returns the variable this literal names, in [1..N].
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// IsPositive reports whether l names its variable positively.
func (l Literal) IsPositive() bool {
	return l > 0
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}
