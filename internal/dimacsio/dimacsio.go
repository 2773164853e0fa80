// Package dimacsio reads DIMACS CNF instance files into a sat.ClauseStore.
package dimacsio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/cbrennan/dplls/internal/sat"
)

// FormatError is a typed parse error carrying the operation that failed, so
// callers can branch on Op instead of substring-matching Error().
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dimacsio: %s: %s", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// builder adapts the github.com/rhartert/dimacs dimacs.Builder interface
// (Problem/Clause/Comment) to a sat.ClauseStore.
type builder struct {
	nVars   int
	clauses []sat.Clause
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instance of type %q are not supported", problem)
	}
	b.nVars = nVars
	b.clauses = make([]sat.Clause, 0, nClauses)
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	c := make(sat.Clause, len(tmpClause))
	for i, v := range tmpClause {
		c[i] = sat.Literal(v)
	}
	b.clauses = append(b.clauses, c)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // comments carry no semantic content
}

// reader opens filename, transparently gzip-decompressing it when the name
// ends in ".gz".
func reader(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(f)
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, err
		}
		rc = gz
	}
	return rc, nil
}

// LoadClauseStore parses the DIMACS CNF file at filename and returns the
// resulting sat.ClauseStore: leading comment lines, a "p cnf N M" header,
// then M clauses of whitespace-separated literals terminated by 0.
func LoadClauseStore(filename string) (*sat.ClauseStore, error) {
	rc, err := reader(filename)
	if err != nil {
		return nil, &FormatError{Op: "open", Err: err}
	}
	defer rc.Close()

	b := &builder{}
	if err := dimacs.ReadBuilder(rc, b); err != nil {
		return nil, &FormatError{Op: "parse", Err: err}
	}

	return sat.NewClauseStore(b.nVars, b.clauses), nil
}
