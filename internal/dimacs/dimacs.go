// Package dimacs reads the DIMACS CNF text format into a Builder and writes
// a minimal DRAT-like clause log.
package dimacs

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/yass/internal/sat"
)

// Builder receives the variables and clauses found while parsing a DIMACS
// instance, in file order. It is satisfied by *sat.Solver.
type Builder interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

// ParseError reports a malformed DIMACS file, with the 1-based line number
// on which the problem was detected.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

func newReader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// LoadFile opens filename (transparently ungzipping it if gzipped is true)
// and calls Load on its contents.
func LoadFile(filename string, gzipped bool, dw Builder) error {
	r, err := newReader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()
	return Load(r, dw)
}

// Load parses a DIMACS CNF instance from r, feeding variables and clauses
// to dw in file order. It requires exactly one problem line ("p cnf <vars>
// <clauses>") appearing before any clause, rejects variables outside
// [1, vars], and rejects a clause count that disagrees with the problem
// line. Comments ('c' lines) may appear anywhere. A trailing '%' line ends
// the instance early, per the (nonstandard but common) convention some
// DIMACS generators use for trailer data.
func Load(r io.Reader, dw Builder) error {
	s := bufio.NewScanner(r)

	lineNo := 0
	problemSeen := false
	nVars := 0
	nClauses := 0
	clauseCount := 0
	var clause []sat.Literal

	for s.Scan() {
		lineNo++
		line := s.Text()
		if line == "" || line[0] == 'c' {
			continue
		}
		if line == "%" {
			break
		}

		if line[0] == 'p' {
			if clauseCount > 0 || len(clause) > 0 {
				return &ParseError{lineNo, "problem line appears after clauses"}
			}
			if problemSeen {
				return &ParseError{lineNo, "multiple problem lines"}
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" {
				return &ParseError{lineNo, fmt.Sprintf("malformed problem line %q", line)}
			}
			if fields[1] != "cnf" {
				return &ParseError{lineNo, fmt.Sprintf("instance of type %q is not supported", fields[1])}
			}
			var err error
			nVars, err = strconv.Atoi(fields[2])
			if err != nil || nVars < 0 {
				return &ParseError{lineNo, fmt.Sprintf("invalid variable count %q", fields[2])}
			}
			nClauses, err = strconv.Atoi(fields[3])
			if err != nil || nClauses < 0 {
				return &ParseError{lineNo, fmt.Sprintf("invalid clause count %q", fields[3])}
			}
			problemSeen = true
			for i := 0; i < nVars; i++ {
				dw.AddVariable()
			}
			continue
		}

		if !problemSeen {
			return &ParseError{lineNo, "clause appears before problem line"}
		}

		for _, f := range strings.Fields(line) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return &ParseError{lineNo, fmt.Sprintf("invalid literal %q: %s", f, err)}
			}
			if n == 0 {
				if err := dw.AddClause(clause); err != nil {
					return err
				}
				clauseCount++
				clause = clause[:0]
				continue
			}

			v := n
			if v < 0 {
				v = -v
			}
			if v > nVars {
				return &ParseError{lineNo, fmt.Sprintf("variable %d out of range [1, %d]", v, nVars)}
			}
			if n < 0 {
				clause = append(clause, sat.NegativeLiteral(-n-1))
			} else {
				clause = append(clause, sat.PositiveLiteral(n-1))
			}
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	if !problemSeen {
		return &ParseError{lineNo, "header line not found"}
	}
	if len(clause) > 0 {
		return &ParseError{lineNo, "incomplete clause at end of file (missing terminating 0)"}
	}
	if clauseCount != nClauses {
		return &ParseError{lineNo, fmt.Sprintf("problem line declares %d clauses, found %d", nClauses, clauseCount)}
	}
	return nil
}
