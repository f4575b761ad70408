package dimacs

import (
	"bufio"
	"io"
	"strconv"

	"github.com/rhartert/yass/internal/sat"
)

// ProofWriter logs added clauses in DIMACS-literal form, one per line
// terminated by "0", the DRAT convention for a clause addition. It never
// emits deletion records ("d " lines): this module does not learn or
// forget clauses, so there is never anything to delete.
type ProofWriter struct {
	w   *bufio.Writer
	buf []byte
}

// NewProofWriter returns a ProofWriter that appends to w.
func NewProofWriter(w io.Writer) *ProofWriter {
	return &ProofWriter{w: bufio.NewWriter(w)}
}

// AddClause logs lits as a single clause-addition line.
func (p *ProofWriter) AddClause(lits []sat.Literal) error {
	p.buf = p.buf[:0]
	for _, l := range lits {
		n := l.VarID() + 1
		if !l.IsPositive() {
			n = -n
		}
		p.buf = strconv.AppendInt(p.buf, int64(n), 10)
		p.buf = append(p.buf, ' ')
	}
	p.buf = append(p.buf, '0', '\n')
	_, err := p.w.Write(p.buf)
	return err
}

// Flush writes any buffered bytes to the underlying writer.
func (p *ProofWriter) Flush() error {
	return p.w.Flush()
}
