package dimacs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rhartert/yass/internal/sat"
)

func TestProofWriter_AddClauseWritesDIMACSLiterals(t *testing.T) {
	var buf bytes.Buffer
	pw := NewProofWriter(&buf)

	if err := pw.AddClause([]sat.Literal{sat.PositiveLiteral(0), sat.NegativeLiteral(2)}); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	if err := pw.Flush(); err != nil {
		t.Fatalf("Flush: %s", err)
	}

	want := "1 -3 0\n"
	if got := buf.String(); got != want {
		t.Errorf("AddClause() wrote %q, want %q", got, want)
	}
}

func TestProofWriter_NeverEmitsDeletionRecords(t *testing.T) {
	var buf bytes.Buffer
	pw := NewProofWriter(&buf)
	for i := 0; i < 5; i++ {
		if err := pw.AddClause([]sat.Literal{sat.PositiveLiteral(i)}); err != nil {
			t.Fatalf("AddClause: %s", err)
		}
	}
	pw.Flush()
	if strings.Contains(buf.String(), "d ") {
		t.Errorf("proof log contains a deletion record:\n%s", buf.String())
	}
}

func TestProofWriter_EmptyClauseWritesJustZero(t *testing.T) {
	var buf bytes.Buffer
	pw := NewProofWriter(&buf)
	if err := pw.AddClause(nil); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	pw.Flush()
	if got, want := buf.String(), "0\n"; got != want {
		t.Errorf("AddClause(nil) wrote %q, want %q", got, want)
	}
}
