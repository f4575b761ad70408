package algebra

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// exprComparer lets cmp.Diff compare *Expr trees using Equal's structural
// semantics instead of comparing unexported fields directly.
var exprComparer = cmp.Comparer(func(a, b *Expr) bool {
	return Equal(a, b)
})

func exprEqualDiff(t *testing.T, want, got *Expr) {
	t.Helper()
	if diff := cmp.Diff(want, got, exprComparer); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplify_FoldsAllConstantSum(t *testing.T) {
	e := SumN(Const(1), Const(2), Const(3), Const(4), Const(5))
	got := Simplify(e)
	exprEqualDiff(t, Const(15), got)
}

func TestSimplify_FoldsAllConstantProduct(t *testing.T) {
	e := ProductN(Const(2), Const(3), Const(4))
	got := Simplify(e)
	exprEqualDiff(t, Const(24), got)
}

func TestSimplify_MixedSumKeepsOneTrailingConst(t *testing.T) {
	e := SumN(Var("x"), Const(1), Const(2), Var("y"))
	got := Simplify(e)
	if got.Kind != KindSum {
		t.Fatalf("Kind = %v, want KindSum", got.Kind)
	}
	if len(got.Args) != 3 {
		t.Fatalf("len(Args) = %d, want 3 (x, y, folded-const)", len(got.Args))
	}
	var sawConst bool
	for _, a := range got.Args {
		if a.Kind == KindConst {
			sawConst = true
			if a.Value != 3 {
				t.Errorf("folded const = %v, want 3", a.Value)
			}
		}
	}
	if !sawConst {
		t.Errorf("no folded constant found among %v", got.Args)
	}
}

func TestSimplify_SumWithNoConstantChildrenIsUnfolded(t *testing.T) {
	e := SumN(Var("x"), Var("y"))
	got := Simplify(e)
	exprEqualDiff(t, SumN(Var("x"), Var("y")), got)
}

func TestSimplify_EmptySumFoldsToZero(t *testing.T) {
	got := Simplify(SumN())
	exprEqualDiff(t, Const(0), got)
}

func TestSimplify_EmptyProductFoldsToOne(t *testing.T) {
	got := Simplify(ProductN())
	exprEqualDiff(t, Const(1), got)
}

func TestSimplify_PowerRecursesIntoChildren(t *testing.T) {
	e := Power(SumN(Const(1), Const(2)), Const(3))
	got := Simplify(e)
	exprEqualDiff(t, Power(Const(3), Const(3)), got)
}

func TestSimplify_IsIdempotent(t *testing.T) {
	// Simplify rewrites in place, so once and twice are the same node: compare
	// each against an independently built tree instead of against each other.
	want := SumN(Var("x"), Const(3))
	e := SumN(Var("x"), Const(1), Const(2))
	once := Simplify(e)
	exprEqualDiff(t, want, once)
	twice := Simplify(once)
	exprEqualDiff(t, want, twice)
}

func TestEngine_RegisteredAccelUsedWhenPresent(t *testing.T) {
	var eng Engine
	var called bool
	eng.RegisterAddVec(func(a, b, out []float64) error {
		called = true
		for i := range a {
			out[i] = a[i] + b[i]
		}
		return nil
	})

	e := SumN(Const(1), Const(2), Const(3))
	got := eng.Simplify(e)
	exprEqualDiff(t, Const(6), got)
	if !called {
		t.Errorf("registered accelerator was never invoked")
	}
}

func TestEngine_AccelFailureFallsBackToScalar(t *testing.T) {
	var eng Engine
	eng.RegisterAddVec(func(a, b, out []float64) error {
		return errors.New("accelerator unavailable")
	})

	e := SumN(Const(1), Const(2), Const(3), Const(4))
	got := eng.Simplify(e)
	exprEqualDiff(t, Const(10), got)
}

func TestSimplify_PreservesValue(t *testing.T) {
	// Sum/Product value is invariant under Simplify regardless of how many
	// constants happen to be present.
	cases := []struct {
		e, want *Expr
	}{
		{SumN(Const(1), Const(2), Const(3)), Const(6)},
		{SumN(Const(1), Var("x")), SumN(Var("x"), Const(1))},
		{ProductN(Const(2), Const(5), Var("y")), ProductN(Var("y"), Const(10))},
	}
	for _, c := range cases {
		before := c.e.String()
		got := Simplify(c.e)
		if got == nil {
			t.Errorf("Simplify(%s) = nil", before)
		}
		exprEqualDiff(t, c.want, got)
	}
}
