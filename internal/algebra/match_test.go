package algebra

import "testing"

func TestMatch_WildcardMatchesAnything(t *testing.T) {
	env := &Env{}
	if !Match(PatternAny(), Const(42), env) {
		t.Errorf("PatternAny() did not match a constant")
	}
	if !Match(PatternAny(), SumN(Var("x"), Var("y")), env) {
		t.Errorf("PatternAny() did not match a compound expression")
	}
	if len(env.keys) != 0 {
		t.Errorf("PatternAny() recorded a binding: %v", env.keys)
	}
}

func TestMatch_CaptureBindsOnFirstSight(t *testing.T) {
	env := &Env{}
	pattern := SumN(PatternCapture("a"), Const(1))
	term := SumN(Var("x"), Const(1))

	if !Match(pattern, term, env) {
		t.Fatalf("Match failed for %s against %s", pattern, term)
	}
	bound, ok := env.Get("a")
	if !ok {
		t.Fatalf("capture \"a\" was not bound")
	}
	if !Equal(bound, Var("x")) {
		t.Errorf("binding for \"a\" = %s, want x", bound)
	}
}

func TestMatch_RepeatedCaptureRequiresEquality(t *testing.T) {
	pattern := SumN(PatternCapture("a"), PatternCapture("a"))

	env := &Env{}
	if !Match(pattern, SumN(Var("x"), Var("x")), env) {
		t.Errorf("repeated capture did not match identical repeated terms")
	}

	env2 := &Env{}
	if Match(pattern, SumN(Var("x"), Var("y")), env2) {
		t.Errorf("repeated capture matched two different terms")
	}
}

func TestMatch_DifferentKindsNeverMatch(t *testing.T) {
	env := &Env{}
	if Match(Const(1), Var("x"), env) {
		t.Errorf("Const pattern matched a Var term")
	}
}

func TestMatch_ArityMismatchFails(t *testing.T) {
	env := &Env{}
	pattern := SumN(PatternAny(), PatternAny())
	term := SumN(Var("x"), Var("y"), Var("z"))
	if Match(pattern, term, env) {
		t.Errorf("patterns of different arity matched")
	}
}

func TestEqual_ReflexiveSymmetricTransitive(t *testing.T) {
	a := SumN(Const(1), Power(Var("x"), Const(2)))
	b := SumN(Const(1), Power(Var("x"), Const(2)))
	c := SumN(Const(1), Power(Var("x"), Const(2)))

	if !Equal(a, a) {
		t.Errorf("Equal not reflexive")
	}
	if Equal(a, b) != Equal(b, a) {
		t.Errorf("Equal not symmetric")
	}
	if Equal(a, b) && Equal(b, c) && !Equal(a, c) {
		t.Errorf("Equal not transitive")
	}
}

func TestEqual_DistinguishesStructure(t *testing.T) {
	if Equal(SumN(Const(1), Const(2)), SumN(Const(2), Const(1))) {
		t.Errorf("Equal treated differently-ordered sums as equal (no commutative ordering is implemented)")
	}
	if Equal(Const(1), Const(2)) {
		t.Errorf("Equal treated distinct constants as equal")
	}
}
