package algebra

// Simplify folds constant subtrees of e using only the scalar fallback
// path: it is the package-level entry point for callers with no need for
// (or no Engine to hold) an accelerator. It is equivalent to
// NewEngine().Simplify(e).
func Simplify(e *Expr) *Expr {
	var eng Engine
	return eng.Simplify(e)
}

// Simplify folds constant subtrees of e in place, post-order, using eng's
// registered accelerators where available. It mirrors the original C
// source's simplify(): Const and Var are returned unchanged, Power
// recurses into both children, and Sum/Product recurse into every child
// before partitioning it into constants and non-constants and folding the
// constants down to at most one trailing Const node.
func (eng *Engine) Simplify(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindConst, KindVar:
		return e
	case KindPower:
		e.Base = eng.Simplify(e.Base)
		e.Exp = eng.Simplify(e.Exp)
		return e
	case KindSum, KindProduct:
		return eng.simplifyNary(e)
	default:
		return e
	}
}

func (eng *Engine) simplifyNary(e *Expr) *Expr {
	for i, a := range e.Args {
		e.Args[i] = eng.Simplify(a)
	}

	consts := make([]float64, 0, len(e.Args))
	nonConst := e.Args[:0]
	for _, a := range e.Args {
		if a.Kind == KindConst {
			consts = append(consts, a.Value)
		} else {
			nonConst = append(nonConst, a)
		}
	}

	if len(consts) == 0 {
		if len(nonConst) == 0 {
			// Empty variadic sum/product folds to its identity element.
			identity := 0.0
			if e.Kind == KindProduct {
				identity = 1.0
			}
			e.Kind = KindConst
			e.Value = identity
			e.Args = nil
			return e
		}
		e.Args = nonConst
		return e
	}

	var folded float64
	if e.Kind == KindSum {
		folded = eng.foldAdd(consts)
	} else {
		folded = eng.foldMul(consts)
	}

	if len(nonConst) == 0 {
		e.Kind = KindConst
		e.Value = folded
		e.Args = nil
		return e
	}

	e.Args = append(nonConst, Const(folded))
	return e
}

// foldAdd sums buf using one level of pairwise reduction: it mirrors
// fold_constants_add's halving scheme exactly (not a full reduction tree),
// splitting buf into two halves, summing them elementwise via the
// accelerator (or scalar fallback), then summing the resulting half
// linearly, plus the odd leftover element if len(buf) is odd.
func (eng *Engine) foldAdd(buf []float64) float64 {
	switch len(buf) {
	case 0:
		return 0
	case 1:
		return buf[0]
	}

	half := len(buf) / 2
	tmp := make([]float64, half)
	if eng.addVec == nil || eng.addVec(buf[:half], buf[half:2*half], tmp) != nil {
		addVec4(buf[:half], buf[half:2*half], tmp)
	}

	sum := 0.0
	for _, v := range tmp {
		sum += v
	}
	if len(buf)%2 == 1 {
		sum += buf[len(buf)-1]
	}
	return sum
}

// foldMul is foldAdd's multiplicative twin, mirroring fold_constants_mul.
func (eng *Engine) foldMul(buf []float64) float64 {
	switch len(buf) {
	case 0:
		return 1
	case 1:
		return buf[0]
	}

	half := len(buf) / 2
	tmp := make([]float64, half)
	if eng.mulVec == nil || eng.mulVec(buf[:half], buf[half:2*half], tmp) != nil {
		mulVec4(buf[:half], buf[half:2*half], tmp)
	}

	prod := 1.0
	for _, v := range tmp {
		prod *= v
	}
	if len(buf)%2 == 1 {
		prod *= buf[len(buf)-1]
	}
	return prod
}
