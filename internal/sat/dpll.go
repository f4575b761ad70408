package sat

// SolveDPLL is the tree-recursive alternative search mode named in §4.4:
// rather than the flat, one-level-backtrack loop of Search, it explores the
// decision tree directly through Go's call stack, checkpointing the trail
// before each branch and restoring it on failure. Because the two branches
// of a variable are tried within the same call frame (not as two separate
// decision levels), this mode does not exhibit Search's single-level
// backtrack limitation — it is a genuinely complete DPLL search, offered as
// the secondary mode named alongside the primary one.
func (s *Solver) SolveDPLL() LBool {
	if s.unsat {
		return False
	}
	if s.dpll() {
		return True
	}
	return False
}

func (s *Solver) dpll() bool {
	if !s.Propagate() {
		return false
	}

	v, ok := s.order.PopUnassigned(s)
	if !ok {
		return true
	}
	s.TotalDecisions++

	l := s.decisionLiteral(v)
	save := len(s.trail)

	if s.enqueue(l) && s.dpll() {
		return true
	}
	s.popTo(save)

	s.TotalConflicts++
	if s.enqueue(l.Opposite()) && s.dpll() {
		return true
	}
	s.popTo(save)

	return false
}
