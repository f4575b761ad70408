package sat

// Status is the outcome of classifying a clause against the current
// assignment, independent of the watch index.
type Status int

const (
	StatusUnknown Status = iota
	Satisfied
	Unsatisfied
)

func (st Status) String() string {
	switch st {
	case Satisfied:
		return "satisfied"
	case Unsatisfied:
		return "unsatisfied"
	default:
		return "unknown"
	}
}

// ClassifyClause gathers the value of every literal in c under the current
// assignment and returns Satisfied if any literal is true, Unsatisfied if
// every literal is false, and StatusUnknown otherwise. It ignores W0/W1
// entirely: unlike Propagate, this is a whole-clause scan, the "lookup
// accelerator" of §4.3 used when a caller wants a clause's true status
// rather than the abbreviated two-watch approximation the propagator
// maintains.
func ClassifyClause(s *Solver, c *Clause) Status {
	allFalse := true
	for _, l := range c.Lits {
		switch s.LitValue(l) {
		case True:
			return Satisfied
		case Unknown:
			allFalse = false
		}
	}
	if allFalse {
		return Unsatisfied
	}
	return StatusUnknown
}

// ClassifyWatched classifies every distinct clause reachable from lists,
// a set of watch lists gathered for some batch of literals (for example,
// every watcher list touched while processing a run of decisions). A
// clause registered under two different literals in the batch would
// otherwise be visited and classified twice; dedup (cleared on entry)
// tracks clause IDs already emitted so each clause appears once, in the
// order its first watcher was seen.
//
// Clauses are gathered and classified eight at a time, mirroring the
// original C evaluator's eight-lane AVX2 gather. Go has no portable SIMD
// intrinsic in this module's dependency set, so the batching here is a
// plain unrolled scalar loop: it keeps the "process in groups of eight"
// shape without pretending to vectorize anything.
func ClassifyWatched(s *Solver, lists [][]watcher, dedup *ResetSet) []Status {
	dedup.Clear()

	var batch [8]*Clause
	n := 0
	var out []Status

	flush := func() {
		for i := 0; i < n; i++ {
			out = append(out, ClassifyClause(s, batch[i]))
		}
		n = 0
	}

	for _, ws := range lists {
		for _, w := range ws {
			c := w.clause
			if dedup.Contains(c.id) {
				continue
			}
			dedup.Add(c.id)
			batch[n] = c
			n++
			if n == len(batch) {
				flush()
			}
		}
	}
	flush()

	return out
}

// ClassifyWatchedByLiterals is a convenience wrapper around ClassifyWatched
// that gathers the watch lists of ls itself, using the solver's own
// dedup scratch space.
func (s *Solver) ClassifyWatchedByLiterals(ls []Literal) []Status {
	lists := make([][]watcher, len(ls))
	for i, l := range ls {
		lists[i] = s.watchers.listFor(l)
	}
	return ClassifyWatched(s, lists, s.seenClause)
}
