package sat

import "fmt"

// Options carries the solver's tunable constants. VarDecay, ClauseDecay and
// RestartInterval are reserved hooks: the core search here does not learn
// clauses or restart, so none of these drive behavior by default, but they
// are kept on Options so a caller layering its own decay/restart loop on
// top has somewhere to put the knobs.
type Options struct {
	VarDecay        float64
	ClauseDecay     float64
	RestartInterval int
}

// DefaultOptions mirrors the constants named in the data model.
var DefaultOptions = Options{
	VarDecay:        0.95,
	ClauseDecay:     0.999,
	RestartInterval: 256,
}

// Solver owns the clause database, watch index, trail and variable ordering
// for a single solve. Nothing here is safe for concurrent use: a Solver is
// built once per solve and discarded afterward.
type Solver struct {
	// Clause database. Every clause added here lives for the solver's whole
	// lifetime: there is no clause learning, so nothing is appended past
	// AddClause and nothing is ever removed.
	clauses []*Clause

	// Watch index, grown incrementally as variables and clauses are added.
	watchers *watchIndex

	// Assignment, indexed by variable ID.
	assigns  []LBool
	polarity []bool // branching hint per variable; true means "prefer positive"

	// Trail and decision-level stack. trailLim[k] is the trail length at the
	// moment decision k was made.
	trail    []Literal
	trailLim []int

	// propHead is the index of the next trail literal to propagate. Search
	// and SolveDPLL both drain the same trail through it.
	propHead int

	order *VarOrder

	varDecay        float64
	clauseDecay     float64
	restartInterval int

	// unsat latches once a conflict ends the solve, whether at load time (an
	// empty clause, or two contradictory units) or during Search.
	unsat bool

	TotalConflicts int64
	TotalDecisions int64

	// seenClause is scratch space for ClassifyWatched, sized to the number
	// of clauses as they're added (one slot per clause ID).
	seenClause *ResetSet
}

// NewSolver returns a solver configured with the given options.
func NewSolver(opts Options) *Solver {
	return &Solver{
		watchers:        newWatchIndex(0),
		order:           NewVarOrder(opts.VarDecay),
		varDecay:        opts.VarDecay,
		clauseDecay:     opts.ClauseDecay,
		restartInterval: opts.RestartInterval,
		seenClause:      &ResetSet{},
	}
}

// NewDefaultSolver returns a solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// AddVariable registers a new variable and returns its ID. Every variable's
// polarity hint defaults to "prefer positive", matching the source's
// all-ones polarity array.
func (s *Solver) AddVariable() int {
	v := len(s.assigns)
	s.assigns = append(s.assigns, Unknown)
	s.polarity = append(s.polarity, true)
	s.watchers.grow(len(s.assigns))
	s.order.AddVar()
	return v
}

func (s *Solver) NumVariables() int { return len(s.assigns) }
func (s *Solver) NumAssigned() int  { return len(s.trail) }
func (s *Solver) NumClauses() int   { return len(s.clauses) }

// IsUnsat reports whether the solver has latched an unsatisfiable verdict:
// at load time (an empty clause or contradictory units), or from a Search
// that returned False.
func (s *Solver) IsUnsat() bool { return s.unsat }

// VarValue returns the current ternary value of variable v.
func (s *Solver) VarValue(v int) LBool { return s.assigns[v] }

// LitValue returns the current ternary value of literal l.
func (s *Solver) LitValue(l Literal) LBool {
	v := s.assigns[l.VarID()]
	if v == Unknown {
		return Unknown
	}
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

func (s *Solver) decisionLevel() int { return len(s.trailLim) }

// enqueue implements §4.1: if the variable is already assigned, it succeeds
// iff the existing value agrees with l's polarity; otherwise it assigns and
// appends l to the trail.
func (s *Solver) enqueue(l Literal) bool {
	switch s.LitValue(l) {
	case True:
		return true
	case False:
		return false
	}
	v := l.VarID()
	if l.IsPositive() {
		s.assigns[v] = True
	} else {
		s.assigns[v] = False
	}
	s.trail = append(s.trail, l)
	return true
}

// popTo implements §4.1: while the trail is longer than n, pop the tail
// literal and clear its variable's assignment, handing the variable back to
// the VarOrder heap so it can be picked again.
func (s *Solver) popTo(n int) {
	for len(s.trail) > n {
		l := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]
		v := l.VarID()
		s.assigns[v] = Unknown
		s.order.Reinsert(v)
	}
	if s.propHead > n {
		s.propHead = n
	}
}

// AddClause loads a clause into the formula. It may only be called before
// the first call to Search or SolveDPLL. An empty clause is not reported as
// a Go error: per §7 it makes the formula unsatisfiable at load time, which
// IsUnsat/Search/SolveDPLL will reflect.
func (s *Solver) AddClause(lits []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called after search has started")
	}

	c, ok := newClause(lits)
	if !ok {
		s.unsat = true
		return nil
	}

	switch len(c.Lits) {
	case 1:
		if !s.enqueue(c.Lits[0]) {
			s.unsat = true
		}
	default:
		c.id = len(s.clauses)
		s.clauses = append(s.clauses, c)
		s.seenClause.Expand()
		s.watchers.register(c.Lits[0], c, 0)
		s.watchers.register(c.Lits[1], c, 1)
	}
	return nil
}

// Propagate drains the trail from propHead to its current tail. For each
// literal it visits the watch list of its negation (see clause.go for the
// watch index's stale-tolerant semantics) and returns false the moment a
// conflict is found. The trail is left as-is on conflict; callers are
// responsible for backtracking.
func (s *Solver) Propagate() bool {
	for s.propHead < len(s.trail) {
		l := s.trail[s.propHead]
		s.propHead++
		if !s.propagateLiteral(l) {
			return false
		}
	}
	return true
}

// propagateLiteral implements the per-visit logic of §4.3 for every watcher
// registered against l's negation, the literal that just became false
// because l became true. w.slot is the watcher's fixed registration role (0
// for W0, 1 for W1), not a position — it never changes even after the
// clause's W0/W1 fields migrate, which is exactly why a stale entry can
// still be resolved correctly: re-reading c.W0/c.W1 through the role gives
// the clause's current idea of what that slot watches, regardless of what
// literal originally registered the entry.
//
// A visited entry can be stale in a second way: since entries are never
// removed from a literal's list, re-falsifying the literal that originally
// registered this entry fires it again even after its slot has migrated
// elsewhere. The role's current literal is only genuinely affected when it
// reads back as false; if it reads back true the clause is already
// satisfied through this watch, and if it reads back unknown this visit has
// nothing to do with the clause's actual current watch and must be ignored,
// not mistaken for a real trigger.
func (s *Solver) propagateLiteral(l Literal) bool {
	ws := s.watchers.listFor(l.Opposite())
	for _, w := range ws {
		c := w.clause
		isW0 := w.slot == 0

		var myPos, otherPos int
		if isW0 {
			myPos, otherPos = c.W0, c.W1
		} else {
			myPos, otherPos = c.W1, c.W0
		}

		if s.LitValue(c.Lits[myPos]) != False {
			continue // satisfied already, or this visit is stale and irrelevant
		}

		moved := false
		for j, lit := range c.Lits {
			if j == c.W0 || j == c.W1 {
				continue
			}
			if s.LitValue(lit) != False {
				if isW0 {
					c.W0 = j
				} else {
					c.W1 = j
				}
				moved = true
				break
			}
		}
		if moved {
			continue
		}

		switch s.LitValue(c.Lits[otherPos]) {
		case False:
			return false
		case Unknown:
			s.enqueue(c.Lits[otherPos])
		}
	}
	return true
}

// decisionLiteral turns a chosen variable into the literal §4.4 step 3
// picks: the positive literal unless the polarity hint says otherwise.
func (s *Solver) decisionLiteral(v int) Literal {
	if s.polarity[v] {
		return PositiveLiteral(v)
	}
	return NegativeLiteral(v)
}

// Search runs the flat, iterative driver of §4.4. It returns True if
// satisfiable, False if unsatisfiable. On conflict it backtracks exactly
// one decision level and tries the opposite literal; if that also
// conflicts, it reports UNSAT immediately without cascading to earlier
// decisions. This is the documented, intentional incompleteness of §9 — a
// fuller solver would keep backtracking through earlier levels, this one
// does not.
func (s *Solver) Search() LBool {
	if s.unsat {
		return False
	}
	if !s.Propagate() {
		s.unsat = true
		return False
	}

	for {
		v, ok := s.order.PopUnassigned(s)
		if !ok {
			return True
		}
		s.TotalDecisions++

		l := s.decisionLiteral(v)
		s.trailLim = append(s.trailLim, len(s.trail))
		s.enqueue(l)
		if s.Propagate() {
			continue
		}

		s.TotalConflicts++
		frame := s.trailLim[len(s.trailLim)-1]
		s.trailLim = s.trailLim[:len(s.trailLim)-1]
		s.popTo(frame)
		s.enqueue(l.Opposite())
		if !s.Propagate() {
			s.unsat = true
			return False
		}
	}
}

// Model returns the current assignment as a dense bool slice, valid only
// once Search or SolveDPLL has returned True.
func (s *Solver) Model() []bool {
	model := make([]bool, len(s.assigns))
	for v := range model {
		model[v] = s.assigns[v] == True
	}
	return model
}

// GPUContext is an opaque accelerator handle (§6). The core SAT engine
// never dereferences it; it exists purely so a caller-supplied GPU backend
// has a documented place to attach.
type GPUContext struct{}

// GPUInit, GPURelease and ParallelBranchEval are the SAT-side accelerator
// hooks. They are intentionally left unimplemented: §6 explicitly permits
// leaving accelerator backends unimplemented, and nothing in this module
// calls them.
func GPUInit() *GPUContext { return &GPUContext{} }

func GPURelease(*GPUContext) {}

func ParallelBranchEval(*GPUContext, *Solver, []Literal) {}
