package sat

import "strings"

// Clause is an ordered sequence of literals plus two watch slots W0, W1
// identifying positions in that sequence. For clauses of size >= 2, W0 != W1.
// Unit clauses (size 1) never reach the watch index: they are enqueued
// directly at load time and carry W0 == W1 == 0.
type Clause struct {
	Lits []Literal

	W0, W1 int

	// Activity is carried per the data model but is never rescored: this
	// solver does not implement clause-activity bumping (see VarOrder for
	// the equivalent on variables, also unused by default).
	Activity float64

	// id is the clause's position in Solver.clauses, set by AddClause. It
	// exists only so ClassifyWatched can dedup a clause gathered from more
	// than one watch list without needing a map keyed on *Clause.
	id int
}

// newClause builds a clause from tmpLits, copying them so the caller's
// buffer can be reused. It returns (nil, false) for the empty clause, which
// is rejected at load time as unsatisfiable.
func newClause(tmpLits []Literal) (*Clause, bool) {
	if len(tmpLits) == 0 {
		return nil, false
	}
	lits := make([]Literal, len(tmpLits))
	copy(lits, tmpLits)

	c := &Clause{Lits: lits}
	if len(lits) >= 2 {
		c.W0, c.W1 = 0, 1
	}
	return c, true
}

func (c *Clause) String() string {
	if len(c.Lits) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.Lits[0].String())
	for _, l := range c.Lits[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// watcher is one entry of a per-literal watch list: it names a clause and
// which of its two watch slots (0 for W0, 1 for W1) this entry represents.
//
// Watch lists are built once, when the clause is registered, and are never
// mutated afterwards. Migrating a watch (see Solver.Propagate) only rewrites
// the clause's W0/W1 fields; the list entry keeps pointing at the same
// (clause, slot-role) pair even though the literal occupying that slot has
// since changed. This mirrors the original C source's watch_list_t, which
// never grows past its two initial registrations per clause.
type watcher struct {
	clause *Clause
	slot   int
}

// watchIndex holds, for each signed literal, the watchers registered against
// it. The index need not (and does not) support deletion.
type watchIndex struct {
	lists [][]watcher
}

func newWatchIndex(numVars int) *watchIndex {
	return &watchIndex{lists: make([][]watcher, numVars*2)}
}

func (wi *watchIndex) grow(numVars int) {
	for len(wi.lists) < numVars*2 {
		wi.lists = append(wi.lists, nil)
	}
}

// register adds clause c to the watch list of literal l as slot (0 or 1).
func (wi *watchIndex) register(l Literal, c *Clause, slot int) {
	wi.lists[l] = append(wi.lists[l], watcher{clause: c, slot: slot})
}

func (wi *watchIndex) listFor(l Literal) []watcher {
	return wi.lists[l]
}
