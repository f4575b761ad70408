package sat

import "github.com/rhartert/yagh"

// VarOrder maintains the order in which unassigned variables become
// candidates for branching. It is backed by a binary heap keyed on
// negated score, so the top of the heap is always the maximum-score
// variable; ties are broken by the heap's own insertion order, which
// matches AddVar's ascending-ID call order and so satisfies the
// "lowest index wins ties" rule without any extra bookkeeping.
type VarOrder struct {
	order *yagh.IntMap[float64]

	scores     []float64 // in [0, 1e100)
	scoreInc   float64   // in (0, 1e100)
	scoreDecay float64   // in (0, 1]
}

// NewVarOrder returns a new, empty VarOrder.
func NewVarOrder(decay float64) *VarOrder {
	return &VarOrder{
		order:      yagh.New[float64](0),
		scoreInc:   1,
		scoreDecay: decay,
	}
}

// AddVar adds a new variable with score 0.
func (vo *VarOrder) AddVar() {
	v := len(vo.scores)
	vo.scores = append(vo.scores, 0)
	vo.order.GrowBy(1)
	vo.order.Put(v, 0)
}

// Reinsert adds variable v back to the set of decision candidates. The
// solver calls this whenever v becomes unassigned again (search
// backtracking, DPLL undoing a branch).
func (vo *VarOrder) Reinsert(v int) {
	vo.order.Put(v, -vo.scores[v])
}

// PopUnassigned returns the unassigned variable with maximum score,
// removing it from the heap. It reports ok=false once every variable has
// been assigned. Variables popped here and found already assigned (because
// they were force-assigned by propagation while still sitting in the heap)
// are simply skipped, never reinserted — re-insertion only happens via
// Reinsert when a variable is unassigned again.
func (vo *VarOrder) PopUnassigned(s *Solver) (int, bool) {
	for {
		next, ok := vo.order.Pop()
		if !ok {
			return 0, false
		}
		if s.VarValue(next.Elem) != Unknown {
			continue
		}
		return next.Elem, true
	}
}

// BumpScore and DecayScores are reserved hooks: the search never calls
// them, since activity-based bumping is not part of the search
// implemented here. They are kept functional (including the same
// overflow-rescaling scheme as the score increment itself) so a caller
// that wants VSIDS-style bumping on top of PopUnassigned can use them
// without further plumbing.
func (vo *VarOrder) BumpScore(v int) {
	vo.scores[v] += vo.scoreInc
	if vo.order.Contains(v) {
		vo.order.Put(v, -vo.scores[v])
	}
	if vo.scores[v] > 1e100 {
		vo.rescaleScoresAndIncrement()
	}
}

func (vo *VarOrder) DecayScores() {
	vo.scoreInc /= vo.scoreDecay
	if vo.scoreInc > 1e100 {
		vo.rescaleScoresAndIncrement()
	}
}

func (vo *VarOrder) rescaleScoresAndIncrement() {
	vo.scoreInc *= 1e-100
	for v, sc := range vo.scores {
		newScore := sc * 1e-100
		vo.scores[v] = newScore
		if vo.order.Contains(v) {
			vo.order.Put(v, -newScore)
		}
	}
}
