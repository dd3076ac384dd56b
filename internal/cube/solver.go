package cube

// phase distinguishes the two stages of Kociemba's algorithm: phase 1
// searches the 18-move set down to the <U,D,R2,L2,F2,B2> subgroup,
// phase 2 searches the 10-move subgroup down to the identity.
type phase int

const (
	phase1 phase = iota
	phase2
)

// Search depth ceilings: phase 1 rarely needs more than 12 moves, phase
// 2 rarely more than 18; their sum bounds any solution this solver
// returns at 30 moves.
const (
	maxDepthPhase1 = 12
	maxDepthPhase2 = 18
	maxTotalDepth  = maxDepthPhase1 + maxDepthPhase2
)

// TwoPhaseSolver runs the iterative-deepening two-phase search. It owns
// mutable DFS scratch buffers and must not be shared across goroutines;
// callers running concurrent solves should use one instance per
// goroutine. Tables (move/pruning) are read-only and safely shared.
type TwoPhaseSolver struct {
	tables   *MoveTable
	pruning  *PruningTable
	sofar    [2][maxTotalDepth + 2]int
	solution [2]struct {
		length int
		moves  [maxTotalDepth]int
	}
}

// NewTwoPhaseSolver returns a solver bound to the shared move/pruning
// tables, building them on first use.
func NewTwoPhaseSolver() *TwoPhaseSolver {
	return &TwoPhaseSolver{
		tables:  Tables(),
		pruning: PruningTables(),
	}
}

// isDullTriple reports whether appending move a after the two most
// recently applied moves b and c would be redundant: either a repeats
// b's face, or a and c share a face with b on the opposite axis
// (a commuting pair, collapsing to an equivalent shorter sequence).
func isDullTriple(a Move, b, c int) bool {
	if b < 0 {
		return false
	}
	if int(a)/3 == b/3 {
		return true
	}
	if c < 0 {
		return false
	}
	return int(a)/3 == c/3 && (3+int(a)/3-b/3)%3 == 0
}

func (s *TwoPhaseSolver) transform(ph phase, c Coord, m Move) Coord {
	if ph == phase1 {
		return Coord{
			Twist: s.tables.Twist[m][c.Twist],
			Flip:  s.tables.Flip[m][c.Flip],
			Slice: s.tables.Slice[m][c.Slice],
		}
	}
	return Coord{
		Corner: s.tables.Corner[m][c.Corner],
		Edge4:  s.tables.Edge4[m][c.Edge4],
		Edge8:  s.tables.Edge8[m][c.Edge8],
	}
}

func (s *TwoPhaseSolver) distance(ph phase, c Coord) int {
	if ph == phase1 {
		d1 := int(s.pruning.SliceTwist[c.Slice][c.Twist])
		d2 := int(s.pruning.SliceFlip[c.Slice][c.Flip])
		if d1 > d2 {
			return d1
		}
		return d2
	}
	d1 := int(s.pruning.Edge4Corner[c.Edge4][c.Corner])
	d2 := int(s.pruning.Edge4Edge8[c.Edge4][c.Edge8])
	if d1 > d2 {
		return d1
	}
	return d2
}

func (s *TwoPhaseSolver) moveSet(ph phase) []Move {
	if ph == phase1 {
		return allMoves[:]
	}
	return Phase2Moves[:]
}

// searchPhase performs one bounded depth-first search for a solution of
// exactly `togo` remaining moves from coordinate c. It never fails in
// the exceptional sense: it simply returns whether such a solution
// exists, recording the moves found (in reverse, by remaining depth) in
// s.sofar[ph].
func (s *TwoPhaseSolver) searchPhase(ph phase, c Coord, togo int) bool {
	if togo == 0 {
		return s.distance(ph, c) == 0
	}
	if togo < s.distance(ph, c) {
		return false
	}
	buf := &s.sofar[ph]
	for _, m := range s.moveSet(ph) {
		if isDullTriple(m, buf[togo], buf[togo+1]) {
			continue
		}
		buf[togo-1] = int(m)
		if s.searchPhase(ph, s.transform(ph, c, m), togo-1) {
			return true
		}
	}
	return false
}

func (s *TwoPhaseSolver) resetSofar(ph phase) {
	buf := &s.sofar[ph]
	for i := range buf {
		buf[i] = -1
	}
}

func (s *TwoPhaseSolver) setSolution(ph phase, length int) {
	s.solution[ph].length = length
	copy(s.solution[ph].moves[:length], s.sofar[ph][:length])
}

func (s *TwoPhaseSolver) getSolution(ph phase) []Move {
	n := s.solution[ph].length
	out := make([]Move, n)
	for i, j := n-1, 0; i >= 0; i, j = i-1, j+1 {
		out[j] = Move(s.solution[ph].moves[i])
	}
	return out
}

// ph2Origin computes the phase-2 starting coordinate by walking the
// recorded phase-1 solution forward: the corner coordinate follows the
// move table directly, but edge4/edge8 are meaningless mid-phase-1 (the
// slice isn't yet zero), so the full edge permutation is reconstructed
// via see2ep and composed with the elementary moves' edge permutations.
func (s *TwoPhaseSolver) ph2Origin(c Coord) Coord {
	corner := c.Corner
	ep := see2ep(c.Slice, c.Edge4, c.Edge8)
	n := s.solution[phase1].length
	for i := n - 1; i >= 0; i-- {
		m := Move(s.solution[phase1].moves[i])
		corner = s.tables.Corner[m][corner]
		ep = ep.Compose(ElementaryMove[m].EP)
	}
	return Coord{Corner: corner, Edge4: ep2edge4(ep), Edge8: ep2edge8(ep)}
}

// Solve attempts to transform coordinate c to the identity within at
// most `step` moves (clamped to maxTotalDepth), returning a phase-1 and
// a phase-2 move sequence. If best is true, the search continues after
// finding a solution in order to shrink the total length, trying
// smaller phase-2 depths for each phase-1 depth before moving to the
// next; this does not make the result optimal.
func (s *TwoPhaseSolver) Solve(c Coord, step int, best bool) (found bool, sol1, sol2 []Move) {
	maxL := step
	if maxL > maxTotalDepth {
		maxL = maxTotalDepth
	}
	if maxL < 0 {
		maxL = 0
	}
	solLen := maxL + 1

	s.resetSofar(phase1)
	s.resetSofar(phase2)

	for d1 := s.distance(phase1, c); d1 <= maxL; d1++ {
		if !s.searchPhase(phase1, c, d1) {
			continue
		}
		s.setSolution(phase1, d1)

		c2 := s.ph2Origin(c)
		togo := solLen - 1 - d1
		for d2 := s.distance(phase2, c2); d2 <= togo; d2++ {
			if !s.searchPhase(phase2, c2, d2) {
				continue
			}
			s.setSolution(phase2, d2)

			sol1 = s.getSolution(phase1)
			sol2 = s.getSolution(phase2)
			solLen = len(sol1) + len(sol2)

			if !best || d2 == 0 {
				return true, sol1, sol2
			}
			break
		}
	}

	if solLen > maxL {
		return false, nil, nil
	}
	return true, sol1, sol2
}

var allMoves = func() [NumMoves]Move {
	var ms [NumMoves]Move
	for i := range ms {
		ms[i] = Move(i)
	}
	return ms
}()
