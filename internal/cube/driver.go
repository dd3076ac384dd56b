package cube

import "errors"

// Status codes for the driver's Solve family: ok, unsolvable, not
// found within the step bound, bad source, bad target, or unknown.
type Status int

const (
	StatusOk Status = iota
	StatusUnsolvable
	StatusNotFound
	StatusBadSrc
	StatusBadTgt
	StatusUnknownError
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusUnsolvable:
		return "unsolvable"
	case StatusNotFound:
		return "not found"
	case StatusBadSrc:
		return "bad source"
	case StatusBadTgt:
		return "bad target"
	default:
		return "unknown error"
	}
}

// Sentinel errors for the driver's failure statuses. Solve produces
// ErrUnsolvable and ErrNotFound; ErrBadSrc and ErrBadTgt are never
// returned here: the web handler wraps its facelet parse errors with
// them. Callers match with errors.Is.
var (
	ErrBadSrc     = errors.New("cube: source facelet string is not a valid cube configuration")
	ErrBadTgt     = errors.New("cube: target facelet string is not a valid cube configuration")
	ErrUnsolvable = errors.New("cube: source cannot be transformed into target")
	ErrNotFound   = errors.New("cube: no solution found within the given step bound")
)

// DefaultMaxSteps is the step bound used by Solve when callers don't
// need a tighter one; it comfortably covers the 30-move ceiling any
// two-phase search of this shape can produce.
const DefaultMaxSteps = maxTotalDepth

// Solve finds a move sequence taking the cube state src to tgt, reducing
// to the single-argument problem solve(tgt⁻¹·src, id). It returns a
// single sequence: the phase-1 and phase-2 moves concatenated, with the
// same-face turns at their boundary combined or cancelled.
//
// BadSrc/BadTgt are reserved for facelet-string structural validity (see
// internal/facelet.IsValid/FromFacelets) and are never produced here: by
// the time a CubieCube reaches this function it is already well-formed,
// so the only solvability check that matters is on the derived relative
// cube tgt⁻¹·src, which is what the group-theoretic invariant actually
// constrains.
func Solve(src, tgt CubieCube, maxSteps int, best bool) (Status, []Move, error) {
	rel := tgt.Inverse().Mul(src)
	if !rel.IsSolvable() {
		return StatusUnsolvable, nil, ErrUnsolvable
	}
	if rel.Equal(IdentityCube()) {
		return StatusOk, nil, nil
	}

	s := NewTwoPhaseSolver()
	coord := CubieCube2Coord(rel)
	found, sol1, sol2 := s.Solve(coord, maxSteps, best)
	if !found {
		return StatusNotFound, nil, ErrNotFound
	}
	return StatusOk, mergeMoves(sol1, sol2), nil
}

// SolveRaw behaves like Solve but returns the solution as raw move
// indices rather than Move values, for callers that want a
// language-independent wire representation.
func SolveRaw(src, tgt CubieCube, maxSteps int, best bool) (Status, []int, error) {
	status, moves, err := Solve(src, tgt, maxSteps, best)
	if err != nil {
		return status, nil, err
	}
	raw := make([]int, len(moves))
	for i, m := range moves {
		raw[i] = int(m)
	}
	return status, raw, nil
}

// mergeMoves concatenates a and b, combining or cancelling a trailing
// and leading move that share a face: p1 quarter-turns followed by p2
// quarter-turns of the same face collapse to (p1+p2) mod 4 turns, or
// disappear entirely when that sum is zero. Opposite-face commuting
// merges (e.g. U then D) are intentionally left unmerged.
func mergeMoves(a, b []Move) []Move {
	if len(a) == 0 {
		return append([]Move(nil), b...)
	}
	if len(b) == 0 {
		return append([]Move(nil), a...)
	}
	last, first := a[len(a)-1], b[0]
	if last.Face() != first.Face() {
		out := make([]Move, 0, len(a)+len(b))
		out = append(out, a...)
		return append(out, b...)
	}

	out := make([]Move, 0, len(a)+len(b))
	out = append(out, a[:len(a)-1]...)
	if combined := (last.Power() + first.Power()) % 4; combined != 0 {
		out = append(out, MoveFromFacePower(last.Face(), combined))
	}
	return append(out, b[1:]...)
}

// IsSolvable reports whether a cube state satisfies the group's
// solvability invariant: corner and edge permutation parities agree,
// and both orientation sums vanish.
func IsSolvable(c CubieCube) bool { return c.IsSolvable() }

// Apply returns the cube state reached by applying a move sequence to
// c, in order.
func Apply(c CubieCube, moves []Move) CubieCube { return c.ApplyMoves(moves) }
