package cube

// Face identifies one of the six faces of the cube. Move/3 yields the
// Face being turned.
type Face int

const (
	FaceU Face = iota
	FaceR
	FaceF
	FaceD
	FaceL
	FaceB
)

func (f Face) String() string {
	return [...]string{"U", "R", "F", "D", "L", "B"}[f]
}

// Move is one of the 18 quarter/half/inverse face turns, in the fixed
// order U,U2,U',R,R2,R',F,F2,F',D,D2,D',L,L2,L',B,B2,B'.
type Move int

const (
	MoveU Move = iota
	MoveU2
	MoveUPrime
	MoveR
	MoveR2
	MoveRPrime
	MoveF
	MoveF2
	MoveFPrime
	MoveD
	MoveD2
	MoveDPrime
	MoveL
	MoveL2
	MoveLPrime
	MoveB
	MoveB2
	MoveBPrime
)

const NumMoves = 18

var moveNames = [NumMoves]string{
	"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'",
	"D", "D2", "D'", "L", "L2", "L'", "B", "B2", "B'",
}

func (m Move) String() string { return moveNames[m] }

// Face returns the face axis of a move.
func (m Move) Face() Face { return Face(int(m) / 3) }

// Power returns 1, 2 or 3 for quarter, half and inverse turns.
func (m Move) Power() int { return int(m)%3 + 1 }

// MoveFromFacePower builds the Move for a face turned `power` times
// clockwise, power in {1,2,3}.
func MoveFromFacePower(f Face, power int) Move {
	return Move(int(f)*3 + (power-1)%3)
}

// Phase2Moves is the ten-move subgroup <U,D,R2,L2,F2,B2> that phase 2
// searches within; it leaves twist, flip and slice fixed at zero.
var Phase2Moves = [10]Move{
	MoveU, MoveU2, MoveUPrime,
	MoveR2, MoveF2,
	MoveD, MoveD2, MoveDPrime,
	MoveL2, MoveB2,
}

// CubieCube is the cube state as a quadruple of corner/edge permutations
// and orientation vectors: cp in S8, co in C3^8, ep in S12, eo in C2^12.
type CubieCube struct {
	CP Perm
	CO ModArray
	EP Perm
	EO ModArray
}

// IdentityCube returns the solved cube.
func IdentityCube() CubieCube {
	return CubieCube{
		CP: IdentityPerm(8),
		CO: NewModArray(3, 8),
		EP: IdentityPerm(12),
		EO: NewModArray(2, 12),
	}
}

// Clone returns an independent copy of c.
func (c CubieCube) Clone() CubieCube {
	return CubieCube{CP: c.CP.Clone(), CO: c.CO.Clone(), EP: c.EP.Clone(), EO: c.EO.Clone()}
}

// Equal reports whether c and d describe the same cube state.
func (c CubieCube) Equal(d CubieCube) bool {
	return c.CP.Equal(d.CP) && c.CO.Equal(d.CO) && c.EP.Equal(d.EP) && c.EO.Equal(d.EO)
}

// Mul returns the group product a*b: apply b first, then a.
func (a CubieCube) Mul(b CubieCube) CubieCube {
	return CubieCube{
		CP: a.CP.Compose(b.CP),
		CO: a.CO.Act(b.CP).Add(b.CO),
		EP: a.EP.Compose(b.EP),
		EO: a.EO.Act(b.EP).Add(b.EO),
	}
}

// Inverse returns c^-1.
func (c CubieCube) Inverse() CubieCube {
	cpInv := c.CP.Inverse()
	epInv := c.EP.Inverse()
	return CubieCube{
		CP: cpInv,
		CO: c.CO.Act(cpInv).Neg(),
		EP: epInv,
		EO: c.EO.Act(epInv).Neg(),
	}
}

// IsSolvable reports whether c satisfies the three solvability
// invariants: corner/edge parity match, and both orientation sums are
// zero modulo their base.
func (c CubieCube) IsSolvable() bool {
	return c.CP.Parity() == c.EP.Parity() && c.CO.Sum() == 0 && c.EO.Sum() == 0
}

// ApplyMove returns c with the single elementary move m applied.
func (c CubieCube) ApplyMove(m Move) CubieCube {
	return c.Mul(ElementaryMove[m])
}

// ApplyMoves returns c with the given move sequence applied in order.
func (c CubieCube) ApplyMoves(ms []Move) CubieCube {
	for _, m := range ms {
		c = c.ApplyMove(m)
	}
	return c
}

// generator cubies for the six quarter-turn faces.
var (
	genU = CubieCube{
		CP: Perm{3, 0, 1, 2, 4, 5, 6, 7},
		CO: ModArray{3, []int{0, 0, 0, 0, 0, 0, 0, 0}},
		EP: Perm{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		EO: ModArray{2, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	genR = CubieCube{
		CP: Perm{4, 1, 2, 0, 7, 5, 6, 3},
		CO: ModArray{3, []int{2, 0, 0, 1, 1, 0, 0, 2}},
		EP: Perm{8, 1, 2, 3, 11, 5, 6, 7, 4, 9, 10, 0},
		EO: ModArray{2, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	genF = CubieCube{
		CP: Perm{1, 5, 2, 3, 0, 4, 6, 7},
		CO: ModArray{3, []int{1, 2, 0, 0, 2, 1, 0, 0}},
		EP: Perm{0, 9, 2, 3, 4, 8, 6, 7, 1, 5, 10, 11},
		EO: ModArray{2, []int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0}},
	}
	genD = CubieCube{
		CP: Perm{0, 1, 2, 3, 5, 6, 7, 4},
		CO: ModArray{3, []int{0, 0, 0, 0, 0, 0, 0, 0}},
		EP: Perm{0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11},
		EO: ModArray{2, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	genL = CubieCube{
		CP: Perm{0, 2, 6, 3, 4, 1, 5, 7},
		CO: ModArray{3, []int{0, 1, 2, 0, 0, 2, 1, 0}},
		EP: Perm{0, 1, 10, 3, 4, 5, 9, 7, 8, 2, 6, 11},
		EO: ModArray{2, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	genB = CubieCube{
		CP: Perm{0, 1, 3, 7, 4, 5, 2, 6},
		CO: ModArray{3, []int{0, 0, 1, 2, 0, 0, 2, 1}},
		EP: Perm{0, 1, 2, 11, 4, 5, 6, 10, 8, 9, 3, 7},
		EO: ModArray{2, []int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1}},
	}
)

// ElementaryMove holds the cubie-cube representation of each of the 18
// moves, derived once at init time by repeated composition of the six
// face generators.
var ElementaryMove [NumMoves]CubieCube

func init() {
	gens := [6]CubieCube{genU, genR, genF, genD, genL, genB}
	for f, g := range gens {
		p := g
		for power := 0; power < 3; power++ {
			ElementaryMove[f*3+power] = p
			p = p.Mul(g)
		}
	}
}
