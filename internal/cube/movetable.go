package cube

import "sync"

// MoveTable caches, for each of the six coordinates, the coordinate
// reached by applying each of the 18 elementary moves. Phase-2 moves
// only are filled in for the Edge4/Edge8 tables since those coordinates
// are meaningless outside the UD-slice subgroup.
type MoveTable struct {
	Twist  [][]int // [move][twist]
	Flip   [][]int // [move][flip]
	Slice  [][]int // [move][slice]
	Corner [][]int // [move][corner]
	Edge4  [][]int // [move][edge4]
	Edge8  [][]int // [move][edge8]
}

var (
	moveTable     *MoveTable
	moveTableOnce sync.Once
)

// Tables returns the shared, lazily-built move tables. Safe to call
// concurrently: construction happens exactly once.
func Tables() *MoveTable {
	moveTableOnce.Do(func() {
		moveTable = buildMoveTable()
	})
	return moveTable
}

func buildMoveTable() *MoveTable {
	mt := &MoveTable{
		Twist:  make([][]int, NumMoves),
		Flip:   make([][]int, NumMoves),
		Slice:  make([][]int, NumMoves),
		Corner: make([][]int, NumMoves),
		Edge4:  make([][]int, NumMoves),
		Edge8:  make([][]int, NumMoves),
	}
	for m := 0; m < NumMoves; m++ {
		mt.Twist[m] = make([]int, NTwist)
		mt.Flip[m] = make([]int, NFlip)
		mt.Slice[m] = make([]int, NSlice)
		mt.Corner[m] = make([]int, NCorner)
		mt.Edge4[m] = make([]int, NEdge4)
		mt.Edge8[m] = make([]int, NEdge8)
	}

	for twist := 0; twist < NTwist; twist++ {
		co := twist2co(twist)
		for m := 0; m < NumMoves; m++ {
			move := ElementaryMove[Move(m)]
			newCO := co.Act(move.CP).Add(move.CO)
			mt.Twist[m][twist] = co2twist(newCO)
		}
	}

	for flip := 0; flip < NFlip; flip++ {
		eo := flip2eo(flip)
		for m := 0; m < NumMoves; m++ {
			move := ElementaryMove[Move(m)]
			newEO := eo.Act(move.EP).Add(move.EO)
			mt.Flip[m][flip] = eo2flip(newEO)
		}
	}

	for slice := 0; slice < NSlice; slice++ {
		ep := slice2ep(slice)
		for m := 0; m < NumMoves; m++ {
			move := ElementaryMove[Move(m)]
			newEP := composePartial(ep, move.EP)
			mt.Slice[m][slice] = ep2slice(newEP)
		}
	}

	for corner := 0; corner < NCorner; corner++ {
		cp := corner2cp(corner)
		for m := 0; m < NumMoves; m++ {
			move := ElementaryMove[Move(m)]
			mt.Corner[m][corner] = cp2corner(cp.Compose(move.CP))
		}
	}

	for edge4 := 0; edge4 < NEdge4; edge4++ {
		ep := edge42ep(edge4)
		for _, m := range Phase2Moves {
			move := ElementaryMove[m]
			newEP := composePartial(ep, move.EP)
			mt.Edge4[m][edge4] = ep2edge4(newEP)
		}
	}

	for edge8 := 0; edge8 < NEdge8; edge8++ {
		ep := edge82ep(edge8)
		for _, m := range Phase2Moves {
			move := ElementaryMove[m]
			newEP := composePartial(ep, move.EP)
			mt.Edge8[m][edge8] = ep2edge8(newEP)
		}
	}

	return mt
}

// composePartial applies a full permutation q to a partial permutation
// p (entries may be -1), producing (p*q)[i] = p[q[i]]; undefined
// entries of p propagate as -1.
func composePartial(p, q Perm) Perm {
	r := make(Perm, len(q))
	for i := range r {
		v := p[q[i]]
		r[i] = v
	}
	return r
}
