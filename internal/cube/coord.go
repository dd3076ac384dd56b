package cube

// The six coordinate ranges of the cube group's projection onto
// tractable integer-indexed spaces.
const (
	NTwist  = 2187  // 3^7, corner orientation
	NFlip   = 2048  // 2^11, edge orientation
	NSlice  = 495   // C(12,4), slice-edge placement
	NCorner = 40320 // 8!, corner permutation
	NEdge4  = 24    // 4!, slice-edge permutation (phase 2)
	NEdge8  = 40320 // 8!, non-slice-edge permutation (phase 2)
)

// sliceCubieBase is the first of the edge cubie indices belonging to the
// UD-slice: FR, FL, BL, BR are 8..11.
const sliceCubieBase = 8

// Coord is the six-integer projection of a CubieCube used throughout
// the two-phase search. Phase 1 reads Twist/Flip/Slice; phase 2 reads
// Corner/Edge4/Edge8 (only meaningful once Slice==0).
type Coord struct {
	Twist, Flip, Slice   int
	Corner, Edge4, Edge8 int
}

// IdentityCoord is the coordinate of the solved cube.
var IdentityCoord = Coord{}

// co2twist encodes a corner orientation vector as the base-3 number
// formed by its first 7 digits; the 8th is redundant (zero-sum).
func co2twist(co ModArray) int {
	t := 0
	for i := 0; i < 7; i++ {
		t = t*3 + co.V[i]
	}
	return t
}

// twist2co decodes a twist coordinate back into a full 8-entry
// orientation vector, deriving the 8th entry from the zero-sum invariant.
func twist2co(twist int) ModArray {
	co := NewModArray(3, 8)
	sum := 0
	for i := 6; i >= 0; i-- {
		co.V[i] = twist % 3
		sum += co.V[i]
		twist /= 3
	}
	co.V[7] = (3 - sum%3) % 3
	return co
}

// eo2flip encodes an edge orientation vector as the base-2 number formed
// by its first 11 digits; the 12th is redundant.
func eo2flip(eo ModArray) int {
	f := 0
	for i := 0; i < 11; i++ {
		f = f*2 + eo.V[i]
	}
	return f
}

// flip2eo decodes a flip coordinate back into a full 12-entry
// orientation vector.
func flip2eo(flip int) ModArray {
	eo := NewModArray(2, 12)
	sum := 0
	for i := 10; i >= 0; i-- {
		eo.V[i] = flip % 2
		sum += eo.V[i]
		flip /= 2
	}
	eo.V[11] = (2 - sum%2) % 2
	return eo
}

// cp2corner encodes a corner permutation as its Lehmer rank.
func cp2corner(cp Perm) int { return cp.Rank() }

// corner2cp decodes a corner coordinate into a corner permutation.
func corner2cp(corner int) Perm { return PermFromRank(8, corner) }

// ep2slice returns the combinatorial rank of the positions occupied by
// the four slice cubies (FR,FL,BL,BR -> cubie indices 8..11) among the
// 12 edge slots.
func ep2slice(ep Perm) int {
	positions := make([]int, 0, 4)
	for i, cubie := range ep {
		if cubie >= sliceCubieBase {
			positions = append(positions, i)
		}
	}
	return rankCombination(12, 4, positions)
}

// slice2ep reconstructs the partial edge permutation that places the
// slice cubies (in ascending cubie order) at the positions implied by
// the slice coordinate. Non-slice positions are left as -1 (undefined):
// only the total reconstruction see2ep is guaranteed complete.
func slice2ep(slice int) Perm {
	ep := make(Perm, 12)
	for i := range ep {
		ep[i] = -1
	}
	positions := unrankCombination(12, 4, slice)
	for i, pos := range positions {
		ep[pos] = sliceCubieBase + i
	}
	return ep
}

// ep2edge4 returns the rank, in S4, of the slice cubies read in order
// of the positions they occupy. When Slice==0 those positions are
// exactly 8..11, so this is the plain restriction of the permutation;
// the position-order reading keeps the encoding total mid-phase-1,
// which the see2ep reconstruction relies on.
func ep2edge4(ep Perm) int {
	rel := make(Perm, 0, 4)
	for _, v := range ep {
		if v >= sliceCubieBase {
			rel = append(rel, v-sliceCubieBase)
		}
	}
	return rel.Rank()
}

// edge42ep reconstructs the partial edge permutation for positions
// 8..11 from an edge4 coordinate; positions 0..7 are left undefined.
func edge42ep(edge4 int) Perm {
	ep := make(Perm, 12)
	for i := range ep {
		ep[i] = -1
	}
	rel := PermFromRank(4, edge4)
	for i := 0; i < 4; i++ {
		ep[sliceCubieBase+i] = sliceCubieBase + rel[i]
	}
	return ep
}

// ep2edge8 returns the Lehmer rank, in S8, of the non-slice cubies read
// in order of the positions they occupy; the restriction to positions
// 0..7 when Slice==0. Undefined entries of a partial permutation are
// skipped.
func ep2edge8(ep Perm) int {
	rel := make(Perm, 0, 8)
	for _, v := range ep {
		if v >= 0 && v < sliceCubieBase {
			rel = append(rel, v)
		}
	}
	return rel.Rank()
}

// edge82ep reconstructs the partial edge permutation for positions
// 0..7 from an edge8 coordinate; positions 8..11 are left undefined.
func edge82ep(edge8 int) Perm {
	ep := make(Perm, 12)
	for i := range ep {
		ep[i] = -1
	}
	rel := PermFromRank(8, edge8)
	copy(ep, rel)
	return ep
}

// see2ep is the total reconstruction of an edge permutation from the
// three partial coordinates: slice fixes which 4 positions hold the
// slice cubies, edge4 orders the slice cubies within those positions,
// and edge8 orders the remaining cubies within the complementary
// positions.
func see2ep(slice, edge4, edge8 int) Perm {
	ep := make(Perm, 12)
	positions := unrankCombination(12, 4, slice)
	inSlice := make([]bool, 12)
	for _, p := range positions {
		inSlice[p] = true
	}
	complement := make([]int, 0, 8)
	for i := 0; i < 12; i++ {
		if !inSlice[i] {
			complement = append(complement, i)
		}
	}

	relSlice := PermFromRank(4, edge4)
	for i, pos := range positions {
		ep[pos] = sliceCubieBase + relSlice[i]
	}

	relRest := PermFromRank(8, edge8)
	for i, pos := range complement {
		ep[pos] = relRest[i]
	}
	return ep
}

// CubieCube2Coord projects a full cube state onto its six coordinates.
func CubieCube2Coord(c CubieCube) Coord {
	return Coord{
		Twist:  co2twist(c.CO),
		Flip:   eo2flip(c.EO),
		Slice:  ep2slice(c.EP),
		Corner: cp2corner(c.CP),
		Edge4:  ep2edge4(c.EP),
		Edge8:  ep2edge8(c.EP),
	}
}

// Coord2CubieCube reconstructs a full cube state from its coordinates.
func Coord2CubieCube(c Coord) CubieCube {
	return CubieCube{
		CP: corner2cp(c.Corner),
		CO: twist2co(c.Twist),
		EP: see2ep(c.Slice, c.Edge4, c.Edge8),
		EO: flip2eo(c.Flip),
	}
}
