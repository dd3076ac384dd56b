package cube

import "sync"

// maxUint8 marks an unvisited pruning-table entry during BFS.
const maxUint8 = 0xFF

// PruningTable holds the four admissible lower-bound tables used by
// the two-phase search. Each entry is the minimum number of moves
// (within the applicable move set) required to reach the phase subgoal
// from the indexed coordinate pair.
type PruningTable struct {
	SliceTwist  [][]uint8 // [slice][twist]
	SliceFlip   [][]uint8 // [slice][flip]
	Edge4Corner [][]uint8 // [edge4][corner]
	Edge4Edge8  [][]uint8 // [edge4][edge8]
}

var (
	pruningTable     *PruningTable
	pruningTableOnce sync.Once
)

// PruningTables returns the shared, lazily-built pruning tables.
func PruningTables() *PruningTable {
	pruningTableOnce.Do(func() {
		mt := Tables()
		pruningTable = &PruningTable{
			SliceTwist:  bfsPair(NSlice, NTwist, mt.Slice, mt.Twist, EM0Moves()),
			SliceFlip:   bfsPair(NSlice, NFlip, mt.Slice, mt.Flip, EM0Moves()),
			Edge4Corner: bfsPair(NEdge4, NCorner, mt.Edge4, mt.Corner, Phase2Moves[:]),
			Edge4Edge8:  bfsPair(NEdge4, NEdge8, mt.Edge4, mt.Edge8, Phase2Moves[:]),
		}
	})
	return pruningTable
}

// EM0Moves returns all 18 moves, the phase-1 move set.
func EM0Moves() []Move {
	ms := make([]Move, NumMoves)
	for i := range ms {
		ms[i] = Move(i)
	}
	return ms
}

// bfsPair computes the admissible distance table for a coordinate pair
// (a,b) by breadth-first search from the goal state (0,0), walking
// both component move tables in lockstep. Unreached pairs (which cannot
// occur for a reachable cube) are left at maxUint8.
func bfsPair(na, nb int, tableA, tableB [][]int, moves []Move) [][]uint8 {
	dist := make([][]uint8, na)
	for i := range dist {
		dist[i] = make([]uint8, nb)
		for j := range dist[i] {
			dist[i][j] = maxUint8
		}
	}

	dist[0][0] = 0
	type pair struct{ a, b int }
	frontier := []pair{{0, 0}}
	depth := uint8(0)

	for len(frontier) > 0 {
		next := make([]pair, 0, len(frontier)*2)
		for _, p := range frontier {
			for _, m := range moves {
				na2 := tableA[m][p.a]
				nb2 := tableB[m][p.b]
				if dist[na2][nb2] != maxUint8 {
					continue
				}
				dist[na2][nb2] = depth + 1
				next = append(next, pair{na2, nb2})
			}
		}
		frontier = next
		depth++
	}
	return dist
}
