package maneuver

import (
	"strings"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

var (
	cornerNames = [8]string{"urf", "ufl", "ulb", "ubr", "dfr", "dlf", "dbl", "drb"}
	edgeNames   = [12]string{"ur", "uf", "ul", "ub", "dr", "df", "dl", "db", "fr", "fl", "bl", "br"}
	orientSign  = [3]string{"", "+", "-"}
)

// Decompose renders a cubie cube's permutation as a cycle decomposition
// string: corners first, then edges, each as a run of parenthesized
// fixed points (only shown when twisted/flipped) followed by cycles in
// descending length order, e.g. "(-dfr,+drb,-ubr,+urf)(fr,dr,br,ur)".
// The identity cube renders as "id".
func Decompose(c cube.CubieCube) string {
	var b strings.Builder
	writeGroup(&b, c.CP, c.CO.V, cornerNames[:])
	writeGroup(&b, c.EP, c.EO.V, edgeNames[:])
	if b.Len() == 0 {
		return "id"
	}
	return b.String()
}

func writeGroup(b *strings.Builder, perm cube.Perm, ori []int, names []string) {
	fixed, cycles := decomposePerm(perm)
	for _, pos := range fixed {
		if ori[pos] == 0 {
			continue
		}
		b.WriteString("(")
		b.WriteString(orientSign[ori[pos]])
		b.WriteString(names[pos])
		b.WriteString(")")
	}
	for _, cyc := range cycles {
		n := len(cyc)
		b.WriteString("(")
		for i, pos := range cyc {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(orientSign[ori[cyc[(n-1+i)%n]]])
			b.WriteString(names[pos])
		}
		b.WriteString(")")
	}
}

// decomposePerm splits a permutation into fixed points and cycles
// (longest first). Each cycle lists the images visited after the start
// index, ending with the start index itself.
func decomposePerm(p cube.Perm) (fixed []int, cycles [][]int) {
	visited := make([]bool, len(p))
	for i := range p {
		if visited[i] {
			continue
		}
		var cycle []int
		for j := p[i]; j != i; j = p[j] {
			visited[j] = true
			cycle = append(cycle, j)
		}
		visited[i] = true
		cycle = append(cycle, i)
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		} else {
			fixed = append(fixed, cycle[0])
		}
	}
	sortCyclesByLengthDesc(cycles)
	return fixed, cycles
}

func sortCyclesByLengthDesc(cycles [][]int) {
	for i := 1; i < len(cycles); i++ {
		for j := i; j > 0 && len(cycles[j-1]) < len(cycles[j]); j-- {
			cycles[j-1], cycles[j] = cycles[j], cycles[j-1]
		}
	}
}
