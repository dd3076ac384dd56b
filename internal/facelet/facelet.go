// Package facelet converts between the 54-character facelet string
// representation of a cube's surface and the internal cubie-coordinate
// model used by internal/cube. It is an external collaborator: the
// solver core never imports it.
package facelet

import (
	"fmt"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

// faceLetters is the fixed center-color-per-face order: U,R,F,D,L,B.
// Facelet index i belongs to face i/9.
const faceLetters = "URFDLB"

// NumFacelets is the length of a valid facelet string.
const NumFacelets = 54

// cornerFacelet[i] gives the three facelet positions (the U or D facelet
// first, then clockwise) occupied by corner cubie i when the cube is
// solved. Cubie
// order is URF,UFL,ULB,UBR,DFR,DLF,DBL,DRB, matching internal/cube's
// CubieCube.CP indexing.
var cornerFacelet = [8][3]int{
	{8, 9, 20},
	{6, 18, 38},
	{0, 36, 47},
	{2, 45, 11},
	{29, 26, 15},
	{27, 44, 24},
	{33, 53, 42},
	{35, 17, 51},
}

// edgeFacelet[i] gives the two facelet positions occupied by edge cubie
// i when solved. Cubie order is UR,UF,UL,UB,DR,DF,DL,DB,FR,FL,BL,BR,
// matching internal/cube's CubieCube.EP indexing (0-7 non-slice, 8-11
// slice).
var edgeFacelet = [12][2]int{
	{5, 10}, {7, 19}, {3, 37}, {1, 46},
	{32, 16}, {28, 25}, {30, 43}, {34, 52},
	{23, 12}, {21, 41}, {50, 39}, {48, 14},
}

// cornerColors[i] and edgeColors[i] are the colors a solved corner/edge
// cubie i shows, in the same facelet order as cornerFacelet/edgeFacelet.
var (
	cornerColors [8][3]byte
	edgeColors   [12][2]byte
)

func init() {
	for i, pos := range cornerFacelet {
		for j, p := range pos {
			cornerColors[i][j] = faceLetters[p/9]
		}
	}
	for i, pos := range edgeFacelet {
		for j, p := range pos {
			edgeColors[i][j] = faceLetters[p/9]
		}
	}
}

// Identity is the facelet string of the solved cube.
var Identity = func() string {
	b := make([]byte, NumFacelets)
	for i := range b {
		b[i] = faceLetters[i/9]
	}
	return string(b)
}()

// ToFacelets renders a cubie-cube state as its 54-character facelet
// string: each cubie's home colors are rotated by its orientation and
// written to the positions its current permutation slot occupies.
func ToFacelets(c cube.CubieCube) string {
	b := make([]byte, NumFacelets)
	for i := 0; i < 6; i++ {
		b[i*9+4] = faceLetters[i]
	}
	for i := 0; i < 8; i++ {
		cubie := c.CP[i]
		ori := c.CO.V[i]
		for j := 0; j < 3; j++ {
			b[cornerFacelet[i][j]] = cornerColors[cubie][(j-ori+3)%3]
		}
	}
	for i := 0; i < 12; i++ {
		cubie := c.EP[i]
		ori := c.EO.V[i]
		for j := 0; j < 2; j++ {
			b[edgeFacelet[i][j]] = edgeColors[cubie][(j-ori+2)%2]
		}
	}
	return string(b)
}

// FromFacelets parses a 54-character facelet string into a cubie cube:
// for each position, the observed color triple/pair is matched (up to
// rotation) against exactly one home cubie, yielding its permutation
// slot and orientation.
func FromFacelets(s string) (cube.CubieCube, error) {
	if err := validateShape(s); err != nil {
		return cube.CubieCube{}, err
	}

	cp := make(cube.Perm, 8)
	co := cube.NewModArray(3, 8)
	for i := 0; i < 8; i++ {
		observed := [3]byte{s[cornerFacelet[i][0]], s[cornerFacelet[i][1]], s[cornerFacelet[i][2]]}
		cubie, ori, ok := matchCorner(observed)
		if !ok {
			return cube.CubieCube{}, fmt.Errorf("facelet: no corner cubie matches colors at position %d", i)
		}
		cp[i] = cubie
		co.V[i] = ori
	}

	ep := make(cube.Perm, 12)
	eo := cube.NewModArray(2, 12)
	for i := 0; i < 12; i++ {
		observed := [2]byte{s[edgeFacelet[i][0]], s[edgeFacelet[i][1]]}
		cubie, ori, ok := matchEdge(observed)
		if !ok {
			return cube.CubieCube{}, fmt.Errorf("facelet: no edge cubie matches colors at position %d", i)
		}
		ep[i] = cubie
		eo.V[i] = ori
	}

	return cube.CubieCube{CP: cp, CO: co, EP: ep, EO: eo}, nil
}

func matchCorner(observed [3]byte) (cubie, ori int, ok bool) {
	for j, home := range cornerColors {
		for o := 0; o < 3; o++ {
			if home[(3-o)%3] == observed[0] && home[(4-o)%3] == observed[1] && home[(5-o)%3] == observed[2] {
				return j, o, true
			}
		}
	}
	return 0, 0, false
}

func matchEdge(observed [2]byte) (cubie, ori int, ok bool) {
	for j, home := range edgeColors {
		for o := 0; o < 2; o++ {
			if home[(2-o)%2] == observed[0] && home[(3-o)%2] == observed[1] {
				return j, o, true
			}
		}
	}
	return 0, 0, false
}

// validateShape checks the structural preconditions IsValid relies on:
// correct length and six distinct center letters.
func validateShape(s string) error {
	if len(s) != NumFacelets {
		return fmt.Errorf("facelet: expected %d characters, got %d", NumFacelets, len(s))
	}
	seen := map[byte]bool{}
	for i := 0; i < 6; i++ {
		c := s[i*9+4]
		if seen[c] {
			return fmt.Errorf("facelet: duplicate center color %q", c)
		}
		seen[c] = true
	}
	if len(seen) != 6 {
		return fmt.Errorf("facelet: expected 6 distinct center colors")
	}
	return nil
}

// IsValid reports whether s is a well-formed facelet string: the right
// length, six distinct center colors, and every corner/edge facelet
// triple/pair matching some real cubie's color set.
func IsValid(s string) bool {
	if err := validateShape(s); err != nil {
		return false
	}
	for i := 0; i < 8; i++ {
		observed := [3]byte{s[cornerFacelet[i][0]], s[cornerFacelet[i][1]], s[cornerFacelet[i][2]]}
		if _, _, ok := matchCorner(observed); !ok {
			return false
		}
	}
	for i := 0; i < 12; i++ {
		observed := [2]byte{s[edgeFacelet[i][0]], s[edgeFacelet[i][1]]}
		if _, _, ok := matchEdge(observed); !ok {
			return false
		}
	}
	return true
}

// Apply parses facelets into a cubie cube, applies moves, and renders
// the result back to a facelet string.
func Apply(facelets string, moves []cube.Move) (string, error) {
	c, err := FromFacelets(facelets)
	if err != nil {
		return "", err
	}
	return ToFacelets(c.ApplyMoves(moves)), nil
}
