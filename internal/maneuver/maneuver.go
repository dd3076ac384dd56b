// Package maneuver implements the cube's external move-sequence
// surface: parsing algebra notation like "(RU){3}F'" into elementary
// moves, and rendering a cubie cube's permutation as a cycle
// decomposition string. Neither concern is needed by the solver core;
// both exist for the CLI, web and REPL layers.
package maneuver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

var (
	atomRe    = `(?:[UDLRFB]['23]?)+`
	repeatRe  = regexp.MustCompile(`\((` + atomRe + `)\)\{(\d+)\}`)
	groupRe   = regexp.MustCompile(`\((` + atomRe + `)\)`)
	plainRe   = regexp.MustCompile(atomRe)
	termRe    = regexp.MustCompile(plainRe.String() + `|` + repeatRe.String() + `|` + groupRe.String())
	faceIndex = map[byte]cube.Face{'U': cube.FaceU, 'R': cube.FaceR, 'F': cube.FaceF, 'D': cube.FaceD, 'L': cube.FaceL, 'B': cube.FaceB}
)

// Parse reads a maneuver string: a space-separated sequence of terms,
// where a term is a bare run of face turns (e.g. "U F2 D"), a
// parenthesized run repeated `{n}` times, or a bare parenthesized run.
// Nested parentheses are not supported.
func Parse(s string) ([]cube.Move, error) {
	expanded, err := expand(s)
	if err != nil {
		return nil, err
	}
	return mapMoves(expanded)
}

// expand flattens groups and repetitions into a plain run of face-turn
// atoms, in the order they're matched left to right. Text between terms
// must be whitespace; anything else is a parse error.
func expand(s string) (string, error) {
	var b strings.Builder
	pos := 0
	for pos < len(s) {
		loc := termRe.FindStringIndex(s[pos:])
		if loc == nil {
			if rest := strings.TrimSpace(s[pos:]); rest != "" {
				return "", fmt.Errorf("maneuver: unrecognized text %q", rest)
			}
			break
		}
		if gap := strings.TrimSpace(s[pos : pos+loc[0]]); gap != "" {
			return "", fmt.Errorf("maneuver: unrecognized text %q", gap)
		}
		term := s[pos+loc[0] : pos+loc[1]]
		switch {
		case repeatRe.MatchString(term):
			m := repeatRe.FindStringSubmatch(term)
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return "", fmt.Errorf("maneuver: bad repeat count in %q: %w", term, err)
			}
			for i := 0; i < n; i++ {
				b.WriteString(m[1])
			}
		case groupRe.MatchString(term):
			m := groupRe.FindStringSubmatch(term)
			b.WriteString(m[1])
		default:
			b.WriteString(term)
		}
		pos += loc[1]
	}
	return b.String(), nil
}

// mapMoves converts a flattened atom string (e.g. "UU2F'") into moves,
// character by character: a face letter pushes a new quarter turn, and
// a trailing '2' or '\''/'3' upgrades the most recently pushed move to
// a half or inverse turn.
func mapMoves(s string) ([]cube.Move, error) {
	var ms []cube.Move
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			continue
		case c == '2':
			if len(ms) == 0 {
				return nil, fmt.Errorf("maneuver: %q modifier with no preceding move", c)
			}
			ms[len(ms)-1] = cube.MoveFromFacePower(ms[len(ms)-1].Face(), 2)
		case c == '\'' || c == '3':
			if len(ms) == 0 {
				return nil, fmt.Errorf("maneuver: %q modifier with no preceding move", c)
			}
			ms[len(ms)-1] = cube.MoveFromFacePower(ms[len(ms)-1].Face(), 3)
		default:
			f, ok := faceIndex[c]
			if !ok {
				return nil, fmt.Errorf("maneuver: unsupported character %q", c)
			}
			ms = append(ms, cube.MoveFromFacePower(f, 1))
		}
	}
	return ms, nil
}

// Format renders a move sequence as space-separated algebra notation.
func Format(ms []cube.Move) string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
