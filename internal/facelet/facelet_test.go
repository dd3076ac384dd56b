package facelet

import (
	"testing"

	"github.com/ehrlich-b/kociemba/internal/cube"
)

func TestIdentityRoundTrip(t *testing.T) {
	c, err := FromFacelets(Identity)
	if err != nil {
		t.Fatalf("FromFacelets(Identity) error: %v", err)
	}
	if !c.Equal(cube.IdentityCube()) {
		t.Errorf("FromFacelets(Identity) = %+v, want identity cube", c)
	}
	if got := ToFacelets(c); got != Identity {
		t.Errorf("ToFacelets(FromFacelets(Identity)) = %q, want %q", got, Identity)
	}
}

func TestFaceletRoundTripOnScrambles(t *testing.T) {
	scrambles := [][]cube.Move{
		{cube.MoveR},
		{cube.MoveU, cube.MoveRPrime},
		{cube.MoveR, cube.MoveU, cube.MoveRPrime, cube.MoveUPrime},
		{cube.MoveF2, cube.MoveL, cube.MoveB, cube.MoveD2, cube.MoveR2},
	}
	for _, s := range scrambles {
		c := cube.IdentityCube().ApplyMoves(s)
		s1 := ToFacelets(c)
		back, err := FromFacelets(s1)
		if err != nil {
			t.Fatalf("scramble %v: FromFacelets error: %v", s, err)
		}
		if !back.Equal(c) {
			t.Errorf("scramble %v: round trip mismatch: got %+v, want %+v", s, back, c)
		}
		if s2 := ToFacelets(back); s2 != s1 {
			t.Errorf("scramble %v: facelet string round trip mismatch: %q != %q", s, s2, s1)
		}
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"solved cube", Identity, true},
		{"too short", Identity[:50], false},
		{"scrambled by R", ToFacelets(cube.IdentityCube().ApplyMove(cube.MoveR)), true},
		{"duplicate center", Identity[:13] + "U" + Identity[14:], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.s); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestApplyMatchesCubieMoves(t *testing.T) {
	moves := []cube.Move{cube.MoveR, cube.MoveU, cube.MoveRPrime, cube.MoveUPrime}
	got, err := Apply(Identity, moves)
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	want := ToFacelets(cube.IdentityCube().ApplyMoves(moves))
	if got != want {
		t.Errorf("Apply(Identity, moves) = %q, want %q", got, want)
	}
}

// TestScrambledRFaceletString checks the literal facelet string produced
// by applying R to the solved cube, and that applying R' returns it to
// identity.
func TestScrambledRFaceletString(t *testing.T) {
	const wantR = "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB"
	scrambled := ToFacelets(cube.IdentityCube().ApplyMove(cube.MoveR))
	if scrambled != wantR {
		t.Fatalf("ToFacelets(R) = %q, want %q", scrambled, wantR)
	}
	result, err := Apply(scrambled, []cube.Move{cube.MoveRPrime})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if result != Identity {
		t.Errorf("applying R' to a cube scrambled by R = %q, want identity %q", result, Identity)
	}
}

func TestScrambledURFFaceletString(t *testing.T) {
	const wantURF = "UURUUFLLFURBURBFRBFFRFFRDDDRRRDDBDDLFFDLLDLLBULLUBBUBB"
	got := ToFacelets(cube.IdentityCube().ApplyMoves([]cube.Move{cube.MoveU, cube.MoveR, cube.MoveF}))
	if got != wantURF {
		t.Errorf("ToFacelets(URF) = %q, want %q", got, wantURF)
	}
}

func TestApplyFToRScramble(t *testing.T) {
	const start = "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB"
	const want = "UUFUUFLLLURRURRFRRFFFFFFDDDRRRDDBDDBLLDLLDLLBUBBUBBUBB"
	got, err := Apply(start, []cube.Move{cube.MoveF})
	if err != nil {
		t.Fatalf("Apply error: %v", err)
	}
	if got != want {
		t.Errorf("Apply(R-scramble, F) = %q, want %q", got, want)
	}
}
