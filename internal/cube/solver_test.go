package cube

import "testing"

func TestIsDullTriple(t *testing.T) {
	tests := []struct {
		name    string
		a       Move
		b, c    int
		wantDul bool
	}{
		{"no history", MoveR, -1, -1, false},
		{"repeats previous face", MoveR2, int(MoveR), -1, true},
		{"different face, no history two back", MoveU, int(MoveR), -1, false},
		{"opposite-face commuting pair (U D U)", MoveU, int(MoveD), int(MoveU), true},
		{"same two-back face but not opposite (U R U)", MoveU, int(MoveR), int(MoveU), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDullTriple(tt.a, tt.b, tt.c); got != tt.wantDul {
				t.Errorf("isDullTriple(%v, %d, %d) = %v, want %v", tt.a, tt.b, tt.c, got, tt.wantDul)
			}
		})
	}
}

func TestPruningAdmissibility(t *testing.T) {
	s := NewTwoPhaseSolver()
	coords := []Coord{
		IdentityCoord,
		CubieCube2Coord(IdentityCube().ApplyMove(MoveR)),
		CubieCube2Coord(IdentityCube().ApplyMoves([]Move{MoveR, MoveU, MoveF2})),
	}
	for _, c := range coords {
		h := s.distance(phase1, c)
		for _, m := range allMoves {
			next := s.transform(phase1, c, m)
			hn := s.distance(phase1, next)
			if diff := hn - h; diff > 1 || diff < -1 {
				t.Errorf("phase1 heuristic changed by %d applying %s to %+v (h=%d, h'=%d)", diff, m, c, h, hn)
			}
		}
	}
}

func TestSolverSolvesIdentityAtZeroDepth(t *testing.T) {
	s := NewTwoPhaseSolver()
	found, sol1, sol2 := s.Solve(IdentityCoord, DefaultMaxSteps, false)
	if !found {
		t.Fatal("Solve(identity) should always find a solution")
	}
	if len(sol1) != 0 || len(sol2) != 0 {
		t.Errorf("Solve(identity) = %v, %v, want both empty", sol1, sol2)
	}
}

func TestSolverRespectsStepBound(t *testing.T) {
	s := NewTwoPhaseSolver()
	scramble := IdentityCube().ApplyMoves([]Move{MoveR, MoveU, MoveF, MoveD2, MoveL})
	coord := CubieCube2Coord(scramble)

	found, sol1, sol2 := s.Solve(coord, DefaultMaxSteps, false)
	if !found {
		t.Fatal("expected a solution within the default step bound")
	}
	if total := len(sol1) + len(sol2); total > maxTotalDepth {
		t.Errorf("solution length %d exceeds maxTotalDepth %d", total, maxTotalDepth)
	}
}
