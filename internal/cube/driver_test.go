package cube

import (
	"errors"
	"testing"
)

func TestSolveIdentityToIdentity(t *testing.T) {
	status, moves, err := Solve(IdentityCube(), IdentityCube(), DefaultMaxSteps, false)
	if status != StatusOk || err != nil {
		t.Fatalf("Solve(id, id) = %v, %v, want StatusOk, nil", status, err)
	}
	if len(moves) != 0 {
		t.Errorf("Solve(id, id) solution = %v, want empty", moves)
	}
}

func TestSolveSingleMoveScramble(t *testing.T) {
	scrambled := IdentityCube().ApplyMove(MoveR)
	status, moves, err := Solve(scrambled, IdentityCube(), DefaultMaxSteps, false)
	if status != StatusOk || err != nil {
		t.Fatalf("Solve(R, id) = %v, %v, want StatusOk, nil", status, err)
	}
	if !Apply(scrambled, moves).Equal(IdentityCube()) {
		t.Errorf("applying solution %v to scrambled cube did not reach identity", moves)
	}
}

func TestSolveCorrectnessOnLongerScramble(t *testing.T) {
	scramble := []Move{MoveR, MoveU, MoveF, MoveD2, MoveL, MoveB, MoveRPrime, MoveU2}
	src := IdentityCube().ApplyMoves(scramble)
	for _, best := range []bool{false, true} {
		status, moves, err := Solve(src, IdentityCube(), DefaultMaxSteps, best)
		if status != StatusOk || err != nil {
			t.Fatalf("best=%v: Solve = %v, %v, want StatusOk, nil", best, status, err)
		}
		if len(moves) > 30 {
			t.Errorf("best=%v: solution length %d exceeds 30", best, len(moves))
		}
		if !Apply(src, moves).Equal(IdentityCube()) {
			t.Errorf("best=%v: applying solution %v did not reach the target", best, moves)
		}
	}
}

func TestSolveReducesToTargetInverseTimesSource(t *testing.T) {
	src := IdentityCube().ApplyMoves([]Move{MoveR, MoveU})
	tgt := IdentityCube().ApplyMoves([]Move{MoveF, MoveD})
	status, moves, err := Solve(src, tgt, DefaultMaxSteps, false)
	if status != StatusOk || err != nil {
		t.Fatalf("Solve(src, tgt) = %v, %v", status, err)
	}
	if !Apply(src, moves).Equal(tgt) {
		t.Errorf("applying solution %v to src did not reach tgt", moves)
	}
}

func TestSolveUnsolvableSource(t *testing.T) {
	bad := IdentityCube()
	bad.EO.V[0] = 1 // flips a single edge, violating the zero-sum invariant

	status, _, err := Solve(bad, IdentityCube(), DefaultMaxSteps, false)
	if status != StatusUnsolvable {
		t.Errorf("Solve with a single flipped edge = status %v, want StatusUnsolvable", status)
	}
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Solve with a single flipped edge err = %v, want ErrUnsolvable", err)
	}
}

func TestSolveNotFoundWithZeroSteps(t *testing.T) {
	scrambled := IdentityCube().ApplyMove(MoveR)
	status, _, err := Solve(scrambled, IdentityCube(), 0, false)
	if status != StatusNotFound {
		t.Errorf("Solve with maxSteps=0 on a scrambled cube = %v, want StatusNotFound", status)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMergeMovesSameFaceCollapses(t *testing.T) {
	tests := []struct {
		name string
		a, b []Move
		want []Move
	}{
		{"R then R -> R2", []Move{MoveR}, []Move{MoveR}, []Move{MoveR2}},
		{"R then R' -> nothing", []Move{MoveR}, []Move{MoveRPrime}, nil},
		{"R then R2 -> R'", []Move{MoveR}, []Move{MoveR2}, []Move{MoveRPrime}},
		{"R then U -> both kept", []Move{MoveR}, []Move{MoveU}, []Move{MoveR, MoveU}},
		{"empty a", nil, []Move{MoveU}, []Move{MoveU}},
		{"empty b", []Move{MoveU}, nil, []Move{MoveU}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeMoves(tt.a, tt.b)
			if len(got) != len(tt.want) {
				t.Fatalf("mergeMoves(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("mergeMoves(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
				}
			}
		})
	}
}

func TestSolveRawMatchesSolve(t *testing.T) {
	src := IdentityCube().ApplyMoves([]Move{MoveR, MoveU, MoveF})
	status, moves, err := Solve(src, IdentityCube(), DefaultMaxSteps, false)
	if status != StatusOk || err != nil {
		t.Fatalf("Solve = %v, %v", status, err)
	}
	rawStatus, raw, err := SolveRaw(src, IdentityCube(), DefaultMaxSteps, false)
	if rawStatus != StatusOk || err != nil {
		t.Fatalf("SolveRaw = %v, %v", rawStatus, err)
	}
	if len(raw) != len(moves) {
		t.Fatalf("SolveRaw returned %d indices, Solve returned %d moves", len(raw), len(moves))
	}
	for i, m := range raw {
		if m < 0 || m >= NumMoves {
			t.Errorf("raw[%d] = %d, outside the move index range", i, m)
		}
		if Move(m) != moves[i] {
			t.Errorf("raw[%d] = %d, want %d", i, m, int(moves[i]))
		}
	}
}

func TestIsSolvableMatchesCubeMethod(t *testing.T) {
	id := IdentityCube()
	if !IsSolvable(id) {
		t.Error("identity cube should be solvable")
	}
	bad := id
	bad.CO = bad.CO.Clone()
	bad.CO.V[0] = 1
	if IsSolvable(bad) {
		t.Error("cube with a single twisted corner should not be solvable")
	}
}
