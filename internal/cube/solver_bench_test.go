package cube

import "testing"

// BenchmarkTwoPhaseSolve benchmarks the two-phase solver on various
// scramble complexities. Table construction is paid once by the first
// NewTwoPhaseSolver call, outside the timed loop.
func BenchmarkTwoPhaseSolve(b *testing.B) {
	benchmarks := []struct {
		name     string
		scramble []Move
	}{
		{"1move", []Move{MoveR}},
		{"3moves", []Move{MoveR, MoveU, MoveF}},
		{"5moves", []Move{MoveR, MoveU, MoveRPrime, MoveUPrime, MoveF}},
		{"8moves", []Move{MoveR, MoveU, MoveF, MoveD2, MoveL, MoveB, MoveRPrime, MoveU2}},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			solver := NewTwoPhaseSolver()
			coord := CubieCube2Coord(IdentityCube().ApplyMoves(bm.scramble))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				found, _, _ := solver.Solve(coord, DefaultMaxSteps, false)
				if !found {
					b.Fatal("solver failed to find a solution")
				}
			}
		})
	}
}
