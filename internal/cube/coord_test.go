package cube

import "testing"

// scrambles is a handful of short move sequences used to generate
// reachable cubes for round-trip checks.
var scrambles = [][]Move{
	{},
	{MoveR},
	{MoveU, MoveRPrime},
	{MoveR, MoveU, MoveRPrime, MoveUPrime},
	{MoveF2, MoveL, MoveB, MoveD2, MoveR2},
	{MoveU, MoveU2, MoveD, MoveDPrime, MoveL2, MoveB2, MoveF, MoveR},
}

func TestCoordRoundTripOnReachableCubes(t *testing.T) {
	for _, s := range scrambles {
		c := IdentityCube().ApplyMoves(s)
		coord := CubieCube2Coord(c)
		back := Coord2CubieCube(coord)
		if !back.Equal(c) {
			t.Errorf("scramble %v: Coord2CubieCube(CubieCube2Coord(c)) = %+v, want %+v", s, back, c)
		}
	}
}

func TestCoordRoundTripOnSampledCoords(t *testing.T) {
	for _, tw := range []int{0, 1, 2186} {
		for _, fl := range []int{0, 1, 2047} {
			for _, sl := range []int{0, 1, 494} {
				for _, co := range []int{0, 1, 40319} {
					for _, e4 := range []int{0, 1, 23} {
						for _, e8 := range []int{0, 1, 40319} {
							coord := Coord{Twist: tw, Flip: fl, Slice: sl, Corner: co, Edge4: e4, Edge8: e8}
							c := Coord2CubieCube(coord)
							got := CubieCube2Coord(c)
							if got != coord {
								t.Errorf("Coord2CubieCube/CubieCube2Coord round trip: got %+v, want %+v", got, coord)
							}
						}
					}
				}
			}
		}
	}
}

func TestTwistFlipEncodeDecode(t *testing.T) {
	for _, twist := range []int{0, 1, 1093, 2186} {
		co := twist2co(twist)
		if got := co2twist(co); got != twist {
			t.Errorf("co2twist(twist2co(%d)) = %d, want %d", twist, got, twist)
		}
	}
	for _, flip := range []int{0, 1, 1024, 2047} {
		eo := flip2eo(flip)
		if got := eo2flip(eo); got != flip {
			t.Errorf("eo2flip(flip2eo(%d)) = %d, want %d", flip, got, flip)
		}
	}
}

func TestSee2epTotalReconstruction(t *testing.T) {
	for _, s := range scrambles {
		c := IdentityCube().ApplyMoves(s)
		slice := ep2slice(c.EP)
		edge4 := ep2edge4(c.EP)
		edge8 := ep2edge8(c.EP)
		ep := see2ep(slice, edge4, edge8)
		if !ep.Equal(c.EP) {
			t.Errorf("see2ep(%d,%d,%d) = %v, want %v", slice, edge4, edge8, ep, c.EP)
		}
	}
}
