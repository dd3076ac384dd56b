package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ehrlich-b/kociemba/internal/cube"
	"github.com/ehrlich-b/kociemba/internal/facelet"
	"github.com/ehrlich-b/kociemba/internal/maneuver"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive solve/color/perm session",
	Long: `Repl is an interactive loop offering three commands:

    solve <src> [tgt=cid] [best=1] [N=30]  -- find a solution from src to tgt within N steps
    color <maneuver> [cube=cid]            -- render the facelets after applying maneuver to cube
    perm  <maneuver>                       -- decompose maneuver into a cubie permutation

where src/tgt/cube are 54-character facelet strings (or "cid" for solved)
and maneuver is a move sequence such as "FRL'B2D" or "(DR'F2L){7} BD2".`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

var replHelp = `[Help]
    solve <src> [tgt=cid] [best=1] [N=30]  -- find [best] solution from <src> to [tgt] within [N] steps
    color <maneuver> [cube=cid]            -- color by applying maneuver to cube
    perm  <maneuver>                       -- decompose maneuver to cubies permutation

where:
   <...>           -- required argument
   [...]           -- optional argument
   src,tgt,cube    :: the color configuration; eg: ` + "`" + facelet.Identity + "`" + `
   maneuver        :: the move sequence;       eg: ` + "`FRL'B2D`, `(DR'F2L){7} BD2`" + `
`

func runRepl() {
	fmt.Println("Welcome! This is a Rubik's cube solver.")
	fmt.Println("(`:h` for help, `:q` for quit)")

	scanner := bufio.NewScanner(os.Stdin)
	no := 0
	for {
		fmt.Printf("\nIn [%d] := ", no)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		command := fields[0]

		if command == ":q" {
			break
		}
		if command == ":h" {
			fmt.Print(replHelp)
			continue
		}

		fmt.Printf("\nOut[%d] => ", no)
		if !replDispatch(command, fields[1:]) {
			continue
		}
		no++
	}
	fmt.Println("\nGoodbye!")
}

// replDispatch runs one REPL command and reports whether the response
// counter should be advanced (false for unsupported commands).
func replDispatch(command string, args []string) bool {
	switch command {
	case "solve":
		replSolve(args)
	case "color":
		replColor(args)
	case "perm":
		replPerm(args)
	default:
		fmt.Printf("!!! unsupported command `%s`\n", command)
		return false
	}
	return true
}

func replSolve(args []string) {
	src := facelet.Identity
	tgt := facelet.Identity
	maxSteps := cube.DefaultMaxSteps
	best := true

	if len(args) > 0 && args[0] != "cid" {
		src = args[0]
	}
	if len(args) > 1 && args[1] != "cid" {
		tgt = args[1]
	}
	if len(args) > 2 {
		if b, err := strconv.Atoi(args[2]); err == nil {
			best = b != 0
		}
	}
	if len(args) > 3 {
		if n, err := strconv.Atoi(args[3]); err == nil {
			maxSteps = n
		}
	}

	srcCube, err := facelet.FromFacelets(src)
	if err != nil {
		fmt.Println("!!! the source cube is invalid")
		return
	}
	tgtCube, err := facelet.FromFacelets(tgt)
	if err != nil {
		fmt.Println("!!! the target cube is invalid")
		return
	}

	status, moves, err := cube.Solve(srcCube, tgtCube, maxSteps, best)
	switch status {
	case cube.StatusBadSrc:
		fmt.Println("!!! the source cube is invalid")
		return
	case cube.StatusBadTgt:
		fmt.Println("!!! the target cube is invalid")
		return
	case cube.StatusUnsolvable:
		fmt.Println("!!! unsolvable")
		return
	case cube.StatusNotFound:
		fmt.Println("!!! solution not found since N is too small")
		return
	}
	if err != nil {
		fmt.Printf("!!! %v\n", err)
		return
	}
	fmt.Println(maneuver.Format(moves))
}

func replColor(args []string) {
	if len(args) == 0 {
		fmt.Println("!!! color: missing maneuver")
		return
	}
	start := facelet.Identity
	if len(args) > 1 && args[1] != "cid" {
		start = args[1]
	}
	moves, err := maneuver.Parse(args[0])
	if err != nil {
		fmt.Printf("!!! %v\n", err)
		return
	}
	result, err := facelet.Apply(start, moves)
	if err != nil {
		fmt.Printf("!!! %v\n", err)
		return
	}
	fmt.Println(result)
}

func replPerm(args []string) {
	if len(args) == 0 {
		fmt.Println("!!! perm: missing maneuver")
		return
	}
	moves, err := maneuver.Parse(args[0])
	if err != nil {
		fmt.Printf("!!! %v\n", err)
		return
	}
	fmt.Println(maneuver.Decompose(cube.Apply(cube.IdentityCube(), moves)))
}
