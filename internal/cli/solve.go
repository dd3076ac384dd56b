package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/kociemba/internal/cube"
	"github.com/ehrlich-b/kociemba/internal/facelet"
	"github.com/ehrlich-b/kociemba/internal/maneuver"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve finds a move sequence taking a starting cube state to a
target cube state using Kociemba's two-phase algorithm.

The scramble argument is a maneuver (e.g. "R U R' U'") applied to
--start (the solved cube by default) to produce the position to solve.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		headless, _ := cmd.Flags().GetBool("headless")
		startFacelets, _ := cmd.Flags().GetString("start")
		targetFacelets, _ := cmd.Flags().GetString("target")
		maxSteps, _ := cmd.Flags().GetInt("max-steps")
		best, _ := cmd.Flags().GetBool("best")

		if startFacelets == "" {
			startFacelets = facelet.Identity
		}
		if targetFacelets == "" {
			targetFacelets = facelet.Identity
		}

		scrambleMoves, err := maneuver.Parse(scramble)
		if err != nil {
			fail(headless, "Error parsing scramble: %v\n", err)
		}

		src, err := facelet.FromFacelets(startFacelets)
		if err != nil {
			fail(headless, "Error parsing --start facelets: %v\n", err)
		}
		src = src.ApplyMoves(scrambleMoves)

		tgt, err := facelet.FromFacelets(targetFacelets)
		if err != nil {
			fail(headless, "Error parsing --target facelets: %v\n", err)
		}

		if !headless {
			fmt.Printf("Solving from: %s\n", facelet.ToFacelets(src))
			fmt.Printf("Target:      %s\n", facelet.ToFacelets(tgt))
		}

		status, moves, err := cube.Solve(src, tgt, maxSteps, best)
		if err != nil {
			fail(headless, "Error: %v\n", err)
		}

		solutionStr := maneuver.Format(moves)
		if headless {
			fmt.Print(solutionStr)
			return
		}
		fmt.Printf("Status:   %s\n", status)
		fmt.Printf("Solution: %s\n", solutionStr)
		fmt.Printf("Steps:    %d\n", len(moves))
	},
}

func fail(headless bool, format string, err error) {
	if !headless {
		fmt.Printf(format, err)
	}
	os.Exit(1)
}

func init() {
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().String("start", "", "Starting cube state as a 54-character facelet string (default: solved)")
	solveCmd.Flags().String("target", "", "Target cube state as a 54-character facelet string (default: solved)")
	solveCmd.Flags().Int("max-steps", cube.DefaultMaxSteps, "Maximum total move count to search for")
	solveCmd.Flags().Bool("best", false, "Keep searching for a shorter solution within the step bound")
}
