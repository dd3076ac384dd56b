package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/kociemba/internal/facelet"
	"github.com/ehrlich-b/kociemba/internal/maneuver"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <maneuver>",
	Short: "Verify a maneuver transforms a start state to a target state",
	Long: `Verify applies a maneuver to --start (the solved cube by default)
and checks whether the result matches --target (also solved by default).

Examples:
  # A pure commutator should return to solved
  cube verify "R U R' U' U R U' R'"

  # Verify a maneuver reaches a specific target facelet state
  cube verify "R" --target <facelets>`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		algorithm := args[0]
		startFacelets, _ := cmd.Flags().GetString("start")
		targetFacelets, _ := cmd.Flags().GetString("target")
		headless, _ := cmd.Flags().GetBool("headless")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if startFacelets == "" {
			startFacelets = facelet.Identity
		}
		if targetFacelets == "" {
			targetFacelets = facelet.Identity
		}

		moves, err := maneuver.Parse(algorithm)
		if err != nil {
			fail(headless, "Error parsing maneuver: %v\n", err)
		}

		result, err := facelet.Apply(startFacelets, moves)
		if err != nil {
			fail(headless, "Error applying maneuver: %v\n", err)
		}

		matches := result == targetFacelets
		if matches {
			if !headless {
				fmt.Printf("PASS: %q transforms start into target\n", algorithm)
				if verbose {
					fmt.Printf("Start:  %s\n", startFacelets)
					fmt.Printf("Target: %s\n", targetFacelets)
				}
			}
			return
		}

		if !headless {
			fmt.Printf("FAIL: %q does not reach the target state\n", algorithm)
			fmt.Printf("Start:  %s\n", startFacelets)
			fmt.Printf("Target: %s\n", targetFacelets)
			fmt.Printf("Actual: %s\n", result)
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().String("start", "", "Starting cube state as a 54-character facelet string (default: solved)")
	verifyCmd.Flags().String("target", "", "Target cube state as a 54-character facelet string (default: solved)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show start/target states")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
}
