package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/kociemba/internal/facelet"
	"github.com/ehrlich-b/kociemba/internal/maneuver"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [maneuver]",
	Short: "Show a cube's facelets and permutation after a maneuver",
	Long: `Show applies an optional maneuver to the solved cube (or --start)
and prints both the resulting facelet string and its cycle
decomposition relative to the solved cube.

Examples:
  cube show "R U R' U'"
  cube show "" --start <facelets>`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m := ""
		if len(args) > 0 {
			m = args[0]
		}
		startFacelets, _ := cmd.Flags().GetString("start")
		if startFacelets == "" {
			startFacelets = facelet.Identity
		}

		moves, err := maneuver.Parse(m)
		if err != nil {
			fmt.Printf("Error parsing maneuver: %v\n", err)
			os.Exit(1)
		}

		c, err := facelet.FromFacelets(startFacelets)
		if err != nil {
			fmt.Printf("Error parsing --start facelets: %v\n", err)
			os.Exit(1)
		}
		c = c.ApplyMoves(moves)

		fmt.Println(facelet.ToFacelets(c))
		fmt.Println(maneuver.Decompose(c))
	},
}

func init() {
	showCmd.Flags().String("start", "", "Starting cube state as a 54-character facelet string (default: solved)")
}
