package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/kociemba/internal/facelet"
	"github.com/ehrlich-b/kociemba/internal/maneuver"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <maneuver>",
	Short: "Apply a maneuver to a cube and display the result",
	Long: `Apply parses and applies a sequence of moves to a cube and displays
the resulting facelet string. It does not solve the cube.

Examples:
  cube apply "R U R' U'"
  cube apply "(RU){3}F'" --start <facelets>`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startFacelets, _ := cmd.Flags().GetString("start")
		if startFacelets == "" {
			startFacelets = facelet.Identity
		}

		moves, err := maneuver.Parse(args[0])
		if err != nil {
			fmt.Printf("Error parsing maneuver: %v\n", err)
			os.Exit(1)
		}

		result, err := facelet.Apply(startFacelets, moves)
		if err != nil {
			fmt.Printf("Error applying maneuver: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(result)
	},
}

func init() {
	applyCmd.Flags().String("start", "", "Starting cube state as a 54-character facelet string (default: solved)")
}
