package cli

import (
	"github.com/spf13/cobra"

	"github.com/nbowd/graphsearch/maze"
)

// newMazeCmd solves an ASCII maze file and prints the cheapest path.
func newMazeCmd() *cobra.Command {
	var (
		diagonal bool
		stepCost int64
		render   bool
	)
	cmd := &cobra.Command{
		Use:   "maze <maze.txt>",
		Short: "Solve an ASCII maze with Dijkstra",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			grid, err := loadMazeFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("parsed maze",
				"width", grid.Width, "height", grid.Height,
				"start", grid.Start, "exit", grid.Exit)

			opts := []maze.Option{maze.WithStepCost(stepCost)}
			if diagonal {
				opts = append(opts, maze.WithConnectivity(maze.Conn8))
			}

			sol, err := maze.Solve(grid, opts...)
			if err != nil {
				return err
			}

			if render {
				cmd.Println(renderSolution(grid, sol))
			} else {
				for _, c := range sol.Path {
					cmd.Println(c)
				}
			}
			cmd.Printf("cost %d\n", sol.Cost)

			return nil
		},
	}
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal movement")
	cmd.Flags().Int64Var(&stepCost, "step-cost", 1, "cost of a single move")
	cmd.Flags().BoolVarP(&render, "render", "r", false, "draw the maze with the path overlaid")

	return cmd
}
