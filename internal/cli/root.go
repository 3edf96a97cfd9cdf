package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the graphsearch CLI and returns an error if any command
// fails. Logging defaults to info level; --verbose (-v) switches to debug.
// The logger is attached to the command context and retrieved by
// subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "graphsearch",
		Short:        "graphsearch runs classic graph and maze searches",
		Long:         "graphsearch loads graphs from TOML files and mazes from text grids,\nthen runs DFS, BFS, cycle detection, Dijkstra shortest paths, or the maze solver.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDFSCmd())
	root.AddCommand(newBFSCmd())
	root.AddCommand(newCycleCmd())
	root.AddCommand(newDijkstraCmd())
	root.AddCommand(newMazeCmd())

	return root.ExecuteContext(ctx)
}
