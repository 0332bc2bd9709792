// Command npuzzle solves n-tile sliding puzzles from the command line.
//
// Usage:
//
//	npuzzle solve bfs 1,2,0,4,5,3,7,8,6
//	npuzzle solve ast 8,6,4,2,1,3,5,7,0 --pretty
//
// The board is given row-major, comma-separated, with 0 for the blank. The
// strategy is one of bfs, dfs or ast. On success the solver's report is
// printed to stdout and, unless disabled with --output "", written to a
// file as well.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/tilegraph/npuzzle"
	"github.com/tilegraph/npuzzle/internal/logging"
	"github.com/tilegraph/npuzzle/internal/memusage"
)

var (
	rootCmd = &cobra.Command{
		Use:   "npuzzle",
		Short: "A solver for n-tile sliding puzzles",
		Long: `npuzzle explores the state space of a sliding puzzle to find the move
sequence that sorts a scrambled board, using breadth-first, depth-first or
A* search with the Manhattan-distance heuristic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [strategy] [board]",
		Short: "Solve a board with the given strategy (bfs, dfs or ast)",
		Long: `Solve searches for the move sequence transforming the given board into
the sorted configuration 0,1,2,...,n-1 and reports the path together with
exploration statistics.`,
		Args: cobra.ExactArgs(2),
		RunE: runSolve,
	}

	outputPath    string
	prettyOutput  bool
	debugLogs     bool
	quietLogs     bool
	jsonLogs      bool
	profileDir    string
	maxExpansions int
)

func init() {
	solveCmd.Flags().StringVar(&outputPath, "output", "output.txt", "also write the report to this file (empty to disable)")
	solveCmd.Flags().BoolVar(&prettyOutput, "pretty", false, "render the board and report with terminal styling")
	solveCmd.Flags().BoolVar(&debugLogs, "debug", false, "log the per-expansion search trace")
	solveCmd.Flags().BoolVar(&quietLogs, "quiet", false, "suppress all log output")
	solveCmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "emit logs as JSON")
	solveCmd.Flags().StringVar(&profileDir, "cpuprofile", "", "write a CPU profile into this directory")
	solveCmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "abort after this many node expansions (0 = unlimited)")
	rootCmd.AddCommand(solveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	logConfig := logging.Config{Level: logging.LevelInfo, JSON: jsonLogs, Quiet: quietLogs}
	if debugLogs {
		logConfig.Level = logging.LevelDebug
	}
	logger := logging.New(logConfig)

	if profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(profileDir)).Stop()
	}

	strategy, err := npuzzle.ParseStrategy(args[0])
	if err != nil {
		return err
	}
	board, err := npuzzle.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	solveOptions := []npuzzle.Option{npuzzle.WithLogger(logger)}
	if maxExpansions > 0 {
		solveOptions = append(solveOptions, npuzzle.WithExpansionLimit(maxExpansions))
	}

	logger.Info("solving", "strategy", strategy.String(), "side", board.Side(),
		"manhattan", npuzzle.Manhattan(board))

	result, err := npuzzle.Solve(board, strategy, solveOptions...)
	switch {
	case errors.Is(err, npuzzle.ErrNoSolution):
		logger.Error("this is an unsolvable board")
		return err
	case errors.Is(err, npuzzle.ErrSearchAborted):
		logger.Error("search aborted before termination", "max_expansions", maxExpansions)
		return err
	case err != nil:
		return err
	}

	peakRSS, err := memusage.PeakRSS()
	if err != nil {
		logger.Warn("peak RSS unavailable", "error", err)
	}

	report := formatReport(result, peakRSS)
	if prettyOutput {
		fmt.Print(renderPretty(board, result, peakRSS))
	} else {
		fmt.Print(report)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(report), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("report written", "path", outputPath)
	}
	return nil
}

// formatReport renders the report block in the solver's plain line-per-stat
// form, which is also what --output writes.
func formatReport(result npuzzle.Result, peakRSS int64) string {
	labels := make([]string, len(result.Path))
	for i, move := range result.Path {
		labels[i] = move.String()
	}
	var builder strings.Builder
	fmt.Fprintf(&builder, "path_to_goal: [%s]\n", strings.Join(labels, ", "))
	fmt.Fprintf(&builder, "cost_of_path: %d\n", result.CostOfPath)
	fmt.Fprintf(&builder, "nodes_expanded: %d\n", result.NodesExpanded)
	fmt.Fprintf(&builder, "search_depth: %d\n", result.SearchDepth)
	fmt.Fprintf(&builder, "max_search_depth: %d\n", result.MaxSearchDepth)
	fmt.Fprintf(&builder, "running_time: %.8f\n", result.RunningTime.Seconds())
	fmt.Fprintf(&builder, "max_ram_usage: %d\n", peakRSS)
	return builder.String()
}
