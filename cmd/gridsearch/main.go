package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	gridsearch "github.com/andybb/TDT4136"
	"github.com/andybb/TDT4136/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	exitFound   = 0
	exitFailure = 1
	exitNoPath  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "gridsearch: %v\n", err)
		return exitFailure
	}

	code := exitFound
	cmd := newRootCommand(cfg, stdout, stderr, &code)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return exitFailure
	}
	return code
}

func newRootCommand(cfg config.Config, stdout, stderr io.Writer, code *int) *cobra.Command {
	var (
		algorithmName string
		overlayName   string
		workers       int
		logLevel      string
	)

	cmd := &cobra.Command{
		Use:   "gridsearch [flags] BOARD...",
		Short: "Find a path from A to B on ASCII boards with BFS or A*",
		Long: `Board files hold one row per line: # is a wall, A the start, B the goal,
'.' an empty cell and w, m, f, g terrain costing 100, 50, 10 and 5.

Exit status is 0 when every board was solved, 2 when some board has no
path and 1 when a board could not be read.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, boards []string) error {
			algorithm, err := gridsearch.ParseAlgorithm(algorithmName)
			if err != nil {
				return err
			}
			overlay, err := gridsearch.ParseOverlay(overlayName)
			if err != nil {
				return err
			}
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetOutput(stderr)
			logger.SetLevel(level)

			reports, err := gridsearch.RunBatch(cmd.Context(), boards,
				gridsearch.WithAlgorithm(algorithm),
				gridsearch.WithWorkers(workers),
				gridsearch.WithLogger(logger),
			)
			for _, report := range reports {
				*code = worstCode(*code, printReport(stdout, report, overlay))
			}
			return err
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&algorithmName, "algorithm", "a", cfg.Algorithm, "search algorithm: bfs or astar")
	flags.StringVar(&overlayName, "overlay", cfg.Overlay, "paint frontier and closed cells: auto, on or off")
	flags.IntVarP(&workers, "workers", "w", cfg.Workers, "boards solved concurrently")
	flags.StringVar(&logLevel, "log-level", cfg.LogLevel.String(), "log level written to stderr")
	return cmd
}

// printReport writes one board's outcome and returns its exit code.
func printReport(w io.Writer, report gridsearch.Report, overlay gridsearch.Overlay) int {
	fmt.Fprintln(w, report.Board)
	if report.Err != nil {
		fmt.Fprintf(w, "error: %v\n\n", report.Err)
		return exitFailure
	}

	result := report.Result
	fmt.Fprint(w, gridsearch.Render(report.Grid, result, gridsearch.WithOverlay(overlay)))
	if !result.Found {
		fmt.Fprintf(w, "%s: no path (expanded=%d)\n\n", result.Algorithm, result.ExpandedNodes)
		return exitNoPath
	}
	fmt.Fprintf(w, "%s: found cost=%d steps=%d expanded=%d\n\n",
		result.Algorithm, result.TotalCost, result.Steps(), result.ExpandedNodes)
	return exitFound
}

// worstCode orders codes as failure > no path > found.
func worstCode(a, b int) int {
	rank := func(code int) int {
		switch code {
		case exitFailure:
			return 2
		case exitNoPath:
			return 1
		}
		return 0
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}
