// Package cli contains the birrt command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	generalFlagDebug   = "debug"
	generalFlagLogFile = "log-file"
	generalFlagStore   = "store"

	planFlagProblem = "problem"
	planFlagSeed    = "seed"
	planFlagMaxIter = "max-iter"
	planFlagJSON    = "json"
	planFlagPlot    = "plot"
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "birrt",
		Usage:           "plan collision free paths with a bidirectional RRT",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.PathFlag{
				Name:  generalFlagLogFile,
				Usage: "also write logs to `FILE`",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "plan",
				Usage:     "plan a path for a problem file",
				UsageText: "birrt plan --problem <problem.json5> [other options]",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:     planFlagProblem,
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "load the problem from `FILE`",
					},
					&cli.Int64Flag{
						Name:  planFlagSeed,
						Usage: "sampler seed, overriding the problem file",
					},
					&cli.IntFlag{
						Name:  planFlagMaxIter,
						Usage: "iteration budget, overriding the problem file",
					},
					&cli.StringFlag{
						Name:  generalFlagStore,
						Usage: "save the run to the SQLite database at `DSN`",
					},
					&cli.PathFlag{
						Name:  planFlagPlot,
						Usage: "draw a two dimensional run to `FILE` (png, svg or pdf)",
					},
					&cli.BoolFlag{
						Name:  planFlagJSON,
						Usage: "print the result as JSON",
					},
				},
				Action: PlanAction,
			},
			{
				Name:      "bench",
				Usage:     "plan a problem with several seeds and summarize the results",
				UsageText: "birrt bench --problem <problem.json5> --runs 20",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:     planFlagProblem,
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "load the problem from `FILE`",
					},
					&cli.IntFlag{
						Name:  benchFlagRuns,
						Value: 10,
						Usage: "number of seeds to plan with, starting at the problem's seed",
					},
					&cli.IntFlag{
						Name:  benchFlagParallel,
						Value: 4,
						Usage: "number of runs planned at once",
					},
					&cli.IntFlag{
						Name:  planFlagMaxIter,
						Usage: "iteration budget, overriding the problem file",
					},
				},
				Action: BenchAction,
			},
			{
				Name:   "schema",
				Usage:  "print the JSON schema of problem files",
				Action: SchemaAction,
			},
			{
				Name:  "runs",
				Usage: "work with stored planning runs",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "list the runs in a store",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     generalFlagStore,
								Required: true,
								Usage:    "SQLite database `DSN`",
							},
						},
						Action: ListRunsAction,
					},
					{
						Name:      "path",
						Usage:     "print the path of a stored run",
						ArgsUsage: "<run id>",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     generalFlagStore,
								Required: true,
								Usage:    "SQLite database `DSN`",
							},
						},
						Action: PrintRunPathAction,
					},
				},
			},
		},
	}
}
