// Package cli contains all business logic needed by the synscapes command.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

// Flags.
const (
	flagConfig = "config"
	flagDebug  = "debug"

	flagAnalyzeNum = "analyze-num"
	flagDisplayNum = "display-num"
	flagSort       = "sort"
	flagFilter     = "filter"
	flagMin        = "min"
	flagMax        = "max"
	flagList       = "list"
	flagSheet      = "sheet"
	flagColumns    = "columns"
	flagThumbWidth = "thumb-width"

	flagIndex     = "index"
	flagType      = "type"
	flagThreshold = "threshold"
	flagXKCD      = "xkcd"
	flagFullBox   = "full-box"
	flagSave      = "save"

	flagWorkers      = "workers"
	flagSkipExisting = "skip-existing"

	flagKey  = "key"
	flagPlot = "plot"
	flagBins = "bins"
)

func analyzeNumFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    flagAnalyzeNum,
		Aliases: []string{"a"},
		Usage:   "maximum number of images to analyze (uniform stride, 0 for all)",
	}
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "synscapes",
		Usage:           "inspect the SynScapes synthetic driving dataset",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "view",
				Usage:     "display RGB images, optionally filtered and sorted by scene metadata",
				ArgsUsage: "ROOT",
				Flags: []cli.Flag{
					analyzeNumFlag(),
					&cli.IntFlag{
						Name:    flagDisplayNum,
						Aliases: []string{"d"},
						Usage:   "maximum number of images to display (uniform stride, 0 for all)",
					},
					&cli.StringFlag{
						Name:    flagSort,
						Aliases: []string{"s"},
						Usage:   "sort ascending by scene `KEY`",
					},
					&cli.StringFlag{
						Name:  flagFilter,
						Usage: "keep images whose scene `KEY` lies within --min and --max",
					},
					&cli.Float64Flag{
						Name:  flagMin,
						Usage: "inclusive lower bound for --filter (default unbounded)",
					},
					&cli.Float64Flag{
						Name:  flagMax,
						Usage: "inclusive upper bound for --filter (default unbounded)",
					},
					&cli.BoolFlag{
						Name:  flagList,
						Usage: "print the selected indices instead of displaying them",
					},
					&cli.PathFlag{
						Name:  flagSheet,
						Usage: "write a contact sheet of the selection to `FILE` instead of displaying it",
					},
					&cli.IntFlag{
						Name:  flagColumns,
						Value: 4,
						Usage: "contact sheet columns",
					},
					&cli.IntFlag{
						Name:  flagThumbWidth,
						Value: 360,
						Usage: "contact sheet thumbnail width in pixels",
					},
				},
				Action: ViewAction,
			},
			{
				Name:      "visualize",
				Aliases:   []string{"bbox"},
				Usage:     "draw annotations of one image",
				ArgsUsage: "ROOT",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     flagIndex,
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "dataset index of the image",
					},
					&cli.StringFlag{
						Name:    flagType,
						Aliases: []string{"t"},
						Value:   "2d",
						Usage:   "annotation to draw: 2d, 3d, class or instance",
					},
					&cli.Float64Flag{
						Name:  flagThreshold,
						Usage: "hide instances occluded or truncated by more than this percentage (default from config)",
					},
					&cli.BoolFlag{
						Name:  flagXKCD,
						Usage: "draw labels in black",
					},
					&cli.BoolFlag{
						Name:  flagFullBox,
						Usage: "draw all twelve edges of 3D boxes",
					},
					&cli.PathFlag{
						Name:  flagSave,
						Usage: "write the result to `FILE` instead of displaying it",
					},
				},
				Action: VisualizeAction,
			},
			{
				Name:      "colorize",
				Usage:     "write a palette-coloured copy of every class map to img/class_rgb",
				ArgsUsage: "ROOT",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    flagWorkers,
						Aliases: []string{"w"},
						Usage:   "number of images converted in parallel (default from config)",
					},
					&cli.BoolFlag{
						Name:  flagSkipExisting,
						Usage: "keep class_rgb images that already exist",
					},
				},
				Action: ColorizeAction,
			},
			{
				Name:      "stats",
				Usage:     "summarize a scene field across the dataset",
				ArgsUsage: "ROOT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagKey,
						Aliases:  []string{"k"},
						Required: true,
						Usage:    "scene `KEY` to summarize",
					},
					analyzeNumFlag(),
					&cli.PathFlag{
						Name:  flagPlot,
						Usage: "write a histogram to `FILE`",
					},
					&cli.IntFlag{
						Name:  flagBins,
						Value: 20,
						Usage: "histogram bins",
					},
				},
				Action: StatsAction,
			},
			{
				Name:   "keys",
				Usage:  "list the scene keys usable for sorting, filtering and stats",
				Action: KeysAction,
			},
		},
	}
}
