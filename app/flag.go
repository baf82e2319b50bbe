package app

import "github.com/urfave/cli/v2"

var (
	subFlag = &cli.BoolFlag{
		Name:  "sub",
		Usage: "Operate on the sub timer instead of the main timer",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "Category id or name for the session",
	}

	startFlag = &cli.StringFlag{
		Name:     "start",
		Aliases:  []string{"s"},
		Usage:    "Start time of the session (e.g. '2024-01-15 09:00', 'yesterday 21:30')",
		Required: true,
	}

	endFlag = &cli.StringFlag{
		Name:     "end",
		Aliases:  []string{"e"},
		Usage:    "End time of the session. An end at or before the start is taken to be on the next day",
		Required: true,
	}

	planFlag = &cli.BoolFlag{
		Name:  "plan",
		Usage: "Operate on planned sessions instead of recorded ones",
	}

	weekFlag = &cli.StringFlag{
		Name:    "week",
		Aliases: []string{"w"},
		Usage:   "Any date (YYYY-MM-DD) inside the week to report on. Defaults to the current week",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "The logical day (YYYY-MM-DD) to list. Defaults to today",
	}

	weekViewFlag = &cli.BoolFlag{
		Name:    "week",
		Aliases: []string{"w"},
		Usage:   "List the whole week instead of a single day",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	serveFlag = &cli.BoolFlag{
		Name:  "serve",
		Usage: "Serve the printable weekly chart over HTTP instead of printing to the terminal",
	}

	portFlag = &cli.UintFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "Specify the port for the report server",
		Value:   1111,
	}

	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "Category colour as a hex triplet (e.g. #3b82f6)",
	}

	estimateFlag = &cli.StringFlag{
		Name:    "estimate",
		Aliases: []string{"t"},
		Usage:   "Estimated effort for the task (e.g. '90m', '2h30m')",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
