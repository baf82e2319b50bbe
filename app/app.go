// Package app defines the timeflow command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timeflowhq/timeflow/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the timeflow app instance.
func Get() *cli.App {
	timeflowApp := &cli.App{
		Name: "timeflow",
		Usage: `
		Timeflow is a personal time tracker for the command-line. It records
		what you spend your days on and lays the week out on a printable
		chart, one column per day, with the overnight hours compressed.`,
		UsageText:            "COMMAND [OPTIONS] [ARGUMENTS...]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Start a timer. The main and sub timers run independently",
				ArgsUsage: "[SESSION NAME]",
				Action:    startAction,
				Flags:     []cli.Flag{subFlag, categoryFlag},
			},
			{
				Name:   "stop",
				Usage:  "Stop a running timer and record the session",
				Action: stopAction,
				Flags:  []cli.Flag{subFlag},
			},
			{
				Name:   "status",
				Usage:  "Print the status of both timers",
				Action: statusAction,
			},
			{
				Name:      "add",
				Usage:     "Record a past session, or plan a future one, without running a timer",
				ArgsUsage: "[SESSION NAME]",
				Action:    addAction,
				Flags:     []cli.Flag{startFlag, endFlag, categoryFlag, planFlag},
			},
			{
				Name:   "list",
				Usage:  "List the sessions recorded today, or for the whole week",
				Action: listAction,
				Flags:  []cli.Flag{dateFlag, weekViewFlag, planFlag, jsonFlag},
			},
			{
				Name:      "delete",
				Usage:     "Delete one or more recorded sessions by id",
				ArgsUsage: "[SESSION ID...]",
				Action:    deleteAction,
				Flags:     []cli.Flag{planFlag},
			},
			{
				Name:   "report",
				Usage:  "Summarise a week, or serve its printable timeline chart",
				Action: reportAction,
				Flags:  []cli.Flag{weekFlag, serveFlag, portFlag},
			},
			{
				Name:  "category",
				Usage: "Manage the categories sessions are grouped under",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List all categories",
						Action: listCategoriesAction,
					},
					{
						Name:      "add",
						Usage:     "Add a new category",
						ArgsUsage: "NAME",
						Action:    addCategoryAction,
						Flags:     []cli.Flag{colorFlag},
					},
					{
						Name:      "rename",
						Usage:     "Rename a category",
						ArgsUsage: "ID NEW_NAME",
						Action:    renameCategoryAction,
					},
					{
						Name:      "recolor",
						Usage:     "Change the colour of a category",
						ArgsUsage: "ID COLOR",
						Action:    recolorCategoryAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete a category. Its sessions fall back to 'unknown'",
						ArgsUsage: "ID",
						Action:    deleteCategoryAction,
					},
				},
			},
			{
				Name:   "board",
				Usage:  "Manage the kanban board of upcoming work",
				Action: listBoardAction,
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a task to the board",
						ArgsUsage: "[TASK NAME]",
						Action:    addBoardAction,
						Flags:     []cli.Flag{categoryFlag, estimateFlag},
					},
					{
						Name:      "move",
						Usage:     "Move a task to another lane (todo, doing, done)",
						ArgsUsage: "ID LANE",
						Action:    moveBoardAction,
					},
					{
						Name:      "delete",
						Usage:     "Remove a task from the board",
						ArgsUsage: "ID",
						Action:    deleteBoardAction,
					},
				},
			},
			{
				Name:   "todo",
				Usage:  "Manage the todo checklist",
				Action: listTodosAction,
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a todo item",
						ArgsUsage: "[TEXT]",
						Action:    addTodoAction,
					},
					{
						Name:      "done",
						Usage:     "Toggle a todo item's completion",
						ArgsUsage: "ID",
						Action:    toggleTodoAction,
					},
					{
						Name:      "delete",
						Usage:     "Remove a todo item",
						ArgsUsage: "ID",
						Action:    deleteTodoAction,
					},
				},
			},
		},
		Flags:  []cli.Flag{noColorFlag},
		Before: beforeAction,
	}

	return timeflowApp
}
