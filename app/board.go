package app

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/internal/ui"
)

var boardLanes = []models.BoardStatus{
	models.StatusTodo,
	models.StatusDoing,
	models.StatusDone,
}

func parseLane(s string) (models.BoardStatus, error) {
	lane := models.BoardStatus(strings.ToLower(strings.TrimSpace(s)))

	for _, known := range boardLanes {
		if lane == known {
			return lane, nil
		}
	}

	return "", fmt.Errorf("unknown lane %q: expected todo, doing, or done", s)
}

// listBoardAction prints the board lane by lane. Tasks within a lane sort
// naturally by name so "task 2" comes before "task 10".
func listBoardAction(_ *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	tasks, err := db.GetBoardTasks()
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		pterm.Info.Println("the board is empty")
		return nil
	}

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	byLane := make(map[models.BoardStatus][]models.BoardTask)
	for _, task := range tasks {
		byLane[task.Status] = append(byLane[task.Status], task)
	}

	for _, lane := range boardLanes {
		laneTasks := byLane[lane]
		if len(laneTasks) == 0 {
			continue
		}

		sort.Slice(laneTasks, func(i, j int) bool {
			return natural.Less(laneTasks[i].Name, laneTasks[j].Name)
		})

		pterm.Println(ui.Blue(strings.ToUpper(string(lane))))

		data := [][]string{{"id", "task", "category", "estimate"}}

		for _, task := range laneTasks {
			estimate := "-"
			if task.EstimatedDuration > 0 {
				estimate = timeutil.FormatDuration(task.EstimatedDuration)
			}

			data = append(data, []string{
				task.ID,
				task.Name,
				models.Resolve(cats, task.CategoryID).Name,
				estimate,
			})
		}

		ui.PrintTable(data, os.Stdout)
	}

	return nil
}

func addBoardAction(ctx *cli.Context) error {
	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		pterm.Warning.Println("a task name is required")
		return nil
	}

	var estimated int64

	if v := ctx.String("estimate"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid estimate %q: %w", v, err)
		}

		estimated = int64(d / time.Second)
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	cat, err := pickCategory(ctx, cats, models.SlotMain)
	if err != nil {
		return err
	}

	task := models.BoardTask{
		ID:                timeutil.GenerateID(time.Now()),
		Name:              name,
		Status:            models.StatusTodo,
		CategoryID:        cat.ID,
		EstimatedDuration: estimated,
	}

	if err := db.SaveBoardTask(task); err != nil {
		return err
	}

	pterm.Success.Printfln("added %s to the board (%s)", ui.Highlight(name), task.ID)

	return nil
}

func moveBoardAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		pterm.Warning.Println("usage: timeflow board move ID LANE")
		return nil
	}

	id := ctx.Args().First()

	lane, err := parseLane(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	tasks, err := db.GetBoardTasks()
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if task.ID != id {
			continue
		}

		task.Status = lane

		if err := db.SaveBoardTask(task); err != nil {
			return err
		}

		pterm.Success.Printfln("moved %s to %s", ui.Highlight(task.Name), lane)

		return nil
	}

	return fmt.Errorf("no board task with id: %s", id)
}

func deleteBoardAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		pterm.Warning.Println("specify a task id")
		return nil
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteBoardTask(id); err != nil {
		return err
	}

	pterm.Success.Printfln("removed task %s from the board", id)

	return nil
}
