package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/timeutil"
	"github.com/timeflowhq/timeflow/internal/ui"
)

func listTodosAction(_ *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	todos, err := db.GetTodos()
	if err != nil {
		return err
	}

	if len(todos) == 0 {
		pterm.Info.Println("the todo list is empty")
		return nil
	}

	data := [][]string{{"id", "done", "text", "completed at"}}

	for _, todo := range todos {
		mark := " "
		completedAt := "-"

		if todo.Completed {
			mark = ui.Green("x")

			if todo.CompletedAt != nil {
				completedAt = todo.CompletedAt.Format("Jan 02 15:04")
			}
		}

		data = append(data, []string{todo.ID, mark, todo.Text, completedAt})
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

func addTodoAction(ctx *cli.Context) error {
	text := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if text == "" {
		pterm.Warning.Println("the todo text is required")
		return nil
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	todo := models.Todo{
		ID:   timeutil.GenerateID(time.Now()),
		Text: text,
	}

	if err := db.SaveTodo(todo); err != nil {
		return err
	}

	pterm.Success.Printfln("added todo %s (%s)", ui.Highlight(text), todo.ID)

	return nil
}

// toggleTodoAction flips the completion state of an item, stamping the
// completion time on the way up and clearing it on the way back.
func toggleTodoAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		pterm.Warning.Println("specify a todo id")
		return nil
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	todos, err := db.GetTodos()
	if err != nil {
		return err
	}

	for _, todo := range todos {
		if todo.ID != id {
			continue
		}

		todo.Completed = !todo.Completed

		if todo.Completed {
			now := time.Now()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}

		if err := db.SaveTodo(todo); err != nil {
			return err
		}

		if todo.Completed {
			pterm.Success.Printfln("completed: %s", todo.Text)
		} else {
			pterm.Info.Printfln("reopened: %s", todo.Text)
		}

		return nil
	}

	return fmt.Errorf("no todo with id: %s", id)
}

func deleteTodoAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		pterm.Warning.Println("specify a todo id")
		return nil
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteTodo(id); err != nil {
		return err
	}

	pterm.Success.Printfln("deleted todo %s", id)

	return nil
}
