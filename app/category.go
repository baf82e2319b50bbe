package app

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/timeflowhq/timeflow/internal/models"
	"github.com/timeflowhq/timeflow/internal/ui"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

const defaultCategoryColor = "#64748b"

// categoryID derives a stable id from a category name.
func categoryID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func findCategory(cats []models.Category, id string) (models.Category, error) {
	for _, c := range cats {
		if c.ID == id {
			return c, nil
		}
	}

	return models.Category{}, fmt.Errorf("unknown category: %s", id)
}

func listCategoriesAction(_ *cli.Context) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	data := [][]string{{"id", "name", "color"}}

	for _, c := range cats {
		data = append(data, []string{c.ID, c.Name, c.Color})
	}

	ui.PrintTable(data, os.Stdout)

	return nil
}

func addCategoryAction(ctx *cli.Context) error {
	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		pterm.Warning.Println("a category name is required")
		return nil
	}

	color := ctx.String("color")
	if color == "" {
		color = defaultCategoryColor
	}

	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid colour %q: expected a hex triplet like #3b82f6", color)
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

	id := categoryID(name)

	if _, err := findCategory(cats, id); err == nil {
		return fmt.Errorf("category already exists: %s", id)
	}

	cat := models.Category{ID: id, Name: name, Color: color}

	if err := db.SaveCategory(cat); err != nil {
		return err
	}

	pterm.Success.Printfln("added category %s (%s)", ui.Highlight(name), id)

	return nil
}

func renameCategoryAction(ctx *cli.Context) error {
	if ctx.Args().Len() < 2 {
		pterm.Warning.Println("usage: timeflow category rename ID NEW_NAME")
		return nil
	}

	id := ctx.Args().First()
	name := strings.TrimSpace(strings.Join(ctx.Args().Slice()[1:], " "))

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cats, err := db.GetCategories()
	if err != nil {
		return err
	}

	cat, err := findCategory(cats, id)
	if err != nil {
		return err
	}

	cat.Name = name

	if err := db.SaveCategory(cat); err != nil {
		return err
	}

	pterm.Success.Printfln("renamed %s to %s", id, ui.Highlight(name))

	return nil
}

func recolorCategoryAction(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		pterm.Warning.Println("usage: timeflow category recolor ID COLOR")
		return nil
	}

	id, color := ctx.Args().Get(0), ctx.Args().Get(1)

	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid colour %q: expected a hex triplet like #3b82f6", color)
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

	cat, err := findCategory(cats, id)
	if err != nil {
		return err
	}

	cat.Color = color

	if err := db.SaveCategory(cat); err != nil {
		return err
	}

	pterm.Success.Printfln("updated colour of %s to %s", id, color)

	return nil
}

func deleteCategoryAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		pterm.Warning.Println("specify a category id")
		return nil
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteCategory(id); err != nil {
		return err
	}

	pterm.Success.Printfln("deleted category %s", id)

	return nil
}
