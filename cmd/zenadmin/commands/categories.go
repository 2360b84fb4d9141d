package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

const categoriesScreenPath = "/dashboard/view-categories"

// CategoryListAction fetches and renders the categories screen.
func CategoryListAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, categoriesScreenPath); err != nil {
		return err
	}

	controller := appCtx.Container.Categories
	if err := controller.Load(ctx); err != nil {
		return err
	}

	displayCategoriesTable(controller.Screen().Snapshot())
	return nil
}

// CategoryAddAction creates a category.
func CategoryAddAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, "/dashboard/add-category"); err != nil {
		return err
	}

	created, err := appCtx.Container.Categories.Create(ctx, domain.CategoryDraft{Name: cmd.String("name")})
	if err != nil {
		return err
	}

	fmt.Printf("Created category %d: %s\n", created.ID, created.Name)
	return nil
}

// CategoryUpdateAction renames a category.
func CategoryUpdateAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, categoriesScreenPath); err != nil {
		return err
	}

	updated, err := appCtx.Container.Categories.Update(ctx, int64(cmd.Int("id")), domain.CategoryDraft{Name: cmd.String("name")})
	if err != nil {
		return err
	}

	fmt.Printf("Updated category %d: %s\n", updated.ID, updated.Name)
	return nil
}

// CategoryDeleteAction removes a category. Categories still referenced
// by jobs come back as a conflict with the server's message.
func CategoryDeleteAction(ctx context.Context, cmd *cli.Command) error {
	appCtx, err := NewAppContext(cmd.String("env"), cmd.String("config"))
	if err != nil {
		return err
	}
	defer appCtx.Close()

	if err := requireSession(appCtx, categoriesScreenPath); err != nil {
		return err
	}

	if err := appCtx.Container.Categories.Delete(ctx, int64(cmd.Int("id"))); err != nil {
		return err
	}

	fmt.Printf("Deleted category %d\n", cmd.Int("id"))
	return nil
}

// displayCategoriesTable renders the category snapshot.
func displayCategoriesTable(categories []domain.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name")

	for _, category := range categories {
		table.Append(fmt.Sprintf("%d", category.ID), category.Name)
	}

	table.Render()
}
