package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
	"github.com/zencareer/zenadmin/internal/module/notify"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// CategoriesController drives the categories screen.
type CategoriesController struct {
	screen   *Screen[domain.Category]
	gateway  domain.CategoryGateway
	notifier *notify.Notifier
	log      *slog.Logger
}

// NewCategoriesController creates the controller with an idle screen.
func NewCategoriesController(gateway domain.CategoryGateway, notifier *notify.Notifier, log *slog.Logger) *CategoriesController {
	return &CategoriesController{
		screen:   NewScreen[domain.Category](),
		gateway:  gateway,
		notifier: notifier,
		log:      log,
	}
}

// Screen exposes the state machine to the presentation layer.
func (c *CategoriesController) Screen() *Screen[domain.Category] { return c.screen }

// Load fetches the full category list.
func (c *CategoriesController) Load(ctx context.Context) error {
	c.screen.SetLoading()

	categories, err := c.gateway.List(ctx)
	if err != nil {
		c.log.Error("failed to load categories", "error", err)
		c.screen.ResolveFailed(err)
		c.notifier.Error(apierr.MessageFor(err))
		return err
	}

	c.screen.ResolveLoaded(categories)
	return nil
}

// Create validates and submits a new category, splicing the
// server-assigned entity into the snapshot.
func (c *CategoriesController) Create(ctx context.Context, draft domain.CategoryDraft) (*domain.Category, error) {
	if err := draft.Validate(); err != nil {
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.BeginSubmit()
	defer c.screen.EndSubmit()

	created, err := c.gateway.Create(ctx, draft)
	if err != nil {
		c.log.Error("failed to create category", "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.AppendOne(*created)
	c.notifier.Success(fmt.Sprintf("Category %q added successfully!", strings.TrimSpace(draft.Name)))
	return created, nil
}

// Update renames a category.
func (c *CategoriesController) Update(ctx context.Context, id int64, draft domain.CategoryDraft) (*domain.Category, error) {
	if err := draft.Validate(); err != nil {
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.BeginSubmit()
	defer c.screen.EndSubmit()

	updated, err := c.gateway.Update(ctx, id, draft)
	if err != nil {
		c.log.Error("failed to update category", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.ReplaceOne(*updated)
	c.notifier.Success("Category updated successfully!")
	return updated, nil
}

// Delete removes a category.
func (c *CategoriesController) Delete(ctx context.Context, id int64) error {
	c.screen.BeginPending(id)
	defer c.screen.EndPending(id)

	if err := c.gateway.Remove(ctx, id); err != nil {
		c.log.Error("failed to delete category", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return err
	}

	c.screen.RemoveOne(id)
	c.notifier.Success("Category deleted successfully!")
	return nil
}
