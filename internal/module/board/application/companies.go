package application

import (
	"context"
	"log/slog"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
	"github.com/zencareer/zenadmin/internal/module/notify"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// CompaniesController drives the companies screen.
type CompaniesController struct {
	screen   *Screen[domain.Company]
	gateway  domain.CompanyGateway
	notifier *notify.Notifier
	log      *slog.Logger
}

// NewCompaniesController creates the controller with an idle screen.
func NewCompaniesController(gateway domain.CompanyGateway, notifier *notify.Notifier, log *slog.Logger) *CompaniesController {
	return &CompaniesController{
		screen:   NewScreen[domain.Company](),
		gateway:  gateway,
		notifier: notifier,
		log:      log,
	}
}

// Screen exposes the state machine to the presentation layer.
func (c *CompaniesController) Screen() *Screen[domain.Company] { return c.screen }

// Load fetches the full company list.
func (c *CompaniesController) Load(ctx context.Context) error {
	c.screen.SetLoading()

	companies, err := c.gateway.List(ctx)
	if err != nil {
		c.log.Error("failed to load companies", "error", err)
		c.screen.ResolveFailed(err)
		c.notifier.Error(apierr.MessageFor(err))
		return err
	}

	c.screen.ResolveLoaded(companies)
	return nil
}

// Create validates and submits the company form. The gateway handles
// multipart encoding when a logo is attached.
func (c *CompaniesController) Create(ctx context.Context, draft domain.CompanyDraft) (*domain.Company, error) {
	if err := draft.Validate(); err != nil {
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.BeginSubmit()
	defer c.screen.EndSubmit()

	created, err := c.gateway.Create(ctx, draft)
	if err != nil {
		c.log.Error("failed to create company", "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.AppendOne(*created)
	c.notifier.Success("Company added successfully!")
	return created, nil
}

// Update validates and replaces a company record.
func (c *CompaniesController) Update(ctx context.Context, id int64, draft domain.CompanyDraft) (*domain.Company, error) {
	if err := draft.Validate(); err != nil {
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.BeginSubmit()
	defer c.screen.EndSubmit()

	updated, err := c.gateway.Update(ctx, id, draft)
	if err != nil {
		c.log.Error("failed to update company", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.ReplaceOne(*updated)
	c.notifier.Success("Company updated successfully!")
	return updated, nil
}

// Delete removes a company. A referential-constraint rejection keeps the
// snapshot untouched and surfaces the server's specific message, not a
// generic failure.
func (c *CompaniesController) Delete(ctx context.Context, id int64) error {
	c.screen.BeginPending(id)
	defer c.screen.EndPending(id)

	if err := c.gateway.Remove(ctx, id); err != nil {
		c.log.Error("failed to delete company", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return err
	}

	c.screen.RemoveOne(id)
	c.notifier.Success("Company deleted successfully!")
	return nil
}
