package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
	"github.com/zencareer/zenadmin/internal/module/notify"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// ApplicationsController drives the applications screen. Status changes
// are the only mutation; they run row-local so the rest of the table
// stays interactive.
type ApplicationsController struct {
	screen   *Screen[domain.Application]
	gateway  domain.ApplicationGateway
	notifier *notify.Notifier
	log      *slog.Logger
}

// NewApplicationsController creates the controller with an idle screen.
func NewApplicationsController(gateway domain.ApplicationGateway, notifier *notify.Notifier, log *slog.Logger) *ApplicationsController {
	return &ApplicationsController{
		screen:   NewScreen[domain.Application](),
		gateway:  gateway,
		notifier: notifier,
		log:      log,
	}
}

// Screen exposes the state machine to the presentation layer.
func (c *ApplicationsController) Screen() *Screen[domain.Application] { return c.screen }

// Load fetches every application.
func (c *ApplicationsController) Load(ctx context.Context) error {
	c.screen.SetLoading()

	applications, err := c.gateway.List(ctx)
	if err != nil {
		c.log.Error("failed to load applications", "error", err)
		c.screen.ResolveFailed(err)
		c.notifier.Error(apierr.MessageFor(err))
		return err
	}

	c.screen.ResolveLoaded(applications)
	return nil
}

// SetStatus moves one application through the review pipeline. The row
// id sits in the pending set for the whole request, success or failure,
// and the snapshot row is replaced with the server's canonical entity.
func (c *ApplicationsController) SetStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.IsValid() {
		err := &apierr.ValidationError{Field: "status", Message: fmt.Sprintf("unknown application status %q", status)}
		c.notifier.Error(err.Message)
		return nil, err
	}

	c.screen.BeginPending(id)
	defer c.screen.EndPending(id)

	updated, err := c.gateway.SetStatus(ctx, id, status)
	if err != nil {
		c.log.Error("failed to update application status", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.ReplaceOne(*updated)
	c.notifier.Success(fmt.Sprintf("Application marked as %s", status))
	return updated, nil
}
