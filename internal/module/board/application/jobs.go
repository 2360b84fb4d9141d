package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
	"github.com/zencareer/zenadmin/internal/module/notify"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// JobsController drives the job-listings screen.
type JobsController struct {
	screen   *Screen[domain.Job]
	gateway  domain.JobGateway
	notifier *notify.Notifier
	log      *slog.Logger
}

// NewJobsController creates the controller with an idle screen.
func NewJobsController(gateway domain.JobGateway, notifier *notify.Notifier, log *slog.Logger) *JobsController {
	return &JobsController{
		screen:   NewScreen[domain.Job](),
		gateway:  gateway,
		notifier: notifier,
		log:      log,
	}
}

// Screen exposes the state machine to the presentation layer.
func (c *JobsController) Screen() *Screen[domain.Job] { return c.screen }

// Load fetches the full listing. On failure the screen moves to Failed
// and the error is surfaced both inline (screen.Err) and as a toast.
func (c *JobsController) Load(ctx context.Context) error {
	c.screen.SetLoading()

	jobs, err := c.gateway.List(ctx)
	if err != nil {
		c.log.Error("failed to load jobs", "error", err)
		c.screen.ResolveFailed(err)
		c.notifier.Error(apierr.MessageFor(err))
		return err
	}

	c.screen.ResolveLoaded(jobs)
	return nil
}

// Create validates the draft and posts it. A validation failure issues
// no HTTP request; on success the server-returned entity is spliced in.
func (c *JobsController) Create(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	if err := draft.Validate(); err != nil {
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.BeginSubmit()
	defer c.screen.EndSubmit()

	created, err := c.gateway.Create(ctx, draft)
	if err != nil {
		c.log.Error("failed to create job", "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.AppendOne(*created)
	c.notifier.Success(fmt.Sprintf("Job %q added successfully!", created.Title))
	return created, nil
}

// Update validates the draft and replaces the posting, swapping the
// snapshot row for the server's canonical entity.
func (c *JobsController) Update(ctx context.Context, id int64, draft domain.JobDraft) (*domain.Job, error) {
	if err := draft.Validate(); err != nil {
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.BeginSubmit()
	defer c.screen.EndSubmit()

	updated, err := c.gateway.Update(ctx, id, draft)
	if err != nil {
		c.log.Error("failed to update job", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.ReplaceOne(*updated)
	c.notifier.Success("Job updated successfully!")
	return updated, nil
}

// SetStatus toggles a posting between Open and Closed through a full
// update, prefilling the rest of the draft from the snapshot row. The
// row is marked pending for the duration.
func (c *JobsController) SetStatus(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error) {
	if !status.IsValid() {
		err := &apierr.ValidationError{Field: "status", Message: "status must be Open or Closed"}
		c.notifier.Error(err.Message)
		return nil, err
	}

	var current *domain.Job
	for _, job := range c.screen.Snapshot() {
		if job.ID == id {
			copied := job
			current = &copied
			break
		}
	}
	if current == nil {
		err := &apierr.ValidationError{Field: "id", Message: fmt.Sprintf("job %d is not in the current listing", id)}
		c.notifier.Error(err.Message)
		return nil, err
	}

	draft, err := domain.DraftFromJob(*current)
	if err != nil {
		c.log.Error("job has malformed salary range", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}
	draft.Status = status

	c.screen.BeginPending(id)
	defer c.screen.EndPending(id)

	updated, err := c.gateway.Update(ctx, id, draft)
	if err != nil {
		c.log.Error("failed to change job status", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	c.screen.ReplaceOne(*updated)
	c.notifier.Success(fmt.Sprintf("Job marked as %s", updated.Status))
	return updated, nil
}

// Delete removes a posting. The row is pending while the request is in
// flight; on failure the snapshot is untouched.
func (c *JobsController) Delete(ctx context.Context, id int64) error {
	c.screen.BeginPending(id)
	defer c.screen.EndPending(id)

	if err := c.gateway.Remove(ctx, id); err != nil {
		c.log.Error("failed to delete job", "id", id, "error", err)
		c.notifier.Error(apierr.MessageFor(err))
		return err
	}

	c.screen.RemoveOne(id)
	c.notifier.Success("Job deleted successfully!")
	return nil
}
