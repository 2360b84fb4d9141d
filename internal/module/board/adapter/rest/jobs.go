package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

const jobsPath = "/api/jobs/"

// JobGateway is the typed wrapper over the jobs collection.
type JobGateway struct {
	client *Client
}

// NewJobGateway creates a job gateway over the shared client.
func NewJobGateway(client *Client) *JobGateway {
	return &JobGateway{client: client}
}

// jobPayload is the write shape for postings. References travel as ids;
// the server responds with the expanded entity.
type jobPayload struct {
	Title               string          `json:"job_title"`
	CompanyID           int64           `json:"company_id"`
	CategoryID          int64           `json:"category_id"`
	SalaryRange         string          `json:"salary_range"`
	Status              string          `json:"status"`
	Schedule            string          `json:"job_schedule"`
	Type                string          `json:"job_type"`
	Location            string          `json:"job_location"`
	Deadline            string          `json:"application_deadline,omitempty"`
	Benefits            domain.Benefits `json:"benefits"`
	ResumeRequired      bool            `json:"resume_required"`
	CoverLetterRequired bool            `json:"cover_letter_required"`
	Featured            bool            `json:"featured"`
}

func payloadFromJobDraft(draft domain.JobDraft) jobPayload {
	status := draft.Status
	if status == "" {
		status = domain.JobStatusOpen
	}
	return jobPayload{
		Title:               draft.Title,
		CompanyID:           draft.CompanyID,
		CategoryID:          draft.CategoryID,
		SalaryRange:         draft.Salary.String(),
		Status:              string(status),
		Schedule:            draft.Schedule,
		Type:                draft.Type,
		Location:            draft.Location,
		Deadline:            draft.Deadline,
		Benefits:            draft.Benefits,
		ResumeRequired:      draft.ResumeRequired,
		CoverLetterRequired: draft.CoverLetterRequired,
		Featured:            draft.Featured,
	}
}

// List fetches every posting.
func (g *JobGateway) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := g.client.getJSON(ctx, jobsPath, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Create posts a new job and returns the canonical created entity.
func (g *JobGateway) Create(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	var created domain.Job
	if err := g.client.sendJSON(ctx, http.MethodPost, jobsPath, payloadFromJobDraft(draft), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a job and returns the canonical updated entity.
func (g *JobGateway) Update(ctx context.Context, id int64, draft domain.JobDraft) (*domain.Job, error) {
	var updated domain.Job
	path := fmt.Sprintf("%s%d/", jobsPath, id)
	if err := g.client.sendJSON(ctx, http.MethodPut, path, payloadFromJobDraft(draft), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes a job.
func (g *JobGateway) Remove(ctx context.Context, id int64) error {
	return g.client.delete(ctx, fmt.Sprintf("%s%d/", jobsPath, id))
}
