// Package domain holds the job-board entities as the remote API shapes
// them, the draft payloads the dashboard submits, and the pre-request
// validation rules.
package domain

import (
	"errors"
	"strings"

	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "Open"
	JobStatusClosed JobStatus = "Closed"
)

// IsValid reports whether s is a status the API accepts.
func (s JobStatus) IsValid() bool {
	return s == JobStatusOpen || s == JobStatusClosed
}

// Benefits is the set of named flags a posting can advertise, plus a
// free-text field for anything else.
type Benefits struct {
	HealthInsurance bool   `json:"health_insurance"`
	PaidLeave       bool   `json:"paid_leave"`
	RemoteWork      bool   `json:"remote_work"`
	RetirementPlan  bool   `json:"retirement_plan"`
	Other           string `json:"other,omitempty"`
}

// Job is a posting as returned by the API. The nested company and
// category are read-through references owned by the server.
type Job struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"job_title"`
	Company             Company   `json:"company"`
	Category            Category  `json:"category"`
	SalaryRange         string    `json:"salary_range"`
	ApplicantCount      int       `json:"applicant_count"`
	Status              JobStatus `json:"status"`
	Schedule            string    `json:"job_schedule"`
	Type                string    `json:"job_type"`
	Location            string    `json:"job_location"`
	Deadline            string    `json:"application_deadline,omitempty"`
	Benefits            Benefits  `json:"benefits"`
	ResumeRequired      bool      `json:"resume_required"`
	CoverLetterRequired bool      `json:"cover_letter_required"`
	Featured            bool      `json:"featured"`
}

// EntityID implements the screen Entity contract.
func (j Job) EntityID() int64 { return j.ID }

// JobDraft is the tagged submit payload for creating or updating a job.
// Salary is held decomposed for editing and serialized on submit.
type JobDraft struct {
	Title               string
	CompanyID           int64
	CategoryID          int64
	Salary              SalaryRange
	Status              JobStatus
	Schedule            string
	Type                string
	Location            string
	Deadline            string
	Benefits            Benefits
	ResumeRequired      bool
	CoverLetterRequired bool
	Featured            bool
}

// Validate applies the required-field and bound checks. A failing draft
// must never produce an HTTP request.
func (d JobDraft) Validate() error {
	var errs apierr.ValidationErrors
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, apierr.ValidationError{Field: "job_title", Message: "title is required"})
	}
	if d.CompanyID <= 0 {
		errs = append(errs, apierr.ValidationError{Field: "company", Message: "company is required"})
	}
	if d.CategoryID <= 0 {
		errs = append(errs, apierr.ValidationError{Field: "category", Message: "category is required"})
	}
	if strings.TrimSpace(d.Location) == "" {
		errs = append(errs, apierr.ValidationError{Field: "job_location", Message: "location is required"})
	}
	if d.Status != "" && !d.Status.IsValid() {
		errs = append(errs, apierr.ValidationError{Field: "status", Message: "status must be Open or Closed"})
	}
	if err := d.Salary.Validate(); err != nil {
		var verr *apierr.ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, *verr)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DraftFromJob prefills an edit form from a fetched posting, the way the
// edit dialog loads the row it was opened on. A malformed salary string
// coming back from the server is an integration bug and is reported.
func DraftFromJob(job Job) (JobDraft, error) {
	salary, err := ParseSalaryRange(job.SalaryRange)
	if err != nil {
		return JobDraft{}, err
	}
	return JobDraft{
		Title:               job.Title,
		CompanyID:           job.Company.ID,
		CategoryID:          job.Category.ID,
		Salary:              salary,
		Status:              job.Status,
		Schedule:            job.Schedule,
		Type:                job.Type,
		Location:            job.Location,
		Deadline:            job.Deadline,
		Benefits:            job.Benefits,
		ResumeRequired:      job.ResumeRequired,
		CoverLetterRequired: job.CoverLetterRequired,
		Featured:            job.Featured,
	}, nil
}
