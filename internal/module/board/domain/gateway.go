package domain

import "context"

// Gateway ports. One typed wrapper per resource; every call performs
// remote I/O against the job-board API and returns entities in their
// canonical server-assigned form.

// JobGateway manages postings.
type JobGateway interface {
	List(ctx context.Context) ([]Job, error)
	Create(ctx context.Context, draft JobDraft) (*Job, error)
	Update(ctx context.Context, id int64, draft JobDraft) (*Job, error)
	Remove(ctx context.Context, id int64) error
}

// CompanyGateway manages employers. Create and Update switch to
// multipart encoding when the draft carries a logo attachment.
type CompanyGateway interface {
	List(ctx context.Context) ([]Company, error)
	Create(ctx context.Context, draft CompanyDraft) (*Company, error)
	Update(ctx context.Context, id int64, draft CompanyDraft) (*Company, error)
	Remove(ctx context.Context, id int64) error
}

// CategoryGateway manages job categories.
type CategoryGateway interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, draft CategoryDraft) (*Category, error)
	Update(ctx context.Context, id int64, draft CategoryDraft) (*Category, error)
	Remove(ctx context.Context, id int64) error
}

// ApplicationGateway reads applications and mutates their status through
// the dedicated status-only endpoint. The dashboard never creates or
// deletes applications.
type ApplicationGateway interface {
	List(ctx context.Context) ([]Application, error)
	SetStatus(ctx context.Context, id int64, status ApplicationStatus) (*Application, error)
}
