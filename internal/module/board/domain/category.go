package domain

import (
	"strings"

	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// Category is a job category; the smallest entity the dashboard manages.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EntityID implements the screen Entity contract.
func (c Category) EntityID() int64 { return c.ID }

// CategoryDraft is the submit payload for creating or renaming a
// category. The name is trimmed before it is sent.
type CategoryDraft struct {
	Name string
}

// Validate rejects blank names before any network call.
func (d CategoryDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return &apierr.ValidationError{Field: "name", Message: "category name is required"}
	}
	return nil
}
