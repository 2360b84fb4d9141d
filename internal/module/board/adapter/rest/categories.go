package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

const categoriesPath = "/api/job-categories/"

// CategoryGateway is the typed wrapper over the job-categories
// collection.
type CategoryGateway struct {
	client *Client
}

// NewCategoryGateway creates a category gateway over the shared client.
func NewCategoryGateway(client *Client) *CategoryGateway {
	return &CategoryGateway{client: client}
}

type categoryPayload struct {
	Name string `json:"name"`
}

// List fetches every category.
func (g *CategoryGateway) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := g.client.getJSON(ctx, categoriesPath, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create posts a new category and returns the server-assigned entity.
func (g *CategoryGateway) Create(ctx context.Context, draft domain.CategoryDraft) (*domain.Category, error) {
	var created domain.Category
	payload := categoryPayload{Name: strings.TrimSpace(draft.Name)}
	if err := g.client.sendJSON(ctx, http.MethodPost, categoriesPath, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update renames a category and returns the canonical updated entity.
func (g *CategoryGateway) Update(ctx context.Context, id int64, draft domain.CategoryDraft) (*domain.Category, error) {
	var updated domain.Category
	payload := categoryPayload{Name: strings.TrimSpace(draft.Name)}
	path := fmt.Sprintf("%s%d/", categoriesPath, id)
	if err := g.client.sendJSON(ctx, http.MethodPut, path, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes a category.
func (g *CategoryGateway) Remove(ctx context.Context, id int64) error {
	return g.client.delete(ctx, fmt.Sprintf("%s%d/", categoriesPath, id))
}
