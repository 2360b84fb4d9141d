package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

// The applications collection has no trailing slash, unlike the other
// resources; the status sub-resource does. Both match the server's
// routing exactly.
const (
	applicationsPath      = "/api/applications"
	applicationStatusPath = "/api/applications/%d/status/"
)

// ApplicationGateway reads applications and mutates status through the
// dedicated endpoint.
type ApplicationGateway struct {
	client *Client
}

// NewApplicationGateway creates an application gateway over the shared
// client.
func NewApplicationGateway(client *Client) *ApplicationGateway {
	return &ApplicationGateway{client: client}
}

// List fetches every application with its nested applicant and job.
func (g *ApplicationGateway) List(ctx context.Context) ([]domain.Application, error) {
	var applications []domain.Application
	if err := g.client.getJSON(ctx, applicationsPath, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// SetStatus patches the status-only endpoint and returns the canonical
// updated application.
func (g *ApplicationGateway) SetStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	payload := struct {
		Status domain.ApplicationStatus `json:"status"`
	}{Status: status}

	var updated domain.Application
	path := fmt.Sprintf(applicationStatusPath, id)
	if err := g.client.sendJSON(ctx, http.MethodPatch, path, payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
