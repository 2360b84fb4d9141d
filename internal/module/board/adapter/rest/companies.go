package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

const companiesPath = "/api/companies/"

// logoFieldName is the multipart field the API expects the logo under.
const logoFieldName = "company_logo"

// CompanyGateway is the typed wrapper over the companies collection.
// Writes switch to multipart whenever the draft carries a logo file.
type CompanyGateway struct {
	client *Client
}

// NewCompanyGateway creates a company gateway over the shared client.
func NewCompanyGateway(client *Client) *CompanyGateway {
	return &CompanyGateway{client: client}
}

type companyPayload struct {
	Name                     string `json:"name"`
	Description              string `json:"description,omitempty"`
	Industry                 string `json:"industry"`
	Location                 string `json:"location"`
	CommunicationPreferences bool   `json:"communication_preferences"`
}

func companyFields(draft domain.CompanyDraft) map[string]string {
	return map[string]string{
		"name":                      draft.Name,
		"description":               draft.Description,
		"industry":                  string(draft.Industry),
		"location":                  draft.Location,
		"communication_preferences": strconv.FormatBool(draft.CommunicationPreferences),
	}
}

// List fetches every company.
func (g *CompanyGateway) List(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := g.client.getJSON(ctx, companiesPath, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Create registers a new company and returns the canonical created
// entity.
func (g *CompanyGateway) Create(ctx context.Context, draft domain.CompanyDraft) (*domain.Company, error) {
	var created domain.Company
	if err := g.send(ctx, http.MethodPost, companiesPath, draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a company and returns the canonical updated entity.
func (g *CompanyGateway) Update(ctx context.Context, id int64, draft domain.CompanyDraft) (*domain.Company, error) {
	var updated domain.Company
	path := fmt.Sprintf("%s%d/", companiesPath, id)
	if err := g.send(ctx, http.MethodPut, path, draft, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes a company. The server rejects this while jobs still
// reference it; the shared client maps that rejection to a
// ConflictError.
func (g *CompanyGateway) Remove(ctx context.Context, id int64) error {
	return g.client.delete(ctx, fmt.Sprintf("%s%d/", companiesPath, id))
}

func (g *CompanyGateway) send(ctx context.Context, method, path string, draft domain.CompanyDraft, out any) error {
	if draft.Logo != nil {
		return g.client.sendMultipart(ctx, method, path, companyFields(draft), logoFieldName, draft.Logo.Filename, draft.Logo.Content, out)
	}
	payload := companyPayload{
		Name:                     draft.Name,
		Description:              draft.Description,
		Industry:                 string(draft.Industry),
		Location:                 draft.Location,
		CommunicationPreferences: draft.CommunicationPreferences,
	}
	return g.client.sendJSON(ctx, method, path, payload, out)
}
