package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zencareer/zenadmin/internal/module/board/adapter/rest"
	"github.com/zencareer/zenadmin/internal/module/board/domain"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newClient(t *testing.T, handler http.HandlerFunc, token string) *rest.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return rest.NewClient(server.URL, staticToken(token), testLogger(), rest.WithHTTPClient(server.Client()))
}

func TestClient_AttachesTokenHeader(t *testing.T) {
	// Setup
	var gotAuth string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}, "abc123")
	gateway := rest.NewCategoryGateway(client)

	// Execute
	_, err := gateway.List(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Token abc123", gotAuth)
}

func TestClient_NoTokenMeansNoHeader(t *testing.T) {
	// Setup
	var gotAuth string
	var hasAuth bool
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte("[]"))
	}, "")
	gateway := rest.NewCategoryGateway(client)

	// Execute
	_, err := gateway.List(context.Background())

	// Assert
	require.NoError(t, err)
	assert.False(t, hasAuth, "unexpected Authorization header %q", gotAuth)
}

func TestClient_MapsConflictByStatus(t *testing.T) {
	// Setup
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Category is referenced by 3 jobs."}`))
	}, "abc123")
	gateway := rest.NewCategoryGateway(client)

	// Execute
	err := gateway.Remove(context.Background(), 7)

	// Assert
	require.Error(t, err)
	assert.True(t, apierr.IsConflict(err))
	assert.Equal(t, "Category is referenced by 3 jobs.", err.Error())
}

func TestClient_MapsConflictByMessagePhrase(t *testing.T) {
	// Setup: the API reports referential rejections as 400 with a
	// recognizable phrase, not a 409
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"This company is associated with existing job postings."}`))
	}, "abc123")
	gateway := rest.NewCompanyGateway(client)

	// Execute
	err := gateway.Remove(context.Background(), 3)

	// Assert
	require.Error(t, err)
	assert.True(t, apierr.IsConflict(err))
	assert.Contains(t, err.Error(), "associated with existing")
}

func TestClient_MapsUnauthorizedToAuthError(t *testing.T) {
	// Setup
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid token."}`))
	}, "stale")
	gateway := rest.NewJobGateway(client)

	// Execute
	_, err := gateway.List(context.Background())

	// Assert
	require.Error(t, err)
	assert.True(t, apierr.IsAuth(err))
	assert.Equal(t, "Invalid token.", err.Error())
}

func TestClient_MapsServerErrorToFetchError(t *testing.T) {
	// Setup
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database is down"}`))
	}, "abc123")
	gateway := rest.NewJobGateway(client)

	// Execute
	_, err := gateway.List(context.Background())

	// Assert
	require.Error(t, err)
	var fetchErr *apierr.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.Status)
	assert.Equal(t, "database is down", fetchErr.Message)
}

func TestClient_MapsTransportFailureToNetworkError(t *testing.T) {
	// Setup: a server that is already gone
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := rest.NewClient(server.URL, staticToken(""), testLogger(), rest.WithHTTPClient(server.Client()))
	server.Close()
	gateway := rest.NewJobGateway(client)

	// Execute
	_, err := gateway.List(context.Background())

	// Assert
	require.Error(t, err)
	assert.True(t, apierr.IsNetwork(err))
}

func TestJobGateway_Create_SendsIDsAndSalaryString(t *testing.T) {
	// Setup
	var gotBody map[string]any
	var gotPath, gotMethod string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{"id":99,"job_title":"Backend Engineer","salary_range":"50000-70000 USD","status":"Open"}`))
	}, "abc123")
	gateway := rest.NewJobGateway(client)

	draft := domain.JobDraft{
		Title:      "Backend Engineer",
		CompanyID:  3,
		CategoryID: 7,
		Salary:     domain.SalaryRange{Min: 50000, Max: 70000, Currency: "USD"},
		Location:   "Kathmandu",
	}

	// Execute
	created, err := gateway.Create(context.Background(), draft)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/api/jobs/", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, float64(3), gotBody["company_id"])
	assert.Equal(t, float64(7), gotBody["category_id"])
	assert.Equal(t, "50000-70000 USD", gotBody["salary_range"])
	assert.Equal(t, "Open", gotBody["status"], "blank status defaults to Open")
	assert.Equal(t, int64(99), created.ID)
}

func TestCompanyGateway_Create_MultipartWhenLogoPresent(t *testing.T) {
	// Setup
	var gotContentType string
	var gotName, gotLogoFilename string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("name")
		file, header, err := r.FormFile("company_logo")
		require.NoError(t, err)
		defer file.Close()
		gotLogoFilename = header.Filename
		w.Write([]byte(`{"id":5,"name":"Everest Tech","industry":"Information Technology","location":"Kathmandu"}`))
	}, "abc123")
	gateway := rest.NewCompanyGateway(client)

	draft := domain.CompanyDraft{
		Name:     "Everest Tech",
		Industry: domain.IndustryInformationTechnology,
		Location: "Kathmandu",
		Logo:     &domain.Attachment{Filename: "logo.png", Content: []byte{0x89, 0x50, 0x4e, 0x47}},
	}

	// Execute
	created, err := gateway.Create(context.Background(), draft)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data"))
	assert.Equal(t, "Everest Tech", gotName)
	assert.Equal(t, "logo.png", gotLogoFilename)
	assert.Equal(t, int64(5), created.ID)
}

func TestCompanyGateway_Create_JSONWithoutLogo(t *testing.T) {
	// Setup
	var gotContentType string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"id":6,"name":"Everest Tech"}`))
	}, "abc123")
	gateway := rest.NewCompanyGateway(client)

	draft := domain.CompanyDraft{
		Name:     "Everest Tech",
		Industry: domain.IndustryInformationTechnology,
		Location: "Kathmandu",
	}

	// Execute
	_, err := gateway.Create(context.Background(), draft)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
}

func TestCategoryGateway_Create_TrimsName(t *testing.T) {
	// Setup
	var gotBody map[string]string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{"id":7,"name":"Engineering"}`))
	}, "abc123")
	gateway := rest.NewCategoryGateway(client)

	// Execute
	created, err := gateway.Create(context.Background(), domain.CategoryDraft{Name: "  Engineering  "})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Engineering", gotBody["name"])
	assert.Equal(t, int64(7), created.ID)
}

func TestApplicationGateway_Paths(t *testing.T) {
	// Setup: the collection path has no trailing slash, the status
	// sub-resource does
	var gotPaths []string
	var gotMethods []string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		gotMethods = append(gotMethods, r.Method)
		if r.Method == http.MethodGet {
			w.Write([]byte("[]"))
			return
		}
		w.Write([]byte(`{"id":4,"status":"accepted"}`))
	}, "abc123")
	gateway := rest.NewApplicationGateway(client)

	// Execute
	_, listErr := gateway.List(context.Background())
	updated, statusErr := gateway.SetStatus(context.Background(), 4, domain.ApplicationAccepted)

	// Assert
	require.NoError(t, listErr)
	require.NoError(t, statusErr)
	assert.Equal(t, []string{"/api/applications", "/api/applications/4/status/"}, gotPaths)
	assert.Equal(t, []string{http.MethodGet, http.MethodPatch}, gotMethods)
	assert.Equal(t, domain.ApplicationAccepted, updated.Status)
}
