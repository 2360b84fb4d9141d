// Package container wires the session store, resource gateways, and
// screen controllers together. Tests swap individual pieces through the
// functional options.
package container

import (
	"log/slog"
	"net/http"

	boardrest "github.com/zencareer/zenadmin/internal/module/board/adapter/rest"
	boardapp "github.com/zencareer/zenadmin/internal/module/board/application"
	"github.com/zencareer/zenadmin/internal/module/board/domain"
	"github.com/zencareer/zenadmin/internal/module/notify"
	sessionfile "github.com/zencareer/zenadmin/internal/module/session/adapter/file"
	sessionrest "github.com/zencareer/zenadmin/internal/module/session/adapter/rest"
	sessionapp "github.com/zencareer/zenadmin/internal/module/session/application"
	sessiondomain "github.com/zencareer/zenadmin/internal/module/session/domain"
	"github.com/zencareer/zenadmin/internal/platform/config"
)

// Container holds every wired component of the client core.
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Notifier *notify.Notifier

	Sessions *sessionapp.Store
	Guard    *sessionapp.Guard

	Jobs         *boardapp.JobsController
	Companies    *boardapp.CompaniesController
	Categories   *boardapp.CategoriesController
	Applications *boardapp.ApplicationsController
	Dashboard    *boardapp.DashboardService
}

type containerOptions struct {
	httpClient     *http.Client
	sessionStorage sessiondomain.Storage
	authGateway    sessiondomain.AuthGateway
	jobs           domain.JobGateway
	companies      domain.CompanyGateway
	categories     domain.CategoryGateway
	applications   domain.ApplicationGateway
}

// Option adjusts the wiring, mainly so tests can inject fakes.
type Option func(*containerOptions)

// WithHTTPClient replaces the HTTP client used by every gateway.
func WithHTTPClient(client *http.Client) Option {
	return func(opts *containerOptions) {
		opts.httpClient = client
	}
}

// WithSessionStorage replaces the durable session record.
func WithSessionStorage(storage sessiondomain.Storage) Option {
	return func(opts *containerOptions) {
		opts.sessionStorage = storage
	}
}

// WithAuthGateway replaces the auth gateway.
func WithAuthGateway(gateway sessiondomain.AuthGateway) Option {
	return func(opts *containerOptions) {
		opts.authGateway = gateway
	}
}

// WithJobGateway replaces the job gateway.
func WithJobGateway(gateway domain.JobGateway) Option {
	return func(opts *containerOptions) {
		opts.jobs = gateway
	}
}

// WithCompanyGateway replaces the company gateway.
func WithCompanyGateway(gateway domain.CompanyGateway) Option {
	return func(opts *containerOptions) {
		opts.companies = gateway
	}
}

// WithCategoryGateway replaces the category gateway.
func WithCategoryGateway(gateway domain.CategoryGateway) Option {
	return func(opts *containerOptions) {
		opts.categories = gateway
	}
}

// WithApplicationGateway replaces the application gateway.
func WithApplicationGateway(gateway domain.ApplicationGateway) Option {
	return func(opts *containerOptions) {
		opts.applications = gateway
	}
}

// New wires the full client core. The session store performs its
// initial read of persisted state here, so the guard never reports Wait
// to callers that go through the container.
func New(logger *slog.Logger, cfg *config.Config, opts ...Option) (*Container, error) {
	options := &containerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	notifier := notify.NewNotifier()

	storage := options.sessionStorage
	if storage == nil {
		storage = sessionfile.NewStore(cfg.Session.FilePath)
	}

	authGateway := options.authGateway
	if authGateway == nil {
		authOpts := []sessionrest.Option{}
		if options.httpClient != nil {
			authOpts = append(authOpts, sessionrest.WithHTTPClient(options.httpClient))
		} else {
			authOpts = append(authOpts, sessionrest.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
		}
		authGateway = sessionrest.NewGateway(cfg.API.BaseURL, logger, authOpts...)
	}

	sessions := sessionapp.NewStore(storage, authGateway, notifier, logger)
	sessions.Load()
	guard := sessionapp.NewGuard(sessions)

	clientOpts := []boardrest.Option{}
	if options.httpClient != nil {
		clientOpts = append(clientOpts, boardrest.WithHTTPClient(options.httpClient))
	} else {
		clientOpts = append(clientOpts, boardrest.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
	}
	restClient := boardrest.NewClient(cfg.API.BaseURL, sessions, logger, clientOpts...)

	jobs := options.jobs
	if jobs == nil {
		jobs = boardrest.NewJobGateway(restClient)
	}
	companies := options.companies
	if companies == nil {
		companies = boardrest.NewCompanyGateway(restClient)
	}
	categories := options.categories
	if categories == nil {
		categories = boardrest.NewCategoryGateway(restClient)
	}
	applications := options.applications
	if applications == nil {
		applications = boardrest.NewApplicationGateway(restClient)
	}

	return &Container{
		Config:       cfg,
		Logger:       logger,
		Notifier:     notifier,
		Sessions:     sessions,
		Guard:        guard,
		Jobs:         boardapp.NewJobsController(jobs, notifier, logger),
		Companies:    boardapp.NewCompaniesController(companies, notifier, logger),
		Categories:   boardapp.NewCategoriesController(categories, notifier, logger),
		Applications: boardapp.NewApplicationsController(applications, notifier, logger),
		Dashboard:    boardapp.NewDashboardService(jobs, companies, categories, logger),
	}, nil
}

// Close releases everything the container owns.
func (c *Container) Close() {
	if c.Notifier != nil {
		c.Notifier.Close()
	}
}
