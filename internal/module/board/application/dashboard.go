package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

// recentLimit is how many entries the overview shows per section.
const recentLimit = 5

// Overview is the aggregate the home screen renders: totals plus the
// most recent jobs and companies.
type Overview struct {
	TotalJobs         int
	TotalCompanies    int
	TotalApplications int
	TotalCategories   int
	RecentJobs        []domain.Job
	RecentCompanies   []domain.Company
}

// DashboardService assembles the overview from the three list
// endpoints. The application total is the sum of per-job applicant
// counts, matching what the home screen has always displayed.
type DashboardService struct {
	jobs       domain.JobGateway
	companies  domain.CompanyGateway
	categories domain.CategoryGateway
	log        *slog.Logger
}

// NewDashboardService creates the overview assembler.
func NewDashboardService(jobs domain.JobGateway, companies domain.CompanyGateway, categories domain.CategoryGateway, log *slog.Logger) *DashboardService {
	return &DashboardService{
		jobs:       jobs,
		companies:  companies,
		categories: categories,
		log:        log,
	}
}

// Overview fetches fresh lists and computes the totals.
func (s *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	totalApplications := 0
	for _, job := range jobs {
		totalApplications += job.ApplicantCount
	}

	overview := &Overview{
		TotalJobs:         len(jobs),
		TotalCompanies:    len(companies),
		TotalApplications: totalApplications,
		TotalCategories:   len(categories),
		RecentJobs:        firstN(jobs, recentLimit),
		RecentCompanies:   firstN(companies, recentLimit),
	}

	s.log.Info("dashboard overview assembled",
		"jobs", overview.TotalJobs,
		"companies", overview.TotalCompanies,
		"applications", overview.TotalApplications,
	)

	return overview, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
