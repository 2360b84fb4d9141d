// Package testing provides hand-written gateway mocks for controller
// tests. Each mock delegates to an optional function field and counts
// calls, so tests can assert that validation short-circuits before any
// network activity.
package testing

import (
	"context"
	"errors"

	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

var errNotImplemented = errors.New("mock: not implemented")

// MockJobGateway implements domain.JobGateway.
type MockJobGateway struct {
	ListFunc   func(ctx context.Context) ([]domain.Job, error)
	CreateFunc func(ctx context.Context, draft domain.JobDraft) (*domain.Job, error)
	UpdateFunc func(ctx context.Context, id int64, draft domain.JobDraft) (*domain.Job, error)
	RemoveFunc func(ctx context.Context, id int64) error

	ListCalls   int
	CreateCalls int
	UpdateCalls int
	RemoveCalls int
}

func (m *MockJobGateway) List(ctx context.Context) ([]domain.Job, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockJobGateway) Create(ctx context.Context, draft domain.JobDraft) (*domain.Job, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, draft)
	}
	return nil, errNotImplemented
}

func (m *MockJobGateway) Update(ctx context.Context, id int64, draft domain.JobDraft) (*domain.Job, error) {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, draft)
	}
	return nil, errNotImplemented
}

func (m *MockJobGateway) Remove(ctx context.Context, id int64) error {
	m.RemoveCalls++
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	return errNotImplemented
}

// MockCompanyGateway implements domain.CompanyGateway.
type MockCompanyGateway struct {
	ListFunc   func(ctx context.Context) ([]domain.Company, error)
	CreateFunc func(ctx context.Context, draft domain.CompanyDraft) (*domain.Company, error)
	UpdateFunc func(ctx context.Context, id int64, draft domain.CompanyDraft) (*domain.Company, error)
	RemoveFunc func(ctx context.Context, id int64) error

	ListCalls   int
	CreateCalls int
	UpdateCalls int
	RemoveCalls int
}

func (m *MockCompanyGateway) List(ctx context.Context) ([]domain.Company, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockCompanyGateway) Create(ctx context.Context, draft domain.CompanyDraft) (*domain.Company, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, draft)
	}
	return nil, errNotImplemented
}

func (m *MockCompanyGateway) Update(ctx context.Context, id int64, draft domain.CompanyDraft) (*domain.Company, error) {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, draft)
	}
	return nil, errNotImplemented
}

func (m *MockCompanyGateway) Remove(ctx context.Context, id int64) error {
	m.RemoveCalls++
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	return errNotImplemented
}

// MockCategoryGateway implements domain.CategoryGateway.
type MockCategoryGateway struct {
	ListFunc   func(ctx context.Context) ([]domain.Category, error)
	CreateFunc func(ctx context.Context, draft domain.CategoryDraft) (*domain.Category, error)
	UpdateFunc func(ctx context.Context, id int64, draft domain.CategoryDraft) (*domain.Category, error)
	RemoveFunc func(ctx context.Context, id int64) error

	ListCalls   int
	CreateCalls int
	UpdateCalls int
	RemoveCalls int
}

func (m *MockCategoryGateway) List(ctx context.Context) ([]domain.Category, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockCategoryGateway) Create(ctx context.Context, draft domain.CategoryDraft) (*domain.Category, error) {
	m.CreateCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, draft)
	}
	return nil, errNotImplemented
}

func (m *MockCategoryGateway) Update(ctx context.Context, id int64, draft domain.CategoryDraft) (*domain.Category, error) {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, draft)
	}
	return nil, errNotImplemented
}

func (m *MockCategoryGateway) Remove(ctx context.Context, id int64) error {
	m.RemoveCalls++
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	return errNotImplemented
}

// MockApplicationGateway implements domain.ApplicationGateway.
type MockApplicationGateway struct {
	ListFunc      func(ctx context.Context) ([]domain.Application, error)
	SetStatusFunc func(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error)

	ListCalls      int
	SetStatusCalls int
}

func (m *MockApplicationGateway) List(ctx context.Context) ([]domain.Application, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *MockApplicationGateway) SetStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	m.SetStatusCalls++
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, id, status)
	}
	return nil, errNotImplemented
}
