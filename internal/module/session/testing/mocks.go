// Package testing provides hand-written mocks of the session ports for
// store and guard tests.
package testing

import (
	"context"
	"errors"

	"github.com/zencareer/zenadmin/internal/module/session/domain"
)

var errNotImplemented = errors.New("mock: not implemented")

// MockStorage implements domain.Storage in memory.
type MockStorage struct {
	ReadFunc  func() (*domain.Session, error)
	WriteFunc func(session *domain.Session) error
	ClearFunc func() error

	ReadCalls  int
	WriteCalls int
	ClearCalls int
}

func (m *MockStorage) Read() (*domain.Session, error) {
	m.ReadCalls++
	if m.ReadFunc != nil {
		return m.ReadFunc()
	}
	return nil, nil
}

func (m *MockStorage) Write(session *domain.Session) error {
	m.WriteCalls++
	if m.WriteFunc != nil {
		return m.WriteFunc(session)
	}
	return nil
}

func (m *MockStorage) Clear() error {
	m.ClearCalls++
	if m.ClearFunc != nil {
		return m.ClearFunc()
	}
	return nil
}

// MockAuthGateway implements domain.AuthGateway.
type MockAuthGateway struct {
	LoginFunc          func(ctx context.Context, email, password string) (string, error)
	ChangePasswordFunc func(ctx context.Context, token, oldPassword, newPassword, confirmPassword string) error

	LoginCalls          int
	ChangePasswordCalls int
}

func (m *MockAuthGateway) Login(ctx context.Context, email, password string) (string, error) {
	m.LoginCalls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", errNotImplemented
}

func (m *MockAuthGateway) ChangePassword(ctx context.Context, token, oldPassword, newPassword, confirmPassword string) error {
	m.ChangePasswordCalls++
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, token, oldPassword, newPassword, confirmPassword)
	}
	return errNotImplemented
}
