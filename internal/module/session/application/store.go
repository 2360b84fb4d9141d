// Package application provides the session store and the route guard.
// The store is the single writer of the persisted session record; every
// other component observes it through Current, Token, or a subscription.
package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/zencareer/zenadmin/internal/module/notify"
	"github.com/zencareer/zenadmin/internal/module/session/domain"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

// minPasswordLength mirrors the password policy enforced on the
// change-password form.
const minPasswordLength = 8

// Store owns the in-memory session and its durable copy.
type Store struct {
	storage  domain.Storage
	gateway  domain.AuthGateway
	notifier *notify.Notifier
	log      *slog.Logger

	mu      sync.Mutex
	session *domain.Session
	loading bool
	subs    map[int]func(*domain.Session)
	nextSub int
}

// NewStore creates a session store. It starts in the loading state until
// Load has read the persisted record, so the guard can hold navigation
// instead of flashing the unauthenticated view.
func NewStore(storage domain.Storage, gateway domain.AuthGateway, notifier *notify.Notifier, log *slog.Logger) *Store {
	return &Store{
		storage:  storage,
		gateway:  gateway,
		notifier: notifier,
		log:      log,
		loading:  true,
		subs:     make(map[int]func(*domain.Session)),
	}
}

// Load performs the initial read of persisted state. A corrupt or
// unreadable record is treated as signed out rather than a fatal error.
func (s *Store) Load() {
	session, err := s.storage.Read()
	if err != nil {
		s.log.Warn("failed to read persisted session, treating as signed out", "error", err)
		session = nil
	}
	if session != nil && !session.IsAuthenticated {
		session = nil
	}

	s.mu.Lock()
	s.session = session
	s.loading = false
	s.mu.Unlock()

	s.publish()
}

// Loading reports whether the initial read of persisted state is still
// in progress.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Current returns the active session, or nil when nobody is signed in.
// It is the single source of truth for "is a user logged in".
func (s *Store) Current() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// Token returns the bearer token of the active session, or "" when
// signed out. Resource gateways attach it to authenticated requests.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// Login exchanges credentials for a token and persists the resulting
// session. On failure the store stays unset and the error is surfaced
// through the notification channel as well as the return value.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	session := &domain.Session{
		IsAuthenticated: true,
		Email:           email,
		Token:           token,
		LoginTime:       time.Now(),
	}
	if err := s.storage.Write(session); err != nil {
		s.notifier.Error(apierr.MessageFor(err))
		return nil, err
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.log.Info("admin signed in", "email", email)
	s.notifier.Success("Login successful!")
	s.publish()

	copied := *session
	return &copied, nil
}

// Logout clears the persisted record. No server call is required.
func (s *Store) Logout() error {
	if err := s.storage.Clear(); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.log.Info("admin signed out")
	s.publish()
	return nil
}

// ChangePassword validates the form locally and then calls the
// change-password endpoint with the stored token. Validation failures
// never reach the network.
func (s *Store) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		err := &apierr.ValidationError{Field: "confirm_new_password", Message: "New passwords do not match"}
		s.notifier.Error(err.Message)
		return err
	}
	if len(newPassword) < minPasswordLength {
		err := &apierr.ValidationError{Field: "new_password", Message: "New password must be at least 8 characters long"}
		s.notifier.Error(err.Message)
		return err
	}

	token := s.Token()
	if token == "" {
		err := &apierr.AuthError{Message: "Unauthorized: Please log in again."}
		s.notifier.Error(err.Message)
		return err
	}

	if err := s.gateway.ChangePassword(ctx, token, oldPassword, newPassword, confirmPassword); err != nil {
		s.notifier.Error(apierr.MessageFor(err))
		return err
	}

	s.notifier.Success("Password changed successfully!")
	return nil
}

// Subscribe registers a callback invoked with the new session value on
// every change, including sign-out (nil). The returned function removes
// the subscription.
func (s *Store) Subscribe(fn func(*domain.Session)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish() {
	s.mu.Lock()
	session := s.session
	callbacks := make([]func(*domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	var copied *domain.Session
	if session != nil {
		value := *session
		copied = &value
	}
	for _, fn := range callbacks {
		fn(copied)
	}
}
