package application_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zencareer/zenadmin/internal/module/notify"
	"github.com/zencareer/zenadmin/internal/module/session/application"
	"github.com/zencareer/zenadmin/internal/module/session/domain"
	testutil "github.com/zencareer/zenadmin/internal/module/session/testing"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestStore_Load_RestoresPersistedSession(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	persisted := &domain.Session{IsAuthenticated: true, Email: "admin@x.com", Token: "abc123"}
	storage := &testutil.MockStorage{
		ReadFunc: func() (*domain.Session, error) { return persisted, nil },
	}
	store := application.NewStore(storage, &testutil.MockAuthGateway{}, notifier, testLogger())
	assert.True(t, store.Loading())

	// Execute
	store.Load()

	// Assert
	assert.False(t, store.Loading())
	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, "admin@x.com", current.Email)
	assert.Equal(t, "abc123", store.Token())
}

func TestStore_Load_CorruptRecordTreatedAsSignedOut(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	storage := &testutil.MockStorage{
		ReadFunc: func() (*domain.Session, error) { return nil, errors.New("corrupt json") },
	}
	store := application.NewStore(storage, &testutil.MockAuthGateway{}, notifier, testLogger())

	// Execute
	store.Load()

	// Assert
	assert.False(t, store.Loading())
	assert.Nil(t, store.Current())
}

func TestStore_Login_Success(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	var written *domain.Session
	storage := &testutil.MockStorage{
		WriteFunc: func(session *domain.Session) error {
			written = session
			return nil
		},
	}
	gateway := &testutil.MockAuthGateway{
		LoginFunc: func(ctx context.Context, email, password string) (string, error) {
			assert.Equal(t, "admin@x.com", email)
			assert.Equal(t, "secret", password)
			return "abc123", nil
		},
	}
	store := application.NewStore(storage, gateway, notifier, testLogger())
	store.Load()

	// Execute
	session, err := store.Login(context.Background(), "admin@x.com", "secret")

	// Assert
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "abc123", session.Token)
	assert.False(t, session.LoginTime.IsZero())

	require.NotNil(t, written)
	assert.Equal(t, "admin@x.com", written.Email)
	assert.Equal(t, "abc123", store.Token())

	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.KindSuccess, active[0].Kind)
	assert.Equal(t, "Login successful!", active[0].Message)
}

func TestStore_Login_InvalidCredentials(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	storage := &testutil.MockStorage{}
	gateway := &testutil.MockAuthGateway{
		LoginFunc: func(ctx context.Context, email, password string) (string, error) {
			return "", &apierr.AuthError{Message: "Invalid credentials"}
		},
	}
	store := application.NewStore(storage, gateway, notifier, testLogger())
	store.Load()

	// Execute
	session, err := store.Login(context.Background(), "admin@x.com", "wrong")

	// Assert
	require.Error(t, err)
	assert.Nil(t, session)
	assert.True(t, apierr.IsAuth(err))
	assert.Nil(t, store.Current())
	assert.Equal(t, 0, storage.WriteCalls)

	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notify.KindError, active[0].Kind)
	assert.Equal(t, "Invalid credentials", active[0].Message)
}

func TestStore_Logout_ClearsSessionAndPublishes(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	storage := &testutil.MockStorage{
		ReadFunc: func() (*domain.Session, error) {
			return &domain.Session{IsAuthenticated: true, Email: "admin@x.com", Token: "abc123"}, nil
		},
	}
	store := application.NewStore(storage, &testutil.MockAuthGateway{}, notifier, testLogger())
	store.Load()

	var observed []*domain.Session
	unsubscribe := store.Subscribe(func(session *domain.Session) {
		observed = append(observed, session)
	})
	defer unsubscribe()

	// Execute
	err := store.Logout()

	// Assert
	require.NoError(t, err)
	assert.Nil(t, store.Current())
	assert.Equal(t, "", store.Token())
	assert.Equal(t, 1, storage.ClearCalls)
	require.Len(t, observed, 1)
	assert.Nil(t, observed[0])
}

func TestStore_ChangePassword_MismatchShortCircuits(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	gateway := &testutil.MockAuthGateway{}
	store := application.NewStore(&testutil.MockStorage{}, gateway, notifier, testLogger())
	store.Load()

	// Execute
	err := store.ChangePassword(context.Background(), "old-secret", "new-secret", "different")

	// Assert
	require.Error(t, err)
	assert.True(t, apierr.IsValidation(err))
	assert.Equal(t, 0, gateway.ChangePasswordCalls)
	require.Len(t, notifier.Active(), 1)
	assert.Equal(t, "New passwords do not match", notifier.Active()[0].Message)
}

func TestStore_ChangePassword_TooShort(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	gateway := &testutil.MockAuthGateway{}
	store := application.NewStore(&testutil.MockStorage{}, gateway, notifier, testLogger())
	store.Load()

	// Execute
	err := store.ChangePassword(context.Background(), "old-secret", "short", "short")

	// Assert
	require.Error(t, err)
	assert.Equal(t, 0, gateway.ChangePasswordCalls)
	require.Len(t, notifier.Active(), 1)
	assert.Equal(t, "New password must be at least 8 characters long", notifier.Active()[0].Message)
}

func TestStore_ChangePassword_RequiresSession(t *testing.T) {
	// Setup: nobody is signed in
	notifier := notify.NewNotifier()
	defer notifier.Close()

	gateway := &testutil.MockAuthGateway{}
	store := application.NewStore(&testutil.MockStorage{}, gateway, notifier, testLogger())
	store.Load()

	// Execute
	err := store.ChangePassword(context.Background(), "old-secret", "new-secret", "new-secret")

	// Assert
	require.Error(t, err)
	assert.True(t, apierr.IsAuth(err))
	assert.Equal(t, 0, gateway.ChangePasswordCalls)
}

func TestStore_ChangePassword_Success(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	storage := &testutil.MockStorage{
		ReadFunc: func() (*domain.Session, error) {
			return &domain.Session{IsAuthenticated: true, Email: "admin@x.com", Token: "abc123"}, nil
		},
	}
	gateway := &testutil.MockAuthGateway{
		ChangePasswordFunc: func(ctx context.Context, token, oldPassword, newPassword, confirmPassword string) error {
			assert.Equal(t, "abc123", token)
			assert.Equal(t, "old-secret", oldPassword)
			assert.Equal(t, "new-secret", newPassword)
			assert.Equal(t, "new-secret", confirmPassword)
			return nil
		},
	}
	store := application.NewStore(storage, gateway, notifier, testLogger())
	store.Load()

	// Execute
	err := store.ChangePassword(context.Background(), "old-secret", "new-secret", "new-secret")

	// Assert
	require.NoError(t, err)
	require.Len(t, notifier.Active(), 1)
	assert.Equal(t, "Password changed successfully!", notifier.Active()[0].Message)
}
