package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zencareer/zenadmin/internal/module/notify"
	"github.com/zencareer/zenadmin/internal/module/session/application"
	"github.com/zencareer/zenadmin/internal/module/session/domain"
	testutil "github.com/zencareer/zenadmin/internal/module/session/testing"
)

func signedInStorage() *testutil.MockStorage {
	return &testutil.MockStorage{
		ReadFunc: func() (*domain.Session, error) {
			return &domain.Session{IsAuthenticated: true, Email: "admin@x.com", Token: "abc123"}, nil
		},
	}
}

func TestGuard_Check_WaitWhileLoading(t *testing.T) {
	// Setup: Load has not run yet
	notifier := notify.NewNotifier()
	defer notifier.Close()

	store := application.NewStore(signedInStorage(), &testutil.MockAuthGateway{}, notifier, testLogger())
	guard := application.NewGuard(store)

	// Execute
	result := guard.Check("/dashboard/view-jobs")

	// Assert
	assert.Equal(t, application.DecisionWait, result.Decision)
}

func TestGuard_Check_AllowWhenSignedIn(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	store := application.NewStore(signedInStorage(), &testutil.MockAuthGateway{}, notifier, testLogger())
	store.Load()
	guard := application.NewGuard(store)

	// Execute
	result := guard.Check("/dashboard/view-jobs")

	// Assert
	assert.Equal(t, application.DecisionAllow, result.Decision)
}

func TestGuard_Check_RedirectWhenSignedOut(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	store := application.NewStore(&testutil.MockStorage{}, &testutil.MockAuthGateway{}, notifier, testLogger())
	store.Load()
	guard := application.NewGuard(store)

	// Execute
	result := guard.Check("/dashboard/view-jobs")

	// Assert
	assert.Equal(t, application.DecisionRedirect, result.Decision)
	assert.Equal(t, application.SignInPath, result.RedirectTo)
}

func TestGuard_Watch_RevokesAccessOnLogout(t *testing.T) {
	// Setup: a signed-in admin watching a protected screen
	notifier := notify.NewNotifier()
	defer notifier.Close()

	store := application.NewStore(signedInStorage(), &testutil.MockAuthGateway{}, notifier, testLogger())
	store.Load()
	guard := application.NewGuard(store)

	var verdicts []application.Decision
	unsubscribe := guard.Watch("/dashboard/view-jobs", func(result application.Result) {
		verdicts = append(verdicts, result.Decision)
	})
	defer unsubscribe()

	// Execute: a logout elsewhere in the app
	require.NoError(t, store.Logout())

	// Assert: the watcher saw Allow immediately, then Redirect
	require.Len(t, verdicts, 2)
	assert.Equal(t, application.DecisionAllow, verdicts[0])
	assert.Equal(t, application.DecisionRedirect, verdicts[1])
}

func TestGuard_Watch_UnsubscribeStopsUpdates(t *testing.T) {
	// Setup
	notifier := notify.NewNotifier()
	defer notifier.Close()

	store := application.NewStore(signedInStorage(), &testutil.MockAuthGateway{}, notifier, testLogger())
	store.Load()
	guard := application.NewGuard(store)

	calls := 0
	unsubscribe := guard.Watch("/dashboard/view-jobs", func(application.Result) { calls++ })

	// Execute
	unsubscribe()
	require.NoError(t, store.Logout())

	// Assert: only the initial verdict fired
	assert.Equal(t, 1, calls)
}
