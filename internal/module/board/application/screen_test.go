package application_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zencareer/zenadmin/internal/module/board/application"
	"github.com/zencareer/zenadmin/internal/module/board/domain"
)

func TestScreen_PhaseTransitions(t *testing.T) {
	// Setup
	screen := application.NewScreen[domain.Category]()
	assert.Equal(t, application.PhaseIdle, screen.Phase())

	// Execute: a successful fetch
	screen.SetLoading()
	assert.Equal(t, application.PhaseLoading, screen.Phase())
	screen.ResolveLoaded([]domain.Category{{ID: 1, Name: "Engineering"}})

	// Assert
	assert.Equal(t, application.PhaseLoaded, screen.Phase())
	assert.NoError(t, screen.Err())
	assert.Len(t, screen.Snapshot(), 1)
}

func TestScreen_FailedRefreshNeverShowsStaleAsLoaded(t *testing.T) {
	// Setup: a loaded screen that refreshes and fails
	screen := application.NewScreen[domain.Category]()
	screen.ResolveLoaded([]domain.Category{{ID: 1, Name: "Engineering"}})
	fetchErr := errors.New("boom")

	// Execute
	screen.SetLoading()
	screen.ResolveFailed(fetchErr)

	// Assert: phase is Failed even though a snapshot exists
	assert.Equal(t, application.PhaseFailed, screen.Phase())
	assert.Equal(t, fetchErr, screen.Err())
}

func TestScreen_PendingSet(t *testing.T) {
	// Setup
	screen := application.NewScreen[domain.Category]()

	// Execute
	screen.BeginPending(3)
	screen.BeginPending(5)

	// Assert
	assert.True(t, screen.IsPending(3))
	assert.True(t, screen.IsPending(5))
	assert.False(t, screen.IsPending(4))
	assert.ElementsMatch(t, []int64{3, 5}, screen.PendingIDs())

	screen.EndPending(3)
	assert.False(t, screen.IsPending(3))
	assert.True(t, screen.IsPending(5))
}

func TestScreen_ReplaceAndRemove(t *testing.T) {
	// Setup
	screen := application.NewScreen[domain.Category]()
	screen.ResolveLoaded([]domain.Category{
		{ID: 1, Name: "Engineering"},
		{ID: 2, Name: "Design"},
	})

	// Execute
	screen.ReplaceOne(domain.Category{ID: 2, Name: "Product Design"})
	screen.RemoveOne(1)
	screen.AppendOne(domain.Category{ID: 3, Name: "Marketing"})

	// Assert
	snapshot := screen.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "Product Design", snapshot[0].Name)
	assert.Equal(t, "Marketing", snapshot[1].Name)
}

func TestScreen_SnapshotIsACopy(t *testing.T) {
	// Setup
	screen := application.NewScreen[domain.Category]()
	screen.ResolveLoaded([]domain.Category{{ID: 1, Name: "Engineering"}})

	// Execute: mutating the returned slice must not touch the screen
	snapshot := screen.Snapshot()
	snapshot[0].Name = "Hacked"

	// Assert
	assert.Equal(t, "Engineering", screen.Snapshot()[0].Name)
}

func TestScreen_CloseDiscardsLateResults(t *testing.T) {
	// Setup: a load starts, then the screen unmounts before it resolves
	screen := application.NewScreen[domain.Category]()
	screen.SetLoading()
	screen.Close()

	// Execute: the late response arrives
	screen.ResolveLoaded([]domain.Category{{ID: 1, Name: "Engineering"}})
	screen.AppendOne(domain.Category{ID: 2, Name: "Design"})

	// Assert: nothing was installed
	assert.Empty(t, screen.Snapshot())
}

func TestScreen_SubscribeAndUnsubscribe(t *testing.T) {
	// Setup
	screen := application.NewScreen[domain.Category]()
	calls := 0
	unsubscribe := screen.Subscribe(func() { calls++ })

	// Execute
	screen.SetLoading()
	screen.ResolveLoaded(nil)
	unsubscribe()
	screen.SetLoading()

	// Assert: the callback fired for the first two changes only
	assert.Equal(t, 2, calls)
}
