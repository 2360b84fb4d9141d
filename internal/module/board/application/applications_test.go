package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zencareer/zenadmin/internal/module/board/application"
	"github.com/zencareer/zenadmin/internal/module/board/domain"
	testutil "github.com/zencareer/zenadmin/internal/module/board/testing"
	"github.com/zencareer/zenadmin/internal/module/notify"
	"github.com/zencareer/zenadmin/internal/shared/apierr"
)

func testApplication(id int64, status domain.ApplicationStatus) domain.Application {
	return domain.Application{
		ID:        id,
		Applicant: domain.Applicant{Username: "jd42", FullName: "Jordan Doe", Email: "jd@example.com"},
		Job:       testJob(1),
		Status:    status,
		AppliedAt: time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestApplicationsController_SetStatus_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	notifier := notify.NewNotifier()
	defer notifier.Close()

	var controller *application.ApplicationsController
	mock := &testutil.MockApplicationGateway{
		SetStatusFunc: func(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
			assert.True(t, controller.Screen().IsPending(id))
			updated := testApplication(id, status)
			return &updated, nil
		},
	}
	controller = application.NewApplicationsController(mock, notifier, testLogger())
	controller.Screen().ResolveLoaded([]domain.Application{testApplication(1, domain.ApplicationPending)})

	// Execute
	updated, err := controller.SetStatus(ctx, 1, domain.ApplicationAccepted)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationAccepted, updated.Status)
	assert.False(t, controller.Screen().IsPending(1))
	assert.Equal(t, domain.ApplicationAccepted, controller.Screen().Snapshot()[0].Status)

	active := notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Application marked as accepted", active[0].Message)
}

func TestApplicationsController_SetStatus_InvalidStatus(t *testing.T) {
	// Setup
	ctx := context.Background()
	notifier := notify.NewNotifier()
	defer notifier.Close()

	mock := &testutil.MockApplicationGateway{}
	controller := application.NewApplicationsController(mock, notifier, testLogger())

	// Execute
	updated, err := controller.SetStatus(ctx, 1, domain.ApplicationStatus("archived"))

	// Assert
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, apierr.IsValidation(err))
	assert.Equal(t, 0, mock.SetStatusCalls)
}

func TestApplicationsController_SetStatus_FailureKeepsRow(t *testing.T) {
	// Setup
	ctx := context.Background()
	notifier := notify.NewNotifier()
	defer notifier.Close()

	mock := &testutil.MockApplicationGateway{
		SetStatusFunc: func(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
			return nil, &apierr.FetchError{Status: 500, Message: "server exploded"}
		},
	}
	controller := application.NewApplicationsController(mock, notifier, testLogger())
	controller.Screen().ResolveLoaded([]domain.Application{testApplication(1, domain.ApplicationPending)})

	// Execute
	updated, err := controller.SetStatus(ctx, 1, domain.ApplicationReviewed)

	// Assert: the row keeps its old status and is no longer pending
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, domain.ApplicationPending, controller.Screen().Snapshot()[0].Status)
	assert.False(t, controller.Screen().IsPending(1))
}
