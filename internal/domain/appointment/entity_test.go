package appointment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/models"
)

func TestConfirm_AssignsActingStaffOnce(t *testing.T) {
	staff := uuid.New()
	ap := &models.Appointment{Status: string(StatusPending)}

	require.NoError(t, Confirm(ap, staff))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.StaffID)
	assert.Equal(t, staff, *ap.StaffID)
}

func TestConfirm_KeepsExistingAssignment(t *testing.T) {
	original := uuid.New()
	other := uuid.New()
	ap := &models.Appointment{Status: string(StatusPending), StaffID: &original}

	require.NoError(t, Confirm(ap, other))

	assert.Equal(t, original, *ap.StaffID, "assignment must survive a later confirm")
}

func TestConfirm_RejectsNonPending(t *testing.T) {
	for _, from := range []Status{StatusConfirmed, StatusCompleted, StatusCancelled} {
		ap := &models.Appointment{Status: string(from)}
		err := Confirm(ap, uuid.New())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "from %s", from)
		assert.Equal(t, string(from), ap.Status, "a rejected confirm must not mutate")
		assert.Nil(t, ap.StaffID)
	}
}

func TestComplete_StampsTime(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	require.NoError(t, Complete(ap, now))

	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestComplete_RejectsPending(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	err := Complete(ap, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Nil(t, ap.CompletedAt)
}

func TestCancel_StampsTime(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)

	for _, from := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{Status: string(from)}
		require.NoError(t, Cancel(ap, now))
		assert.Equal(t, string(StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
		assert.Equal(t, now, *ap.CancelledAt)
	}
}

func TestCancel_RejectsTerminal(t *testing.T) {
	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		ap := &models.Appointment{Status: string(from)}
		err := Cancel(ap, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "from %s", from)
	}
}
