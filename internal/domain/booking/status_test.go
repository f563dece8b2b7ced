package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/models"
)

func TestAccept(t *testing.T) {
	now := time.Now()
	b := &models.Booking{Status: string(StatusPending)}

	require.NoError(t, Accept(b, now))
	assert.Equal(t, "accepted", b.Status)
	require.NotNil(t, b.AcceptedAt)
	assert.Equal(t, now, *b.AcceptedAt)
}

func TestReject(t *testing.T) {
	now := time.Now()
	b := &models.Booking{Status: string(StatusPending)}

	require.NoError(t, Reject(b, now))
	assert.Equal(t, "rejected", b.Status)
	require.NotNil(t, b.RejectedAt)
}

func TestDecideOnlyFromPending(t *testing.T) {
	for _, status := range []Status{StatusAccepted, StatusRejected, StatusCompleted} {
		b := &models.Booking{Status: string(status)}

		err := Accept(b, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "accept from %s", status)

		err = Reject(b, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "reject from %s", status)
	}
}

func TestCompleteOnlyFromAccepted(t *testing.T) {
	b := &models.Booking{Status: string(StatusAccepted)}
	require.NoError(t, Complete(b, time.Now()))
	assert.Equal(t, "completed", b.Status)
	require.NotNil(t, b.CompletedAt)

	for _, status := range []Status{StatusPending, StatusRejected, StatusCompleted} {
		b := &models.Booking{Status: string(status)}
		err := Complete(b, time.Now())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"), "complete from %s", status)
	}
}

func TestBlocking(t *testing.T) {
	assert.True(t, Blocking(StatusPending))
	assert.True(t, Blocking(StatusAccepted))
	assert.True(t, Blocking(StatusCompleted))
	assert.False(t, Blocking(StatusRejected))
}

func TestCategories(t *testing.T) {
	assert.True(t, IsValidCategory("Tire"))
	assert.True(t, IsValidCategory("tire"))
	assert.False(t, IsValidCategory("Landscaping"))

	assert.Equal(t, "Tire", CanonicalCategory("tire"))
	assert.Equal(t, "Sales & Parts", CanonicalCategory("sales & parts"))
	assert.Equal(t, "Unknown", CanonicalCategory("Unknown"))
}
