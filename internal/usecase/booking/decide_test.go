package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/models"
)

func seedPendingBooking(repo *fakeRepo) {
	repo.bookings = append(repo.bookings, models.Booking{
		ID:         1,
		UserID:     1,
		ProviderID: 77,
		Status:     "pending",
	})
}

func TestAcceptBooking(t *testing.T) {
	repo := newFakeRepo()
	seedPendingBooking(repo)
	uc := NewAcceptBooking(repo, testDispatcher())

	b, err := uc.Execute(context.Background(), 77, 1)
	require.NoError(t, err)

	assert.Equal(t, "accepted", b.Status)
	require.NotNil(t, b.AcceptedAt)
	assert.Equal(t, "accepted", repo.bookings[0].Status)
}

func TestRejectBooking(t *testing.T) {
	repo := newFakeRepo()
	seedPendingBooking(repo)
	uc := NewRejectBooking(repo, testDispatcher())

	b, err := uc.Execute(context.Background(), 77, 1)
	require.NoError(t, err)

	assert.Equal(t, "rejected", b.Status)
	require.NotNil(t, b.RejectedAt)
}

func TestDecideWrongProvider(t *testing.T) {
	repo := newFakeRepo()
	seedPendingBooking(repo)
	uc := NewAcceptBooking(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 99, 1)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	assert.Equal(t, "pending", repo.bookings[0].Status)
}

func TestDecideTwice(t *testing.T) {
	repo := newFakeRepo()
	seedPendingBooking(repo)
	accept := NewAcceptBooking(repo, testDispatcher())
	reject := NewRejectBooking(repo, testDispatcher())

	_, err := accept.Execute(context.Background(), 77, 1)
	require.NoError(t, err)

	_, err = reject.Execute(context.Background(), 77, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, "accepted", repo.bookings[0].Status)
}

func TestCompleteRequiresAccepted(t *testing.T) {
	repo := newFakeRepo()
	seedPendingBooking(repo)
	complete := NewCompleteBooking(repo, testDispatcher())

	_, err := complete.Execute(context.Background(), 77, 1)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = NewAcceptBooking(repo, testDispatcher()).Execute(context.Background(), 77, 1)
	require.NoError(t, err)

	b, err := complete.Execute(context.Background(), 77, 1)
	require.NoError(t, err)
	assert.Equal(t, "completed", b.Status)
	require.NotNil(t, b.CompletedAt)
}

func TestListBookingsForProviderFiltersStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{ID: 1, ProviderID: 77, UserID: 1, Status: "pending"},
		{ID: 2, ProviderID: 77, UserID: 2, Status: "accepted"},
		{ID: 3, ProviderID: 88, UserID: 1, Status: "pending"},
	}
	uc := NewListBookings(repo)

	all, err := uc.ForProvider(context.Background(), 77, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := uc.ForProvider(context.Background(), 77, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, uint(1), pending[0].ID)

	mine, err := uc.ForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
