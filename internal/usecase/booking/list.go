package booking

import (
	"context"

	domain "github.com/autoservehq/autoserve-api/internal/domain/booking"
	"github.com/autoservehq/autoserve-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// ForUser returns the car owner's bookings, newest first.
func (uc *ListBookings) ForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForUser(ctx, userID)
}

// ForProvider returns the provider's incoming requests, optionally
// narrowed to one status ("" means all).
func (uc *ListBookings) ForProvider(
	ctx context.Context,
	providerID uint,
	status string,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForProvider(ctx, providerID, status)
}
