package booking

import (
	"context"

	"github.com/autoservehq/autoserve-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetServiceWithBusiness(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Vehicle --------
	GetVehicleForOwner(
		ctx context.Context,
		vehicleID uint,
		ownerID uint,
	) (*models.Vehicle, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForProvider(
		ctx context.Context,
		bookingID uint,
		providerID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booked-slot index --------
	ListFutureBookingsForService(
		ctx context.Context,
		serviceID uint,
		fromDate string,
	) ([]models.Booking, error)

	// -------- Listings --------
	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListBookingsForProvider(
		ctx context.Context,
		providerID uint,
		status string,
	) ([]models.Booking, error)
}
