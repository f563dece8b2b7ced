package booking

import (
	"context"

	"github.com/autoservehq/autoserve-api/internal/audit"
	domain "github.com/autoservehq/autoserve-api/internal/domain/booking"
	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/models"
	"github.com/autoservehq/autoserve-api/internal/timezone"
)

type AcceptBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAcceptBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AcceptBooking {
	return &AcceptBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AcceptBooking) Execute(
	ctx context.Context,
	providerID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.Now()
	if err := domain.Accept(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &providerID,
		Action:   "booking_accepted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
