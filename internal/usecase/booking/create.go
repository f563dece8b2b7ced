package booking

import (
	"context"
	"strings"

	"github.com/autoservehq/autoserve-api/internal/audit"
	domain "github.com/autoservehq/autoserve-api/internal/domain/booking"
	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/models"
	"github.com/autoservehq/autoserve-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint

	ServiceID uint
	VehicleID uint

	Date  string // 2006-01-02
	Time  string // 15:04:05
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// Publisher announces a freshly created booking so the provider can be
// notified out of band. Must never block or fail the booking itself.
type Publisher interface {
	BookingCreated(ctx context.Context, b *models.Booking)
}

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events Publisher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	events Publisher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  audit,
		events: events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// Local validation first: nothing touches the repository until the
	// selection is complete.
	if in.VehicleID == 0 {
		return nil, httperr.ErrBusiness("missing_vehicle")
	}
	if in.ServiceID == 0 {
		return nil, httperr.ErrBusiness("missing_service")
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}
	if strings.TrimSpace(in.Time) == "" {
		return nil, httperr.ErrBusiness("missing_time")
	}

	svc, err := uc.repo.GetServiceWithBusiness(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	vehicle, err := uc.repo.GetVehicleForOwner(ctx, in.VehicleID, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("vehicle_not_found")
	}

	now := timezone.NowIn(svc.Business.Timezone)
	if !domain.IsBookableDate(now, in.Date) {
		return nil, httperr.ErrBusiness("date_out_of_range")
	}
	if !domain.IsBookableTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	b := &models.Booking{
		UserID:          in.UserID,
		ProviderID:      svc.Business.OwnerID,
		ServiceID:       svc.ID,
		VehicleID:       vehicle.ID,
		ServiceCategory: svc.Category,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	// The repository runs the conflict check and insert in one
	// transaction; the slot unique index backs it up, so a lost race
	// still surfaces as slot_conflict.
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsUniqueViolation(err) {
			err = httperr.ErrBusiness("slot_conflict")
		}

		if httperr.IsBusiness(err, "slot_conflict") {
			uc.audit.Dispatch(audit.Event{
				BusinessID: svc.BusinessID,
				UserID:     &in.UserID,
				Action:     "booking_conflict",
				Entity:     "booking",
				Metadata: map[string]any{
					"category": svc.Category,
					"date":     in.Date,
					"time":     in.Time,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: svc.BusinessID,
		UserID:     &in.UserID,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	if uc.events != nil {
		uc.events.BookingCreated(ctx, b)
	}

	return b, nil
}
