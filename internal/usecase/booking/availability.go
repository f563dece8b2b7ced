package booking

import (
	"context"

	domain "github.com/autoservehq/autoserve-api/internal/domain/booking"
	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/timezone"
)

// ======================================================
// AVAILABILITY (slot calendar + booked-slot index)
// ======================================================

type Availability struct {
	Days   []domain.Day        `json:"days"`
	Times  []domain.TimeSlot   `json:"times"`
	Booked map[string][]string `json:"booked"` // date -> taken times
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	serviceID uint,
) (*Availability, error) {

	svc, err := uc.repo.GetServiceWithBusiness(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	now := timezone.NowIn(svc.Business.Timezone)
	days := domain.NextDays(now)
	today := days[0].Date

	existing, err := uc.repo.ListFutureBookingsForService(ctx, serviceID, today)
	if err != nil {
		return nil, err
	}

	booked := make(map[string][]string)
	for _, b := range existing {
		if !domain.Blocking(domain.Status(b.Status)) {
			continue
		}
		booked[b.AppointmentDate] = append(booked[b.AppointmentDate], b.AppointmentTime)
	}

	return &Availability{
		Days:   days,
		Times:  domain.DaySlots(),
		Booked: booked,
	}, nil
}
