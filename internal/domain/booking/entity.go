package booking

import (
	"time"

	"github.com/autoservehq/autoserve-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Accept(b *models.Booking, now time.Time) error {
	if err := CanDecide(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusAccepted)
	b.AcceptedAt = &now
	return nil
}

func Reject(b *models.Booking, now time.Time) error {
	if err := CanDecide(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusRejected)
	b.RejectedAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}
