package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/autoservehq/autoserve-api/internal/models"
)

// ChannelBookingCreated carries one JSON BookingEvent per new booking.
// Publish/subscribe replaces client-side polling of the booking table.
const ChannelBookingCreated = "bookings.created"

type BookingEvent struct {
	BookingID  uint   `json:"booking_id"`
	UserID     uint   `json:"user_id"`
	ProviderID uint   `json:"provider_id"`
	Category   string `json:"category"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// BookingCreated publishes the event. Failures are logged and swallowed:
// the booking row is already committed and must not be rolled back over
// a notification problem.
func (p *Publisher) BookingCreated(ctx context.Context, b *models.Booking) {
	ev := BookingEvent{
		BookingID:  b.ID,
		UserID:     b.UserID,
		ProviderID: b.ProviderID,
		Category:   b.ServiceCategory,
		Date:       b.AppointmentDate,
		Time:       b.AppointmentTime,
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Println("notify: marshal booking event:", err)
		return
	}

	if err := p.rdb.Publish(ctx, ChannelBookingCreated, payload).Err(); err != nil {
		log.Println("notify: publish booking event:", err)
	}
}
