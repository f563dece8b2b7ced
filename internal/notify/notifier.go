package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/autoservehq/autoserve-api/internal/models"
)

// Notifier subscribes to booking events and pushes a message to the
// provider's registered device. Runs for the lifetime of the process.
type Notifier struct {
	rdb    *redis.Client
	db     *gorm.DB
	sender PushSender
}

func NewNotifier(rdb *redis.Client, db *gorm.DB, sender PushSender) *Notifier {
	return &Notifier{
		rdb:    rdb,
		db:     db,
		sender: sender,
	}
}

// Start blocks until ctx is cancelled. Call it in its own goroutine.
func (n *Notifier) Start(ctx context.Context) {
	sub := n.rdb.Subscribe(ctx, ChannelBookingCreated)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			n.handle(ctx, msg.Payload)
		}
	}
}

func (n *Notifier) handle(ctx context.Context, payload string) {
	var ev BookingEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		log.Println("notify: bad booking event payload:", err)
		return
	}

	var provider models.User
	if err := n.db.WithContext(ctx).First(&provider, ev.ProviderID).Error; err != nil {
		log.Printf("notify: provider %d not found: %v", ev.ProviderID, err)
		return
	}

	if provider.PushToken == "" {
		return
	}

	title := "New booking request"
	body := fmt.Sprintf("%s on %s at %s", ev.Category, ev.Date, ev.Time)
	data := map[string]string{
		"type":       "booking_created",
		"booking_id": fmt.Sprintf("%d", ev.BookingID),
	}

	if err := n.sender.Send(ctx, provider.PushToken, title, body, data); err != nil {
		log.Printf("notify: push to provider %d failed: %v", ev.ProviderID, err)
	}
}
