package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/httpresp"
	"github.com/autoservehq/autoserve-api/internal/middleware"
	"github.com/autoservehq/autoserve-api/internal/models"
	ucBooking "github.com/autoservehq/autoserve-api/internal/usecase/booking"
)

// RequestHandler is the provider side of the booking workflow: the
// incoming request inbox and the accept/reject/complete transitions.
type RequestHandler struct {
	list     *ucBooking.ListBookings
	accept   *ucBooking.AcceptBooking
	reject   *ucBooking.RejectBooking
	complete *ucBooking.CompleteBooking
}

func NewRequestHandler(
	list *ucBooking.ListBookings,
	accept *ucBooking.AcceptBooking,
	reject *ucBooking.RejectBooking,
	complete *ucBooking.CompleteBooking,
) *RequestHandler {
	return &RequestHandler{
		list:     list,
		accept:   accept,
		reject:   reject,
		complete: complete,
	}
}

func (h *RequestHandler) List(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	status := c.Query("status")
	switch status {
	case "", "pending", "accepted", "rejected", "completed":
	default:
		httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
		return
	}

	bookings, err := h.list.ForProvider(c.Request.Context(), providerID, status)
	if err != nil {
		httperr.Internal(c, "failed_to_list_requests", "Could not load requests.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *RequestHandler) Accept(c *gin.Context) {
	h.transition(c, "accept")
}

func (h *RequestHandler) Reject(c *gin.Context) {
	h.transition(c, "reject")
}

func (h *RequestHandler) Complete(c *gin.Context) {
	h.transition(c, "complete")
}

func (h *RequestHandler) transition(c *gin.Context, action string) {
	providerID := c.MustGet(middleware.ContextUserID).(uint)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking.")
		return
	}

	var b *models.Booking
	switch action {
	case "accept":
		b, err = h.accept.Execute(c.Request.Context(), providerID, uint(id))
	case "reject":
		b, err = h.reject.Execute(c.Request.Context(), providerID, uint(id))
	case "complete":
		b, err = h.complete.Execute(c.Request.Context(), providerID, uint(id))
	}

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Booking is not in a state that allows this.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Could not update the booking.")
		}
		return
	}

	httpresp.OK(c, b)
}
