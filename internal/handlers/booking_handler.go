package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/autoservehq/autoserve-api/internal/httperr"
	"github.com/autoservehq/autoserve-api/internal/httpresp"
	"github.com/autoservehq/autoserve-api/internal/middleware"
	ucBooking "github.com/autoservehq/autoserve-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	availability *ucBooking.GetAvailability
	list         *ucBooking.ListBookings
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	availability *ucBooking.GetAvailability,
	list *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		availability: availability,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id"`
	VehicleID uint   `json:"vehicle_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM:SS
	Notes     string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		VehicleID: req.VehicleID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST (car owner view)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.list.ForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// AVAILABILITY (public)
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service.")
		return
	}

	av, err := h.availability.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "availability_failed", "Could not load availability.")
		return
	}

	httpresp.OK(c, av)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_vehicle"):
		httperr.BadRequest(c, "missing_vehicle", "Select a vehicle first.")
	case httperr.IsBusiness(err, "missing_service"):
		httperr.BadRequest(c, "missing_service", "Select a service first.")
	case httperr.IsBusiness(err, "missing_date"):
		httperr.BadRequest(c, "missing_date", "Select a date first.")
	case httperr.IsBusiness(err, "missing_time"):
		httperr.BadRequest(c, "missing_time", "Select a time first.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "vehicle_not_found"):
		httperr.BadRequest(c, "vehicle_not_found", "Vehicle not found.")
	case httperr.IsBusiness(err, "date_out_of_range"):
		httperr.BadRequest(c, "date_out_of_range", "Pick a date within the next 7 days.")
	case httperr.IsBusiness(err, "invalid_time_slot"):
		httperr.BadRequest(c, "invalid_time_slot", "Pick one of the offered time slots.")
	case httperr.IsBusiness(err, "slot_conflict"):
		httperr.Conflict(c, "slot_conflict", "This slot is already booked.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
	}
}
