package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-portal/internal/config"
	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/dto"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/httpresp"
	"github.com/BruksfildServices01/clinic-portal/internal/middleware"
	"github.com/BruksfildServices01/clinic-portal/internal/timezone"
	ucBooking "github.com/BruksfildServices01/clinic-portal/internal/usecase/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	cfg *config.Config

	getAvailability *ucBooking.GetAvailability
	submitBooking   *ucBooking.SubmitBooking
	getBooking      *ucBooking.GetBooking
	listBookings    *ucBooking.ListPatientBookings
}

func NewBookingHandler(
	cfg *config.Config,
	getAvailability *ucBooking.GetAvailability,
	submitBooking *ucBooking.SubmitBooking,
	getBooking *ucBooking.GetBooking,
	listBookings *ucBooking.ListPatientBookings,
) *BookingHandler {
	return &BookingHandler{
		cfg:             cfg,
		getAvailability: getAvailability,
		submitBooking:   submitBooking,
		getBooking:      getBooking,
		listBookings:    listBookings,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Treatment string `json:"treatment" binding:"required"`
	Slot      string `json:"slot" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	if !timezone.IsValidDate(dateStr, h.cfg.ClinicTimezone) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	options, err := h.getAvailability.Execute(c.Request.Context(), dateStr)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    dateStr,
		"options": options,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	patient := c.MustGet(middleware.ContextEmail).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	if !timezone.IsValidDate(req.Date, h.cfg.ClinicTimezone) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	result, err := h.submitBooking.Execute(
		c.Request.Context(),
		domain.BookingRequest{
			Date:      req.Date,
			Patient:   patient,
			Treatment: strings.TrimSpace(req.Treatment),
			Slot:      strings.TrimSpace(req.Slot),
		},
	)
	if err != nil {
		httperr.Internal(c, "failed_to_create_booking", "Could not create booking.")
		return
	}

	// A rejection is a normal response, not a fault.
	if !result.Accepted {
		c.JSON(http.StatusOK, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ======================================================
// LIST MINE
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	tokenEmail := c.MustGet(middleware.ContextEmail).(string)

	email := validators.Normalize(c.Query("email"))
	if email == "" {
		email = tokenEmail
	}

	if email != tokenEmail {
		httperr.Forbidden(c, "forbidden_access", "Bookings are scoped to your own identity.")
		return
	}

	bookings, err := h.listBookings.Execute(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	items := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.FromBooking(b))
	}

	httpresp.List(c, items)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *BookingHandler) GetByID(c *gin.Context) {
	tokenEmail := c.MustGet(middleware.ContextEmail).(string)
	tokenRole := domain.ParseRole(c.MustGet(middleware.ContextRole).(string))

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	b, err := h.getBooking.Execute(c.Request.Context(), uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Could not load booking.")
		return
	}

	if b.Patient != tokenEmail && !tokenRole.CanViewAllUsers() {
		httperr.Forbidden(c, "forbidden_access", "Bookings are scoped to your own identity.")
		return
	}

	c.JSON(http.StatusOK, b)
}
