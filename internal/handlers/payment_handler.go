package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/middleware"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
	"github.com/BruksfildServices01/clinic-portal/internal/payments"
	ucBooking "github.com/BruksfildServices01/clinic-portal/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	db         *gorm.DB
	gateway    *payments.Gateway
	getBooking *ucBooking.GetBooking
	markPaid   *ucBooking.MarkBookingPaid
}

func NewPaymentHandler(
	db *gorm.DB,
	gateway *payments.Gateway,
	getBooking *ucBooking.GetBooking,
	markPaid *ucBooking.MarkBookingPaid,
) *PaymentHandler {
	return &PaymentHandler{
		db:         db,
		gateway:    gateway,
		getBooking: getBooking,
		markPaid:   markPaid,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateIntentRequest struct {
	BookingID uint `json:"booking_id" binding:"required"`
}

type ConfirmPaymentRequest struct {
	BookingID     uint   `json:"booking_id" binding:"required"`
	TransactionID string `json:"transaction_id" binding:"required"`
}

// ======================================================
// CREATE INTENT
// ======================================================

// CreateIntent opens a gateway checkout for an unpaid booking owned by the
// caller. The price comes from the current catalog entry for the booked
// treatment.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	tokenEmail := c.MustGet(middleware.ContextEmail).(string)

	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Booking id is required.")
		return
	}

	b, err := h.getBooking.Execute(c.Request.Context(), req.BookingID)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Could not load booking.")
		return
	}

	if b.Patient != tokenEmail {
		httperr.Forbidden(c, "forbidden_access", "You can only pay for your own bookings.")
		return
	}

	if b.Paid {
		httperr.BadRequest(c, "already_paid", "This booking is already paid.")
		return
	}

	var treatment models.Treatment
	if err := h.db.Where("name = ?", b.Treatment).First(&treatment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "treatment_not_found", "Treatment no longer offered.")
			return
		}
		httperr.Internal(c, "failed_to_get_treatment", "Could not load treatment.")
		return
	}

	intent, err := h.gateway.CreateIntent(c.Request.Context(), b, treatment.Price)
	if err != nil {
		httperr.Internal(c, "failed_to_create_intent", "Could not create payment intent.")
		return
	}

	c.JSON(http.StatusCreated, intent)
}

// ======================================================
// CONFIRM
// ======================================================

// Confirm records the gateway's transaction id against the booking and flips
// it to paid. Admission-time conflicts are not re-validated here.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	tokenEmail := c.MustGet(middleware.ContextEmail).(string)
	tokenRole := domain.ParseRole(c.MustGet(middleware.ContextRole).(string))

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Booking id and transaction id are required.")
		return
	}

	b, err := h.getBooking.Execute(c.Request.Context(), req.BookingID)
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_booking", "Could not load booking.")
		return
	}

	if b.Patient != tokenEmail && !tokenRole.CanViewAllUsers() {
		httperr.Forbidden(c, "forbidden_access", "You can only confirm your own payments.")
		return
	}

	updated, err := h.markPaid.Execute(c.Request.Context(), req.BookingID, req.TransactionID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "already_paid"):
			httperr.BadRequest(c, "already_paid", "This booking is already paid.")
		default:
			httperr.Internal(c, "failed_to_confirm_payment", "Could not confirm payment.")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
