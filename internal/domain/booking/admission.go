package booking

import "github.com/BruksfildServices01/clinic-portal/internal/models"

// BookingRequest is a caller-supplied candidate, not yet persisted.
type BookingRequest struct {
	Date      string
	Patient   string
	Treatment string
	Slot      string
}

// SubmitResult is the normal (non-fault) outcome of an admission attempt.
// A duplicate booking is expected domain feedback, never an error.
type SubmitResult struct {
	Accepted bool            `json:"accepted"`
	Booking  *models.Booking `json:"booking,omitempty"`
	Message  string          `json:"message,omitempty"`
}

func Accepted(b *models.Booking) *SubmitResult {
	return &SubmitResult{Accepted: true, Booking: b}
}

func Rejected(message string) *SubmitResult {
	return &SubmitResult{Accepted: false, Message: message}
}
