package booking

import (
	"context"

	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

type Repository interface {
	// -------- Catalog (read-only) --------
	ListTreatments(
		ctx context.Context,
	) ([]models.Treatment, error)

	// -------- Booking (read) --------
	ListBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	ListBookingsForPatient(
		ctx context.Context,
		patient string,
	) ([]models.Booking, error)

	// GetBookingByID reports found=false for an unknown id instead of
	// surfacing a storage error.
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, bool, error)

	// -------- Booking (admission) --------
	FindConflictingBooking(
		ctx context.Context,
		date string,
		patient string,
		treatment string,
	) (*models.Booking, bool, error)

	// CreateBooking performs the single admission insert. When the
	// (date, patient, treatment) uniqueness constraint fires it returns a
	// duplicate_booking business error so the race loser is rejected, not
	// faulted.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (payment) --------
	UpdateBookingPayment(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Users --------
	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, bool, error)
}
