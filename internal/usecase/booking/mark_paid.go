package booking

import (
	"context"

	"github.com/BruksfildServices01/clinic-portal/internal/audit"
	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

type MarkBookingPaid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewMarkBookingPaid(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *MarkBookingPaid {
	return &MarkBookingPaid{
		repo:  repo,
		audit: audit,
	}
}

// Execute records a completed external payment against a booking. Slot and
// date conflicts were settled at admission time and are not revisited.
func (uc *MarkBookingPaid) Execute(
	ctx context.Context,
	bookingID uint,
	transactionID string,
) (*models.Booking, error) {

	b, found, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.MarkPaid(b, transactionID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingPayment(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: b.Patient,
		Action:     "booking_paid",
		Entity:     "booking",
		EntityID:   &b.ID,
		Metadata: map[string]any{
			"transaction_id": transactionID,
		},
	})

	return b, nil
}
