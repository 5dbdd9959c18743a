package booking

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/clinic-portal/internal/audit"
	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

// ======================================================
// USE CASE — Booking Admission
// ======================================================

type SubmitBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmitBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitBooking {
	return &SubmitBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute admits at most one booking per (date, patient, treatment). The
// slot is deliberately excluded from the conflict match: one treatment per
// patient per day, whatever the hour. The pre-check gives the friendly
// rejection path; the unique index on the same triple catches whichever
// concurrent submitter loses the insert race, and that loser gets the same
// rejection rather than a fault.
func (uc *SubmitBooking) Execute(
	ctx context.Context,
	req domain.BookingRequest,
) (*domain.SubmitResult, error) {

	_, exists, err := uc.repo.FindConflictingBooking(
		ctx,
		req.Date,
		req.Patient,
		req.Treatment,
	)
	if err != nil {
		return nil, err
	}

	if exists {
		uc.auditRejection(req)
		return domain.Rejected(rejectionMessage(req.Date)), nil
	}

	b := &models.Booking{
		Date:      req.Date,
		Patient:   req.Patient,
		Treatment: req.Treatment,
		Slot:      req.Slot,
		Paid:      false,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "duplicate_booking") {
			uc.auditRejection(req)
			return domain.Rejected(rejectionMessage(req.Date)), nil
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: req.Patient,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   &b.ID,
	})

	return domain.Accepted(b), nil
}

func (uc *SubmitBooking) auditRejection(req domain.BookingRequest) {
	uc.audit.Dispatch(audit.Event{
		ActorEmail: req.Patient,
		Action:     "booking_rejected",
		Entity:     "booking",
		Metadata: map[string]any{
			"date":      req.Date,
			"treatment": req.Treatment,
		},
	})
}

func rejectionMessage(date string) string {
	return fmt.Sprintf("You already have a booking on %s", date)
}
