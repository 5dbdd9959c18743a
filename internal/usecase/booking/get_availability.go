package booking

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute re-reads both stores on every call; a date with no bookings simply
// yields full availability. The date string is treated as opaque here, the
// handler layer owns format validation.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.TreatmentAvailability, error) {

	catalog, err := uc.repo.ListTreatments(ctx)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookingsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.ComputeAvailability(catalog, booked), nil
}
