package booking

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

type ListPatientBookings struct {
	repo domain.Repository
}

func NewListPatientBookings(repo domain.Repository) *ListPatientBookings {
	return &ListPatientBookings{repo: repo}
}

// Execute trusts the caller to have matched the patient identity against the
// authenticated token; the handler layer enforces that.
func (uc *ListPatientBookings) Execute(
	ctx context.Context,
	patient string,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForPatient(ctx, patient)
}
