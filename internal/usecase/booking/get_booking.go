package booking

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	b, found, err := uc.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	return b, nil
}
