package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
)

func TestMarkBookingPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Booking Is NotFound And Creates Nothing", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewMarkBookingPaid(repo, newTestDispatcher())

		_, err := uc.Execute(ctx, 42, "tx-1")
		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))

		all, err := repo.ListBookingsForPatient(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Payment Is Recorded Once", func(t *testing.T) {
		repo := newFakeRepo()
		submit := NewSubmitBooking(repo, newTestDispatcher())
		uc := NewMarkBookingPaid(repo, newTestDispatcher())

		result, err := submit.Execute(ctx, domain.BookingRequest{
			Date: "2024-05-01", Patient: "a@x.com", Treatment: "Cleaning", Slot: "10am",
		})
		require.NoError(t, err)
		require.True(t, result.Accepted)

		paid, err := uc.Execute(ctx, result.Booking.ID, "tx-99")
		require.NoError(t, err)

		assert.True(t, paid.Paid)
		require.NotNil(t, paid.TransactionID)
		assert.Equal(t, "tx-99", *paid.TransactionID)

		stored, found, err := repo.GetBookingByID(ctx, result.Booking.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.True(t, stored.Paid)
		assert.Equal(t, "2024-05-01", stored.Date, "admission fields never change")
		assert.Equal(t, "10am", stored.Slot)

		_, err = uc.Execute(ctx, result.Booking.ID, "tx-100")
		assert.True(t, httperr.IsBusiness(err, "already_paid"))
	})
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	submit := NewSubmitBooking(repo, newTestDispatcher())
	uc := NewGetBooking(repo)

	result, err := submit.Execute(ctx, domain.BookingRequest{
		Date: "2024-05-01", Patient: "a@x.com", Treatment: "Cleaning", Slot: "10am",
	})
	require.NoError(t, err)
	require.True(t, result.Accepted)

	t.Run("Existing ID", func(t *testing.T) {
		b, err := uc.Execute(ctx, result.Booking.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", b.Patient)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		_, err := uc.Execute(ctx, 999)
		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})
}
