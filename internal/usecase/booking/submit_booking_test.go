package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-portal/internal/audit"
	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
)

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func TestSubmitBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("First Booking Is Accepted With Fresh ID", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewSubmitBooking(repo, newTestDispatcher())

		result, err := uc.Execute(ctx, domain.BookingRequest{
			Date:      "2024-05-01",
			Patient:   "a@x.com",
			Treatment: "Cleaning",
			Slot:      "10am",
		})
		require.NoError(t, err)

		assert.True(t, result.Accepted)
		require.NotNil(t, result.Booking)
		assert.NotZero(t, result.Booking.ID)
		assert.NotEmpty(t, result.Booking.Reference)
		assert.False(t, result.Booking.Paid)
		assert.Nil(t, result.Booking.TransactionID)
	})

	t.Run("Same Triple Different Slot Is Rejected", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewSubmitBooking(repo, newTestDispatcher())

		first, err := uc.Execute(ctx, domain.BookingRequest{
			Date: "2024-05-01", Patient: "a@x.com", Treatment: "Cleaning", Slot: "10am",
		})
		require.NoError(t, err)
		require.True(t, first.Accepted)

		// slot is deliberately not part of the conflict match
		second, err := uc.Execute(ctx, domain.BookingRequest{
			Date: "2024-05-01", Patient: "a@x.com", Treatment: "Cleaning", Slot: "9am",
		})
		require.NoError(t, err)

		assert.False(t, second.Accepted)
		assert.Nil(t, second.Booking)
		assert.Contains(t, second.Message, "2024-05-01")
	})

	t.Run("Other Date Or Patient Or Treatment Is Accepted", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewSubmitBooking(repo, newTestDispatcher())

		seed, err := uc.Execute(ctx, domain.BookingRequest{
			Date: "2024-05-01", Patient: "a@x.com", Treatment: "Cleaning", Slot: "10am",
		})
		require.NoError(t, err)
		require.True(t, seed.Accepted)

		cases := []domain.BookingRequest{
			{Date: "2024-05-02", Patient: "a@x.com", Treatment: "Cleaning", Slot: "10am"},
			{Date: "2024-05-01", Patient: "b@x.com", Treatment: "Cleaning", Slot: "10am"},
			{Date: "2024-05-01", Patient: "a@x.com", Treatment: "Whitening", Slot: "1pm"},
		}

		for _, req := range cases {
			result, err := uc.Execute(ctx, req)
			require.NoError(t, err)
			assert.True(t, result.Accepted, "request %+v should be accepted", req)
		}
	})

	t.Run("Race Loser Gets Rejection Not Fault", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewSubmitBooking(repo, newTestDispatcher())

		const attempts = 16
		results := make([]*domain.SubmitResult, attempts)
		errs := make([]error, attempts)

		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = uc.Execute(ctx, domain.BookingRequest{
					Date:      "2024-05-01",
					Patient:   "racer@x.com",
					Treatment: "Cleaning",
					Slot:      "10am",
				})
			}(i)
		}
		wg.Wait()

		accepted := 0
		for i := 0; i < attempts; i++ {
			require.NoError(t, errs[i])
			require.NotNil(t, results[i])
			if results[i].Accepted {
				accepted++
			} else {
				assert.Contains(t, results[i].Message, "2024-05-01")
			}
		}

		assert.Equal(t, 1, accepted, "exactly one submitter may win")

		stored, err := repo.ListBookingsForPatient(ctx, "racer@x.com")
		require.NoError(t, err)
		assert.Len(t, stored, 1, "exactly one write on acceptance, zero on rejection")
	})
}
