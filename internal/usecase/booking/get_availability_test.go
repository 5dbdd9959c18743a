package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-portal/internal/domain/booking"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo()
	repo.treatments = []models.Treatment{
		{Name: "Cleaning", Slots: models.StringList{"9am", "10am", "11am"}, Price: 30},
	}

	uc := NewGetAvailability(repo)
	submit := NewSubmitBooking(repo, newTestDispatcher())

	t.Run("Unknown Date Yields Full Availability", func(t *testing.T) {
		out, err := uc.Execute(ctx, "2030-01-01")
		require.NoError(t, err)

		require.Len(t, out, 1)
		assert.Equal(t, []string{"9am", "10am", "11am"}, out[0].RemainingSlots)
	})

	t.Run("Committed Booking Shrinks Availability For Its Date Only", func(t *testing.T) {
		result, err := submit.Execute(ctx, domain.BookingRequest{
			Date: "2024-05-01", Patient: "a@x.com", Treatment: "Cleaning", Slot: "10am",
		})
		require.NoError(t, err)
		require.True(t, result.Accepted)

		booked, err := uc.Execute(ctx, "2024-05-01")
		require.NoError(t, err)
		assert.Equal(t, []string{"9am", "11am"}, booked[0].RemainingSlots)

		other, err := uc.Execute(ctx, "2024-05-02")
		require.NoError(t, err)
		assert.Equal(t, []string{"9am", "10am", "11am"}, other[0].RemainingSlots)
	})

	t.Run("Repeated Reads Are Identical Without Writes", func(t *testing.T) {
		first, err := uc.Execute(ctx, "2024-05-01")
		require.NoError(t, err)

		second, err := uc.Execute(ctx, "2024-05-01")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
