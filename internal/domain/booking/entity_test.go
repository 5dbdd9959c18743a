package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

func TestMarkPaid(t *testing.T) {
	t.Run("Transitions Once", func(t *testing.T) {
		b := &models.Booking{ID: 1, Paid: false}

		err := MarkPaid(b, "tx-123")
		require.NoError(t, err)

		assert.True(t, b.Paid)
		require.NotNil(t, b.TransactionID)
		assert.Equal(t, "tx-123", *b.TransactionID)
	})

	t.Run("Second Transition Is Rejected", func(t *testing.T) {
		b := &models.Booking{ID: 1, Paid: false}
		require.NoError(t, MarkPaid(b, "tx-123"))

		err := MarkPaid(b, "tx-456")
		assert.True(t, httperr.IsBusiness(err, "already_paid"))
		assert.Equal(t, "tx-123", *b.TransactionID, "original transaction untouched")
	})
}
