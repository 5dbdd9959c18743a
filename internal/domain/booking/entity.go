package booking

import (
	"github.com/BruksfildServices01/clinic-portal/internal/httperr"
	"github.com/BruksfildServices01/clinic-portal/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// MarkPaid applies the one-way paid transition. Date, treatment, slot and
// patient are frozen at admission time and never change afterwards.
func MarkPaid(b *models.Booking, transactionID string) error {
	if b.Paid {
		return httperr.ErrBusiness("already_paid")
	}

	b.Paid = true
	b.TransactionID = &transactionID
	return nil
}
