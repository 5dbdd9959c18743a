package dto

import "github.com/BruksfildServices01/clinic-portal/internal/models"

type BookingListDTO struct {
	ID            uint    `json:"id"`
	Reference     string  `json:"reference"`
	Date          string  `json:"date"`
	Treatment     string  `json:"treatment"`
	Slot          string  `json:"slot"`
	Paid          bool    `json:"paid"`
	TransactionID *string `json:"transaction_id,omitempty"`
}

func FromBooking(b models.Booking) BookingListDTO {
	return BookingListDTO{
		ID:            b.ID,
		Reference:     b.Reference,
		Date:          b.Date,
		Treatment:     b.Treatment,
		Slot:          b.Slot,
		Paid:          b.Paid,
		TransactionID: b.TransactionID,
	}
}
