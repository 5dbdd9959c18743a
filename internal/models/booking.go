package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Reference is the handle given to external parties (payment gateway).
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	Date      string `gorm:"size:10;not null;uniqueIndex:idx_booking_date_patient_treatment" json:"date"`
	Patient   string `gorm:"size:100;not null;uniqueIndex:idx_booking_date_patient_treatment" json:"patient"`
	Treatment string `gorm:"size:100;not null;uniqueIndex:idx_booking_date_patient_treatment" json:"treatment"`
	Slot      string `gorm:"size:50;not null" json:"slot"`

	Paid          bool    `gorm:"default:false" json:"paid"`
	TransactionID *string `gorm:"size:100" json:"transaction_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
