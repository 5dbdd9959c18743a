package models

import "time"

type Treatment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Slots StringList `gorm:"type:jsonb" json:"slots"`

	Price  float64 `json:"price"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
