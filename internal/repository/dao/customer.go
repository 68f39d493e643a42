package dao

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey"`

	// Identification is the external identity key. It is nullable so
	// customers captured through other channels can exist without one;
	// an empty string is never stored.
	Identification *string `gorm:"uniqueIndex"`

	FirstName      string `gorm:"not null"`
	Email          string
	Phone          string
	Address        string
	AdditionalInfo string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
