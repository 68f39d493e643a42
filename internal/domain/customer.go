package domain

import "time"

type Customer struct {
	ID             uint
	Identification string
	FirstName      string
	Email          string
	Phone          string
	Address        string
	AdditionalInfo string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
