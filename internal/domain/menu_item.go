package domain

import "time"

const DefaultStock = 100

type MenuItem struct {
	ID        int64
	Name      string
	Price     int
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
