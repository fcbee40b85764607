package domain

import "time"

type Product struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	Src          string    `json:"src"`
	Location     string    `json:"location"`
	Price        float64   `json:"price"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateProductInput struct {
	Name         string
	Src          string
	Location     string
	Price        float64
	Availability bool
}

// UpdateProductInput carries a partial patch; nil fields keep current values.
type UpdateProductInput struct {
	Name         *string
	Src          *string
	Location     *string
	Price        *float64
	Availability *bool
}
