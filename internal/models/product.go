package models

import "time"

// Product represents a product entity in the inventory system.
// ID, OwnerID and CreatedAt are assigned by the store on creation and are
// never user-editable afterwards.
type Product struct {
	ID          string    `json:"id"`
	OwnerID     int       `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	CostValue   float64   `json:"cost_value"`
	SaleValue   float64   `json:"sale_value"`
	CreatedAt   time.Time `json:"created_at"`
}
