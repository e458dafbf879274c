package models

// Product represents one stocked item of a restaurant.
type Product struct {
	// ID is the storage-assigned row identifier.
	ID int64 `json:"id"`

	// Name is the product name (e.g., "Tomatoes").
	Name string `json:"name"`

	// Unit is the unit label the quantity is measured in (e.g., "kg", "boxes").
	Unit string `json:"unit"`

	// Quantity is the amount in stock. Never negative.
	Quantity float64 `json:"quantity"`

	// RestaurantID is the owning restaurant.
	RestaurantID int64 `json:"restaurant_id"`
}

// WithQuantity returns a copy of the product with the given quantity.
func (p Product) WithQuantity(q float64) Product {
	p.Quantity = q
	return p
}
