package api

import "github.com/mmynk/ordena/internal/models"

// FromRestaurant converts a model to its wire form.
func FromRestaurant(r models.Restaurant) *Restaurant {
	return &Restaurant{
		Id:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageResId:  r.ImageResID,
		ImagePath:   r.ImagePath,
		Address:     r.Address,
	}
}

// ToRestaurant converts a wire restaurant to the model. A nil message yields the zero value.
func ToRestaurant(r *Restaurant) models.Restaurant {
	if r == nil {
		return models.Restaurant{}
	}
	return models.Restaurant{
		ID:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		ImageResID:  r.ImageResId,
		ImagePath:   r.ImagePath,
		Address:     r.Address,
	}
}

// FromProduct converts a model to its wire form.
func FromProduct(p models.Product, lowStock bool) *Product {
	return &Product{
		Id:           p.ID,
		RestaurantId: p.RestaurantID,
		Name:         p.Name,
		Unit:         p.Unit,
		Quantity:     p.Quantity,
		LowStock:     lowStock,
	}
}

// ToProduct converts a wire product to the model.
func ToProduct(p *Product) models.Product {
	if p == nil {
		return models.Product{}
	}
	return models.Product{
		ID:           p.Id,
		Name:         p.Name,
		Unit:         p.Unit,
		Quantity:     p.Quantity,
		RestaurantID: p.RestaurantId,
	}
}
