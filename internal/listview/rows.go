package listview

import (
	"errors"
	"fmt"

	"github.com/mmynk/ordena/internal/calculator"
	"github.com/mmynk/ordena/internal/models"
)

// ErrPosition is returned for a position outside the list.
var ErrPosition = errors.New("position out of range")

// Row is the rendered content of one list entry.
type Row struct {
	Title    string
	Subtitle string
	Detail   string

	// Image is set for restaurant rows.
	Image models.ImageRef

	// Alert marks rows that need attention, such as low stock.
	Alert bool
}

// RestaurantRow renders a restaurant: name, description and its resolved image.
func RestaurantRow(r models.Restaurant) Row {
	return Row{
		Title:    r.Name,
		Subtitle: r.Description,
		Detail:   r.Address,
		Image:    r.Image(),
	}
}

// ProductRow returns a renderer for products that flags quantities at or below threshold.
func ProductRow(threshold float64) Renderer[models.Product] {
	return func(p models.Product) Row {
		return Row{
			Title:    p.Name,
			Subtitle: p.Unit,
			Detail:   fmt.Sprintf("%.2f", p.Quantity),
			Alert:    calculator.IsLowStock(p.Quantity, threshold),
		}
	}
}
