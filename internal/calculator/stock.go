// Package calculator holds the stock arithmetic: quantity steps, parsing and low-stock checks.
package calculator

import (
	"math"
	"strconv"
	"strings"
)

// DefaultLowStockThreshold is the quantity at or below which a product is low on stock.
const DefaultLowStockThreshold = 2.0

// Step is the amount one increment or decrement changes a quantity by.
const Step = 1.0

// ApplyDelta adds delta to quantity and clamps the result at zero.
// A decrement on an empty product leaves it at zero.
func ApplyDelta(quantity, delta float64) float64 {
	next := quantity + delta
	if next < 0 || math.IsNaN(next) {
		return 0
	}
	return next
}

// ParseQuantity converts user input into a stock quantity.
// Unparseable input yields 0 and negative values are raised to 0.
func ParseQuantity(text string) float64 {
	q, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return math.Max(q, 0)
}

// IsLowStock reports whether quantity is at or below threshold.
func IsLowStock(quantity, threshold float64) bool {
	return quantity <= threshold
}

// LowStock returns the indexes of quantities at or below threshold, in order.
func LowStock(quantities []float64, threshold float64) []int {
	var low []int
	for i, q := range quantities {
		if IsLowStock(q, threshold) {
			low = append(low, i)
		}
	}
	return low
}
