package inventory

import (
	"context"
	"time"

	"github.com/mmynk/ordena/internal/calculator"
	"github.com/mmynk/ordena/internal/models"
	"github.com/mmynk/ordena/internal/notify"
)

// StockMonitor raises a low-stock alert for every product at or below the threshold.
type StockMonitor struct {
	threshold  float64
	dispatcher *notify.Dispatcher
	now        func() time.Time
}

// NewStockMonitor creates a monitor. A non-positive threshold uses calculator.DefaultLowStockThreshold.
func NewStockMonitor(threshold float64, dispatcher *notify.Dispatcher) *StockMonitor {
	if threshold <= 0 {
		threshold = calculator.DefaultLowStockThreshold
	}
	return &StockMonitor{threshold: threshold, dispatcher: dispatcher, now: time.Now}
}

// Threshold returns the low-stock threshold.
func (m *StockMonitor) Threshold() float64 {
	return m.threshold
}

// Scan dispatches one alert per low product and returns how many were sent.
func (m *StockMonitor) Scan(ctx context.Context, products []models.Product) (int, error) {
	quantities := make([]float64, len(products))
	for i, p := range products {
		quantities[i] = p.Quantity
	}

	low := calculator.LowStock(quantities, m.threshold)
	if len(low) == 0 {
		return 0, nil
	}

	now := m.now()
	alerts := make([]notify.Alert, len(low))
	for i, idx := range low {
		alerts[i] = notify.LowStockAlert(products[idx], now)
	}
	return m.dispatcher.Dispatch(ctx, alerts)
}
