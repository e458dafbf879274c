// Package notify delivers low-stock alerts.
//
// A Notifier is a sink (log, Kafka). A Dispatcher sends one alert per low
// product per load pass, optionally filtered by a Suppressor.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mmynk/ordena/internal/metrics"
	"github.com/mmynk/ordena/internal/models"
)

// Alert is a low-stock notification for one product.
type Alert struct {
	ProductID    int64     `json:"product_id"`
	RestaurantID int64     `json:"restaurant_id"`
	Product      string    `json:"product"`
	Unit         string    `json:"unit"`
	Quantity     float64   `json:"quantity"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	RaisedAt     time.Time `json:"raised_at"`
}

// LowStockAlert builds the alert for a product.
func LowStockAlert(p models.Product, now time.Time) Alert {
	return Alert{
		ProductID:    p.ID,
		RestaurantID: p.RestaurantID,
		Product:      p.Name,
		Unit:         p.Unit,
		Quantity:     p.Quantity,
		Title:        fmt.Sprintf("Low stock: %s", p.Name),
		Text:         fmt.Sprintf("%s %s left", strconv.FormatFloat(p.Quantity, 'f', -1, 64), p.Unit),
		RaisedAt:     now,
	}
}

// Key identifies the alert for suppression purposes.
func (a Alert) Key() string {
	return "lowstock:" + strconv.FormatInt(a.ProductID, 10)
}

// Notifier posts alerts to a sink.
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, alert Alert) error

// Notify calls f(ctx, alert).
func (f NotifierFunc) Notify(ctx context.Context, alert Alert) error {
	return f(ctx, alert)
}

// LogNotifier writes alerts to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs at Warn level. A nil logger uses slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the alert.
func (n *LogNotifier) Notify(ctx context.Context, alert Alert) error {
	n.logger.WarnContext(ctx, alert.Title,
		"text", alert.Text,
		"product_id", alert.ProductID,
		"restaurant_id", alert.RestaurantID,
	)
	return nil
}

// Multi fans an alert out to several notifiers and joins their errors.
type Multi []Notifier

// Notify posts to every notifier, even after a failure.
func (m Multi) Notify(ctx context.Context, alert Alert) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Dispatcher posts alerts through a notifier, filtered by a suppressor.
type Dispatcher struct {
	notifier   Notifier
	suppressor Suppressor
}

// NewDispatcher creates a dispatcher. A nil suppressor sends every alert.
func NewDispatcher(notifier Notifier, suppressor Suppressor) *Dispatcher {
	if suppressor == nil {
		suppressor = Never{}
	}
	return &Dispatcher{notifier: notifier, suppressor: suppressor}
}

// Dispatch posts each alert the suppressor allows and returns how many were posted.
// Suppressor errors fail open: the alert is still posted.
func (d *Dispatcher) Dispatch(ctx context.Context, alerts []Alert) (int, error) {
	var errs []error
	sent := 0
	for _, alert := range alerts {
		allowed, err := d.suppressor.Allow(ctx, alert.Key())
		if err != nil {
			slog.Warn("Alert suppression check failed", "key", alert.Key(), "error", err)
			allowed = true
		}
		if !allowed {
			metrics.LowStockAlerts.WithLabelValues("suppressed").Inc()
			continue
		}

		if err := d.notifier.Notify(ctx, alert); err != nil {
			metrics.LowStockAlerts.WithLabelValues("failed").Inc()
			errs = append(errs, fmt.Errorf("failed to notify %s: %w", alert.Key(), err))
			continue
		}
		metrics.LowStockAlerts.WithLabelValues("sent").Inc()
		sent++
	}
	return sent, errors.Join(errs...)
}
