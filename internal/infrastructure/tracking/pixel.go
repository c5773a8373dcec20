package tracking

import (
	"context"

	"go.uber.org/zap"
)

// PurchaseTracker reports purchases to the browser pixel channel. The
// dispatcher treats it as optional: a nil tracker disables the channel
// without affecting the others.
type PurchaseTracker interface {
	TrackPurchase(ctx context.Context, purchase PixelPurchase) error
}

// TrackerFunc adapts a function to the PurchaseTracker interface
type TrackerFunc func(ctx context.Context, purchase PixelPurchase) error

// TrackPurchase calls f
func (f TrackerFunc) TrackPurchase(ctx context.Context, purchase PixelPurchase) error {
	return f(ctx, purchase)
}

// LogTracker writes pixel payloads to the structured log. It stands in
// for the browser pixel when no real tracker is attached.
type LogTracker struct {
	logger *zap.Logger
}

// NewLogTracker creates a new LogTracker
func NewLogTracker(logger *zap.Logger) *LogTracker {
	return &LogTracker{logger: logger}
}

// TrackPurchase implements PurchaseTracker
func (t *LogTracker) TrackPurchase(_ context.Context, purchase PixelPurchase) error {
	t.logger.Info("pixel purchase",
		zap.String("event_id", purchase.EventID),
		zap.Float64("value", purchase.Value),
		zap.String("currency", purchase.Currency),
		zap.Int("contents", len(purchase.Contents)))
	return nil
}
