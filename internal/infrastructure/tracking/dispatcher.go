package tracking

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pankecas/backend/internal/domain/catalog"
	"github.com/pankecas/backend/internal/domain/checkout"
)

// relayTimeout bounds the fire-and-forget relay report after the
// submission response has already been sent
const relayTimeout = 15 * time.Second

// Dispatcher fans a conversion out to the three reporting channels:
// the analytics sink, the browser pixel, and the server-side relay.
// Channels are isolated: a failure in one is logged and never blocks
// the others or the order submission itself.
type Dispatcher struct {
	sink   EventSink
	pixel  PurchaseTracker
	relay  *RelayClient
	logger *zap.Logger

	wg sync.WaitGroup
}

// NewDispatcher wires the reporting channels. pixel and relay may be
// nil to disable those channels.
func NewDispatcher(sink EventSink, pixel PurchaseTracker, relay *RelayClient, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sink:   sink,
		pixel:  pixel,
		relay:  relay,
		logger: logger,
	}
}

// ItemAdded reports a product entering the cart to the analytics sink.
// It is called before the cart mutation is applied.
func (d *Dispatcher) ItemAdded(ctx context.Context, p *catalog.Product) {
	if err := d.sink.Push(ctx, NewAddToCartEvent(p)); err != nil {
		d.logger.Warn("failed to report add_to_cart",
			zap.Int("product_id", p.ID),
			zap.Error(err))
	}
}

// PurchaseCompleted reports a composed order to every channel. The
// analytics and pixel reports run inline; the relay report runs in the
// background so its latency never delays the messaging handoff.
func (d *Dispatcher) PurchaseCompleted(ctx context.Context, order *checkout.Order) {
	if err := d.sink.Push(ctx, NewPurchaseEvent(order)); err != nil {
		d.logger.Warn("failed to report purchase to analytics sink",
			zap.String("dedupe_id", order.DedupeID),
			zap.Error(err))
	}

	if d.pixel != nil {
		if err := d.pixel.TrackPurchase(ctx, NewPixelPurchase(order)); err != nil {
			d.logger.Warn("failed to report purchase to pixel",
				zap.String("dedupe_id", order.DedupeID),
				zap.Error(err))
		}
	}

	if d.relay != nil {
		payload := NewRelayPayload(order)
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			// Detached from the request context: the relay report must
			// survive the HTTP response completing first
			relayCtx, cancel := context.WithTimeout(context.Background(), relayTimeout)
			defer cancel()

			if err := d.relay.SendPurchase(relayCtx, payload); err != nil {
				d.logger.Warn("failed to report purchase to relay",
					zap.String("dedupe_id", payload.EventID),
					zap.Error(err))
				return
			}
			d.logger.Info("purchase reported to relay", zap.String("dedupe_id", payload.EventID))
		}()
	}
}

// Flush waits for in-flight relay reports, for shutdown and tests
func (d *Dispatcher) Flush() {
	d.wg.Wait()
}
