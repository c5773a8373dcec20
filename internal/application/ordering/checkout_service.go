package ordering

import (
	"context"

	"go.uber.org/zap"

	"github.com/pankecas/backend/internal/domain/cart"
	"github.com/pankecas/backend/internal/domain/checkout"
	"github.com/pankecas/backend/internal/infrastructure/handoff"
	"github.com/pankecas/backend/internal/infrastructure/tracking"
)

// CheckoutService turns a session cart plus a checkout form into a
// dispatched order and a scheduled messaging handoff
type CheckoutService struct {
	carts       cart.Repository
	dispatcher  *tracking.Dispatcher
	scheduler   *handoff.Scheduler
	storeNumber string
	logger      *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(carts cart.Repository, dispatcher *tracking.Dispatcher, scheduler *handoff.Scheduler, storeNumber string, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		carts:       carts,
		dispatcher:  dispatcher,
		scheduler:   scheduler,
		storeNumber: storeNumber,
		logger:      logger,
	}
}

// Submit composes the order, fans it out to the conversion channels and
// schedules the delayed handoff. The cart is intentionally left intact:
// if the customer abandons the messaging step they can submit again.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, req SubmitOrderRequest) (*SubmitOrderResponse, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	order, err := checkout.Compose(c, req.Draft())
	if err != nil {
		return nil, err
	}

	s.dispatcher.PurchaseCompleted(ctx, order)

	link := handoff.BuildLink(s.storeNumber, order.Summary())
	h := s.scheduler.Schedule(link)

	s.logger.Info("order submitted",
		zap.String("session_id", sessionID),
		zap.String("dedupe_id", order.DedupeID),
		zap.String("total", order.Total.StringFixed(2)),
		zap.Int("line_count", len(order.Lines)))

	items := make([]CartItemResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, CartItemResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Category:  line.Category,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}

	return &SubmitOrderResponse{
		DedupeID:      order.DedupeID,
		TransactionID: order.TransactionID,
		Total:         order.Total.StringFixed(2),
		Summary:       order.Summary(),
		Handoff: HandoffResponse{
			Link:    h.Link,
			DelayMs: h.Delay.Milliseconds(),
		},
		Items: items,
	}, nil
}
