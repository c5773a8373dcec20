package ordering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pankecas/backend/internal/domain/cart"
	"github.com/pankecas/backend/internal/domain/catalog"
	"github.com/pankecas/backend/internal/domain/shared"
	"github.com/pankecas/backend/internal/infrastructure/tracking"
)

// CartService handles session cart operations
type CartService struct {
	carts      cart.Repository
	catalog    *catalog.Catalog
	dispatcher *tracking.Dispatcher
	logger     *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(carts cart.Repository, cat *catalog.Catalog, dispatcher *tracking.Dispatcher, logger *zap.Logger) *CartService {
	return &CartService{
		carts:      carts,
		catalog:    cat,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// View returns the session cart
func (s *CartService) View(ctx context.Context, sessionID string) (*CartResponse, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewCartResponse(c), nil
}

// AddItem adds one unit of the product to the session cart. The
// add-to-cart report is emitted before the mutation is applied.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID int) (*CartResponse, error) {
	product, ok := s.catalog.ItemByID(productID)
	if !ok {
		return nil, shared.NewDomainError("PRODUCT_NOT_FOUND", fmt.Sprintf("Product %d not found", productID))
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.dispatcher.ItemAdded(ctx, product)
	c.AddItem(product)

	if err := s.carts.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}

	s.logger.Debug("item added to cart",
		zap.String("session_id", sessionID),
		zap.Int("product_id", productID))
	return NewCartResponse(c), nil
}

// ChangeQuantity adjusts an existing line by one unit. Unknown products
// are a silent no-op, matching the cart semantics.
func (s *CartService) ChangeQuantity(ctx context.Context, sessionID string, productID int, action string) (*CartResponse, error) {
	change := cart.QuantityChange(action)
	if !change.IsValid() {
		return nil, shared.NewDomainError("INVALID_QUANTITY_CHANGE", fmt.Sprintf("Unknown quantity action %q", action))
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.ChangeQuantity(productID, change)

	if err := s.carts.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return NewCartResponse(c), nil
}

// RemoveItem deletes the line for the product from the session cart
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int) (*CartResponse, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(productID)

	if err := s.carts.Save(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return NewCartResponse(c), nil
}
