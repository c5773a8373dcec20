package ordering

import (
	"github.com/pankecas/backend/internal/domain/cart"
	"github.com/pankecas/backend/internal/domain/checkout"
)

// AddItemRequest adds one unit of a product to the cart
type AddItemRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
}

// ChangeQuantityRequest adjusts a cart line by one unit
type ChangeQuantityRequest struct {
	ProductID int    `json:"product_id" binding:"required,gt=0"`
	Action    string `json:"action" binding:"required,oneof=increase decrease"`
}

// CartItemResponse is one cart line in API responses
type CartItemResponse struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Image     string  `json:"image,omitempty"`
	UnitPrice string  `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  string  `json:"subtotal"`
}

// CartResponse is the cart state in API responses
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total string             `json:"total"`
	Count int                `json:"count"`
}

// NewCartResponse converts a cart to its API shape
func NewCartResponse(c *cart.Cart) *CartResponse {
	items := make([]CartItemResponse, 0, c.LineCount())
	for _, line := range c.Lines() {
		items = append(items, CartItemResponse{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Category:  line.Product.Category,
			Image:     line.Product.Image,
			UnitPrice: line.Product.Price.StringFixed(2),
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}
	return &CartResponse{
		Items: items,
		Total: c.Total().StringFixed(2),
		Count: c.LineCount(),
	}
}

// SubmitOrderRequest carries the checkout form. Field-level requirements
// are deliberately absent: cross-field validation is a domain rule and
// its error message reaches the customer verbatim.
type SubmitOrderRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	AddressNote   string `json:"address_note"`
	PickupInStore bool   `json:"pickup_in_store"`
	PaymentMethod string `json:"payment_method"`
}

// Draft converts the request to a checkout draft, applying the default
// payment method when none is given
func (r SubmitOrderRequest) Draft() checkout.Draft {
	method := checkout.PaymentMethod(r.PaymentMethod)
	if r.PaymentMethod == "" {
		method = checkout.PaymentCash
	}
	return checkout.Draft{
		Name:          r.Name,
		Phone:         r.Phone,
		Address:       r.Address,
		AddressNote:   r.AddressNote,
		PickupInStore: r.PickupInStore,
		PaymentMethod: method,
	}
}

// HandoffResponse tells the client how to complete the messaging handoff
type HandoffResponse struct {
	Link    string `json:"link"`
	DelayMs int64  `json:"delay_ms"`
}

// SubmitOrderResponse is returned after a successful submission
type SubmitOrderResponse struct {
	DedupeID      string             `json:"dedupe_id"`
	TransactionID string             `json:"transaction_id"`
	Total         string             `json:"total"`
	Summary       string             `json:"summary"`
	Handoff       HandoffResponse    `json:"handoff"`
	Items         []CartItemResponse `json:"items"`
}
