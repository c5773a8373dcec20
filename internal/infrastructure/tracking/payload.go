package tracking

import (
	"github.com/pankecas/backend/internal/domain/catalog"
	"github.com/pankecas/backend/internal/domain/checkout"
)

// Constants shared by every conversion channel
const (
	Currency    = "BRL"
	Affiliation = "Pankeca's - Cardápio Digital"

	// ContentTypeProductGroup is the pixel content_type for multi-item carts
	ContentTypeProductGroup = "product_group"
)

// ECommerceItem is one cart line in the analytics payload shape
type ECommerceItem struct {
	ItemID       string  `json:"item_id"`
	ItemName     string  `json:"item_name"`
	ItemCategory string  `json:"item_category"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// CustomerInfo is the standardized customer block attached to purchase
// payloads. Field names are fixed by the downstream consumers.
type CustomerInfo struct {
	FirstName     string `json:"primeiro_nome"`
	LastName      string `json:"ultimo_nome"`
	Phone         string `json:"telefone"`
	Address       string `json:"endereco"`
	AddressNote   string `json:"complemento"`
	PaymentMethod string `json:"forma_pagamento"`
	DeliveryMode  string `json:"tipo_entrega"`
}

// AddToCartEvent is pushed to the analytics sink whenever a product
// enters the cart. Quantity is always 1: repeat additions emit repeat
// events.
type AddToCartEvent struct {
	Event     string `json:"event"`
	ECommerce struct {
		Currency string          `json:"currency"`
		Value    float64         `json:"value"`
		Items    []ECommerceItem `json:"items"`
	} `json:"ecommerce"`
}

// EventName implements Event
func (e AddToCartEvent) EventName() string { return e.Event }

// PurchaseEvent is the analytics-sink payload for a completed order
type PurchaseEvent struct {
	Event     string `json:"event"`
	ECommerce struct {
		TransactionID string          `json:"transaction_id"`
		Affiliation   string          `json:"affiliation"`
		Value         float64         `json:"value"`
		Tax           float64         `json:"tax"`
		Shipping      float64         `json:"shipping"`
		Currency      string          `json:"currency"`
		Items         []ECommerceItem `json:"items"`
	} `json:"ecommerce"`
	CustomerInfo CustomerInfo `json:"customer_info"`
}

// EventName implements Event
func (e PurchaseEvent) EventName() string { return e.Event }

// PixelContent is one cart line in the pixel / relay payload shape,
// which carries less detail than the analytics shape
type PixelContent struct {
	ID        string  `json:"id"`
	Quantity  int     `json:"quantity"`
	ItemPrice float64 `json:"item_price"`
}

// PixelPurchase is the browser-pixel purchase payload. EventID carries
// the shared dedupe identifier so the pixel report and the server-side
// relay report collapse into one conversion.
type PixelPurchase struct {
	Value       float64        `json:"value"`
	Currency    string         `json:"currency"`
	ContentType string         `json:"content_type"`
	Contents    []PixelContent `json:"contents"`
	EventID     string         `json:"event_id"`
}

// RelayPayload is the body POSTed to the server-side conversion relay
type RelayPayload struct {
	EventID      string         `json:"eventId"`
	Value        float64        `json:"value"`
	Currency     string         `json:"currency"`
	Items        []PixelContent `json:"items"`
	CustomerInfo CustomerInfo   `json:"customer_info"`
}

// NewAddToCartEvent builds the analytics event for a single unit of the
// given product entering the cart
func NewAddToCartEvent(p *catalog.Product) AddToCartEvent {
	price := p.Price.InexactFloat64()
	e := AddToCartEvent{Event: "add_to_cart"}
	e.ECommerce.Currency = Currency
	e.ECommerce.Value = price
	e.ECommerce.Items = []ECommerceItem{{
		ItemID:       itemID(p.ID),
		ItemName:     p.Name,
		ItemCategory: p.Category,
		Price:        price,
		Quantity:     1,
	}}
	return e
}

// NewPurchaseEvent builds the analytics purchase event for an order
func NewPurchaseEvent(o *checkout.Order) PurchaseEvent {
	e := PurchaseEvent{Event: "purchase"}
	e.ECommerce.TransactionID = o.TransactionID
	e.ECommerce.Affiliation = Affiliation
	e.ECommerce.Value = o.Total.InexactFloat64()
	e.ECommerce.Currency = Currency
	e.ECommerce.Items = ecommerceItems(o)
	e.CustomerInfo = NewCustomerInfo(o.Customer)
	return e
}

// NewPixelPurchase builds the browser-pixel purchase payload for an order
func NewPixelPurchase(o *checkout.Order) PixelPurchase {
	return PixelPurchase{
		Value:       o.Total.InexactFloat64(),
		Currency:    Currency,
		ContentType: ContentTypeProductGroup,
		Contents:    pixelContents(o),
		EventID:     o.DedupeID,
	}
}

// NewRelayPayload builds the server-side relay body for an order. It
// reuses the order's dedupe ID so the relay report and the pixel report
// describe the same conversion.
func NewRelayPayload(o *checkout.Order) RelayPayload {
	return RelayPayload{
		EventID:      o.DedupeID,
		Value:        o.Total.InexactFloat64(),
		Currency:     Currency,
		Items:        pixelContents(o),
		CustomerInfo: NewCustomerInfo(o.Customer),
	}
}

// NewCustomerInfo derives the standardized customer block from a
// validated checkout draft
func NewCustomerInfo(d checkout.Draft) CustomerInfo {
	first, last := SplitName(d.Name)
	return CustomerInfo{
		FirstName:     first,
		LastName:      last,
		Phone:         NormalizePhone(d.Phone),
		Address:       DeliveryAddress(d),
		AddressNote:   d.AddressNote,
		PaymentMethod: string(d.PaymentMethod),
		DeliveryMode:  DeliveryMode(d.PickupInStore),
	}
}

func ecommerceItems(o *checkout.Order) []ECommerceItem {
	items := make([]ECommerceItem, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, ECommerceItem{
			ItemID:       itemID(line.ProductID),
			ItemName:     line.Name,
			ItemCategory: line.Category,
			Price:        line.UnitPrice.InexactFloat64(),
			Quantity:     line.Quantity,
		})
	}
	return items
}

func pixelContents(o *checkout.Order) []PixelContent {
	contents := make([]PixelContent, 0, len(o.Lines))
	for _, line := range o.Lines {
		contents = append(contents, PixelContent{
			ID:        itemID(line.ProductID),
			Quantity:  line.Quantity,
			ItemPrice: line.UnitPrice.InexactFloat64(),
		})
	}
	return contents
}
