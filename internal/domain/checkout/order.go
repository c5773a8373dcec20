package checkout

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pankecas/backend/internal/domain/cart"
	"github.com/pankecas/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StoreName is the restaurant name used in the order summary
const StoreName = "Pankeca's"

// OrderLine is a value copy of a cart line taken at submission time.
// It owns its product data so later catalog or cart changes cannot alter
// a dispatched order.
type OrderLine struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns unit price × quantity for this line
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is the immutable snapshot of one successful submission.
// It is created once, dispatched, and discarded - never persisted or
// mutated.
type Order struct {
	Lines         []OrderLine     `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	Customer      Draft           `json:"customer"`
	DedupeID      string          `json:"dedupe_id"`
	TransactionID string          `json:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Compose validates the draft and snapshots the cart into a finalized
// order. The dedupe ID is shared by every conversion channel so
// downstream systems can collapse duplicate reports; the transaction ID
// is an independent display-only identifier for the analytics payload.
func Compose(c *cart.Cart, draft Draft) (*Order, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if c == nil || c.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot submit an order with an empty cart")
	}

	lines := make([]OrderLine, 0, c.LineCount())
	for _, line := range c.Lines() {
		lines = append(lines, OrderLine{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Category:  line.Product.Category,
			UnitPrice: line.Product.Price,
			Quantity:  line.Quantity,
		})
	}

	return &Order{
		Lines:         lines,
		Total:         c.Total(),
		Customer:      draft,
		DedupeID:      newEventID("evt"),
		TransactionID: newEventID("T"),
		CreatedAt:     time.Now(),
	}, nil
}

// Summary renders the order as the plain-text message sent through the
// messaging-channel handoff
func (o *Order) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo Pedido - %s*\n\n", StoreName)
	fmt.Fprintf(&b, "*Cliente:* %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "*Telefone:* %s\n", o.Customer.Phone)
	if o.Customer.PickupInStore {
		b.WriteString("*Retirada:* Na loja\n")
	} else {
		fmt.Fprintf(&b, "*Endereço:* %s\n", o.Customer.Address)
		if o.Customer.AddressNote != "" {
			fmt.Fprintf(&b, "*Complemento:* %s\n", o.Customer.AddressNote)
		}
	}
	fmt.Fprintf(&b, "*Forma de Pagamento:* %s\n\n", o.Customer.PaymentMethod.Label())

	b.WriteString("*Itens do Pedido:*\n")
	for i, line := range o.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %dx %s (R$ %s)", line.Quantity, line.Name, line.Subtotal().StringFixed(2))
	}

	fmt.Fprintf(&b, "\n\n*Total:* R$ %s", o.Total.StringFixed(2))

	return b.String()
}

const eventIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newEventID builds a "<prefix>_<millis>_<random>" identifier: unique with
// overwhelming probability for submissions from the same client, not
// globally unique across clients
func newEventID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = eventIDAlphabet[rand.IntN(len(eventIDAlphabet))]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}
