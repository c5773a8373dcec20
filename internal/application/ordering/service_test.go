package ordering

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pankecas/backend/internal/domain/catalog"
	"github.com/pankecas/backend/internal/domain/shared"
	"github.com/pankecas/backend/internal/infrastructure/handoff"
	"github.com/pankecas/backend/internal/infrastructure/menu"
	"github.com/pankecas/backend/internal/infrastructure/persistence"
	"github.com/pankecas/backend/internal/infrastructure/tracking"
)

const testMenu = `{
  "categories": [
    {"id": "todos", "display_name": "Todos"},
    {"id": "salgadas", "display_name": "Salgadas"},
    {"id": "doces", "display_name": "Doces"}
  ],
  "items": [
    {"id": 1, "name": "Pankeca Clássica", "price": 18.00, "category": "salgadas"},
    {"id": 2, "name": "Pankeca de Chocolate", "price": 15.50, "category": "doces"}
  ]
}`

type fixture struct {
	carts    *persistence.MemoryCartRepository
	sink     *tracking.MemorySink
	catalog  *catalog.Catalog
	cart     *CartService
	checkout *CheckoutService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cat, err := menu.Parse([]byte(testMenu))
	require.NoError(t, err)

	carts := persistence.NewMemoryCartRepository()
	sink := tracking.NewMemorySink()
	dispatcher := tracking.NewDispatcher(sink, nil, nil, zap.NewNop())
	scheduler := handoff.NewScheduler(handoff.OpenerFunc(func(string) error { return nil }), 800*time.Millisecond, zap.NewNop())
	t.Cleanup(scheduler.Shutdown)

	return &fixture{
		carts:    carts,
		sink:     sink,
		catalog:  cat,
		cart:     NewCartService(carts, cat, dispatcher, zap.NewNop()),
		checkout: NewCheckoutService(carts, dispatcher, scheduler, "5527999999154", zap.NewNop()),
	}
}

func validSubmit() SubmitOrderRequest {
	return SubmitOrderRequest{
		Name:          "Ana Souza",
		Phone:         "27988887777",
		PickupInStore: true,
		PaymentMethod: "pix",
	}
}

func TestCartService_AddItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.cart.AddItem(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "18.00", resp.Total)

	resp, err = f.cart.AddItem(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "36.00", resp.Total)

	// Each addition emits one add_to_cart report
	assert.Len(t, f.sink.Events(), 2)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.cart.AddItem(context.Background(), "s1", 99)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", domainErr.Code)

	// No report for a failed addition
	assert.Empty(t, f.sink.Events())
}

func TestCartService_ChangeQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "s1", 1)
	require.NoError(t, err)

	resp, err := f.cart.ChangeQuantity(ctx, "s1", 1, "increase")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Items[0].Quantity)

	// Decrease floors at 1
	resp, err = f.cart.ChangeQuantity(ctx, "s1", 1, "decrease")
	require.NoError(t, err)
	resp, err = f.cart.ChangeQuantity(ctx, "s1", 1, "decrease")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Items[0].Quantity)

	_, err = f.cart.ChangeQuantity(ctx, "s1", 1, "double")
	assert.Error(t, err)
}

func TestCartService_RemoveItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "s1", 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, "s1", 2)
	require.NoError(t, err)

	resp, err := f.cart.RemoveItem(ctx, "s1", 1)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].ProductID)
}

func TestCheckoutService_Submit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "s1", 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, "s1", 1)
	require.NoError(t, err)

	resp, err := f.checkout.Submit(ctx, "s1", validSubmit())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.DedupeID)
	assert.NotEmpty(t, resp.TransactionID)
	assert.Equal(t, "36.00", resp.Total)
	assert.Contains(t, resp.Summary, "*Novo Pedido - Pankeca's*")
	assert.True(t, strings.HasPrefix(resp.Handoff.Link, "https://wa.me/5527999999154?text="))
	assert.Equal(t, int64(800), resp.Handoff.DelayMs)

	// One add_to_cart per addition plus the purchase
	events := f.sink.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "purchase", events[2].EventName())

	// The cart survives submission
	view, err := f.cart.View(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)
}

func TestCheckoutService_Submit_EmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.checkout.Submit(context.Background(), "s1", validSubmit())
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMPTY_CART", domainErr.Code)
}

func TestCheckoutService_Submit_MissingFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "s1", 1)
	require.NoError(t, err)

	req := validSubmit()
	req.Phone = ""
	_, err = f.checkout.Submit(ctx, "s1", req)
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "REQUIRED_FIELDS", domainErr.Code)
	assert.Equal(t, "Por favor, preencha todos os campos obrigatórios.", domainErr.Message)
}

func TestSubmitOrderRequest_Draft_DefaultPayment(t *testing.T) {
	req := SubmitOrderRequest{Name: "Ana", Phone: "27988887777", PickupInStore: true}
	assert.Equal(t, "dinheiro", string(req.Draft().PaymentMethod))
}
