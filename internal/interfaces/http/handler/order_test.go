package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankecas/backend/internal/application/ordering"
	"github.com/pankecas/backend/internal/interfaces/http/dto"
)

func validOrder() ordering.SubmitOrderRequest {
	return ordering.SubmitOrderRequest{
		Name:          "Ana Souza",
		Phone:         "27988887777",
		PickupInStore: true,
		PaymentMethod: "pix",
	}
}

func TestOrderHandler_SubmitOrder(t *testing.T) {
	s := newTestServer(t)
	session := uuid.NewString()

	_, _ = s.do(t, http.MethodPost, "/cart/items", session, ordering.AddItemRequest{ProductID: 1})
	_, _ = s.do(t, http.MethodPost, "/cart/items", session, ordering.AddItemRequest{ProductID: 1})

	w, resp := s.do(t, http.MethodPost, "/orders", session, validOrder())
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)

	data := dataMap(t, resp)
	assert.Equal(t, "36.00", data["total"])
	assert.NotEmpty(t, data["dedupe_id"])
	assert.NotEmpty(t, data["transaction_id"])

	handoff := data["handoff"].(map[string]interface{})
	assert.True(t, strings.HasPrefix(handoff["link"].(string), "https://wa.me/5527999999154?text="))
	assert.Equal(t, float64(800), handoff["delay_ms"])

	// add_to_cart twice plus the purchase
	assert.Len(t, s.sink.Events(), 3)
}

func TestOrderHandler_SubmitOrder_EmptyCart(t *testing.T) {
	s := newTestServer(t)

	w, resp := s.do(t, http.MethodPost, "/orders", uuid.NewString(), validOrder())
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeEmptyCart, resp.Error.Code)
}

func TestOrderHandler_SubmitOrder_MissingFields(t *testing.T) {
	s := newTestServer(t)
	session := uuid.NewString()

	_, _ = s.do(t, http.MethodPost, "/cart/items", session, ordering.AddItemRequest{ProductID: 1})

	req := validOrder()
	req.Phone = ""
	w, resp := s.do(t, http.MethodPost, "/orders", session, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidationRequired, resp.Error.Code)
	assert.Equal(t, "Por favor, preencha todos os campos obrigatórios.", resp.Error.Message)
}
