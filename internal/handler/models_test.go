package handler_test

import (
	"testing"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
	"github.com/glebsolovev/fulfillment-service/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutOrderToEntity(t *testing.T) {
	checkout := handler.CheckoutOrder{
		OrderID:    "o1",
		CustomerID: "c1",
		AddressID:  "addr1",
		Items: []handler.CheckoutOrderItem{
			{ItemID: "i1", ProductID: "p1", Quantity: 2, UnitBasePrice: 500, UnitFinalPrice: 400},
			{ProductID: "p2", Quantity: 1, UnitBasePrice: 300, UnitFinalPrice: 300},
		},
	}

	order := handler.CheckoutOrderToEntity(checkout)

	assert.Equal(t, "o1", order.OrderID)
	assert.Equal(t, entities.OrderStatusPending, order.Status)
	assert.Equal(t, entities.OrderSourceOneTime, order.Source)

	// subtotal = 2*500 + 1*300, скидка только по первой позиции
	assert.Equal(t, 1300, order.Subtotal)
	assert.Equal(t, 200, order.DiscountTotal)
	assert.Equal(t, 1100, order.Total)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "i1", order.Items[0].ItemID)
	assert.Equal(t, 200, order.Items[0].Discount)
	assert.NotEmpty(t, order.Items[1].ItemID, "missing item id must be generated")
	assert.Zero(t, order.Items[1].Discount)

	assert.NoError(t, order.Validate())
}

func TestCheckoutOrderToEntity_AutoshipSource(t *testing.T) {
	checkout := handler.CheckoutOrder{
		OrderID:    "o1",
		CustomerID: "c1",
		AutoshipID: "a1",
		Source:     "autoship",
		Items: []handler.CheckoutOrderItem{
			{ItemID: "i1", ProductID: "p1", Quantity: 1, UnitBasePrice: 500, UnitFinalPrice: 500},
		},
	}

	order := handler.CheckoutOrderToEntity(checkout)

	assert.Equal(t, entities.OrderSourceAutoship, order.Source)
	assert.Equal(t, "a1", order.AutoshipID)
}
