package entities_test

import (
	"testing"

	"github.com/glebsolovev/fulfillment-service/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name   string
		from   entities.OrderStatus
		to     entities.OrderStatus
		want   bool
	}{
		{name: "pending to paid", from: entities.OrderStatusPending, to: entities.OrderStatusPaid, want: true},
		{name: "pending to cancelled", from: entities.OrderStatusPending, to: entities.OrderStatusCancelled, want: true},
		{name: "paid to processing", from: entities.OrderStatusPaid, to: entities.OrderStatusProcessing, want: true},
		{name: "paid to refunded", from: entities.OrderStatusPaid, to: entities.OrderStatusRefunded, want: true},
		{name: "processing to shipped", from: entities.OrderStatusProcessing, to: entities.OrderStatusShipped, want: true},
		{name: "processing to refunded", from: entities.OrderStatusProcessing, to: entities.OrderStatusRefunded, want: true},
		{name: "shipped to delivered", from: entities.OrderStatusShipped, to: entities.OrderStatusDelivered, want: true},

		{name: "pending to shipped skips states", from: entities.OrderStatusPending, to: entities.OrderStatusShipped, want: false},
		{name: "paid back to pending", from: entities.OrderStatusPaid, to: entities.OrderStatusPending, want: false},
		{name: "shipped to refunded", from: entities.OrderStatusShipped, to: entities.OrderStatusRefunded, want: false},
		{name: "same status rejected", from: entities.OrderStatusPaid, to: entities.OrderStatusPaid, want: false},

		{name: "delivered is terminal", from: entities.OrderStatusDelivered, to: entities.OrderStatusPending, want: false},
		{name: "cancelled is terminal", from: entities.OrderStatusCancelled, to: entities.OrderStatusPaid, want: false},
		{name: "refunded is terminal", from: entities.OrderStatusRefunded, to: entities.OrderStatusProcessing, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	terminal := []entities.OrderStatus{
		entities.OrderStatusDelivered,
		entities.OrderStatusCancelled,
		entities.OrderStatusRefunded,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "%s must be terminal", s)
		// из терминального статуса не должно быть ни одного перехода
		for _, target := range []entities.OrderStatus{
			entities.OrderStatusPending, entities.OrderStatusPaid, entities.OrderStatusProcessing,
			entities.OrderStatusShipped, entities.OrderStatusDelivered,
			entities.OrderStatusCancelled, entities.OrderStatusRefunded,
		} {
			assert.False(t, s.CanTransitionTo(target), "%s -> %s must be rejected", s, target)
		}
	}

	assert.False(t, entities.OrderStatusPending.Terminal())
	assert.False(t, entities.OrderStatus("unknown").Terminal())
}

func TestOrderStatus_ReleasesStock(t *testing.T) {
	assert.True(t, entities.OrderStatusCancelled.ReleasesStock())
	assert.True(t, entities.OrderStatusRefunded.ReleasesStock())
	assert.False(t, entities.OrderStatusDelivered.ReleasesStock())
	assert.False(t, entities.OrderStatusPending.ReleasesStock())
}

func TestOrder_Validate(t *testing.T) {
	validItem := entities.OrderItem{
		ItemID:         "i1",
		ProductID:      "p1",
		Quantity:       2,
		UnitBasePrice:  500,
		UnitFinalPrice: 400,
		Discount:       200,
	}

	testCases := []struct {
		name    string
		order   entities.Order
		wantErr error
	}{
		{
			name: "valid",
			order: entities.Order{
				OrderID: "o1", Subtotal: 1000, DiscountTotal: 200, Total: 800,
				Items: []entities.OrderItem{validItem},
			},
		},
		{
			name: "total does not match subtotal minus discount",
			order: entities.Order{
				OrderID: "o1", Subtotal: 1000, DiscountTotal: 200, Total: 900,
				Items: []entities.OrderItem{validItem},
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "negative total",
			order: entities.Order{
				OrderID: "o1", Subtotal: 100, DiscountTotal: 300, Total: -200,
				Items: []entities.OrderItem{validItem},
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "no items",
			order:   entities.Order{OrderID: "o1"},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "zero quantity item",
			order: entities.Order{
				OrderID: "o1", Items: []entities.OrderItem{{ItemID: "i1", ProductID: "p1", Quantity: 0}},
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "final price above base price",
			order: entities.Order{
				OrderID: "o1",
				Items:   []entities.OrderItem{{ItemID: "i1", ProductID: "p1", Quantity: 1, UnitBasePrice: 100, UnitFinalPrice: 150}},
			},
			wantErr: entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
