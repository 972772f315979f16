package entities_test

import (
	"testing"

	"github.com/glebsolovev/fulfillment-service/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestInventoryRecord_StockStatus(t *testing.T) {
	testCases := []struct {
		name   string
		record entities.InventoryRecord
		want   entities.StockStatus
	}{
		{name: "zero quantity", record: entities.InventoryRecord{Quantity: 0, LowStockThreshold: 5}, want: entities.StockStatusOutOfStock},
		{name: "negative quantity", record: entities.InventoryRecord{Quantity: -1, LowStockThreshold: 5}, want: entities.StockStatusOutOfStock},
		{name: "at threshold", record: entities.InventoryRecord{Quantity: 5, LowStockThreshold: 5}, want: entities.StockStatusLowStock},
		{name: "below threshold", record: entities.InventoryRecord{Quantity: 1, LowStockThreshold: 5}, want: entities.StockStatusLowStock},
		{name: "above threshold", record: entities.InventoryRecord{Quantity: 6, LowStockThreshold: 5}, want: entities.StockStatusInStock},
		{name: "zero threshold", record: entities.InventoryRecord{Quantity: 1, LowStockThreshold: 0}, want: entities.StockStatusInStock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.record.StockStatus())
		})
	}
}
