package entities

import "errors"

type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "out_of_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusInStock    StockStatus = "in_stock"
)

type InventoryRecord struct {
	ProductID         string
	Quantity          int
	LowStockThreshold int
}

// StockStatus вычисляется при каждом чтении, в базе не хранится.
func (r InventoryRecord) StockStatus() StockStatus {
	switch {
	case r.Quantity <= 0:
		return StockStatusOutOfStock
	case r.Quantity <= r.LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
