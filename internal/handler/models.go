package handler

import (
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/entities"

	"github.com/google/uuid"
)

// Order представляет заказ
type Order struct {
	OrderID       string      `json:"order_id"`
	Status        string      `json:"status"`
	Source        string      `json:"source"`
	Subtotal      int         `json:"subtotal"`
	DiscountTotal int         `json:"discount_total"`
	Total         int         `json:"total"`
	CustomerID    string      `json:"customer_id"`
	AutoshipID    string      `json:"autoship_id,omitempty"`
	AddressID     string      `json:"address_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	Items         []OrderItem `json:"items"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ItemID         string `json:"item_id"`
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitBasePrice  int    `json:"unit_base_price"`
	UnitFinalPrice int    `json:"unit_final_price"`
	Discount       int    `json:"discount,omitempty"`
}

// Autoship представляет подписку на регулярную доставку
type Autoship struct {
	AutoshipID string         `json:"autoship_id"`
	CustomerID string         `json:"customer_id"`
	Status     string         `json:"status"`
	Frequency  Frequency      `json:"frequency"`
	NextRunAt  *time.Time     `json:"next_run_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Items      []AutoshipItem `json:"items,omitempty"`
}

// Frequency интервал доставки
type Frequency struct {
	Unit  string `json:"unit"`
	Count int    `json:"count"`
}

// AutoshipItem подписанная позиция
type AutoshipItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// InventoryRecord остаток по товару, статус вычисляется при чтении
type InventoryRecord struct {
	ProductID         string `json:"product_id"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Status            string `json:"status"`
}

// UpdateOrderStatusRequest запрос на смену статуса заказа
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid processing shipped delivered cancelled refunded"`
}

// ResumeAutoshipRequest запрос на возобновление подписки
type ResumeAutoshipRequest struct {
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
}

// DueAutoshipsResponse список подписок с подошедшим сроком доставки
type DueAutoshipsResponse struct {
	AsOf        time.Time `json:"as_of"`
	AutoshipIDs []string  `json:"autoship_ids"`
}

// CheckoutOrder — заказ из чекаута, приходит сообщением в kafka
type CheckoutOrder struct {
	OrderID    string              `json:"order_id" validate:"required"`
	CustomerID string              `json:"customer_id" validate:"required"`
	AddressID  string              `json:"address_id,omitempty"`
	AutoshipID string              `json:"autoship_id,omitempty"`
	Source     string              `json:"source,omitempty" validate:"omitempty,oneof=one_time autoship"`
	Items      []CheckoutOrderItem `json:"items" validate:"required,min=1,dive"`
}

// CheckoutOrderItem позиция заказа из чекаута
type CheckoutOrderItem struct {
	ItemID         string `json:"item_id,omitempty"`
	ProductID      string `json:"product_id" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	UnitBasePrice  int    `json:"unit_base_price" validate:"gte=0"`
	UnitFinalPrice int    `json:"unit_final_price" validate:"gte=0"`
}

func OrderItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ItemID:         i.ItemID,
		ProductID:      i.ProductID,
		Quantity:       i.Quantity,
		UnitBasePrice:  i.UnitBasePrice,
		UnitFinalPrice: i.UnitFinalPrice,
		Discount:       i.Discount,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemEntityToJSON(it))
	}

	return Order{
		OrderID:       o.OrderID,
		Status:        string(o.Status),
		Source:        string(o.Source),
		Subtotal:      o.Subtotal,
		DiscountTotal: o.DiscountTotal,
		Total:         o.Total,
		CustomerID:    o.CustomerID,
		AutoshipID:    o.AutoshipID,
		AddressID:     o.AddressID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         items,
	}
}

func AutoshipEntityToJSON(a entities.Autoship) Autoship {
	items := make([]AutoshipItem, 0, len(a.Items))
	for _, it := range a.Items {
		items = append(items, AutoshipItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	return Autoship{
		AutoshipID: a.AutoshipID,
		CustomerID: a.CustomerID,
		Status:     string(a.Status),
		Frequency: Frequency{
			Unit:  string(a.Frequency.Unit),
			Count: a.Frequency.Count,
		},
		NextRunAt: a.NextRunAt,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Items:     items,
	}
}

func InventoryEntityToJSON(r entities.InventoryRecord) InventoryRecord {
	return InventoryRecord{
		ProductID:         r.ProductID,
		Quantity:          r.Quantity,
		LowStockThreshold: r.LowStockThreshold,
		Status:            string(r.StockStatus()),
	}
}

// CheckoutOrderToEntity собирает заказ из сообщения чекаута. Скидка строки
// и денежные итоги выводятся из цен позиций, итог не может разойтись
// с составом заказа.
func CheckoutOrderToEntity(o CheckoutOrder) entities.Order {
	items := make([]entities.OrderItem, 0, len(o.Items))
	subtotal, discountTotal := 0, 0
	for _, it := range o.Items {
		itemID := it.ItemID
		if itemID == "" {
			itemID = uuid.NewString()
		}
		discount := it.Quantity * (it.UnitBasePrice - it.UnitFinalPrice)
		items = append(items, entities.OrderItem{
			ItemID:         itemID,
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitBasePrice:  it.UnitBasePrice,
			UnitFinalPrice: it.UnitFinalPrice,
			Discount:       discount,
		})
		subtotal += it.Quantity * it.UnitBasePrice
		discountTotal += discount
	}

	source := entities.OrderSource(o.Source)
	if source == "" {
		source = entities.OrderSourceOneTime
	}

	return entities.Order{
		OrderID:       o.OrderID,
		Status:        entities.OrderStatusPending,
		Source:        source,
		Subtotal:      subtotal,
		DiscountTotal: discountTotal,
		Total:         subtotal - discountTotal,
		CustomerID:    o.CustomerID,
		AutoshipID:    o.AutoshipID,
		AddressID:     o.AddressID,
		Items:         items,
	}
}
