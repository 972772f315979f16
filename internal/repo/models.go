package repo

import (
	"database/sql"
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
)

type Order struct {
	OrderID       string         `db:"order_id"`
	Status        string         `db:"status"`
	Source        string         `db:"source"`
	Subtotal      int            `db:"subtotal"`
	DiscountTotal int            `db:"discount_total"`
	Total         int            `db:"total"`
	CustomerID    string         `db:"customer_id"`
	AutoshipID    sql.NullString `db:"autoship_id"`
	AddressID     sql.NullString `db:"address_id"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type OrderItem struct {
	ItemID         string        `db:"item_id"`
	OrderID        string        `db:"order_id"`
	ProductID      string        `db:"product_id"`
	Quantity       int           `db:"quantity"`
	UnitBasePrice  int           `db:"unit_base_price"`
	UnitFinalPrice int           `db:"unit_final_price"`
	Discount       sql.NullInt32 `db:"discount"`
}

type Autoship struct {
	AutoshipID     string       `db:"autoship_id"`
	CustomerID     string       `db:"customer_id"`
	Status         string       `db:"status"`
	FrequencyUnit  string       `db:"frequency_unit"`
	FrequencyCount int          `db:"frequency_count"`
	NextRunAt      sql.NullTime `db:"next_run_at"`
	CreatedAt      time.Time    `db:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at"`
}

type AutoshipItem struct {
	AutoshipID string `db:"autoship_id"`
	ProductID  string `db:"product_id"`
	Quantity   int    `db:"quantity"`
	UnitPrice  int    `db:"unit_price"`
}

type InventoryRecord struct {
	ProductID         string `db:"product_id"`
	Quantity          int    `db:"quantity"`
	LowStockThreshold int    `db:"low_stock_threshold"`
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ItemID:         i.ItemID,
		ProductID:      i.ProductID,
		Quantity:       i.Quantity,
		UnitBasePrice:  i.UnitBasePrice,
		UnitFinalPrice: i.UnitFinalPrice,
		Discount:       nullInt32ToInt(i.Discount),
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		OrderID:       o.OrderID,
		Status:        entities.OrderStatus(o.Status),
		Source:        entities.OrderSource(o.Source),
		Subtotal:      o.Subtotal,
		DiscountTotal: o.DiscountTotal,
		Total:         o.Total,
		CustomerID:    o.CustomerID,
		AutoshipID:    nullStringToString(o.AutoshipID),
		AddressID:     nullStringToString(o.AddressID),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func AutoshipToEntity(a Autoship, items []AutoshipItem) entities.Autoship {
	autoship := entities.Autoship{
		AutoshipID: a.AutoshipID,
		CustomerID: a.CustomerID,
		Status:     entities.AutoshipStatus(a.Status),
		Frequency: entities.Frequency{
			Unit:  entities.FrequencyUnit(a.FrequencyUnit),
			Count: a.FrequencyCount,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if a.NextRunAt.Valid {
		t := a.NextRunAt.Time
		autoship.NextRunAt = &t
	}

	if len(items) > 0 {
		autoship.Items = make([]entities.AutoshipItem, 0, len(items))
		for _, it := range items {
			autoship.Items = append(autoship.Items, entities.AutoshipItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
	}

	return autoship
}

func InventoryToEntity(r InventoryRecord) entities.InventoryRecord {
	return entities.InventoryRecord{
		ProductID:         r.ProductID,
		Quantity:          r.Quantity,
		LowStockThreshold: r.LowStockThreshold,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt32ToInt(ni sql.NullInt32) int {
	if ni.Valid {
		return int(ni.Int32)
	}
	return 0
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt32(i int) sql.NullInt32 {
	if i == 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(i), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
