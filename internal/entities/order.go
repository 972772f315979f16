package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

type OrderSource string

const (
	OrderSourceOneTime  OrderSource = "one_time"
	OrderSourceAutoship OrderSource = "autoship"
)

// Единственная таблица разрешённых переходов, после инициализации только чтение.
// Обработчики не держат свою копию.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusRefunded},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusRefunded},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo проверяет, что переход s -> target разрешён.
// Переход в текущий статус запрещён, как и любой переход из терминального.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Terminal сообщает, что из статуса нет ни одного разрешённого перехода.
func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

// ReleasesStock сообщает, что переход в этот статус возвращает
// зарезервированный товар обратно на склад.
func (s OrderStatus) ReleasesStock() bool {
	return s == OrderStatusCancelled || s == OrderStatusRefunded
}

type OrderItem struct {
	ItemID         string
	ProductID      string
	Quantity       int
	UnitBasePrice  int
	UnitFinalPrice int
	Discount       int
}

type Order struct {
	OrderID       string
	Status        OrderStatus
	Source        OrderSource
	Subtotal      int
	DiscountTotal int
	Total         int
	CustomerID    string
	AutoshipID    string
	AddressID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItem
}

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrder           = errors.New("invalid order")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrConcurrentModification = errors.New("order modified concurrently")
)

// Validate проверяет денежный инвариант и состав заказа перед записью.
func (o *Order) Validate() error {
	if o.OrderID == "" || len(o.Items) == 0 {
		return ErrInvalidOrder
	}
	if o.Subtotal < 0 || o.DiscountTotal < 0 || o.Total < 0 {
		return ErrInvalidOrder
	}
	if o.Total != o.Subtotal-o.DiscountTotal {
		return ErrInvalidOrder
	}
	for _, it := range o.Items {
		if it.Quantity <= 0 || it.UnitFinalPrice > it.UnitBasePrice {
			return ErrInvalidOrder
		}
	}
	return nil
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
}
