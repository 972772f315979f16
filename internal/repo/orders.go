package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type orderRepo struct {
	querier
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{newQuerier(db)}
}

func (r *orderRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(
		"order_id", "status", "source", "subtotal", "discount_total", "total",
		"customer_id", "autoship_id", "address_id", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(
		"item_id", "order_id", "product_id", "quantity",
		"unit_base_price", "unit_final_price", "discount").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("item_id").
		MustSql()

	var items []OrderItem
	err = r.selectContext(ctx, &items, query, args...)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *orderRepo) GetOrderStatus(ctx context.Context, orderID string) (entities.OrderStatus, error) {
	query, args := r.qb.Select("status").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var status string
	err := r.getContext(ctx, &status, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrOrderNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get order status: %w", err)
	}
	return entities.OrderStatus(status), nil
}

// UpdateOrderStatus — compare-and-set: статус меняется только если в момент
// записи он всё ещё равен from. Возвращает false, если строка не совпала.
func (r *orderRepo) UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, updatedAt time.Time) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"order_id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected == 1, nil
}

// Операция идемпотентна: повторная доставка того же заказа игнорируется
// за счёт ON CONFLICT DO NOTHING.
func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) (bool, error) {
	query, args := r.qb.Insert("orders").
		Columns(
			"order_id", "status", "source", "subtotal", "discount_total", "total",
			"customer_id", "autoship_id", "address_id", "created_at", "updated_at",
		).
		Values(
			o.OrderID, string(o.Status), string(o.Source), o.Subtotal, o.DiscountTotal, o.Total,
			o.CustomerID, nullString(o.AutoshipID), nullString(o.AddressID), o.CreatedAt, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to save order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected == 1, nil
}

func (r *orderRepo) SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("item_id", "order_id", "product_id", "quantity",
			"unit_base_price", "unit_final_price", "discount").
		Suffix("ON CONFLICT (item_id) DO NOTHING")

	for _, it := range items {
		q = q.Values(
			it.ItemID,
			orderID,
			it.ProductID,
			it.Quantity,
			it.UnitBasePrice,
			it.UnitFinalPrice,
			nullInt32(it.Discount),
		)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}
