package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/glebsolovev/fulfillment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type inventoryRepo struct {
	querier
}

func NewInventoryRepo(db *sqlx.DB) *inventoryRepo {
	return &inventoryRepo{newQuerier(db)}
}

func (r *inventoryRepo) GetRecord(ctx context.Context, productID string) (entities.InventoryRecord, error) {
	query, args := r.qb.Select("product_id", "quantity", "low_stock_threshold").
		From("inventory").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var record InventoryRecord
	err := r.getContext(ctx, &record, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.InventoryRecord{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.InventoryRecord{}, fmt.Errorf("failed to get inventory record: %w", err)
	}
	return InventoryToEntity(record), nil
}

// Reserve списывает остаток. Условие quantity >= ? в самом UPDATE:
// остаток не может уйти в минус даже под конкурентными резервами.
func (r *inventoryRepo) Reserve(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("inventory").
		Set("quantity", sq.Expr("quantity - ?", quantity)).
		Where(sq.Eq{"product_id": productID}).
		Where(sq.GtOrEq{"quantity": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 1 {
		return nil
	}

	if _, err := r.GetRecord(ctx, productID); err != nil {
		return err
	}
	return entities.ErrInsufficientStock
}

func (r *inventoryRepo) Release(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("inventory").
		Set("quantity", sq.Expr("quantity + ?", quantity)).
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}
