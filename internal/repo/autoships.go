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

type autoshipRepo struct {
	querier
}

func NewAutoshipRepo(db *sqlx.DB) *autoshipRepo {
	return &autoshipRepo{newQuerier(db)}
}

func (r *autoshipRepo) GetAutoshipByID(ctx context.Context, autoshipID string) (entities.Autoship, error) {
	query, args := r.qb.Select(
		"autoship_id", "customer_id", "status", "frequency_unit",
		"frequency_count", "next_run_at", "created_at", "updated_at").
		From("autoships").
		Where(sq.Eq{"autoship_id": autoshipID}).
		MustSql()

	var autoship Autoship
	err := r.getContext(ctx, &autoship, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Autoship{}, entities.ErrAutoshipNotFound
	}
	if err != nil {
		return entities.Autoship{}, fmt.Errorf("failed to get autoship: %w", err)
	}

	query, args = r.qb.Select("autoship_id", "product_id", "quantity", "unit_price").
		From("autoship_items").
		Where(sq.Eq{"autoship_id": autoshipID}).
		OrderBy("product_id").
		MustSql()

	var items []AutoshipItem
	err = r.selectContext(ctx, &items, query, args...)
	if err != nil {
		return entities.Autoship{}, fmt.Errorf("failed to get autoship items: %w", err)
	}

	return AutoshipToEntity(autoship, items), nil
}

func (r *autoshipRepo) GetAutoshipStatus(ctx context.Context, autoshipID string) (entities.AutoshipStatus, error) {
	query, args := r.qb.Select("status").
		From("autoships").
		Where(sq.Eq{"autoship_id": autoshipID}).
		MustSql()

	var status string
	err := r.getContext(ctx, &status, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrAutoshipNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get autoship status: %w", err)
	}
	return entities.AutoshipStatus(status), nil
}

// UpdateAutoshipStatus — compare-and-set по статусу. Статус и next_run_at
// всегда пишутся вместе, чтобы инвариант "next_run_at не NULL <=> active"
// не нарушался даже на промежуточных состояниях.
func (r *autoshipRepo) UpdateAutoshipStatus(ctx context.Context, autoshipID string, from, to entities.AutoshipStatus, nextRunAt *time.Time, updatedAt time.Time) (bool, error) {
	query, args := r.qb.Update("autoships").
		Set("status", string(to)).
		Set("next_run_at", nullTime(nextRunAt)).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"autoship_id": autoshipID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update autoship status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected == 1, nil
}

func (r *autoshipRepo) DueAutoships(ctx context.Context, asOf time.Time) ([]string, error) {
	query, args := r.qb.Select("autoship_id").
		From("autoships").
		Where(sq.Eq{"status": string(entities.AutoshipStatusActive)}).
		Where(sq.LtOrEq{"next_run_at": asOf}).
		OrderBy("next_run_at").
		MustSql()

	var ids []string
	err := r.selectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select due autoships: %w", err)
	}
	return ids, nil
}

// AdvanceNextRun сдвигает расписание на следующий цикл. CAS и по статусу,
// и по наблюдавшемуся next_run_at: два конкурентных срабатывания триггера
// не продвинут один и тот же цикл дважды.
func (r *autoshipRepo) AdvanceNextRun(ctx context.Context, autoshipID string, observed, next time.Time, updatedAt time.Time) (bool, error) {
	query, args := r.qb.Update("autoships").
		Set("next_run_at", next).
		Set("updated_at", updatedAt).
		Where(sq.Eq{
			"autoship_id": autoshipID,
			"status":      string(entities.AutoshipStatusActive),
			"next_run_at": observed,
		}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to advance next run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected == 1, nil
}
