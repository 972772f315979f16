package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
	"github.com/glebsolovev/fulfillment-service/pkg/trm"

	"github.com/google/uuid"
)

type AutoshipRepo interface {
	GetAutoshipByID(ctx context.Context, autoshipID string) (entities.Autoship, error)
	GetAutoshipStatus(ctx context.Context, autoshipID string) (entities.AutoshipStatus, error)

	// CAS по статусу: статус и next_run_at пишутся одним UPDATE
	UpdateAutoshipStatus(ctx context.Context, autoshipID string, from, to entities.AutoshipStatus, nextRunAt *time.Time, updatedAt time.Time) (bool, error)

	DueAutoships(ctx context.Context, asOf time.Time) ([]string, error)

	// CAS по (status, next_run_at): цикл продвигается ровно один раз
	AdvanceNextRun(ctx context.Context, autoshipID string, observed, next time.Time, updatedAt time.Time) (bool, error)
}

type autoshipService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      AutoshipRepo
	orders    OrderRepo
	ledger    InventoryLedger
	now       func() time.Time
}

func NewAutoshipService(logger *slog.Logger, txManager trm.Manager, repo AutoshipRepo, orders OrderRepo, ledger InventoryLedger) *autoshipService {
	return &autoshipService{
		logger:    logger.With(slog.String("service", "autoship")),
		txManager: txManager,
		repo:      repo,
		orders:    orders,
		ledger:    ledger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *autoshipService) GetAutoshipByID(ctx context.Context, autoshipID string) (entities.Autoship, error) {
	return s.repo.GetAutoshipByID(ctx, autoshipID)
}

// Pause останавливает подписку: статус paused, расписание сбрасывается.
func (s *autoshipService) Pause(ctx context.Context, autoshipID string) (entities.Autoship, error) {
	return s.changeStatus(ctx, autoshipID,
		entities.AutoshipStatusActive, entities.AutoshipStatusPaused,
		func(entities.Autoship) *time.Time { return nil })
}

// Resume снова активирует подписку. Если explicitNextRunAt не задан,
// следующая доставка назначается на текущее время плюс интервал подписки.
func (s *autoshipService) Resume(ctx context.Context, autoshipID string, explicitNextRunAt *time.Time) (entities.Autoship, error) {
	return s.changeStatus(ctx, autoshipID,
		entities.AutoshipStatusPaused, entities.AutoshipStatusActive,
		func(a entities.Autoship) *time.Time {
			if explicitNextRunAt != nil {
				t := explicitNextRunAt.UTC()
				return &t
			}
			t := a.Frequency.Next(s.now())
			return &t
		})
}

// Cancel — терминальная операция: любая последующая попытка изменить
// подписку вернёт ErrInvalidState.
func (s *autoshipService) Cancel(ctx context.Context, autoshipID string) (entities.Autoship, error) {
	var updated entities.Autoship
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		autoship, err := s.repo.GetAutoshipByID(ctx, autoshipID)
		if err != nil {
			return err
		}
		if !autoship.Status.CanTransitionTo(entities.AutoshipStatusCancelled) {
			return fmt.Errorf("%s -> cancelled: %w", autoship.Status, entities.ErrInvalidState)
		}

		now := s.now()
		ok, err := s.repo.UpdateAutoshipStatus(ctx, autoshipID, autoship.Status, entities.AutoshipStatusCancelled, nil, now)
		if err != nil {
			return err
		}
		if !ok {
			if _, err := s.repo.GetAutoshipStatus(ctx, autoshipID); err != nil {
				return err
			}
			return entities.ErrInvalidState
		}

		autoship.Status = entities.AutoshipStatusCancelled
		autoship.NextRunAt = nil
		autoship.UpdatedAt = now
		updated = autoship
		return nil
	})
	if err != nil {
		return entities.Autoship{}, err
	}

	s.logger.Debug("autoship cancelled", slog.String("autoship_id", autoshipID))
	return updated, nil
}

func (s *autoshipService) changeStatus(
	ctx context.Context,
	autoshipID string,
	from, to entities.AutoshipStatus,
	nextRun func(entities.Autoship) *time.Time,
) (entities.Autoship, error) {
	var updated entities.Autoship
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		autoship, err := s.repo.GetAutoshipByID(ctx, autoshipID)
		if err != nil {
			return err
		}
		if autoship.Status != from {
			return fmt.Errorf("autoship is %s, not %s: %w", autoship.Status, from, entities.ErrInvalidState)
		}

		now := s.now()
		next := nextRun(autoship)
		ok, err := s.repo.UpdateAutoshipStatus(ctx, autoshipID, from, to, next, now)
		if err != nil {
			return err
		}
		if !ok {
			// конкурентный запрос успел сменить статус первым
			if _, err := s.repo.GetAutoshipStatus(ctx, autoshipID); err != nil {
				return err
			}
			return entities.ErrInvalidState
		}

		autoship.Status = to
		autoship.NextRunAt = next
		autoship.UpdatedAt = now
		updated = autoship
		return nil
	})
	if err != nil {
		return entities.Autoship{}, err
	}

	s.logger.Debug("autoship status changed",
		slog.String("autoship_id", autoshipID), slog.String("status", string(to)))
	return updated, nil
}

func (s *autoshipService) DueAutoships(ctx context.Context, asOf time.Time) ([]string, error) {
	return s.repo.DueAutoships(ctx, asOf)
}

// RunDue обрабатывает все подписки, у которых подошёл срок доставки.
// Для каждой подписки создание заказа и сдвиг расписания — одна транзакция:
// цикл не может ни сработать дважды, ни потеряться. Возвращает число
// созданных заказов.
func (s *autoshipService) RunDue(ctx context.Context, asOf time.Time) (int, error) {
	ids, err := s.repo.DueAutoships(ctx, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to list due autoships: %w", err)
	}

	created := 0
	for _, id := range ids {
		ok, err := s.RunOne(ctx, id, asOf)
		if err != nil {
			// одна сломанная подписка не должна останавливать остальные
			s.logger.Error("failed to process due autoship",
				slog.String("autoship_id", id), slog.Any("error", err))
			continue
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// RunOne обрабатывает один подошедший цикл подписки. Возвращает true,
// если заказ был создан этим вызовом.
func (s *autoshipService) RunOne(ctx context.Context, autoshipID string, asOf time.Time) (bool, error) {
	var created bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		autoship, err := s.repo.GetAutoshipByID(ctx, autoshipID)
		if err != nil {
			return err
		}
		// между выборкой и обработкой подписку могли приостановить или
		// обработать с другого инстанса
		if autoship.Status != entities.AutoshipStatusActive || autoship.NextRunAt == nil || autoship.NextRunAt.After(asOf) {
			return nil
		}

		now := s.now()
		due := *autoship.NextRunAt
		next := autoship.Frequency.Next(due)

		ok, err := s.repo.AdvanceNextRun(ctx, autoshipID, due, next, now)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		order := spawnOrder(autoship, now)
		if _, err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save spawned order: %w", err)
		}
		if err := s.orders.SaveOrderItems(ctx, order.OrderID, order.Items); err != nil {
			return fmt.Errorf("failed to save spawned order items: %w", err)
		}
		for _, item := range order.Items {
			if err := s.ledger.Reserve(ctx, item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("failed to reserve stock: %w", err)
			}
		}

		created = true
		s.logger.Info("autoship delivery scheduled",
			slog.String("autoship_id", autoshipID),
			slog.String("order_id", order.OrderID),
			slog.Time("next_run_at", next))
		return nil
	})
	return created, err
}

// spawnOrder собирает pending-заказ из подписанных позиций по ценам,
// зафиксированным при оформлении подписки.
func spawnOrder(autoship entities.Autoship, now time.Time) entities.Order {
	orderID := uuid.NewString()

	items := make([]entities.OrderItem, 0, len(autoship.Items))
	subtotal := 0
	for _, it := range autoship.Items {
		items = append(items, entities.OrderItem{
			ItemID:         uuid.NewString(),
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			UnitBasePrice:  it.UnitPrice,
			UnitFinalPrice: it.UnitPrice,
		})
		subtotal += it.Quantity * it.UnitPrice
	}

	return entities.Order{
		OrderID:    orderID,
		Status:     entities.OrderStatusPending,
		Source:     entities.OrderSourceAutoship,
		Subtotal:   subtotal,
		Total:      subtotal,
		CustomerID: autoship.CustomerID,
		AutoshipID: autoship.AutoshipID,
		CreatedAt:  now,
		UpdatedAt:  now,
		Items:      items,
	}
}
