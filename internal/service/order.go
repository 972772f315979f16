package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
	"github.com/glebsolovev/fulfillment-service/pkg/trm"
	"github.com/glebsolovev/fulfillment-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderStatus(ctx context.Context, orderID string) (entities.OrderStatus, error)

	// CAS: запись проходит только если статус не изменился с момента чтения
	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, updatedAt time.Time) (bool, error)

	// Идемпотентны, используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) (bool, error)
	SaveOrderItems(ctx context.Context, orderID string, items []entities.OrderItem) error
}

// InventoryLedger — операции склада, вызываемые внутри транзакции перехода.
type InventoryLedger interface {
	Reserve(ctx context.Context, productID string, quantity int) error
	Release(ctx context.Context, productID string, quantity int) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	ledger    InventoryLedger
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, ledger InventoryLedger, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		ledger:    ledger,
		cache:     cache,
	}
}

// Transition переводит заказ в target по таблице переходов. Смена статуса и
// возврат остатков (для cancelled/refunded) — одна транзакция: либо всё,
// либо ничего.
func (s *orderService) Transition(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error) {
	if !target.Valid() {
		return entities.Order{}, fmt.Errorf("unknown status %q: %w", target, entities.ErrInvalidTransition)
	}

	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(target) {
			return fmt.Errorf("%s -> %s: %w", order.Status, target, entities.ErrInvalidTransition)
		}

		now := time.Now().UTC()
		ok, err := s.repo.UpdateOrderStatus(ctx, orderID, order.Status, target, now)
		if err != nil {
			return err
		}
		if !ok {
			// статус сменили между чтением и записью
			if _, err := s.repo.GetOrderStatus(ctx, orderID); err != nil {
				return err
			}
			return entities.ErrConcurrentModification
		}

		if target.ReleasesStock() {
			for _, item := range order.Items {
				err := s.ledger.Release(ctx, item.ProductID, item.Quantity)
				if errors.Is(err, entities.ErrProductNotFound) {
					// товар успели удалить из каталога, заказ всё равно отменяем
					s.logger.Warn("product missing on release",
						slog.String("order_id", orderID),
						slog.String("product_id", item.ProductID))
					continue
				}
				if err != nil {
					return fmt.Errorf("failed to release stock: %w", err)
				}
			}
		}

		order.Status = target
		order.UpdatedAt = now
		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(orderID)
	s.logger.Debug("order transitioned",
		slog.String("order_id", orderID), slog.String("status", string(target)))
	return updated, nil
}

// CreateOrder сохраняет новый заказ из чекаута и резервирует остатки по
// каждой позиции в той же транзакции. Повторная доставка того же заказа
// ничего не меняет и ничего не резервирует второй раз.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) error {
	if order.Status == "" {
		order.Status = entities.OrderStatusPending
	}
	if order.Source == "" {
		order.Source = entities.OrderSourceOneTime
	}
	now := time.Now().UTC()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	if err := order.Validate(); err != nil {
		return err
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			inserted, err := s.repo.SaveOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if !inserted {
				s.logger.Debug("order already exists", slog.String("order_id", order.OrderID))
				return nil
			}
			if err := s.repo.SaveOrderItems(ctx, order.OrderID, order.Items); err != nil {
				return fmt.Errorf("failed to save order items: %w", err)
			}
			for _, item := range order.Items {
				if err := s.ledger.Reserve(ctx, item.ProductID, item.Quantity); err != nil {
					return fmt.Errorf("failed to reserve stock: %w", err)
				}
			}

			s.logger.Debug("order created", slog.String("order_id", order.OrderID))
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	return utils.Retry(ctx, cfg, fn,
		entities.ErrInsufficientStock, entities.ErrProductNotFound)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, entities.ErrInvalidOrder
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(ctx, cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", orderID), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderID, data)
	return order, nil
}
