package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
)

type InventoryRepo interface {
	GetRecord(ctx context.Context, productID string) (entities.InventoryRecord, error)
	Reserve(ctx context.Context, productID string, quantity int) error
	Release(ctx context.Context, productID string, quantity int) error
}

// inventoryService — единственный владелец складских остатков.
// Собственных транзакций не открывает: участвует в транзакции вызывающего
// через контекст.
type inventoryService struct {
	logger *slog.Logger
	repo   InventoryRepo
}

func NewInventoryService(logger *slog.Logger, repo InventoryRepo) *inventoryService {
	return &inventoryService{
		logger: logger.With(slog.String("service", "inventory")),
		repo:   repo,
	}
}

func (s *inventoryService) GetRecord(ctx context.Context, productID string) (entities.InventoryRecord, error) {
	return s.repo.GetRecord(ctx, productID)
}

func (s *inventoryService) Reserve(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("reserve quantity must be positive: %w", entities.ErrInvalidOrder)
	}
	if err := s.repo.Reserve(ctx, productID, quantity); err != nil {
		return err
	}
	s.logger.Debug("stock reserved", slog.String("product_id", productID), slog.Int("quantity", quantity))
	return nil
}

func (s *inventoryService) Release(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("release quantity must be positive: %w", entities.ErrInvalidOrder)
	}
	if err := s.repo.Release(ctx, productID, quantity); err != nil {
		return err
	}
	s.logger.Debug("stock released", slog.String("product_id", productID), slog.Int("quantity", quantity))
	return nil
}
