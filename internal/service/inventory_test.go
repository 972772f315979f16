package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
	"github.com/glebsolovev/fulfillment-service/internal/service"
	mocks "github.com/glebsolovev/fulfillment-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_Reserve(t *testing.T) {
	type MockBehavior func(repo *mocks.MockInventoryRepo)

	testCases := []struct {
		name         string
		quantity     int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:     "OK",
			quantity: 3,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				repo.EXPECT().Reserve(mock.Anything, "p1", 3).Return(nil).Once()
			},
		},
		{
			name:     "insufficient stock",
			quantity: 3,
			mockBehavior: func(repo *mocks.MockInventoryRepo) {
				repo.EXPECT().Reserve(mock.Anything, "p1", 3).
					Return(entities.ErrInsufficientStock).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:         "zero quantity rejected before the repo",
			quantity:     0,
			mockBehavior: func(*mocks.MockInventoryRepo) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:         "negative quantity rejected",
			quantity:     -2,
			mockBehavior: func(*mocks.MockInventoryRepo) {},
			wantErr:      entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockInventoryRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			tc.mockBehavior(repo)

			svc := service.NewInventoryService(logger, repo)

			err := svc.Reserve(context.Background(), "p1", tc.quantity)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInventoryService_Release(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().Release(mock.Anything, "p1", 2).Return(nil).Once()

	svc := service.NewInventoryService(logger, repo)

	assert.NoError(t, svc.Release(context.Background(), "p1", 2))
	assert.ErrorIs(t, svc.Release(context.Background(), "p1", 0), entities.ErrInvalidOrder)
}

func TestInventoryService_GetRecord(t *testing.T) {
	repo := mocks.NewMockInventoryRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	record := entities.InventoryRecord{ProductID: "p1", Quantity: 3, LowStockThreshold: 5}
	repo.EXPECT().GetRecord(mock.Anything, "p1").Return(record, nil).Once()

	svc := service.NewInventoryService(logger, repo)

	got, err := svc.GetRecord(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, record, got)
	assert.Equal(t, entities.StockStatusLowStock, got.StockStatus())
}
