package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
	"github.com/glebsolovev/fulfillment-service/internal/service"
	mocks "github.com/glebsolovev/fulfillment-service/internal/service/mocks"
	txMocks "github.com/glebsolovev/fulfillment-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Transition(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, ledger *mocks.MockInventoryLedger, cache *mocks.MockCache)

	dbError := errors.New("db error")

	paidOrder := entities.Order{
		OrderID: "o1",
		Status:  entities.OrderStatusPaid,
		Items: []entities.OrderItem{
			{ItemID: "i1", ProductID: "p1", Quantity: 2, UnitBasePrice: 500, UnitFinalPrice: 500},
			{ItemID: "i2", ProductID: "p2", Quantity: 1, UnitBasePrice: 300, UnitFinalPrice: 300},
		},
	}

	testCases := []struct {
		name         string
		target       entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.OrderStatus
	}{
		{
			name:   "paid to processing",
			target: entities.OrderStatusProcessing,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockInventoryLedger, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paidOrder, nil).Once()
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.OrderStatusPaid, entities.OrderStatusProcessing, mock.Anything).
					Return(true, nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
			},
			wantStatus: entities.OrderStatusProcessing,
		},
		{
			name:   "refund releases every reserved item",
			target: entities.OrderStatusRefunded,
			mockBehavior: func(repo *mocks.MockOrderRepo, ledger *mocks.MockInventoryLedger, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paidOrder, nil).Once()
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.OrderStatusPaid, entities.OrderStatusRefunded, mock.Anything).
					Return(true, nil).Once()
				ledger.EXPECT().Release(mock.Anything, "p1", 2).Return(nil).Once()
				ledger.EXPECT().Release(mock.Anything, "p2", 1).Return(nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
			},
			wantStatus: entities.OrderStatusRefunded,
		},
		{
			name:   "missing product does not block the refund",
			target: entities.OrderStatusRefunded,
			mockBehavior: func(repo *mocks.MockOrderRepo, ledger *mocks.MockInventoryLedger, cache *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paidOrder, nil).Once()
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.OrderStatusPaid, entities.OrderStatusRefunded, mock.Anything).
					Return(true, nil).Once()
				ledger.EXPECT().Release(mock.Anything, "p1", 2).Return(entities.ErrProductNotFound).Once()
				ledger.EXPECT().Release(mock.Anything, "p2", 1).Return(nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
			},
			wantStatus: entities.OrderStatusRefunded,
		},
		{
			name:   "release failure rolls the transition back",
			target: entities.OrderStatusRefunded,
			mockBehavior: func(repo *mocks.MockOrderRepo, ledger *mocks.MockInventoryLedger, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paidOrder, nil).Once()
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.OrderStatusPaid, entities.OrderStatusRefunded, mock.Anything).
					Return(true, nil).Once()
				ledger.EXPECT().Release(mock.Anything, "p1", 2).Return(dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name:   "order not found",
			target: entities.OrderStatusProcessing,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockInventoryLedger, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "transition not in the table",
			target: entities.OrderStatusShipped,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockInventoryLedger, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paidOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:   "current status as target",
			target: entities.OrderStatusPaid,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockInventoryLedger, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paidOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:         "unknown status",
			target:       entities.OrderStatus("shipped_back"),
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockInventoryLedger, *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:   "status changed concurrently",
			target: entities.OrderStatusProcessing,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockInventoryLedger, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paidOrder, nil).Once()
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.OrderStatusPaid, entities.OrderStatusProcessing, mock.Anything).
					Return(false, nil).Once()
				repo.EXPECT().GetOrderStatus(mock.Anything, "o1").Return(entities.OrderStatusRefunded, nil).Once()
			},
			wantErr: entities.ErrConcurrentModification,
		},
		{
			name:   "order deleted between read and write",
			target: entities.OrderStatusProcessing,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockInventoryLedger, _ *mocks.MockCache) {
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(paidOrder, nil).Once()
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "o1", entities.OrderStatusPaid, entities.OrderStatusProcessing, mock.Anything).
					Return(false, nil).Once()
				repo.EXPECT().GetOrderStatus(mock.Anything, "o1").Return("", entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			ledger := mocks.NewMockInventoryLedger(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(repo, ledger, cache)

			svc := service.NewOrderService(logger, tx, repo, ledger, cache)

			got, err := svc.Transition(context.Background(), "o1", tc.target)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.False(t, got.UpdatedAt.IsZero())
		})
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, ledger *mocks.MockInventoryLedger)

	validOrder := entities.Order{
		OrderID:  "o1",
		Subtotal: 1300,
		Total:    1300,
		Items: []entities.OrderItem{
			{ItemID: "i1", ProductID: "p1", Quantity: 2, UnitBasePrice: 500, UnitFinalPrice: 500},
			{ItemID: "i2", ProductID: "p2", Quantity: 1, UnitBasePrice: 300, UnitFinalPrice: 300},
		},
	}

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo, ledger *mocks.MockInventoryLedger) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(true, nil).Once()
				repo.EXPECT().SaveOrderItems(mock.Anything, "o1", validOrder.Items).Return(nil).Once()
				ledger.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
				ledger.EXPECT().Reserve(mock.Anything, "p2", 1).Return(nil).Once()
			},
		},
		{
			name:  "duplicate delivery reserves nothing",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo, _ *mocks.MockInventoryLedger) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(false, nil).Once()
			},
		},
		{
			name:  "insufficient stock is not retried",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo, ledger *mocks.MockInventoryLedger) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(true, nil).Once()
				repo.EXPECT().SaveOrderItems(mock.Anything, "o1", validOrder.Items).Return(nil).Once()
				ledger.EXPECT().Reserve(mock.Anything, "p1", 2).Return(entities.ErrInsufficientStock).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name: "money invariant violated",
			order: entities.Order{
				OrderID:  "o1",
				Subtotal: 1300,
				Total:    1200,
				Items:    validOrder.Items,
			},
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockInventoryLedger) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:  "retry works (first attempt fails, second succeeds)",
			order: validOrder,
			mockBehavior: func(repo *mocks.MockOrderRepo, ledger *mocks.MockInventoryLedger) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(false, errors.New("temporary error"))
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(true, nil)
				repo.EXPECT().SaveOrderItems(mock.Anything, "o1", validOrder.Items).Return(nil).Once()
				ledger.EXPECT().Reserve(mock.Anything, "p1", 2).Return(nil).Once()
				ledger.EXPECT().Reserve(mock.Anything, "p2", 1).Return(nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			ledger := mocks.NewMockInventoryLedger(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(repo, ledger)

			svc := service.NewOrderService(logger, tx, repo, ledger, cache)

			err := svc.CreateOrder(context.Background(), tc.order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{OrderID: "o1", Status: entities.OrderStatusPaid}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "o1",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "o1",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "o1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo",
			orderID: "not-exist",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("not-exist").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "o1",
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").
					Return(entities.Order{}, errors.New("some error")).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, "o1").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			ledger := mocks.NewMockInventoryLedger(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(logger, tx, repo, ledger, cache)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
