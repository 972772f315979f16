package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
	"github.com/glebsolovev/fulfillment-service/internal/handler"
	mocks "github.com/glebsolovev/fulfillment-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mocks.MockOrderService, *mocks.MockAutoshipService, *mocks.MockInventoryService, chi.Router) {
	orders := mocks.NewMockOrderService(t)
	autoships := mocks.NewMockAutoshipService(t)
	inventory := mocks.NewMockInventoryService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orders, autoships, inventory)

	r := chi.NewRouter()
	h.Init(r)
	return orders, autoships, inventory, r
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{OrderID: "o1", Status: entities.OrderStatusPaid}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "o1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "o1").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"o1"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "o1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "o1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, _, _, r := newTestRouter(t)
			tc.mockBehavior(orders)

			req := httptest.NewRequest(http.MethodGet, "/order/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateOrderStatus(t *testing.T) {
	processedOrder := entities.Order{OrderID: "o1", Status: entities.OrderStatusProcessing}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Transition(mock.Anything, "o1", entities.OrderStatusProcessing).
					Return(processedOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"processing"`,
		},
		{
			name: "order not found",
			body: `{"status":"processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Transition(mock.Anything, "o1", entities.OrderStatusProcessing).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "transition rejected",
			body: `{"status":"refunded"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Transition(mock.Anything, "o1", entities.OrderStatusRefunded).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"status transition is not allowed"`,
		},
		{
			name: "concurrent modification",
			body: `{"status":"processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Transition(mock.Anything, "o1", entities.OrderStatusProcessing).
					Return(entities.Order{}, entities.ErrConcurrentModification).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"order was modified concurrently"`,
		},
		{
			name:         "unknown status fails validation",
			body:         `{"status":"teleported"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "broken body",
			body:         `{"status":`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"status":"processing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Transition(mock.Anything, "o1", entities.OrderStatusProcessing).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders, _, _, r := newTestRouter(t)
			tc.mockBehavior(orders)

			req := httptest.NewRequest(http.MethodPost, "/order/o1/status", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_AutoshipOperations(t *testing.T) {
	nextRunAt := time.Date(2025, time.July, 1, 8, 0, 0, 0, time.UTC)
	pausedAutoship := entities.Autoship{AutoshipID: "a1", Status: entities.AutoshipStatusPaused}
	activeAutoship := entities.Autoship{AutoshipID: "a1", Status: entities.AutoshipStatusActive, NextRunAt: &nextRunAt}
	cancelledAutoship := entities.Autoship{AutoshipID: "a1", Status: entities.AutoshipStatusCancelled}

	testCases := []struct {
		name         string
		path         string
		body         string
		mockBehavior func(svc *mocks.MockAutoshipService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "pause",
			path: "/autoship/a1/pause",
			mockBehavior: func(svc *mocks.MockAutoshipService) {
				svc.EXPECT().Pause(mock.Anything, "a1").Return(pausedAutoship, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"paused"`,
		},
		{
			name: "pause of an inactive autoship",
			path: "/autoship/a1/pause",
			mockBehavior: func(svc *mocks.MockAutoshipService) {
				svc.EXPECT().Pause(mock.Anything, "a1").
					Return(entities.Autoship{}, entities.ErrInvalidState).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"autoship state does not allow this operation"`,
		},
		{
			name: "resume without body",
			path: "/autoship/a1/resume",
			mockBehavior: func(svc *mocks.MockAutoshipService) {
				svc.EXPECT().Resume(mock.Anything, "a1", (*time.Time)(nil)).
					Return(activeAutoship, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"next_run_at":"2025-07-01T08:00:00Z"`,
		},
		{
			name: "resume with explicit next run",
			path: "/autoship/a1/resume",
			body: `{"next_run_at":"2025-07-01T08:00:00Z"}`,
			mockBehavior: func(svc *mocks.MockAutoshipService) {
				svc.EXPECT().Resume(mock.Anything, "a1", &nextRunAt).
					Return(activeAutoship, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"active"`,
		},
		{
			name: "cancel",
			path: "/autoship/a1/cancel",
			mockBehavior: func(svc *mocks.MockAutoshipService) {
				svc.EXPECT().Cancel(mock.Anything, "a1").Return(cancelledAutoship, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelled"`,
		},
		{
			name: "cancel of a missing autoship",
			path: "/autoship/a1/cancel",
			mockBehavior: func(svc *mocks.MockAutoshipService) {
				svc.EXPECT().Cancel(mock.Anything, "a1").
					Return(entities.Autoship{}, entities.ErrAutoshipNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"autoship not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, autoships, _, r := newTestRouter(t)
			tc.mockBehavior(autoships)

			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req := httptest.NewRequest(http.MethodPost, tc.path, body)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			data, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(data), tc.wantBody)
		})
	}
}

func TestHTTPHandler_DueAutoships(t *testing.T) {
	asOf := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("with explicit as_of", func(t *testing.T) {
		_, autoships, _, r := newTestRouter(t)
		autoships.EXPECT().DueAutoships(mock.Anything, asOf).
			Return([]string{"a1", "a2"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/autoships/due?as_of=2025-06-01T12:00:00Z", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp handler.DueAutoshipsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, asOf, resp.AsOf)
		assert.Equal(t, []string{"a1", "a2"}, resp.AutoshipIDs)
	})

	t.Run("nothing due returns an empty list", func(t *testing.T) {
		_, autoships, _, r := newTestRouter(t)
		autoships.EXPECT().DueAutoships(mock.Anything, asOf).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/autoships/due?as_of=2025-06-01T12:00:00Z", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"autoship_ids":[]`)
	})

	t.Run("broken as_of", func(t *testing.T) {
		_, _, _, r := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/autoships/due?as_of=tomorrow", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_GetInventoryRecord(t *testing.T) {
	testCases := []struct {
		name         string
		productID    string
		mockBehavior func(svc *mocks.MockInventoryService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "low stock status is derived",
			productID: "p1",
			mockBehavior: func(svc *mocks.MockInventoryService) {
				svc.EXPECT().GetRecord(mock.Anything, "p1").
					Return(entities.InventoryRecord{ProductID: "p1", Quantity: 3, LowStockThreshold: 5}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"low_stock"`,
		},
		{
			name:      "out of stock at zero",
			productID: "p1",
			mockBehavior: func(svc *mocks.MockInventoryService) {
				svc.EXPECT().GetRecord(mock.Anything, "p1").
					Return(entities.InventoryRecord{ProductID: "p1", Quantity: 0, LowStockThreshold: 5}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"out_of_stock"`,
		},
		{
			name:      "not found",
			productID: "ghost",
			mockBehavior: func(svc *mocks.MockInventoryService) {
				svc.EXPECT().GetRecord(mock.Anything, "ghost").
					Return(entities.InventoryRecord{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, inventory, r := newTestRouter(t)
			tc.mockBehavior(inventory)

			req := httptest.NewRequest(http.MethodGet, "/inventory/"+tc.productID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
