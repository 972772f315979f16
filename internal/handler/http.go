package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/glebsolovev/fulfillment-service/internal/entities"
	"github.com/glebsolovev/fulfillment-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	Transition(ctx context.Context, orderID string, target entities.OrderStatus) (entities.Order, error)
}

type AutoshipService interface {
	GetAutoshipByID(ctx context.Context, autoshipID string) (entities.Autoship, error)
	Pause(ctx context.Context, autoshipID string) (entities.Autoship, error)
	Resume(ctx context.Context, autoshipID string, explicitNextRunAt *time.Time) (entities.Autoship, error)
	Cancel(ctx context.Context, autoshipID string) (entities.Autoship, error)
	DueAutoships(ctx context.Context, asOf time.Time) ([]string, error)
}

type InventoryService interface {
	GetRecord(ctx context.Context, productID string) (entities.InventoryRecord, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	orders    OrderService
	autoships AutoshipService
	inventory InventoryService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, autoships AutoshipService, inventory InventoryService) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		orders:    orders,
		autoships: autoships,
		inventory: inventory,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/order/{order_id}", h.GetOrderByID)
	r.Post("/order/{order_id}/status", h.UpdateOrderStatus)

	r.Get("/autoship/{autoship_id}", h.GetAutoshipByID)
	r.Post("/autoship/{autoship_id}/pause", h.PauseAutoship)
	r.Post("/autoship/{autoship_id}/resume", h.ResumeAutoship)
	r.Post("/autoship/{autoship_id}/cancel", h.CancelAutoship)
	r.Get("/autoships/due", h.DueAutoships)

	r.Get("/inventory/{product_id}", h.GetInventoryRecord)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Tags         orders
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrderStatus переводит заказ в запрошенный статус.
// @Summary      Сменить статус заказа
// @Description  Переход проверяется по таблице разрешённых переходов. Отмена
// @Description  и возврат атомарно возвращают остатки на склад.
// @Tags         orders
// @Param        order_id   path      string                    true  "Идентификатор заказа"
// @Param        request    body      UpdateOrderStatusRequest  true  "Целевой статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Переход запрещён или конкурентное изменение"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/{order_id}/status [post]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateOrderStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.Transition(ctx, orderID, entities.OrderStatus(req.Status))

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		orderTransitionsTotal.WithLabelValues(req.Status, "not_found").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidTransition):
		orderTransitionsTotal.WithLabelValues(req.Status, "rejected").Inc()
		utils.WriteError(w, "status transition is not allowed", http.StatusConflict)
		return
	case errors.Is(err, entities.ErrConcurrentModification):
		// заказ успели изменить, вызывающий должен перечитать состояние
		orderTransitionsTotal.WithLabelValues(req.Status, "conflict").Inc()
		utils.WriteError(w, "order was modified concurrently", http.StatusConflict)
		return
	case err != nil:
		orderTransitionsTotal.WithLabelValues(req.Status, "error").Inc()
		h.logger.ErrorContext(ctx, "failed to update order status",
			slog.Any("error", err), slog.String("order_id", orderID), slog.String("status", req.Status))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	orderTransitionsTotal.WithLabelValues(req.Status, "applied").Inc()
	if order.Status.ReleasesStock() {
		for _, it := range order.Items {
			stockReleasedTotal.Add(float64(it.Quantity))
		}
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetAutoshipByID возвращает подписку по ID.
// @Summary      Получить подписку
// @Tags         autoships
// @Param        autoship_id   path      string  true  "Идентификатор подписки"
// @Success      200  {object}  Autoship
// @Failure      404  {object}  utils.ErrorResponse "Подписка не найдена"
// @Router       /autoship/{autoship_id} [get]
func (h *HTTPHandler) GetAutoshipByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	autoshipID := chi.URLParam(r, "autoship_id")

	autoship, err := h.autoships.GetAutoshipByID(ctx, autoshipID)
	h.writeAutoship(w, r, autoship, err)
}

// PauseAutoship приостанавливает активную подписку.
// @Summary      Приостановить подписку
// @Tags         autoships
// @Param        autoship_id   path      string  true  "Идентификатор подписки"
// @Success      200  {object}  Autoship
// @Failure      404  {object}  utils.ErrorResponse "Подписка не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Подписка не активна"
// @Router       /autoship/{autoship_id}/pause [post]
func (h *HTTPHandler) PauseAutoship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	autoshipID := chi.URLParam(r, "autoship_id")

	autoship, err := h.autoships.Pause(ctx, autoshipID)
	autoshipOperationsTotal.WithLabelValues("pause", opResult(err)).Inc()
	h.writeAutoship(w, r, autoship, err)
}

// ResumeAutoship возобновляет приостановленную подписку.
// @Summary      Возобновить подписку
// @Description  Если next_run_at не передан, следующая доставка назначается
// @Description  на текущее время плюс интервал подписки.
// @Tags         autoships
// @Param        autoship_id   path      string                 true   "Идентификатор подписки"
// @Param        request       body      ResumeAutoshipRequest  false  "Явная дата следующей доставки"
// @Success      200  {object}  Autoship
// @Failure      404  {object}  utils.ErrorResponse "Подписка не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Подписка не приостановлена"
// @Router       /autoship/{autoship_id}/resume [post]
func (h *HTTPHandler) ResumeAutoship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	autoshipID := chi.URLParam(r, "autoship_id")

	var req ResumeAutoshipRequest
	if r.ContentLength > 0 {
		if err := utils.DecodeBody(r, &req); err != nil {
			utils.WriteError(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	autoship, err := h.autoships.Resume(ctx, autoshipID, req.NextRunAt)
	autoshipOperationsTotal.WithLabelValues("resume", opResult(err)).Inc()
	h.writeAutoship(w, r, autoship, err)
}

// CancelAutoship отменяет подписку навсегда.
// @Summary      Отменить подписку
// @Tags         autoships
// @Param        autoship_id   path      string  true  "Идентификатор подписки"
// @Success      200  {object}  Autoship
// @Failure      404  {object}  utils.ErrorResponse "Подписка не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Подписка уже отменена"
// @Router       /autoship/{autoship_id}/cancel [post]
func (h *HTTPHandler) CancelAutoship(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	autoshipID := chi.URLParam(r, "autoship_id")

	autoship, err := h.autoships.Cancel(ctx, autoshipID)
	autoshipOperationsTotal.WithLabelValues("cancel", opResult(err)).Inc()
	h.writeAutoship(w, r, autoship, err)
}

// DueAutoships возвращает подписки, у которых подошёл срок доставки.
// @Summary      Подписки к доставке
// @Tags         autoships
// @Param        as_of   query      string  false  "Момент времени RFC3339, по умолчанию сейчас"
// @Success      200  {object}  DueAutoshipsResponse
// @Router       /autoships/due [get]
func (h *HTTPHandler) DueAutoships(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	asOf := time.Now().UTC()
	if v := r.URL.Query().Get("as_of"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.WriteError(w, "as_of must be RFC3339", http.StatusBadRequest)
			return
		}
		asOf = t.UTC()
	}

	ids, err := h.autoships.DueAutoships(ctx, asOf)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list due autoships", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	utils.WriteJSON(w, DueAutoshipsResponse{AsOf: asOf, AutoshipIDs: ids}, http.StatusOK)
}

// GetInventoryRecord возвращает остаток по товару.
// @Summary      Остаток по товару
// @Tags         inventory
// @Param        product_id   path      string  true  "Идентификатор товара"
// @Success      200  {object}  InventoryRecord
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Router       /inventory/{product_id} [get]
func (h *HTTPHandler) GetInventoryRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	record, err := h.inventory.GetRecord(ctx, productID)

	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get inventory record", slog.Any("error", err), slog.String("product_id", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, InventoryEntityToJSON(record), http.StatusOK)
}

func (h *HTTPHandler) writeAutoship(w http.ResponseWriter, r *http.Request, autoship entities.Autoship, err error) {
	switch {
	case errors.Is(err, entities.ErrAutoshipNotFound):
		utils.WriteError(w, "autoship not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInvalidState):
		utils.WriteError(w, "autoship state does not allow this operation", http.StatusConflict)
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "autoship operation failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, AutoshipEntityToJSON(autoship), http.StatusOK)
}

func opResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrAutoshipNotFound):
		return "not_found"
	case errors.Is(err, entities.ErrInvalidState):
		return "rejected"
	default:
		return "error"
	}
}
