package handlers

import (
	"errors"
	"net/http"

	response "design_studio/internal/adapter/http/dto/response"
	"design_studio/internal/usecase"
	"design_studio/pkg"

	"github.com/gin-gonic/gin"
)

// OrderTrackingHandler serves the operator queue and the customer status
// page. Both read the same evaluation of each order.

type OrderTrackingHandler struct {
	usecase usecase.IOrderTrackingUseCase
}

func NewOrderTrackingHandler(uc usecase.IOrderTrackingUseCase) *OrderTrackingHandler {
	return &OrderTrackingHandler{usecase: uc}
}

// GetQueue returns the sorted operator queue. The optional `filter` query
// selects a tab (all, active, revision, completed) or a stored status.
//
// @Summary     Operator queue
// @Tags        tracking
// @Produce     json
// @Param       filter query string false "all, active, revision, completed or a stored status"
// @Success     200 {object} response.OrderQueueResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/queue [get]
func (h *OrderTrackingHandler) GetQueue(c *gin.Context) {
	snapshot, err := h.usecase.OperatorQueue(c.Request.Context(), c.Query("filter"))
	if err != nil {
		appErr := mapOrderTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQueueSnapshot(snapshot))
}

// @Summary     Dashboard counters
// @Tags        tracking
// @Produce     json
// @Success     200 {object} fulfillment.Stats
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/stats [get]
func (h *OrderTrackingHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapOrderTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary     Customer order status
// @Tags        tracking
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} response.CustomerStatusResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id}/status [get]
func (h *OrderTrackingHandler) GetCustomerStatus(c *gin.Context) {
	status, err := h.usecase.CustomerStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderTrackingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerStatus(status))
}

func mapOrderTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQueueFilter):
		return pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid queue filter", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
