package handlers

import (
	"context"
	"errors"
	"net/http"

	request "design_studio/internal/adapter/http/dto/request"
	response "design_studio/internal/adapter/http/dto/response"
	"design_studio/internal/domain/entities"
	"design_studio/internal/domain/fulfillment"
	"design_studio/internal/usecase"
	"design_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// DesignOrderHandler handles order creation and the lifecycle transitions
// triggered by operators and customers.

type DesignOrderHandler struct {
	usecase usecase.IDesignOrderUseCase
}

func NewDesignOrderHandler(uc usecase.IDesignOrderUseCase) *DesignOrderHandler {
	return &DesignOrderHandler{usecase: uc}
}

// @Summary     Create a design order
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       body body request.DesignOrderCreateRequest true "Order"
// @Success     201 {object} response.DesignOrderResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders [post]
func (h *DesignOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.DesignOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ResolveCustomerID(), payload.ResolvePackageID())
	if err != nil {
		appErr := mapDesignOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDesignOrder(order))
}

// @Summary     Get a design order
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} response.DesignOrderResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id} [get]
func (h *DesignOrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDesignOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignOrder(order))
}

// @Summary     Start production
// @Description pending -> in_progress
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} response.DesignOrderResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     409 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id}/start [patch]
func (h *DesignOrderHandler) StartProduction(c *gin.Context) {
	h.transition(c, h.usecase.StartProduction)
}

// @Summary     Deliver an order
// @Description in_progress or revision_requested -> delivered
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} response.DesignOrderResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     409 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id}/deliver [patch]
func (h *DesignOrderHandler) Deliver(c *gin.Context) {
	h.transition(c, h.usecase.Deliver)
}

// @Summary     Request a revision
// @Description delivered -> revision_requested while revisions remain
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} response.DesignOrderResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     409 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id}/revision [patch]
func (h *DesignOrderHandler) RequestRevision(c *gin.Context) {
	h.transition(c, h.usecase.RequestRevision)
}

// @Summary     Approve a delivery
// @Description delivered -> approved
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} response.DesignOrderResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     409 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id}/approve [patch]
func (h *DesignOrderHandler) Approve(c *gin.Context) {
	h.transition(c, h.usecase.Approve)
}

// @Summary     Cancel an order
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} response.DesignOrderResponse
// @Failure     404 {object} pkg.HTTPError
// @Failure     409 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id}/cancel [patch]
func (h *DesignOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *DesignOrderHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.DesignOrder, error),
) {
	order, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDesignOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignOrder(order))
}

func mapDesignOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPackageID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, fulfillment.ErrRevisionsExhausted):
		return pkg.NewDomainErrorSimple("REVISIONS_EXHAUSTED", "No revisions left for this order", http.StatusConflict)
	case errors.Is(err, fulfillment.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, fulfillment.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Order has an unknown status", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderConflict):
		return pkg.NewDomainErrorSimple("ORDER_CONFLICT", "Order was changed by another request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
