package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	response "design_studio/internal/adapter/http/dto/response"
	"design_studio/internal/usecase"
	"design_studio/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderPaymentHandler handles checkout payments for design orders.

type OrderPaymentHandler struct {
	usecase  usecase.IOrderPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase, mockMode bool, log *zap.Logger) *OrderPaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderPaymentHandler{usecase: uc, mockMode: mockMode, log: log.Named("payment.handler")}
}

// CreatePayment charges the order in the path at its package price.
//
// @Summary     Pay for an order
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       id path string true "Order ID"
// @Param       body body request.OrderPaymentCreateRequest false "Mercado Pago payload"
// @Success     200 {object} response.OrderPaymentResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     404 {object} pkg.HTTPError
// @Failure     409 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id}/payments [post]
func (h *OrderPaymentHandler) CreatePayment(c *gin.Context) {
	orderID := c.Param("id")
	log := h.log.With(zap.String("order_id", orderID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("invalid payment payload", zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Debug("invalid payload in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndConfirm(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		appErr := mapOrderPaymentError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			log.Error("create payment failed", zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayment(created))
}

// ListPayments returns every payment attempt for the order, newest first.
//
// @Summary     List order payments
// @Tags        payments
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {array} response.OrderPaymentResponse
// @Failure     400 {object} pkg.HTTPError
// @Failure     500 {object} pkg.HTTPError
// @Router      /orders/{id}/payments [get]
func (h *OrderPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromOrderPayments(payments)
	slices.SortStableFunc(res, func(a, b response.OrderPaymentResponse) int {
		return b.Date.Compare(a.Date)
	})
	c.JSON(http.StatusOK, res)
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order cannot be paid", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
