package usecase

//go:generate mockgen -source=order_payment_usecase.go -destination=../adapter/http/handlers/mocks/order_payment_usecase_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"design_studio/internal/domain/entities"
	"design_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrOrderAlreadyPaid               = errors.New("order already paid")
	ErrOrderNotPayable                = errors.New("order cannot be paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IOrderPaymentUseCase charges a design order at its package price.
//
// An approved provider response marks the order's payment_status as paid;
// the production status is left untouched.

type IOrderPaymentUseCase interface {
	CreateAndConfirm(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo        interfaces.IOrderPaymentRepository
	orderRepo   interfaces.IDesignOrderRepository
	packageRepo interfaces.IDesignPackageRepository
	gateway     interfaces.IPaymentGateway
	clock       interfaces.IClock
	mockMode    bool
	log         *zap.Logger
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(
	repo interfaces.IOrderPaymentRepository,
	orderRepo interfaces.IDesignOrderRepository,
	packageRepo interfaces.IDesignPackageRepository,
	gateway interfaces.IPaymentGateway,
	clock interfaces.IClock,
	mockMode bool,
	log *zap.Logger,
) *OrderPaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderPaymentUseCase{
		repo:        repo,
		orderRepo:   orderRepo,
		packageRepo: packageRepo,
		gateway:     gateway,
		clock:       clock,
		mockMode:    mockMode,
		log:         log.Named("payment.usecase"),
	}
}

func (u *OrderPaymentUseCase) CreateAndConfirm(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidOrderID
	}
	log := u.log.With(zap.String("order_id", orderID))

	reqMap, err := u.parsePayload(mpPayload)
	if err != nil {
		log.Info("invalid payment payload", zap.Error(err))
		return entities.OrderPayment{}, err
	}
	if u.gateway == nil {
		return entities.OrderPayment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if order.ID == "" {
		return entities.OrderPayment{}, ErrOrderNotFound
	}
	if order.PaymentStatus == entities.OrderPaymentPaid {
		return entities.OrderPayment{}, ErrOrderAlreadyPaid
	}
	if order.Status == entities.OrderStatusCancelled {
		return entities.OrderPayment{}, ErrOrderNotPayable
	}

	pkg, err := u.packageRepo.GetByID(ctx, order.PackageID)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if pkg.ID == "" {
		return entities.OrderPayment{}, ErrPackageNotFound
	}

	// The package price is the source of truth for the amount.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = orderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Design order %s (%s)", orderID, pkg.Name)
	}
	reqMap["transaction_amount"] = pkg.Price
	body, err := json.Marshal(reqMap)
	if err != nil {
		return entities.OrderPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.OrderPayment{}, mapGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Debug("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.OrderPayment{
		ID:           providerID,
		OrderID:      orderID,
		Amount:       pkg.Price,
		Date:         u.clock.Now(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.OrderPayment{}, err
	}

	// The charge is recorded at this point; a failed order update is logged
	// for reconciliation and the payment is still returned.
	if created.Status == entities.PaymentStatusApproved {
		updated, err := u.orderRepo.UpdatePaymentStatus(ctx, orderID, entities.OrderPaymentPaid)
		switch {
		case err != nil:
			log.Error("order payment status update failed", zap.String("payment_id", created.ID), zap.Error(err))
		case updated.ID == "":
			log.Warn("order already marked paid; duplicate charge needs refund review", zap.String("payment_id", created.ID))
		}
	}
	log.Info("payment recorded", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *OrderPaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// parsePayload decodes the provider request. Outside mock mode the payload
// must name a payment method and a payer.
func (u *OrderPaymentUseCase) parsePayload(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 || !json.Valid(raw) {
		if u.mockMode {
			return map[string]any{}, nil
		}
		return nil, ErrInvalidPaymentPayload
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		if u.mockMode {
			return map[string]any{}, nil
		}
		return nil, ErrInvalidPaymentPayload
	}
	if u.mockMode {
		return m, nil
	}
	if !hasNonEmptyString(m, "payment_method_id") || !hasPayer(m) {
		return nil, ErrInvalidPaymentPayload
	}
	return m, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	if hasNonEmptyString(payer, "email") {
		return true
	}
	id, ok := payer["id"]
	return ok && id != nil && strings.TrimSpace(fmt.Sprintf("%v", id)) != ""
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
