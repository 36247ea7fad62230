package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"yuno-storefront-demo/internal/client"
	"yuno-storefront-demo/internal/country"
	"yuno-storefront-demo/internal/dto"
	"yuno-storefront-demo/internal/model"
)

// DefaultAmount is charged when the client omits an amount, in minor units.
const DefaultAmount int64 = 2000

const defaultDescription = "E-commerce Purchase"

type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, countryCode string, req *dto.CreateSessionRequest) (*model.CheckoutSession, error)
	SubmitPayment(ctx context.Context, countryCode string, req *dto.PaymentRequest) (*model.PaymentResult, error)
	CreateCustomerSession(ctx context.Context, countryCode string) (json.RawMessage, error)
	CustomerID() string
}

type checkoutServiceImpl struct {
	yunoClient client.YunoClient
	customerID string
	logger     *zap.Logger
}

// NewCheckoutService creates the demo customer record on the provider side
// and keeps its id for the process lifetime. A failed bootstrap means no
// payment can ever be attempted, so the caller must treat the error as fatal.
func NewCheckoutService(ctx context.Context, yunoClient client.YunoClient, logger *zap.Logger) (CheckoutService, error) {
	customerID, err := yunoClient.CreateCustomer(ctx, model.DemoCustomer())
	if err != nil {
		return nil, fmt.Errorf("create demo customer: %w", err)
	}
	logger.Info("demo customer created", zap.String("customer_id", customerID))

	return &checkoutServiceImpl{
		yunoClient: yunoClient,
		customerID: customerID,
		logger:     logger,
	}, nil
}

func (s *checkoutServiceImpl) CustomerID() string {
	return s.customerID
}

// newOrderID generates a merchant order id unique per attempt. A random
// 128-bit identifier rather than timestamp+suffix, so concurrent attempts
// from one process cannot collide.
func newOrderID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

func paymentDescription(items []model.CartItem) string {
	if len(items) == 0 {
		return defaultDescription
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return "Purchase: " + strings.Join(names, ", ")
}

func (s *checkoutServiceImpl) CreateCheckoutSession(ctx context.Context, countryCode string, req *dto.CreateSessionRequest) (*model.CheckoutSession, error) {
	data := country.Resolve(countryCode)
	items := req.CartItems()

	amount := DefaultAmount
	if req.Amount != nil {
		amount = *req.Amount
	}

	session, err := s.yunoClient.CreateCheckoutSession(ctx, &client.CreateSessionRequest{
		MerchantOrderID:    newOrderID("ORDER"),
		PaymentDescription: paymentDescription(items),
		Country:            countryCode,
		CustomerID:         s.customerID,
		Amount:             amount,
		Currency:           data.Currency,
		Items:              items,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.logger.Info("checkout session created",
		zap.String("checkout_session", session.ID),
		zap.String("merchant_order_id", session.MerchantOrderID),
		zap.Int64("amount", session.Amount),
		zap.String("currency", session.Currency),
	)

	return session, nil
}

func (s *checkoutServiceImpl) SubmitPayment(ctx context.Context, countryCode string, req *dto.PaymentRequest) (*model.PaymentResult, error) {
	amount := DefaultAmount
	if req.Amount != nil {
		amount = *req.Amount
	}

	result, err := s.yunoClient.CreatePayment(ctx, &client.CreatePaymentRequest{
		CheckoutSessionID: req.CheckoutSession,
		OneTimeToken:      req.OneTimeToken,
		Country:           countryCode,
		CustomerID:        s.customerID,
		Amount:            amount,
		MerchantOrderID:   newOrderID("PAYMENT"),
		Description:       defaultDescription,
	})
	if err != nil {
		return nil, fmt.Errorf("submit payment: %w", err)
	}

	s.logger.Info("payment submitted",
		zap.String("checkout_session", req.CheckoutSession),
		zap.String("status", result.Status),
		zap.String("sub_status", result.SubStatus),
	)

	return result, nil
}

func (s *checkoutServiceImpl) CreateCustomerSession(ctx context.Context, countryCode string) (json.RawMessage, error) {
	raw, err := s.yunoClient.CreateCustomerSession(ctx, countryCode)
	if err != nil {
		return nil, fmt.Errorf("create customer session: %w", err)
	}
	return raw, nil
}
