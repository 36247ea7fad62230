package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"yuno-storefront-demo/internal/client"
	"yuno-storefront-demo/internal/dto"
	"yuno-storefront-demo/internal/model"
)

type stubYunoClient struct {
	customerID      string
	customerErr     error
	sessionRequests []*client.CreateSessionRequest
	sessionErr      error
	paymentRequests []*client.CreatePaymentRequest
	paymentResult   *model.PaymentResult
	paymentErr      error
}

func (s *stubYunoClient) CreateCheckoutSession(ctx context.Context, req *client.CreateSessionRequest) (*model.CheckoutSession, error) {
	s.sessionRequests = append(s.sessionRequests, req)
	if s.sessionErr != nil {
		return nil, s.sessionErr
	}
	return &model.CheckoutSession{
		ID:                 "a3bb189e-8bf9-4888-9912-ace4e6543002",
		MerchantOrderID:    req.MerchantOrderID,
		Country:            req.Country,
		PaymentDescription: req.PaymentDescription,
		CustomerID:         req.CustomerID,
		Amount:             req.Amount,
		Currency:           req.Currency,
	}, nil
}

func (s *stubYunoClient) CreatePayment(ctx context.Context, req *client.CreatePaymentRequest) (*model.PaymentResult, error) {
	s.paymentRequests = append(s.paymentRequests, req)
	if s.paymentErr != nil {
		return nil, s.paymentErr
	}
	return s.paymentResult, nil
}

func (s *stubYunoClient) CreateCustomerSession(ctx context.Context, countryCode string) (json.RawMessage, error) {
	return json.RawMessage(`{"customer_session":"cs_1"}`), nil
}

func (s *stubYunoClient) CreateCustomer(ctx context.Context, profile model.CustomerProfile) (string, error) {
	if s.customerErr != nil {
		return "", s.customerErr
	}
	return s.customerID, nil
}

func newTestService(t *testing.T, stub *stubYunoClient) CheckoutService {
	t.Helper()
	if stub.customerID == "" {
		stub.customerID = "cust_demo"
	}
	svc, err := NewCheckoutService(context.Background(), stub, zap.NewNop())
	require.NoError(t, err)
	return svc
}

func int64Ptr(v int64) *int64 { return &v }

func TestNewCheckoutServiceBootstrapsCustomer(t *testing.T) {
	stub := &stubYunoClient{customerID: "cust_42"}
	svc := newTestService(t, stub)
	assert.Equal(t, "cust_42", svc.CustomerID())
}

func TestNewCheckoutServiceFailsWithoutCustomer(t *testing.T) {
	stub := &stubYunoClient{customerErr: errors.New("provider down")}
	_, err := NewCheckoutService(context.Background(), stub, zap.NewNop())
	assert.Error(t, err)
}

func TestCreateCheckoutSessionUsesValidatedAmountAndItems(t *testing.T) {
	stub := &stubYunoClient{}
	svc := newTestService(t, stub)

	session, err := svc.CreateCheckoutSession(context.Background(), "CO", &dto.CreateSessionRequest{
		Amount: int64Ptr(5000),
		Items:  []dto.Item{{ID: "A", Name: "Shirt", Quantity: 2, UnitAmount: 2500}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5000), session.Amount)
	assert.Contains(t, session.PaymentDescription, "Shirt")
	assert.Equal(t, "COP", session.Currency)
	assert.Equal(t, "cust_demo", session.CustomerID)

	require.Len(t, stub.sessionRequests, 1)
	assert.Len(t, stub.sessionRequests[0].Items, 1)
}

func TestCreateCheckoutSessionDefaults(t *testing.T) {
	stub := &stubYunoClient{}
	svc := newTestService(t, stub)

	session, err := svc.CreateCheckoutSession(context.Background(), "CO", &dto.CreateSessionRequest{})
	require.NoError(t, err)
	assert.Equal(t, DefaultAmount, session.Amount)
	assert.Equal(t, "E-commerce Purchase", session.PaymentDescription)
}

func TestMerchantOrderIDsAreUniquePerAttempt(t *testing.T) {
	stub := &stubYunoClient{}
	svc := newTestService(t, stub)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		session, err := svc.CreateCheckoutSession(context.Background(), "CO", &dto.CreateSessionRequest{})
		require.NoError(t, err)
		assert.False(t, seen[session.MerchantOrderID], "merchant order id reused")
		seen[session.MerchantOrderID] = true
	}
}

func TestSubmitPaymentPropagatesGatewayError(t *testing.T) {
	stub := &stubYunoClient{
		paymentErr: &model.GatewayError{StatusCode: 402, RawBody: json.RawMessage(`{"code":"DECLINED"}`)},
	}
	svc := newTestService(t, stub)

	_, err := svc.SubmitPayment(context.Background(), "CO", &dto.PaymentRequest{
		CheckoutSession: "a3bb189e-8bf9-4888-9912-ace4e6543002",
		OneTimeToken:    "tok_1",
	})
	var gatewayErr *model.GatewayError
	require.ErrorAs(t, err, &gatewayErr)
	assert.Contains(t, string(gatewayErr.RawBody), "DECLINED")
}

func TestSubmitPaymentResult(t *testing.T) {
	stub := &stubYunoClient{
		paymentResult: &model.PaymentResult{Status: "SUCCEEDED", SubStatus: "APPROVED"},
	}
	svc := newTestService(t, stub)

	result, err := svc.SubmitPayment(context.Background(), "BR", &dto.PaymentRequest{
		CheckoutSession: "a3bb189e-8bf9-4888-9912-ace4e6543002",
		OneTimeToken:    "tok_1",
		Amount:          int64Ptr(7500),
	})
	require.NoError(t, err)
	assert.True(t, result.Approved())

	require.Len(t, stub.paymentRequests, 1)
	req := stub.paymentRequests[0]
	assert.Equal(t, int64(7500), req.Amount)
	assert.Equal(t, "BR", req.Country)
	assert.Equal(t, "tok_1", req.OneTimeToken)
}
