package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yuno-storefront-demo/internal/config"
	"yuno-storefront-demo/internal/dto"
	"yuno-storefront-demo/internal/model"
)

// countingService counts outbound calls so tests can prove validation
// rejects bad input before anything leaves the process.
type countingService struct {
	sessionCalls int
	paymentCalls int
	sessionErr   error
	paymentErr   error
	lastCountry  string
	lastSession  *dto.CreateSessionRequest
}

func (s *countingService) CreateCheckoutSession(ctx context.Context, countryCode string, req *dto.CreateSessionRequest) (*model.CheckoutSession, error) {
	s.sessionCalls++
	s.lastCountry = countryCode
	s.lastSession = req
	if s.sessionErr != nil {
		return nil, s.sessionErr
	}
	amount := int64(2000)
	if req.Amount != nil {
		amount = *req.Amount
	}
	description := "E-commerce Purchase"
	if len(req.Items) > 0 {
		names := make([]string, 0, len(req.Items))
		for _, item := range req.Items {
			names = append(names, item.Name)
		}
		description = "Purchase: " + strings.Join(names, ", ")
	}
	return &model.CheckoutSession{
		ID:                 "a3bb189e-8bf9-4888-9912-ace4e6543002",
		MerchantOrderID:    "ORDER_x",
		Country:            countryCode,
		PaymentDescription: description,
		CustomerID:         "cust_demo",
		Amount:             amount,
		Currency:           "COP",
	}, nil
}

func (s *countingService) SubmitPayment(ctx context.Context, countryCode string, req *dto.PaymentRequest) (*model.PaymentResult, error) {
	s.paymentCalls++
	if s.paymentErr != nil {
		return nil, s.paymentErr
	}
	return &model.PaymentResult{
		Status:    "SUCCEEDED",
		SubStatus: "APPROVED",
		Raw:       json.RawMessage(`{"status":"SUCCEEDED","sub_status":"APPROVED"}`),
	}, nil
}

func (s *countingService) CreateCustomerSession(ctx context.Context, countryCode string) (json.RawMessage, error) {
	return json.RawMessage(`{"customer_session":"cs_1"}`), nil
}

func (s *countingService) CustomerID() string { return "cust_demo" }

func request(t *testing.T, h echo.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func newHandler(svc *countingService) *CheckoutHandler {
	return NewCheckoutHandler(svc, config.Environment{Name: "development"}, "sandbox_pub")
}

func TestHealthy(t *testing.T) {
	rec := request(t, newHandler(&countingService{}).Healthy, http.MethodGet, "/healthy", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "development", resp.Environment)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, Version, resp.Version)
}

func TestPublicAPIKey(t *testing.T) {
	rec := request(t, newHandler(&countingService{}).PublicAPIKey, http.MethodGet, "/public-api-key", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.PublicAPIKeyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sandbox_pub", resp.PublicAPIKey)
	assert.Equal(t, "sandbox", resp.Environment)
}

func TestPublicAPIKeyProduction(t *testing.T) {
	h := NewCheckoutHandler(&countingService{}, config.Environment{Name: "production"}, "prod_pub")
	rec := request(t, h.PublicAPIKey, http.MethodGet, "/public-api-key", "")

	var resp dto.PublicAPIKeyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "production", resp.Environment)
}

func TestCreateCheckoutSessionScenario(t *testing.T) {
	svc := &countingService{}
	body := `{"amount":5000,"items":[{"id":"A","name":"Shirt","quantity":2,"unit_amount":2500}]}`
	rec := request(t, newHandler(svc).CreateCheckoutSession, http.MethodPost, "/checkout/sessions?country=CO", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	var session model.CheckoutSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, int64(5000), session.Amount)
	assert.Contains(t, session.PaymentDescription, "Shirt")
	assert.Equal(t, 1, svc.sessionCalls)
}

func TestCreateCheckoutSessionDefaultsCountry(t *testing.T) {
	svc := &countingService{}
	rec := request(t, newHandler(svc).CreateCheckoutSession, http.MethodPost, "/checkout/sessions", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CO", svc.lastCountry)
}

func TestCreateCheckoutSessionRejectsBadItemsBeforeOutboundCall(t *testing.T) {
	bodies := []string{
		`{"items":[{"name":"Shirt","quantity":2,"unit_amount":2500}]}`,
		`{"items":[{"id":"A","quantity":2,"unit_amount":2500}]}`,
		`{"items":[{"id":"A","name":"Shirt","unit_amount":2500}]}`,
		`{"items":[{"id":"A","name":"Shirt","quantity":-2,"unit_amount":2500}]}`,
		`{"items":[{"id":"A","name":"Shirt","quantity":2,"unit_amount":-1}]}`,
		`{"amount":-5}`,
		`{"amount":2000000}`,
	}
	for _, body := range bodies {
		svc := &countingService{}
		rec := request(t, newHandler(svc).CreateCheckoutSession, http.MethodPost, "/checkout/sessions", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, 0, svc.sessionCalls, "outbound call issued for invalid input: %s", body)

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	}
}

func TestCreateCheckoutSessionGatewayFailure(t *testing.T) {
	svc := &countingService{
		sessionErr: &model.GatewayError{StatusCode: 422, RawBody: json.RawMessage(`{"code":"INVALID_COUNTRY"}`)},
	}
	rec := request(t, newHandler(svc).CreateCheckoutSession, http.MethodPost, "/checkout/sessions", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to create checkout session")
	assert.Contains(t, rec.Body.String(), "INVALID_COUNTRY")
}

func TestCreatePaymentPassthrough(t *testing.T) {
	svc := &countingService{}
	body := `{"checkoutSession":"a3bb189e-8bf9-4888-9912-ace4e6543002","oneTimeToken":"tok_1","amount":2000}`
	rec := request(t, newHandler(svc).CreatePayment, http.MethodPost, "/payments?country=CO", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"SUCCEEDED","sub_status":"APPROVED"}`, rec.Body.String())
	assert.Equal(t, 1, svc.paymentCalls)
}

func TestCreatePaymentRejectsNonUUIDSession(t *testing.T) {
	svc := &countingService{}
	body := `{"checkoutSession":"definitely-not-a-uuid","oneTimeToken":"tok_1"}`
	rec := request(t, newHandler(svc).CreatePayment, http.MethodPost, "/payments", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.paymentCalls)
	assert.Contains(t, rec.Body.String(), "UUID")
}

func TestCreatePaymentRejectsMissingToken(t *testing.T) {
	svc := &countingService{}
	body := `{"checkoutSession":"a3bb189e-8bf9-4888-9912-ace4e6543002"}`
	rec := request(t, newHandler(svc).CreatePayment, http.MethodPost, "/payments", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, svc.paymentCalls)
}

func TestCreatePaymentGatewayFailure(t *testing.T) {
	svc := &countingService{
		paymentErr: &model.GatewayError{StatusCode: 402, RawBody: json.RawMessage(`{"code":"DECLINED"}`)},
	}
	body := `{"checkoutSession":"a3bb189e-8bf9-4888-9912-ace4e6543002","oneTimeToken":"tok_1"}`
	rec := request(t, newHandler(svc).CreatePayment, http.MethodPost, "/payments", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment failed")
	assert.Contains(t, rec.Body.String(), "DECLINED")
}

func TestCreateCustomerSession(t *testing.T) {
	rec := request(t, newHandler(&countingService{}).CreateCustomerSession, http.MethodPost, "/customers/sessions?country=CO", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customer_session":"cs_1"}`, rec.Body.String())
}
