package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"yuno-storefront-demo/internal/config"
	"yuno-storefront-demo/internal/country"
	"yuno-storefront-demo/internal/model"
)

// YunoClient issues authenticated calls against the provider's REST API.
// Every call is a single synchronous round trip: no caching, no retries.
// Transient failures propagate to the caller, which decides whether to retry.
type YunoClient interface {
	CreateCheckoutSession(ctx context.Context, req *CreateSessionRequest) (*model.CheckoutSession, error)
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*model.PaymentResult, error)
	CreateCustomerSession(ctx context.Context, countryCode string) (json.RawMessage, error)
	CreateCustomer(ctx context.Context, profile model.CustomerProfile) (string, error)
}

type yunoClientImpl struct {
	httpClient       *http.Client
	baseAPIURL       string
	accountCode      string
	publicAPIKey     string
	privateSecretKey string
}

func NewYunoClient(baseAPIURL string, cfg *config.Yuno) YunoClient {
	return &yunoClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseAPIURL:       baseAPIURL,
		accountCode:      cfg.AccountCode,
		publicAPIKey:     cfg.PublicAPIKey,
		privateSecretKey: cfg.PrivateSecretKey,
	}
}

type CreateSessionRequest struct {
	MerchantOrderID    string
	PaymentDescription string
	Country            string
	CustomerID         string
	Amount             int64
	Currency           string
	Items              []model.CartItem
}

type CreatePaymentRequest struct {
	CheckoutSessionID string
	OneTimeToken      string
	Country           string
	CustomerID        string
	Amount            int64
	MerchantOrderID   string
	Description       string
}

// checkoutSessionResponse is the single documented response schema. A
// response without checkout_session is treated as a gateway error, not
// guessed around.
type checkoutSessionResponse struct {
	CheckoutSession string `json:"checkout_session"`
}

func (c *yunoClientImpl) CreateCheckoutSession(ctx context.Context, req *CreateSessionRequest) (*model.CheckoutSession, error) {
	payload := map[string]any{
		"account_id":          c.accountCode,
		"merchant_order_id":   req.MerchantOrderID,
		"payment_description": req.PaymentDescription,
		"country":             req.Country,
		"customer_id":         req.CustomerID,
		"amount": model.Amount{
			Currency: req.Currency,
			Value:    req.Amount,
		},
	}
	if len(req.Items) > 0 {
		items := make([]map[string]any, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, map[string]any{
				"id":          item.ID,
				"name":        item.Name,
				"quantity":    item.Quantity,
				"unit_amount": item.UnitAmount,
				"category":    "general",
			})
		}
		payload["additional_data"] = map[string]any{
			"order": map[string]any{"items": items},
		}
	}

	body, err := c.post(ctx, "/v1/checkout/sessions", payload, nil)
	if err != nil {
		return nil, err
	}

	var resp checkoutSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode checkout session response: %w", err)
	}
	if resp.CheckoutSession == "" {
		return nil, &model.GatewayError{StatusCode: http.StatusOK, RawBody: body}
	}

	return &model.CheckoutSession{
		ID:                 resp.CheckoutSession,
		MerchantOrderID:    req.MerchantOrderID,
		Country:            req.Country,
		PaymentDescription: req.PaymentDescription,
		CustomerID:         req.CustomerID,
		Amount:             req.Amount,
		Currency:           req.Currency,
	}, nil
}

func (c *yunoClientImpl) CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*model.PaymentResult, error) {
	data := country.Resolve(req.Country)
	customer := model.DemoCustomer()

	payload := map[string]any{
		"description":       req.Description,
		"account_id":        c.accountCode,
		"merchant_order_id": req.MerchantOrderID,
		"country":           req.Country,
		"additional_data": map[string]any{
			"order": map[string]any{
				"fee_amount": 0,
				"items": []map[string]any{
					{
						"brand":                   "Store",
						"category":                "General",
						"id":                      "ITEM_001",
						"manufacture_part_number": "STORE_001",
						"name":                    req.Description,
						"quantity":                1,
						"sku_code":                "STORE_001",
						"unit_amount":             req.Amount,
					},
				},
				"shipping_amount": 0,
			},
		},
		"amount": model.Amount{
			Currency: data.Currency,
			Value:    req.Amount,
		},
		"checkout": map[string]string{
			"session": req.CheckoutSessionID,
		},
		"customer_payer": map[string]any{
			"billing_address": customer.BillingAddress,
			"date_of_birth":   "1990-02-28",
			"document": model.Document{
				DocumentType:   data.DocumentType,
				DocumentNumber: data.DocumentNumber,
			},
			"email":                customer.Email,
			"first_name":           customer.FirstName,
			"id":                   req.CustomerID,
			"last_name":            customer.LastName,
			"merchant_customer_id": customer.MerchantCustomerID,
			"nationality":          req.Country,
			"phone":                customer.Phone,
			"shipping_address":     customer.ShippingAddress,
		},
		"payment_method": map[string]any{
			"token":         req.OneTimeToken,
			"vaulted_token": nil,
		},
	}

	// Fresh idempotency key per call. Caller-driven retries get a new key,
	// so the provider will not deduplicate them.
	headers := map[string]string{"X-idempotency-key": uuid.NewString()}

	body, err := c.post(ctx, "/v1/payments", payload, headers)
	if err != nil {
		return nil, err
	}

	var result model.PaymentResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}
	result.Raw = body

	return &result, nil
}

func (c *yunoClientImpl) CreateCustomerSession(ctx context.Context, countryCode string) (json.RawMessage, error) {
	payload := map[string]any{
		"account_id": c.accountCode,
		"country":    countryCode,
	}
	return c.post(ctx, "/v1/customers/sessions", payload, nil)
}

func (c *yunoClientImpl) CreateCustomer(ctx context.Context, profile model.CustomerProfile) (string, error) {
	payload := map[string]any{
		"account_id":           c.accountCode,
		"merchant_customer_id": profile.MerchantCustomerID,
		"first_name":           profile.FirstName,
		"last_name":            profile.LastName,
		"email":                profile.Email,
		"phone":                profile.Phone,
		"document":             profile.Document,
		"billing_address":      profile.BillingAddress,
		"shipping_address":     profile.ShippingAddress,
	}

	body, err := c.post(ctx, "/v1/customers", payload, nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode customer response: %w", err)
	}
	if resp.ID == "" {
		return "", &model.GatewayError{StatusCode: http.StatusOK, RawBody: body}
	}

	return resp.ID, nil
}

// post issues an authenticated JSON request and returns the raw response
// body. Non-2xx statuses surface as *model.GatewayError with the provider's
// payload intact; transport failures as *model.NetworkError.
func (c *yunoClientImpl) post(ctx context.Context, path string, payload any, headers map[string]string) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseAPIURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("public-api-key", c.publicAPIKey)
	req.Header.Set("private-secret-key", c.privateSecretKey)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &model.NetworkError{Op: "POST " + path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.NetworkError{Op: "read " + path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &model.GatewayError{StatusCode: resp.StatusCode, RawBody: respBody}
	}

	return respBody, nil
}
