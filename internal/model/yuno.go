package model

import "encoding/json"

// Payment result statuses as documented by the provider.
const (
	PaymentStatusSucceeded = "SUCCEEDED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusPending   = "PENDING"

	PaymentSubStatusApproved = "APPROVED"
	PaymentSubStatusPending  = "PENDING"
)

type Amount struct {
	Currency string `json:"currency"`
	Value    int64  `json:"value"`
}

// CheckoutSession scopes one purchase attempt on the provider side. Created
// once per attempt, immutable afterwards, never persisted.
type CheckoutSession struct {
	ID                 string `json:"checkout_session"`
	MerchantOrderID    string `json:"merchant_order_id"`
	Country            string `json:"country"`
	PaymentDescription string `json:"payment_description"`
	CustomerID         string `json:"customer_id"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
}

// PaymentResult is the parsed provider response to a payment submission.
// Raw keeps the full provider payload for passthrough to the UI.
type PaymentResult struct {
	ID             string          `json:"id"`
	Status         string          `json:"status"`
	SubStatus      string          `json:"sub_status"`
	RequiresAction bool            `json:"requiresAction"`
	Raw            json.RawMessage `json:"-"`
}

// Approved is the only combination that finalizes an attempt as succeeded.
func (r *PaymentResult) Approved() bool {
	return r.Status == PaymentStatusSucceeded && r.SubStatus == PaymentSubStatusApproved
}

// Processing means the provider accepted the payment but has not settled it.
func (r *PaymentResult) Processing() bool {
	return r.Status == PaymentStatusSucceeded && r.SubStatus == PaymentSubStatusPending
}

// CartItem is a checkout line item supplied by the storefront UI.
type CartItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

// PaymentAttempt is transient state for a single payment submission. It is
// never stored; it lives for the duration of one CreatePayment call.
type PaymentAttempt struct {
	CheckoutSessionID string
	OneTimeToken      string
	Amount            int64
	Country           string
}

type Phone struct {
	CountryCode string `json:"country_code"`
	Number      string `json:"number"`
}

type Document struct {
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
}

type Address struct {
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city"`
	Country      string `json:"country"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// CustomerProfile is the fixed demo customer created once at startup.
type CustomerProfile struct {
	MerchantCustomerID string   `json:"merchant_customer_id"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Email              string   `json:"email"`
	Phone              Phone    `json:"phone"`
	Document           Document `json:"document"`
	BillingAddress     Address  `json:"billing_address"`
	ShippingAddress    Address  `json:"shipping_address"`
}

// DemoCustomer returns the fixed profile used for every transaction in this
// demo. There is no per-user identity.
func DemoCustomer() CustomerProfile {
	address := Address{
		AddressLine1: "Calle 34 # 56 - 78",
		AddressLine2: "Apartamento 502, Torre I",
		City:         "Bogota",
		Country:      "CO",
		State:        "Cundinamarca",
		ZipCode:      "111111",
	}
	return CustomerProfile{
		MerchantCustomerID: "customer_001",
		FirstName:          "John",
		LastName:           "Doe",
		Email:              "customer@example.com",
		Phone:              Phone{CountryCode: "57", Number: "3132450765"},
		Document:           Document{DocumentType: "CC", DocumentNumber: "1032765432"},
		BillingAddress:     address,
		ShippingAddress:    address,
	}
}
