package dto

import (
	"regexp"

	"yuno-storefront-demo/internal/model"
)

// MaxAmount caps a single checkout at 1,000,000 minor units.
const MaxAmount int64 = 1_000_000

var uuidV4Regex = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

type CreateSessionRequest struct {
	Amount *int64 `json:"amount,omitempty"`
	Items  []Item `json:"items,omitempty"`
}

// Validate rejects malformed input before any outbound call is made.
func (r *CreateSessionRequest) Validate() error {
	if r.Amount != nil {
		if *r.Amount <= 0 || *r.Amount > MaxAmount {
			return model.NewValidationError("amount", "amount must be a positive number of minor units up to 1,000,000")
		}
	}
	for _, item := range r.Items {
		if item.ID == "" || item.Name == "" || item.Quantity == 0 || item.UnitAmount == 0 {
			return model.NewValidationError("items", "each item must have id, name, quantity, and unit_amount")
		}
		if item.Quantity < 0 || item.UnitAmount < 0 {
			return model.NewValidationError("items", "quantity and unit_amount must be positive numbers")
		}
	}
	return nil
}

func (r *CreateSessionRequest) CartItems() []model.CartItem {
	items := make([]model.CartItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, model.CartItem{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitAmount,
		})
	}
	return items
}

type PaymentRequest struct {
	CheckoutSession string `json:"checkoutSession"`
	OneTimeToken    string `json:"oneTimeToken"`
	Amount          *int64 `json:"amount,omitempty"`
}

func (r *PaymentRequest) Validate() error {
	if r.CheckoutSession == "" || r.OneTimeToken == "" {
		return model.NewValidationError("", "checkoutSession and oneTimeToken are required")
	}
	if !IsUUIDv4(r.CheckoutSession) {
		return model.NewValidationError("checkoutSession", "checkout session must be a valid UUID v4")
	}
	if r.Amount != nil && *r.Amount <= 0 {
		return model.NewValidationError("amount", "amount must be a positive number")
	}
	return nil
}

// IsUUIDv4 reports whether s matches the UUID-v4 shape the provider issues
// for checkout sessions.
func IsUUIDv4(s string) bool {
	return uuidV4Regex.MatchString(s)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type PublicAPIKeyResponse struct {
	PublicAPIKey string `json:"publicApiKey"`
	Environment  string `json:"environment"`
}
