package checkout

import (
	"context"

	"yuno-storefront-demo/internal/dto"
	"yuno-storefront-demo/internal/model"
	"yuno-storefront-demo/internal/service"
)

// serviceBackend adapts the checkout service to the orchestrator's Backend
// surface, pinning the attempt's country.
type serviceBackend struct {
	svc     service.CheckoutService
	country string
}

func NewServiceBackend(svc service.CheckoutService, country string) Backend {
	return &serviceBackend{svc: svc, country: country}
}

func (b *serviceBackend) CreateSession(ctx context.Context, items []model.CartItem, amount int64) (*model.CheckoutSession, error) {
	req := &dto.CreateSessionRequest{Amount: &amount}
	for _, item := range items {
		req.Items = append(req.Items, dto.Item{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitAmount: item.UnitAmount,
		})
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return b.svc.CreateCheckoutSession(ctx, b.country, req)
}

func (b *serviceBackend) SubmitPayment(ctx context.Context, sessionID, oneTimeToken string, amount int64) (*model.PaymentResult, error) {
	req := &dto.PaymentRequest{
		CheckoutSession: sessionID,
		OneTimeToken:    oneTimeToken,
		Amount:          &amount,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return b.svc.SubmitPayment(ctx, b.country, req)
}
