package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"yuno-storefront-demo/internal/config"
	"yuno-storefront-demo/internal/country"
	"yuno-storefront-demo/internal/dto"
	"yuno-storefront-demo/internal/model"
	"yuno-storefront-demo/internal/service"
)

const Version = "1.0.0"

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	env             config.Environment
	publicAPIKey    string
}

func NewCheckoutHandler(checkoutService service.CheckoutService, env config.Environment, publicAPIKey string) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		env:             env,
		publicAPIKey:    publicAPIKey,
	}
}

func countryParam(c echo.Context) string {
	if code := c.QueryParam("country"); code != "" {
		return code
	}
	return country.HomeCountry
}

func (h *CheckoutHandler) Healthy(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.env.Name,
		Version:     Version,
	})
}

func (h *CheckoutHandler) PublicAPIKey(c echo.Context) error {
	env := "sandbox"
	if h.env.IsProduction() {
		env = "production"
	}
	return c.JSON(http.StatusOK, dto.PublicAPIKeyResponse{
		PublicAPIKey: h.publicAPIKey,
		Environment:  env,
	})
}

func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Message: "request body must be valid JSON",
		})
	}
	if err := req.Validate(); err != nil {
		return validationResponse(c, err)
	}

	session, err := h.checkoutService.CreateCheckoutSession(ctx, countryParam(c), &req)
	if err != nil {
		return gatewayResponse(c, "Failed to create checkout session", err)
	}

	return c.JSON(http.StatusOK, session)
}

func (h *CheckoutHandler) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Message: "request body must be valid JSON",
		})
	}
	if err := req.Validate(); err != nil {
		return validationResponse(c, err)
	}

	result, err := h.checkoutService.SubmitPayment(ctx, countryParam(c), &req)
	if err != nil {
		return gatewayResponse(c, "Payment failed", err)
	}

	// The UI interprets the provider's result object directly.
	return c.JSONBlob(http.StatusOK, result.Raw)
}

func (h *CheckoutHandler) CreateCustomerSession(c echo.Context) error {
	ctx := c.Request().Context()

	raw, err := h.checkoutService.CreateCustomerSession(ctx, countryParam(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Failed to create customer session",
			Message: err.Error(),
		})
	}

	return c.JSONBlob(http.StatusOK, raw)
}

func validationResponse(c echo.Context, err error) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		errTitle := "Invalid request"
		if validationErr.Field != "" {
			errTitle = "Invalid " + validationErr.Field
		}
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   errTitle,
			Message: validationErr.Message,
		})
	}
	return err
}

// gatewayResponse maps provider rejections to 400 with the raw payload kept
// for diagnostics; everything else bubbles to the error handler.
func gatewayResponse(c echo.Context, title string, err error) error {
	var gatewayErr *model.GatewayError
	if errors.As(err, &gatewayErr) {
		var details any = string(gatewayErr.RawBody)
		if json.Valid(gatewayErr.RawBody) {
			details = json.RawMessage(gatewayErr.RawBody)
		}
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   title,
			Details: details,
		})
	}
	return err
}
