package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"yuno-storefront-demo/internal/config"
	"yuno-storefront-demo/internal/dto"
	"yuno-storefront-demo/internal/handler"
	"yuno-storefront-demo/internal/middleware"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	catalogHandler  *handler.CatalogHandler
}

type Options struct {
	Env config.Environment
	// StaticDir holds the storefront UI build; empty disables static serving.
	StaticDir string
	Logger    *zap.Logger
}

func NewServer(checkoutHandler *handler.CheckoutHandler, catalogHandler *handler.CatalogHandler, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler(opts.Env, opts.Logger)

	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.Secure())

	s := &Server{
		echo:            e,
		checkoutHandler: checkoutHandler,
		catalogHandler:  catalogHandler,
	}

	s.setupRoutes(opts)
	return s
}

func (s *Server) setupRoutes(opts Options) {
	s.echo.GET("/healthy", s.checkoutHandler.Healthy)
	s.echo.GET("/public-api-key", s.checkoutHandler.PublicAPIKey)

	api := s.echo.Group("", middleware.NewAPILimiter().Middleware())

	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/categories", s.catalogHandler.ListCategories)

	api.POST("/checkout/sessions", s.checkoutHandler.CreateCheckoutSession)
	api.POST("/customers/sessions", s.checkoutHandler.CreateCustomerSession)

	// Tighter ceiling on payment submission, stacked on the general limiter.
	api.POST("/payments", s.checkoutHandler.CreatePayment, middleware.NewPaymentLimiter().Middleware())

	if opts.StaticDir != "" {
		s.echo.Use(echomw.StaticWithConfig(echomw.StaticConfig{
			Root:  opts.StaticDir,
			HTML5: true, // SPA fallback to index.html
		}))
	}
}

// errorHandler is the last-resort boundary: unhandled internal errors become
// a generic envelope, with detail only outside production.
func errorHandler(env config.Environment, log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, dto.ErrorResponse{
				Error:   http.StatusText(httpErr.Code),
				Message: fmt.Sprintf("%v", httpErr.Message),
			})
			return
		}

		log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))

		message := "Something went wrong. Please try again later."
		if !env.IsProduction() {
			message = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal server error",
			Message: message,
		})
	}
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
