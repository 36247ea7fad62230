package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"yuno-storefront-demo/internal/dto"
)

// RateLimiter keeps a token-bucket limiter per client IP. Counters are
// process-local; there is no distributed coordination.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	message  string
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(r rate.Limit, burst int, message string) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
		message:  message,
	}
	go rl.prune()
	return rl
}

// NewAPILimiter matches the general API ceiling: 100 requests per 15 minutes
// per IP.
func NewAPILimiter() *RateLimiter {
	return NewRateLimiter(rate.Every(15*time.Minute/100), 100,
		"Too many requests from this IP, please try again later.")
}

// NewPaymentLimiter is the tighter ceiling on payment submission: 10 requests
// per 5 minutes per IP, to blunt card-testing abuse.
func NewPaymentLimiter() *RateLimiter {
	return NewRateLimiter(rate.Every(5*time.Minute/10), 10,
		"Too many payment attempts, please try again later.")
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) prune() {
	for range time.Tick(10 * time.Minute) {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 30*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
					Error:   "Rate limit exceeded",
					Message: rl.message,
				})
			}
			return next(c)
		}
	}
}
