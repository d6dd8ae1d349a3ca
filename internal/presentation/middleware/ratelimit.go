package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"folio/internal/domain/dto"
	"folio/pkg/utils"
)

// RateLimitConfig is a blunt per-IP request ceiling over a fixed window.
type RateLimitConfig struct {
	MaxRequests int   `yaml:"max_requests"`
	WindowSecs  int64 `yaml:"window_in_sec"`
}

const rateLimitMessage = "Too many requests from this IP, please try again later."

// RateLimit rejects clients above the ceiling with a fixed message.
// Requests whose path ends in a video extension are exempt.
func RateLimit(cfg RateLimitConfig) echo.MiddlewareFunc {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 100
	}
	if cfg.WindowSecs <= 0 {
		cfg.WindowSecs = 15 * 60
	}

	window := time.Duration(cfg.WindowSecs) * time.Second

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return utils.HasVideoExtension(c.Request().URL.Path)
		},
		Store: echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(cfg.MaxRequests) / window.Seconds()),
			Burst:     cfg.MaxRequests,
			ExpiresIn: window,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return c.JSON(http.StatusForbidden, dto.Fail("error while extracting identifier"))
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, dto.Fail(rateLimitMessage))
		},
	})
}
