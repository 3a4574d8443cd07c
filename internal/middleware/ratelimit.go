package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"
)

// RateLimit throttles anonymous writes per share code and client IP. The
// window is one minute; limits are configured per operation. Exceeding the
// limit is a 429 with the standard rate limit headers.
func RateLimit(operation string, perMinute int64, logger *zap.Logger) echo.MiddlewareFunc {
	store := memory.NewStore()
	instance := limiter.New(store, limiter.Rate{
		Period: time.Minute,
		Limit:  perMinute,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := operation + ":" + c.Param("code") + ":" + c.RealIP()

			limiterCtx, err := instance.Get(c.Request().Context(), key)
			if err != nil {
				// The limiter failing must not take the endpoint down.
				logger.Error("Rate limiter failed", zap.String("key", key), zap.Error(err))
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(limiterCtx.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(limiterCtx.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(limiterCtx.Reset, 10))

			if limiterCtx.Reached {
				logger.Warn("Rate limit exceeded",
					zap.String("operation", operation),
					zap.String("ip", c.RealIP()),
				)
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error": "Too many requests, slow down",
					"code":  "RATE_LIMITED",
				})
			}

			return next(c)
		}
	}
}
