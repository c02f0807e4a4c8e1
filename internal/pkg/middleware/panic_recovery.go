package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace, and returns a 500 response instead of crashing the process.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					requestID := c.Response().Header().Get(echo.HeaderXRequestID)

					logger.Error("Panic recovered",
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("request_id", requestID),
						logger.String("stack_trace", string(debug.Stack())),
					)

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}
