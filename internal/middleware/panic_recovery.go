package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// PanicError carries a recovered panic value to the HTTP error handler
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// PanicRecovery turns a handler panic into a *PanicError, which
// CustomHTTPErrorHandler reports as SYSTEM_001. The stack is logged here
// since it is gone by the time the error handler runs.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				// net/http uses this panic to abort a response on purpose
				if r == http.ErrAbortHandler {
					panic(r)
				}
				slog.ErrorContext(c.Request().Context(), "panic recovered",
					"trace_id", GetTraceID(c),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
				err = &PanicError{Value: r}
			}()
			return next(c)
		}
	}
}
