package handlers

import (
	"log/slog"
	"net/http"

	"property-ledger/internal/errors"
	"property-ledger/internal/validation"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (client and business rule
// errors), SendValidationError (c.Validate failures) and SendSystemError
// (anything internal, whose text must not reach the client). They do not
// return echo.NewHTTPError or write error bodies with c.JSON directly.

// TraceIDContextKey is where the request ID middleware stores the trace ID
const TraceIDContextKey = "trace_id"

func getTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}

// SendError writes the response for code with the request's trace ID
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(resp.GetHTTPStatus(), resp)
}

// SendValidationError reports each failed field of a request struct
func SendValidationError(c echo.Context, err error) error {
	messages := validation.FieldMessages(err)
	if messages == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return c.JSON(http.StatusBadRequest, errors.NewValidationError(messages, getTraceID(c)))
}

// SendSystemError logs err and responds with a generic SYSTEM_001
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", err,
	)
	return SendError(c, errors.SystemInternalError)
}
