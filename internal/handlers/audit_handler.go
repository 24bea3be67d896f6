package handlers

import (
	"net/http"
	"time"

	"property-ledger/internal/dto"
	"property-ledger/internal/errors"
	"property-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultAuditPageSize = 20

// AuditHandler serves the landlord's ledger audit trail
type AuditHandler struct {
	audit services.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(audit services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// GetActivity lists the landlord's recent changes to bills and payments
// @Summary List ledger activity
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param since query string false "Only entries on or after this date (YYYY-MM-DD)"
// @Param offset query int false "Entries to skip"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} dto.AuditPageResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query"
// @Router /activity [get]
func (h *AuditHandler) GetActivity(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	q, ok, err := bindAuditQuery(c)
	if !ok {
		return err
	}

	var since *time.Time
	if q.Since != "" {
		// format already checked by the validator
		day, _ := time.Parse(time.DateOnly, q.Since)
		since = &day
	}

	entries, total, err := h.audit.GetActivity(c.Request().Context(), landlordID, since, q.Offset, q.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAuditPageResponse(entries, total, q.Offset, q.Limit))
}

// GetBillHistory lists the changes recorded against one bill
// @Summary List a bill's history
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bill ID"
// @Param offset query int false "Entries to skip"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} dto.AuditPageResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid bill ID"
// @Router /utility-bills/{id}/history [get]
func (h *AuditHandler) GetBillHistory(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	billID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid bill ID"))
	}

	q, ok, err := bindAuditQuery(c)
	if !ok {
		return err
	}

	entries, total, err := h.audit.GetBillHistory(c.Request().Context(), landlordID, billID, q.Offset, q.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAuditPageResponse(entries, total, q.Offset, q.Limit))
}

// bindAuditQuery binds and validates paging. When ok is false the error
// response has been sent and err is the result of sending it.
func bindAuditQuery(c echo.Context) (q dto.AuditQuery, ok bool, err error) {
	if err := c.Bind(&q); err != nil {
		return q, false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&q); err != nil {
		return q, false, SendValidationError(c, err)
	}
	if q.Limit == 0 {
		q.Limit = defaultAuditPageSize
	}
	return q, true, nil
}
