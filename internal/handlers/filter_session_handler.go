package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"property-ledger/internal/dto"
	"property-ledger/internal/errors"
	"property-ledger/internal/filters"
	"property-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// FilterSessionHandler exposes server-held bill filter state
type FilterSessionHandler struct {
	sessions services.FilterSessionServiceInterface
}

// NewFilterSessionHandler creates a new filter session handler
func NewFilterSessionHandler(sessions services.FilterSessionServiceInterface) *FilterSessionHandler {
	return &FilterSessionHandler{sessions: sessions}
}

// CreateSession starts a filter session, optionally with initial criteria
// @Summary Create a filter session
// @Tags Filter Sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body filters.FilterUpdate false "Initial criteria"
// @Success 201 {object} dto.FilterSessionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid filter criteria"
// @Failure 403 {object} errors.ErrorResponse "PROPERTY_002 - Property belongs to another landlord"
// @Failure 404 {object} errors.ErrorResponse "PROPERTY_001 - Property not found"
// @Router /filter-sessions [post]
func (h *FilterSessionHandler) CreateSession(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	// an empty body, chunked or not, starts from no criteria
	var initial *filters.FilterUpdate
	var update filters.FilterUpdate
	if err := json.NewDecoder(c.Request().Body).Decode(&update); err == nil {
		initial = &update
	} else if !stderrors.Is(err, io.EOF) {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	session, err := h.sessions.Create(c.Request().Context(), landlordID, initial)
	if err != nil {
		return sendFilterSessionError(c, err)
	}

	return c.JSON(http.StatusCreated, sessionResponse(session))
}

// GetSession returns a session's criteria and current results
// @Summary Get a filter session
// @Tags Filter Sessions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Param sort query string false "Order bills by billMonth, utilityType, provider, totalAmount, dueDate or landlordPaidUtilityCompany"
// @Param direction query string false "asc (default) or desc"
// @Success 200 {object} dto.FilterSessionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid sort"
// @Failure 404 {object} errors.ErrorResponse "FILTER_001 - Session not found or expired"
// @Router /filter-sessions/{id} [get]
func (h *FilterSessionHandler) GetSession(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid session ID"))
	}

	var q dto.BillSortQuery
	if err := c.Bind(&q); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&q); err != nil {
		return SendValidationError(c, err)
	}

	session, err := h.sessions.Get(c.Request().Context(), landlordID, sessionID)
	if err != nil {
		return sendFilterSessionError(c, err)
	}

	resp := sessionResponse(session)
	if q.Sort != "" {
		resp.FilteredBills = services.SortBills(resp.FilteredBills, services.BillSortKey(q.Sort), services.SortDirection(q.Direction))
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateFilters merges a partial update into the session's criteria
// @Summary Update filter criteria
// @Description Keys absent from the body are left unchanged; a null key clears that criterion.
// @Description Changing the property clears the tenant unless the same update picks one.
// @Tags Filter Sessions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body filters.FilterUpdate true "Partial criteria"
// @Success 200 {object} dto.FilterSessionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid filter criteria"
// @Failure 404 {object} errors.ErrorResponse "FILTER_001 - Session not found or expired"
// @Router /filter-sessions/{id}/filters [patch]
func (h *FilterSessionHandler) UpdateFilters(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid session ID"))
	}

	var update filters.FilterUpdate
	if err := c.Bind(&update); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	session, err := h.sessions.UpdateFilters(c.Request().Context(), landlordID, sessionID, update)
	if err != nil {
		return sendFilterSessionError(c, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

// ResetFilters clears every criterion
// @Summary Reset filter criteria
// @Tags Filter Sessions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.FilterSessionResponse
// @Failure 404 {object} errors.ErrorResponse "FILTER_001 - Session not found or expired"
// @Router /filter-sessions/{id}/filters [delete]
func (h *FilterSessionHandler) ResetFilters(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid session ID"))
	}

	session, err := h.sessions.ResetFilters(c.Request().Context(), landlordID, sessionID)
	if err != nil {
		return sendFilterSessionError(c, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

// RefreshSession recomputes results from current data without changing criteria
// @Summary Refresh filter results
// @Tags Filter Sessions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.FilterSessionResponse
// @Failure 404 {object} errors.ErrorResponse "FILTER_001 - Session not found or expired"
// @Failure 500 {object} errors.ErrorResponse "FILTER_002 - Results could not be computed"
// @Router /filter-sessions/{id}/refresh [post]
func (h *FilterSessionHandler) RefreshSession(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid session ID"))
	}

	session, err := h.sessions.Refresh(c.Request().Context(), landlordID, sessionID)
	if err != nil {
		return sendFilterSessionError(c, err)
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

// DeleteSession discards a session
// @Summary Delete a filter session
// @Tags Filter Sessions
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "FILTER_001 - Session not found or expired"
// @Router /filter-sessions/{id} [delete]
func (h *FilterSessionHandler) DeleteSession(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid session ID"))
	}

	if err := h.sessions.Delete(c.Request().Context(), landlordID, sessionID); err != nil {
		return sendFilterSessionError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func sessionResponse(session *services.FilterSession) dto.FilterSessionResponse {
	return dto.NewFilterSessionResponse(session.ID, session.State, session.ExpiresAt)
}

func sendFilterSessionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrSessionNotFound):
		return SendError(c, errors.FilterSessionNotFound)
	case stderrors.Is(err, services.ErrInvalidFilters):
		return SendError(c, errors.ValidationInvalidFilters, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrPropertyNotFound):
		return SendError(c, errors.PropertyNotFound)
	case stderrors.Is(err, services.ErrNotOwner):
		return SendError(c, errors.PropertyAccessDenied)
	case stderrors.Is(err, services.ErrFilterComputation):
		return SendError(c, errors.FilterComputeFailed)
	default:
		return SendSystemError(c, err)
	}
}
