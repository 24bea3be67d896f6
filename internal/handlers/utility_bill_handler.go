package handlers

import (
	stderrors "errors"
	"net/http"

	"property-ledger/internal/dto"
	"property-ledger/internal/errors"
	"property-ledger/internal/models"
	"property-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UtilityBillHandler handles landlord utility bill requests
type UtilityBillHandler struct {
	billService services.UtilityBillServiceInterface
}

// NewUtilityBillHandler creates a new utility bill handler
func NewUtilityBillHandler(billService services.UtilityBillServiceInterface) *UtilityBillHandler {
	return &UtilityBillHandler{billService: billService}
}

// GetPageData loads the landlord's properties, leases, bills and tenant charges
// @Summary Get utility bill page data
// @Tags Utility Bills
// @Security BearerAuth
// @Produce json
// @Param propertyId query string false "Property ID"
// @Param startMonth query string false "First bill month (YYYY-MM)"
// @Param endMonth query string false "Last bill month (YYYY-MM)"
// @Success 200 {object} models.UtilityPageData
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid query"
// @Failure 403 {object} errors.ErrorResponse "PROPERTY_002 - Property belongs to another landlord"
// @Failure 404 {object} errors.ErrorResponse "PROPERTY_001 - Property not found"
// @Router /utility-bills [get]
func (h *UtilityBillHandler) GetPageData(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var q dto.BillPageQuery
	if err := c.Bind(&q); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&q); err != nil {
		return SendValidationError(c, err)
	}

	query := models.BillQuery{StartMonth: q.StartMonth, EndMonth: q.EndMonth}
	if q.PropertyID != "" {
		query.PropertyID = uuid.MustParse(q.PropertyID)
	}

	data, err := h.billService.GetPageData(c.Request().Context(), landlordID, query)
	if err != nil {
		return sendBillError(c, err, errors.PropertyAccessDenied)
	}

	return c.JSON(http.StatusOK, data)
}

// GetFilterOptions lists the properties, tenants and utility types a filter can pick
// @Summary Get bill filter options
// @Tags Utility Bills
// @Security BearerAuth
// @Produce json
// @Param propertyId query string false "Only list tenants of this property"
// @Success 200 {object} dto.FilterOptionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid property ID"
// @Failure 404 {object} errors.ErrorResponse "PROPERTY_001 - Property not found"
// @Router /utility-bills/options [get]
func (h *UtilityBillHandler) GetFilterOptions(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var q dto.FilterOptionsQuery
	if err := c.Bind(&q); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&q); err != nil {
		return SendValidationError(c, err)
	}

	propertyID := uuid.Nil
	if q.PropertyID != "" {
		propertyID = uuid.MustParse(q.PropertyID)
	}

	options, err := h.billService.GetFilterOptions(c.Request().Context(), landlordID, propertyID)
	if err != nil {
		return sendBillError(c, err, errors.PropertyAccessDenied)
	}

	return c.JSON(http.StatusOK, dto.NewFilterOptionsResponse(options))
}

// CreateBill records a utility bill for one of the landlord's properties
// @Summary Create a utility bill
// @Tags Utility Bills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUtilityBillRequest true "Bill details"
// @Success 201 {object} models.UtilityBill
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 403 {object} errors.ErrorResponse "PROPERTY_002 - Property belongs to another landlord"
// @Failure 404 {object} errors.ErrorResponse "PROPERTY_001 - Property not found"
// @Failure 409 {object} errors.ErrorResponse "BILL_002 - Bill already recorded for this month"
// @Router /utility-bills [post]
func (h *UtilityBillHandler) CreateBill(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateUtilityBillRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	bill, err := h.billService.AddBill(c.Request().Context(), landlordID, &req)
	if err != nil {
		return sendBillError(c, err, errors.PropertyAccessDenied)
	}

	return c.JSON(http.StatusCreated, bill)
}

// SetLandlordPaid records whether the landlord has paid the utility company
// @Summary Mark a bill paid or unpaid
// @Tags Utility Bills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.SetLandlordPaidRequest true "Paid flag"
// @Success 200 {object} models.UtilityBill
// @Failure 403 {object} errors.ErrorResponse "BILL_004 - Bill belongs to another landlord"
// @Failure 404 {object} errors.ErrorResponse "BILL_001 - Bill not found"
// @Router /utility-bills/{id}/paid [put]
func (h *UtilityBillHandler) SetLandlordPaid(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	billID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid bill ID"))
	}

	var req dto.SetLandlordPaidRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	bill, err := h.billService.SetLandlordPaid(c.Request().Context(), landlordID, billID, *req.Paid)
	if err != nil {
		return sendBillError(c, err, errors.BillAccessDenied)
	}

	return c.JSON(http.StatusOK, bill)
}

// RecordPayment records a tenant payment toward their share of a bill
// @Summary Record a tenant payment
// @Tags Utility Bills
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} models.UtilityPayment
// @Failure 404 {object} errors.ErrorResponse "BILL_001 / LEASE_001 - Bill or lease not found"
// @Failure 422 {object} errors.ErrorResponse "LEASE_002 / BILL_003 - Tenant not responsible or payment exceeds balance"
// @Router /utility-bills/{id}/payments [post]
func (h *UtilityBillHandler) RecordPayment(c echo.Context) error {
	landlordID, err := getLandlordIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	billID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid bill ID"))
	}

	var req dto.RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendValidationError(c, err)
	}

	payment, err := h.billService.RecordPayment(c.Request().Context(), landlordID, billID, &req)
	if err != nil {
		return sendBillError(c, err, errors.BillAccessDenied)
	}

	return c.JSON(http.StatusCreated, payment)
}

// sendBillError maps utility bill service errors. notOwner is the code used
// when the resource belongs to another landlord.
func sendBillError(c echo.Context, err error, notOwner errors.ErrorCode) error {
	switch {
	case stderrors.Is(err, services.ErrNotOwner):
		return SendError(c, notOwner)
	case stderrors.Is(err, services.ErrPropertyNotFound):
		return SendError(c, errors.PropertyNotFound)
	case stderrors.Is(err, services.ErrBillNotFound):
		return SendError(c, errors.BillNotFound)
	case stderrors.Is(err, services.ErrLeaseNotFound):
		return SendError(c, errors.LeaseNotFound)
	case stderrors.Is(err, services.ErrDuplicateBill):
		return SendError(c, errors.BillDuplicate)
	case stderrors.Is(err, services.ErrInvalidBillMonth):
		return SendError(c, errors.ValidationInvalidBillMonth)
	case stderrors.Is(err, services.ErrInvalidAmount):
		return SendError(c, errors.ValidationInvalidAmount)
	case stderrors.Is(err, services.ErrNoResponsibility):
		return SendError(c, errors.LeaseNoResponsibility)
	case stderrors.Is(err, services.ErrPaymentExceedsBalance):
		return SendError(c, errors.BillPaymentExceedsBalance, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
