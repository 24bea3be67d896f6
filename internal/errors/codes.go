package errors

import "net/http"

// ErrorCode is the stable identifier clients match on
type ErrorCode string

// Authentication
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthForbidden          ErrorCode = "AUTH_005"
)

// Request validation
const (
	ValidationGeneral          ErrorCode = "VALIDATION_001"
	ValidationInvalidBillMonth ErrorCode = "VALIDATION_002"
	ValidationInvalidAmount    ErrorCode = "VALIDATION_003"
	ValidationInvalidFilters   ErrorCode = "VALIDATION_004"
	ValidationInvalidID        ErrorCode = "VALIDATION_005"
)

// Ledger resources
const (
	PropertyNotFound     ErrorCode = "PROPERTY_001"
	PropertyAccessDenied ErrorCode = "PROPERTY_002"

	LeaseNotFound         ErrorCode = "LEASE_001"
	LeaseNoResponsibility ErrorCode = "LEASE_002"

	BillNotFound              ErrorCode = "BILL_001"
	BillDuplicate             ErrorCode = "BILL_002"
	BillPaymentExceedsBalance ErrorCode = "BILL_003"
	BillAccessDenied          ErrorCode = "BILL_004"

	FilterSessionNotFound ErrorCode = "FILTER_001"
	FilterComputeFailed   ErrorCode = "FILTER_002"
)

// System
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemRouteNotFound      ErrorCode = "SYSTEM_005"
)

type codeInfo struct {
	status  int
	message string
}

var catalogue = map[ErrorCode]codeInfo{
	AuthMissingToken:       {http.StatusUnauthorized, "Authorization token is required"},
	AuthExpiredToken:       {http.StatusUnauthorized, "Authorization token has expired"},
	AuthInvalidToken:       {http.StatusUnauthorized, "Authorization token is invalid"},
	AuthInvalidTokenFormat: {http.StatusUnauthorized, "Invalid authorization token format"},
	AuthForbidden:          {http.StatusForbidden, "Insufficient permissions to access this resource"},

	ValidationGeneral:          {http.StatusBadRequest, "Validation failed"},
	ValidationInvalidBillMonth: {http.StatusBadRequest, "Bill month must be in YYYY-MM format"},
	ValidationInvalidAmount:    {http.StatusBadRequest, "Amount must be greater than 0"},
	ValidationInvalidFilters:   {http.StatusBadRequest, "Invalid filter criteria"},
	ValidationInvalidID:        {http.StatusBadRequest, "Invalid identifier format"},

	PropertyNotFound:     {http.StatusNotFound, "Property not found"},
	PropertyAccessDenied: {http.StatusForbidden, "You do not have permission to access this property"},

	LeaseNotFound:         {http.StatusNotFound, "Lease not found"},
	LeaseNoResponsibility: {http.StatusUnprocessableEntity, "Tenant has no responsibility for this utility type"},

	BillNotFound:              {http.StatusNotFound, "Utility bill not found"},
	BillDuplicate:             {http.StatusConflict, "A bill for this utility type and month already exists"},
	BillPaymentExceedsBalance: {http.StatusUnprocessableEntity, "Payment amount exceeds the remaining balance"},
	BillAccessDenied:          {http.StatusForbidden, "You do not have permission to access this bill"},

	FilterSessionNotFound: {http.StatusNotFound, "Filter session not found or expired"},
	FilterComputeFailed:   {http.StatusInternalServerError, "Filter results could not be computed"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "The requested route does not exist"},
}

// Message returns the default message for code
func (c ErrorCode) Message() string {
	if info, ok := catalogue[c]; ok {
		return info.message
	}
	return "An error occurred"
}

// HTTPStatus returns the status code responses with code are sent with.
// Unknown codes are server errors.
func (c ErrorCode) HTTPStatus() int {
	if info, ok := catalogue[c]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Known reports whether c is in the catalogue
func (c ErrorCode) Known() bool {
	_, ok := catalogue[c]
	return ok
}
