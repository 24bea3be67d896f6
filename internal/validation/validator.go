package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	billMonthPattern   = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	utilityTypePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z /&-]{0,49}$`)
)

// Validator is a go-playground validator with the ledger's rules registered.
// It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// Validate is Struct under the name echo.Validator expects
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("bill_month", validateBillMonth)
	_ = v.RegisterValidation("paid_status", validatePaidStatus)
	_ = v.RegisterValidation("utility_type", validateUtilityType)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)

	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})

	return &Validator{validate: v}
}

// validateBillMonth validates a YYYY-MM month with a real month number
func validateBillMonth(fl validator.FieldLevel) bool {
	return billMonthPattern.MatchString(fl.Field().String())
}

// validatePaidStatus validates that paid status is one of the allowed values
func validatePaidStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "paid", "unpaid":
		return true
	default:
		return false
	}
}

// validateUtilityType validates a short free-form utility category such as
// "Electric" or "Water/Sewer"
func validateUtilityType(fl validator.FieldLevel) bool {
	return utilityTypePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateMoneyAmount validates that an amount is positive and has at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if !amount.IsPositive() {
		return false
	}

	return amount.Equal(amount.Round(2))
}

// FieldMessages maps each failed field, by its JSON name, to a readable
// message. It returns nil when err holds no field errors.
func FieldMessages(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		messages[fe.Field()] = Describe(fe)
	}
	return messages
}

// Describe converts a validator.FieldError to a human-readable message
func Describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "bill_month":
		return "must be a month in YYYY-MM format"
	case "paid_status":
		return "must be one of: all, paid, unpaid"
	case "utility_type":
		return "must be a utility type of letters, spaces, '/', '&' or '-' (at most 50 characters)"
	case "money_amount":
		return "must be a positive amount with at most 2 decimal places"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
