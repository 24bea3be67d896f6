package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type billInput struct {
	Month       string          `json:"billMonth" validate:"required,bill_month"`
	UtilityType string          `json:"utilityType" validate:"required,utility_type"`
	Amount      decimal.Decimal `json:"totalAmount" validate:"money_amount"`
	PaidStatus  string          `json:"paidStatus" validate:"omitempty,paid_status"`
}

func validInput() billInput {
	return billInput{
		Month:       "2024-03",
		UtilityType: "Electric",
		Amount:      decimal.RequireFromString("120.50"),
		PaidStatus:  "unpaid",
	}
}

func failedFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

func TestValidator_AcceptsValidInput(t *testing.T) {
	assert.NoError(t, GetValidator().Struct(validInput()))
}

func TestValidator_BillMonth(t *testing.T) {
	tests := []struct {
		month string
		valid bool
	}{
		{"2024-01", true},
		{"2024-12", true},
		{"2024-13", false},
		{"2024-00", false},
		{"2024-1", false},
		{"24-01", false},
		{"2024/01", false},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			in := validInput()
			in.Month = tt.month
			err := NewValidator().Struct(in)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, "bill_month", failedFields(t, err)["billMonth"])
		})
	}
}

func TestValidator_MoneyAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		valid  bool
	}{
		{"whole", decimal.NewFromInt(80), true},
		{"cents", decimal.RequireFromString("0.01"), true},
		{"trailing zeros", decimal.RequireFromString("12.500"), true},
		{"zero", decimal.Zero, false},
		{"negative", decimal.RequireFromString("-5.00"), false},
		{"three places", decimal.RequireFromString("1.005"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.Amount = tt.amount
			err := NewValidator().Struct(in)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, "money_amount", failedFields(t, err)["totalAmount"])
		})
	}
}

func TestValidator_UtilityTypeAndPaidStatus(t *testing.T) {
	in := validInput()
	in.UtilityType = "9volt"
	in.PaidStatus = "maybe"

	fields := failedFields(t, NewValidator().Struct(in))

	assert.Equal(t, map[string]string{
		"utilityType": "utility_type",
		"paidStatus":  "paid_status",
	}, fields)
}

func TestValidator_UtilityTypeAllowsSeparators(t *testing.T) {
	for _, ut := range []string{"Water/Sewer", "Trash & Recycling", "Natural-Gas"} {
		in := validInput()
		in.UtilityType = ut
		assert.NoError(t, NewValidator().Struct(in), ut)
	}
}

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestFieldMessages(t *testing.T) {
	in := validInput()
	in.Month = ""
	in.Amount = decimal.RequireFromString("3.141")

	messages := FieldMessages(NewValidator().Struct(in))

	assert.Equal(t, map[string]string{
		"billMonth":   "is required",
		"totalAmount": "must be a positive amount with at most 2 decimal places",
	}, messages)
}

func TestFieldMessages_NotValidationError(t *testing.T) {
	assert.Nil(t, FieldMessages(assert.AnError))
	assert.Nil(t, FieldMessages(nil))
}

func TestValidator_ValidateMatchesStruct(t *testing.T) {
	in := validInput()
	in.Month = "2024-13"

	v := NewValidator()
	assert.Equal(t, failedFields(t, v.Struct(in)), failedFields(t, v.Validate(in)))
	assert.NoError(t, v.Validate(validInput()))
}
