package filters

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterUpdate_UnmarshalJSON(t *testing.T) {
	p1 := uuid.New()

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, u FilterUpdate)
	}{
		{
			name:  "empty object leaves everything unchanged",
			input: `{}`,
			check: func(t *testing.T, u FilterUpdate) {
				assert.True(t, u.IsEmpty())
			},
		},
		{
			name:  "property id",
			input: `{"propertyId":"` + p1.String() + `"}`,
			check: func(t *testing.T, u FilterUpdate) {
				require.NotNil(t, u.PropertyID)
				assert.Equal(t, p1, *u.PropertyID)
				assert.Nil(t, u.TenantID)
			},
		},
		{
			name:  "null tenant clears it",
			input: `{"tenantId":null}`,
			check: func(t *testing.T, u FilterUpdate) {
				require.NotNil(t, u.TenantID)
				assert.Equal(t, uuid.Nil, *u.TenantID)
			},
		},
		{
			name:  "empty string property clears it",
			input: `{"propertyId":""}`,
			check: func(t *testing.T, u FilterUpdate) {
				require.NotNil(t, u.PropertyID)
				assert.Equal(t, uuid.Nil, *u.PropertyID)
			},
		},
		{
			name:  "date range pair",
			input: `{"dateRange":["2024-01","2024-03"]}`,
			check: func(t *testing.T, u FilterUpdate) {
				require.NotNil(t, u.DateRange)
				assert.Equal(t, DateRange{Start: "2024-01", End: "2024-03"}, *u.DateRange)
			},
		},
		{
			name:  "malformed date range decodes to zero range",
			input: `{"dateRange":"2024-01"}`,
			check: func(t *testing.T, u FilterUpdate) {
				require.NotNil(t, u.DateRange)
				assert.False(t, u.DateRange.IsValid())
			},
		},
		{
			name:  "utility types not an array",
			input: `{"utilityTypes":"gas"}`,
			check: func(t *testing.T, u FilterUpdate) {
				assert.NotNil(t, u.UtilityTypes)
				assert.Empty(t, u.UtilityTypes)
			},
		},
		{
			name:  "utility types drop non strings",
			input: `{"utilityTypes":["gas",7,null,"water"]}`,
			check: func(t *testing.T, u FilterUpdate) {
				assert.Equal(t, UtilityTypeList{"gas", "water"}, u.UtilityTypes)
			},
		},
		{
			name:  "null paid status resets to all",
			input: `{"paidStatus":null}`,
			check: func(t *testing.T, u FilterUpdate) {
				require.NotNil(t, u.PaidStatus)
				assert.Equal(t, PaidStatusAll, *u.PaidStatus)
			},
		},
		{
			name:  "search term",
			input: `{"searchTerm":"city power"}`,
			check: func(t *testing.T, u FilterUpdate) {
				require.NotNil(t, u.SearchTerm)
				assert.Equal(t, "city power", *u.SearchTerm)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var u FilterUpdate
			require.NoError(t, json.Unmarshal([]byte(tc.input), &u))
			tc.check(t, u)
		})
	}
}

func TestFilterUpdate_UnmarshalJSON_Errors(t *testing.T) {
	inputs := map[string]string{
		"not an object":      `[1,2]`,
		"bad property uuid":  `{"propertyId":"not-a-uuid"}`,
		"numeric tenant id":  `{"tenantId":12}`,
		"numeric paidStatus": `{"paidStatus":1}`,
		"object searchTerm":  `{"searchTerm":{}}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			var u FilterUpdate
			assert.Error(t, json.Unmarshal([]byte(input), &u))
		})
	}
}

func TestFilterUpdate_Validate(t *testing.T) {
	assert.NoError(t, FilterUpdate{}.Validate())
	assert.NoError(t, FilterUpdate{PaidStatus: statusPtr(PaidStatusPaid)}.Validate())
	assert.ErrorIs(t, FilterUpdate{PaidStatus: statusPtr("overdue")}.Validate(), ErrInvalidPaidStatus)
}

func TestDateRange_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(DateRange{Start: "2024-01", End: "2024-06"})

	require.NoError(t, err)
	assert.JSONEq(t, `["2024-01","2024-06"]`, string(data))
}

func TestDateRange_UnmarshalJSON_NeverFails(t *testing.T) {
	for _, input := range []string{`null`, `[]`, `["2024-01"]`, `[1,2]`, `{"start":"2024-01"}`, `["a","b","c"]`} {
		var r DateRange
		assert.NoError(t, r.UnmarshalJSON([]byte(input)), input)
		assert.Equal(t, DateRange{}, r, input)
	}
}

func TestFilterCriteria_Clone(t *testing.T) {
	original := InitialCriteria()
	original.DateRange = &DateRange{Start: "2024-01", End: "2024-02"}
	original.UtilityTypes = UtilityTypeList{"gas"}

	clone := original.Clone()
	clone.DateRange.End = "2024-12"
	clone.UtilityTypes[0] = "water"

	assert.Equal(t, "2024-02", original.DateRange.End)
	assert.Equal(t, UtilityTypeList{"gas"}, original.UtilityTypes)
}

func TestFilterCriteria_Selection(t *testing.T) {
	c := InitialCriteria()
	assert.False(t, c.HasProperty())
	assert.False(t, c.HasTenant())

	c.PropertyID = uuid.New()
	c.TenantID = uuid.New()
	assert.True(t, c.HasProperty())
	assert.True(t, c.HasTenant())
}

func TestUtilityTypeList_Contains(t *testing.T) {
	l := UtilityTypeList{"gas", "water"}
	assert.True(t, l.Contains("gas"))
	assert.False(t, l.Contains("electric"))
	assert.False(t, UtilityTypeList{}.Contains("gas"))
}

func TestFilterUpdate_Fields(t *testing.T) {
	assert.Empty(t, FilterUpdate{}.Fields())

	id := uuid.New()
	term := "gas"
	update := FilterUpdate{PropertyID: &id, UtilityTypes: UtilityTypeList{}, SearchTerm: &term}

	assert.Equal(t, []string{"propertyId", "utilityTypes", "searchTerm"}, update.Fields())
}
