package models

import "github.com/shopspring/decimal"

// BillStats is the summary shown alongside a filtered bill list
type BillStats struct {
	TotalBills   int64           `json:"total_bills"`
	UnpaidBills  int64           `json:"unpaid_bills"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	UnpaidAmount decimal.Decimal `json:"unpaid_amount"`
}

// ZeroBillStats returns stats with every counter and amount at zero
func ZeroBillStats() BillStats {
	return BillStats{
		TotalAmount:  decimal.Zero,
		UnpaidAmount: decimal.Zero,
	}
}
