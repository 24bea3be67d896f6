package services

import (
	"sort"
	"strings"

	"property-ledger/internal/filters"
	"property-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillSortKey names a column bills can be ordered by
type BillSortKey string

const (
	SortByBillMonth   BillSortKey = "billMonth"
	SortByUtilityType BillSortKey = "utilityType"
	SortByProvider    BillSortKey = "provider"
	SortByTotalAmount BillSortKey = "totalAmount"
	SortByDueDate     BillSortKey = "dueDate"
	SortByPaid        BillSortKey = "landlordPaidUtilityCompany"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// FilterBills returns the bills matching every set criterion, in input order
func FilterBills(bills []models.UtilityBill, criteria filters.FilterCriteria) []models.UtilityBill {
	search := strings.ToLower(strings.TrimSpace(criteria.SearchTerm))

	filtered := make([]models.UtilityBill, 0, len(bills))
	for _, bill := range bills {
		if criteria.HasProperty() && bill.PropertyID != criteria.PropertyID {
			continue
		}
		if r := criteria.DateRange; r != nil && (bill.BillMonth < r.Start || bill.BillMonth > r.End) {
			continue
		}
		if len(criteria.UtilityTypes) > 0 && !criteria.UtilityTypes.Contains(bill.UtilityType) {
			continue
		}
		if !matchesPaidStatus(bill, criteria.PaidStatus) {
			continue
		}
		if search != "" && !matchesSearch(bill, search) {
			continue
		}
		filtered = append(filtered, bill)
	}
	return filtered
}

func matchesPaidStatus(bill models.UtilityBill, status filters.PaidStatus) bool {
	switch status {
	case filters.PaidStatusPaid:
		return bill.LandlordPaidUtilityCompany
	case filters.PaidStatusUnpaid:
		return !bill.LandlordPaidUtilityCompany
	default:
		return true
	}
}

// search must already be lower-cased and trimmed
func matchesSearch(bill models.UtilityBill, search string) bool {
	return strings.Contains(strings.ToLower(bill.UtilityType), search) ||
		strings.Contains(strings.ToLower(bill.Provider), search) ||
		strings.Contains(strings.ToLower(bill.Notes), search) ||
		strings.Contains(bill.BillMonth, search)
}

// BillIDSet returns the IDs of bills as a set
func BillIDSet(bills []models.UtilityBill) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(bills))
	for _, bill := range bills {
		ids[bill.ID] = struct{}{}
	}
	return ids
}

// FilterCharges keeps the charges on surviving bills and, when a tenant is
// selected, only that tenant's (lease's) charges
func FilterCharges(charges []models.TenantCharge, billIDs map[uuid.UUID]struct{}, criteria filters.FilterCriteria) []models.TenantCharge {
	filtered := make([]models.TenantCharge, 0, len(charges))
	for _, charge := range charges {
		if _, ok := billIDs[charge.UtilityBillID]; !ok {
			continue
		}
		if criteria.HasTenant() && charge.LeaseID != criteria.TenantID {
			continue
		}
		filtered = append(filtered, charge)
	}
	return filtered
}

// CalculateStats summarizes filtered results. Bill counts always come from the
// bills. With a tenant selected and charges present, amounts are the tenant's
// charged and remaining totals; otherwise they are bill totals.
func CalculateStats(bills []models.UtilityBill, charges []models.TenantCharge, criteria filters.FilterCriteria) models.BillStats {
	stats := billStats(bills)

	if criteria.HasTenant() && len(charges) > 0 {
		stats.TotalAmount = decimal.Zero
		stats.UnpaidAmount = decimal.Zero
		for _, charge := range charges {
			stats.TotalAmount = stats.TotalAmount.Add(charge.ChargedAmount)
			stats.UnpaidAmount = stats.UnpaidAmount.Add(charge.RemainingAmount)
		}
	}

	return stats
}

func billStats(bills []models.UtilityBill) models.BillStats {
	stats := models.ZeroBillStats()
	for _, bill := range bills {
		stats.TotalBills++
		stats.TotalAmount = stats.TotalAmount.Add(bill.TotalAmount)
		if bill.IsUnpaid() {
			stats.UnpaidBills++
			stats.UnpaidAmount = stats.UnpaidAmount.Add(bill.TotalAmount)
		}
	}
	return stats
}

// SortBills returns a sorted copy of bills. Ties keep their input order and
// an unknown key leaves the order unchanged.
func SortBills(bills []models.UtilityBill, key BillSortKey, direction SortDirection) []models.UtilityBill {
	sorted := make([]models.UtilityBill, len(bills))
	copy(sorted, bills)

	compare := billComparator(key)
	if compare == nil {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compare(sorted[i], sorted[j])
		if direction == SortDescending {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

func billComparator(key BillSortKey) func(a, b models.UtilityBill) int {
	switch key {
	case SortByBillMonth:
		return func(a, b models.UtilityBill) int { return strings.Compare(a.BillMonth, b.BillMonth) }
	case SortByUtilityType:
		return func(a, b models.UtilityBill) int { return strings.Compare(a.UtilityType, b.UtilityType) }
	case SortByProvider:
		return func(a, b models.UtilityBill) int { return strings.Compare(a.Provider, b.Provider) }
	case SortByTotalAmount:
		return func(a, b models.UtilityBill) int { return a.TotalAmount.Cmp(b.TotalAmount) }
	case SortByDueDate:
		return func(a, b models.UtilityBill) int { return a.DueDate.Compare(b.DueDate) }
	case SortByPaid:
		return func(a, b models.UtilityBill) int {
			return boolRank(a.LandlordPaidUtilityCompany) - boolRank(b.LandlordPaidUtilityCompany)
		}
	default:
		return nil
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
