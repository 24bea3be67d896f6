package services

import (
	"context"
	"fmt"
	"sort"

	"property-ledger/internal/models"
	"property-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// chargeCalculator implements ChargeCalculatorInterface
type chargeCalculator struct {
	settingRepo repositories.UtilitySettingRepositoryInterface
	paymentRepo repositories.UtilityPaymentRepositoryInterface
}

// NewChargeCalculator creates a calculator that loads settings and payments for bills
func NewChargeCalculator(
	settingRepo repositories.UtilitySettingRepositoryInterface,
	paymentRepo repositories.UtilityPaymentRepositoryInterface,
) ChargeCalculatorInterface {
	return &chargeCalculator{
		settingRepo: settingRepo,
		paymentRepo: paymentRepo,
	}
}

// ChargesForBills loads the settings and payments the bills need and derives
// each active lease's share
func (c *chargeCalculator) ChargesForBills(ctx context.Context, bills []models.UtilityBill, leases []models.Lease) ([]models.TenantCharge, error) {
	if len(bills) == 0 || len(leases) == 0 {
		return []models.TenantCharge{}, nil
	}

	leaseIDs := make([]uuid.UUID, 0, len(leases))
	for _, lease := range leases {
		leaseIDs = append(leaseIDs, lease.ID)
	}
	settings, err := c.settingRepo.GetByLeaseIDs(ctx, leaseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load utility settings: %w", err)
	}

	billIDs := make([]uuid.UUID, 0, len(bills))
	for _, bill := range bills {
		billIDs = append(billIDs, bill.ID)
	}
	payments, err := c.paymentRepo.GetByBillIDs(ctx, billIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load utility payments: %w", err)
	}

	return CalculateCharges(bills, leases, settings, payments), nil
}

type leaseBillKey struct {
	leaseID uuid.UUID
	billID  uuid.UUID
}

type leaseTypeKey struct {
	leaseID     uuid.UUID
	utilityType string
}

// CalculateCharges derives tenant charges. A lease is charged for a bill when
// it is active, on the bill's property and has a positive responsibility
// percentage for the bill's utility type. The charge is rounded to cents and
// the remaining amount never goes below zero. Charges are ordered by bill
// month (newest first), then utility type, then unit or tenant name.
func CalculateCharges(bills []models.UtilityBill, leases []models.Lease, settings []models.LeaseUtilitySetting, payments []models.UtilityPayment) []models.TenantCharge {
	settingByLeaseType := make(map[leaseTypeKey]models.LeaseUtilitySetting, len(settings))
	for _, s := range settings {
		settingByLeaseType[leaseTypeKey{s.LeaseID, s.UtilityType}] = s
	}

	paidByLeaseBill := make(map[leaseBillKey]decimal.Decimal)
	for _, p := range payments {
		key := leaseBillKey{p.LeaseID, p.UtilityBillID}
		paidByLeaseBill[key] = paidByLeaseBill[key].Add(p.AmountPaid)
	}

	leasesByProperty := make(map[uuid.UUID][]models.Lease)
	for _, lease := range leases {
		if !lease.IsActive() {
			continue
		}
		leasesByProperty[lease.PropertyID] = append(leasesByProperty[lease.PropertyID], lease)
	}

	charges := []models.TenantCharge{}
	for _, bill := range bills {
		for _, lease := range leasesByProperty[bill.PropertyID] {
			setting, ok := settingByLeaseType[leaseTypeKey{lease.ID, bill.UtilityType}]
			if !ok || !setting.ChargesTenant() {
				continue
			}

			charged := bill.TotalAmount.Mul(setting.ResponsibilityPercentage).Div(hundred).Round(2)
			paid := paidByLeaseBill[leaseBillKey{lease.ID, bill.ID}]
			remaining := decimal.Max(decimal.Zero, charged.Sub(paid))

			charges = append(charges, models.TenantCharge{
				LeaseID:                  lease.ID,
				TenantName:               lease.TenantName,
				UnitIdentifier:           lease.UnitIdentifier,
				UtilityBillID:            bill.ID,
				UtilityType:              bill.UtilityType,
				BillMonth:                bill.BillMonth,
				TotalBillAmount:          bill.TotalAmount,
				ChargedAmount:            charged,
				ResponsibilityPercentage: setting.ResponsibilityPercentage,
				DueDate:                  bill.DueDate,
				PaidAmount:               paid,
				RemainingAmount:          remaining,
			})
		}
	}

	sort.SliceStable(charges, func(i, j int) bool {
		a, b := charges[i], charges[j]
		if a.BillMonth != b.BillMonth {
			return a.BillMonth > b.BillMonth
		}
		if a.UtilityType != b.UtilityType {
			return a.UtilityType < b.UtilityType
		}
		if a.UnitIdentifier != b.UnitIdentifier {
			return a.UnitIdentifier < b.UnitIdentifier
		}
		return a.TenantName < b.TenantName
	})

	return charges
}
