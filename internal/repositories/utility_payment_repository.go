package repositories

import (
	"context"
	"errors"
	"fmt"

	"property-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPaymentExceedsBalance = errors.New("payment amount exceeds remaining balance")

// utilityPaymentRepository implements UtilityPaymentRepositoryInterface
type utilityPaymentRepository struct {
	db *gorm.DB
}

// NewUtilityPaymentRepository creates a new utility payment repository
func NewUtilityPaymentRepository(db *gorm.DB) UtilityPaymentRepositoryInterface {
	return &utilityPaymentRepository{db: db}
}

// CreateWithinBalance records a payment only if it fits in what remains of
// charged after the lease's earlier payments toward the bill. The bill row is
// locked for the transaction so concurrent payments toward it are checked one
// at a time. It returns the balance that remained before this payment.
func (r *utilityPaymentRepository) CreateWithinBalance(ctx context.Context, payment *models.UtilityPayment, charged decimal.Decimal) (decimal.Decimal, error) {
	remaining := decimal.Zero

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bill := &models.UtilityBill{}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", payment.UtilityBillID).First(bill).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUtilityBillNotFound
			}
			return fmt.Errorf("failed to lock utility bill: %w", err)
		}

		paid, err := sumPayments(tx, payment.LeaseID, payment.UtilityBillID)
		if err != nil {
			return err
		}
		remaining = decimal.Max(decimal.Zero, charged.Sub(paid))
		if payment.AmountPaid.GreaterThan(remaining) {
			return ErrPaymentExceedsBalance
		}

		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to create utility payment: %w", err)
		}
		return nil
	})
	return remaining, err
}

// GetByBillIDs retrieves every payment toward the given bills
func (r *utilityPaymentRepository) GetByBillIDs(ctx context.Context, billIDs []uuid.UUID) ([]models.UtilityPayment, error) {
	var payments []models.UtilityPayment
	if len(billIDs) == 0 {
		return payments, nil
	}

	if err := r.db.WithContext(ctx).Where("utility_bill_id IN ?", billIDs).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get utility payments: %w", err)
	}
	return payments, nil
}

// sumPayments returns the total a lease has paid toward a bill
func sumPayments(tx *gorm.DB, leaseID, billID uuid.UUID) (decimal.Decimal, error) {
	var payments []models.UtilityPayment
	if err := tx.Where("lease_id = ? AND utility_bill_id = ?", leaseID, billID).
		Find(&payments).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to get utility payments: %w", err)
	}

	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.AmountPaid)
	}
	return total, nil
}
