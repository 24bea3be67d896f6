package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"property-ledger/internal/dto"
	"property-ledger/internal/filters"
	"property-ledger/internal/models"
	"property-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound      = errors.New("property not found")
	ErrBillNotFound          = errors.New("utility bill not found")
	ErrLeaseNotFound         = errors.New("lease not found")
	ErrNotOwner              = errors.New("resource belongs to another landlord")
	ErrDuplicateBill         = errors.New("a bill for this utility type and month already exists")
	ErrInvalidBillMonth      = errors.New("bill month must be in YYYY-MM format")
	ErrInvalidAmount         = errors.New("amount must be greater than 0")
	ErrNoResponsibility      = errors.New("tenant has no responsibility for this utility type")
	ErrPaymentExceedsBalance = errors.New("payment amount exceeds remaining balance")
)

// utilityBillService implements UtilityBillServiceInterface
type utilityBillService struct {
	propertyRepo repositories.PropertyRepositoryInterface
	leaseRepo    repositories.LeaseRepositoryInterface
	billRepo     repositories.UtilityBillRepositoryInterface
	settingRepo  repositories.UtilitySettingRepositoryInterface
	paymentRepo  repositories.UtilityPaymentRepositoryInterface
	calculator   ChargeCalculatorInterface
	audit        AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewUtilityBillService creates the landlord utility bill service
func NewUtilityBillService(
	propertyRepo repositories.PropertyRepositoryInterface,
	leaseRepo repositories.LeaseRepositoryInterface,
	billRepo repositories.UtilityBillRepositoryInterface,
	settingRepo repositories.UtilitySettingRepositoryInterface,
	paymentRepo repositories.UtilityPaymentRepositoryInterface,
	calculator ChargeCalculatorInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UtilityBillServiceInterface {
	return &utilityBillService{
		propertyRepo: propertyRepo,
		leaseRepo:    leaseRepo,
		billRepo:     billRepo,
		settingRepo:  settingRepo,
		paymentRepo:  paymentRepo,
		calculator:   calculator,
		audit:        audit,
		metrics:      metrics,
		logger:       logger,
	}
}

// GetPageData loads a landlord's properties, active leases, the bills matching
// query and the charges derived from them
func (s *utilityBillService) GetPageData(ctx context.Context, landlordID string, query models.BillQuery) (*models.UtilityPageData, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricPageDataLoad, time.Since(start))
	}()

	if query.PropertyID != uuid.Nil {
		if _, err := s.ownedProperty(ctx, landlordID, query.PropertyID); err != nil {
			return nil, err
		}
	}
	query.LandlordID = landlordID

	properties, err := s.propertyRepo.GetByLandlordID(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	leases, err := s.leaseRepo.GetActiveByLandlordID(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leases: %w", err)
	}

	bills, err := s.billRepo.GetWithQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load utility bills: %w", err)
	}

	charges, err := s.calculator.ChargesForBills(ctx, bills, leases)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate charges: %w", err)
	}

	return &models.UtilityPageData{
		Properties: properties,
		Leases:     leases,
		Bills:      bills,
		Charges:    charges,
		Stats:      CalculateStats(bills, charges, filters.InitialCriteria()),
	}, nil
}

// AddBill records a new bill for one of the landlord's properties. Only one
// bill per property, utility type and month is allowed.
func (s *utilityBillService) AddBill(ctx context.Context, landlordID string, req *dto.CreateUtilityBillRequest) (*models.UtilityBill, error) {
	if !models.IsValidBillMonth(req.BillMonth) {
		s.rejectBill("invalid_month")
		return nil, ErrInvalidBillMonth
	}
	if !req.TotalAmount.IsPositive() {
		s.rejectBill("invalid_amount")
		return nil, ErrInvalidAmount
	}

	if _, err := s.ownedProperty(ctx, landlordID, req.PropertyID); err != nil {
		if errors.Is(err, ErrNotOwner) {
			s.logger.WarnContext(ctx, "bill rejected for property owned by another landlord",
				slog.String("landlord_id", landlordID),
				slog.String("property_id", req.PropertyID.String()),
			)
		}
		return nil, err
	}

	exists, err := s.billRepo.ExistsForMonth(ctx, req.PropertyID, req.UtilityType, req.BillMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bill: %w", err)
	}
	if exists {
		s.rejectBill("duplicate")
		return nil, ErrDuplicateBill
	}

	billDate := time.Now().UTC()
	if req.BillDate != nil {
		billDate = *req.BillDate
	}

	bill := &models.UtilityBill{
		LandlordID:                 landlordID,
		PropertyID:                 req.PropertyID,
		UtilityType:                req.UtilityType,
		Provider:                   req.Provider,
		BillMonth:                  req.BillMonth,
		TotalAmount:                req.TotalAmount.Round(2),
		DueDate:                    req.DueDate,
		BillDate:                   billDate,
		BillingPeriod:              req.BillingPeriod,
		Notes:                      req.Notes,
		LandlordPaidUtilityCompany: req.LandlordPaidUtilityCompany,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		// lost a race with a concurrent insert of the same month
		if errors.Is(err, repositories.ErrDuplicateUtilityBill) {
			s.rejectBill("duplicate")
			return nil, ErrDuplicateBill
		}
		return nil, fmt.Errorf("failed to create utility bill: %w", err)
	}

	s.metrics.IncrementCounter(MetricUtilityBillCreated, nil)
	s.logger.InfoContext(ctx, "utility bill created",
		slog.String("bill_id", bill.ID.String()),
		slog.String("property_id", bill.PropertyID.String()),
		slog.String("utility_type", bill.UtilityType),
		slog.String("bill_month", bill.BillMonth),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
	s.auditFailed(ctx, "bill_created", s.audit.RecordBillCreated(ctx, bill))

	return bill, nil
}

// SetLandlordPaid records whether the landlord has paid the utility company
func (s *utilityBillService) SetLandlordPaid(ctx context.Context, landlordID string, billID uuid.UUID, paid bool) (*models.UtilityBill, error) {
	bill, err := s.ownedBill(ctx, landlordID, billID)
	if err != nil {
		return nil, err
	}

	if err := s.billRepo.MarkPaid(ctx, bill.ID, paid); err != nil {
		if errors.Is(err, repositories.ErrUtilityBillNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}
	previous := bill.LandlordPaidUtilityCompany
	bill.LandlordPaidUtilityCompany = paid
	s.auditFailed(ctx, "landlord_paid", s.audit.RecordLandlordPaid(ctx, bill, previous))

	return bill, nil
}

// RecordPayment records a tenant paying toward their share of a bill. The
// payment may not exceed what remains of the tenant's charge.
func (s *utilityBillService) RecordPayment(ctx context.Context, landlordID string, billID uuid.UUID, req *dto.RecordPaymentRequest) (*models.UtilityPayment, error) {
	bill, err := s.ownedBill(ctx, landlordID, billID)
	if err != nil {
		return nil, err
	}

	lease, err := s.leaseRepo.GetByID(ctx, req.LeaseID)
	if err != nil {
		if errors.Is(err, repositories.ErrLeaseNotFound) {
			return nil, ErrLeaseNotFound
		}
		return nil, fmt.Errorf("failed to get lease: %w", err)
	}
	if lease.LandlordID != landlordID || lease.PropertyID != bill.PropertyID {
		return nil, ErrLeaseNotFound
	}

	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	setting, err := s.settingRepo.GetByLeaseAndType(ctx, lease.ID, bill.UtilityType)
	if err != nil {
		if errors.Is(err, repositories.ErrUtilitySettingNotFound) {
			return nil, ErrNoResponsibility
		}
		return nil, fmt.Errorf("failed to get utility setting: %w", err)
	}
	if !setting.ChargesTenant() {
		return nil, ErrNoResponsibility
	}

	payment := &models.UtilityPayment{
		LeaseID:       lease.ID,
		UtilityBillID: bill.ID,
		AmountPaid:    amount,
	}
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}

	charged := bill.TotalAmount.Mul(setting.ResponsibilityPercentage).Div(hundred).Round(2)
	remaining, err := s.paymentRepo.CreateWithinBalance(ctx, payment, charged)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPaymentExceedsBalance):
			return nil, fmt.Errorf("%w: %s remaining", ErrPaymentExceedsBalance, remaining.StringFixed(2))
		case errors.Is(err, repositories.ErrUtilityBillNotFound):
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	paidAmount, _ := payment.AmountPaid.Float64()
	s.metrics.IncrementCounter(MetricUtilityPayment, nil)
	s.metrics.RecordGauge(MetricUtilityPaymentAmount, paidAmount, nil)
	s.logger.InfoContext(ctx, "utility payment recorded",
		slog.String("payment_id", payment.ID.String()),
		slog.String("bill_id", bill.ID.String()),
		slog.String("lease_id", lease.ID.String()),
		slog.String("amount", payment.AmountPaid.StringFixed(2)),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
	s.auditFailed(ctx, "payment_recorded", s.audit.RecordPayment(ctx, bill, payment))

	return payment, nil
}

// GetFilterOptions lists the properties, tenants and utility types a landlord
// can filter by. When propertyID is set only that property's tenants are listed.
func (s *utilityBillService) GetFilterOptions(ctx context.Context, landlordID string, propertyID uuid.UUID) (*models.FilterOptions, error) {
	properties, err := s.propertyRepo.GetByLandlordID(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	var leases []models.Lease
	if propertyID != uuid.Nil {
		if _, err := s.ownedProperty(ctx, landlordID, propertyID); err != nil {
			return nil, err
		}
		leases, err = s.leaseRepo.GetActiveByPropertyID(ctx, propertyID)
	} else {
		leases, err = s.leaseRepo.GetActiveByLandlordID(ctx, landlordID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load leases: %w", err)
	}

	utilityTypes, err := s.billRepo.GetUtilityTypes(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("failed to load utility types: %w", err)
	}

	return &models.FilterOptions{
		Properties:   properties,
		Leases:       leases,
		UtilityTypes: utilityTypes,
	}, nil
}

func (s *utilityBillService) ownedProperty(ctx context.Context, landlordID string, propertyID uuid.UUID) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if !property.IsOwnedBy(landlordID) {
		return nil, ErrNotOwner
	}
	return property, nil
}

func (s *utilityBillService) ownedBill(ctx context.Context, landlordID string, billID uuid.UUID) (*models.UtilityBill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		if errors.Is(err, repositories.ErrUtilityBillNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get utility bill: %w", err)
	}
	if bill.LandlordID != landlordID {
		return nil, ErrNotOwner
	}
	return bill, nil
}

// auditFailed logs a failed audit write. The change it describes has already
// been committed and is not rolled back.
func (s *utilityBillService) auditFailed(ctx context.Context, event string, err error) {
	if err == nil {
		return
	}
	s.logger.WarnContext(ctx, "failed to write audit log",
		slog.String("event", event),
		slog.String("error", err.Error()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (s *utilityBillService) rejectBill(reason string) {
	s.metrics.IncrementCounter(MetricUtilityBillRejected, map[string]string{"reason": reason})
}
