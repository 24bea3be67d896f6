package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"property-ledger/internal/dto"
	"property-ledger/internal/models"
	"property-ledger/internal/repositories"
	"property-ledger/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// UtilityBillServiceSuite defines the test suite for UtilityBillServiceInterface
type UtilityBillServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	propertyRepo *repository_mocks.MockPropertyRepositoryInterface
	leaseRepo    *repository_mocks.MockLeaseRepositoryInterface
	billRepo     *repository_mocks.MockUtilityBillRepositoryInterface
	settingRepo  *repository_mocks.MockUtilitySettingRepositoryInterface
	paymentRepo  *repository_mocks.MockUtilityPaymentRepositoryInterface
	auditRepo    *repository_mocks.MockAuditLogRepositoryInterface
	service      UtilityBillServiceInterface
	ctx          context.Context
	landlordID   string
	property     *models.Property
	lease        *models.Lease
	bill         *models.UtilityBill
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *UtilityBillServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.propertyRepo = repository_mocks.NewMockPropertyRepositoryInterface(s.ctrl)
	s.leaseRepo = repository_mocks.NewMockLeaseRepositoryInterface(s.ctrl)
	s.billRepo = repository_mocks.NewMockUtilityBillRepositoryInterface(s.ctrl)
	s.settingRepo = repository_mocks.NewMockUtilitySettingRepositoryInterface(s.ctrl)
	s.paymentRepo = repository_mocks.NewMockUtilityPaymentRepositoryInterface(s.ctrl)
	s.auditRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.service = NewUtilityBillService(
		s.propertyRepo,
		s.leaseRepo,
		s.billRepo,
		s.settingRepo,
		s.paymentRepo,
		NewChargeCalculator(s.settingRepo, s.paymentRepo),
		NewAuditService(s.auditRepo, discardLogger()),
		NewPrometheusMetrics(prometheus.NewRegistry()),
		discardLogger(),
	)
	s.ctx = context.Background()

	s.landlordID = "user_" + uuid.NewString()
	s.property = &models.Property{ID: uuid.New(), LandlordID: s.landlordID, Name: "Maple Duplex"}
	s.lease = &models.Lease{ID: uuid.New(), LandlordID: s.landlordID, PropertyID: s.property.ID, TenantName: "Avery", Status: models.LeaseStatusActive}
	s.bill = &models.UtilityBill{
		ID:          uuid.New(),
		LandlordID:  s.landlordID,
		PropertyID:  s.property.ID,
		UtilityType: "Electric",
		Provider:    "City Power",
		BillMonth:   "2024-06",
		TotalAmount: decimal.RequireFromString("150.00"),
	}
}

func (s *UtilityBillServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUtilityBillServiceSuite(t *testing.T) {
	suite.Run(t, new(UtilityBillServiceSuite))
}

func (s *UtilityBillServiceSuite) createRequest() *dto.CreateUtilityBillRequest {
	return &dto.CreateUtilityBillRequest{
		PropertyID:  s.property.ID,
		UtilityType: "Water",
		Provider:    "Metro Water",
		BillMonth:   "2024-07",
		TotalAmount: decimal.RequireFromString("64.20"),
		DueDate:     time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

// expectAudit expects one audit write returning err and captures the entry
func (s *UtilityBillServiceSuite) expectAudit(err error) *models.AuditLog {
	captured := &models.AuditLog{}
	s.auditRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, log *models.AuditLog) error {
			*captured = *log
			return err
		})
	return captured
}

// GetPageData

func (s *UtilityBillServiceSuite) TestGetPageData_Success() {
	query := models.BillQuery{PropertyID: s.property.ID, StartMonth: "2024-01", EndMonth: "2024-12"}
	expectedQuery := query
	expectedQuery.LandlordID = s.landlordID

	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)
	s.propertyRepo.EXPECT().GetByLandlordID(s.ctx, s.landlordID).Return([]models.Property{*s.property}, nil)
	s.leaseRepo.EXPECT().GetActiveByLandlordID(s.ctx, s.landlordID).Return([]models.Lease{*s.lease}, nil)
	s.billRepo.EXPECT().GetWithQuery(s.ctx, expectedQuery).Return([]models.UtilityBill{*s.bill}, nil)
	s.settingRepo.EXPECT().GetByLeaseIDs(s.ctx, []uuid.UUID{s.lease.ID}).Return([]models.LeaseUtilitySetting{
		{LeaseID: s.lease.ID, UtilityType: "Electric", ResponsibilityPercentage: decimal.NewFromInt(40)},
	}, nil)
	s.paymentRepo.EXPECT().GetByBillIDs(s.ctx, []uuid.UUID{s.bill.ID}).Return(nil, nil)

	data, err := s.service.GetPageData(s.ctx, s.landlordID, query)

	s.Require().NoError(err)
	s.Len(data.Properties, 1)
	s.Len(data.Leases, 1)
	s.Len(data.Bills, 1)
	s.Require().Len(data.Charges, 1)
	s.Equal("60.00", data.Charges[0].ChargedAmount.StringFixed(2))
	s.Equal(int64(1), data.Stats.TotalBills)
	s.Equal(int64(1), data.Stats.UnpaidBills)
	s.Equal("150.00", data.Stats.TotalAmount.StringFixed(2))
}

func (s *UtilityBillServiceSuite) TestGetPageData_AllProperties() {
	s.propertyRepo.EXPECT().GetByLandlordID(s.ctx, s.landlordID).Return([]models.Property{}, nil)
	s.leaseRepo.EXPECT().GetActiveByLandlordID(s.ctx, s.landlordID).Return([]models.Lease{}, nil)
	s.billRepo.EXPECT().GetWithQuery(s.ctx, models.BillQuery{LandlordID: s.landlordID}).Return([]models.UtilityBill{}, nil)

	data, err := s.service.GetPageData(s.ctx, s.landlordID, models.BillQuery{})

	s.Require().NoError(err)
	s.Empty(data.Bills)
	s.Empty(data.Charges)
	s.Zero(data.Stats.TotalBills)
}

func (s *UtilityBillServiceSuite) TestGetPageData_OtherLandlordsProperty() {
	s.property.LandlordID = "user_someone_else"
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)

	_, err := s.service.GetPageData(s.ctx, s.landlordID, models.BillQuery{PropertyID: s.property.ID})

	s.ErrorIs(err, ErrNotOwner)
}

func (s *UtilityBillServiceSuite) TestGetPageData_UnknownProperty() {
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(nil, repositories.ErrPropertyNotFound)

	_, err := s.service.GetPageData(s.ctx, s.landlordID, models.BillQuery{PropertyID: s.property.ID})

	s.ErrorIs(err, ErrPropertyNotFound)
}

func (s *UtilityBillServiceSuite) TestGetPageData_BillsError() {
	s.propertyRepo.EXPECT().GetByLandlordID(gomock.Any(), gomock.Any()).Return([]models.Property{}, nil)
	s.leaseRepo.EXPECT().GetActiveByLandlordID(gomock.Any(), gomock.Any()).Return([]models.Lease{}, nil)
	s.billRepo.EXPECT().GetWithQuery(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := s.service.GetPageData(s.ctx, s.landlordID, models.BillQuery{})

	s.Error(err)
	s.Contains(err.Error(), "failed to load utility bills")
}

// AddBill

func (s *UtilityBillServiceSuite) TestAddBill_Success() {
	req := s.createRequest()
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)
	s.billRepo.EXPECT().ExistsForMonth(s.ctx, s.property.ID, "Water", "2024-07").Return(false, nil)
	s.billRepo.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, bill *models.UtilityBill) error {
			bill.ID = uuid.New()
			return nil
		})
	audited := s.expectAudit(nil)

	bill, err := s.service.AddBill(s.ctx, s.landlordID, req)

	s.Require().NoError(err)
	s.Equal(models.AuditActionBillCreated, audited.Action)
	s.Equal(bill.ID.String(), audited.ResourceID)
	s.Equal("64.20", audited.Metadata.Get("total_amount"))
	s.NotEqual(uuid.Nil, bill.ID)
	s.Equal(s.landlordID, bill.LandlordID)
	s.Equal("Water", bill.UtilityType)
	s.Equal("64.20", bill.TotalAmount.StringFixed(2))
	s.False(bill.LandlordPaidUtilityCompany)
	s.False(bill.BillDate.IsZero())
}

func (s *UtilityBillServiceSuite) TestAddBill_AuditFailureDoesNotFailCreate() {
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)
	s.billRepo.EXPECT().ExistsForMonth(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.billRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.expectAudit(errors.New("audit table locked"))

	bill, err := s.service.AddBill(s.ctx, s.landlordID, s.createRequest())

	s.NoError(err)
	s.NotNil(bill)
}

func (s *UtilityBillServiceSuite) TestAddBill_InvalidMonth() {
	req := s.createRequest()
	req.BillMonth = "2024-7"

	_, err := s.service.AddBill(s.ctx, s.landlordID, req)

	s.ErrorIs(err, ErrInvalidBillMonth)
}

func (s *UtilityBillServiceSuite) TestAddBill_InvalidAmount() {
	for _, amount := range []string{"0", "-10.00"} {
		req := s.createRequest()
		req.TotalAmount = decimal.RequireFromString(amount)

		_, err := s.service.AddBill(s.ctx, s.landlordID, req)

		s.ErrorIs(err, ErrInvalidAmount, amount)
	}
}

func (s *UtilityBillServiceSuite) TestAddBill_NotOwner() {
	s.property.LandlordID = "user_someone_else"
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)

	_, err := s.service.AddBill(s.ctx, s.landlordID, s.createRequest())

	s.ErrorIs(err, ErrNotOwner)
}

func (s *UtilityBillServiceSuite) TestAddBill_Duplicate() {
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)
	s.billRepo.EXPECT().ExistsForMonth(s.ctx, s.property.ID, "Water", "2024-07").Return(true, nil)

	_, err := s.service.AddBill(s.ctx, s.landlordID, s.createRequest())

	s.ErrorIs(err, ErrDuplicateBill)
}

func (s *UtilityBillServiceSuite) TestAddBill_DuplicateOnInsert() {
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)
	s.billRepo.EXPECT().ExistsForMonth(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.billRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repositories.ErrDuplicateUtilityBill)

	_, err := s.service.AddBill(s.ctx, s.landlordID, s.createRequest())

	s.ErrorIs(err, ErrDuplicateBill)
}

// SetLandlordPaid

func (s *UtilityBillServiceSuite) TestSetLandlordPaid_Success() {
	s.billRepo.EXPECT().GetByID(s.ctx, s.bill.ID).Return(s.bill, nil)
	s.billRepo.EXPECT().MarkPaid(s.ctx, s.bill.ID, true).Return(nil)
	audited := s.expectAudit(nil)

	bill, err := s.service.SetLandlordPaid(s.ctx, s.landlordID, s.bill.ID, true)

	s.Require().NoError(err)
	s.True(bill.LandlordPaidUtilityCompany)
	s.Equal(models.AuditActionBillMarkedPaid, audited.Action)
	s.Equal("false", audited.Metadata.Get("previous"))
}

func (s *UtilityBillServiceSuite) TestSetLandlordPaid_NotFound() {
	s.billRepo.EXPECT().GetByID(s.ctx, s.bill.ID).Return(nil, repositories.ErrUtilityBillNotFound)

	_, err := s.service.SetLandlordPaid(s.ctx, s.landlordID, s.bill.ID, true)

	s.ErrorIs(err, ErrBillNotFound)
}

func (s *UtilityBillServiceSuite) TestSetLandlordPaid_NotOwner() {
	s.bill.LandlordID = "user_someone_else"
	s.billRepo.EXPECT().GetByID(s.ctx, s.bill.ID).Return(s.bill, nil)

	_, err := s.service.SetLandlordPaid(s.ctx, s.landlordID, s.bill.ID, false)

	s.ErrorIs(err, ErrNotOwner)
}

// RecordPayment

func (s *UtilityBillServiceSuite) paymentRequest(amount string) *dto.RecordPaymentRequest {
	return &dto.RecordPaymentRequest{LeaseID: s.lease.ID, Amount: decimal.RequireFromString(amount)}
}

func (s *UtilityBillServiceSuite) expectChargeLookup(percentage int64) {
	s.billRepo.EXPECT().GetByID(s.ctx, s.bill.ID).Return(s.bill, nil)
	s.leaseRepo.EXPECT().GetByID(s.ctx, s.lease.ID).Return(s.lease, nil)
	s.settingRepo.EXPECT().GetByLeaseAndType(s.ctx, s.lease.ID, "Electric").Return(&models.LeaseUtilitySetting{
		LeaseID:                  s.lease.ID,
		UtilityType:              "Electric",
		ResponsibilityPercentage: decimal.NewFromInt(percentage),
	}, nil)
}

func (s *UtilityBillServiceSuite) TestRecordPayment_Success() {
	s.expectChargeLookup(50)
	s.paymentRepo.EXPECT().CreateWithinBalance(s.ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payment *models.UtilityPayment, charged decimal.Decimal) (decimal.Decimal, error) {
			s.Equal("75.00", charged.StringFixed(2))
			payment.ID = uuid.New()
			return decimal.RequireFromString("50.00"), nil
		})
	audited := s.expectAudit(nil)

	payment, err := s.service.RecordPayment(s.ctx, s.landlordID, s.bill.ID, s.paymentRequest("50.00"))

	s.Require().NoError(err)
	s.Equal(models.AuditActionPaymentRecorded, audited.Action)
	s.Equal(s.bill.ID.String(), audited.ResourceID)
	s.Equal(payment.ID.String(), audited.Metadata.Get("payment_id"))
	s.Equal(s.lease.ID, payment.LeaseID)
	s.Equal(s.bill.ID, payment.UtilityBillID)
	s.Equal("50.00", payment.AmountPaid.StringFixed(2))
}

func (s *UtilityBillServiceSuite) TestRecordPayment_ExceedsBalance() {
	s.expectChargeLookup(50)
	s.paymentRepo.EXPECT().CreateWithinBalance(s.ctx, gomock.Any(), gomock.Any()).
		Return(decimal.RequireFromString("50.00"), repositories.ErrPaymentExceedsBalance)

	_, err := s.service.RecordPayment(s.ctx, s.landlordID, s.bill.ID, s.paymentRequest("50.01"))

	s.ErrorIs(err, ErrPaymentExceedsBalance)
	s.Contains(err.Error(), "50.00 remaining")
}

func (s *UtilityBillServiceSuite) TestRecordPayment_StoresRoundedAmount() {
	s.expectChargeLookup(50)
	s.paymentRepo.EXPECT().CreateWithinBalance(s.ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payment *models.UtilityPayment, _ decimal.Decimal) (decimal.Decimal, error) {
			s.Equal("12.35", payment.AmountPaid.String())
			return decimal.RequireFromString("75.00"), nil
		})
	s.expectAudit(nil)

	payment, err := s.service.RecordPayment(s.ctx, s.landlordID, s.bill.ID, s.paymentRequest("12.345"))

	s.Require().NoError(err)
	s.Equal("12.35", payment.AmountPaid.StringFixed(2))
}

func (s *UtilityBillServiceSuite) TestRecordPayment_NoResponsibility() {
	s.billRepo.EXPECT().GetByID(s.ctx, s.bill.ID).Return(s.bill, nil)
	s.leaseRepo.EXPECT().GetByID(s.ctx, s.lease.ID).Return(s.lease, nil)
	s.settingRepo.EXPECT().GetByLeaseAndType(s.ctx, s.lease.ID, "Electric").Return(nil, repositories.ErrUtilitySettingNotFound)

	_, err := s.service.RecordPayment(s.ctx, s.landlordID, s.bill.ID, s.paymentRequest("10"))

	s.ErrorIs(err, ErrNoResponsibility)
}

func (s *UtilityBillServiceSuite) TestRecordPayment_LeaseOnAnotherProperty() {
	s.lease.PropertyID = uuid.New()
	s.billRepo.EXPECT().GetByID(s.ctx, s.bill.ID).Return(s.bill, nil)
	s.leaseRepo.EXPECT().GetByID(s.ctx, s.lease.ID).Return(s.lease, nil)

	_, err := s.service.RecordPayment(s.ctx, s.landlordID, s.bill.ID, s.paymentRequest("10"))

	s.ErrorIs(err, ErrLeaseNotFound)
}

func (s *UtilityBillServiceSuite) TestRecordPayment_InvalidAmount() {
	for _, amount := range []string{"0", "-5", "0.004"} {
		s.Run(amount, func() {
			s.billRepo.EXPECT().GetByID(s.ctx, s.bill.ID).Return(s.bill, nil)
			s.leaseRepo.EXPECT().GetByID(s.ctx, s.lease.ID).Return(s.lease, nil)

			_, err := s.service.RecordPayment(s.ctx, s.landlordID, s.bill.ID, s.paymentRequest(amount))

			s.ErrorIs(err, ErrInvalidAmount)
		})
	}
}

// GetFilterOptions

func (s *UtilityBillServiceSuite) TestGetFilterOptions_AllProperties() {
	s.propertyRepo.EXPECT().GetByLandlordID(s.ctx, s.landlordID).Return([]models.Property{*s.property}, nil)
	s.leaseRepo.EXPECT().GetActiveByLandlordID(s.ctx, s.landlordID).Return([]models.Lease{*s.lease}, nil)
	s.billRepo.EXPECT().GetUtilityTypes(s.ctx, s.landlordID).Return([]string{"Electric", "Water"}, nil)

	options, err := s.service.GetFilterOptions(s.ctx, s.landlordID, uuid.Nil)

	s.Require().NoError(err)
	s.Len(options.Properties, 1)
	s.Len(options.Leases, 1)
	s.Equal([]string{"Electric", "Water"}, options.UtilityTypes)
}

func (s *UtilityBillServiceSuite) TestGetFilterOptions_OneProperty() {
	s.propertyRepo.EXPECT().GetByLandlordID(s.ctx, s.landlordID).Return([]models.Property{*s.property}, nil)
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)
	s.leaseRepo.EXPECT().GetActiveByPropertyID(s.ctx, s.property.ID).Return([]models.Lease{*s.lease}, nil)
	s.billRepo.EXPECT().GetUtilityTypes(s.ctx, s.landlordID).Return([]string{}, nil)

	options, err := s.service.GetFilterOptions(s.ctx, s.landlordID, s.property.ID)

	s.Require().NoError(err)
	s.Len(options.Leases, 1)
}

func (s *UtilityBillServiceSuite) TestGetFilterOptions_NotOwner() {
	s.property.LandlordID = "user_someone_else"
	s.propertyRepo.EXPECT().GetByLandlordID(s.ctx, s.landlordID).Return([]models.Property{}, nil)
	s.propertyRepo.EXPECT().GetByID(s.ctx, s.property.ID).Return(s.property, nil)

	_, err := s.service.GetFilterOptions(s.ctx, s.landlordID, s.property.ID)

	s.ErrorIs(err, ErrNotOwner)
}
