package database

import (
	"fmt"
	"testing"
	"time"

	"property-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testTables = []string{
	"audit_logs",
	"utility_payments",
	"lease_utility_settings",
	"utility_bills",
	"leases",
	"properties",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := gormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(sqlite.Open(":memory:"), cfg)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to :memory: would get its own empty database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{DB: db}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range testTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func CreateTestProperty(t *testing.T, db *DB, landlordID string) *models.Property {
	t.Helper()

	property := &models.Property{
		LandlordID:  landlordID,
		Name:        gofakeit.Street(),
		Address:     gofakeit.Address().Address,
		Type:        "multi_family",
		MonthlyRent: decimal.NewFromInt(int64(gofakeit.IntRange(900, 4000))),
	}

	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}

	return property
}

func CreateTestLease(t *testing.T, db *DB, property *models.Property) *models.Lease {
	t.Helper()

	start := time.Now().AddDate(0, -6, 0)
	lease := &models.Lease{
		LandlordID:     property.LandlordID,
		PropertyID:     property.ID,
		TenantName:     gofakeit.Name(),
		TenantEmail:    gofakeit.Email(),
		UnitIdentifier: fmt.Sprintf("Unit %d", gofakeit.IntRange(1, 40)),
		StartDate:      start,
		EndDate:        start.AddDate(1, 0, 0),
		Rent:           decimal.NewFromInt(int64(gofakeit.IntRange(800, 2500))),
		Status:         models.LeaseStatusActive,
	}

	if err := db.Create(lease).Error; err != nil {
		t.Fatalf("failed to create test lease: %v", err)
	}

	return lease
}

func CreateTestBill(t *testing.T, db *DB, property *models.Property, utilityType, billMonth string, amount decimal.Decimal) *models.UtilityBill {
	t.Helper()

	bill := &models.UtilityBill{
		LandlordID:  property.LandlordID,
		PropertyID:  property.ID,
		UtilityType: utilityType,
		Provider:    gofakeit.Company(),
		BillMonth:   billMonth,
		TotalAmount: amount,
		DueDate:     time.Now().AddDate(0, 0, 14),
		BillDate:    time.Now(),
	}

	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}

	return bill
}

func CreateTestSetting(t *testing.T, db *DB, lease *models.Lease, utilityType string, percentage decimal.Decimal) *models.LeaseUtilitySetting {
	t.Helper()

	setting := &models.LeaseUtilitySetting{
		LeaseID:                  lease.ID,
		UtilityType:              utilityType,
		ResponsibilityPercentage: percentage,
	}

	if err := db.Create(setting).Error; err != nil {
		t.Fatalf("failed to create test utility setting: %v", err)
	}

	return setting
}

// NewLandlordID returns an identity provider style subject for test fixtures
func NewLandlordID() string {
	return "user_" + uuid.NewString()
}
