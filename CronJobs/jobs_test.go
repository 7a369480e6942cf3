package CronJobs

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Apar/Models"
)

func dec(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	value, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", raw, err)
	}
	return value
}

func TestReconcilerRepairsDrift(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:reconciletest?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := Models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// Stored totals deliberately disagree with the transaction rows, as a
	// lost update would leave them.
	project := Models.Project{
		Client:        "Acme Industries",
		Quotation:     "QT-2024-000001",
		Acceptance:    "AC-2024-000001",
		Currency:      "USD",
		TotalPOAmount: dec(t, "1000.00"),
		TotalPaid:     dec(t, "300.00"),
		Balance:       dec(t, "700.00"),
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	po := Models.VendorPurchaseOrder{
		ProjectID:   project.ID,
		VendorPORef: "PO-2024-000001",
		Vendor:      "Supplies Ltd",
		POAmount:    dec(t, "1000.00"),
		Balance:     dec(t, "700.00"),
		Currency:    "USD",
	}
	if err := db.Create(&po).Error; err != nil {
		t.Fatalf("failed to seed purchase order: %v", err)
	}
	transactions := []Models.Transaction{
		{ProjectID: project.ID, VendorPurchaseOrderID: &po.ID, TransactionAmount: dec(t, "600.00")},
		{ProjectID: project.ID, VendorPurchaseOrderID: &po.ID, TransactionAmount: dec(t, "400.00")},
	}
	if err := db.Create(&transactions).Error; err != nil {
		t.Fatalf("failed to seed transactions: %v", err)
	}

	reconciler := NewReconciler(db, "@daily")
	if err := reconciler.Run(); err != nil {
		t.Fatalf("Run error = %v", err)
	}

	var reloaded Models.Project
	db.First(&reloaded, project.ID)
	if !reloaded.TotalPaid.Equal(dec(t, "1000.00")) {
		t.Errorf("total_paid = %s, want 1000.00", reloaded.TotalPaid)
	}
	if !reloaded.Balance.IsZero() || !reloaded.FullyPaid {
		t.Errorf("balance = %s fully_paid = %v, want 0.00/true", reloaded.Balance, reloaded.FullyPaid)
	}

	var reloadedPO Models.VendorPurchaseOrder
	db.First(&reloadedPO, po.ID)
	if !reloadedPO.Balance.IsZero() || !reloadedPO.IsPaid {
		t.Errorf("po balance = %s is_paid = %v, want 0.00/true", reloadedPO.Balance, reloadedPO.IsPaid)
	}
}
